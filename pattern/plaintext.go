package pattern

import (
	"strings"
)

const (
	plaintextName   = "!Name:"
	plaintextAuthor = "!Author:"

	defaultExportName = "Exported by go-life"
)

func isPlaintext(text string) bool {
	return strings.HasPrefix(text, plaintextName)
}

// parsePlaintext reads the !Name line, any further !-prefixed metadata lines,
// then a grid of 'O' and '.' starting at (0, 0).
func parsePlaintext(text string) (*Pattern, error) {
	lines := splitLines(text)
	p := New()
	i := 0

	if i < len(lines) && strings.HasPrefix(lines[i], plaintextName) {
		p.Metadata.Name = strings.TrimSpace(lines[i][len(plaintextName):])
		i++
	}
	for ; i < len(lines) && strings.HasPrefix(lines[i], "!"); i++ {
		line := lines[i]
		if strings.HasPrefix(line, plaintextAuthor) {
			p.Metadata.Author = strings.TrimSpace(line[len(plaintextAuthor):])
			continue
		}
		p.Metadata.Description = appendLine(p.Metadata.Description, strings.TrimSpace(line[1:]))
	}

	var cells CellList
	for y, line := range lines[i:] {
		for x, ch := range []rune(line) {
			switch ch {
			case 'O':
				cells.Push(x, y)
			case '.':
			default:
				return nil, unexpectedChar(Plaintext, i+y+1, ch, "'O' or '.'")
			}
		}
	}

	p.Cells = ListCells(cells)
	return p, nil
}

func serialisePlaintext(p *Pattern) string {
	var sb strings.Builder

	name := singleLine(p.Metadata.Name)
	if name == "" {
		name = defaultExportName
	}
	sb.WriteString(plaintextName + " " + name)

	if author := singleLine(p.Metadata.Author); author != "" {
		sb.WriteString("\n" + plaintextAuthor + " " + author)
	}
	if p.Metadata.Description != "" {
		for _, line := range strings.Split(p.Metadata.Description, "\n") {
			sb.WriteString("\n!" + line)
		}
	}

	// Newlines go before each row so the output has no trailing newline.
	for _, row := range p.Cells.IntoCellTable().Cells {
		sb.WriteByte('\n')
		for _, cell := range row {
			if cell == Alive {
				sb.WriteByte('O')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
