package pattern

import (
	"strconv"
	"strings"
)

const life106Header = "#Life 1.06"

func isLife106(text string) bool {
	first, _, _ := strings.Cut(text, "\n")
	return strings.TrimRight(first, " \t\r") == life106Header
}

// parseLife106 reads one absolute "x y" coordinate per line after the header.
func parseLife106(text string) (*Pattern, error) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil, newParseError(Life106, 0, "empty file")
	}

	var cells CellList
	for i, line := range lines[1:] {
		lineNo := i + 2
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, newParseError(Life106, lineNo, "expected two coordinates, found %q", line)
		}

		x, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, newParseError(Life106, lineNo, "could not read x from %q", fields[0])
		}
		y, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, newParseError(Life106, lineNo, "could not read y from %q", fields[1])
		}
		cells.Push(x, y)
	}

	p := New()
	p.Cells = ListCells(cells)
	return p, nil
}

func serialiseLife106(p *Pattern) string {
	var sb strings.Builder
	sb.WriteString(life106Header)
	for _, c := range p.Cells.IntoCellList().Cells {
		sb.WriteByte('\n')
		sb.WriteString(strconv.Itoa(c.X))
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(c.Y))
	}
	return sb.String()
}
