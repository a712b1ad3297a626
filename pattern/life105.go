package pattern

import (
	"strconv"
	"strings"

	"github.com/sheikhrachel/go-life/rules"
)

const life105Header = "#Life 1.05"

func isLife105(text string) bool {
	return strings.HasPrefix(text, life105Header)
}

// parseLife105 reads the header, optional #D description lines, an optional
// #N or #R rule line, then blocks of '.'/'*' rows. Each #P x y line starts a
// new block whose first row sits at (x, y).
func parseLife105(text string) (*Pattern, error) {
	lines := splitLines(text)
	p := New()
	i := 1

	for ; i < len(lines) && strings.HasPrefix(lines[i], "#D"); i++ {
		p.Metadata.Description = appendLine(p.Metadata.Description, strings.TrimPrefix(lines[i][2:], " "))
	}

	if i < len(lines) {
		switch {
		case strings.HasPrefix(lines[i], "#N"):
			p.Metadata.Rule = rules.Normal()
			i++
		case strings.HasPrefix(lines[i], "#R"):
			rule, err := rules.ParseRule(lines[i][2:])
			if err != nil {
				return nil, &ParseError{Format: Life105, Line: i + 1, Msg: "invalid rule", Err: err}
			}
			p.Metadata.Rule = rule
			i++
		}
	}

	var (
		cells CellList
		baseX int
		y     int
	)
	for ; i < len(lines); i++ {
		line, lineNo := lines[i], i+1

		if strings.HasPrefix(line, "#P") {
			fields := strings.Fields(line[2:])
			if len(fields) < 2 {
				return nil, newParseError(Life105, lineNo, "#P line needs an x and a y coordinate")
			}
			x, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, newParseError(Life105, lineNo, "could not read x from %q", fields[0])
			}
			py, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, newParseError(Life105, lineNo, "could not read y from %q", fields[1])
			}
			baseX, y = x, py
			continue
		}

		x := baseX
		for _, ch := range line {
			switch ch {
			case '.':
			case '*':
				cells.Push(x, y)
			default:
				return nil, unexpectedChar(Life105, lineNo, ch, "'.' or '*'")
			}
			x++
		}
		y++
	}

	p.Cells = ListCells(cells)
	return p, nil
}
