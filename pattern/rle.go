package pattern

import (
	"strconv"
	"strings"

	"github.com/sheikhrachel/go-life/rules"
)

// rleLineLimit is the conventional maximum length of an RLE body line.
const rleLineLimit = 70

// rleHeader holds the fields of the "x = W, y = H, rule = R" line. The
// dimensions are informational only.
type rleHeader struct {
	width, height int
	rule          *rules.Rule
}

func parseRLEHeader(line string, lineNo int) (rleHeader, error) {
	var h rleHeader
	if !strings.HasPrefix(strings.TrimSpace(line), "x") {
		return h, &ParseError{Format: RLE, Line: lineNo, Msg: "header must start with \"x = \"", Err: ErrNoHeader}
	}
	for _, field := range strings.Split(line, ",") {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return h, newParseError(RLE, lineNo, "malformed header field %q", strings.TrimSpace(field))
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)

		switch key {
		case "x", "y":
			n, err := strconv.Atoi(value)
			if err != nil {
				return h, newParseError(RLE, lineNo, "could not read %s from %q", key, value)
			}
			if key == "x" {
				h.width = n
			} else {
				h.height = n
			}
		case "rule":
			rule, err := rules.ParseRuleNotation(value)
			if err != nil {
				return h, &ParseError{Format: RLE, Line: lineNo, Msg: "invalid rule", Err: err}
			}
			h.rule = &rule
		}
	}
	return h, nil
}

// parseRLE reads #-prefixed metadata lines, the header line, then the body
// of run-length tokens up to the terminating '!'.
func parseRLE(text string) (*Pattern, error) {
	lines := splitLines(text)
	p := New()
	i := 0

	for ; i < len(lines) && strings.HasPrefix(lines[i], "#"); i++ {
		line := lines[i]
		if len(line) < 2 {
			continue
		}
		value := strings.TrimSpace(line[2:])
		switch line[1] {
		case 'N':
			p.Metadata.Name = value
		case 'C', 'c':
			p.Metadata.Description = appendLine(p.Metadata.Description, value)
		case 'O':
			p.Metadata.Author = value
		case 'r':
			rule, err := rules.ParseRule(value)
			if err != nil {
				return nil, &ParseError{Format: RLE, Line: i + 1, Msg: "invalid rule", Err: err}
			}
			p.Metadata.Rule = rule
		default:
			return nil, newParseError(RLE, i+1, "unknown metadata line #%c", line[1])
		}
	}

	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	if i == len(lines) {
		return nil, &ParseError{Format: RLE, Msg: "missing header", Err: ErrNoHeader}
	}
	header, err := parseRLEHeader(lines[i], i+1)
	if err != nil {
		return nil, err
	}
	if header.rule != nil {
		p.Metadata.Rule = *header.rule
	}
	i++

	var (
		cells CellList
		x, y  int
		// count is 0 until a digit is read, meaning an implicit run of 1.
		count int
	)
	run := func() int {
		n := count
		if n == 0 {
			n = 1
		}
		count = 0
		return n
	}

	for ; i < len(lines); i++ {
		for _, ch := range strings.TrimSpace(lines[i]) {
			switch {
			case ch >= '0' && ch <= '9':
				count = count*10 + int(ch-'0')
			case ch == 'b' || ch == '.':
				x += run()
			case ch == 'o' || ch == 'A':
				for n := run(); n > 0; n-- {
					cells.Push(x, y)
					x++
				}
			case ch == '$':
				y += run()
				x = 0
			case ch == '!':
				p.Cells = ListCells(cells)
				return p, nil
			default:
				return nil, unexpectedChar(RLE, i+1, ch, "a digit, 'b', 'o', '$' or '!'")
			}
		}
	}

	return nil, newParseError(RLE, 0, "pattern is not terminated by '!'")
}

type rleRun struct {
	count int
	tag   byte
}

func serialiseRLE(p *Pattern) string {
	var sb strings.Builder

	if name := singleLine(p.Metadata.Name); name != "" {
		sb.WriteString("#N " + name + "\n")
	}
	if author := singleLine(p.Metadata.Author); author != "" {
		sb.WriteString("#O " + author + "\n")
	}
	if p.Metadata.Description != "" {
		for _, line := range strings.Split(p.Metadata.Description, "\n") {
			sb.WriteString("#C " + line + "\n")
		}
	}

	table := p.Cells.IntoCellTable()
	sb.WriteString("x = " + strconv.Itoa(table.Width) + ", y = " + strconv.Itoa(table.Height))
	sb.WriteString(", rule = " + p.Metadata.Rule.String() + "\n")

	var runs []rleRun
	push := func(tag byte) {
		if n := len(runs); n > 0 && runs[n-1].tag == tag {
			runs[n-1].count++
			return
		}
		runs = append(runs, rleRun{count: 1, tag: tag})
	}

	for _, row := range table.Cells {
		for _, cell := range row {
			if cell == Alive {
				push('o')
			} else {
				push('b')
			}
		}
		// A trailing dead run is implied by the end of the row.
		if n := len(runs); n > 0 && runs[n-1].tag == 'b' {
			runs = runs[:n-1]
		}
		push('$')
	}
	// So is the final row end.
	if n := len(runs); n > 0 && runs[n-1].tag == '$' {
		runs = runs[:n-1]
	}

	lineLen := 0
	for _, r := range runs {
		token := string(r.tag)
		if r.count > 1 {
			token = strconv.Itoa(r.count) + token
		}
		if lineLen+len(token) > rleLineLimit {
			sb.WriteByte('\n')
			lineLen = 0
		}
		sb.WriteString(token)
		lineLen += len(token)
	}
	if lineLen+1 > rleLineLimit {
		sb.WriteByte('\n')
	}
	sb.WriteByte('!')

	return sb.String()
}
