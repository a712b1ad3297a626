package pattern

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// Metadata is the format-neutral information that accompanies a pattern.
// Empty strings mean the field was absent.
type Metadata struct {
	Name        string
	Description string
	Author      string
	Generation  *uint64
	Rule        rules.Rule
}

// Pattern is a parsed cell set plus its metadata.
type Pattern struct {
	Cells    Cells
	Metadata Metadata
}

// New returns an empty pattern using Conway's rule.
func New() *Pattern {
	return &Pattern{
		Cells:    ListCells(CellList{}),
		Metadata: Metadata{Rule: rules.Normal()},
	}
}

// Parse detects the format of text and parses it.
func Parse(text string) (*Pattern, error) {
	return Detect(text).Parse(text)
}

// ParseFile reads the whole file at path and parses it with the codec the
// content identifies. The extension only decides which codec is tried first.
func ParseFile(path string) (*Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[ParseFile] failed to read file: %+v", path)
	}
	text := string(data)

	format := Detect(text)
	if preferred, ok := FormatForPath(path); ok && preferred.IsType(text) {
		format = preferred
	}

	p, err := format.Parse(text)
	if err != nil {
		return nil, errors.Wrapf(err, "[ParseFile] failed to parse %s file: %+v", format, path)
	}
	return p, nil
}

// Serialise writes the pattern to w in the given format.
func (p *Pattern) Serialise(f Format, w io.Writer) error {
	text, err := f.Serialise(p)
	if err != nil {
		return err
	}
	if _, err = io.WriteString(w, text); err != nil {
		return errors.Wrapf(err, "[Serialise] failed to write %s output", f)
	}
	return nil
}

// WriteFile serialises the pattern into the file at path.
func (p *Pattern) WriteFile(path string, f Format) error {
	text, err := f.Serialise(p)
	if err != nil {
		return errors.Wrapf(err, "[WriteFile] failed to serialise pattern: %+v", path)
	}
	if err = os.WriteFile(path, []byte(text), 0o644); err != nil {
		return errors.Wrapf(err, "[WriteFile] failed to write file: %+v", path)
	}
	return nil
}

// splitLines splits text into lines, dropping a single trailing newline and
// any carriage returns.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func appendLine(text, line string) string {
	if text == "" {
		return line
	}
	return text + "\n" + line
}

// singleLine keeps metadata values that must fit on one line from breaking
// the output.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
