package model

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/pattern"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// Moves the cursor home and clears the screen.
	ansiClear = "\x1b[H\x1b[2J"
)

// TerminalRenderer draws boards as text to Out
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the board, two characters per cell
func (r *TerminalRenderer) Display(b *Board) error {
	w := bufio.NewWriter(r.Out)
	for y := range b.GetHeight() {
		for x := range b.GetWidth() {
			if b.Get(x, y) == pattern.Alive {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "[Display] failed to write board")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	if _, err := io.WriteString(r.Out, ansiClear); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}

// Text renders the board with alive cells drawn as the given rune and dead
// cells as spaces, one line per row.
func (b *Board) Text(alive rune) string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := range b.height {
		for x := range b.width {
			if b.cells[y][x] == pattern.Alive {
				sb.WriteRune(alive)
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) String() string {
	return b.Text('*')
}
