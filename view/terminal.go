package view

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearScreen = "\033[H\033[2J"
)

// TerminalRenderer draws whole frames to a plain terminal stream
type TerminalRenderer struct {
	out io.Writer
	au  aurora.Aurora
}

// NewTerminalRenderer returns a renderer writing to out, with ANSI colors when colors is set.
func NewTerminalRenderer(out io.Writer, colors bool) *TerminalRenderer {
	return &TerminalRenderer{out: out, au: aurora.NewAurora(colors)}
}

// Display renders the status block followed by the grid
func (r *TerminalRenderer) Display(g *model.Grid, st game.Status) error {
	var b bytes.Buffer
	b.WriteString(strings.Join(statusLines(r.au, st), " | "))
	b.WriteString("\n\n")
	writeField(&b, g, g.Width(), g.Height(), r.au.Green(gridPosBlock).String(), gridPosEmpty, "")
	b.WriteByte('\n')

	if _, err := r.out.Write(b.Bytes()); err != nil {
		return errors.Wrap(err, "[Display] failed to write frame")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	if _, err := io.WriteString(r.out, clearScreen); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear screen")
	}
	return nil
}

// Printf writes a status message
func (r *TerminalRenderer) Printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}
