package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

const clearCmd = "clear"

// TerminalRenderer writes world snapshots to a terminal
type TerminalRenderer struct {
	Out    io.Writer
	Glyphs Glyphs
}

// NewTerminalRenderer renders to stdout with the given glyphs
func NewTerminalRenderer(glyphs Glyphs) *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout, Glyphs: glyphs}
}

// Display renders the world to the terminal
func (r *TerminalRenderer) Display(w *World) {
	r.Print(w.Render(r.Glyphs))
}

// Print writes an already rendered frame
func (r *TerminalRenderer) Print(frame string) {
	fmt.Fprint(r.Out, frame)
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}
