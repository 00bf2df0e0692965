package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// TerminalRenderer draws a universe as blocks on a terminal
type TerminalRenderer struct {
	out   io.Writer
	au    aurora.Aurora
	alive string
}

// NewTerminalRenderer creates a renderer writing to out, colors toggles ANSI escape codes
func NewTerminalRenderer(out io.Writer, colors bool) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	au := aurora.NewAurora(colors)
	return &TerminalRenderer{
		out:   out,
		au:    au,
		alive: au.Green(gridPosBlock).String(),
	}
}

// Display renders the universe to the terminal
func (r *TerminalRenderer) Display(u *Universe) error {
	w := bufio.NewWriter(r.out)
	for y := range u.Rows() {
		for x := range u.Columns() {
			if u.Cell(Coordinates{X: x, Y: y}).IsAlive() {
				w.WriteString(r.alive)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return errors.Wrap(w.Flush(), "[Display] failed to write universe")
}

// Status prints a highlighted status line
func (r *TerminalRenderer) Status(format string, args ...interface{}) {
	fmt.Fprintln(r.out, r.au.Cyan(fmt.Sprintf(format, args...)))
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.out, "Error clearing terminal:", err)
	}
}
