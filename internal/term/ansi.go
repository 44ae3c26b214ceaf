package term

import (
	"bufio"
	"fmt"
	"io"
)

// ANSI writes CSI escape sequences to an io.Writer. Output is buffered
// until Flush.
type ANSI struct {
	w *bufio.Writer
}

// NewANSI wraps w.
func NewANSI(w io.Writer) *ANSI {
	return &ANSI{w: bufio.NewWriter(w)}
}

func (a *ANSI) Clear() error {
	_, err := a.w.WriteString("\x1b[2J\x1b[H")
	return err
}

func (a *ANSI) MoveTo(col, row int) error {
	_, err := fmt.Fprintf(a.w, "\x1b[%d;%dH", row+1, col+1)
	return err
}

func (a *ANSI) SetForeground(c Color) error {
	_, err := fmt.Fprintf(a.w, "\x1b[38;5;%dm", c.Index())
	return err
}

func (a *ANSI) WriteString(s string) error {
	_, err := a.w.WriteString(s)
	return err
}

func (a *ANSI) Flush() error {
	return a.w.Flush()
}

// Close resets terminal attributes and flushes.
func (a *ANSI) Close() error {
	if _, err := a.w.WriteString("\x1b[0m\n"); err != nil {
		return err
	}
	return a.w.Flush()
}
