package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var tcellColors = map[Color]tcell.Color{
	ColorGrey:    tcell.ColorSilver,
	ColorWhite:   tcell.ColorWhite,
	ColorYellow:  tcell.ColorYellow,
	ColorGreen:   tcell.ColorLime,
	ColorCyan:    tcell.ColorAqua,
	ColorBlue:    tcell.ColorBlue,
	ColorMagenta: tcell.ColorFuchsia,
}

// Screen draws onto a tcell.Screen. Writes past the screen edge are clipped.
type Screen struct {
	s     tcell.Screen
	x, y  int
	style tcell.Style
}

// NewScreen opens the controlling terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return NewScreenFrom(s)
}

// NewScreenFrom initializes s and wraps it.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	s.HideCursor()
	return &Screen{s: s, style: tcell.StyleDefault}, nil
}

func (t *Screen) Clear() error {
	t.s.Clear()
	t.x, t.y = 0, 0
	return nil
}

func (t *Screen) MoveTo(col, row int) error {
	if col < 0 || row < 0 {
		return fmt.Errorf("cursor position (%d,%d) is negative", col, row)
	}
	t.x, t.y = col, row
	return nil
}

func (t *Screen) SetForeground(c Color) error {
	tc, ok := tcellColors[c]
	if !ok {
		return fmt.Errorf("unsupported color %d", c)
	}
	t.style = tcell.StyleDefault.Foreground(tc)
	return nil
}

func (t *Screen) WriteString(s string) error {
	for _, r := range s {
		t.s.SetContent(t.x, t.y, r, nil, t.style)
		t.x += runewidth.RuneWidth(r)
	}
	return nil
}

func (t *Screen) Flush() error {
	t.s.Show()
	return nil
}

// Interrupts calls cancel once Ctrl-C or Escape is pressed. The raw-mode
// terminal swallows SIGINT, so this restores the usual way out. It returns
// after cancel fires or the screen is closed.
func (t *Screen) Interrupts(cancel func()) {
	for {
		ev := t.s.PollEvent()
		if ev == nil {
			return
		}
		if key, ok := ev.(*tcell.EventKey); ok {
			if key.Key() == tcell.KeyCtrlC || key.Key() == tcell.KeyEscape {
				cancel()
				return
			}
		}
	}
}

// Close restores the terminal.
func (t *Screen) Close() error {
	t.s.Fini()
	return nil
}
