package present

import (
	"image"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

// Terminal draws frames with half-block characters, two pixel rows per
// cell: the upper pixel is the foreground and the lower the background.
type Terminal struct {
	screen tcell.Screen
}

func NewTerminal() (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalScreen(s)
}

// NewTerminalScreen initialises s and presents onto it.
func NewTerminalScreen(s tcell.Screen) (*Terminal, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.HideCursor()
	s.Clear()
	return &Terminal{screen: s}, nil
}

func cellColor(img *image.NRGBA, x, y int) tcell.Color {
	px := img.NRGBAAt(x, y)
	return tcell.NewRGBColor(int32(px.R), int32(px.G), int32(px.B))
}

// Present fits the frame to the terminal.
func (t *Terminal) Present(frame []byte, width, height int) error {
	src, err := Frame(frame, width, height)
	if err != nil {
		return err
	}

	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil
	}
	img := Scale(src, cols, rows*2)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			style := tcell.StyleDefault.
				Foreground(cellColor(img, col, row*2)).
				Background(cellColor(img, col, row*2+1))
			t.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
	t.screen.Show()
	return nil
}

// PollQuit blocks for the next event and reports whether it asks to quit:
// Escape, Ctrl-C or q. Resizes are handled here.
func (t *Terminal) PollQuit() bool {
	switch ev := t.screen.PollEvent().(type) {
	case nil:
		return true
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			return ev.Rune() == 'q' || ev.Rune() == 'Q'
		}
	}
	return false
}

func (t *Terminal) Close() error {
	t.screen.Fini()
	return nil
}
