package present

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestFrame(t *testing.T) {
	frame := []byte{
		1, 2, 3, 255, 4, 5, 6, 255,
		7, 8, 9, 255, 10, 11, 12, 255,
	}
	img, err := Frame(frame, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if px := img.NRGBAAt(1, 1); px.R != 10 || px.B != 12 {
		t.Errorf("unexpected pixel %v", px)
	}

	if _, err := Frame(frame, 3, 2); err == nil {
		t.Error("expected error for short frame")
	}
	if _, err := Frame(frame, 0, 2); err == nil {
		t.Error("expected error for empty size")
	}
}

func TestScale(t *testing.T) {
	frame := []byte{
		255, 0, 0, 255, 0, 0, 255, 255,
	}
	src, _ := Frame(frame, 2, 1)

	img := Scale(src, 4, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			px := img.NRGBAAt(x, y)
			if x < 2 && px.R != 255 || x >= 2 && px.B != 255 {
				t.Errorf("pixel (%d, %d) = %v", x, y, px)
			}
		}
	}
}

func TestTerminalPresent(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	term, err := NewTerminalScreen(sim)
	if err != nil {
		t.Fatal(err)
	}
	defer term.Close()
	sim.SetSize(2, 1)

	// 2x2 frame: red over blue in column 0, green over white in column 1
	frame := []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 255, 255,
	}
	if err := term.Present(frame, 2, 2); err != nil {
		t.Fatal(err)
	}

	cells, w, h := sim.GetContents()
	if w != 2 || h != 1 {
		t.Fatalf("screen %dx%d", w, h)
	}

	expected := []struct{ fg, bg tcell.Color }{
		{tcell.NewRGBColor(255, 0, 0), tcell.NewRGBColor(0, 0, 255)},
		{tcell.NewRGBColor(0, 255, 0), tcell.NewRGBColor(255, 255, 255)},
	}
	for i, want := range expected {
		if len(cells[i].Runes) == 0 || cells[i].Runes[0] != halfBlock {
			t.Errorf("cell %d runes %q", i, cells[i].Runes)
		}
		fg, bg, _ := cells[i].Style.Decompose()
		if fg != want.fg || bg != want.bg {
			t.Errorf("cell %d fg %v bg %v", i, fg, bg)
		}
	}
}

func TestTerminalPollQuit(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	term, err := NewTerminalScreen(sim)
	if err != nil {
		t.Fatal(err)
	}
	defer term.Close()

	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	polls := 1
	for !term.PollQuit() {
		polls++
		if polls > 4 {
			t.Fatal("'q' did not quit")
		}
	}
	if polls < 2 {
		t.Error("'x' should not quit")
	}

	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	if !term.PollQuit() {
		t.Error("escape should quit")
	}
}
