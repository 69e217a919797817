package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/bounce/internal/dynamo"
	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/sim"
)

func newTestTerminal(t *testing.T) (*Terminal, *physics.Disc) {
	t.Helper()
	eng, err := sim.New(dynamo.Viewport{Width: 800, Height: 600})
	if err != nil {
		t.Fatal(err)
	}
	d := physics.NewDisc(dynamo.Vec2{X: 376, Y: 276}, 24, "#cf5353")
	eng.AddBody(d)
	return NewTerminal(eng, Options{Title: "test", Hold: 3}), d
}

func TestTerminalHeldKeys(t *testing.T) {
	term, d := newTestTerminal(t)

	term.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	if !term.IsKeyDown(dynamo.KeyD) {
		t.Fatal("d should be held after a press")
	}

	for i := 0; i < 3; i++ {
		term.Update(tickMsg(time.Now()))
	}
	if term.IsKeyDown(dynamo.KeyD) {
		t.Error("d should be released after the hold window")
	}
	if d.Phys.Vel.X <= 0 {
		t.Errorf("holding d should push right, vx = %f", d.Phys.Vel.X)
	}

	vx := d.Phys.Vel.X
	term.Update(tickMsg(time.Now()))
	if d.Phys.Vel.X >= vx {
		t.Error("released key should stop accelerating")
	}
}

func TestTerminalQuit(t *testing.T) {
	term, _ := newTestTerminal(t)

	_, cmd := term.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if term.IsOpen() {
		t.Error("terminal should be closed after esc")
	}
	if term.View() != "" {
		t.Error("closed terminal should render nothing")
	}

	frame := term.engine.Frame()
	term.Update(tickMsg(time.Now()))
	if term.engine.Frame() != frame {
		t.Error("closed terminal must not step the engine")
	}
}

func TestTerminalPresentsFrames(t *testing.T) {
	term, _ := newTestTerminal(t)
	term.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	_, cmd := term.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	lit := 0
	for _, px := range term.frame {
		if px == 0xcf5353 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("presented frame should contain the disc")
	}

	view := term.View()
	if !strings.Contains(view, "▀") {
		t.Error("half-block view should draw the disc")
	}
	if !strings.Contains(view, "esc quit") {
		t.Error("view should show key hints")
	}

	term.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !term.braille {
		t.Error("tab should switch to braille")
	}
	if strings.Contains(term.View(), "▀") {
		t.Error("braille view should not use half blocks")
	}
}

func TestKeyFromMsg(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want dynamo.Key
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, dynamo.KeyA},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("W")}, dynamo.KeyW},
		{tea.KeyMsg{Type: tea.KeySpace}, dynamo.KeySpace},
		{tea.KeyMsg{Type: tea.KeyLeft}, dynamo.KeyLeft},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, dynamo.KeyUnknown},
	}

	for _, tt := range tests {
		if got := keyFromMsg(tt.msg); got != tt.want {
			t.Errorf("keyFromMsg(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestSample(t *testing.T) {
	vp := dynamo.Viewport{Width: 8, Height: 4}
	buf := make([]uint32, vp.Size())
	buf[0] = 0x111111
	buf[7] = 0x222222

	f := Sample(buf, vp, 4, 4)
	if f.Width != 4 || f.Height != 2 {
		t.Fatalf("expected 4x2 frame, got %dx%d", f.Width, f.Height)
	}
	if f.At(0, 0) != 0x111111 {
		t.Errorf("expected top-left sample, got %#x", f.At(0, 0))
	}

	full := Sample(buf, vp, 100, 100)
	if full.Width != 8 || full.Height != 4 {
		t.Errorf("small viewports should not be upscaled, got %dx%d", full.Width, full.Height)
	}
	if full.At(7, 0) != 0x222222 {
		t.Errorf("expected top-right pixel, got %#x", full.At(7, 0))
	}

	if empty := Sample(buf, vp, 0, 10); empty.Width != 0 {
		t.Error("zero-sized target should give an empty frame")
	}
}

func TestCanvas(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(10, 10)

	got := []rune(strings.TrimSuffix(c.String(), "\n"))
	if len(got) != 2 || got[0] != 0x2801 || got[1] != 0x2880 {
		t.Errorf("unexpected canvas %q", string(got))
	}

	c.Clear()
	if []rune(c.String())[0] != 0x2800 {
		t.Error("clear should reset cells")
	}
}

func TestSparklineChart(t *testing.T) {
	if got := SparklineChart(nil, 5); got != "─────" {
		t.Errorf("empty sparkline = %q", got)
	}
	if got := SparklineChart([]float64{1, 2, 3, 4, 5, 6}, 3); strings.Count(got, "▁")+strings.Count(got, "█")+strings.Count(got, "▄") != 3 {
		t.Errorf("expected 3 bars, got %q", got)
	}
}
