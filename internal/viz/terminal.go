package viz

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/bounce/internal/dynamo"
	"github.com/san-kum/bounce/internal/metrics"
	"github.com/san-kum/bounce/internal/sim"
)

const (
	defaultCols = 80
	defaultRows = 24
	statusLines = 2
	// DefaultHold is how many frames a key press keeps the key held.
	DefaultHold = 8
)

type Options struct {
	Title   string
	FPS     int
	Hold    int
	Braille bool
	Log     *slog.Logger
}

type tickMsg time.Time

// Terminal is a Bubble Tea model and the sim.Surface the engine presents to.
type Terminal struct {
	engine   *sim.Engine
	opts     Options
	frameDur time.Duration
	held     map[dynamo.Key]int
	frame    []uint32
	trace    *metrics.Trace
	styles   cellStyles
	cols     int
	rows     int
	braille  bool
	quitting bool
	err      error
}

func NewTerminal(eng *sim.Engine, opts Options) *Terminal {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Hold <= 0 {
		opts.Hold = DefaultHold
	}
	if opts.Log == nil {
		opts.Log = slog.New(slog.DiscardHandler)
	}

	t := &Terminal{
		engine:   eng,
		opts:     opts,
		frameDur: time.Second / time.Duration(opts.FPS),
		held:     make(map[dynamo.Key]int),
		frame:    make([]uint32, eng.Viewport().Size()),
		trace:    metrics.NewRollingTrace(0, 64),
		styles:   make(cellStyles),
		cols:     defaultCols,
		rows:     defaultRows,
		braille:  opts.Braille,
	}
	eng.AddObserver(t.trace)
	return t
}

func (t *Terminal) IsOpen() bool { return !t.quitting }

func (t *Terminal) IsKeyDown(k dynamo.Key) bool { return t.held[k] > 0 }

func (t *Terminal) PressedKeys() dynamo.KeySet {
	keys := dynamo.NewKeySet()
	for k, left := range t.held {
		if left > 0 {
			keys[k] = struct{}{}
		}
	}
	return keys
}

func (t *Terminal) Present(buf []uint32, width, height int) error {
	if len(buf) != width*height {
		return fmt.Errorf("buffer holds %d pixels, want %dx%d", len(buf), width, height)
	}
	copy(t.frame, buf)
	return nil
}

func (t *Terminal) Init() tea.Cmd { return t.tick() }

func (t *Terminal) tick() tea.Cmd {
	return tea.Tick(t.frameDur, func(tm time.Time) tea.Msg { return tickMsg(tm) })
}

func (t *Terminal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			t.quitting = true
			t.opts.Log.Info("terminal closed", "frames", t.engine.Frame())
			return t, tea.Quit
		case tea.KeyTab:
			t.braille = !t.braille
			return t, nil
		}
		if k := keyFromMsg(msg); k != dynamo.KeyUnknown {
			t.held[k] = t.opts.Hold
		}
	case tea.WindowSizeMsg:
		t.cols, t.rows = msg.Width, msg.Height
	case tickMsg:
		if !t.IsOpen() {
			return t, tea.Quit
		}
		t.engine.Step(t.PressedKeys())
		vp := t.engine.Viewport()
		if err := t.Present(t.engine.Buffer(), vp.Width, vp.Height); err != nil {
			t.err = &dynamo.FrameError{Frame: t.engine.Frame() - 1, Wrapped: err}
			t.quitting = true
			return t, tea.Quit
		}
		t.release()
		return t, t.tick()
	}
	return t, nil
}

// release counts down every held key by one frame.
func (t *Terminal) release() {
	for k, left := range t.held {
		if left <= 1 {
			delete(t.held, k)
			continue
		}
		t.held[k] = left - 1
	}
}

func keyFromMsg(msg tea.KeyMsg) dynamo.Key {
	switch msg.Type {
	case tea.KeySpace:
		return dynamo.KeySpace
	case tea.KeyLeft:
		return dynamo.KeyLeft
	case tea.KeyRight:
		return dynamo.KeyRight
	case tea.KeyUp:
		return dynamo.KeyUp
	case tea.KeyDown:
		return dynamo.KeyDown
	case tea.KeyRunes:
		return dynamo.ParseKey(strings.ToLower(msg.String()))
	}
	return dynamo.KeyUnknown
}

func (t *Terminal) View() string {
	if t.quitting {
		return ""
	}

	rows := max(t.rows-statusLines, 1)
	vp := t.engine.Viewport()

	var b strings.Builder
	if t.braille {
		b.WriteString(RenderBraille(t.frame, vp, t.cols, rows))
	} else {
		b.WriteString(RenderBlocks(t.frame, vp, t.cols, rows, t.styles))
	}

	b.WriteString(TitleStyle.Render(t.opts.Title))
	b.WriteString("  ")
	b.WriteString(MetricLabel.Render("frame "))
	b.WriteString(MetricValue.Render(fmt.Sprintf("%d", t.engine.Frame())))
	b.WriteString("  ")
	b.WriteString(MetricLabel.Render("height "))
	b.WriteString(SparklineChart(t.trace.Values(), 24))
	b.WriteString("\n")
	b.WriteString(KeyHint.Render("a/d push · w jump · tab render mode · esc quit"))
	return b.String()
}

// Err reports a presentation failure that ended the program.
func (t *Terminal) Err() error { return t.err }

// Run takes over the terminal until Esc or ctrl+c.
func Run(eng *sim.Engine, opts Options) error {
	t := NewTerminal(eng, opts)
	if _, err := tea.NewProgram(t, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return t.Err()
}

var _ sim.Surface = (*Terminal)(nil)
