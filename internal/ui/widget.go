// Package ui hosts the Bubble Tea program around the tab bar: input
// handling, the frame clock driving the sequencer, and live config reloads.
package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/calebmce/tabglide/internal/anim"
	"github.com/calebmce/tabglide/internal/config"
	"github.com/calebmce/tabglide/internal/render"
	"github.com/calebmce/tabglide/internal/tabs"
)

// KeyMap holds the widget's key bindings.
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Direct key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next tab"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "previous tab"),
		),
		Direct: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Direct, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ReloadMsg carries a freshly loaded configuration into the running
// program. The config watcher delivers it through Program.Send.
type ReloadMsg struct {
	Config config.Config
}

type frameMsg time.Time

// Widget is the top-level tea.Model. It owns the bar, its sequencer and
// the renderer, and advances animations on a frame clock that only runs
// while transitions are in flight.
type Widget struct {
	bar      *tabs.Bar
	seq      *anim.Sequencer
	renderer *render.Renderer

	keys KeyMap
	help help.Model

	animated  bool
	fps       int
	ticking   bool
	lastFrame time.Time
}

// NewWidget builds a widget from cfg. The initial tab set is shown
// immediately so View is valid before the first Update.
func NewWidget(cfg config.Config) *Widget {
	renderer := render.NewRenderer(cfg.RenderTheme())
	seq := anim.NewSequencer()
	bar := tabs.NewBar(renderer, seq)
	bar.SetMutedTint(cfg.RenderTheme().Muted)
	bar.Show(cfg.TabSet())

	return &Widget{
		bar:      bar,
		seq:      seq,
		renderer: renderer,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		animated: cfg.Animated(),
		fps:      cfg.Bar.FPS,
	}
}

// Bar exposes the underlying tab bar, mainly for initial selection and
// event subscription before the program starts.
func (w *Widget) Bar() *tabs.Bar { return w.bar }

// Init implements tea.Model.
func (w *Widget) Init() tea.Cmd {
	return w.startClock()
}

// Update implements tea.Model.
func (w *Widget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, w.keys.Quit):
			return w, tea.Quit
		case key.Matches(msg, w.keys.Next):
			w.cycle(1)
		case key.Matches(msg, w.keys.Prev):
			w.cycle(-1)
		case key.Matches(msg, w.keys.Direct):
			w.bar.SelectIndex(int(msg.Runes[0]-'1'), w.animated)
		}
		return w, w.startClock()

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			w.bar.Tap((float64(msg.X) + 0.5) * render.UnitsPerCol)
			return w, w.startClock()
		}
		return w, nil

	case tea.WindowSizeMsg:
		w.renderer.SetColumns(msg.Width)
		w.bar.SetWidth(w.renderer.UnitWidth())
		w.help.Width = msg.Width
		return w, nil

	case frameMsg:
		now := time.Time(msg)
		w.seq.Step(now.Sub(w.lastFrame))
		w.lastFrame = now
		if w.seq.Running() == 0 {
			w.ticking = false
			return w, nil
		}
		return w, w.tick()

	case ReloadMsg:
		cfg := msg.Config
		w.renderer.SetTheme(cfg.RenderTheme())
		w.bar.SetMutedTint(cfg.RenderTheme().Muted)
		w.bar.Show(cfg.TabSet())
		w.animated = cfg.Animated()
		w.fps = cfg.Bar.FPS
		return w, w.startClock()
	}

	return w, nil
}

// View implements tea.Model.
func (w *Widget) View() string {
	return fmt.Sprintf("%s\n%s", w.renderer.View(), w.help.View(w.keys))
}

func (w *Widget) cycle(dir int) {
	count := len(w.bar.Tabs())
	if count == 0 {
		return
	}
	next := (w.bar.Index() + dir + count) % count
	w.bar.SelectIndex(next, w.animated)
}

// startClock begins the frame loop if transitions are in flight and the
// clock is not already running.
func (w *Widget) startClock() tea.Cmd {
	if w.ticking || w.seq.Running() == 0 {
		return nil
	}
	w.ticking = true
	w.lastFrame = time.Now()
	return w.tick()
}

func (w *Widget) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(w.fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
