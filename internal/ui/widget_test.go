package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calebmce/tabglide/internal/config"
	"github.com/calebmce/tabglide/internal/geometry"
	"github.com/calebmce/tabglide/internal/render"
)

func newTestWidget(t *testing.T) *Widget {
	t.Helper()
	w := NewWidget(config.Default())
	w.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return w
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// settle drives the frame clock until every transition has finished.
func (w *Widget) settle(t *testing.T) {
	t.Helper()
	now := w.lastFrame
	for i := 0; w.seq.Running() > 0; i++ {
		if i > 1000 {
			t.Fatal("animations never settled")
		}
		now = now.Add(33 * time.Millisecond)
		w.Update(frameMsg(now))
	}
}

func TestWidget_CycleKeys(t *testing.T) {
	w := newTestWidget(t)

	w.Update(keyMsg("right"))
	if got := w.bar.Index(); got != 1 {
		t.Fatalf("after right: index %d, want 1", got)
	}

	w.Update(keyMsg("left"))
	if got := w.bar.Index(); got != 0 {
		t.Fatalf("after left: index %d, want 0", got)
	}

	// Cycling wraps at both ends.
	w.settle(t)
	w.Update(keyMsg("left"))
	if got, want := w.bar.Index(), len(w.bar.Tabs())-1; got != want {
		t.Fatalf("after wrap: index %d, want %d", got, want)
	}
}

func TestWidget_DirectSelect(t *testing.T) {
	w := newTestWidget(t)

	w.Update(keyMsg("3"))
	if got := w.bar.Index(); got != 2 {
		t.Fatalf("after '3': index %d, want 2", got)
	}

	// Out-of-range digits are ignored.
	w.Update(keyMsg("9"))
	if got := w.bar.Index(); got != 2 {
		t.Fatalf("after '9': index %d, want 2", got)
	}
}

func TestWidget_QuitKey(t *testing.T) {
	w := newTestWidget(t)
	_, cmd := w.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Fatalf("expected tea.Quit, got %T", msg)
	}
}

func TestWidget_ClockStopsWhenSettled(t *testing.T) {
	w := newTestWidget(t)

	_, cmd := w.Update(keyMsg("right"))
	if cmd == nil {
		t.Fatal("animated select should start the frame clock")
	}
	if w.seq.Running() == 0 {
		t.Fatal("expected transitions in flight")
	}

	w.settle(t)
	if w.ticking {
		t.Fatal("clock still running after transitions finished")
	}

	// A redundant keypress with nothing in flight keeps the clock off.
	_, cmd = w.Update(keyMsg("2"))
	if cmd != nil {
		t.Fatal("no-op select should not restart the clock")
	}
}

func TestWidget_MouseTap(t *testing.T) {
	w := newTestWidget(t)

	// Column under the second tab's center.
	count := len(w.bar.Tabs())
	col := int(geometry.CenterX(1, count, w.bar.Width()) / render.UnitsPerCol)
	w.Update(tea.MouseMsg{
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
		X:      col,
	})
	if got := w.bar.Index(); got != 1 {
		t.Fatalf("after tap: index %d, want 1", got)
	}
}

func TestWidget_Reload(t *testing.T) {
	w := newTestWidget(t)
	w.Update(keyMsg("right"))
	w.settle(t)

	cfg := config.Default()
	cfg.Tabs = cfg.Tabs[:3]
	w.Update(ReloadMsg{Config: cfg})

	if got := len(w.bar.Tabs()); got != 3 {
		t.Fatalf("after reload: %d tabs, want 3", got)
	}
	// Showing a new tab set resets the selection to the first tab.
	if got := w.bar.Index(); got != 0 {
		t.Fatalf("after reload: index %d, want 0", got)
	}
}

func TestWidget_ViewIncludesHelp(t *testing.T) {
	w := newTestWidget(t)
	view := w.View()
	if !strings.Contains(view, "quit") {
		t.Fatalf("view missing help line:\n%s", view)
	}
	if got := strings.Count(view, "\n"); got < w.renderer.Height() {
		t.Fatalf("view has %d newlines, want at least %d", got, w.renderer.Height())
	}
}
