package ui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"deckview/internal/config"
	"deckview/internal/deck"
)

func testDeck(n int) *deck.Deck {
	d := &deck.Deck{Meta: deck.Meta{Title: "demo"}}
	for i := 0; i < n; i++ {
		d.Pages = append(d.Pages, deck.Page{
			ID:    fmt.Sprintf("p%d", i),
			Title: fmt.Sprintf("Slide %d", i),
			Body:  fmt.Sprintf("body %d", i),
		})
	}
	return d
}

func testModel(t *testing.T, n int) Model {
	t.Helper()
	cfg := config.Default()
	off := false
	cfg.Watch = &off

	m := NewModel(cfg, "deck.md")
	nm, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = nm.(Model)
	nm, _ = m.Update(deckLoadedMsg{deck: testDeck(n)})
	return nm.(Model)
}

func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	nm, _ := m.Update(msg)
	return nm.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestEnterPresentsCursorSlide(t *testing.T) {
	m := testModel(t, 5)
	m = press(t, m, runes("j"))
	m = press(t, m, runes("j"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.mc.IsSlideMode() {
		t.Fatalf("expected slide mode after enter")
	}
	if got := m.pres.Player().CurrentSlideIndex(); got != 2 {
		t.Fatalf("expected slide 2 presented, got %d", got)
	}
}

func TestEscapeReturnsToList(t *testing.T) {
	m := testModel(t, 5)
	m = press(t, m, runes("j"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.mc.IsSlideMode() {
		t.Fatalf("expected list mode after escape")
	}
}

func TestF5StartsFromFirstSlide(t *testing.T) {
	m := testModel(t, 5)
	m = press(t, m, runes("j"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyF5})

	if !m.mc.IsSlideMode() {
		t.Fatalf("expected slide mode after f5")
	}
	if got := m.pres.Player().CurrentSlideIndex(); got != 0 {
		t.Fatalf("expected presentation to restart at 0, got %d", got)
	}
}

func TestSlideNavigation(t *testing.T) {
	m := testModel(t, 3)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = press(t, m, runes("l"))
	m = press(t, m, runes("l"))
	m = press(t, m, runes("l")) // off the end, ignored
	if got := m.pres.Player().CurrentSlideIndex(); got != 2 {
		t.Fatalf("expected slide 2, got %d", got)
	}
	m = press(t, m, runes("h"))
	if got := m.pres.Player().CurrentSlideIndex(); got != 1 {
		t.Fatalf("expected slide 1, got %d", got)
	}
}

func TestSearchDisablesHotkeys(t *testing.T) {
	m := testModel(t, 5)
	m = press(t, m, runes("/"))
	if m.pres.IsHotkeysEnabled() {
		t.Fatalf("expected hotkeys disabled while searching")
	}

	// enter closes the search input instead of presenting
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mc.IsSlideMode() {
		t.Fatalf("expected enter to close search, not present")
	}
	if !m.pres.IsHotkeysEnabled() {
		t.Fatalf("expected hotkeys re-enabled after search closes")
	}
}

func TestSearchFiltersTiles(t *testing.T) {
	m := testModel(t, 5)
	m = press(t, m, runes("/"))
	m = press(t, m, runes("slide 2"))

	if got := m.visibleCount(); got != 1 {
		t.Fatalf("expected 1 visible slide, got %d", got)
	}
	if s := m.slideAt(0); s == nil || s.Title() != "Slide 2" {
		t.Fatalf("expected Slide 2 to survive the filter")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if got := m.visibleCount(); got != 5 {
		t.Fatalf("expected filter cleared on esc, got %d visible", got)
	}
}

func TestReloadKeepsSlidesWhenIDsMatch(t *testing.T) {
	m := testModel(t, 3)
	before := m.pres.Get(1)

	d := testDeck(3)
	d.Pages[1].Body = "updated body"
	m = press(t, m, deckLoadedMsg{deck: d})

	if m.pres.Get(1) != before {
		t.Fatalf("expected slide to be updated in place")
	}
	if m.pres.Get(1).Body() != "updated body" {
		t.Fatalf("expected reloaded body, got %q", m.pres.Get(1).Body())
	}
}

func TestReloadRebuildsWhenIDsChange(t *testing.T) {
	m := testModel(t, 3)
	d := testDeck(2)
	m = press(t, m, deckLoadedMsg{deck: d})

	if got := m.pres.Size(); got != 2 {
		t.Fatalf("expected registry rebuilt to 2 slides, got %d", got)
	}
}

func TestReloadErrorKeepsLastGoodDeck(t *testing.T) {
	m := testModel(t, 3)
	m = press(t, m, deckLoadedMsg{err: fmt.Errorf("boom")})

	if m.state != stateView {
		t.Fatalf("expected viewer to keep running, got state %v", m.state)
	}
	if m.pres.Size() != 3 {
		t.Fatalf("expected slides preserved, got %d", m.pres.Size())
	}
}

func TestInitialLoadErrorFails(t *testing.T) {
	cfg := config.Default()
	off := false
	cfg.Watch = &off
	m := NewModel(cfg, "deck.md")
	m = press(t, m, deckLoadedMsg{err: fmt.Errorf("no such file")})

	if m.state != stateError {
		t.Fatalf("expected error state on first load failure, got %v", m.state)
	}
}

func TestMouseClickPresents(t *testing.T) {
	m := testModel(t, 5)
	m = press(t, m, tea.MouseMsg{
		Y:      chromeTop + tileHeight, // second tile
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})

	if !m.mc.IsSlideMode() {
		t.Fatalf("expected click to enter slide mode")
	}
	if got := m.pres.Player().CurrentSlideIndex(); got != 1 {
		t.Fatalf("expected clicked slide 1 presented, got %d", got)
	}
}

func TestQuitKey(t *testing.T) {
	m := testModel(t, 2)
	nm, cmd := m.Update(runes("q"))
	m = nm.(Model)
	if m.state != stateQuit {
		t.Fatalf("expected quit state")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
}

func TestHotkeyMapping(t *testing.T) {
	e, ok := hotkeyFor(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p"), Alt: true})
	if !ok || !e.Alt || !e.Meta {
		t.Fatalf("expected alt+p to carry the full modifier chord")
	}
	if _, ok := hotkeyFor(runes("x")); ok {
		t.Fatalf("expected plain runes to pass through")
	}
}
