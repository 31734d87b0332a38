// Package ui is the bubbletea front end: a scrollable list of slide tiles
// with fuzzy search, and a full-viewport slide display rendered through
// glamour. The display mode itself is owned by present.ModeContainer; the
// model feeds it terminal events through the stage and reads the mode back
// when drawing.
package ui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"deckview/internal/config"
	"deckview/internal/deck"
	"deckview/internal/present"
	"deckview/internal/watch"
)

// --- Model / State ---
type state int

const (
	stateLoading state = iota
	stateView
	stateError
	stateQuit
)

// tileHeight is how many terminal lines one slide occupies in the list
// view: title, snippet, separator. Layout offsets are multiples of it.
const tileHeight = 3

// chromeTop is the number of lines drawn above the list viewport: title,
// divider, search bar, blank. Mouse hit testing subtracts it.
const chromeTop = 4

// footerLines is reserved below the viewport for status and help.
const footerLines = 2

// naturalWrap is the wrap width a slide is measured at before the fit
// factor scales it to the terminal.
const naturalWrap = 80

type SearchState struct {
	searching   bool
	input       textinput.Model
	query       string
	filteredIdx []int // visible position -> slide index; nil when unfiltered
}

type Model struct {
	cfg      config.Config
	deckPath string

	state   state
	loadErr error
	width   int
	height  int

	meta  deck.Meta
	pres  *present.Presentation
	mc    *present.ModeContainer
	stage *termStage

	viewport viewport.Model
	spinner  spinner.Model
	progress progress.Model

	search    SearchState
	filterCfg FilterConfig
	listIndex int // cursor position among visible tiles

	watcher   *watch.Watcher
	statusMsg string
}

// theme resolves the render theme: deck metadata wins over config.
func (m *Model) theme() string {
	if m.meta.Theme != "" {
		return m.meta.Theme
	}
	return m.cfg.Theme
}

// visibleCount is the number of tiles the list currently shows.
func (m *Model) visibleCount() int {
	if m.search.filteredIdx == nil {
		return m.pres.Size()
	}
	return len(m.search.filteredIdx)
}

// slideAt resolves a visible list position to its slide, honoring the
// active search filter.
func (m *Model) slideAt(pos int) *present.Slide {
	if m.search.filteredIdx != nil {
		if pos < 0 || pos >= len(m.search.filteredIdx) {
			return nil
		}
		pos = m.search.filteredIdx[pos]
	}
	return m.pres.Get(pos)
}

func (m *Model) clampCursor() {
	n := m.visibleCount()
	if n == 0 {
		m.listIndex = 0
		return
	}
	if m.listIndex < 0 {
		m.listIndex = 0
	}
	if m.listIndex > n-1 {
		m.listIndex = n - 1
	}
}
