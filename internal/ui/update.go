package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"deckview/internal/deck"
	"deckview/internal/present"
)

// ---------- Update ----------
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case deckLoadedMsg:
		return m.handleDeckLoaded(msg)
	case deckChangedMsg:
		m.statusMsg = "reloading…"
		cmds := []tea.Cmd{loadDeckCmd(m.deckPath)}
		if m.watcher != nil {
			cmds = append(cmds, watchCmd(m.watcher))
		}
		return m, tea.Batch(cmds...)
	case spinner.TickMsg:
		if m.state == stateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.viewport.Width = msg.Width
	m.viewport.Height = max(msg.Height-chromeTop-footerLines, 1)
	m.progress.Width = max(msg.Width-4, 10)

	if m.mc.IsSlideMode() {
		m.syncSlideMetrics()
	}
	m.relayout()
	m.stage.Resize(float64(msg.Width), float64(msg.Height))
	m.applyPendingScroll()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.search.searching {
		return m.handleSearchKey(msg)
	}

	// global shortcuts
	switch msg.String() {
	case "ctrl+c", "q":
		if m.watcher != nil {
			m.watcher.Close()
		}
		m.state = stateQuit
		return m, tea.Quit
	}
	if m.state != stateView {
		return m, nil
	}

	if key, ok := hotkeyFor(msg); ok {
		if m.dispatchKey(key) {
			return m, nil
		}
	}
	if m.mc.IsSlideMode() {
		return m.handleSlideKey(msg)
	}
	return m.handleListKey(msg)
}

// hotkeyFor maps terminal keys onto the presentation hotkeys the mode
// container dispatches on. Terminals fold the command modifier into alt,
// so alt+p stands in for the full modifier chord.
func hotkeyFor(msg tea.KeyMsg) (*present.KeyEvent, bool) {
	switch msg.String() {
	case "enter":
		return &present.KeyEvent{Code: present.KeyEnter}, true
	case "esc":
		return &present.KeyEvent{Code: present.KeyEscape}, true
	case "f5":
		return &present.KeyEvent{Code: present.KeyF5}, true
	case "shift+f5":
		return &present.KeyEvent{Code: present.KeyF5, Shift: true}, true
	case "alt+p":
		return &present.KeyEvent{Code: present.KeyP, Alt: true, Meta: true}, true
	}
	return nil, false
}

// dispatchKey routes a key through the stage bus and reports whether a
// listener claimed it. The slide about to be shown is measured first so
// the fit transform sees fresh content geometry.
func (m *Model) dispatchKey(e *present.KeyEvent) bool {
	if e.Code == present.KeyEnter && !m.mc.IsSlideMode() {
		if s := m.slideAt(m.listIndex); s != nil {
			m.pres.Go(s.Index())
		}
	}
	target := m.pres.Player().CurrentSlideIndex()
	if e.Code == present.KeyF5 && !e.Shift && !m.mc.IsSlideMode() {
		target = 0
	}
	m.measureSlide(m.pres.Get(target))

	claimed := m.stage.Keydown(e)
	m.applyPendingScroll()
	m.relayout()
	return claimed
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.searching = false
		m.search.input.Blur()
		m.search.input.SetValue("")
		m.search.query = ""
		m.search.filteredIdx = nil
		m.pres.SetHotkeysEnabled(true)
		m.clampCursor()
		m.relayout()
		return m, nil
	case "enter":
		m.search.searching = false
		m.search.input.Blur()
		m.pres.SetHotkeysEnabled(true)
		return m, nil
	}

	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	if q := m.search.input.Value(); q != m.search.query {
		m.search.query = q
		m.applyFilter()
		m.relayout()
	}
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.search.searching = true
		m.search.input.Focus()
		m.pres.SetHotkeysEnabled(false)
		return m, textinput.Blink
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "g", "home":
		m.listIndex = 0
		m.ensureCursorVisible()
	case "G", "end":
		m.listIndex = m.visibleCount() - 1
		m.ensureCursorVisible()
	case "ctrl+d", "pgdown":
		m.moveCursor(max(m.viewport.Height/tileHeight, 1))
	case "ctrl+u", "pgup":
		m.moveCursor(-max(m.viewport.Height/tileHeight, 1))
	case "r":
		m.statusMsg = "reloading…"
		return m, loadDeckCmd(m.deckPath)
	}
	m.relayout()
	return m, nil
}

func (m Model) handleSlideKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "right", "l", " ", "n":
		m.pres.Player().Next()
	case "left", "h", "p":
		m.pres.Player().Prev()
	case "home":
		m.pres.Player().First()
	case "end":
		m.pres.Player().Last()
	default:
		return m, nil
	}
	m.refit()
	m.applyPendingScroll()
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.state != stateView || m.mc.IsSlideMode() {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	line := msg.Y - chromeTop + m.viewport.YOffset
	if line < 0 {
		return m, nil
	}
	pos := line / tileHeight
	s := m.slideAt(pos)
	if s == nil {
		return m, nil
	}
	m.listIndex = pos
	m.pres.Go(s.Index())
	m.measureSlide(s)
	s.Click()
	m.applyPendingScroll()
	m.relayout()
	return m, nil
}

func (m Model) handleDeckLoaded(msg deckLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if m.state == stateLoading {
			m.state = stateError
			m.loadErr = msg.err
			return m, nil
		}
		// keep showing the last good deck
		m.statusMsg = fmt.Sprintf("reload failed: %v", msg.err)
		return m, nil
	}

	m.meta = msg.deck.Meta
	m.applyDeck(msg.deck)
	m.state = stateView
	m.loadErr = nil
	m.statusMsg = fmt.Sprintf("%d slides", m.pres.Size())
	m.pres.MarkReady()

	if m.search.query != "" {
		m.applyFilter()
	}
	m.relayout()
	if m.mc.IsSlideMode() {
		m.refit()
	}
	return m, nil
}

// applyDeck reconciles the registry with a freshly loaded deck. When the
// slide IDs line up, content is updated in place so listeners survive a
// reload; otherwise the registry is rebuilt.
func (m *Model) applyDeck(d *deck.Deck) {
	pages := d.Pages
	same := m.pres.Size() == len(pages)
	if same {
		for i := range pages {
			if m.pres.Get(i).ID() != pages[i].ID {
				same = false
				break
			}
		}
	}
	if same {
		for i := range pages {
			m.pres.Get(i).SetContent(pages[i].Title, pages[i].Body)
		}
		return
	}

	for m.pres.Size() > 0 {
		m.pres.Remove(m.pres.Size() - 1)
	}
	for _, pg := range pages {
		m.pres.Add(present.NewSlide(pg.ID, pg.Title, pg.Body, nil))
	}
	m.clampCursor()
}

func (m *Model) moveCursor(delta int) {
	m.listIndex += delta
	m.clampCursor()
	m.ensureCursorVisible()
}

// ensureCursorVisible keeps the cursor tile inside the viewport with a
// small scroll margin at both edges.
func (m *Model) ensureCursorVisible() {
	m.clampCursor()
	cursorLine := m.listIndex * tileHeight

	top := m.viewport.YOffset
	bottom := top + m.viewport.Height - 1

	margin := tileHeight
	if m.viewport.Height < 8 {
		margin = 1
	}

	if cursorLine < top+margin {
		m.viewport.SetYOffset(max(cursorLine-margin, 0))
	} else if cursorLine+tileHeight-1 > bottom-margin {
		m.viewport.SetYOffset(max(cursorLine-m.viewport.Height+tileHeight+margin, 0))
	}
}

// applyPendingScroll drains the scroll request the mode container may have
// issued against the stage and applies it to the list viewport.
func (m *Model) applyPendingScroll() {
	if top, ok := m.stage.ConsumeScroll(); ok {
		m.viewport.SetYOffset(int(top))
	}
}

// relayout recomputes tile offsets for the visible slides and refreshes
// the viewport content. In list mode it also republishes the content
// geometry the fit factor reads.
func (m *Model) relayout() {
	n := m.visibleCount()
	for pos := 0; pos < n; pos++ {
		if s := m.slideAt(pos); s != nil {
			s.Layout().Element().SetOffsetTop(float64(pos * tileHeight))
		}
	}
	if !m.mc.IsSlideMode() {
		m.stage.SetContentSize(float64(m.viewport.Width), float64(n*tileHeight))
	}
	m.viewport.SetContent(m.listContent())
}

// refit re-measures the current slide and re-applies the fit transform
// while in slide mode.
func (m *Model) refit() {
	m.syncSlideMetrics()
	if m.mc.IsSlideMode() {
		m.mc.EnterSlideMode()
	}
}

func (m *Model) syncSlideMetrics() {
	m.measureSlide(m.pres.Get(m.pres.Player().CurrentSlideIndex()))
}
