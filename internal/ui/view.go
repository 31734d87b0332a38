package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"deckview/internal/present"
)

// ---------- View ----------
func (m Model) View() string {
	switch m.state {
	case stateQuit:
		return ""
	case stateLoading:
		return "\n  " + m.spinner.View() + " loading deck…\n"
	case stateError:
		return "\n  " + errorStyle.Render("failed to load deck") + "\n\n  " +
			m.loadErr.Error() + "\n\n  " + helpStyle.Render("q quit") + "\n"
	}
	if m.mc.IsSlideMode() {
		return m.slideView()
	}
	return m.listView()
}

func (m Model) listView() string {
	var b strings.Builder

	title := m.meta.Title
	if title == "" {
		title = m.deckPath
	}
	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", max(10, m.width-2))) + "\n")

	switch {
	case m.search.searching:
		b.WriteString(m.search.input.View() + "\n")
	case m.search.query != "":
		b.WriteString(subtleStyle.Render("search: "+m.search.query+"  (esc clears)") + "\n")
	default:
		b.WriteString(subtleStyle.Render(fmt.Sprintf("%d slides", m.visibleCount())) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(m.viewport.View() + "\n")
	b.WriteString(renderFooter(m.statusMsg,
		"↑/↓ move · enter present · / search · r reload · q quit"))
	return b.String()
}

// listContent renders the slide tiles the viewport scrolls over. Each tile
// is exactly tileHeight lines so tile offsets and scroll positions agree.
func (m Model) listContent() string {
	n := m.visibleCount()
	if n == 0 {
		if m.search.query != "" {
			return subtleStyle.Render("no slides match")
		}
		return subtleStyle.Render("deck is empty")
	}

	var b strings.Builder
	for pos := 0; pos < n; pos++ {
		s := m.slideAt(pos)
		if s == nil {
			continue
		}
		cursor := "  "
		titleLine := fmt.Sprintf("%2d  %s", s.Index()+1, s.Title())
		if pos == m.listIndex {
			cursor = cursorBarStyle.Render(" ") + " "
			titleLine = cursorLineStyle.Render(focusStyle.Render(titleLine))
		}
		b.WriteString(cursor + titleLine + "\n")
		b.WriteString("    " + subtleStyle.Render(snippet(s.Body(), max(m.width-8, 20))) + "\n")
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m Model) slideView() string {
	s := m.pres.Get(m.pres.Player().CurrentSlideIndex())
	if s == nil {
		return "\n  " + subtleStyle.Render("deck is empty") + "\n"
	}

	// The wrap width follows the fit factor the mode container wrote to
	// the root transform, so oversized slides shrink to the terminal.
	scale := m.stage.rootScale()
	wrap := naturalWrap
	if scale < 1 {
		wrap = int(float64(naturalWrap) * scale)
	}
	wrap = min(wrap, max(m.width-4, 20))
	wrap = max(wrap, 20)

	content := s.Body()
	if r := newRenderer(m.theme(), wrap); r != nil {
		if out, err := r.Render(s.Body()); err == nil {
			content = out
		}
	}

	bodyHeight := max(m.height-2, 1)
	body := lipgloss.Place(max(m.width, 1), bodyHeight,
		lipgloss.Center, lipgloss.Center,
		cropHeight(content, bodyHeight))

	status := fmt.Sprintf("%d / %d", s.Index()+1, m.pres.Size())
	if m.meta.Author != "" {
		status += "  ·  " + m.meta.Author
	}
	bar := m.progress.ViewAs(float64(s.Index()+1) / float64(max(m.pres.Size(), 1)))

	return body + "\n" + subtleStyle.Render(status) + "  " + bar
}

// newRenderer builds a glamour renderer for the given theme and wrap
// width. An unknown style path yields a nil renderer and raw markdown.
func newRenderer(theme string, wrap int) *glamour.TermRenderer {
	var r *glamour.TermRenderer
	var err error
	if theme == "" || theme == "auto" {
		r, err = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		)
	} else {
		r, err = glamour.NewTermRenderer(
			glamour.WithStylePath(theme),
			glamour.WithWordWrap(wrap),
		)
	}
	if err != nil {
		return nil
	}
	return r
}

// measureSlide records the slide's natural rendered size so the fit
// factor compares real content geometry against the terminal.
func (m *Model) measureSlide(s *present.Slide) {
	if s == nil {
		return
	}
	out := s.Body()
	if r := newRenderer(m.theme(), naturalWrap); r != nil {
		if rendered, err := r.Render(s.Body()); err == nil {
			out = rendered
		}
	}
	w, h := lipgloss.Size(out)
	m.stage.SetContentSize(float64(w), float64(h))
}

// cropHeight trims rendered content that overflows the slide area.
func cropHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= h {
		return s
	}
	return strings.Join(lines[:h], "\n")
}

// snippet pulls the first body line worth previewing in a list tile.
func snippet(body string, width int) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || line == "---" {
			continue
		}
		r := []rune(line)
		if len(r) > width {
			return string(r[:width-1]) + "…"
		}
		return line
	}
	return ""
}
