package ui

import (
	"strconv"
	"strings"

	"deckview/internal/events"
	"deckview/internal/present"
)

// termStage adapts the terminal to the present.Stage contract. Geometry is
// measured in character cells. Scroll requests are recorded rather than
// applied, because the viewport lives on the model; the update loop drains
// them after dispatching events.
type termStage struct {
	root *present.Element
	bus  *events.Bus

	vw, vh float64
	cw, ch float64

	pendingScroll *float64
}

func newTermStage() *termStage {
	return &termStage{
		root: present.NewElement(),
		bus:  events.NewBus(),
	}
}

func (s *termStage) Root() *present.Element { return s.root }

func (s *termStage) Events() *events.Bus { return s.bus }

func (s *termStage) ViewportSize() (float64, float64) { return s.vw, s.vh }

func (s *termStage) ContentSize() (float64, float64) { return s.cw, s.ch }

func (s *termStage) ScrollTo(top float64) { s.pendingScroll = &top }

// Resize records the new terminal geometry and announces it to stage
// listeners.
func (s *termStage) Resize(w, h float64) {
	s.vw, s.vh = w, h
	s.bus.Emit(present.EventResize, nil)
}

// SetContentSize records the natural size of whatever the stage currently
// shows, the input to the viewport-fit factor.
func (s *termStage) SetContentSize(w, h float64) { s.cw, s.ch = w, h }

// Keydown dispatches a key to stage listeners and reports whether one of
// them claimed it.
func (s *termStage) Keydown(e *present.KeyEvent) bool {
	s.bus.Emit(present.EventKeyDown, e)
	return e.DefaultPrevented()
}

// ConsumeScroll returns the most recent scroll request, if any, and clears
// it.
func (s *termStage) ConsumeScroll() (float64, bool) {
	if s.pendingScroll == nil {
		return 0, false
	}
	top := *s.pendingScroll
	s.pendingScroll = nil
	return top, true
}

// rootScale reads the fit factor back from the transform the mode
// container wrote to the root element.
func (s *termStage) rootScale() float64 {
	return parseScale(s.root.Style("transform"))
}

// parseScale extracts the factor from a "scale(f)" transform value. Any
// malformed or non-positive value falls back to identity.
func parseScale(value string) float64 {
	if !strings.HasPrefix(value, "scale(") || !strings.HasSuffix(value, ")") {
		return 1
	}
	f, err := strconv.ParseFloat(value[len("scale("):len(value)-1], 64)
	if err != nil || f <= 0 {
		return 1
	}
	return f
}
