// Package present holds the presentation runtime: the slide registry and
// navigation player, and the mode container that switches the viewer
// between the scrollable list and the full-viewport slide display.
package present

import (
	"sync"

	"deckview/internal/events"
)

// Event names used across the presentation runtime.
const (
	EventSlideAdd    = "slideadd"    // presentation bus, payload *Slide
	EventSlideRemove = "slideremove" // presentation bus, payload *Slide
	EventActivate    = "activate"    // player bus, payload *Slide
	EventClick       = "click"       // slide bus, payload *Slide

	EventResize  = "resize"  // stage bus, no payload
	EventKeyDown = "keydown" // stage bus, payload *KeyEvent

	EventSlideModeEnter = "slidemodeenter" // mode container bus, no payload
	EventSlideModeExit  = "slidemodeexit"  // mode container bus, no payload
)

// Element is a styled display node: a set of class flags plus inline style
// properties, with a vertical offset inside the scrollable content. The
// stage implementation decides how classes and styles translate to actual
// rendering.
type Element struct {
	mu      sync.Mutex
	classes map[string]bool
	styles  map[string]string
	top     float64
}

func NewElement() *Element {
	return &Element{
		classes: make(map[string]bool),
		styles:  make(map[string]string),
	}
}

func (e *Element) HasClass(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.classes[name]
}

func (e *Element) AddClass(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.classes[name] = true
}

func (e *Element) RemoveClass(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.classes, name)
}

// SetStyle sets an inline style property, replacing any previous value.
func (e *Element) SetStyle(prop, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.styles[prop] = value
}

// Style returns the current value of a style property, or "" if unset.
func (e *Element) Style(prop string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.styles[prop]
}

// OffsetTop is the element's top edge within the scrollable content area.
func (e *Element) OffsetTop() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.top
}

// SetOffsetTop is called by the stage while laying out the list view.
func (e *Element) SetOffsetTop(top float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.top = top
}

// Stage is the host display surface the presentation runs on: the root
// element the mode classes and transform are applied to, an event source
// for resize and keydown, the viewport and content geometry, and vertical
// scrolling.
type Stage interface {
	Root() *Element
	Events() *events.Bus
	ViewportSize() (w, h float64)
	ContentSize() (w, h float64)
	ScrollTo(top float64)
}

// Key identifies the keys the mode container dispatches on.
type Key int

const (
	KeyNone Key = iota
	KeyEnter
	KeyEscape
	KeyF5
	KeyP
)

// KeyEvent is a key-down notification from the stage. PreventDefault stops
// the stage's own handling of the key, mirroring how a browser key event
// would be cancelled.
type KeyEvent struct {
	Code  Key
	Shift bool
	Alt   bool
	Meta  bool

	prevented bool
}

func (e *KeyEvent) PreventDefault() { e.prevented = true }

func (e *KeyEvent) DefaultPrevented() bool { return e.prevented }
