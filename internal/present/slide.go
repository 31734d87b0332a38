package present

import "deckview/internal/events"

// Slide is one slide in the registry. It owns its event bus (emitting
// click) and a layout wrapping the element the list view positions it
// with. The index is owned by the presentation and assigned on Add.
type Slide struct {
	events *events.Bus
	layout *Layout
	index  int

	id    string
	title string
	body  string
}

func NewSlide(id, title, body string, el *Element) *Slide {
	if el == nil {
		el = NewElement()
	}
	return &Slide{
		events: events.NewBus(),
		layout: &Layout{el: el},
		index:  -1,
		id:     id,
		title:  title,
		body:   body,
	}
}

func (s *Slide) Events() *events.Bus { return s.events }

func (s *Slide) Layout() *Layout { return s.layout }

// Index is the slide's position in the registry, -1 before it is added.
func (s *Slide) Index() int { return s.index }

func (s *Slide) ID() string { return s.id }

func (s *Slide) Title() string { return s.title }

func (s *Slide) Body() string { return s.body }

// SetContent replaces title and body, used when a reload changes a slide
// in place.
func (s *Slide) SetContent(title, body string) {
	s.title = title
	s.body = body
}

// Click reports a pointer click on the slide's tile. Listeners decide what
// it means; the mode container uses it to enter slide mode from the list.
func (s *Slide) Click() {
	s.events.Emit(EventClick, s)
}

// Layout gives access to the element a slide is rendered into.
type Layout struct {
	el *Element
}

func (l *Layout) Element() *Element { return l.el }
