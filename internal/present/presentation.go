package present

import "deckview/internal/events"

// Presentation is the controller: it owns the slide registry, the
// navigation player, the hotkeys toggle, and the readiness hook consumers
// use to defer wiring until navigation exists. Its bus emits slideadd and
// slideremove, each carrying the affected *Slide.
type Presentation struct {
	events  *events.Bus
	player  *Player
	slides  []*Slide
	hotkeys bool

	ready    bool
	readyCbs []func()
}

func New() *Presentation {
	p := &Presentation{
		events:  events.NewBus(),
		hotkeys: true,
	}
	p.player = newPlayer(p)
	return p
}

func (p *Presentation) Events() *events.Bus { return p.events }

func (p *Presentation) Player() *Player { return p.player }

// Size returns the number of registered slides.
func (p *Presentation) Size() int { return len(p.slides) }

// Get returns the slide at index, or nil when no such slide exists.
func (p *Presentation) Get(index int) *Slide {
	if index < 0 || index >= len(p.slides) {
		return nil
	}
	return p.slides[index]
}

// Add appends a slide to the registry, assigns its index, and emits
// slideadd.
func (p *Presentation) Add(s *Slide) {
	s.index = len(p.slides)
	p.slides = append(p.slides, s)
	p.events.Emit(EventSlideAdd, s)
}

// Remove takes the slide at index out of the registry, reindexes the
// remainder, and emits slideremove. It returns the removed slide, or nil
// when the index was out of range.
func (p *Presentation) Remove(index int) *Slide {
	s := p.Get(index)
	if s == nil {
		return nil
	}
	p.slides = append(p.slides[:index:index], p.slides[index+1:]...)
	for i := index; i < len(p.slides); i++ {
		p.slides[i].index = i
	}
	s.index = -1
	p.player.slideRemoved(index)
	p.events.Emit(EventSlideRemove, s)
	return s
}

// Go requests navigation to the slide at index.
func (p *Presentation) Go(index int) {
	p.player.GoTo(index)
}

// Ready invokes cb once the controller has finished initializing. When
// already ready, cb runs immediately.
func (p *Presentation) Ready(cb func()) {
	if p.ready {
		cb()
		return
	}
	p.readyCbs = append(p.readyCbs, cb)
}

// MarkReady flags the controller as initialized and flushes queued Ready
// callbacks, in registration order.
func (p *Presentation) MarkReady() {
	if p.ready {
		return
	}
	p.ready = true
	cbs := p.readyCbs
	p.readyCbs = nil
	for _, cb := range cbs {
		cb()
	}
}

func (p *Presentation) IsHotkeysEnabled() bool { return p.hotkeys }

// SetHotkeysEnabled toggles keyboard shortcut handling, for example while
// a text input has focus.
func (p *Presentation) SetHotkeysEnabled(enabled bool) { p.hotkeys = enabled }
