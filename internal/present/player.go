package present

import "deckview/internal/events"

// Player tracks which slide is active and emits activate (payload *Slide)
// whenever navigation lands on one. Requests for indices outside the
// registry are ignored; validity is owned by the registry.
type Player struct {
	events  *events.Bus
	pres    *Presentation
	current int
}

func newPlayer(p *Presentation) *Player {
	return &Player{
		events: events.NewBus(),
		pres:   p,
	}
}

func (pl *Player) Events() *events.Bus { return pl.events }

// CurrentSlideIndex returns the index of the active slide.
func (pl *Player) CurrentSlideIndex() int { return pl.current }

// GoTo activates the slide at index.
func (pl *Player) GoTo(index int) {
	s := pl.pres.Get(index)
	if s == nil {
		return
	}
	pl.current = index
	pl.events.Emit(EventActivate, s)
}

func (pl *Player) Next() { pl.GoTo(pl.current + 1) }

func (pl *Player) Prev() { pl.GoTo(pl.current - 1) }

func (pl *Player) First() { pl.GoTo(0) }

func (pl *Player) Last() { pl.GoTo(pl.pres.Size() - 1) }

// slideRemoved keeps the current index pointing at the same slide after a
// removal, clamping when the active slide itself was removed.
func (pl *Player) slideRemoved(index int) {
	if pl.current > index {
		pl.current--
	}
	if max := pl.pres.Size() - 1; pl.current > max {
		if max < 0 {
			pl.current = 0
		} else {
			pl.current = max
		}
	}
}
