package present

import "testing"

func addSlides(p *Presentation, n int) []*Slide {
	slides := make([]*Slide, n)
	for i := range slides {
		slides[i] = NewSlide("s", "t", "b", nil)
		p.Add(slides[i])
	}
	return slides
}

func TestAddAssignsIndexAndEmits(t *testing.T) {
	p := New()
	var added []*Slide
	p.Events().On(EventSlideAdd, func(payload any) {
		added = append(added, payload.(*Slide))
	})

	slides := addSlides(p, 3)

	if p.Size() != 3 {
		t.Fatalf("expected size 3, got %d", p.Size())
	}
	for i, s := range slides {
		if s.Index() != i {
			t.Fatalf("slide %d has index %d", i, s.Index())
		}
		if p.Get(i) != s {
			t.Fatalf("Get(%d) returned wrong slide", i)
		}
	}
	if len(added) != 3 {
		t.Fatalf("expected 3 slideadd events, got %d", len(added))
	}
}

func TestGetOutOfRange(t *testing.T) {
	p := New()
	addSlides(p, 2)
	if p.Get(-1) != nil || p.Get(2) != nil {
		t.Fatalf("expected nil for out-of-range indices")
	}
}

func TestRemoveReindexesAndEmits(t *testing.T) {
	p := New()
	slides := addSlides(p, 3)
	var removed *Slide
	p.Events().On(EventSlideRemove, func(payload any) {
		removed = payload.(*Slide)
	})

	got := p.Remove(1)

	if got != slides[1] || removed != slides[1] {
		t.Fatalf("expected slide 1 to be removed and announced")
	}
	if got.Index() != -1 {
		t.Fatalf("expected removed slide index -1, got %d", got.Index())
	}
	if p.Size() != 2 || p.Get(1) != slides[2] || slides[2].Index() != 1 {
		t.Fatalf("expected remaining slides to be reindexed")
	}
	if p.Remove(5) != nil {
		t.Fatalf("expected Remove on missing index to return nil")
	}
}

func TestRemoveAdjustsPlayerPosition(t *testing.T) {
	p := New()
	addSlides(p, 4)
	p.Go(3)
	p.Remove(1)
	if got := p.Player().CurrentSlideIndex(); got != 2 {
		t.Fatalf("expected current index to follow the active slide, got %d", got)
	}
	p.Remove(2)
	if got := p.Player().CurrentSlideIndex(); got != 1 {
		t.Fatalf("expected current index clamped to last slide, got %d", got)
	}
}

func TestReadyCallbackTiming(t *testing.T) {
	p := New()
	order := []string{}
	p.Ready(func() { order = append(order, "queued") })
	p.Ready(func() { order = append(order, "queued2") })

	p.MarkReady()
	p.Ready(func() { order = append(order, "immediate") })

	if len(order) != 3 || order[0] != "queued" || order[1] != "queued2" || order[2] != "immediate" {
		t.Fatalf("unexpected callback order: %v", order)
	}

	p.MarkReady() // second call must not re-run anything
	if len(order) != 3 {
		t.Fatalf("expected MarkReady to be one-shot, got %v", order)
	}
}

func TestPlayerNavigation(t *testing.T) {
	p := New()
	addSlides(p, 3)
	pl := p.Player()
	var activated []int
	pl.Events().On(EventActivate, func(payload any) {
		activated = append(activated, payload.(*Slide).Index())
	})

	pl.GoTo(1)
	pl.Next()
	pl.Next() // off the end, ignored
	pl.Prev()
	pl.First()
	pl.Prev() // before the start, ignored
	pl.Last()

	want := []int{1, 2, 1, 0, 2}
	if len(activated) != len(want) {
		t.Fatalf("activations = %v, want %v", activated, want)
	}
	for i := range want {
		if activated[i] != want[i] {
			t.Fatalf("activations = %v, want %v", activated, want)
		}
	}
	if pl.CurrentSlideIndex() != 2 {
		t.Fatalf("expected current index 2, got %d", pl.CurrentSlideIndex())
	}
}

func TestHotkeysToggle(t *testing.T) {
	p := New()
	if !p.IsHotkeysEnabled() {
		t.Fatalf("expected hotkeys enabled by default")
	}
	p.SetHotkeysEnabled(false)
	if p.IsHotkeysEnabled() {
		t.Fatalf("expected hotkeys disabled after toggle")
	}
}

func TestSlideContentUpdate(t *testing.T) {
	s := NewSlide("id", "old", "old body", nil)
	s.SetContent("new", "new body")
	if s.Title() != "new" || s.Body() != "new body" {
		t.Fatalf("expected content to be replaced, got %q/%q", s.Title(), s.Body())
	}
}
