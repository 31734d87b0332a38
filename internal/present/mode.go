package present

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"deckview/internal/events"
	"deckview/internal/infra/logx"
)

// ErrSlideNotFound is returned by ScrollToSlide when the requested index
// has no slide. Callers inside this package only ever pass indices sourced
// from the registry, so hitting it signals a collaborator contract
// violation and is surfaced as a diagnostic rather than recovered.
var ErrSlideNotFound = errors.New("slide not found")

// ModeClasses names the two mutually exclusive visual-mode flags on the
// stage root element.
type ModeClasses struct {
	List string
	Full string
}

// ModeConfig configures a ModeContainer. Zero fields get defaults:
// "list"/"full" class names and a single "transform" style property.
type ModeConfig struct {
	Classes ModeClasses
	// TransformProps is the set of style property names the fit transform
	// is written to. Kept configurable for stages that recognize variant
	// property names.
	TransformProps []string
}

// ModeContainer owns the list/slide display-mode flag, the viewport-fit
// transform, and the event subscriptions that keep mode, scroll position,
// and keyboard shortcuts consistent with the rest of the presentation.
//
// The flag and the class pair on the root element never diverge: both are
// written only by EnterSlideMode and ExitSlideMode.
type ModeContainer struct {
	events *events.Bus
	pres   *Presentation
	stage  Stage

	classes        ModeClasses
	transformProps []string

	slideMode bool
	destroyed bool

	subs      events.Set
	clickSubs map[*Slide]events.Subscription
}

// NewModeContainer builds a container over the given controller and stage.
// Call Init to apply the initial visual state and attach listeners.
func NewModeContainer(pres *Presentation, stage Stage, cfg ModeConfig) *ModeContainer {
	if cfg.Classes.List == "" {
		cfg.Classes.List = "list"
	}
	if cfg.Classes.Full == "" {
		cfg.Classes.Full = "full"
	}
	if len(cfg.TransformProps) == 0 {
		cfg.TransformProps = []string{"transform"}
	}
	return &ModeContainer{
		events:         events.NewBus(),
		pres:           pres,
		stage:          stage,
		classes:        cfg.Classes,
		transformProps: cfg.TransformProps,
		clickSubs:      make(map[*Slide]events.Subscription),
	}
}

// Events is the container's own bus, emitting slidemodeenter and
// slidemodeexit with no payload.
func (mc *ModeContainer) Events() *events.Bus { return mc.events }

// Init applies the list class when the root carries neither mode class,
// infers the mode flag from the full class, and attaches all listeners.
// Calling Init twice without Destroy double-registers listeners.
func (mc *ModeContainer) Init() {
	root := mc.stage.Root()
	if !root.HasClass(mc.classes.List) && !root.HasClass(mc.classes.Full) {
		root.AddClass(mc.classes.List)
	}
	mc.slideMode = root.HasClass(mc.classes.Full)

	for i := 0; i < mc.pres.Size(); i++ {
		mc.watchSlide(mc.pres.Get(i))
	}
	mc.subs.On(mc.pres.Events(), EventSlideAdd, mc.onSlideAdd)
	mc.subs.On(mc.pres.Events(), EventSlideRemove, mc.onSlideRemove)

	// Navigation exists only once the controller is ready.
	mc.pres.Ready(func() {
		if mc.destroyed {
			return
		}
		mc.subs.On(mc.pres.Player().Events(), EventActivate, mc.onActivate)
	})

	mc.subs.On(mc.stage.Events(), EventResize, mc.onResize)
	mc.subs.On(mc.stage.Events(), EventKeyDown, mc.onKeyDown)
}

// Destroy releases every subscription established since Init and drops the
// controller and stage references. The container is unusable afterwards.
func (mc *ModeContainer) Destroy() {
	mc.destroyed = true
	mc.subs.Release()
	for _, sub := range mc.clickSubs {
		sub.Cancel()
	}
	mc.clickSubs = nil
	mc.slideMode = false
	mc.pres = nil
	mc.stage = nil
}

// IsSlideMode reports whether the container is in full-viewport slide mode.
func (mc *ModeContainer) IsSlideMode() bool { return mc.slideMode }

// EnterSlideMode switches to full-viewport slide display. It is idempotent
// on the flag but always re-applies the fit transform and re-emits
// slidemodeenter, so callers can force a re-fit after resize drift.
func (mc *ModeContainer) EnterSlideMode() {
	root := mc.stage.Root()
	root.RemoveClass(mc.classes.List)
	root.AddClass(mc.classes.Full)
	mc.applyTransform()
	mc.slideMode = true
	mc.events.Emit(EventSlideModeEnter, nil)
}

// ExitSlideMode switches back to the scrollable list. When leaving slide
// mode it restores the list scroll position to the active slide. The
// transform is reset to identity, not removed. slidemodeexit is emitted
// unconditionally.
func (mc *ModeContainer) ExitSlideMode() {
	root := mc.stage.Root()
	root.RemoveClass(mc.classes.Full)
	root.AddClass(mc.classes.List)
	mc.resetTransform()
	if mc.slideMode {
		if err := mc.ScrollToSlide(mc.pres.Player().CurrentSlideIndex()); err != nil {
			logx.Errorf("exit slide mode: %v", err)
		}
	}
	mc.slideMode = false
	mc.events.Emit(EventSlideModeExit, nil)
}

// ScrollToSlide scrolls the viewport so the slide at index has its top
// edge at the viewport top. A missing index returns ErrSlideNotFound and
// performs no scroll.
func (mc *ModeContainer) ScrollToSlide(index int) error {
	s := mc.pres.Get(index)
	if s == nil {
		return fmt.Errorf("scroll to slide %d: %w", index, ErrSlideNotFound)
	}
	mc.stage.ScrollTo(s.Layout().Element().OffsetTop())
	return nil
}

// FitFactor computes the uniform scale that fits the content into the
// viewport: 1 / max(contentW/viewportW, contentH/viewportH). Content
// smaller than the viewport yields a factor above 1; it is not clamped.
// An unmeasured (zero-sized) viewport keeps the identity factor.
func (mc *ModeContainer) FitFactor() float64 {
	vw, vh := mc.stage.ViewportSize()
	if vw <= 0 || vh <= 0 {
		return 1
	}
	cw, ch := mc.stage.ContentSize()
	ratio := math.Max(cw/vw, ch/vh)
	if ratio <= 0 {
		return 1
	}
	return 1 / ratio
}

func (mc *ModeContainer) applyTransform() {
	mc.setTransform(scaleValue(mc.FitFactor()))
}

func (mc *ModeContainer) resetTransform() {
	mc.setTransform(scaleValue(1))
}

func (mc *ModeContainer) setTransform(value string) {
	root := mc.stage.Root()
	for _, prop := range mc.transformProps {
		root.SetStyle(prop, value)
	}
}

func scaleValue(factor float64) string {
	return "scale(" + strconv.FormatFloat(factor, 'g', -1, 64) + ")"
}

func (mc *ModeContainer) onSlideAdd(payload any) {
	if s, ok := payload.(*Slide); ok {
		mc.watchSlide(s)
	}
}

func (mc *ModeContainer) onSlideRemove(payload any) {
	s, ok := payload.(*Slide)
	if !ok {
		return
	}
	if sub, ok := mc.clickSubs[s]; ok {
		sub.Cancel()
		delete(mc.clickSubs, s)
	}
}

func (mc *ModeContainer) watchSlide(s *Slide) {
	if s == nil {
		return
	}
	if _, ok := mc.clickSubs[s]; ok {
		return
	}
	mc.clickSubs[s] = s.Events().On(EventClick, func(any) {
		if !mc.slideMode {
			mc.EnterSlideMode()
		}
	})
}

func (mc *ModeContainer) onActivate(payload any) {
	s, ok := payload.(*Slide)
	if !ok {
		return
	}
	if err := mc.ScrollToSlide(s.Index()); err != nil {
		logx.Errorf("activate: %v", err)
	}
}

func (mc *ModeContainer) onResize(any) {
	if mc.slideMode {
		mc.applyTransform()
	}
}

func (mc *ModeContainer) onKeyDown(payload any) {
	e, ok := payload.(*KeyEvent)
	if !ok {
		return
	}
	if !mc.pres.IsHotkeysEnabled() {
		return
	}
	switch e.Code {
	case KeyEnter:
		e.PreventDefault()
		mc.EnterSlideMode()
	case KeyEscape:
		e.PreventDefault()
		mc.ExitSlideMode()
	case KeyF5:
		e.PreventDefault()
		if !mc.slideMode {
			index := 0
			if e.Shift {
				index = mc.pres.Player().CurrentSlideIndex()
			}
			mc.pres.Go(index)
			mc.EnterSlideMode()
		} else {
			mc.ExitSlideMode()
		}
	case KeyP:
		if !mc.slideMode && e.Alt && e.Meta {
			e.PreventDefault()
			mc.EnterSlideMode()
		}
	}
}
