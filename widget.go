package snapfloat

import (
	"image"
	"runtime"
	"time"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"
	"github.com/esimov/snapfloat/utils"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Float is a Gio widget hosting a draggable child which snaps to the
// nearest edge of the area it is laid out in.
//
// The zero value is ready to use. The configuration fields are read on the
// first call to Layout.
type Float struct {
	// Padding is the clearance kept between the snapped child and the edge.
	Padding unit.Dp
	// FadeOutTime is the inactivity delay before docking.
	FadeOutTime time.Duration
	// FadeOutEnable turns docking on.
	FadeOutEnable bool
	// Placement is the initial position of the child, in dp.
	Placement Placement
	// Touch forces the touch or mouse input family. When nil the family is
	// picked from the platform.
	Touch *bool
	// Debug logs the snap and dock decisions.
	Debug bool

	ctrl      *Controller
	err       error
	clock     *FrameClock
	events    *Dispatcher
	container *Box
	target    *Box

	elemTag, areaTag bool
	last             f32.Point
	pressed          bool

	shown f32.Point
	anim  struct {
		from, to f32.Point
		start    time.Time
		active   bool
	}
}

// Layout lays out w at its current position and handles the pointer input.
// It fills the maximum constraints.
func (f *Float) Layout(gtx C, w layout.Widget) D {
	size := gtx.Constraints.Max

	cgtx := gtx
	cgtx.Constraints.Min = image.Point{}
	macro := op.Record(gtx.Ops)
	dims := w(cgtx)
	call := macro.Stop()

	if f.ctrl == nil && f.err == nil {
		f.init(gtx, size, dims.Size)
	}
	if f.err != nil {
		call.Add(gtx.Ops)
		return D{Size: size}
	}

	if elem := layout.FPt(dims.Size); elem != f.target.Size() {
		f.target.Resize(elem)
	}
	if cs := layout.FPt(size); cs != f.container.Size() {
		f.container.Resize(cs)
		f.events.Dispatch(PointerEvent{Kind: Resize})
	}

	f.update(gtx)
	f.clock.Advance(gtx.Now)
	f.animate(gtx.Now)

	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, &f.areaTag)

	off := op.Offset(f.shown.Round()).Push(gtx.Ops)
	pass := pointer.PassOp{}.Push(gtx.Ops)
	area := clip.Rect{Max: dims.Size}.Push(gtx.Ops)
	event.Op(gtx.Ops, &f.elemTag)
	pointer.CursorGrab.Add(gtx.Ops)
	area.Pop()
	pass.Pop()
	call.Add(gtx.Ops)
	off.Pop()

	switch next, ok := f.clock.Next(); {
	case f.anim.active:
		gtx.Execute(op.InvalidateCmd{})
	case ok:
		gtx.Execute(op.InvalidateCmd{At: next})
	}
	return D{Size: size}
}

func (f *Float) init(gtx C, size, elem image.Point) {
	touch := runtime.GOOS == "android" || runtime.GOOS == "ios"
	if f.Touch != nil {
		touch = *f.Touch
	}

	f.container = NewBox(layout.FPt(size))
	f.target = NewBox(layout.FPt(elem))
	f.clock = NewFrameClock(gtx.Now)
	f.events = NewDispatcher(touch)

	f.ctrl, f.err = New(Options{
		Container:     f.container,
		Target:        f.target,
		Padding:       float32(gtx.Dp(f.Padding)),
		FadeOutTime:   f.FadeOutTime,
		FadeOutEnable: f.FadeOutEnable,
		Placement:     scalePlacement(f.Placement, gtx.Metric.PxPerDp),
		Scheduler:     f.clock,
		Events:        f.events,
		Debug:         f.Debug,
	})
	if f.err != nil {
		return
	}
	f.shown = f.target.Offset()
	f.anim.to = f.shown
}

// update translates the queued pointer events into controller events.
func (f *Float) update(gtx C) {
	for {
		ev, ok := gtx.Event(pointer.Filter{Target: &f.elemTag, Kinds: pointer.Press})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		// Element events are local to the element. Move them to the
		// container space the drag events use.
		e.Position = e.Position.Add(f.shown)
		if pe, ok := translate(e, e.Position); ok {
			f.pressed = true
			f.last = e.Position
			gtx.Execute(pointer.GrabCmd{Tag: &f.areaTag, ID: e.PointerID})
			f.events.Dispatch(pe)
		}
	}

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: &f.areaTag,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok || e.Kind == pointer.Press || !f.pressed {
			continue
		}
		pe, ok := translate(e, f.last)
		if !ok {
			continue
		}
		f.last = e.Position
		if pe.Kind != Move {
			f.pressed = false
		}
		f.events.Dispatch(pe)
	}
}

// animate moves the rendered position towards the element offset. Offsets
// written with the transition hint on are eased over TransitionDuration,
// the others are applied right away.
func (f *Float) animate(now time.Time) {
	if to := f.target.Offset(); to != f.anim.to {
		f.anim.to = to
		if f.target.Transition() {
			f.anim.from = f.shown
			f.anim.start = now
			f.anim.active = true
		} else {
			f.anim.active = false
		}
	}
	if !f.anim.active {
		f.shown = f.anim.to
		return
	}

	t := float32(now.Sub(f.anim.start)) / float32(TransitionDuration)
	t = utils.Clamp(t, 0, 1)
	if t == 1 {
		f.anim.active = false
	}
	k := easeOut(t)
	f.shown = f32.Pt(
		utils.Lerp(f.anim.from.X, f.anim.to.X, k),
		utils.Lerp(f.anim.from.Y, f.anim.to.Y, k),
	)
}

// Controller returns the controller driving the widget, or nil before the
// first call to Layout.
func (f *Float) Controller() *Controller { return f.ctrl }

// Err returns the error raised while setting up the controller.
func (f *Float) Err() error { return f.err }

// Position returns the rendered position of the child.
func (f *Float) Position() f32.Point { return f.shown }

// Pressed reports whether the child is being held.
func (f *Float) Pressed() bool { return f.pressed }

// Close releases the controller.
func (f *Float) Close() {
	if f.ctrl != nil {
		f.ctrl.Close()
	}
}

// translate converts a Gio pointer event into a controller event. last is
// the position of the previous event of the same pointer, used to derive
// the movement Gio does not report.
func translate(e pointer.Event, last f32.Point) (PointerEvent, bool) {
	pe := PointerEvent{Position: e.Position}
	switch e.Kind {
	case pointer.Press:
		pe.Kind = Press
	case pointer.Drag:
		pe.Kind = Move
		pe.Movement = e.Position.Sub(last)
	case pointer.Release:
		pe.Kind = Release
	case pointer.Cancel:
		pe.Kind = Cancel
	default:
		return pe, false
	}
	return pe, true
}

func scalePlacement(p Placement, scale float32) Placement {
	if scale == 0 {
		scale = 1
	}
	px := func(v *float32) *float32 {
		if v == nil {
			return nil
		}
		return Px(*v * scale)
	}
	return Placement{Top: px(p.Top), Left: px(p.Left), Right: px(p.Right), Bottom: px(p.Bottom)}
}

// easeOut is the cubic ease-out curve.
func easeOut(t float32) float32 {
	u := 1 - t
	return 1 - u*u*u
}
