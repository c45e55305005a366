package snapfloat

import "gioui.org/f32"

// EventKind is the kind of a platform event consumed by the controller.
type EventKind uint8

const (
	// Press starts a drag session. It is delivered for presses on the element.
	Press EventKind = iota
	// Move is a pointer or touch movement anywhere in the container.
	Move
	// Release ends the drag session.
	Release
	// Cancel ends the drag session when the gesture is interrupted,
	// for example when the pointer leaves the container.
	Cancel
	// Resize reports a change of the container dimensions.
	Resize
)

func (k EventKind) String() string {
	switch k {
	case Press:
		return "press"
	case Move:
		return "move"
	case Release:
		return "release"
	case Cancel:
		return "cancel"
	case Resize:
		return "resize"
	}
	return "unknown"
}

// PointerEvent is a single platform event.
type PointerEvent struct {
	Kind EventKind
	// Position is the pointer or contact point position.
	Position f32.Point
	// Movement is the distance travelled since the previous event, as
	// reported by mouse style platforms. Touch platforms leave it zero.
	Movement f32.Point
}

// InputFamily turns the events of one input modality into element movements.
// A controller selects its family once and never switches.
type InputFamily interface {
	// Name identifies the family, "mouse" or "touch".
	Name() string
	begin(s *session, e PointerEvent)
	delta(s *session, e PointerEvent) f32.Point
}

var (
	// Mouse moves the element by the per-event movement the platform reports.
	Mouse InputFamily = mouseFamily{}
	// Touch moves the element by the distance between consecutive contact positions.
	Touch InputFamily = touchFamily{}
)

type mouseFamily struct{}

func (mouseFamily) Name() string { return "mouse" }

func (mouseFamily) begin(s *session, e PointerEvent) {
	s.origin = e.Position
}

func (mouseFamily) delta(_ *session, e PointerEvent) f32.Point {
	return e.Movement
}

type touchFamily struct{}

func (touchFamily) Name() string { return "touch" }

func (touchFamily) begin(s *session, e PointerEvent) {
	s.origin = e.Position
}

func (touchFamily) delta(s *session, e PointerEvent) f32.Point {
	d := e.Position.Sub(s.origin)
	s.origin = e.Position
	return d
}

// EventSource is the platform capability to subscribe to pointer and resize events.
type EventSource interface {
	// TouchCapable reports whether the platform delivers touch input.
	TouchCapable() bool
	// Subscribe registers h for events of the given kind. Calling the
	// returned function removes the registration.
	Subscribe(kind EventKind, h func(PointerEvent)) (cancel func())
}

// DetectFamily picks the input family matching the platform capability.
func DetectFamily(src EventSource) InputFamily {
	if src != nil && src.TouchCapable() {
		return Touch
	}
	return Mouse
}

// Dispatcher is an in-process EventSource. Host toolkits translate their
// native events and feed them to Dispatch. The zero value is a mouse
// platform dispatcher with no handlers.
type Dispatcher struct {
	touch    bool
	nextID   int
	handlers map[EventKind][]handler
}

type handler struct {
	id int
	fn func(PointerEvent)
}

var _ EventSource = (*Dispatcher)(nil)

// NewDispatcher returns a Dispatcher reporting the given touch capability.
func NewDispatcher(touch bool) *Dispatcher {
	return &Dispatcher{
		touch:    touch,
		handlers: make(map[EventKind][]handler),
	}
}

func (d *Dispatcher) TouchCapable() bool {
	return d.touch
}

func (d *Dispatcher) Subscribe(kind EventKind, h func(PointerEvent)) func() {
	if d.handlers == nil {
		d.handlers = make(map[EventKind][]handler)
	}
	d.nextID++
	id := d.nextID
	d.handlers[kind] = append(d.handlers[kind], handler{id: id, fn: h})

	return func() {
		hs := d.handlers[kind]
		for i := range hs {
			if hs[i].id == id {
				d.handlers[kind] = append(hs[:i:i], hs[i+1:]...)
				return
			}
		}
	}
}

// Dispatch delivers e to every handler registered for its kind, in
// registration order.
func (d *Dispatcher) Dispatch(e PointerEvent) {
	// Handlers may unsubscribe while being called; iterate over a snapshot.
	hs := append([]handler(nil), d.handlers[e.Kind]...)
	for _, h := range hs {
		h.fn(e)
	}
}

// Handlers returns the number of handlers registered for kind.
func (d *Dispatcher) Handlers(kind EventKind) int {
	return len(d.handlers[kind])
}
