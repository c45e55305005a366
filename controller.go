package snapfloat

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gioui.org/f32"
)

const (
	// TransitionDuration is how long the animation hint stays on after a
	// snap or a fade-out.
	TransitionDuration = 300 * time.Millisecond

	// DefaultFadeOutTime is the inactivity delay before the element docks.
	DefaultFadeOutTime = 4 * time.Second
)

var (
	ErrNoContainer     = errors.New("snapfloat: missing container")
	ErrNoTarget        = errors.New("snapfloat: missing target element")
	ErrNoScheduler     = errors.New("snapfloat: missing scheduler")
	ErrNegativePadding = errors.New("snapfloat: padding must not be negative")
	ErrNegativeFadeOut = errors.New("snapfloat: fade-out time must not be negative")
)

// State is the drag session state.
type State uint8

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Options configures a Controller.
type Options struct {
	// Container is the region the element moves in. Required.
	Container Container
	// Target is the draggable element. Required.
	Target Element
	// Padding is the clearance kept between the snapped element and the edge.
	Padding float32
	// FadeOutTime is the inactivity delay before docking. Zero selects
	// DefaultFadeOutTime.
	FadeOutTime time.Duration
	// FadeOutEnable turns docking on.
	FadeOutEnable bool
	// Placement is the initial position of the element.
	Placement Placement

	// Scheduler runs the transition and fade-out timers. Required.
	Scheduler Scheduler
	// Events delivers platform events. When nil the controller is driven
	// by calling its methods directly.
	Events EventSource
	// Family overrides the input family detected from Events.
	Family InputFamily

	// Debug enables logging of the snap and dock decisions.
	Debug bool
	// Logger receives debug output. Defaults to the standard logger.
	Logger *log.Logger
}

type session struct {
	state  State
	origin f32.Point
}

// Controller implements the drag, snap and dock behaviour of a floating element.
// It is not safe for concurrent use: events, timers and method calls must all
// come from the goroutine driving the UI.
type Controller struct {
	container Container
	target    Element
	sched     Scheduler
	family    InputFamily
	logger    *log.Logger

	padding       float32
	fadeOutTime   time.Duration
	fadeOutEnable bool
	debug         bool

	session session
	edge    Edge
	docked  bool
	closed  bool

	transitionTimer Timer
	fadeOutTimer    Timer
	unsubscribe     []func()
}

// New validates opts, positions the target and subscribes to the event source.
// When fade-out is enabled the element docks right away.
func New(opts Options) (*Controller, error) {
	switch {
	case opts.Container == nil:
		return nil, ErrNoContainer
	case opts.Target == nil:
		return nil, ErrNoTarget
	case opts.Scheduler == nil:
		return nil, ErrNoScheduler
	case opts.Padding < 0:
		return nil, fmt.Errorf("%w: %v", ErrNegativePadding, opts.Padding)
	case opts.FadeOutTime < 0:
		return nil, fmt.Errorf("%w: %v", ErrNegativeFadeOut, opts.FadeOutTime)
	}

	c := &Controller{
		container:     opts.Container,
		target:        opts.Target,
		sched:         opts.Scheduler,
		family:        opts.Family,
		logger:        opts.Logger,
		padding:       opts.Padding,
		fadeOutTime:   opts.FadeOutTime,
		fadeOutEnable: opts.FadeOutEnable,
		debug:         opts.Debug,
	}
	if c.fadeOutTime == 0 {
		c.fadeOutTime = DefaultFadeOutTime
	}
	if c.family == nil {
		c.family = DetectFamily(opts.Events)
	}
	if c.logger == nil {
		c.logger = log.Default()
	}

	c.target.SetAbsolute()
	c.target.SetOffset(Place(c.container.Size(), c.target.Size(), opts.Placement))

	if opts.Events != nil {
		c.subscribe(opts.Events)
	}
	if c.fadeOutEnable {
		c.FadeOut()
	}
	return c, nil
}

func (c *Controller) subscribe(src EventSource) {
	end := func(PointerEvent) { c.End() }
	c.unsubscribe = []func(){
		src.Subscribe(Press, c.Press),
		src.Subscribe(Move, c.Move),
		src.Subscribe(Release, end),
		src.Subscribe(Cancel, end),
		src.Subscribe(Resize, func(PointerEvent) { c.Resize() }),
	}
}

// Press starts a drag session. Pending transition and fade-out timers are
// stopped before anything else.
func (c *Controller) Press(e PointerEvent) {
	if c.closed {
		return
	}
	if c.transitionTimer != nil {
		// Manual drags are never animated.
		c.target.SetTransition(false)
	}
	c.stopTimers()
	c.session.state = Dragging
	c.docked = false
	c.family.begin(&c.session, e)
}

// Move drags the element by the movement carried by e. The element is not
// clamped to the container while dragging.
func (c *Controller) Move(e PointerEvent) {
	if c.closed || c.session.state != Dragging {
		return
	}
	d := c.family.delta(&c.session, e)
	c.target.SetOffset(c.target.Offset().Add(d))
}

// End finishes the drag session and snaps the element. Calls without an
// active session are ignored.
func (c *Controller) End() {
	if c.closed || c.session.state != Dragging {
		return
	}
	c.session.state = Idle
	c.ComputePosition()
}

// ComputePosition snaps the element to its nearest container edge and
// schedules the fade-out, if enabled. It returns the chosen edge.
func (c *Controller) ComputePosition() Edge {
	if c.closed {
		return c.edge
	}
	pos, edge := Snap(c.container.Size(), c.target.Size(), c.target.Offset(), c.padding)
	c.edge = edge
	c.docked = false
	c.animate(pos)

	if c.debug {
		c.logger.Printf("snapfloat: snapped to %s edge at (%.1f, %.1f)", edge, pos.X, pos.Y)
	}

	if c.fadeOutEnable {
		if c.fadeOutTimer != nil {
			c.fadeOutTimer.Stop()
		}
		c.fadeOutTimer = c.sched.AfterFunc(c.fadeOutTime, func() {
			c.fadeOutTimer = nil
			c.FadeOut()
		})
	}
	return edge
}

// FadeOut docks the element half outside its nearest edge, reading the
// current geometry. Only the docked axis changes. It returns the chosen edge.
func (c *Controller) FadeOut() Edge {
	if c.closed {
		return c.edge
	}
	pos, edge := Dock(c.container.Size(), c.target.Size(), c.target.Offset())
	c.edge = edge
	c.docked = true
	c.animate(pos)

	if c.debug {
		c.logger.Printf("snapfloat: docked on %s edge at (%.1f, %.1f)", edge, pos.X, pos.Y)
	}
	return edge
}

// Resize re-anchors the element after the container dimensions changed.
// A pending fade-out is rescheduled, so it still applies last.
func (c *Controller) Resize() {
	if c.closed {
		return
	}
	c.ComputePosition()
}

// animate writes the final offset with the transition hint on and clears
// the hint after TransitionDuration.
func (c *Controller) animate(pos f32.Point) {
	if c.transitionTimer != nil {
		c.transitionTimer.Stop()
	}
	c.target.SetTransition(true)
	c.target.SetOffset(pos)
	c.transitionTimer = c.sched.AfterFunc(TransitionDuration, func() {
		c.transitionTimer = nil
		c.target.SetTransition(false)
	})
}

func (c *Controller) stopTimers() {
	if c.transitionTimer != nil {
		c.transitionTimer.Stop()
		c.transitionTimer = nil
	}
	if c.fadeOutTimer != nil {
		c.fadeOutTimer.Stop()
		c.fadeOutTimer = nil
	}
}

// Close unsubscribes from the event source and stops the pending timers.
// The controller ignores events afterwards. Close is idempotent.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.session.state = Idle
	c.stopTimers()
	for _, cancel := range c.unsubscribe {
		cancel()
	}
	c.unsubscribe = nil
}

// State returns the drag session state.
func (c *Controller) State() State { return c.session.state }

// Dragging reports whether a drag session is active.
func (c *Controller) Dragging() bool { return c.session.state == Dragging }

// Docked reports whether the last positioning was a fade-out.
func (c *Controller) Docked() bool { return c.docked }

// Edge returns the edge chosen by the last snap or fade-out.
func (c *Controller) Edge() Edge { return c.edge }

// Family returns the input family selected at construction.
func (c *Controller) Family() InputFamily { return c.family }

// FadeOutPending reports whether a fade-out is scheduled.
func (c *Controller) FadeOutPending() bool { return c.fadeOutTimer != nil }
