package snapfloat

import "gioui.org/f32"

// Container is the rectangular region the element is positioned in.
// The controller only reads its size.
type Container interface {
	Size() f32.Point
}

// Element is the draggable element. Its offset is expressed in the
// container's coordinate space, relative to the container's top-left corner.
type Element interface {
	Size() f32.Point
	Offset() f32.Point
	SetOffset(f32.Point)
	// SetAbsolute switches the element to free positioning inside the container.
	SetAbsolute()
	// SetTransition toggles the animation hint used while snapping and docking.
	SetTransition(on bool)
}

// Box is an in-memory Container and Element. The Gio widget keeps its
// geometry in Boxes and tests use them as fakes for a host toolkit.
type Box struct {
	size       f32.Point
	offset     f32.Point
	absolute   bool
	transition bool
}

// NewBox returns a box with the given size, placed at the origin.
func NewBox(size f32.Point) *Box {
	return &Box{size: size}
}

func (b *Box) Size() f32.Point { return b.size }

// Resize changes the box dimensions.
func (b *Box) Resize(size f32.Point) { b.size = size }

func (b *Box) Offset() f32.Point { return b.offset }

func (b *Box) SetOffset(p f32.Point) { b.offset = p }

func (b *Box) SetAbsolute() { b.absolute = true }

// Absolute reports whether SetAbsolute was called.
func (b *Box) Absolute() bool { return b.absolute }

func (b *Box) SetTransition(on bool) { b.transition = on }

// Transition reports whether the animation hint is on.
func (b *Box) Transition() bool { return b.transition }
