package snapfloat

import (
	"gioui.org/f32"
	"github.com/esimov/snapfloat/utils"
)

// Edge identifies one of the four container edges the element can snap to.
type Edge uint8

const (
	Left Edge = iota
	Right
	Top
	Bottom
)

func (e Edge) String() string {
	switch e {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}
	return "unknown"
}

// Horizontal reports whether snapping to the edge moves the element along the X axis.
func (e Edge) Horizontal() bool {
	return e == Left || e == Right
}

// Distances holds the gap between each element side and the matching container edge.
// A negative value means the element overflows that edge.
type Distances struct {
	Left, Right, Top, Bottom float32
}

// Measure computes the four edge distances of an element of size elem placed
// at offset inside a container of the given size.
func Measure(container, elem, offset f32.Point) Distances {
	return Distances{
		Left:   offset.X,
		Right:  container.X - offset.X - elem.X,
		Top:    offset.Y,
		Bottom: container.Y - offset.Y - elem.Y,
	}
}

// Nearest returns the edge with the smallest distance.
// Ties are resolved in the order left, right, top, bottom.
func (d Distances) Nearest() Edge {
	edge, min := Left, d.Left
	if d.Right < min {
		edge, min = Right, d.Right
	}
	if d.Top < min {
		edge, min = Top, d.Top
	}
	if d.Bottom < min {
		edge = Bottom
	}
	return edge
}

// Snap returns the offset obtained by moving the element flush against its
// nearest edge, keeping padding pixels of clearance. The coordinate on the
// other axis is clamped into the padded container bounds.
func Snap(container, elem, offset f32.Point, padding float32) (f32.Point, Edge) {
	edge := Measure(container, elem, offset).Nearest()
	pos := offset

	switch edge {
	case Left:
		pos.X = padding
	case Right:
		pos.X = container.X - elem.X - padding
	case Top:
		pos.Y = padding
	case Bottom:
		pos.Y = container.Y - elem.Y - padding
	}

	if edge.Horizontal() {
		pos.Y = utils.Clamp(pos.Y, padding, container.Y-elem.Y-padding)
	} else {
		pos.X = clampUpper(pos.X, padding, container.X-elem.X-padding)
	}
	return pos, edge
}

// Dock returns the offset which hides half of the element behind its nearest edge.
// Only the coordinate of the docked axis changes.
func Dock(container, elem, offset f32.Point) (f32.Point, Edge) {
	edge := Measure(container, elem, offset).Nearest()
	pos := offset

	switch edge {
	case Left:
		pos.X = -elem.X / 2
	case Right:
		pos.X = container.X - elem.X/2
	case Top:
		pos.Y = -elem.Y / 2
	case Bottom:
		pos.Y = container.Y - elem.Y/2
	}
	return pos, edge
}

// Placement holds the optional initial distances from each container edge.
// A nil field is not applied. Right overrides Left and Bottom overrides Top.
type Placement struct {
	Top, Left, Right, Bottom *float32
}

// Px returns a pointer to v, for filling Placement literals.
func Px(v float32) *float32 {
	return &v
}

// Place resolves the initial element offset described by p.
func Place(container, elem f32.Point, p Placement) f32.Point {
	var pos f32.Point
	if p.Top != nil {
		pos.Y = *p.Top
	}
	if p.Left != nil {
		pos.X = *p.Left
	}
	if p.Right != nil {
		pos.X = container.X - elem.X - *p.Right
	}
	if p.Bottom != nil {
		pos.Y = container.Y - elem.Y - *p.Bottom
	}
	return pos
}

// clampUpper limits v to [min, max] testing the upper bound first.
// It differs from utils.Clamp only when the range is empty (max < min).
func clampUpper(v, min, max float32) float32 {
	if v > max {
		return max
	}
	return utils.Max(v, min)
}
