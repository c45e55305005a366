package snapfloat

import (
	"testing"

	"gioui.org/f32"
	"github.com/stretchr/testify/assert"
)

var (
	container = f32.Pt(400, 400)
	button    = f32.Pt(50, 50)
)

func TestGeometry_Measure(t *testing.T) {
	d := Measure(container, button, f32.Pt(10, 200))
	assert.Equal(t, Distances{Left: 10, Right: 340, Top: 200, Bottom: 150}, d)
	assert.Equal(t, Left, d.Nearest())
}

func TestGeometry_NearestTieBreak(t *testing.T) {
	testCases := []struct {
		name string
		d    Distances
		want Edge
	}{
		{"all equal", Distances{175, 175, 175, 175}, Left},
		{"left and right", Distances{10, 10, 50, 50}, Left},
		{"right and top", Distances{50, 10, 10, 50}, Right},
		{"top and bottom", Distances{50, 50, 10, 10}, Top},
		{"bottom alone", Distances{50, 50, 50, 10}, Bottom},
		{"negative wins", Distances{-5, 380, 500, -150}, Bottom},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.d.Nearest())
		})
	}
}

func TestGeometry_Snap(t *testing.T) {
	testCases := []struct {
		name      string
		container f32.Point
		offset    f32.Point
		padding   float32
		want      f32.Point
		edge      Edge
	}{
		{"near left", container, f32.Pt(10, 200), 10, f32.Pt(10, 200), Left},
		{"centered picks left", container, f32.Pt(175, 175), 10, f32.Pt(10, 175), Left},
		{"near right", container, f32.Pt(320, 70), 10, f32.Pt(340, 70), Right},
		{"near top", container, f32.Pt(150, 30), 10, f32.Pt(150, 10), Top},
		{"near bottom", container, f32.Pt(150, 330), 0, f32.Pt(150, 350), Bottom},
		{"dragged out of bounds", container, f32.Pt(-30, 500), 10, f32.Pt(10, 340), Bottom},
		{"left clamps top", container, f32.Pt(-40, -20), 10, f32.Pt(10, 10), Left},
		{"bottom clamps left", container, f32.Pt(380, 390), 10, f32.Pt(340, 340), Bottom},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pos, edge := Snap(tc.container, button, tc.offset, tc.padding)
			assert.Equal(t, tc.edge, edge)
			assert.Equal(t, tc.want, pos)
		})
	}
}

func TestGeometry_SnapIsIdempotent(t *testing.T) {
	first, edge := Snap(container, button, f32.Pt(230, 120), 10)
	second, again := Snap(container, button, first, 10)
	assert.Equal(t, first, second)
	assert.Equal(t, edge, again)
}

func TestGeometry_SnapKeepsEdgeInvariant(t *testing.T) {
	containers := []f32.Point{f32.Pt(400, 400), f32.Pt(320, 640), f32.Pt(1024, 200)}
	elems := []f32.Point{f32.Pt(50, 50), f32.Pt(64, 32), f32.Pt(20, 80)}
	paddings := []float32{0, 4, 10, 16}

	for _, c := range containers {
		for _, e := range elems {
			for _, pad := range paddings {
				for x := float32(-100); x <= c.X+100; x += 37 {
					for y := float32(-100); y <= c.Y+100; y += 41 {
						pos, edge := Snap(c, e, f32.Pt(x, y), pad)

						minX, maxX := pad, c.X-e.X-pad
						minY, maxY := pad, c.Y-e.Y-pad
						switch edge {
						case Left:
							assert.Equal(t, minX, pos.X)
						case Right:
							assert.Equal(t, maxX, pos.X)
						case Top:
							assert.Equal(t, minY, pos.Y)
						case Bottom:
							assert.Equal(t, maxY, pos.Y)
						}
						if edge.Horizontal() {
							assert.True(t, pos.Y >= minY && pos.Y <= maxY, "y=%v out of [%v, %v]", pos.Y, minY, maxY)
						} else {
							assert.True(t, pos.X >= minX && pos.X <= maxX, "x=%v out of [%v, %v]", pos.X, minX, maxX)
						}
					}
				}
			}
		}
	}
}

func TestGeometry_SnapWithEmptyClampRange(t *testing.T) {
	// The container is too narrow to fit the button plus padding on both sides.
	pos, edge := Snap(f32.Pt(60, 400), button, f32.Pt(5, 3), 10)
	assert.Equal(t, Top, edge)
	assert.Equal(t, f32.Pt(0, 10), pos)

	pos, edge = Snap(f32.Pt(400, 60), button, f32.Pt(2, 5), 10)
	assert.Equal(t, Left, edge)
	assert.Equal(t, f32.Pt(10, 10), pos)
}

func TestGeometry_Dock(t *testing.T) {
	testCases := []struct {
		name   string
		offset f32.Point
		want   f32.Point
		edge   Edge
	}{
		{"from right snap", f32.Pt(340, 175), f32.Pt(375, 175), Right},
		{"from left snap", f32.Pt(10, 200), f32.Pt(-25, 200), Left},
		{"from top snap", f32.Pt(150, 10), f32.Pt(150, -25), Top},
		{"from bottom snap", f32.Pt(150, 340), f32.Pt(150, 375), Bottom},
		{"centered picks left", f32.Pt(175, 175), f32.Pt(-25, 175), Left},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pos, edge := Dock(container, button, tc.offset)
			assert.Equal(t, tc.edge, edge)
			assert.Equal(t, tc.want, pos)
		})
	}
}

func TestGeometry_Place(t *testing.T) {
	testCases := []struct {
		name string
		p    Placement
		want f32.Point
	}{
		{"none", Placement{}, f32.Pt(0, 0)},
		{"top left", Placement{Top: Px(30), Left: Px(20)}, f32.Pt(20, 30)},
		{"right overrides left", Placement{Left: Px(20), Right: Px(10)}, f32.Pt(340, 0)},
		{"bottom overrides top", Placement{Top: Px(30), Bottom: Px(40)}, f32.Pt(0, 310)},
		{"right and bottom", Placement{Right: Px(0), Bottom: Px(0)}, f32.Pt(350, 350)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Place(container, button, tc.p))
		})
	}
}

func TestGeometry_EdgeString(t *testing.T) {
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "bottom", Bottom.String())
	assert.Equal(t, "unknown", Edge(9).String())
	assert.True(t, Right.Horizontal())
	assert.False(t, Top.Horizontal())
}
