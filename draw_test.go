package snapfloat

import (
	"image"
	"image/color"
	"testing"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/esimov/snapfloat/imop"
	"github.com/stretchr/testify/assert"
)

func TestButton_Layout(t *testing.T) {
	assert := assert.New(t)

	gtx := layout.Context{
		Ops:    new(op.Ops),
		Metric: unit.Metric{PxPerDp: 1, PxPerSp: 1},
	}
	b := &Button{Icon: uniform(40, 20, color.NRGBA{R: 255, A: 255})}

	dims := b.Layout(gtx, false, false)
	assert.Equal(image.Pt(56, 56), dims.Size)
	assert.Equal(image.Pt(33, 33), b.icon.Size())
	assert.Equal(image.Pt(33, 33), b.docked.Size())

	b.Size = 40
	dims = b.Layout(gtx, true, false)
	assert.Equal(image.Pt(40, 40), dims.Size)
	assert.Equal(image.Pt(24, 24), b.tinted.Size())

	assert.Equal(imop.Multiply, b.mode)
	b.TintMode = imop.Screen
	b.Layout(gtx, true, false)
	assert.Equal(imop.Screen, b.mode)

	b.Icon = nil
	dims = b.Layout(gtx, false, true)
	assert.Equal(image.Pt(40, 40), dims.Size)
}

func TestButton_Shadow(t *testing.T) {
	assert := assert.New(t)

	img := shadowImage(40)
	m := shadowMargin(40)
	assert.Equal(image.Rect(0, 0, 40+2*m, 40+2*m), img.Bounds())

	center := img.NRGBAAt(img.Rect.Dx()/2, img.Rect.Dy()/2)
	corner := img.NRGBAAt(0, 0)
	assert.Greater(center.A, corner.A)
	assert.Equal(uint8(0), corner.A)
}

func TestButton_Multiply(t *testing.T) {
	assert := assert.New(t)

	c := multiply(color.NRGBA{R: 255, G: 100, B: 0, A: 200}, color.NRGBA{R: 128, G: 255, B: 255, A: 255})
	assert.Equal(color.NRGBA{R: 128, G: 100, B: 0, A: 200}, c)
}
