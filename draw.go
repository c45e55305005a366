package snapfloat

import (
	"image"
	"image/color"

	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/disintegration/imaging"
	"github.com/esimov/snapfloat/imop"
)

const (
	// DefaultButtonSize is the diameter of a Button with no Size set.
	DefaultButtonSize = unit.Dp(56)

	shadowSigma = 3.0
)

var (
	defaultButtonColor = color.NRGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0xff}
	pressedTint        = color.NRGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}
)

// Button draws the round floating button: a drop shadow, a filled disc and
// the icon fitted inside it.
type Button struct {
	Icon  image.Image
	Color color.NRGBA
	Size  unit.Dp
	// TintMode mixes the pressed tint into the icon. Normal, the zero
	// value, selects Multiply.
	TintMode imop.Mode

	px     int
	src    image.Image
	mode   imop.Mode
	icon   paint.ImageOp
	docked paint.ImageOp
	tinted paint.ImageOp
	shadow paint.ImageOp
}

// Layout draws the button. Pressed and docked select the visual variant.
func (b *Button) Layout(gtx C, pressed, docked bool) D {
	size := b.Size
	if size <= 0 {
		size = DefaultButtonSize
	}
	px := gtx.Dp(size)
	b.prepare(px)

	margin := shadowMargin(px)
	st := op.Offset(image.Pt(-margin, -margin+px/20)).Push(gtx.Ops)
	b.shadow.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	st.Pop()

	fill := b.Color
	if fill == (color.NRGBA{}) {
		fill = defaultButtonColor
	}
	switch {
	case docked:
		fill.A /= 2
	case pressed:
		fill = multiply(fill, pressedTint)
	}
	paint.FillShape(gtx.Ops, fill, clip.Ellipse{Max: image.Pt(px, px)}.Op(gtx.Ops))

	if b.Icon != nil {
		inset := (px - b.icon.Size().X) / 2
		st := op.Offset(image.Pt(inset, inset)).Push(gtx.Ops)
		switch {
		case docked:
			b.docked.Add(gtx.Ops)
		case pressed:
			b.tinted.Add(gtx.Ops)
		default:
			b.icon.Add(gtx.Ops)
		}
		paint.PaintOp{}.Add(gtx.Ops)
		st.Pop()
	}
	return D{Size: image.Pt(px, px)}
}

// prepare renders the cached images for a button of px pixels.
func (b *Button) prepare(px int) {
	mode := b.TintMode
	if mode == imop.Normal {
		mode = imop.Multiply
	}
	if px == b.px && b.src == b.Icon && b.mode == mode {
		return
	}
	b.px, b.src, b.mode = px, b.Icon, mode

	b.shadow = paint.NewImageOp(shadowImage(px))
	if b.Icon == nil {
		return
	}
	icon := FitIcon(b.Icon, px*3/5)
	b.icon = paint.NewImageOp(icon)
	b.docked = paint.NewImageOp(DockedIcon(icon, DockedAlpha))
	b.tinted = paint.NewImageOp(PressedIcon(icon, pressedTint, mode))
}

func shadowMargin(px int) int {
	return int(shadowSigma*2) + px/20
}

// shadowImage returns a blurred translucent disc of diameter px, padded on
// every side so the blur is not cut.
func shadowImage(px int) *image.NRGBA {
	m := shadowMargin(px)
	img := imaging.New(px+2*m, px+2*m, color.NRGBA{})

	r := float64(px) / 2
	c := float64(m) + r
	for y := 0; y < img.Rect.Dy(); y++ {
		for x := 0; x < img.Rect.Dx(); x++ {
			dx, dy := float64(x)+0.5-c, float64(y)+0.5-c
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, color.NRGBA{A: 0x60})
			}
		}
	}
	return imaging.Blur(img, shadowSigma)
}

func multiply(a, b color.NRGBA) color.NRGBA {
	mul := func(x, y uint8) uint8 {
		return uint8((uint16(x)*uint16(y) + 127) / 255)
	}
	return color.NRGBA{R: mul(a.R, b.R), G: mul(a.G, b.G), B: mul(a.B, b.B), A: a.A}
}
