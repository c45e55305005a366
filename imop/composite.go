// Package imop implements the Porter-Duff composition operators and a set
// of separable blend modes over NRGBA images.
//
// The image/draw package only provides the Src and Over operators. The
// floating button needs a few more: DstIn fades the docked icon through a
// uniform alpha mask and SrcAtop paints the pressed tint only where the
// icon is opaque.
package imop

import (
	"image"
	"image/color"

	"github.com/esimov/snapfloat/utils"
)

// Op is a Porter-Duff composition operator.
type Op uint8

const (
	Clear Op = iota
	Copy
	Dst
	SrcOver
	DstOver
	SrcIn
	DstIn
	SrcOut
	DstOut
	SrcAtop
	DstAtop
	Xor
)

var opNames = [...]string{
	Clear:   "clear",
	Copy:    "copy",
	Dst:     "dst",
	SrcOver: "src_over",
	DstOver: "dst_over",
	SrcIn:   "src_in",
	DstIn:   "dst_in",
	SrcOut:  "src_out",
	DstOut:  "dst_out",
	SrcAtop: "src_atop",
	DstAtop: "dst_atop",
	Xor:     "xor",
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "unknown"
}

// factors returns the fraction of the source and of the backdrop
// contributing to the result, given their alpha values.
func (op Op) factors(as, ab float64) (fa, fb float64) {
	switch op {
	case Copy:
		return 1, 0
	case Dst:
		return 0, 1
	case SrcOver:
		return 1, 1 - as
	case DstOver:
		return 1 - ab, 1
	case SrcIn:
		return ab, 0
	case DstIn:
		return 0, as
	case SrcOut:
		return 1 - ab, 0
	case DstOut:
		return 0, 1 - as
	case SrcAtop:
		return ab, 1 - as
	case DstAtop:
		return 1 - ab, as
	case Xor:
		return 1 - ab, 1 - as
	}
	return 0, 0
}

// Draw composites src onto dst with the op operator, mixing the overlapping
// colors with mode, and returns the result as a new image with the bounds of
// dst. The two images are aligned on their top-left corners; source pixels
// outside src are transparent.
func Draw(dst, src *image.NRGBA, op Op, mode Mode) *image.NRGBA {
	b := dst.Bounds()
	out := image.NewNRGBA(b)
	delta := src.Bounds().Min.Sub(b.Min)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var cs color.NRGBA
			if p := image.Pt(x, y).Add(delta); p.In(src.Bounds()) {
				cs = src.NRGBAAt(p.X, p.Y)
			}
			out.SetNRGBA(x, y, compose(cs, dst.NRGBAAt(x, y), op, mode))
		}
	}
	return out
}

// Fill composites a uniform color onto dst.
func Fill(dst *image.NRGBA, c color.NRGBA, op Op, mode Mode) *image.NRGBA {
	src := image.NewNRGBA(dst.Bounds())
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i+0] = c.R
		src.Pix[i+1] = c.G
		src.Pix[i+2] = c.B
		src.Pix[i+3] = c.A
	}
	return Draw(dst, src, op, mode)
}

// compose applies the blend mode on the overlapping area and then the
// composition operator.
func compose(src, dst color.NRGBA, op Op, mode Mode) color.NRGBA {
	as, ab := float64(src.A)/255, float64(dst.A)/255
	fa, fb := op.factors(as, ab)

	ao := as*fa + ab*fb
	if ao <= 0 {
		return color.NRGBA{}
	}

	channel := func(s, d uint8) uint8 {
		cs, cb := float64(s)/255, float64(d)/255
		// The backdrop shows through the blend where it is transparent.
		mixed := (1-ab)*cs + ab*mode.mix(cs, cb)
		co := (as*fa*mixed + ab*fb*cb) / ao
		return uint8(utils.Clamp(co*255+0.5, 0, 255))
	}

	return color.NRGBA{
		R: channel(src.R, dst.R),
		G: channel(src.G, dst.G),
		B: channel(src.B, dst.B),
		A: uint8(utils.Clamp(ao*255+0.5, 0, 255)),
	}
}
