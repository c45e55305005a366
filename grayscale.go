package snapfloat

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/esimov/snapfloat/utils"
)

// Desaturate moves every pixel of src towards its luminance by amount,
// which is clamped to [0, 1]. An amount of 1 yields a grayscale image.
// The alpha channel is left untouched.
func Desaturate(src image.Image, amount float64) *image.NRGBA {
	dst := imaging.Clone(src)
	amount = utils.Clamp(amount, 0, 1)

	for i := 0; i+3 < len(dst.Pix); i += 4 {
		r, g, b := float64(dst.Pix[i]), float64(dst.Pix[i+1]), float64(dst.Pix[i+2])
		lum := r*0.299 + g*0.587 + b*0.114

		dst.Pix[i+0] = uint8(utils.Lerp(r, lum, amount) + 0.5)
		dst.Pix[i+1] = uint8(utils.Lerp(g, lum, amount) + 0.5)
		dst.Pix[i+2] = uint8(utils.Lerp(b, lum, amount) + 0.5)
	}
	return dst
}
