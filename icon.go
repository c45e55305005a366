package snapfloat

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"

	"github.com/disintegration/imaging"
	"github.com/esimov/snapfloat/imop"
	"github.com/esimov/snapfloat/utils"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/term"
)

// DockedAlpha is the opacity of the icon while the button is docked.
const DockedAlpha = 0x80

// ErrTerminalPipe is returned when the icon is read from stdin but stdin
// is attached to a terminal.
var ErrTerminalPipe = errors.New("`-` should be used with a pipe for stdin")

// iconTypes are the sniffed content types LoadIcon can decode.
var iconTypes = []string{"image/png", "image/jpeg", "image/gif", "image/bmp", "image/webp"}

// stdin is the pipe LoadIcon reads from. Replaced in tests.
var stdin = os.Stdin

// LoadIcon loads the button icon from src, which can be an URL, a local
// file or, when it equals pipeName, the standard input.
func LoadIcon(src, pipeName string) (image.Image, error) {
	switch {
	case utils.IsValidUrl(src):
		f, err := utils.DownloadImage(src)
		if f != nil {
			defer func() {
				f.Close()
				os.Remove(f.Name())
			}()
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load the icon: %w", err)
		}
		return decodeIcon(f)
	case src == pipeName:
		if term.IsTerminal(int(stdin.Fd())) {
			return nil, ErrTerminalPipe
		}
		return decodeIcon(stdin)
	}

	ctype, err := utils.DetectContentType(src)
	if err != nil {
		return nil, fmt.Errorf("failed to load the icon: %w", err)
	}
	if !utils.Contains(iconTypes, ctype) {
		return nil, fmt.Errorf("the icon should be an image file, got %s", ctype)
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("unable to open the icon file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("could not close the opened file: %v", err)
		}
	}()
	return decodeIcon(f)
}

func decodeIcon(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("could not decode the icon: %w", err)
	}
	return img, nil
}

// FitIcon scales img down to fit a size x size square, preserving its
// aspect ratio, and centers it on a transparent canvas.
func FitIcon(img image.Image, size int) *image.NRGBA {
	canvas := imaging.New(size, size, color.NRGBA{})
	if img == nil || size <= 0 {
		return canvas
	}
	fitted := imaging.Fit(img, size, size, imaging.Lanczos)
	return imaging.PasteCenter(canvas, fitted)
}

// DockedIcon returns the faded variant of the icon shown while docked.
// The colors are desaturated and the opacity multiplied by alpha/255.
func DockedIcon(img *image.NRGBA, alpha uint8) *image.NRGBA {
	return imop.Fill(Desaturate(img, 0.8), color.NRGBA{A: alpha}, imop.DstIn, imop.Normal)
}

// PressedIcon tints the opaque parts of the icon with c, mixing the colors
// with the given blend mode.
func PressedIcon(img *image.NRGBA, c color.NRGBA, mode imop.Mode) *image.NRGBA {
	return imop.Fill(img, c, imop.SrcAtop, mode)
}
