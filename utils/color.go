package utils

import (
	"fmt"
	"image/color"
	"strings"
)

// HexToRGBA converts a color expressed in hexadecimal format
// (#rgb, #rrggbb or #rrggbbaa, the hash being optional) to color.NRGBA.
func HexToRGBA(hex string) (color.NRGBA, error) {
	var (
		c   = color.NRGBA{A: 0xff}
		err error
	)
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 8:
		_, err = fmt.Sscanf(hex, "%2x%2x%2x%2x", &c.R, &c.G, &c.B, &c.A)
	case 6:
		_, err = fmt.Sscanf(hex, "%2x%2x%2x", &c.R, &c.G, &c.B)
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &c.R, &c.G, &c.B)
		// Double the digits: 0xf becomes 0xff.
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = fmt.Errorf("invalid color length: %q", hex)
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("unable to parse hex color %q: %w", hex, err)
	}
	return c, nil
}
