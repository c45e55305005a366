package imop

import "github.com/esimov/snapfloat/utils"

// Mode is a separable blend mode.
type Mode uint8

const (
	Normal Mode = iota
	Darken
	Lighten
	Multiply
	Screen
	Overlay
)

var modeNames = [...]string{
	Normal:   "normal",
	Darken:   "darken",
	Lighten:  "lighten",
	Multiply: "multiply",
	Screen:   "screen",
	Overlay:  "overlay",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// ParseMode returns the blend mode with the given name.
func ParseMode(name string) (Mode, bool) {
	for m, n := range modeNames {
		if n == name {
			return Mode(m), true
		}
	}
	return Normal, false
}

// mix blends the source channel cs with the backdrop channel cb.
// Both are normalized to [0, 1].
func (m Mode) mix(cs, cb float64) float64 {
	switch m {
	case Darken:
		return utils.Min(cs, cb)
	case Lighten:
		return utils.Max(cs, cb)
	case Multiply:
		return cs * cb
	case Screen:
		return cs + cb - cs*cb
	case Overlay:
		// Hard light with the layers swapped.
		if cb <= 0.5 {
			return 2 * cs * cb
		}
		return 1 - 2*(1-cs)*(1-cb)
	}
	return cs
}
