package embed

import (
	"fmt"
	"math"
	"strings"
)

// ContrastBucket labels a contrast ratio against the WCAG thresholds.
type ContrastBucket string

// Contrast buckets, best to worst.
const (
	ContrastAAA  ContrastBucket = "AAA"
	ContrastAA   ContrastBucket = "AA"
	ContrastLow  ContrastBucket = "Low"
	ContrastPoor ContrastBucket = "Poor"
)

// autoFix heuristic parameters. The routine is a nudge loop, not a solver; it
// can overshoot or fail to converge for some inputs and that is accepted.
const (
	autoFixTarget     = 4.5
	autoFixStep       = 0.10
	autoFixIterations = 24
)

// RGB is a parsed sRGB color.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses "#rrggbb" or "rrggbb" into an RGB.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("embed: invalid hex color %q", s)
	}
	var c RGB
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return RGB{}, fmt.Errorf("embed: invalid hex color %q: %w", s, err)
	}
	return c, nil
}

// Hex renders the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Luminance is the WCAG relative luminance of the color.
func (c RGB) Luminance() float64 {
	lin := func(v uint8) float64 {
		f := float64(v) / 255
		if f <= 0.03928 {
			return f / 12.92
		}
		return math.Pow((f+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}

// ContrastRatio computes the WCAG contrast ratio between two colors, always
// at least 1.
func ContrastRatio(a, b RGB) float64 {
	la, lb := a.Luminance(), b.Luminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Bucket labels a contrast ratio.
func Bucket(ratio float64) ContrastBucket {
	switch {
	case ratio >= 7:
		return ContrastAAA
	case ratio >= 4.5:
		return ContrastAA
	case ratio >= 3:
		return ContrastLow
	default:
		return ContrastPoor
	}
}

// Score parses both colors and reports their ratio and bucket.
func Score(foreground, background string) (float64, ContrastBucket, error) {
	fg, err := ParseHex(foreground)
	if err != nil {
		return 0, "", err
	}
	bg, err := ParseHex(background)
	if err != nil {
		return 0, "", err
	}
	ratio := ContrastRatio(fg, bg)
	return ratio, Bucket(ratio), nil
}

// AutoFix nudges the foreground color away from the background's luminance
// until the contrast ratio reaches 4.5 or the iteration cap is hit. Each step
// scales every channel by 10 percent, darkening against light backgrounds and
// lightening against dark ones. Returns the adjusted color and whether the
// target was reached.
func AutoFix(foreground, background RGB) (RGB, bool) {
	if ContrastRatio(foreground, background) >= autoFixTarget {
		return foreground, true
	}
	darken := background.Luminance() >= 0.5
	c := foreground
	for i := 0; i < autoFixIterations; i++ {
		c = nudge(c, darken)
		if ContrastRatio(c, background) >= autoFixTarget {
			return c, true
		}
	}
	return c, false
}

func nudge(c RGB, darken bool) RGB {
	adjust := func(v uint8) uint8 {
		f := float64(v)
		if darken {
			f *= 1 - autoFixStep
		} else {
			f = f*(1+autoFixStep) + 1
		}
		if f > 255 {
			f = 255
		}
		if f < 0 {
			f = 0
		}
		return uint8(f)
	}
	return RGB{R: adjust(c.R), G: adjust(c.G), B: adjust(c.B)}
}
