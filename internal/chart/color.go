package chart

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strconv"
	"strings"
)

// RGB is an sRGB colour with 0-255 channels.
type RGB struct {
	R, G, B float64
}

// ParseHex parses #rgb or #rrggbb. Invalid input yields black and an error.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return RGB{R: float64(v >> 16 & 0xff), G: float64(v >> 8 & 0xff), B: float64(v & 0xff)}, nil
}

// MustHex is ParseHex for package level colour constants.
func MustHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func clampByte(v float64) int {
	return int(math.Max(0, math.Min(255, math.Round(v))))
}

// Hex renders the colour as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", clampByte(c.R), clampByte(c.G), clampByte(c.B))
}

// Color converts to an opaque image/color value.
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: uint8(clampByte(c.R)), G: uint8(clampByte(c.G)), B: uint8(clampByte(c.B)), A: 255}
}

// Brighter scales every channel by (1/0.7)^k.
func (c RGB) Brighter(k float64) RGB {
	f := math.Pow(1/0.7, k)
	return RGB{R: c.R * f, G: c.G * f, B: c.B * f}
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// Piecewise is a linear colour scale over several stops. Values outside the
// domain extrapolate from the nearest segment and are clamped to valid
// channel values when rendered.
type Piecewise struct {
	stops  []float64
	colors []RGB
}

// NewPiecewise builds a colour scale; domain and colours must be the same
// length and domain ascending.
func NewPiecewise(domain []float64, colors []string) (*Piecewise, error) {
	if len(domain) != len(colors) || len(domain) < 2 {
		return nil, fmt.Errorf("piecewise scale needs matching domain and colours, got %d and %d", len(domain), len(colors))
	}
	if !sort.Float64sAreSorted(domain) {
		return nil, fmt.Errorf("piecewise domain must be ascending")
	}
	p := &Piecewise{stops: domain}
	for _, s := range colors {
		c, err := ParseHex(s)
		if err != nil {
			return nil, err
		}
		p.colors = append(p.colors, c)
	}
	return p, nil
}

// Map returns the interpolated colour for v as #rrggbb.
func (p *Piecewise) Map(v float64) string {
	i := sort.SearchFloat64s(p.stops, v) - 1
	if i < 0 {
		i = 0
	}
	if i > len(p.stops)-2 {
		i = len(p.stops) - 2
	}
	d0, d1 := p.stops[i], p.stops[i+1]
	t := (v - d0) / (d1 - d0)
	a, b := p.colors[i], p.colors[i+1]
	return RGB{R: lerp(a.R, b.R, t), G: lerp(a.G, b.G, t), B: lerp(a.B, b.B, t)}.Hex()
}
