package chart

import (
	"math"
	"strconv"
	"strings"
)

// Point is a position in SVG user space.
type Point struct {
	X, Y float64
}

// Num formats a coordinate for an SVG attribute, rounded to 3 decimals.
func Num(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	r := math.Round(v*1000) / 1000
	if r == 0 {
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

type pathBuilder struct {
	sb strings.Builder
}

func (p *pathBuilder) cmd(c byte, vals ...float64) {
	p.sb.WriteByte(c)
	for i, v := range vals {
		if i > 0 {
			p.sb.WriteByte(',')
		}
		p.sb.WriteString(Num(v))
	}
}

func (p *pathBuilder) String() string { return p.sb.String() }

// LinePath joins the points with straight segments.
func LinePath(pts []Point) string {
	if len(pts) == 0 {
		return ""
	}
	var p pathBuilder
	p.cmd('M', pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.cmd('L', pt.X, pt.Y)
	}
	return p.String()
}

// MonotoneXPath draws a cubic spline through the points that preserves
// monotonicity in y, assuming the points are ordered by x. Coincident
// consecutive points are skipped.
func MonotoneXPath(pts []Point) string {
	var m monotoneX
	for _, pt := range pts {
		m.point(pt.X, pt.Y)
	}
	m.end()
	return m.p.String()
}

type monotoneX struct {
	p              pathBuilder
	n              int
	x0, y0, x1, y1 float64
	t0             float64
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// slope3 is the tangent at (x1, y1) from its two neighbours.
func (m *monotoneX) slope3(x2, y2 float64) float64 {
	h0 := m.x1 - m.x0
	h1 := x2 - m.x1
	s0 := safeDiv(m.y1-m.y0, h0, h1)
	s1 := safeDiv(y2-m.y1, h1, h0)
	p := (s0*h1 + s1*h0) / (h0 + h1)
	r := (sign(s0) + sign(s1)) * math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(p))
	if math.IsNaN(r) {
		return 0
	}
	return r
}

// safeDiv divides by h, falling back to an infinite slope in the direction
// of the other interval when h is zero.
func safeDiv(num, h, other float64) float64 {
	if h == 0 && other < 0 {
		h = math.Copysign(0, -1)
	}
	return num / h
}

// slope2 is the one-sided tangent used at the ends of the curve.
func (m *monotoneX) slope2(t float64) float64 {
	h := m.x1 - m.x0
	if h != 0 {
		return (3*(m.y1-m.y0)/h - t) / 2
	}
	return t
}

func (m *monotoneX) bezier(t0, t1 float64) {
	dx := (m.x1 - m.x0) / 3
	m.p.cmd('C', m.x0+dx, m.y0+dx*t0, m.x1-dx, m.y1-dx*t1, m.x1, m.y1)
}

func (m *monotoneX) point(x, y float64) {
	if m.n > 0 && x == m.x1 && y == m.y1 {
		return
	}
	t1 := math.NaN()
	switch m.n {
	case 0:
		m.n = 1
		m.p.cmd('M', x, y)
	case 1:
		m.n = 2
	case 2:
		m.n = 3
		t1 = m.slope3(x, y)
		m.bezier(m.slope2(t1), t1)
	default:
		t1 = m.slope3(x, y)
		m.bezier(m.t0, t1)
	}
	m.x0, m.x1 = m.x1, x
	m.y0, m.y1 = m.y1, y
	m.t0 = t1
}

func (m *monotoneX) end() {
	switch m.n {
	case 2:
		m.p.cmd('L', m.x1, m.y1)
	case 3:
		m.bezier(m.t0, m.slope2(m.t0))
	}
}

// ArcPath draws an annular sector centred on the origin. Angles are in
// radians, measured clockwise from 12 o'clock.
func ArcPath(startAngle, endAngle, innerRadius, outerRadius float64) string {
	if endAngle < startAngle {
		startAngle, endAngle = endAngle, startAngle
	}
	if innerRadius > outerRadius {
		innerRadius, outerRadius = outerRadius, innerRadius
	}
	sweep := endAngle - startAngle
	var p pathBuilder
	if outerRadius <= 0 || sweep <= 0 {
		p.cmd('M', 0, 0)
		p.sb.WriteByte('Z')
		return p.String()
	}

	if sweep >= 2*math.Pi-1e-6 {
		// Full ring: two half arcs per circle.
		p.cmd('M', 0, -outerRadius)
		p.cmd('A', outerRadius, outerRadius, 0, 1, 1, 0, outerRadius)
		p.cmd('A', outerRadius, outerRadius, 0, 1, 1, 0, -outerRadius)
		if innerRadius > 0 {
			p.cmd('M', 0, -innerRadius)
			p.cmd('A', innerRadius, innerRadius, 0, 1, 0, 0, innerRadius)
			p.cmd('A', innerRadius, innerRadius, 0, 1, 0, 0, -innerRadius)
		}
		p.sb.WriteByte('Z')
		return p.String()
	}

	large := 0.0
	if sweep > math.Pi {
		large = 1
	}
	ox0, oy0 := polar(outerRadius, startAngle)
	ox1, oy1 := polar(outerRadius, endAngle)
	p.cmd('M', ox0, oy0)
	p.cmd('A', outerRadius, outerRadius, 0, large, 1, ox1, oy1)
	if innerRadius > 0 {
		ix1, iy1 := polar(innerRadius, endAngle)
		ix0, iy0 := polar(innerRadius, startAngle)
		p.cmd('L', ix1, iy1)
		p.cmd('A', innerRadius, innerRadius, 0, large, 0, ix0, iy0)
	} else {
		p.cmd('L', 0, 0)
	}
	p.sb.WriteByte('Z')
	return p.String()
}

func polar(r, angle float64) (float64, float64) {
	return r * math.Sin(angle), -r * math.Cos(angle)
}
