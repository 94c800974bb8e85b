package chart

import (
	"math"
	"time"

	"github.com/samber/lo"
)

// Band maps a discrete domain onto evenly spaced bands of a continuous range.
// Inner and outer padding are both set from Padding, and bands are centred
// within the range.
type Band struct {
	Domain  []string
	Range   [2]float64
	Padding float64

	index map[string]int
	step  float64
	start float64
}

// NewBand creates a band scale over domain spanning [r0, r1]. Repeated
// values keep their first position.
func NewBand(domain []string, r0, r1, padding float64) *Band {
	domain = lo.Uniq(domain)
	b := &Band{
		Domain:  domain,
		Range:   [2]float64{r0, r1},
		Padding: padding,
		index:   make(map[string]int, len(domain)),
	}
	for i, d := range domain {
		b.index[d] = i
	}
	b.rescale()
	return b
}

func (b *Band) rescale() {
	n := float64(len(b.Domain))
	start, stop := b.Range[0], b.Range[1]
	b.step = (stop - start) / math.Max(1, n-b.Padding+b.Padding*2)
	b.start = start + (stop-start-b.step*(n-b.Padding))*0.5
}

// Pos returns the start of the band for v. Unknown values map to NaN.
func (b *Band) Pos(v string) float64 {
	i, ok := b.index[v]
	if !ok {
		return math.NaN()
	}
	return b.start + b.step*float64(i)
}

// Mid returns the centre of the band for v.
func (b *Band) Mid(v string) float64 {
	return b.Pos(v) + b.Bandwidth()/2
}

// Bandwidth returns the width of each band.
func (b *Band) Bandwidth() float64 {
	return b.step * (1 - b.Padding)
}

// Step returns the distance between the starts of adjacent bands.
func (b *Band) Step() float64 {
	return b.step
}

// Linear is a continuous scale mapping [d0, d1] onto [r0, r1].
type Linear struct {
	Domain [2]float64
	Range  [2]float64
}

// NewLinear creates a linear scale.
func NewLinear(d0, d1, r0, r1 float64) *Linear {
	return &Linear{Domain: [2]float64{d0, d1}, Range: [2]float64{r0, r1}}
}

// Map applies the scale to v. A degenerate domain maps everything to the
// middle of the range.
func (l *Linear) Map(v float64) float64 {
	d := l.Domain[1] - l.Domain[0]
	if d == 0 {
		return (l.Range[0] + l.Range[1]) / 2
	}
	t := (v - l.Domain[0]) / d
	return l.Range[0] + t*(l.Range[1]-l.Range[0])
}

// Ticks returns human friendly tick values covering the domain.
func (l *Linear) Ticks(count int) []float64 {
	return Ticks(l.Domain[0], l.Domain[1], count)
}

// Time is a linear scale over instants.
type Time struct {
	Domain [2]time.Time
	Range  [2]float64
}

// NewTime creates a time scale.
func NewTime(d0, d1 time.Time, r0, r1 float64) *Time {
	return &Time{Domain: [2]time.Time{d0, d1}, Range: [2]float64{r0, r1}}
}

// Map applies the scale to t.
func (s *Time) Map(t time.Time) float64 {
	span := s.Domain[1].Sub(s.Domain[0])
	if span == 0 {
		return (s.Range[0] + s.Range[1]) / 2
	}
	f := float64(t.Sub(s.Domain[0])) / float64(span)
	return s.Range[0] + f*(s.Range[1]-s.Range[0])
}

// Ticks returns calendar aligned instants inside the domain, aiming for
// roughly count ticks.
func (s *Time) Ticks(count int) []time.Time {
	return TimeTicks(s.Domain[0], s.Domain[1], count)
}

// Extent returns the earliest and latest of ts. The zero time is returned
// for both when ts is empty.
func Extent(ts []time.Time) (time.Time, time.Time) {
	if len(ts) == 0 {
		return time.Time{}, time.Time{}
	}
	lo, hi := ts[0], ts[0]
	for _, t := range ts[1:] {
		if t.Before(lo) {
			lo = t
		}
		if t.After(hi) {
			hi = t
		}
	}
	return lo, hi
}
