package chart

import "time"

// Orient is the side of the plot an axis is drawn on.
type Orient string

const (
	Left   Orient = "left"
	Right  Orient = "right"
	Bottom Orient = "bottom"
)

// Tick is a labelled position along an axis.
type Tick struct {
	Pos   float64
	Label string
}

// Axis is a positioned axis ready for rendering. X and Y translate the axis
// group; Range is the extent of the domain line.
type Axis struct {
	Orient Orient
	X, Y   float64
	Range  [2]float64
	Ticks  []Tick
	// Rotate tilts bottom labels by -45 degrees, anchored at the end.
	Rotate bool
}

// BandAxis places one tick at the centre of every band. label may be nil.
func BandAxis(o Orient, b *Band, label func(string) string) Axis {
	ticks := make([]Tick, 0, len(b.Domain))
	for _, d := range b.Domain {
		text := d
		if label != nil {
			text = label(d)
		}
		ticks = append(ticks, Tick{Pos: b.Mid(d), Label: text})
	}
	return Axis{Orient: o, Range: b.Range, Ticks: ticks}
}

// LinearAxis places about count ticks over the domain. format may be nil.
func LinearAxis(o Orient, l *Linear, count int, format func(float64) string) Axis {
	if format == nil {
		format = FormatTick
	}
	values := l.Ticks(count)
	ticks := make([]Tick, 0, len(values))
	for _, v := range values {
		ticks = append(ticks, Tick{Pos: l.Map(v), Label: format(v)})
	}
	return Axis{Orient: o, Range: l.Range, Ticks: ticks}
}

// TimeAxis places calendar aligned ticks formatted with layout.
func TimeAxis(o Orient, s *Time, count int, layout string) Axis {
	values := s.Ticks(count)
	ticks := make([]Tick, 0, len(values))
	for _, v := range values {
		ticks = append(ticks, Tick{Pos: s.Map(v), Label: v.Format(layout)})
	}
	return Axis{Orient: o, Range: s.Range, Ticks: ticks}
}

// At returns a copy of the axis translated to (x, y).
func (a Axis) At(x, y float64) Axis {
	a.X, a.Y = x, y
	return a
}

// Rotated returns a copy of the axis with tilted labels.
func (a Axis) Rotated() Axis {
	a.Rotate = true
	return a
}

// ShortDate is the "%b %d" tick format.
const ShortDate = "Jan 02"

// FormatShortDate formats t like the weekly tick labels.
func FormatShortDate(t time.Time) string { return t.Format(ShortDate) }
