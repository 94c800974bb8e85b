package panels

import (
	"github.com/abcnoodle/marketintel/internal/chart"
	"github.com/abcnoodle/marketintel/internal/figures"
)

// MarkKind selects the SVG element a Mark renders as.
type MarkKind int

const (
	MarkRect MarkKind = iota
	MarkText
	MarkPath
	MarkCircle
	MarkLine
)

// Mark is one SVG primitive in plot coordinates. Which fields apply depends
// on Kind: rects use X, Y, W, H and RX; circles use X, Y and R; lines run
// from (X, Y) to (X2, Y2); text is anchored at (X, Y); paths use D.
type Mark struct {
	Kind MarkKind
	ID   string

	X, Y, X2, Y2 float64
	W, H, R, RX  float64
	D            string

	Fill        string
	Stroke      string
	StrokeWidth float64
	Dash        string
	// Opacity of zero means fully opaque.
	Opacity float64
	Class   string

	Text       string
	Anchor     string
	Baseline   string
	DY         string
	FontSize   string
	FontWeight string

	Tip    *Tip
	Center *Center
}

// Tip is the hover tooltip of a mark.
type Tip struct {
	Title string
	Lines []string
}

// Center is the sunburst centre label shown while hovering an arc.
type Center struct {
	Value string
	Label string
}

// Margin is the space around the plot area.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Figure is an SVG chart: an outer size, the translation of the plot area
// and what is drawn inside it.
type Figure struct {
	Width, Height float64
	Left, Top     float64
	Axes          []chart.Axis
	Marks         []Mark
}

// newFigure sizes a figure like a margin convention chart and returns the
// inner plot width and height.
func newFigure(width, height float64, m Margin) (*Figure, float64, float64) {
	f := &Figure{Width: width, Height: height, Left: m.Left, Top: m.Top}
	return f, width - m.Left - m.Right, height - m.Top - m.Bottom
}

func (f *Figure) add(marks ...Mark) {
	f.Marks = append(f.Marks, marks...)
}

// LegendItem is a colour swatch with a label.
type LegendItem struct {
	Color string
	Label string
}

// Placeholder replaces a chart that cannot be drawn.
type Placeholder struct {
	Text    string
	Loading bool
}

// Section is the common panel shape: a heading, a chart or a placeholder,
// then a legend and commentary.
type Section struct {
	Title       string
	Figure      *Figure
	Placeholder *Placeholder
	Legend      []LegendItem
	Insights    []figures.Insight
}

// KPICard is one headline figure.
type KPICard struct {
	Label string
	Value string
	Sub   string
	Color string
	// DelayMS staggers the fade-in.
	DelayMS int
}

// KPIGrid is the row of headline cards.
type KPIGrid struct {
	Cards []KPICard
}

// FilterButton is one choice of a filter bar.
type FilterButton struct {
	Label  string
	Value  string
	Active bool
	Color  string
}

// FilterBar is a group of buttons selecting a country or a view. Attr is
// the data attribute carrying the value ("country" or "view").
type FilterBar struct {
	ID      string
	Attr    string
	Target  string
	Buttons []FilterButton
}

// MiniKPI is a small figure above the flavour chart.
type MiniKPI struct {
	Label string
	Value string
	Sub   string
	Color string
}

// FlavourPanel is the product breakdown container.
type FlavourPanel struct {
	Title       string
	KPIs        []MiniKPI
	Chart       *Figure
	Legend      []LegendItem
	BrandsTitle string
	Brands      *Figure
	Insights    []figures.Insight
}

// SunburstPanel is the market structure chart with its story.
type SunburstPanel struct {
	Title      string
	Figure     *Figure
	StoryTitle string
	Story      []figures.Story
}

// RoadmapCard is a recommendation with its status colour.
type RoadmapCard struct {
	figures.Recommendation
	Color string
}

// Roadmap is the strategic recommendations container.
type Roadmap struct {
	Title        string
	Cards        []RoadmapCard
	TotalUnits   string
	TotalRevenue string
}

// InsightList is a container holding only commentary.
type InsightList struct {
	Insights []figures.Insight
}
