package panels

import (
	"math"

	"github.com/abcnoodle/marketintel/internal/chart"
	"github.com/abcnoodle/marketintel/internal/figures"
)

const sunburstSize = 300

// MarketTree builds the market structure hierarchy with summed values.
func MarketTree() *chart.Node {
	root := &chart.Node{Name: "Market"}
	for _, g := range figures.MarketStructure {
		group := &chart.Node{Name: g.Name, Color: g.Color}
		for _, s := range g.Segments {
			group.Children = append(group.Children, &chart.Node{Name: s.Name, Value: s.Units})
		}
		root.Children = append(root.Children, group)
	}
	root.Sum()
	return root
}

func arcFill(n *chart.Node) string {
	switch n.Depth {
	case 0:
		return figures.ColorPanel
	case 1:
		return n.Color
	default:
		return chart.MustHex(n.Parent.Color).Brighter(0.5).Hex()
	}
}

func billions(v float64) string { return fixed(v/1e9, 2) + "B" }

// Sunburst builds the interactive market structure chart. Hovering an arc
// shows its units in the centre; leaving resets to the market total.
func Sunburst() SunburstPanel {
	root := MarketTree()
	chart.Partition(root, 2*math.Pi, sunburstSize/2-10)

	fig := &Figure{Width: sunburstSize, Height: sunburstSize, Left: sunburstSize / 2, Top: sunburstSize / 2}
	for _, n := range root.Descendants() {
		arc := Mark{
			Kind:   MarkPath,
			D:      chart.ArcPath(n.X0, n.X1, n.Y0, n.Y1),
			Fill:   arcFill(n),
			Stroke: figures.ColorInk,
			Class:  "sb-arc",
			Tip: tip(n.Name,
				fixed(n.Value/1e6, 1)+"M Units",
				fixed(n.Value/root.Value*100, 1)+"% of Market"),
			Center: &Center{Value: billions(n.Value), Label: n.Name},
		}
		fig.add(arc)
	}

	val := label(0, 0, billions(root.Value), "#FFF", "16px")
	val.ID = "sb-val"
	val.Anchor = "middle"
	val.DY = "-0.2em"
	val.FontWeight = "700"
	lbl := label(0, 0, "Total Units", figures.ColorMuted, "10px")
	lbl.ID = "sb-lbl"
	lbl.Anchor = "middle"
	lbl.DY = "1em"
	fig.add(val, lbl)

	return SunburstPanel{
		Title:      "Market Structure (interactive)",
		Figure:     fig,
		StoryTitle: "The Story",
		Story:      figures.MarketStory,
	}
}
