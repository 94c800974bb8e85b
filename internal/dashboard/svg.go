package dashboard

import (
	"html/template"
	"strings"

	"github.com/abcnoodle/marketintel/internal/chart"
	"github.com/abcnoodle/marketintel/internal/panels"
)

const tickSize = 6

func svgFuncs() template.FuncMap {
	return template.FuncMap{
		"num":           chart.Num,
		"join":          strings.Join,
		"markKind":      markKind,
		"axisDomain":    axisDomain,
		"axisAnchor":    axisAnchor,
		"tickTransform": tickTransform,
	}
}

func markKind(k panels.MarkKind) string {
	switch k {
	case panels.MarkRect:
		return "rect"
	case panels.MarkCircle:
		return "circle"
	case panels.MarkLine:
		return "line"
	case panels.MarkPath:
		return "path"
	default:
		return "text"
	}
}

// axisDomain draws the domain line with outer ticks.
func axisDomain(a chart.Axis) string {
	r0, r1 := chart.Num(a.Range[0]), chart.Num(a.Range[1])
	switch a.Orient {
	case chart.Left:
		return "M-" + chart.Num(tickSize) + "," + r0 + "H0V" + r1 + "H-" + chart.Num(tickSize)
	case chart.Right:
		return "M" + chart.Num(tickSize) + "," + r0 + "H0V" + r1 + "H" + chart.Num(tickSize)
	default:
		return "M" + r0 + "," + chart.Num(tickSize) + "V0H" + r1 + "V" + chart.Num(tickSize)
	}
}

func axisAnchor(a chart.Axis) string {
	switch a.Orient {
	case chart.Left:
		return "end"
	case chart.Right:
		return "start"
	default:
		return "middle"
	}
}

func tickTransform(a chart.Axis, t chart.Tick) string {
	if a.Orient == chart.Bottom {
		return "translate(" + chart.Num(t.Pos) + ",0)"
	}
	return "translate(0," + chart.Num(t.Pos) + ")"
}
