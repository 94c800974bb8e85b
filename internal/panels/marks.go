package panels

import "github.com/abcnoodle/marketintel/internal/figures"

func rect(x, y, w, h float64, fill string) Mark {
	return Mark{Kind: MarkRect, X: x, Y: y, W: w, H: h, Fill: fill}
}

func label(x, y float64, s, fill, size string) Mark {
	return Mark{Kind: MarkText, X: x, Y: y, Text: s, Fill: fill, FontSize: size}
}

func circle(x, y, r float64, fill string) Mark {
	return Mark{Kind: MarkCircle, X: x, Y: y, R: r, Fill: fill}
}

func tip(title string, lines ...string) *Tip {
	return &Tip{Title: title, Lines: lines}
}

var samyangVsCompetitors = []LegendItem{
	{Color: figures.ColorSamyang, Label: "Samyang"},
	{Color: figures.ColorOthers, Label: "Competitors"},
}
