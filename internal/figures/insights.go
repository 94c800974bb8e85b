package figures

// InsightKind selects the accent of an insight box.
type InsightKind string

const (
	KindInfo        InsightKind = "info"
	KindAction      InsightKind = "action"
	KindOpportunity InsightKind = "opportunity"
)

// Color is the border and heading colour for the kind.
func (k InsightKind) Color() string {
	switch k {
	case KindAction:
		return ColorSamyang
	case KindOpportunity:
		return ColorGreen
	default:
		return ColorTeal
	}
}

// Insight is a titled commentary box. Body is Markdown.
type Insight struct {
	Title string
	Body  string
	Kind  InsightKind
}

var (
	DistributionGap = Insight{
		Title: "Distribution Gap",
		Body: "**UK Megastores: 14% gap** (38% vs 52%). Biggest opportunity in high-volume stores. " +
			"Germany/NL more balanced. " +
			"**Action:** Prioritize UK Megastore listings to close distribution gap.",
		Kind: KindAction,
	}

	UKROSRedFlag = Insight{
		Title: "UK ROS Red Flag",
		Body: "**UK ROS Index = 37% (red)** while DE/NL are 125-135% (green). " +
			"Based on 89 Samyang products vs 2,394 competitor products. Pricing consistent, velocity diverges. " +
			"**Root cause:** Format mismatch + brand awareness gap. Fix before distribution expansion.",
		Kind: KindAction,
	}

	BrandDynamics = Insight{
		Title: "Brand Dynamics",
		Body: "**BULDAK (Samyang) ranks #8 with +24.6% growth** - fastest growing major brand. " +
			"Asian brands (Nissin +12%, Nong Shim +16%) outpacing Western brands (Pot Noodle -2%, Super Noodles -2%). " +
			"**Trend:** Market shifting toward authentic Asian flavours.",
		Kind: KindInfo,
	}

	CompetitorTrends = Insight{
		Title: "Competitor Trend Analysis",
		Body: "**Are competitors growing?** Mixed picture: " +
			"Growing: Nissin (+12%), Nong Shim (+16%), Pot Noodle King (+9%). " +
			"Declining: Pot Noodle (-2%), Super Noodles (-2%), Knorr (-4%). " +
			"**Insight:** Premium/authentic Asian brands growing; legacy convenience brands declining. Samyang well-positioned.",
		Kind: KindOpportunity,
	}

	MarketStrategy = Insight{
		Title: "Different Strategy by Market",
		Body: "**UK = 0.37x (losing) vs DE/NL = 1.25-1.35x (winning).** " +
			"Same product, different outcomes. UK root causes: Cup format dominance, brand awareness gap, price sensitivity. " +
			"**Action:** DE/NL → expand distribution. UK → fix velocity first with Cup format launch + €2-3M marketing.",
		Kind: KindAction,
	}

	FocusUK = Insight{
		Title: "Focus UK Resources",
		Body: "**High Street Large = best UK segment (0.88x).** " +
			"Impulse = worst (0.02x) - deprioritize. " +
			"**Action:** Double down on High Street Large. Cup format for Convenience. Exit Impulse.",
		Kind: KindAction,
	}
)

// Concentration comments on the Pareto ranking of a country and view.
func Concentration(country string, samyangView bool) Insight {
	body := "**" + country + ": Competitor Tail.** Market characterized by fragmentation."
	if samyangView {
		body = "**" + country + ": Samyang Top Performers.** High dependency on top 3-4 SKUs."
	}
	return Insight{Title: "Concentration Analysis", Body: body, Kind: KindInfo}
}

// Trend comments on the weekly series of a country.
func Trend(country string, all bool) Insight {
	body := "**Samyang vs Competitors.** Visualizing competitive gap over time."
	if all {
		body = "**Variable Market Performance.** Tracking total volume across key regions."
	}
	return Insight{Title: "Trend Analysis (" + country + ")", Body: body, Kind: KindInfo}
}
