package dashboard

// fragmentTemplates draws the inner HTML of every container. Each
// container id maps onto one of the named templates below.
const fragmentTemplates = `
{{define "kpis"}}{{range .Cards}}<div class="kpi-card" style="animation-delay: {{.DelayMS}}ms; border-top-color: {{.Color}}">
<div class="kpi-label">{{.Label}}</div>
<div class="kpi-value" style="color: {{.Color}}">{{.Value}}</div>
<div class="kpi-sub">{{.Sub}}</div>
</div>
{{end}}{{end}}

{{define "buttons"}}{{$attr := .Attr}}{{range .Buttons}}<button type="button" class="filter-btn{{if .Active}} active{{end}}"{{if eq $attr "view"}} data-view="{{.Value}}"{{else}} data-country="{{.Value}}"{{end}}{{with .Color}} data-color="{{.}}"{{end}}{{if and .Active .Color}} style="background: {{.Color}}; color: #FFFFFF"{{end}}>{{.Label}}</button>{{end}}{{end}}

{{define "legend"}}{{if .}}<div class="legend">{{range .}}<span class="legend-item"><span class="swatch" style="background: {{.Color}}"></span>{{.Label}}</span>{{end}}</div>{{end}}{{end}}

{{define "insight"}}<div class="insight-box insight-{{.Kind}}" style="border-left-color: {{.Kind.Color}}">
<h4 style="color: {{.Kind.Color}}">{{.Title}}</h4>
{{markdown .Body}}</div>
{{end}}

{{define "insights"}}{{range .Insights}}{{template "insight" .}}{{end}}{{end}}

{{define "section"}}{{with .Title}}<h3 class="chart-title">{{.}}</h3>
{{end}}{{with .Placeholder}}<div class="placeholder{{if .Loading}} loading{{end}}">{{.Text}}</div>
{{end}}{{with .Figure}}{{template "figure" .}}{{end}}{{template "legend" .Legend}}{{range .Insights}}{{template "insight" .}}{{end}}{{end}}

{{define "flavour"}}<div class="flavour-layout">
<div class="flavour-main">{{with .Title}}<h3 class="chart-title">{{.}}</h3>{{end}}
<div class="mini-kpis">{{range .KPIs}}<div class="mini-kpi" style="border-left-color: {{.Color}}"><div class="mini-kpi-label">{{.Label}}</div><div class="mini-kpi-value" style="color: {{.Color}}">{{.Value}}</div><div class="mini-kpi-sub">{{.Sub}}</div></div>{{end}}</div>
{{with .Chart}}{{template "figure" .}}{{end}}{{template "legend" .Legend}}</div>
<div class="flavour-side">{{with .BrandsTitle}}<h3 class="chart-title">{{.}}</h3>{{end}}
{{with .Brands}}{{template "figure" .}}{{end}}</div>
</div>
{{range .Insights}}{{template "insight" .}}{{end}}{{end}}

{{define "sunburst"}}{{with .Title}}<h3 class="chart-title">{{.}}</h3>
{{end}}<div class="sunburst-layout">{{with .Figure}}{{template "figure" .}}{{end}}
<div class="story"><h4>{{.StoryTitle}}</h4>
<ul>{{range .Story}}<li><span class="story-icon">{{.Icon}}</span> {{inline .Text}}</li>{{end}}</ul>
</div>
</div>
{{end}}

{{define "roadmap"}}{{with .Title}}<h3 class="chart-title">{{.}}</h3>
{{end}}<div class="roadmap-grid">{{range .Cards}}<div class="roadmap-card" style="border-left-color: {{.Color}}">
<div class="roadmap-head"><strong>{{.Title}}</strong><span class="status" style="background: {{.Color}}">{{.Status}}</span></div>
<div class="roadmap-impact" style="color: {{.Color}}">{{.Impact}}</div>
<div class="roadmap-meta">Confidence: {{.Confidence}} | {{.Timeline}}</div>
</div>
{{end}}</div>
{{if .Cards}}<div class="total-impact">
<h4>12-Month Total Impact</h4>
<div class="total-impact-values">
<div><div class="total-value">{{.TotalUnits}}</div><div class="total-label">Incremental Units</div></div>
<div><div class="total-value revenue">{{.TotalRevenue}}</div><div class="total-label">Revenue</div></div>
</div>
</div>
{{end}}{{end}}

{{define "figure"}}<svg width="{{num .Width}}" height="{{num .Height}}" viewBox="0 0 {{num .Width}} {{num .Height}}"><g transform="translate({{num .Left}},{{num .Top}})">{{range .Axes}}{{template "axis" .}}{{end}}{{range .Marks}}{{template "mark" .}}{{end}}</g></svg>
{{end}}

{{define "axis"}}{{$a := .}}<g class="axis axis-{{.Orient}}" transform="translate({{num .X}},{{num .Y}})" fill="none" font-size="10" text-anchor="{{axisAnchor .}}"><path class="domain" stroke="currentColor" d="{{axisDomain .}}"/>{{range .Ticks}}<g class="tick" transform="{{tickTransform $a .}}">{{if eq $a.Orient "bottom"}}<line stroke="currentColor" y2="6"/>{{if $a.Rotate}}<text fill="currentColor" y="9" dx="-.8em" dy=".15em" transform="rotate(-45)" text-anchor="end">{{.Label}}</text>{{else}}<text fill="currentColor" y="9" dy="0.71em">{{.Label}}</text>{{end}}{{else if eq $a.Orient "left"}}<line stroke="currentColor" x2="-6"/><text fill="currentColor" x="-9" dy="0.32em">{{.Label}}</text>{{else}}<line stroke="currentColor" x2="6"/><text fill="currentColor" x="9" dy="0.32em">{{.Label}}</text>{{end}}</g>{{end}}</g>{{end}}

{{define "paint"}}{{if .ID}} id="{{.ID}}"{{end}}{{if .Fill}} fill="{{.Fill}}"{{end}}{{if .Stroke}} stroke="{{.Stroke}}"{{end}}{{if .StrokeWidth}} stroke-width="{{num .StrokeWidth}}"{{end}}{{if .Dash}} stroke-dasharray="{{.Dash}}"{{end}}{{if .Opacity}} opacity="{{num .Opacity}}"{{end}}{{if .Class}} class="{{.Class}}"{{end}}{{with .Tip}} data-tip-title="{{.Title}}" data-tip="{{join .Lines "\n"}}"{{end}}{{with .Center}} data-center-value="{{.Value}}" data-center-label="{{.Label}}"{{end}}{{end}}

{{define "mark"}}{{$k := markKind .Kind}}{{if eq $k "rect"}}<rect x="{{num .X}}" y="{{num .Y}}" width="{{num .W}}" height="{{num .H}}"{{if .RX}} rx="{{num .RX}}"{{end}}{{template "paint" .}}/>{{else if eq $k "circle"}}<circle cx="{{num .X}}" cy="{{num .Y}}" r="{{num .R}}"{{template "paint" .}}/>{{else if eq $k "line"}}<line x1="{{num .X}}" y1="{{num .Y}}" x2="{{num .X2}}" y2="{{num .Y2}}"{{template "paint" .}}/>{{else if eq $k "path"}}<path d="{{.D}}"{{template "paint" .}}/>{{else}}<text x="{{num .X}}" y="{{num .Y}}"{{with .Anchor}} text-anchor="{{.}}"{{end}}{{with .Baseline}} dominant-baseline="{{.}}"{{end}}{{with .DY}} dy="{{.}}"{{end}}{{with .FontSize}} font-size="{{.}}"{{end}}{{with .FontWeight}} font-weight="{{.}}"{{end}}{{template "paint" .}}{{if .ID}} data-default="{{.Text}}"{{end}}>{{.Text}}</text>{{end}}{{end}}
`

// pageTemplate is the host page. Containers holds the pre-rendered inner
// HTML of every container keyed by id.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="{{.AssetBase}}/dashboard.css">
</head>
<body data-mode="{{if .Static}}static{{else}}server{{end}}" data-fragments="{{.FragmentBase}}"{{if .Live}} data-live="{{.LivePath}}"{{end}}>
  <header class="header">
    <h1>{{.Title}}</h1>
    <p class="subtitle">{{.Subtitle}}</p>
  </header>
{{if not .Loaded}}  <div class="banner">Dataset not loaded</div>
{{end}}
  <div id="country-filter" class="filter-bar">{{index .Containers "country-filter"}}</div>
  <div id="kpi-grid" class="kpi-grid">{{index .Containers "kpi-grid"}}</div>

  <div class="grid">
    <section class="card"><div id="weighted-dist-chart" class="chart">{{index .Containers "weighted-dist-chart"}}</div></section>
    <section class="card">
      <h3 class="chart-title">Product Concentration: Samyang vs Competitors</h3>
      <div class="filters">
        <div id="pareto-country-filter" class="filter-group">{{template "buttons" .ParetoCountry}}</div>
        <div id="pareto-view-filter" class="filter-group">{{template "buttons" .ParetoView}}</div>
      </div>
      <div id="numeric-dist-chart" class="chart">{{index .Containers "numeric-dist-chart"}}</div>
    </section>
  </div>

  <section class="card wide"><div id="price-by-country-chart" class="chart">{{index .Containers "price-by-country-chart"}}</div></section>
  <section class="card wide"><div id="flavour-by-country-chart" class="chart">{{index .Containers "flavour-by-country-chart"}}</div></section>

  <section class="card wide">
    <h3 class="chart-title">Weekly Sales Trend (M units)</h3>
    <div id="seasonality-filter" class="filter-group">{{template "buttons" .SeasonalityFilter}}</div>
    <div id="seasonality-chart" class="chart">{{index .Containers "seasonality-chart"}}</div>
    <div id="seasonality-insight">{{index .Containers "seasonality-insight"}}</div>
  </section>

  <div class="grid">
    <section class="card"><div id="ros-chart" class="chart">{{index .Containers "ros-chart"}}</div></section>
    <section class="card"><div id="sunburst-chart" class="chart">{{index .Containers "sunburst-chart"}}</div></section>
  </div>

  <section class="card wide"><div id="retailer-heatmap" class="chart">{{index .Containers "retailer-heatmap"}}</div></section>
  <section class="card wide"><div id="insights-container">{{index .Containers "insights-container"}}</div></section>

  <div id="tooltip" class="tooltip"></div>
  <script src="{{.AssetBase}}/dashboard.js"></script>
</body>
</html>
`
