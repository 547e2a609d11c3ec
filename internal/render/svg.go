package render

import (
	"fmt"
	"io"
	"strconv"
	"text/template"

	"github.com/zapponejosh/candybar/internal/candybar"
)

var svgTemplate = template.Must(template.New("candybar").Funcs(template.FuncMap{
	"xml": template.HTMLEscapeString,
}).Parse(`<svg viewBox="0 0 {{.Width}} {{.Height}}" width="{{.Width}}" height="{{.Height}}" xmlns="http://www.w3.org/2000/svg">
<title>{{xml .Title}}</title>
<style>
text { font-family: {{xml .Theme.FontFamily}}; font-size: {{.Theme.FontSize}}px; text-anchor: end; }
.heading { text-anchor: middle; fill: {{xml .Theme.Dim}}; }
.iso { fill: {{xml .Theme.ISO}}; }
.dim { fill: {{xml .Theme.Dim}}; }
.highlight { fill: {{xml .Theme.Highlight}}; }
.highlight_bold { fill: {{xml .Theme.HighlightBold}}; font-weight: bold; }
</style>
<rect width="100%" height="100%" fill="{{xml .Theme.Background}}"/>
{{- range .Bars}}
<g transform="translate({{.X}},{{.Y}})">
<text class="heading" x="{{.Center}}" y="0">{{xml .Heading}}</text>
{{- range .Lines}}
<text y="{{.Y}}">{{range .Cells}}<tspan class="{{.Class}}" x="{{.X}}">{{xml .Text}}</tspan>{{end}}</text>
{{- end}}
</g>
{{- end}}
</svg>
`))

type svgCell struct {
	X     float64
	Class string
	Text  string
}

type svgLine struct {
	Y     float64
	Cells []svgCell
}

type svgBar struct {
	X, Y    float64
	Center  float64
	Heading string
	Lines   []svgLine
}

type svgDoc struct {
	Title  string
	Width  float64
	Height float64
	Theme  Theme
	Bars   []svgBar
}

// DefaultSVGSystems are the bars drawn either side of the ISO column.
var DefaultSVGSystems = []candybar.System{candybar.Gregorian, candybar.Chinese}

// SVG draws the table as vertical bars: the first system, the ISO week
// numbers, then the remaining systems. New moons use the bold highlight
// and first days of a month the plain one.
func SVG(w io.Writer, t *candybar.Table, theme Theme, systems ...candybar.System) error {
	if len(systems) == 0 {
		systems = DefaultSVGSystems
	}
	for _, s := range systems {
		if _, ok := t.Weeks[s]; !ok {
			return fmt.Errorf("%w: %s", ErrIncompleteTable, s)
		}
	}
	theme.Normalize()

	size := float64(theme.FontSize)
	cell := 1.5 * size
	line := 1.1 * size
	gap := size
	top := 2 * size

	var bars []svgBar
	x := gap
	addBar := func(heading string, cols int, lines []svgLine) {
		width := float64(cols) * cell
		bars = append(bars, svgBar{X: x, Y: top, Center: width / 2, Heading: heading, Lines: lines})
		x += width + gap
	}

	for i, s := range systems {
		weeks := t.Weeks[s]
		lines := make([]svgLine, len(weeks))
		for k := range weeks {
			aw := &weeks[k]
			nm := aw.NewMoonIndex()
			cells := make([]svgCell, len(aw.Days))
			for j, d := range aw.Days {
				class := "dim"
				switch {
				case j == nm:
					class = "highlight_bold"
				case d.Day == 1:
					class = "highlight"
				}
				cells[j] = svgCell{X: float64(j+1) * cell, Class: class, Text: strconv.Itoa(d.Day)}
			}
			lines[k] = svgLine{Y: float64(k+1) * line, Cells: cells}
		}
		heading := s.String()
		if s == candybar.Gregorian {
			heading = strconv.Itoa(t.Grid.Year)
		}
		addBar(heading, 7, lines)

		if i == 0 {
			addBar("ISO", 2, isoLines(weeks, cell, line))
		}
	}

	doc := svgDoc{
		Title:  fmt.Sprintf("Candybar %d", t.Grid.Year),
		Width:  x,
		Height: top + float64(len(t.Grid.Weeks)+1)*line + gap,
		Theme:  theme,
		Bars:   bars,
	}
	return svgTemplate.Execute(w, doc)
}

func isoLines(weeks []candybar.AnnotatedWeek, cell, line float64) []svgLine {
	lines := make([]svgLine, len(weeks))
	for k, aw := range weeks {
		lines[k] = svgLine{
			Y:     float64(k+1) * line,
			Cells: []svgCell{{X: 2 * cell, Class: "iso", Text: strconv.Itoa(aw.ISO)}},
		}
	}
	return lines
}
