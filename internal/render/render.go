// Package render rasterizes chart specifications with go-chart.
package render

import (
	"fmt"
	"html"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/yildizm/LaunchDash/internal/chart"
)

// Format is an output image format
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// Default figure size in pixels
const (
	DefaultWidth  = 640
	DefaultHeight = 420
)

// ParseFormat validates an image format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatSVG, FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported image format: %q", s)
	}
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

// text escapes markup for SVG output; go-chart writes text nodes verbatim
func (f Format) text(s string) string {
	if f == FormatSVG {
		return html.EscapeString(s)
	}
	return s
}

func (f Format) provider() gochart.RendererProvider {
	if f == FormatPNG {
		return gochart.PNG
	}
	return gochart.SVG
}

// Renderer draws chart specifications at a fixed size
type Renderer struct {
	Width  int
	Height int
}

// New creates a renderer, falling back to the default size for
// non-positive dimensions
func New(width, height int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Renderer{Width: width, Height: height}
}

// Figure renders a PieSpec or ScatterSpec
func (r *Renderer) Figure(w io.Writer, figure any, format Format) error {
	switch spec := figure.(type) {
	case chart.PieSpec:
		return r.Pie(w, spec, format)
	case *chart.PieSpec:
		return r.Pie(w, *spec, format)
	case chart.ScatterSpec:
		return r.Scatter(w, spec, format)
	case *chart.ScatterSpec:
		return r.Scatter(w, *spec, format)
	default:
		return fmt.Errorf("cannot render figure of type %T", figure)
	}
}

// Pie renders a pie chart. Zero-valued slices are not drawn; a spec with
// nothing to draw renders as an empty placeholder.
func (r *Renderer) Pie(w io.Writer, spec chart.PieSpec, format Format) error {
	values := make([]gochart.Value, 0, len(spec.Slices))
	for _, s := range spec.Slices {
		if s.Value <= 0 {
			continue
		}
		values = append(values, gochart.Value{
			Label: format.text(fmt.Sprintf("%s (%d)", s.Label, s.Value)),
			Value: float64(s.Value),
		})
	}
	if len(values) == 0 {
		return r.Empty(w, spec.Title, format)
	}

	pie := gochart.PieChart{
		Title:  format.text(spec.Title),
		Width:  r.Width,
		Height: r.Height,
		Values: values,
	}
	if err := pie.Render(format.provider(), w); err != nil {
		return fmt.Errorf("failed to render pie chart: %w", err)
	}
	return nil
}

// Scatter renders a dot-only scatter chart with one legend entry per
// booster version category. The X axis spans the selected payload range.
func (r *Renderer) Scatter(w io.Writer, spec chart.ScatterSpec, format Format) error {
	if spec.PointCount() == 0 {
		return r.Empty(w, spec.Title, format)
	}

	series := make([]gochart.Series, 0, len(spec.Series))
	for i, s := range spec.Series {
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for j, p := range s.Points {
			xs[j] = p.X
			ys[j] = float64(p.Y)
		}
		series = append(series, gochart.ContinuousSeries{
			Name:    format.text(s.Name),
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(gochart.GetDefaultColor(i)),
		})
	}

	yRange, yTicks := classAxis(spec)
	ch := gochart.Chart{
		Title:      format.text(spec.Title),
		Width:      r.Width,
		Height:     r.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis:      gochart.XAxis{Name: format.text(spec.XLabel), Range: payloadAxis(spec)},
		YAxis:      gochart.YAxis{Name: format.text(spec.YLabel), Range: yRange, Ticks: yTicks},
		Series:     series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	if err := ch.Render(format.provider(), w); err != nil {
		return fmt.Errorf("failed to render scatter chart: %w", err)
	}
	return nil
}

// Empty renders a placeholder carrying only the title and a no-data note
func (r *Renderer) Empty(w io.Writer, title string, format Format) error {
	canvas, err := format.provider()(r.Width, r.Height)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	font, err := gochart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("failed to load font: %w", err)
	}

	canvas.SetFillColor(drawing.ColorWhite)
	canvas.MoveTo(0, 0)
	canvas.LineTo(r.Width, 0)
	canvas.LineTo(r.Width, r.Height)
	canvas.LineTo(0, r.Height)
	canvas.Close()
	canvas.Fill()

	canvas.SetFont(font)
	canvas.SetFontColor(drawing.ColorBlack)
	canvas.SetFontSize(14)
	drawCentered(canvas, format.text(title), r.Width, r.Height/3)

	canvas.SetFontColor(gochart.ColorAlternateGray)
	canvas.SetFontSize(11)
	drawCentered(canvas, "No launches match the current selection", r.Width, r.Height/2)

	if err := canvas.Save(w); err != nil {
		return fmt.Errorf("failed to write placeholder: %w", err)
	}
	return nil
}

func drawCentered(canvas gochart.Renderer, text string, width, y int) {
	box := canvas.MeasureText(text)
	x := (width - box.Width()) / 2
	if x < 0 {
		x = 0
	}
	canvas.Text(text, x, y)
}

// pointStyle renders points only, no connecting line
func pointStyle(col drawing.Color) gochart.Style {
	return gochart.Style{
		StrokeWidth: gochart.Disabled,
		DotWidth:    5,
		DotColor:    col,
	}
}

// payloadAxis spans the selection, widened to the points when the selection
// is unbounded and padded when it collapses to a single value
func payloadAxis(spec chart.ScatterSpec) *gochart.ContinuousRange {
	low, high := spec.Payload.Low, spec.Payload.High
	if math.IsInf(low, 0) || math.IsInf(high, 0) || math.IsNaN(low) || math.IsNaN(high) {
		low, high = pointExtent(spec)
	}
	if high-low < 1 {
		pad := math.Max(math.Abs(low)*0.05, 500)
		low, high = low-pad, high+pad
	}
	return &gochart.ContinuousRange{Min: low, Max: high}
}

func pointExtent(spec chart.ScatterSpec) (float64, float64) {
	low, high := math.Inf(1), math.Inf(-1)
	for _, s := range spec.Series {
		for _, p := range s.Points {
			low = math.Min(low, p.X)
			high = math.Max(high, p.X)
		}
	}
	return low, high
}

// classAxis ticks 0, 1 and every other class value present; go-chart fits
// the range to the ticks
func classAxis(spec chart.ScatterSpec) (*gochart.ContinuousRange, []gochart.Tick) {
	values := []int{0, 1}
	for _, s := range spec.Series {
		for _, p := range s.Points {
			values = append(values, p.Y)
		}
	}
	slices.Sort(values)
	values = slices.Compact(values)

	ticks := make([]gochart.Tick, 0, len(values))
	for _, v := range values {
		ticks = append(ticks, gochart.Tick{Value: float64(v), Label: strconv.Itoa(v)})
	}
	low, high := float64(values[0]), float64(values[len(values)-1])
	return &gochart.ContinuousRange{Min: low, Max: high}, ticks
}
