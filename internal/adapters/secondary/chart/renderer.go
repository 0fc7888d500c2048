package chart

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"strings"

	chartlib "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/qkitzero/github-contribution-growth-graph/internal/core/domain"
	apperrors "github.com/qkitzero/github-contribution-growth-graph/internal/core/errors"
	"github.com/qkitzero/github-contribution-growth-graph/internal/core/ports"
)

// maxAxisTicks keeps long period axes readable.
const maxAxisTicks = 12

// Renderer is the secondary adapter that draws graph data as a PNG.
type Renderer struct {
	logger *slog.Logger
}

// Ensure Renderer implements the ports.Renderer interface.
var _ ports.Renderer = (*Renderer)(nil)

// NewRenderer creates a new PNG renderer.
func NewRenderer(logger *slog.Logger) *Renderer {
	return &Renderer{logger: logger.With("adapter", "chart")}
}

// Render draws one line per series over the shared label axis. An empty
// GraphData is a valid "nothing to show" input and renders as a blank image
// of the requested size.
func (r *Renderer) Render(ctx context.Context, data domain.GraphData, opts ports.RenderOptions) ([]byte, error) {
	if len(data.Labels) == 0 || len(data.Series) == 0 {
		return blankImage(opts)
	}

	background := parseColor(opts.Background)

	// The chart library rejects a zero-width x range, so a single-period
	// axis gets a second point carrying the same value.
	degenerate := len(data.Labels) == 1

	xs := make([]float64, len(data.Labels))
	for i := range data.Labels {
		xs[i] = float64(i)
	}
	if degenerate {
		xs = []float64{0, 1}
	}

	series := make([]chartlib.Series, 0, len(data.Series))
	for _, s := range data.Series {
		ys := make([]float64, len(s.Values))
		for i, v := range s.Values {
			ys[i] = float64(v)
		}
		if degenerate {
			ys = []float64{ys[0], ys[0]}
		}
		series = append(series, chartlib.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style: chartlib.Style{
				StrokeColor: parseColor(s.Color),
				StrokeWidth: 2,
			},
		})
	}

	graph := chartlib.Chart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chartlib.Style{FillColor: background},
		Canvas:     chartlib.Style{FillColor: background},
		XAxis: chartlib.XAxis{
			Ticks: axisTicks(data.Labels),
		},
		Series: series,
	}
	graph.Elements = []chartlib.Renderable{chartlib.LegendThin(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chartlib.PNG, &buf); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRender, err)
	}
	return buf.Bytes(), nil
}

// axisTicks thins the label axis so wide ranges stay legible.
func axisTicks(labels []string) []chartlib.Tick {
	step := 1
	if len(labels) > maxAxisTicks {
		step = (len(labels) + maxAxisTicks - 1) / maxAxisTicks
	}

	var ticks []chartlib.Tick
	for i := 0; i < len(labels); i += step {
		ticks = append(ticks, chartlib.Tick{Value: float64(i), Label: labels[i]})
	}
	// The chart library needs at least two ticks to span an axis.
	if len(ticks) == 1 {
		ticks = append(ticks, chartlib.Tick{Value: 1, Label: ""})
	}
	return ticks
}

// blankImage encodes a plain background-colored PNG for the empty result.
func blankImage(opts ports.RenderOptions) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	bg := parseColor(opts.Background)
	fill := color.RGBA{R: bg.R, G: bg.G, B: bg.B, A: bg.A}
	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			img.SetRGBA(x, y, fill)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRender, err)
	}
	return buf.Bytes(), nil
}

// parseColor resolves a hex color string, treating "transparent" and the
// empty string as fully transparent.
func parseColor(value string) drawing.Color {
	if value == "" || value == "transparent" {
		return drawing.ColorTransparent
	}
	return drawing.ColorFromHex(strings.TrimPrefix(value, "#"))
}
