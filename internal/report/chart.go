package report

import (
	"fmt"
	"image/color"

	"github.com/fdelorme/stroke-rules/internal/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// WriteScatter renders the rules as a support/confidence scatter with
// point radius scaled by lift, and saves it to path. The image format
// follows the file extension (.png, .svg, .pdf).
func WriteScatter(rules model.Rules, path string) error {
	if len(rules) == 0 {
		return fmt.Errorf("no rules to plot")
	}

	p := plot.New()
	p.Title.Text = "Support vs confidence (radius scaled by lift)"
	p.X.Label.Text = "Support"
	p.Y.Label.Text = "Confidence"
	p.Y.Min, p.Y.Max = 0, 1.05
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(rules))
	maxLift := 0.0
	for i, rule := range rules {
		xys[i] = plotter.XY{X: rule.Metrics.Support, Y: rule.Metrics.Confidence}
		if rule.Metrics.Lift > maxLift {
			maxLift = rule.Metrics.Lift
		}
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("failed to build scatter: %w", err)
	}

	fill := color.RGBA{R: 0x7c, G: 0x6b, B: 0xaf, A: 0xb0}
	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		radius := vg.Points(3)
		if maxLift > 0 {
			radius = vg.Points(2 + 6*rules[i].Metrics.Lift/maxLift)
		}
		return draw.GlyphStyle{Color: fill, Radius: radius, Shape: draw.CircleGlyph{}}
	}
	p.Add(scatter)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}
	return nil
}
