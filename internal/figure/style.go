package figure

import (
	"image/color"

	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/torchastro/survcomp/internal/model"
)

// Style is the rendering style of one dataset's histograms. The same style
// is used in every panel the dataset appears in, and in the legend.
type Style struct {
	// Color is the outline color.
	Color color.Color

	// Width is the outline width.
	Width vg.Length

	// Dashes is the dash pattern; nil draws a solid line.
	Dashes []vg.Length
}

// lineStyle converts the style into the plotting backend's form.
func (s Style) lineStyle() draw.LineStyle {
	return draw.LineStyle{
		Color:  s.Color,
		Width:  s.Width,
		Dashes: s.Dashes,
	}
}

// DefaultStyles returns the standard comparison styles: the observational
// survey as a solid blue outline and the simulated survey as a dashed red
// outline, both 1.5 points wide.
func DefaultStyles() map[string]Style {
	return map[string]Style{
		model.DatasetCornish: {
			Color: color.RGBA{B: 255, A: 255},
			Width: vg.Points(1.5),
		},
		model.DatasetSimulated: {
			Color:  color.RGBA{R: 255, A: 255},
			Width:  vg.Points(1.5),
			Dashes: []vg.Length{vg.Points(6), vg.Points(3)},
		},
	}
}

// styleFor returns the configured style for a dataset, or a distinguishable
// fallback from the plotutil palette for datasets the style map does not
// know about.
func styleFor(styles map[string]Style, dataset string, ordinal int) Style {
	if s, ok := styles[dataset]; ok {
		return s
	}
	return Style{
		Color:  plotutil.Color(ordinal),
		Width:  vg.Points(1.5),
		Dashes: plotutil.Dashes(ordinal),
	}
}
