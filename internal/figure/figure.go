package figure

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	logx "github.com/torchastro/survcomp/internal/log"
	"github.com/torchastro/survcomp/internal/model"
)

// Options configures a Renderer. Zero values fall back to the standard
// comparison figure parameters.
type Options struct {
	// PlotSize is the edge length of one square panel in inches.
	PlotSize float64

	// DPI is the raster resolution.
	DPI int

	// FontSize is the axis label font size in points.
	FontSize float64

	// YMax is the shared upper limit of every count axis.
	YMax float64

	// YTicks is the number of intervals the count axis is divided into.
	YTicks int

	// Format is the raster format: png, jpg/jpeg, or tiff.
	Format string

	// Styles maps dataset keys to line styles. Datasets without an entry
	// get a palette fallback.
	Styles map[string]Style

	// Logger receives rendering diagnostics. Nil means slog.Default.
	Logger *slog.Logger
}

// Renderer draws comparison figures. A Renderer is cheap and stateless
// between calls; one per run is typical.
type Renderer struct {
	opts Options
}

// NewRenderer creates a Renderer, applying defaults for unset options.
func NewRenderer(opts Options) *Renderer {
	if opts.PlotSize <= 0 {
		opts.PlotSize = 4.0
	}
	if opts.DPI <= 0 {
		opts.DPI = 300
	}
	if opts.FontSize <= 0 {
		opts.FontSize = 13
	}
	if opts.YMax <= 0 {
		opts.YMax = 70
	}
	if opts.YTicks <= 0 {
		opts.YTicks = 7
	}
	if opts.Format == "" {
		opts.Format = "png"
	}
	if opts.Styles == nil {
		opts.Styles = DefaultStyles()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Renderer{opts: opts}
}

// Save renders the comparison and writes it to path atomically. The raster
// is encoded into a temporary file in the destination directory and renamed
// into place, so a failure at any stage leaves no file at path.
func (r *Renderer) Save(cmp *model.Comparison, path string) error {
	img, err := r.render(cmp)
	if err != nil {
		return err
	}

	// The persist stage only speaks up for problems; progress chatter is
	// suppressed regardless of the configured verbosity.
	quiet := slog.New(logx.NewQuietHandler(r.opts.Logger.Handler(), slog.LevelWarn))

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return &RenderError{Op: "write", Err: err}
		}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return &RenderError{Op: "write", Err: err}
	}
	tmpPath := tmp.Name()

	if err := r.encode(img, tmp); err != nil {
		_ = tmp.Close()           //nolint:errcheck // Best effort cleanup
		_ = os.Remove(tmpPath)    //nolint:errcheck // Best effort cleanup
		quiet.Warn("removed temporary figure after encode failure", "path", tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath) //nolint:errcheck // Best effort cleanup
		return &RenderError{Op: "write", Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath) //nolint:errcheck // Best effort cleanup
		return &RenderError{Op: "write", Err: err}
	}

	r.opts.Logger.Debug("figure written",
		"path", path,
		"format", r.opts.Format,
		"panels", len(cmp.Panels),
	)
	return nil
}

// encode writes the canvas to w in the configured format.
func (r *Renderer) encode(img *vgimg.Canvas, w *os.File) error {
	var err error
	switch r.opts.Format {
	case "png":
		_, err = vgimg.PngCanvas{Canvas: img}.WriteTo(w)
	case "jpg", "jpeg":
		_, err = vgimg.JpegCanvas{Canvas: img}.WriteTo(w)
	case "tiff":
		_, err = vgimg.TiffCanvas{Canvas: img}.WriteTo(w)
	default:
		return &RenderError{Op: "encode", Err: fmt.Errorf("unknown format %q", r.opts.Format)}
	}
	if err != nil {
		return &RenderError{Op: "encode", Err: err}
	}
	return nil
}

// render draws every panel into one aligned row and returns the canvas.
func (r *Renderer) render(cmp *model.Comparison) (*vgimg.Canvas, error) {
	if cmp == nil || len(cmp.Panels) == 0 {
		return nil, &RenderError{Op: "layout", Err: ErrNoPanels}
	}

	row := make([]*plot.Plot, len(cmp.Panels))

	// Legend handles: one representative line per dataset label, preferring
	// the panel the legend is attached to.
	legendLines := make(map[string]*plotter.Line)
	var legendOrder []string

	for i, panel := range cmp.Panels {
		p := plot.New()

		p.X.Label.Text = panel.Variable.AxisLabel()
		p.X.Min = panel.Variable.AxisMin
		p.X.Max = panel.Variable.AxisMax
		p.Y.Min = 0
		p.Y.Max = r.opts.YMax
		p.Y.Tick.Marker = r.yTicker()
		if i == 0 {
			p.Y.Label.Text = "N"
		}
		r.applyFonts(p)

		for ord, series := range panel.Series {
			if series.InRange == 0 {
				r.opts.Logger.Warn("series has no values in range",
					"variable", panel.Variable.Key,
					"dataset", series.Dataset,
					"entries", series.Entries,
				)
			}

			line, err := plotter.NewLine(stepOutline(panel.Variable.Edges, series.Counts))
			if err != nil {
				return nil, &RenderError{Op: "series", Err: err}
			}
			line.LineStyle = styleFor(r.opts.Styles, series.Dataset, ord).lineStyle()
			p.Add(line)

			if _, ok := legendLines[series.Label]; !ok {
				legendOrder = append(legendOrder, series.Label)
			}
			legendLines[series.Label] = line
		}

		row[i] = p
	}

	// The legend lives in the last panel only; every dataset label appears
	// exactly once no matter how many panels reference it.
	last := row[len(row)-1]
	last.Legend.Top = true
	last.Legend.TextStyle.Font.Size = vg.Points(r.opts.FontSize * 0.85)
	for _, label := range legendOrder {
		last.Legend.Add(label, legendLines[label])
	}

	width := vg.Length(r.opts.PlotSize*float64(len(row))) * vg.Inch
	height := vg.Length(r.opts.PlotSize) * vg.Inch

	img := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(r.opts.DPI))
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(row),
		PadX:      vg.Points(14),
		PadTop:    vg.Points(6),
		PadBottom: vg.Points(2),
		PadLeft:   vg.Points(2),
		PadRight:  vg.Points(8),
	}

	canvases := plot.Align([][]*plot.Plot{row}, tiles, dc)
	for i, p := range row {
		p.Draw(canvases[0][i])
	}

	return img, nil
}

// applyFonts sets the axis fonts from the configured size.
func (r *Renderer) applyFonts(p *plot.Plot) {
	size := vg.Points(r.opts.FontSize)
	tickSize := vg.Points(r.opts.FontSize * 0.85)

	p.X.Label.TextStyle.Font.Size = size
	p.Y.Label.TextStyle.Font.Size = size
	p.X.Tick.Label.Font.Size = tickSize
	p.Y.Tick.Label.Font.Size = tickSize
}

// yTicker places ticks at regular intervals: the count axis is divided
// into YTicks equal steps from zero to YMax.
func (r *Renderer) yTicker() plot.Ticker {
	ymax := r.opts.YMax
	n := r.opts.YTicks
	return plot.TickerFunc(func(min, max float64) []plot.Tick {
		step := ymax / float64(n)
		ticks := make([]plot.Tick, 0, n+1)
		for i := 0; i <= n; i++ {
			v := float64(i) * step
			ticks = append(ticks, plot.Tick{
				Value: v,
				Label: strconv.FormatFloat(v, 'f', -1, 64),
			})
		}
		return ticks
	})
}

// stepOutline converts bin edges and counts into the connected outline of
// a step histogram: up the left edge of the first occupied bin, across each
// bin at its count, and back down to zero at the final edge.
func stepOutline(edges []float64, counts []int) plotter.XYs {
	if len(edges) < 2 || len(counts) != len(edges)-1 {
		return plotter.XYs{}
	}

	pts := make(plotter.XYs, 0, 2*len(counts)+2)
	pts = append(pts, plotter.XY{X: edges[0], Y: 0})
	for i, c := range counts {
		y := float64(c)
		pts = append(pts,
			plotter.XY{X: edges[i], Y: y},
			plotter.XY{X: edges[i+1], Y: y},
		)
	}
	pts = append(pts, plotter.XY{X: edges[len(edges)-1], Y: 0})
	return pts
}
