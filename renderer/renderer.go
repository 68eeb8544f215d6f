package renderer

import (
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"blayer/model"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	curveColor      = color.RGBA{B: 255, A: 255}
	freeStreamColor = color.RGBA{R: 255, A: 255}
	wallColor       = color.Black
	// 网格透明度 0.3
	gridColor = color.NRGBA{A: 77}
)

// 构建速度剖面图：横轴 u/U，纵轴 y
func Render(profile *model.Profile, figure model.Figure) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = figure.Title
	p.X.Label.Text = figure.XLabel
	p.Y.Label.Text = figure.YLabel

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	pts := make(plotter.XYs, len(profile.Y))
	for i := range profile.Y {
		pts[i].X = profile.U[i]
		pts[i].Y = profile.Y[i]
	}
	curve, err := plotter.NewLine(pts)
	if err != nil {
		return nil, errors.Wrap(err, "velocity profile line")
	}
	curve.LineStyle.Color = curveColor
	curve.LineStyle.Width = vg.Points(1.5)

	// 壁面 y = 0，横跨整个 x 轴
	wall := plotter.NewFunction(func(float64) float64 { return 0 })
	wall.LineStyle.Color = wallColor
	wall.LineStyle.Width = vg.Points(0.5)
	wall.LineStyle.Dashes = dashes()

	yMin, yMax := 0.0, profile.Delta
	if len(profile.Y) > 0 {
		yMin, yMax = floats.Min(profile.Y), floats.Max(profile.Y)
	}
	freeStream, err := plotter.NewLine(plotter.XYs{
		{X: profile.Params.UInf, Y: yMin},
		{X: profile.Params.UInf, Y: yMax},
	})
	if err != nil {
		return nil, errors.Wrap(err, "free stream line")
	}
	freeStream.LineStyle.Color = freeStreamColor
	freeStream.LineStyle.Width = vg.Points(1.5)
	freeStream.LineStyle.Dashes = dashes()

	p.Add(curve, wall, freeStream)
	p.Legend.Add(figure.CurveLabel, curve)
	p.Legend.Add(figure.FreeStreamLabel, freeStream)
	p.Legend.Top = true
	p.Legend.Left = true

	xMin, xMax := 0.0, profile.Params.UInf
	if len(profile.U) > 0 {
		xMin = floats.Min(profile.U)
		xMax = floats.Max(append([]float64{xMax}, profile.U...))
	}
	pad := 0.05 * (xMax - xMin)
	p.X.Min, p.X.Max = xMin-pad, xMax+pad
	p.Y.Min, p.Y.Max = yMin, yMax
	return p, nil
}

func dashes() []vg.Length {
	return []vg.Length{vg.Points(6), vg.Points(3)}
}

// 按格式（png、svg、pdf 等）输出到 w
func WriteTo(w io.Writer, profile *model.Profile, figure model.Figure, format string) error {
	p, err := Render(profile, figure)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(vg.Length(figure.Width)*vg.Inch, vg.Length(figure.Height)*vg.Inch, format)
	if err != nil {
		return errors.Wrapf(err, "figure format %s", format)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return errors.Wrap(err, "write figure")
	}
	return nil
}

// 保存到文件，格式由扩展名决定
func Save(path string, profile *model.Profile, figure model.Figure) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		return errors.Errorf("no figure format in %q", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create figure file")
	}
	defer f.Close()
	if err = WriteTo(f, profile, figure, format); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"path":   path,
		"width":  figure.Width,
		"height": figure.Height,
	}).Info("速度剖面图已保存")
	return f.Close()
}
