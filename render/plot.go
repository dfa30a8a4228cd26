package render

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/frk2/tubetab"
)

// profilePlotFacets is the arc resolution for plotted profiles.
const profilePlotFacets = 64

// SaveProfilePlot writes a 2D plot of a cross-section profile boundary.
// The output format follows the file extension (svg, png, pdf).
func SaveProfilePlot(p tubetab.Profile, path string) error {
	verts := p.Vertices(profilePlotFacets)
	pts := make(plotter.XYs, len(verts))
	for i, v := range verts {
		pts[i].X = v.X
		pts[i].Y = v.Y
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	plt := plot.New()
	plt.Title.Text = "cross-section profile"
	plt.X.Label.Text = "x [m]"
	plt.Y.Label.Text = "y [m]"
	plt.Add(plotter.NewGrid(), line)
	return plt.Save(12*vg.Centimeter, 12*vg.Centimeter, path)
}
