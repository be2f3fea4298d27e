package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ExportLoopSchematic exports the thermal loop schematic to an image file
func ExportLoopSchematic(d LoopData, filename string) error {
	p := plot.New()
	p.Title.Text = "Thermal Loop"
	p.HideAxes()
	p.X.Min, p.X.Max = 0, 12
	p.Y.Min, p.Y.Max = 0, 8

	enclosureEdge := color.RGBA{R: 0, G: 150, B: 136, A: 255}
	enclosureFill := color.RGBA{R: 0, G: 150, B: 136, A: 40}
	coilEdge := color.RGBA{R: 66, G: 133, B: 244, A: 255}
	coilFill := color.RGBA{R: 66, G: 133, B: 244, A: 40}
	airColor := color.RGBA{R: 96, G: 96, B: 96, A: 255}
	coolantColor := color.RGBA{R: 0, G: 0, B: 139, A: 255}

	// Enclosure box
	if err := addBox(p, 1, 2, 5.5, 5.5, enclosureEdge, enclosureFill); err != nil {
		return err
	}

	// Coil / heat exchanger box
	if err := addBox(p, 8, 2.5, 10.5, 5, coilEdge, coilFill); err != nil {
		return err
	}

	// Air loop: return along the top, supply along the bottom
	if err := addArrow(p, 5.5, 6, 8, 6, airColor); err != nil {
		return err
	}
	if err := addArrow(p, 8, 1.5, 5.5, 1.5, airColor); err != nil {
		return err
	}

	// Ambient coupling down into the enclosure
	if err := addArrow(p, 3.25, 7.0, 3.25, 5.5, airColor); err != nil {
		return err
	}

	// Chilled water feed up into the coil
	if err := addArrow(p, 9.25, 1.0, 9.25, 2.5, coolantColor); err != nil {
		return err
	}

	coilLabel := d.CoolingTypeLabel
	if coilLabel == "" {
		coilLabel = "Air Coil"
	}

	// Add annotations
	labels := []struct {
		x, y float64
		text string
	}{
		{2.4, 5.0, "ENCLOSURE"},
		{2.4, 4.1, fmt.Sprintf("T = %.1f °C", d.EnclosureTempC)},
		{2.4, 3.2, fmt.Sprintf("Q_load = %.0f W", d.HeatLoadW)},
		{8.5, 4.5, "COIL / HX"},
		{8.5, 3.9, coilLabel},
		{8.3, 3.2, fmt.Sprintf("T_out = %.1f °C", d.SupplyTempC)},
		{5.7, 6.3, fmt.Sprintf("Return air %.1f °C", d.ReturnTempC)},
		{5.4, 0.9, fmt.Sprintf("Supply %.1f °C · %.0f CFM", d.SupplyTempC, d.AirflowCFM)},
		{2.5, 7.4, fmt.Sprintf("Ambient %.1f °C", d.AmbientTempC)},
		{3.6, 6.3, fmt.Sprintf("UA = %.1f W/K", d.UAValue)},
		{8.6, 0.4, fmt.Sprintf("Coolant %.0f °C · %.2f L/min", d.ChilledWaterTempC, d.CoolantLPM)},
	}

	for _, lbl := range labels {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: lbl.x, Y: lbl.y}},
			Labels: []string{lbl.text},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	// Determine file format from extension
	ext := filepath.Ext(filename)
	width := 8 * vg.Inch
	height := 5.5 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch ext {
	case ".png":
		return p.Save(width, height, filename)
	case ".svg":
		return p.Save(width, height, filename)
	case ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// ExportSweepChart exports swept solver outputs as a line chart
func ExportSweepChart(xs, ys []float64, xLabel, yLabel, title, filename string) error {
	if len(xs) == 0 || len(xs) != len(ys) {
		return fmt.Errorf("sweep chart needs matching non-empty series, got %d and %d points", len(xs), len(ys))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.RGBA{R: 0, G: 150, B: 136, A: 255}
	p.Add(line)

	points, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	points.GlyphStyle.Color = color.RGBA{R: 66, G: 133, B: 244, A: 255}
	points.GlyphStyle.Radius = vg.Points(2.5)
	p.Add(points)

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	ext := filepath.Ext(filename)
	width := 6 * vg.Inch
	height := 4 * vg.Inch

	switch ext {
	case ".png":
		return p.Save(width, height, filename)
	case ".svg":
		return p.Save(width, height, filename)
	case ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// addBox draws a filled rectangle with an outline
func addBox(p *plot.Plot, xMin, yMin, xMax, yMax float64, edge, fill color.Color) error {
	corners := plotter.XYs{
		{X: xMin, Y: yMin},
		{X: xMax, Y: yMin},
		{X: xMax, Y: yMax},
		{X: xMin, Y: yMax},
	}

	poly, err := plotter.NewPolygon(corners)
	if err != nil {
		return err
	}
	poly.Color = fill
	poly.LineStyle.Color = edge
	poly.LineStyle.Width = vg.Points(1.5)
	p.Add(poly)

	return nil
}

// addArrow draws a line from (x0, y0) to (x1, y1) with a filled
// triangular head at the destination
func addArrow(p *plot.Plot, x0, y0, x1, y1 float64, col color.Color) error {
	shaft, err := plotter.NewLine(plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y1}})
	if err != nil {
		return err
	}
	shaft.LineStyle.Width = vg.Points(1.2)
	shaft.LineStyle.Color = col
	p.Add(shaft)

	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	dx, dy = dx/length, dy/length
	px, py := -dy, dx

	const headLen, headHalf = 0.28, 0.12
	head, err := plotter.NewPolygon(plotter.XYs{
		{X: x1, Y: y1},
		{X: x1 - headLen*dx + headHalf*px, Y: y1 - headLen*dy + headHalf*py},
		{X: x1 - headLen*dx - headHalf*px, Y: y1 - headLen*dy - headHalf*py},
	})
	if err != nil {
		return err
	}
	head.Color = col
	head.LineStyle.Color = col
	p.Add(head)

	return nil
}
