package diagram

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"
)

// AmbientProfileChart renders the sinusoidal ambient temperature
// profile T(t) = T_mean + A·sin(2πt/period) over one full period.
func AmbientProfileChart(meanC, amplitudeC, periodHr float64, width int) string {
	if width <= 0 {
		width = 64
	}
	if periodHr <= 0 {
		periodHr = 24
	}

	samples := make([]float64, width+1)
	for i := range samples {
		t := periodHr * float64(i) / float64(width)
		samples[i] = meanC + amplitudeC*math.Sin(2*math.Pi*t/periodHr)
	}

	return asciigraph.Plot(samples,
		asciigraph.Height(10),
		asciigraph.Width(width),
		asciigraph.Precision(1),
		asciigraph.Caption(fmt.Sprintf("Ambient temperature [°C] over %.0f h", periodHr)),
	)
}

// SweepChart renders swept solver outputs as a terminal line chart.
func SweepChart(values []float64, caption string, width int) string {
	if len(values) == 0 {
		return ""
	}
	if width <= 0 {
		width = 64
	}

	return asciigraph.Plot(values,
		asciigraph.Height(12),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	)
}
