package plotting

import (
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
)

// mirroredXLimits derives the display range for a spatial profile from the
// axis lower bound: (z[0], -z[0]). The grids produced upstream start at a
// negative coordinate and are intended to display symmetrically about zero
// regardless of their actual maximum.
func mirroredXLimits(z []float64) (float64, float64) {
	return z[0], -z[0]
}

func gridStyle(on bool) chart.Style {
	if !on {
		return chart.Style{}
	}
	return chart.Style{
		StrokeColor: chart.ColorAlternateGray.WithAlpha(64),
		StrokeWidth: 1.0,
	}
}

// niceTicks generates up to n tick marks between [min, max] using preferred
// step sizes (1, 2, 2.5, 5, 10 scaled by power of ten). Used where a fixed
// y-range would otherwise leave go-chart with awkward auto ticks.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		if score := math.Abs(count - float64(n)); score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	var ticks []chart.Tick
	for v := start; v <= end+bestStep/2; v += bestStep {
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}
