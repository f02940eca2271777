package forecast

// Trend is a least-squares line fitted over a balance series indexed
// 0..N-1, used to annotate charts with the overall direction.
type Trend struct {
	Slope     float64 // currency units per day
	Intercept float64
}

// FitTrend computes the ordinary-least-squares best fit line over the
// series. Fewer than two points yield a flat line through the data.
func FitTrend(values []float64) Trend {
	n := float64(len(values))
	if len(values) == 0 {
		return Trend{}
	}
	if len(values) == 1 {
		return Trend{Intercept: values[0]}
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, v := range values {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return Trend{Intercept: sumY / n}
	}

	slope := (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n
	return Trend{Slope: slope, Intercept: intercept}
}

// At evaluates the fitted line at index i.
func (t Trend) At(i int) float64 {
	return t.Intercept + t.Slope*float64(i)
}

// Line evaluates the fitted line at each of n indices.
func (t Trend) Line(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}
