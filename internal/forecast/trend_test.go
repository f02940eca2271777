package forecast

import (
	"math"
	"testing"
)

func TestFitTrend_ExactLine(t *testing.T) {
	trend := FitTrend([]float64{2, 4, 6, 8})

	if math.Abs(trend.Slope-2) > 1e-9 {
		t.Errorf("slope = %v, want 2", trend.Slope)
	}
	if math.Abs(trend.Intercept-2) > 1e-9 {
		t.Errorf("intercept = %v, want 2", trend.Intercept)
	}
	for i, want := range []float64{2, 4, 6, 8} {
		if got := trend.At(i); math.Abs(got-want) > 1e-9 {
			t.Errorf("At(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestFitTrend_FlatSeries(t *testing.T) {
	trend := FitTrend([]float64{5, 5, 5, 5, 5})

	if math.Abs(trend.Slope) > 1e-9 {
		t.Errorf("slope = %v, want 0", trend.Slope)
	}
	if math.Abs(trend.Intercept-5) > 1e-9 {
		t.Errorf("intercept = %v, want 5", trend.Intercept)
	}
}

func TestFitTrend_Degenerate(t *testing.T) {
	if got := FitTrend(nil); got.Slope != 0 || got.Intercept != 0 {
		t.Errorf("empty series = %+v, want zero trend", got)
	}
	if got := FitTrend([]float64{7}); got.Slope != 0 || got.Intercept != 7 {
		t.Errorf("single point = %+v, want flat line through it", got)
	}
}

func TestFitTrend_NoisySlopeSign(t *testing.T) {
	// A declining balance series should fit a negative slope.
	trend := FitTrend([]float64{1000, 990, 995, 970, 960, 965, 940})
	if trend.Slope >= 0 {
		t.Errorf("slope = %v, want negative for declining series", trend.Slope)
	}
}

func TestTrendLine_Length(t *testing.T) {
	line := FitTrend([]float64{1, 2, 3}).Line(3)
	if len(line) != 3 {
		t.Fatalf("line length = %d, want 3", len(line))
	}
}
