package domain_util

import (
	"testing"

	"github.com/chainswap/chainswap-backend/domain/domain_plugin/plugin_models"
	"github.com/stretchr/testify/assert"
)

func TestDenormalizeValue_LogarithmicMidpoint(t *testing.T) {
	// Geometric mean of the audible range.
	v := DenormalizeValue(0.5, 20, 20000, plugin_models.CurveLogarithmic)
	assert.InDelta(t, 632.46, v, 0.01)
}

func TestCurves_RoundTrip(t *testing.T) {
	curves := []struct {
		name     string
		curve    string
		min, max float64
		delta    float64
	}{
		{"linear gain", plugin_models.CurveLinear, -18, 18, 1e-9},
		{"logarithmic frequency", plugin_models.CurveLogarithmic, 20, 20000, 1e-6},
		{"logarithmic with zero min", plugin_models.CurveLogarithmic, 0, 100, 1e-6},
		{"exponential", plugin_models.CurveExponential, 0, 10, 1e-9},
	}

	grid := []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1}

	for _, tc := range curves {
		t.Run(tc.name, func(t *testing.T) {
			for _, n := range grid {
				physical := DenormalizeValue(n, tc.min, tc.max, tc.curve)
				back := NormalizeValue(physical, tc.min, tc.max, tc.curve)
				assert.InDelta(t, n, back, tc.delta, "n=%v", n)
			}
		})
	}
}

func TestCurves_ClampOutOfRangeInputs(t *testing.T) {
	assert.Equal(t, 18.0, DenormalizeValue(1.5, -18, 18, plugin_models.CurveLinear))
	assert.Equal(t, -18.0, DenormalizeValue(-0.2, -18, 18, plugin_models.CurveLinear))
	assert.Equal(t, 1.0, NormalizeValue(50000, 20, 20000, plugin_models.CurveLogarithmic))
	assert.Equal(t, 0.0, NormalizeValue(5, 20, 20000, plugin_models.CurveLogarithmic))
	assert.Equal(t, 0.0, NormalizeValue(-3, 0, 10, plugin_models.CurveExponential))
}

func TestDenormalizeWithSkew_SkewOfOneIsLinear(t *testing.T) {
	for _, n := range []float64{0, 0.2, 0.5, 0.8, 1} {
		assert.InDelta(t, 10*n, DenormalizeWithSkew(n, 0, 10, 1.0, false), 1e-12)
	}
}

func TestSkew_RoundTrip(t *testing.T) {
	cases := []struct {
		name       string
		start, end float64
		skew       float64
		symmetric  bool
	}{
		{"frequency-like skew", 20, 20000, 0.199, false},
		{"gentle skew", 0, 10, 0.5, false},
		{"inverse skew", 0, 10, 2.0, false},
		{"symmetric skew", -18, 18, 0.5, true},
		{"symmetric inverse skew", 0, 100, 3.0, true},
	}

	grid := []float64{0, 0.1, 0.25, 0.49, 0.5, 0.51, 0.75, 0.9, 1}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, n := range grid {
				physical := DenormalizeWithSkew(n, tc.start, tc.end, tc.skew, tc.symmetric)
				assert.GreaterOrEqual(t, physical, tc.start)
				assert.LessOrEqual(t, physical, tc.end)

				back := NormalizeWithSkew(physical, tc.start, tc.end, tc.skew, tc.symmetric)
				assert.InDelta(t, n, back, 1e-9, "n=%v", n)
			}
		})
	}
}

func TestSymmetricSkew_MidpointIsFixed(t *testing.T) {
	// n=0.5 always lands on the range midpoint regardless of skew.
	assert.InDelta(t, 5.0, DenormalizeWithSkew(0.5, 0, 10, 0.3, true), 1e-12)
	assert.InDelta(t, 0.0, DenormalizeWithSkew(0.5, -18, 18, 2.5, true), 1e-12)
}

func TestNormalizeWithSkew_ClampsPhysicalFirst(t *testing.T) {
	assert.Equal(t, 1.0, NormalizeWithSkew(30000, 20, 20000, 0.199, false))
	assert.Equal(t, 0.0, NormalizeWithSkew(-5, 20, 20000, 0.199, false))
}
