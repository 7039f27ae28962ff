package domain_util

import (
	"math"

	"github.com/chainswap/chainswap-backend/domain/domain_plugin/plugin_models"
)

// Curve transforms between normalized [0,1] knob positions and
// physical values. Nothing here returns an error: out-of-range inputs
// are clamped, never rejected, so a degraded map can still translate.

// logFloor keeps logarithmic ranges away from log(0).
const logFloor = 1e-6

func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func Clamp(v, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// DenormalizeValue maps a normalized value onto [min,max] along the
// given generic curve. Stepped parameters pass through unchanged; their
// real translation happens via step matching.
func DenormalizeValue(normalized, min, max float64, curve string) float64 {
	n := Clamp01(normalized)

	switch curve {
	case plugin_models.CurveLogarithmic:
		safeMin := min
		if safeMin < logFloor {
			safeMin = logFloor
		}
		safeMax := max
		if safeMax < safeMin {
			safeMax = safeMin
		}
		logMin := math.Log(safeMin)
		logMax := math.Log(safeMax)
		return Clamp(math.Exp(logMin+n*(logMax-logMin)), min, max)

	case plugin_models.CurveExponential:
		// Order-2 perceptual curve.
		return Clamp(min+(max-min)*n*n, min, max)

	case plugin_models.CurveStepped:
		return n

	default: // linear
		return Clamp(min+n*(max-min), min, max)
	}
}

// NormalizeValue is the inverse of DenormalizeValue.
func NormalizeValue(physical, min, max float64, curve string) float64 {
	switch curve {
	case plugin_models.CurveLogarithmic:
		safeMin := min
		if safeMin < logFloor {
			safeMin = logFloor
		}
		safeMax := max
		if safeMax < safeMin {
			safeMax = safeMin
		}
		v := physical
		if v < safeMin {
			v = safeMin
		}
		logMin := math.Log(safeMin)
		logMax := math.Log(safeMax)
		if logMax == logMin {
			return 0
		}
		return Clamp01((math.Log(v) - logMin) / (logMax - logMin))

	case plugin_models.CurveExponential:
		if max == min {
			return 0
		}
		ratio := (physical - min) / (max - min)
		if ratio < 0 {
			ratio = 0
		}
		return Clamp01(math.Sqrt(ratio))

	case plugin_models.CurveStepped:
		return Clamp01(physical)

	default: // linear
		if max == min {
			return 0
		}
		return Clamp01((physical - min) / (max - min))
	}
}

// DenormalizeWithSkew applies the exact host range convention: a skew
// exponent warps position-to-value over [start,end], optionally
// mirrored around the midpoint.
func DenormalizeWithSkew(normalized, start, end, skew float64, symmetric bool) float64 {
	n := Clamp01(normalized)

	if skew == 1.0 || skew <= 0 {
		return start + (end-start)*n
	}

	if !symmetric {
		return start + (end-start)*math.Pow(n, 1.0/skew)
	}

	// Symmetric skew: each half of the range is skewed independently
	// around the midpoint.
	mid := start + (end-start)*0.5
	if n < 0.5 {
		return start + (mid-start)*math.Pow(n*2.0, 1.0/skew)
	}
	return mid + (end-mid)*math.Pow((n-0.5)*2.0, 1.0/skew)
}

// NormalizeWithSkew is the inverse of DenormalizeWithSkew. The physical
// value is clamped to [start,end] before inversion.
func NormalizeWithSkew(value, start, end, skew float64, symmetric bool) float64 {
	v := Clamp(value, start, end)

	if end == start {
		return 0
	}

	if skew == 1.0 || skew <= 0 {
		return Clamp01((v - start) / (end - start))
	}

	if !symmetric {
		return Clamp01(math.Pow((v-start)/(end-start), skew))
	}

	mid := start + (end-start)*0.5
	if v < mid {
		if mid == start {
			return 0
		}
		return Clamp01(math.Pow((v-start)/(mid-start), skew) * 0.5)
	}
	if end == mid {
		return 0.5
	}
	return Clamp01(0.5 + math.Pow((v-mid)/(end-mid), skew)*0.5)
}
