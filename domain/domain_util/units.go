package domain_util

import "math"

// Physical units the converter knows how to translate between.
const (
	UnitQFactor          = "q_factor"
	UnitBandwidthOctaves = "bandwidth_octaves"
	UnitMilliseconds     = "ms"
	UnitSeconds          = "s"
)

// ConvertUnits translates a physical value between two unit systems.
// Unrecognized pairs pass the value through unchanged: a unit mismatch
// must degrade accuracy, never abort a translation.
func ConvertUnits(value float64, sourceUnit, targetUnit string) float64 {
	if sourceUnit == targetUnit {
		return value
	}

	switch {
	case sourceUnit == UnitQFactor && targetUnit == UnitBandwidthOctaves:
		return QFactorToBandwidth(value)
	case sourceUnit == UnitBandwidthOctaves && targetUnit == UnitQFactor:
		return BandwidthToQFactor(value)
	case sourceUnit == UnitMilliseconds && targetUnit == UnitSeconds:
		return value / 1000.0
	case sourceUnit == UnitSeconds && targetUnit == UnitMilliseconds:
		return value * 1000.0
	}

	return value
}

// QFactorToBandwidth converts a filter Q factor to bandwidth in
// octaves: bw = 2*asinh(1/(2Q)) / ln 2.
func QFactorToBandwidth(q float64) float64 {
	if q <= 0 {
		return 1.0
	}
	return 2.0 * math.Asinh(1.0/(2.0*q)) / math.Ln2
}

// BandwidthToQFactor is the inverse: Q = 1 / (2*sinh(bw*ln2/2)).
func BandwidthToQFactor(octaves float64) float64 {
	s := math.Sinh(octaves * math.Ln2 / 2.0)
	if s <= 0 {
		return 1.0
	}
	return 1.0 / (2.0 * s)
}
