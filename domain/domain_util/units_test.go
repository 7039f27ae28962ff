package domain_util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertUnits_QFactorToBandwidth(t *testing.T) {
	bw := ConvertUnits(0.707, UnitQFactor, UnitBandwidthOctaves)
	assert.InDelta(t, 1.90, bw, 0.01)

	back := ConvertUnits(bw, UnitBandwidthOctaves, UnitQFactor)
	assert.InDelta(t, 0.707, back, 1e-9)
}

func TestConvertUnits_Milliseconds(t *testing.T) {
	assert.Equal(t, 0.25, ConvertUnits(250, UnitMilliseconds, UnitSeconds))
	assert.Equal(t, 250.0, ConvertUnits(0.25, UnitSeconds, UnitMilliseconds))
}

func TestConvertUnits_IdentityOnMatchingUnits(t *testing.T) {
	assert.Equal(t, 42.0, ConvertUnits(42, "hz", "hz"))
}

func TestConvertUnits_UnknownPairPassesThrough(t *testing.T) {
	// Best effort: an unknown pair must not abort translation.
	assert.Equal(t, 7.5, ConvertUnits(7.5, "db", "percent"))
}

func TestQFactorToBandwidth_GuardsNonPositiveQ(t *testing.T) {
	assert.Equal(t, 1.0, QFactorToBandwidth(0))
	assert.Equal(t, 1.0, QFactorToBandwidth(-3))
}

func TestBandwidthToQFactor_GuardsNonPositiveBandwidth(t *testing.T) {
	assert.Equal(t, 1.0, BandwidthToQFactor(0))
	assert.Equal(t, 1.0, BandwidthToQFactor(-1))
}
