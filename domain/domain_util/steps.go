package domain_util

import (
	"math"
	"strings"

	"github.com/chainswap/chainswap-backend/domain/domain_plugin/plugin_models"
)

// Alias groups for stepped parameter labels. Different vendors name
// the same filter shape differently; any two labels within one group
// are treated as the same semantic meaning.
var stepAliasGroups = [][]string{
	{"bell", "peak", "peaking", "parametric"},
	{"hpf", "high_pass", "highpass", "hp", "low_cut", "lowcut"},
	{"lpf", "low_pass", "lowpass", "lp", "high_cut", "highcut"},
	{"low_shelf", "lowshelf", "lshelf", "low_shelving", "shelf_low"},
	{"high_shelf", "highshelf", "hshelf", "high_shelving", "shelf_high"},
	{"notch", "band_stop", "bandstop", "band_reject", "bandreject"},
	{"bandpass", "band_pass", "bp"},
	{"tilt", "tilt_shelf", "tiltshelf"},
	{"allpass", "all_pass", "apf"},
}

// label -> canonical group tag, built once at init.
var stepAliasCanonical map[string]string

func init() {
	stepAliasCanonical = make(map[string]string)
	for _, group := range stepAliasGroups {
		canon := group[0]
		for _, alias := range group {
			stepAliasCanonical[alias] = canon
		}
	}
}

// TranslateStep maps a stepped source setting onto the target's step
// list. The nearest source step (by normalized distance, first-seen
// wins ties) provides the semantic label; the target is searched for an
// exact case-insensitive label match, then for an alias-group match.
// Returns ok=false when the meaning has no counterpart; callers must
// report the parameter as unmapped rather than substitute a default.
func TranslateStep(sourceNormalized float64, sourceSteps, targetSteps []plugin_models.ParameterStep) (float64, bool) {
	if len(sourceSteps) == 0 || len(targetSteps) == 0 {
		return 0, false
	}

	label := nearestStepLabel(sourceNormalized, sourceSteps)

	if v, ok := findStepByLabel(label, targetSteps); ok {
		return v, true
	}

	canon, ok := stepAliasCanonical[label]
	if !ok {
		return 0, false
	}
	for _, step := range targetSteps {
		if stepAliasCanonical[normalizeStepLabel(step.PhysicalValue)] == canon {
			return step.NormalizedValue, true
		}
	}

	return 0, false
}

func nearestStepLabel(normalized float64, steps []plugin_models.ParameterStep) string {
	best := 0
	bestDist := math.Abs(steps[0].NormalizedValue - normalized)
	for i := 1; i < len(steps); i++ {
		d := math.Abs(steps[i].NormalizedValue - normalized)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return normalizeStepLabel(steps[best].PhysicalValue)
}

func findStepByLabel(label string, steps []plugin_models.ParameterStep) (float64, bool) {
	for _, step := range steps {
		if normalizeStepLabel(step.PhysicalValue) == label {
			return step.NormalizedValue, true
		}
	}
	return 0, false
}

func normalizeStepLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
