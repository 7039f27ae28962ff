package usecase_plugin

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/chainswap/chainswap-backend/domain/domain_plugin/plugin_interface"
	"github.com/chainswap/chainswap-backend/domain/domain_plugin/plugin_models"
	"github.com/chainswap/chainswap-backend/domain/domain_util"
)

// eq_band_<N>_<kind>, e.g. "eq_band_3_freq".
var eqBandSemanticPattern = regexp.MustCompile(`^eq_band_(\d+)_([a-z_]+)$`)

type translateUsecase struct {
	repoMaps plugin_interface.ParameterMapRepository
	timeout  time.Duration
}

func NewTranslateUsecase(
	repoMaps plugin_interface.ParameterMapRepository,
	timeout time.Duration,
) plugin_interface.TranslationUsecase {
	return &translateUsecase{
		repoMaps: repoMaps,
		timeout:  timeout,
	}
}

// TranslateParameters converts each source control setting into the
// equivalent setting on the target plugin. Parameters that cannot be
// carried over are reported in UnmappedParams; a missing map on either
// side degrades the whole call to confidence 0 instead of failing it.
func (u *translateUsecase) TranslateParameters(
	ctx context.Context,
	sourcePluginID, targetPluginID string,
	sourceParams []plugin_models.SourceParam,
) (*plugin_models.TranslationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	sourceMap, err := u.repoMaps.GetByPluginID(ctx, sourcePluginID)
	if err != nil {
		return nil, fmt.Errorf("source parameter map load failed: %w", err)
	}
	if sourceMap == nil {
		return allUnmapped(sourceParams, plugin_models.ReasonSourceMapMissing), nil
	}

	targetMap, err := u.repoMaps.GetByPluginID(ctx, targetPluginID)
	if err != nil {
		return nil, fmt.Errorf("target parameter map load failed: %w", err)
	}
	if targetMap == nil {
		return allUnmapped(sourceParams, plugin_models.ReasonTargetMapMissing), nil
	}

	result := &plugin_models.TranslationResult{
		TargetParams:   make([]plugin_models.TranslatedParam, 0, len(sourceParams)),
		UnmappedParams: make([]string, 0),
	}

	for _, sp := range sourceParams {
		src := sourceMap.FindByParamID(sp.ParamID)
		if src == nil {
			result.UnmappedParams = append(result.UnmappedParams, sp.ParamID)
			continue
		}

		tgt := findTargetDescriptor(src.Semantic, targetMap)
		if tgt == nil {
			result.UnmappedParams = append(result.UnmappedParams, sp.ParamID)
			continue
		}

		value, ok := translateValue(sp.NormalizedValue, src, tgt)
		if !ok {
			result.UnmappedParams = append(result.UnmappedParams, sp.ParamID)
			continue
		}

		result.TargetParams = append(result.TargetParams, plugin_models.TranslatedParam{
			ParamID:    tgt.JuceParamID,
			ParamIndex: tgt.JuceParamIndex,
			Value:      value,
		})
	}

	result.Confidence = combinedConfidence(
		len(result.TargetParams), len(sourceParams),
		sourceMap.Confidence, targetMap.Confidence,
	)
	return result, nil
}

// findTargetDescriptor locates the target-side counterpart of a source
// semantic. EQ band semantics are gated on the target's band count
// first: a band beyond what the target physically has is never
// translated, not even when a matching semantic tag happens to exist.
// Excess source bands are dropped, never aliased to a different band.
func findTargetDescriptor(semantic string, targetMap *plugin_models.ParameterMap) *plugin_models.ParameterDescriptor {
	if semantic == "" || semantic == "unknown" {
		return nil
	}
	if m := eqBandSemanticPattern.FindStringSubmatch(semantic); m != nil {
		if bands := targetMap.EqBandCount(); bands > 0 {
			n, err := strconv.Atoi(m[1])
			if err != nil || n > bands {
				return nil
			}
		}
	}
	return targetMap.FindBySemantic(semantic)
}

// translateValue performs the per-parameter numeric conversion.
func translateValue(normalized float64, src, tgt *plugin_models.ParameterDescriptor) (float64, bool) {
	srcStepped := src.MappingCurve == plugin_models.CurveStepped
	tgtStepped := tgt.MappingCurve == plugin_models.CurveStepped

	switch {
	case srcStepped && tgtStepped:
		return domain_util.TranslateStep(normalized, src.Steps, tgt.Steps)

	case srcStepped != tgtStepped:
		// No meaningful conversion between discrete and continuous.
		return 0, false
	}

	// Continuous path: denormalize, convert units, clamp, renormalize.
	var physical float64
	if useSkewPath(src) {
		physical = domain_util.DenormalizeWithSkew(normalized, src.RangeStart, src.RangeEnd, src.SkewFactor, src.SymmetricSkew)
	} else {
		physical = domain_util.DenormalizeValue(normalized, src.MinValue, src.MaxValue, src.MappingCurve)
	}

	srcUnit, tgtUnit := src.PhysicalUnit, tgt.PhysicalUnit
	if src.QRepresentation != "" && tgt.QRepresentation != "" {
		// QRepresentation disambiguates Q-like controls more precisely
		// than the generic unit tag.
		srcUnit, tgtUnit = src.QRepresentation, tgt.QRepresentation
	}
	physical = domain_util.ConvertUnits(physical, srcUnit, tgtUnit)

	if useSkewPath(tgt) {
		physical = domain_util.Clamp(physical, tgt.RangeStart, tgt.RangeEnd)
		return domain_util.NormalizeWithSkew(physical, tgt.RangeStart, tgt.RangeEnd, tgt.SkewFactor, tgt.SymmetricSkew), true
	}
	physical = domain_util.Clamp(physical, tgt.MinValue, tgt.MaxValue)
	return domain_util.NormalizeValue(physical, tgt.MinValue, tgt.MaxValue, tgt.MappingCurve), true
}

func useSkewPath(d *plugin_models.ParameterDescriptor) bool {
	return d.HasNormalisableRange && d.SkewFactor > 0
}

// combinedConfidence discounts translation coverage by the lower of the
// two maps' own enrichment quality. Worst case wins, not the average.
func combinedConfidence(translated, total, sourceConf, targetConf int) int {
	if total == 0 {
		return 0
	}
	minConf := sourceConf
	if targetConf < minConf {
		minConf = targetConf
	}
	ratio := float64(translated) / float64(total)
	return int(math.Round(ratio * float64(minConf)))
}

func allUnmapped(sourceParams []plugin_models.SourceParam, reason string) *plugin_models.TranslationResult {
	unmapped := make([]string, 0, len(sourceParams))
	for _, sp := range sourceParams {
		unmapped = append(unmapped, sp.ParamID)
	}
	return &plugin_models.TranslationResult{
		TargetParams:   []plugin_models.TranslatedParam{},
		Confidence:     0,
		UnmappedParams: unmapped,
		Reason:         reason,
	}
}
