package plugin_models

import "strconv"

// DefaultSemantics is the canonical vocabulary shipped with the
// service, mirroring the semantic ids the desktop scanner emits. Loaded
// into the store by the seed command; purely documentation/seed data
// for enrichment clients.
func DefaultSemantics() []*ParameterSemantic {
	semantics := []*ParameterSemantic{
		{SemanticID: "comp_threshold", DisplayName: "Threshold", Category: CategoryCompressor, PhysicalUnit: "db", TypicalMin: -60, TypicalMax: 0, TypicalDef: -20, MappingCurve: CurveLinear, Priority: 1},
		{SemanticID: "comp_ratio", DisplayName: "Ratio", Category: CategoryCompressor, PhysicalUnit: "ratio", TypicalMin: 1, TypicalMax: 20, TypicalDef: 4, MappingCurve: CurveLogarithmic, Priority: 1},
		{SemanticID: "comp_attack", DisplayName: "Attack", Category: CategoryCompressor, PhysicalUnit: "ms", TypicalMin: 0.1, TypicalMax: 100, TypicalDef: 10, MappingCurve: CurveLogarithmic, Priority: 1},
		{SemanticID: "comp_release", DisplayName: "Release", Category: CategoryCompressor, PhysicalUnit: "ms", TypicalMin: 10, TypicalMax: 1000, TypicalDef: 100, MappingCurve: CurveLogarithmic, Priority: 1},
		{SemanticID: "comp_knee", DisplayName: "Knee", Category: CategoryCompressor, PhysicalUnit: "db", TypicalMin: 0, TypicalMax: 24, TypicalDef: 6, MappingCurve: CurveLinear, Priority: 2},
		{SemanticID: "comp_makeup", DisplayName: "Makeup Gain", Category: CategoryCompressor, PhysicalUnit: "db", TypicalMin: 0, TypicalMax: 24, TypicalDef: 0, MappingCurve: CurveLinear, Priority: 2},
		{SemanticID: "comp_mix", DisplayName: "Mix", Category: CategoryCompressor, PhysicalUnit: "percent", TypicalMin: 0, TypicalMax: 100, TypicalDef: 100, MappingCurve: CurveLinear, Priority: 3},
		{SemanticID: "input_gain", DisplayName: "Input Gain", Category: CategoryGeneral, PhysicalUnit: "db", TypicalMin: -24, TypicalMax: 24, TypicalDef: 0, MappingCurve: CurveLinear, Priority: 3},
		{SemanticID: "output_gain", DisplayName: "Output Gain", Category: CategoryGeneral, PhysicalUnit: "db", TypicalMin: -24, TypicalMax: 24, TypicalDef: 0, MappingCurve: CurveLinear, Priority: 3},
		{SemanticID: "dry_wet_mix", DisplayName: "Dry/Wet", Category: CategoryGeneral, PhysicalUnit: "percent", TypicalMin: 0, TypicalMax: 100, TypicalDef: 100, MappingCurve: CurveLinear, Priority: 3},
	}

	// Band-indexed EQ semantics for the band counts seen in practice.
	for band := 1; band <= 8; band++ {
		semantics = append(semantics,
			&ParameterSemantic{SemanticID: eqBandSemantic(band, "freq"), DisplayName: bandDisplay(band, "Frequency"), Category: CategoryEq, PhysicalUnit: "hz", TypicalMin: 20, TypicalMax: 20000, TypicalDef: 1000, MappingCurve: CurveLogarithmic, Priority: 1},
			&ParameterSemantic{SemanticID: eqBandSemantic(band, "gain"), DisplayName: bandDisplay(band, "Gain"), Category: CategoryEq, PhysicalUnit: "db", TypicalMin: -18, TypicalMax: 18, TypicalDef: 0, MappingCurve: CurveLinear, Priority: 1},
			&ParameterSemantic{SemanticID: eqBandSemantic(band, "q"), DisplayName: bandDisplay(band, "Q"), Category: CategoryEq, PhysicalUnit: "q_factor", TypicalMin: 0.1, TypicalMax: 30, TypicalDef: 1, MappingCurve: CurveLogarithmic, Priority: 2},
			&ParameterSemantic{SemanticID: eqBandSemantic(band, "type"), DisplayName: bandDisplay(band, "Type"), Category: CategoryEq, PhysicalUnit: "stepped", MappingCurve: CurveStepped, Priority: 2},
		)
	}

	return semantics
}

func eqBandSemantic(band int, kind string) string {
	return "eq_band_" + strconv.Itoa(band) + "_" + kind
}

func bandDisplay(band int, kind string) string {
	return "Band " + strconv.Itoa(band) + " " + kind
}
