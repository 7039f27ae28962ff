package plugin_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mapping curve kinds understood by the translation engine.
const (
	CurveLinear      = "linear"
	CurveLogarithmic = "logarithmic"
	CurveExponential = "exponential"
	CurveStepped     = "stepped"
)

// Plugin categories that currently carry category-specific hints.
const (
	CategoryEq         = "eq"
	CategoryCompressor = "compressor"
	CategoryGeneral    = "general"
)

// ParameterStep is one discrete position of a stepped parameter. The
// physical value is a semantic label ("bell", "hpf"), not display text.
type ParameterStep struct {
	NormalizedValue float64 `bson:"normalized_value" json:"normalizedValue"`
	PhysicalValue   string  `bson:"physical_value" json:"physicalValue"`
}

// CurveSample is one empirical calibration point captured by the
// scanner. Carried for diagnostics; the translation algorithm does not
// consult it.
type CurveSample struct {
	Normalized float64 `bson:"normalized" json:"normalized"`
	Physical   float64 `bson:"physical" json:"physical"`
}

// ParameterDescriptor describes a single control on a plugin.
type ParameterDescriptor struct {
	JuceParamID    string `bson:"juce_param_id" json:"juceParamId"`       // 宿主寻址用的参数标识
	JuceParamIndex int    `bson:"juce_param_index" json:"juceParamIndex"` // AudioProcessor参数序号
	Semantic       string `bson:"semantic" json:"semantic"`               // 跨插件语义标签，map内唯一
	PhysicalUnit   string `bson:"physical_unit" json:"physicalUnit"`      // "hz" "db" "ms" "q_factor" ...
	MappingCurve   string `bson:"mapping_curve" json:"mappingCurve"`

	MinValue     float64 `bson:"min_value" json:"minValue"`
	MaxValue     float64 `bson:"max_value" json:"maxValue"`
	DefaultValue float64 `bson:"default_value" json:"defaultValue"`

	Steps []ParameterStep `bson:"steps,omitempty" json:"steps,omitempty"`

	// Exact host range, present when the scanner could read a
	// NormalisableRange off the parameter. Takes priority over the
	// generic curve when HasNormalisableRange is set and SkewFactor > 0.
	HasNormalisableRange bool          `bson:"has_normalisable_range" json:"hasNormalisableRange"`
	RangeStart           float64       `bson:"range_start,omitempty" json:"rangeStart,omitempty"`
	RangeEnd             float64       `bson:"range_end,omitempty" json:"rangeEnd,omitempty"`
	SkewFactor           float64       `bson:"skew_factor,omitempty" json:"skewFactor,omitempty"`
	SymmetricSkew        bool          `bson:"symmetric_skew,omitempty" json:"symmetricSkew,omitempty"`
	Interval             float64       `bson:"interval,omitempty" json:"interval,omitempty"`
	CurveSamples         []CurveSample `bson:"curve_samples,omitempty" json:"curveSamples,omitempty"`

	// Disambiguates Q-like parameters beyond PhysicalUnit:
	// "q_factor" or "bandwidth_octaves".
	QRepresentation string `bson:"q_representation,omitempty" json:"qRepresentation,omitempty"`

	// Scanner provenance.
	NumSteps int    `bson:"num_steps,omitempty" json:"numSteps,omitempty"` // 0 = continuous
	Label    string `bson:"label,omitempty" json:"label,omitempty"`        // unit label reported by the host
	Matched  bool   `bson:"matched" json:"matched"`                        // semantic matching succeeded
}

// EqHints carries EQ-specific map metadata.
type EqHints struct {
	BandCount            int    `bson:"band_count" json:"bandCount"`
	BandParameterPattern string `bson:"band_parameter_pattern,omitempty" json:"bandParameterPattern,omitempty"`
}

// CompressorHints carries compressor-specific map metadata.
type CompressorHints struct {
	HasAutoMakeup  bool `bson:"has_auto_makeup" json:"hasAutoMakeup"`
	HasParallelMix bool `bson:"has_parallel_mix" json:"hasParallelMix"`
	HasLookahead   bool `bson:"has_lookahead" json:"hasLookahead"`
}

// ParameterMap is the full parameter space of one plugin. At most one
// map exists per plugin (upsert keyed by PluginID).
type ParameterMap struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`

	PluginID     string `bson:"plugin_id" json:"pluginId"`
	PluginName   string `bson:"plugin_name" json:"pluginName"`
	Manufacturer string `bson:"manufacturer,omitempty" json:"manufacturer,omitempty"`
	Category     string `bson:"category" json:"category"` // 翻译只发生在同一category内

	Parameters []ParameterDescriptor `bson:"parameters" json:"parameters"`

	// Only the hint struct matching Category is populated.
	Eq         *EqHints         `bson:"eq,omitempty" json:"eq,omitempty"`
	Compressor *CompressorHints `bson:"compressor,omitempty" json:"compressor,omitempty"`

	Confidence   int    `bson:"confidence" json:"confidence"` // 0-100, enrichment quality
	MatchedCount int    `bson:"matched_count" json:"matchedCount"`
	TotalCount   int    `bson:"total_count" json:"totalCount"`
	Source       string `bson:"source" json:"source"` // e.g. "juce-scanned"
}

// EqBandCount returns the EQ band count hint, 0 when absent.
func (m *ParameterMap) EqBandCount() int {
	if m.Eq == nil {
		return 0
	}
	return m.Eq.BandCount
}

// FindByParamID returns the descriptor addressed by the host parameter
// id, or nil.
func (m *ParameterMap) FindByParamID(paramID string) *ParameterDescriptor {
	for i := range m.Parameters {
		if m.Parameters[i].JuceParamID == paramID {
			return &m.Parameters[i]
		}
	}
	return nil
}

// FindBySemantic returns the descriptor carrying the given semantic
// tag, or nil. Semantics are unique within a map.
func (m *ParameterMap) FindBySemantic(semantic string) *ParameterDescriptor {
	for i := range m.Parameters {
		if m.Parameters[i].Semantic == semantic {
			return &m.Parameters[i]
		}
	}
	return nil
}

// Semantics returns the set of matched semantic tags in the map.
// "unknown" entries are excluded: they carry no cross-plugin meaning.
func (m *ParameterMap) Semantics() map[string]struct{} {
	set := make(map[string]struct{}, len(m.Parameters))
	for i := range m.Parameters {
		s := m.Parameters[i].Semantic
		if s == "" || s == "unknown" {
			continue
		}
		set[s] = struct{}{}
	}
	return set
}
