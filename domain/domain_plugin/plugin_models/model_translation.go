package plugin_models

// Error reasons reported when a whole translation cannot run. Missing
// maps are partial results, not failures: the caller still receives
// every input back as unmapped.
const (
	ReasonSourceMapMissing = "source_map_missing"
	ReasonTargetMapMissing = "target_map_missing"
)

// SourceParam is one control setting to translate, addressed in the
// source plugin's own parameter space.
type SourceParam struct {
	ParamID         string  `bson:"param_id" json:"paramId" binding:"required"`
	ParamIndex      int     `bson:"param_index" json:"paramIndex"`
	NormalizedValue float64 `bson:"normalized_value" json:"normalizedValue" binding:"min=0,max=1"`
}

// TranslatedParam is the equivalent setting on the target plugin.
type TranslatedParam struct {
	ParamID    string  `bson:"param_id" json:"paramId"`
	ParamIndex int     `bson:"param_index" json:"paramIndex"`
	Value      float64 `bson:"value" json:"value"`
}

// TranslationResult is the outcome of translating one parameter list
// between two plugins of the same category.
type TranslationResult struct {
	TargetParams   []TranslatedParam `json:"targetParams"`
	Confidence     int               `json:"confidence"` // 0-100
	UnmappedParams []string          `json:"unmappedParams"`
	Reason         string            `json:"reason,omitempty"`
}

// SwapCandidate is one ranked entry returned by the compatible-swap
// finder.
type SwapCandidate struct {
	PluginID       string `json:"pluginId"`
	PluginName     string `json:"pluginName"`
	Category       string `json:"category"`
	Confidence     int    `json:"confidence"` // 0-100 estimated translation quality
	ParameterCount int    `json:"parameterCount"`
	EqBandCount    int    `json:"eqBandCount,omitempty"`
}
