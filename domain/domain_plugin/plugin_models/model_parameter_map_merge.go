package plugin_models

// MergeParameterMap folds an incoming upsert into an existing map.
// Rule: incoming wins unless the incoming field is the zero value, in
// which case the existing value is preserved. Parameters and hints are
// replaced wholesale when the incoming map carries any; a scanner
// always reports the complete descriptor list, so per-descriptor
// merging would only resurrect deleted controls.
func MergeParameterMap(existing, incoming *ParameterMap) *ParameterMap {
	merged := *existing

	if incoming.PluginName != "" {
		merged.PluginName = incoming.PluginName
	}
	if incoming.Manufacturer != "" {
		merged.Manufacturer = incoming.Manufacturer
	}
	if incoming.Category != "" {
		merged.Category = incoming.Category
	}
	if len(incoming.Parameters) > 0 {
		merged.Parameters = incoming.Parameters
	}
	if incoming.Eq != nil {
		merged.Eq = incoming.Eq
	}
	if incoming.Compressor != nil {
		merged.Compressor = incoming.Compressor
	}
	if incoming.Confidence > 0 {
		merged.Confidence = incoming.Confidence
	}
	if incoming.MatchedCount > 0 {
		merged.MatchedCount = incoming.MatchedCount
	}
	if incoming.TotalCount > 0 {
		merged.TotalCount = incoming.TotalCount
	}
	if incoming.Source != "" {
		merged.Source = incoming.Source
	}

	return &merged
}
