package domain

const (
	CollectionPluginParameterMaps = "plugin_parameter_maps"
)
const (
	CollectionPluginParameterSemantics = "plugin_parameter_semantics"
)
const (
	CollectionPluginOwnership = "plugin_ownership"
)
