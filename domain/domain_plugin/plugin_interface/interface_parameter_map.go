package plugin_interface

import (
	"context"

	"github.com/chainswap/chainswap-backend/domain/domain_plugin/plugin_models"
)

// ParameterMapRepository stores one parameter map per plugin.
type ParameterMapRepository interface {
	GetByPluginID(ctx context.Context, pluginID string) (*plugin_models.ParameterMap, error)
	GetByCategory(ctx context.Context, category string) ([]*plugin_models.ParameterMap, error)
	// Upsert writes the map keyed by its PluginID and returns the map
	// identifier. Concurrent upserts for the same plugin are
	// last-writer-wins.
	Upsert(ctx context.Context, m *plugin_models.ParameterMap) (string, error)
	DeleteByPluginID(ctx context.Context, pluginID string) error
	EnsureIndexes(ctx context.Context) error
}

// ParameterSemanticRepository stores the canonical vocabulary used to
// seed enrichment.
type ParameterSemanticRepository interface {
	BulkUpsert(ctx context.Context, semantics []*plugin_models.ParameterSemantic) (int, error)
	GetByCategory(ctx context.Context, category string) ([]*plugin_models.ParameterSemantic, error)
	EnsureIndexes(ctx context.Context) error
}
