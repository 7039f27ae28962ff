package plugin_interface

import (
	"context"

	"github.com/chainswap/chainswap-backend/domain/domain_plugin/plugin_models"
)

// ParameterMapUsecase is the CRUD surface over stored parameter maps.
type ParameterMapUsecase interface {
	GetParameterMap(ctx context.Context, pluginID string) (*plugin_models.ParameterMap, error)
	UpsertParameterMap(ctx context.Context, incoming *plugin_models.ParameterMap) (string, error)
	DeleteParameterMap(ctx context.Context, pluginID string) error
	GetSemantics(ctx context.Context, category string) ([]*plugin_models.ParameterSemantic, error)
}

// TranslationUsecase converts control settings between two plugins of
// the same category.
type TranslationUsecase interface {
	TranslateParameters(ctx context.Context, sourcePluginID, targetPluginID string, sourceParams []plugin_models.SourceParam) (*plugin_models.TranslationResult, error)
}

// SwapUsecase ranks owned same-category plugins as swap targets.
type SwapUsecase interface {
	FindCompatibleSwaps(ctx context.Context, pluginID, userID string) ([]plugin_models.SwapCandidate, error)
	// GetRandomSwap picks deterministically by seed so that repeated
	// calls with the same seed return the same candidate. Returns nil
	// when no candidate exists.
	GetRandomSwap(ctx context.Context, pluginID, userID string, seed int64) (*plugin_models.SwapCandidate, error)
}
