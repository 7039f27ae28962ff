package usecase_plugin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chainswap/chainswap-backend/domain/domain_plugin/plugin_interface"
	"github.com/chainswap/chainswap-backend/domain/domain_plugin/plugin_models"
)

type parameterMapUsecase struct {
	repoMaps      plugin_interface.ParameterMapRepository
	repoSemantics plugin_interface.ParameterSemanticRepository
	timeout       time.Duration
}

func NewParameterMapUsecase(
	repoMaps plugin_interface.ParameterMapRepository,
	repoSemantics plugin_interface.ParameterSemanticRepository,
	timeout time.Duration,
) plugin_interface.ParameterMapUsecase {
	return &parameterMapUsecase{
		repoMaps:      repoMaps,
		repoSemantics: repoSemantics,
		timeout:       timeout,
	}
}

func (u *parameterMapUsecase) GetParameterMap(ctx context.Context, pluginID string) (*plugin_models.ParameterMap, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	return u.repoMaps.GetByPluginID(ctx, pluginID)
}

// UpsertParameterMap stores or refreshes the map for a plugin. When a
// map already exists the incoming fields are merged over it with an
// explicit incoming-wins-unless-empty rule, so a partial enrichment
// update never wipes previously known fields.
func (u *parameterMapUsecase) UpsertParameterMap(ctx context.Context, incoming *plugin_models.ParameterMap) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	if incoming == nil || incoming.PluginID == "" {
		return "", errors.New("parameter map plugin id is required")
	}
	if err := validateDescriptors(incoming.Parameters); err != nil {
		return "", err
	}
	if incoming.Source == "" {
		incoming.Source = "juce-scanned"
	}

	existing, err := u.repoMaps.GetByPluginID(ctx, incoming.PluginID)
	if err != nil {
		return "", err
	}

	toStore := incoming
	if existing != nil {
		toStore = plugin_models.MergeParameterMap(existing, incoming)
	}

	return u.repoMaps.Upsert(ctx, toStore)
}

func (u *parameterMapUsecase) DeleteParameterMap(ctx context.Context, pluginID string) error {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	return u.repoMaps.DeleteByPluginID(ctx, pluginID)
}

func (u *parameterMapUsecase) GetSemantics(ctx context.Context, category string) ([]*plugin_models.ParameterSemantic, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	return u.repoSemantics.GetByCategory(ctx, category)
}

// validateDescriptors enforces the map invariants: semantics are unique
// within the list and stepped parameters carry their step lists.
func validateDescriptors(params []plugin_models.ParameterDescriptor) error {
	seen := make(map[string]struct{}, len(params))
	for i := range params {
		p := &params[i]
		if p.JuceParamID == "" {
			return fmt.Errorf("parameter %d: juce param id is required", i)
		}
		if p.Semantic != "" && p.Semantic != "unknown" {
			if _, dup := seen[p.Semantic]; dup {
				return fmt.Errorf("duplicate semantic %q in parameter list", p.Semantic)
			}
			seen[p.Semantic] = struct{}{}
		}
		if p.MappingCurve == plugin_models.CurveStepped && len(p.Steps) == 0 {
			return fmt.Errorf("stepped parameter %q has no steps", p.JuceParamID)
		}
	}
	return nil
}
