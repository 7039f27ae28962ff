package usecase_plugin

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/chainswap/chainswap-backend/domain/domain_plugin/plugin_interface"
	"github.com/chainswap/chainswap-backend/domain/domain_plugin/plugin_models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type swapUsecase struct {
	repoMaps      plugin_interface.ParameterMapRepository
	repoOwnership plugin_interface.OwnershipRepository
	timeout       time.Duration
	collator      *collate.Collator
}

func NewSwapUsecase(
	repoMaps plugin_interface.ParameterMapRepository,
	repoOwnership plugin_interface.OwnershipRepository,
	timeout time.Duration,
) plugin_interface.SwapUsecase {
	return &swapUsecase{
		repoMaps:      repoMaps,
		repoOwnership: repoOwnership,
		timeout:       timeout,
		collator:      collate.New(language.Und, collate.IgnoreCase),
	}
}

// FindCompatibleSwaps ranks the user's owned same-category plugins by
// estimated translation quality. Ties are broken by plugin name, then
// plugin id, so the ranking never depends on storage iteration order.
func (u *swapUsecase) FindCompatibleSwaps(ctx context.Context, pluginID, userID string) ([]plugin_models.SwapCandidate, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	sourceMap, err := u.repoMaps.GetByPluginID(ctx, pluginID)
	if err != nil {
		return nil, fmt.Errorf("source parameter map load failed: %w", err)
	}
	if sourceMap == nil {
		return []plugin_models.SwapCandidate{}, nil
	}

	owned, err := u.repoOwnership.OwnedPluginIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ownership lookup failed: %w", err)
	}

	categoryMaps, err := u.repoMaps.GetByCategory(ctx, sourceMap.Category)
	if err != nil {
		return nil, fmt.Errorf("category map load failed: %w", err)
	}

	sourceSemantics := sourceMap.Semantics()

	candidates := make([]plugin_models.SwapCandidate, 0, len(categoryMaps))
	for _, candidate := range categoryMaps {
		if candidate.PluginID == pluginID {
			continue
		}
		if _, ok := owned[candidate.PluginID]; !ok {
			continue
		}
		candidates = append(candidates, plugin_models.SwapCandidate{
			PluginID:       candidate.PluginID,
			PluginName:     candidate.PluginName,
			Category:       candidate.Category,
			Confidence:     estimateSwapConfidence(sourceSemantics, sourceMap.Confidence, candidate),
			ParameterCount: len(candidate.Parameters),
			EqBandCount:    candidate.EqBandCount(),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Confidence != candidates[j].Confidence {
			return candidates[i].Confidence > candidates[j].Confidence
		}
		if c := u.collator.CompareString(candidates[i].PluginName, candidates[j].PluginName); c != 0 {
			return c < 0
		}
		return candidates[i].PluginID < candidates[j].PluginID
	})

	return candidates, nil
}

// GetRandomSwap picks one candidate deterministically from the ranked
// list: the same seed always lands on the same plugin, a different
// seed can land on a different one.
func (u *swapUsecase) GetRandomSwap(ctx context.Context, pluginID, userID string, seed int64) (*plugin_models.SwapCandidate, error) {
	candidates, err := u.FindCompatibleSwaps(ctx, pluginID, userID)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	idx := seed % int64(len(candidates))
	if idx < 0 {
		idx = -idx
	}
	pick := candidates[idx]
	return &pick, nil
}

// estimateSwapConfidence scores a candidate by semantic overlap,
// denominated by the source: a candidate covering every source
// semantic scores full overlap even when it offers more controls than
// the source does. The overlap is then discounted by the worse of the
// two maps' enrichment confidence.
func estimateSwapConfidence(sourceSemantics map[string]struct{}, sourceConf int, candidate *plugin_models.ParameterMap) int {
	if len(sourceSemantics) == 0 {
		return 0
	}

	candidateSemantics := candidate.Semantics()
	shared := 0
	for semantic := range sourceSemantics {
		if _, ok := candidateSemantics[semantic]; ok {
			shared++
		}
	}

	minConf := sourceConf
	if candidate.Confidence < minConf {
		minConf = candidate.Confidence
	}

	overlap := float64(shared) / float64(len(sourceSemantics))
	return int(math.Round(overlap * float64(minConf)))
}
