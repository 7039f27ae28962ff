package usecase_plugin

import (
	"context"
	"testing"
	"time"

	"github.com/chainswap/chainswap-backend/domain/domain_plugin/plugin_interface"
	"github.com/chainswap/chainswap-backend/domain/domain_plugin/plugin_models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSemanticRepo struct {
	semantics []*plugin_models.ParameterSemantic
}

func (f *fakeSemanticRepo) BulkUpsert(_ context.Context, semantics []*plugin_models.ParameterSemantic) (int, error) {
	f.semantics = semantics
	return len(semantics), nil
}

func (f *fakeSemanticRepo) GetByCategory(_ context.Context, category string) ([]*plugin_models.ParameterSemantic, error) {
	if category == "" {
		return f.semantics, nil
	}
	var out []*plugin_models.ParameterSemantic
	for _, s := range f.semantics {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSemanticRepo) EnsureIndexes(context.Context) error { return nil }

var _ plugin_interface.ParameterSemanticRepository = (*fakeSemanticRepo)(nil)

func TestUpsertParameterMap_MergesOverExisting(t *testing.T) {
	repo := newFakeMapRepo(&plugin_models.ParameterMap{
		PluginID:     "plug-1",
		PluginName:   "Old",
		Manufacturer: "Acme Audio",
		Category:     plugin_models.CategoryEq,
		Parameters:   semanticParams("eq_band_1_freq"),
		Confidence:   70,
		Source:       "juce-scanned",
	})
	uc := NewParameterMapUsecase(repo, &fakeSemanticRepo{}, time.Second)

	_, err := uc.UpsertParameterMap(context.Background(), &plugin_models.ParameterMap{
		PluginID:   "plug-1",
		PluginName: "New",
		Confidence: 90,
	})
	require.NoError(t, err)

	stored, err := uc.GetParameterMap(context.Background(), "plug-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "New", stored.PluginName)
	assert.Equal(t, 90, stored.Confidence)
	assert.Equal(t, "Acme Audio", stored.Manufacturer)
	assert.Len(t, stored.Parameters, 1)
}

func TestUpsertParameterMap_RejectsDuplicateSemantics(t *testing.T) {
	uc := NewParameterMapUsecase(newFakeMapRepo(), &fakeSemanticRepo{}, time.Second)

	_, err := uc.UpsertParameterMap(context.Background(), &plugin_models.ParameterMap{
		PluginID: "plug-1",
		Parameters: []plugin_models.ParameterDescriptor{
			{JuceParamID: "A", Semantic: "eq_band_1_freq", MappingCurve: plugin_models.CurveLinear},
			{JuceParamID: "B", Semantic: "eq_band_1_freq", MappingCurve: plugin_models.CurveLinear},
		},
	})
	assert.Error(t, err)
}

func TestUpsertParameterMap_RejectsSteppedWithoutSteps(t *testing.T) {
	uc := NewParameterMapUsecase(newFakeMapRepo(), &fakeSemanticRepo{}, time.Second)

	_, err := uc.UpsertParameterMap(context.Background(), &plugin_models.ParameterMap{
		PluginID: "plug-1",
		Parameters: []plugin_models.ParameterDescriptor{
			{JuceParamID: "Type", Semantic: "eq_band_1_type", MappingCurve: plugin_models.CurveStepped},
		},
	})
	assert.Error(t, err)
}

func TestUpsertParameterMap_RequiresPluginID(t *testing.T) {
	uc := NewParameterMapUsecase(newFakeMapRepo(), &fakeSemanticRepo{}, time.Second)

	_, err := uc.UpsertParameterMap(context.Background(), &plugin_models.ParameterMap{PluginName: "No ID"})
	assert.Error(t, err)
}

func TestDefaultSemantics_SeedAndQuery(t *testing.T) {
	semRepo := &fakeSemanticRepo{}
	uc := NewParameterMapUsecase(newFakeMapRepo(), semRepo, time.Second)

	n, err := semRepo.BulkUpsert(context.Background(), plugin_models.DefaultSemantics())
	require.NoError(t, err)
	assert.Greater(t, n, 0)

	eq, err := uc.GetSemantics(context.Background(), plugin_models.CategoryEq)
	require.NoError(t, err)
	require.NotEmpty(t, eq)
	for _, s := range eq {
		assert.Equal(t, plugin_models.CategoryEq, s.Category)
	}
}
