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

type fakeMapRepo struct {
	maps map[string]*plugin_models.ParameterMap
}

func newFakeMapRepo(maps ...*plugin_models.ParameterMap) *fakeMapRepo {
	repo := &fakeMapRepo{maps: make(map[string]*plugin_models.ParameterMap)}
	for _, m := range maps {
		repo.maps[m.PluginID] = m
	}
	return repo
}

func (f *fakeMapRepo) GetByPluginID(_ context.Context, pluginID string) (*plugin_models.ParameterMap, error) {
	return f.maps[pluginID], nil
}

func (f *fakeMapRepo) GetByCategory(_ context.Context, category string) ([]*plugin_models.ParameterMap, error) {
	var out []*plugin_models.ParameterMap
	for _, m := range f.maps {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMapRepo) Upsert(_ context.Context, m *plugin_models.ParameterMap) (string, error) {
	f.maps[m.PluginID] = m
	return m.PluginID, nil
}

func (f *fakeMapRepo) DeleteByPluginID(_ context.Context, pluginID string) error {
	delete(f.maps, pluginID)
	return nil
}

func (f *fakeMapRepo) EnsureIndexes(context.Context) error { return nil }

var _ plugin_interface.ParameterMapRepository = (*fakeMapRepo)(nil)

func eqMap(pluginID, name string, confidence, bands int, params ...plugin_models.ParameterDescriptor) *plugin_models.ParameterMap {
	return &plugin_models.ParameterMap{
		PluginID:   pluginID,
		PluginName: name,
		Category:   plugin_models.CategoryEq,
		Parameters: params,
		Eq:         &plugin_models.EqHints{BandCount: bands},
		Confidence: confidence,
	}
}

func freqParam(paramID string, index int, semantic string) plugin_models.ParameterDescriptor {
	return plugin_models.ParameterDescriptor{
		JuceParamID:    paramID,
		JuceParamIndex: index,
		Semantic:       semantic,
		PhysicalUnit:   "hz",
		MappingCurve:   plugin_models.CurveLogarithmic,
		MinValue:       20,
		MaxValue:       20000,
	}
}

func TestTranslateParameters_IdentityTranslation(t *testing.T) {
	m := eqMap("plug-a", "EightBand", 100, 2,
		freqParam("Band 1 Freq", 0, "eq_band_1_freq"),
		plugin_models.ParameterDescriptor{
			JuceParamID: "Band 1 Gain", JuceParamIndex: 1, Semantic: "eq_band_1_gain",
			PhysicalUnit: "db", MappingCurve: plugin_models.CurveLinear, MinValue: -18, MaxValue: 18,
		},
		plugin_models.ParameterDescriptor{
			JuceParamID: "Band 1 Type", JuceParamIndex: 2, Semantic: "eq_band_1_type",
			PhysicalUnit: "stepped", MappingCurve: plugin_models.CurveStepped,
			Steps: []plugin_models.ParameterStep{
				{NormalizedValue: 0.0, PhysicalValue: "bell"},
				{NormalizedValue: 1.0, PhysicalValue: "hpf"},
			},
		},
	)

	uc := NewTranslateUsecase(newFakeMapRepo(m), time.Second)

	result, err := uc.TranslateParameters(context.Background(), "plug-a", "plug-a", []plugin_models.SourceParam{
		{ParamID: "Band 1 Freq", NormalizedValue: 0.37},
		{ParamID: "Band 1 Gain", NormalizedValue: 0.5},
		{ParamID: "Band 1 Type", NormalizedValue: 1.0},
	})
	require.NoError(t, err)

	assert.Empty(t, result.UnmappedParams)
	assert.Equal(t, 100, result.Confidence)
	require.Len(t, result.TargetParams, 3)
	assert.InDelta(t, 0.37, result.TargetParams[0].Value, 1e-6)
	assert.InDelta(t, 0.5, result.TargetParams[1].Value, 1e-9)
	assert.Equal(t, 1.0, result.TargetParams[2].Value)
}

func TestTranslateParameters_MissingMaps(t *testing.T) {
	m := eqMap("plug-a", "EightBand", 100, 1, freqParam("Freq", 0, "eq_band_1_freq"))
	uc := NewTranslateUsecase(newFakeMapRepo(m), time.Second)

	params := []plugin_models.SourceParam{{ParamID: "Freq", NormalizedValue: 0.5}}

	result, err := uc.TranslateParameters(context.Background(), "nope", "plug-a", params)
	require.NoError(t, err)
	assert.Equal(t, plugin_models.ReasonSourceMapMissing, result.Reason)
	assert.Equal(t, 0, result.Confidence)
	assert.Equal(t, []string{"Freq"}, result.UnmappedParams)
	assert.Empty(t, result.TargetParams)

	result, err = uc.TranslateParameters(context.Background(), "plug-a", "nope", params)
	require.NoError(t, err)
	assert.Equal(t, plugin_models.ReasonTargetMapMissing, result.Reason)
	assert.Equal(t, 0, result.Confidence)
	assert.Equal(t, []string{"Freq"}, result.UnmappedParams)
}

func TestTranslateParameters_BandRemapBoundary(t *testing.T) {
	source := eqMap("dense", "EightBand", 100, 8, freqParam("Band 8 Freq", 7, "eq_band_8_freq"))
	// Target claims 7 bands; an eq_band_8_freq descriptor on it must
	// still never receive band 8 settings.
	target := eqMap("sparse", "SevenBand", 100, 7, freqParam("B8F", 9, "eq_band_8_freq"))

	uc := NewTranslateUsecase(newFakeMapRepo(source, target), time.Second)

	result, err := uc.TranslateParameters(context.Background(), "dense", "sparse", []plugin_models.SourceParam{
		{ParamID: "Band 8 Freq", NormalizedValue: 0.5},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Band 8 Freq"}, result.UnmappedParams)
	assert.Empty(t, result.TargetParams)
	assert.Equal(t, 0, result.Confidence)
}

func TestTranslateParameters_BandWithinTargetCount(t *testing.T) {
	source := eqMap("dense", "EightBand", 100, 8, freqParam("Band 3 Freq", 2, "eq_band_3_freq"))
	target := eqMap("sparse", "SevenBand", 100, 7, freqParam("B3F", 3, "eq_band_3_freq"))

	uc := NewTranslateUsecase(newFakeMapRepo(source, target), time.Second)

	result, err := uc.TranslateParameters(context.Background(), "dense", "sparse", []plugin_models.SourceParam{
		{ParamID: "Band 3 Freq", NormalizedValue: 0.25},
	})
	require.NoError(t, err)
	assert.Empty(t, result.UnmappedParams)
	require.Len(t, result.TargetParams, 1)
	assert.Equal(t, "B3F", result.TargetParams[0].ParamID)
	assert.Equal(t, 3, result.TargetParams[0].ParamIndex)
	assert.InDelta(t, 0.25, result.TargetParams[0].Value, 1e-6)
}

func TestTranslateParameters_CurveKindMismatchIsUnmapped(t *testing.T) {
	source := eqMap("a", "A", 100, 1, plugin_models.ParameterDescriptor{
		JuceParamID: "Type", Semantic: "eq_band_1_type",
		MappingCurve: plugin_models.CurveStepped,
		Steps:        []plugin_models.ParameterStep{{NormalizedValue: 0, PhysicalValue: "bell"}},
	})
	target := eqMap("b", "B", 100, 1, plugin_models.ParameterDescriptor{
		JuceParamID: "Type", Semantic: "eq_band_1_type",
		MappingCurve: plugin_models.CurveLinear, MinValue: 0, MaxValue: 1,
	})

	uc := NewTranslateUsecase(newFakeMapRepo(source, target), time.Second)

	result, err := uc.TranslateParameters(context.Background(), "a", "b", []plugin_models.SourceParam{
		{ParamID: "Type", NormalizedValue: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Type"}, result.UnmappedParams)
}

func TestTranslateParameters_QFactorToBandwidthConversion(t *testing.T) {
	source := eqMap("a", "A", 100, 1, plugin_models.ParameterDescriptor{
		JuceParamID: "Q", Semantic: "eq_band_1_q",
		PhysicalUnit: "q_factor", QRepresentation: "q_factor",
		MappingCurve: plugin_models.CurveLinear, MinValue: 0.1, MaxValue: 30,
	})
	target := eqMap("b", "B", 100, 1, plugin_models.ParameterDescriptor{
		JuceParamID: "BW", Semantic: "eq_band_1_q",
		PhysicalUnit: "bandwidth_octaves", QRepresentation: "bandwidth_octaves",
		MappingCurve: plugin_models.CurveLinear, MinValue: 0.1, MaxValue: 4,
	})

	uc := NewTranslateUsecase(newFakeMapRepo(source, target), time.Second)

	// n=0.0203 puts the source Q at ~0.707, which is ~1.90 octaves,
	// which lands at ~0.4616 on the target's 0.1-4.0 linear range.
	result, err := uc.TranslateParameters(context.Background(), "a", "b", []plugin_models.SourceParam{
		{ParamID: "Q", NormalizedValue: 0.0203},
	})
	require.NoError(t, err)
	require.Len(t, result.TargetParams, 1)
	assert.InDelta(t, 0.4616, result.TargetParams[0].Value, 0.001)
}

func TestTranslateParameters_SkewPathTakesPriority(t *testing.T) {
	skewed := plugin_models.ParameterDescriptor{
		JuceParamID: "Freq", Semantic: "eq_band_1_freq",
		PhysicalUnit: "hz",
		// Generic curve says linear, but the exact host range is
		// present and must win.
		MappingCurve: plugin_models.CurveLinear,
		MinValue:     20, MaxValue: 20000,
		HasNormalisableRange: true,
		RangeStart:           20, RangeEnd: 20000, SkewFactor: 0.199,
	}
	source := eqMap("a", "A", 100, 1, skewed)

	targetParam := skewed
	targetParam.JuceParamID = "Frequency"
	target := eqMap("b", "B", 100, 1, targetParam)

	uc := NewTranslateUsecase(newFakeMapRepo(source, target), time.Second)

	result, err := uc.TranslateParameters(context.Background(), "a", "b", []plugin_models.SourceParam{
		{ParamID: "Freq", NormalizedValue: 0.42},
	})
	require.NoError(t, err)
	require.Len(t, result.TargetParams, 1)
	// Identical skewed ranges on both sides round-trip exactly.
	assert.InDelta(t, 0.42, result.TargetParams[0].Value, 1e-9)
}

func TestTranslateParameters_ConfidenceIsWorstCaseDiscounted(t *testing.T) {
	source := eqMap("a", "A", 80, 2,
		freqParam("F1", 0, "eq_band_1_freq"),
		freqParam("F2", 1, "eq_band_2_freq"),
	)
	// Target only knows band 1, and its map is lower quality.
	target := eqMap("b", "B", 60, 2, freqParam("TF1", 0, "eq_band_1_freq"))

	uc := NewTranslateUsecase(newFakeMapRepo(source, target), time.Second)

	result, err := uc.TranslateParameters(context.Background(), "a", "b", []plugin_models.SourceParam{
		{ParamID: "F1", NormalizedValue: 0.5},
		{ParamID: "F2", NormalizedValue: 0.5},
	})
	require.NoError(t, err)
	assert.Len(t, result.TargetParams, 1)
	assert.Equal(t, []string{"F2"}, result.UnmappedParams)
	// 1 of 2 translated, discounted by min(80,60): round(0.5*60) = 30.
	assert.Equal(t, 30, result.Confidence)
}

func TestTranslateParameters_UnknownParamIDIsUnmapped(t *testing.T) {
	m := eqMap("a", "A", 100, 1, freqParam("Freq", 0, "eq_band_1_freq"))
	uc := NewTranslateUsecase(newFakeMapRepo(m), time.Second)

	result, err := uc.TranslateParameters(context.Background(), "a", "a", []plugin_models.SourceParam{
		{ParamID: "NoSuchControl", NormalizedValue: 0.5},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"NoSuchControl"}, result.UnmappedParams)
	assert.Equal(t, 0, result.Confidence)
}
