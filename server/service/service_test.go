/*
 *     Copyright 2024 The BioSentience Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package service

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmrcoders06-design/BioSentienceAI/pkg/bio"
	"github.com/tmrcoders06-design/BioSentienceAI/pkg/bserrors"
	"github.com/tmrcoders06-design/BioSentienceAI/pkg/forest"
	"github.com/tmrcoders06-design/BioSentienceAI/server/config"
	"github.com/tmrcoders06-design/BioSentienceAI/server/modelstore"
	"github.com/tmrcoders06-design/BioSentienceAI/server/types"
	"github.com/tmrcoders06-design/BioSentienceAI/trainer/storage"
)

const sampleCSV = `gene_BRCA1,gene_TP53,gene_EGFR,gene_MYC,gene_KRAS,cell_count,cell_viability,ph_level,temperature,oxygen_level,glucose_level,health_index,mutation_risk,adaptation_score
0.5000,0.6000,0.4000,0.3000,0.2000,5000.0,0.9000,7.20,37.00,95.00,100.00,0.7500,0.2000,0.6500
0.1000,0.2000,0.8000,0.7000,0.9000,2000.0,0.6000,6.80,36.00,88.00,120.00,0.4000,0.6000,0.5000
`

func mockFeatureMap() map[string]float64 {
	return map[string]float64{
		bio.FeatureGeneBRCA1:     0.5,
		bio.FeatureGeneTP53:      0.6,
		bio.FeatureGeneEGFR:      0.4,
		bio.FeatureGeneMYC:       0.3,
		bio.FeatureGeneKRAS:      0.2,
		bio.FeatureCellCount:     5000,
		bio.FeatureCellViability: 0.9,
		bio.FeaturePHLevel:       7.2,
		bio.FeatureTemperature:   37.0,
		bio.FeatureOxygenLevel:   95,
		bio.FeatureGlucoseLevel:  100,
	}
}

// mockService fits three tiny ensembles with labels in [0, 1], persists them
// through real storage and builds a service on the loaded model store.
func mockService(t *testing.T) Service {
	modelDir := t.TempDir()
	store := storage.New(modelDir)

	rng := rand.New(rand.NewSource(42))
	n := 120
	features := make([][]float64, n)
	labels := map[bio.Target][]float64{
		bio.TargetHealthIndex:     make([]float64, n),
		bio.TargetMutationRisk:    make([]float64, n),
		bio.TargetAdaptationScore: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		row := make([]float64, bio.FeatureCount)
		for j := range row {
			row[j] = rng.Float64()
		}
		features[i] = row
		labels[bio.TargetHealthIndex][i] = 0.6*row[6] + 0.4*row[1]
		labels[bio.TargetMutationRisk][i] = 0.7*row[4] + 0.3*(1-row[1])
		labels[bio.TargetAdaptationScore][i] = 0.5*row[2] + 0.5*row[6]
	}

	params := forest.Params{
		Trees:           10,
		MaxDepth:        5,
		MinSamplesSplit: 5,
		MinSamplesLeaf:  2,
		Seed:            42,
	}

	md := &storage.Metadata{
		TrainingDate: time.Now(),
		DatasetSize:  n,
		Features:     bio.FeatureNames,
		Models:       make(map[string]storage.ModelInfo, len(bio.Targets)),
	}
	for _, target := range bio.Targets {
		f, err := forest.Fit(features, labels[target], params)
		require.NoError(t, err)
		require.NoError(t, store.SaveModel(target, f))

		md.Models[string(target)] = storage.ModelInfo{
			Description: target.Description(),
			R2Score:     0.9,
			MSE:         0.001,
			TopFeatures: []storage.FeatureImportance{
				{Name: bio.FeatureCellViability, Importance: 0.4},
				{Name: bio.FeatureGeneTP53, Importance: 0.3},
			},
			ModelPath: store.ModelFilename(target),
		}
	}
	require.NoError(t, store.SaveMetadata(md))

	ms, err := modelstore.New(store)
	require.NoError(t, err)

	cfg := config.New()
	cfg.Model.Dir = modelDir
	cfg.Upload.Dir = t.TempDir()
	cfg.Dataset.Path = filepath.Join(t.TempDir(), "sample.csv")
	require.NoError(t, os.WriteFile(cfg.Dataset.Path, []byte(sampleCSV), 0600))

	return New(cfg, ms)
}

func TestService_Analyze(t *testing.T) {
	assert := assert.New(t)
	svc := mockService(t)

	resp, err := svc.Analyze(context.Background(), types.AnalyzeRequest{Data: mockFeatureMap()})
	assert.NoError(err)

	assert.Len(resp.Predictions, len(bio.Targets))
	assert.Len(resp.Confidence, len(bio.Targets))
	for _, target := range bio.Targets {
		prediction, ok := resp.Predictions[string(target)]
		assert.True(ok, string(target))
		// Training labels live in [0, 1] and leaves hold their means.
		assert.GreaterOrEqual(prediction, float64(0))
		assert.LessOrEqual(prediction, float64(1))

		confidence := resp.Confidence[string(target)]
		assert.Greater(confidence, float64(0))
		assert.LessOrEqual(confidence, float64(1))
	}

	assert.Equal(mockFeatureMap(), resp.InputFeatures)
	assert.Equal(Disclaimer, resp.Disclaimer)

	assert.NotEmpty(resp.Explanation.Summary)
	assert.GreaterOrEqual(len(resp.Explanation.HealthIndex), 3)
	assert.GreaterOrEqual(len(resp.Explanation.MutationRisk), 3)
	assert.GreaterOrEqual(len(resp.Explanation.AdaptationScore), 3)

	// Each ranking is descending by importance.
	for _, ranked := range [][]types.FeatureImpact{
		resp.Explanation.HealthIndex,
		resp.Explanation.MutationRisk,
		resp.Explanation.AdaptationScore,
	} {
		for i := 1; i < len(ranked); i++ {
			assert.GreaterOrEqual(ranked[i-1].Importance, ranked[i].Importance)
		}
		// Leading entries rank above the tier boundary.
		assert.Equal(ImpactHigh, ranked[0].Impact)
	}
}

func TestService_AnalyzeIdempotent(t *testing.T) {
	assert := assert.New(t)
	svc := mockService(t)

	req := types.AnalyzeRequest{Data: mockFeatureMap()}
	first, err := svc.Analyze(context.Background(), req)
	assert.NoError(err)
	second, err := svc.Analyze(context.Background(), req)
	assert.NoError(err)

	assert.Equal(first.Predictions, second.Predictions)
	assert.Equal(first.Confidence, second.Confidence)
	assert.Equal(first.Explanation, second.Explanation)
}

func TestService_AnalyzeValidation(t *testing.T) {
	tests := []struct {
		name string
		mock func(m map[string]float64) map[string]float64
	}{
		{
			name: "missing feature",
			mock: func(m map[string]float64) map[string]float64 {
				delete(m, bio.FeatureGeneKRAS)
				return m
			},
		},
		{
			name: "negative feature",
			mock: func(m map[string]float64) map[string]float64 {
				m[bio.FeatureTemperature] = -1
				return m
			},
		},
		{
			name: "empty map",
			mock: func(m map[string]float64) map[string]float64 {
				return map[string]float64{}
			},
		},
	}

	svc := mockService(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			_, err := svc.Analyze(context.Background(), types.AnalyzeRequest{Data: tc.mock(mockFeatureMap())})
			assert.Error(err)
			assert.True(bserrors.IsValidation(err))
		})
	}
}

func TestService_Simulate(t *testing.T) {
	assert := assert.New(t)
	svc := mockService(t)

	resp, err := svc.Simulate(context.Background(), types.SimulateRequest{
		BaseFeatures:   mockFeatureMap(),
		VaryFeature:    bio.FeatureGeneBRCA1,
		Steps:          5,
		VariationRange: 0.2,
	})
	assert.NoError(err)

	assert.Equal(bio.FeatureGeneBRCA1, resp.VariedFeature)
	assert.Equal(0.5, resp.BaseValue)
	assert.Equal(5, resp.Steps)
	assert.Len(resp.Trajectory, 5)

	// base 0.5 with f=0.2 sweeps 0.4 to 0.6 in even steps.
	expected := []float64{0.4, 0.45, 0.5, 0.55, 0.6}
	for i, point := range resp.Trajectory {
		assert.InDelta(expected[i], point[bio.FeatureGeneBRCA1], 1e-12)
		for _, target := range bio.Targets {
			_, ok := point[string(target)]
			assert.True(ok, string(target))
		}
	}
}

func TestService_SimulateDefaults(t *testing.T) {
	assert := assert.New(t)
	svc := mockService(t)

	resp, err := svc.Simulate(context.Background(), types.SimulateRequest{
		BaseFeatures: mockFeatureMap(),
		VaryFeature:  bio.FeatureCellViability,
	})
	assert.NoError(err)
	assert.Equal(DefaultSimulationSteps, resp.Steps)
	assert.Equal(DefaultVariationRange, resp.VariationRange)
	assert.Len(resp.Trajectory, DefaultSimulationSteps)

	// The swept values are strictly ascending and bounded by base*(1 +- f).
	base := resp.BaseValue
	low, high := base*(1-resp.VariationRange), base*(1+resp.VariationRange)
	var prev float64
	for i, point := range resp.Trajectory {
		value := point[bio.FeatureCellViability]
		assert.GreaterOrEqual(value, low-1e-12)
		assert.LessOrEqual(value, high+1e-12)
		if i > 0 {
			assert.Greater(value, prev)
		}
		prev = value
	}
}

func TestService_SimulateValidation(t *testing.T) {
	tests := []struct {
		name string
		req  types.SimulateRequest
	}{
		{
			name: "unknown vary feature",
			req: types.SimulateRequest{
				BaseFeatures: mockFeatureMap(),
				VaryFeature:  "telomere_length",
			},
		},
		{
			name: "too few steps",
			req: types.SimulateRequest{
				BaseFeatures: mockFeatureMap(),
				VaryFeature:  bio.FeatureGeneBRCA1,
				Steps:        1,
			},
		},
		{
			name: "variation range too large",
			req: types.SimulateRequest{
				BaseFeatures:   mockFeatureMap(),
				VaryFeature:    bio.FeatureGeneBRCA1,
				VariationRange: 1.5,
			},
		},
		{
			name: "negative variation range",
			req: types.SimulateRequest{
				BaseFeatures:   mockFeatureMap(),
				VaryFeature:    bio.FeatureGeneBRCA1,
				VariationRange: -0.2,
			},
		},
		{
			name: "invalid base features",
			req: types.SimulateRequest{
				BaseFeatures: map[string]float64{bio.FeatureGeneBRCA1: 0.5},
				VaryFeature:  bio.FeatureGeneBRCA1,
			},
		},
	}

	svc := mockService(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			_, err := svc.Simulate(context.Background(), tc.req)
			assert.Error(err)
			assert.True(bserrors.IsValidation(err))
		})
	}
}

func TestService_Explain(t *testing.T) {
	tests := []struct {
		name   string
		req    types.ExplainRequest
		expect func(t *testing.T, resp *types.ExplainResponse, err error)
	}{
		{
			name: "explicit target",
			req:  types.ExplainRequest{Target: string(bio.TargetMutationRisk)},
			expect: func(t *testing.T, resp *types.ExplainResponse, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(string(bio.TargetMutationRisk), resp.Target)
				assert.Equal(bio.TargetMutationRisk.Description(), resp.Description)
				assert.Equal(0.9, resp.Performance.R2Score)
				assert.Equal(0.001, resp.Performance.MSE)
				assert.Len(resp.FeatureImportances, 2)
				assert.Contains(resp.Interpretation, "90.0%")
			},
		},
		{
			name: "empty target defaults to health index",
			req:  types.ExplainRequest{},
			expect: func(t *testing.T, resp *types.ExplainResponse, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(string(bio.TargetHealthIndex), resp.Target)
			},
		},
		{
			name: "unknown target",
			req:  types.ExplainRequest{Target: "longevity_index"},
			expect: func(t *testing.T, resp *types.ExplainResponse, err error) {
				assert := assert.New(t)
				assert.Error(err)
				assert.True(bserrors.IsValidation(err))
			},
		},
	}

	svc := mockService(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := svc.Explain(context.Background(), tc.req)
			tc.expect(t, resp, err)
		})
	}
}

func TestService_SampleData(t *testing.T) {
	assert := assert.New(t)
	svc := mockService(t)

	resp, err := svc.SampleData(context.Background())
	assert.NoError(err)
	assert.Equal(SampleNote, resp.Note)
	assert.Len(resp.Data, bio.FeatureCount)
	assert.Equal(0.5, resp.Data[bio.FeatureGeneBRCA1])
	assert.Equal(float64(5000), resp.Data[bio.FeatureCellCount])
}

func TestService_SummaryThresholds(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		status   func(float64) string
		expected string
	}{
		{name: "excellent health", value: 0.9, status: healthStatus, expected: "excellent"},
		{name: "good health", value: 0.75, status: healthStatus, expected: "good"},
		{name: "moderate health", value: 0.6, status: healthStatus, expected: "moderate"},
		{name: "concerning health", value: 0.5, status: healthStatus, expected: "concerning"},
		{name: "low risk", value: 0.1, status: riskStatus, expected: "low"},
		{name: "moderate risk", value: 0.2, status: riskStatus, expected: "moderate"},
		{name: "elevated risk", value: 0.4, status: riskStatus, expected: "elevated"},
		{name: "high risk", value: 0.5, status: riskStatus, expected: "high"},
		{name: "high adaptation", value: 0.85, status: adaptationStatus, expected: "high"},
		{name: "moderate adaptation", value: 0.7, status: adaptationStatus, expected: "moderate"},
		{name: "low adaptation", value: 0.5, status: adaptationStatus, expected: "low"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status(tc.value))
		})
	}
}

func TestImpactTier(t *testing.T) {
	assert := assert.New(t)

	// With eleven features, ranks 0-3 are high, 4-7 medium, the rest low.
	assert.Equal(ImpactHigh, impactTier(0, bio.FeatureCount))
	assert.Equal(ImpactHigh, impactTier(3, bio.FeatureCount))
	assert.Equal(ImpactMedium, impactTier(4, bio.FeatureCount))
	assert.Equal(ImpactMedium, impactTier(7, bio.FeatureCount))
	assert.Equal(ImpactLow, impactTier(8, bio.FeatureCount))
	assert.Equal(ImpactLow, impactTier(10, bio.FeatureCount))
}
