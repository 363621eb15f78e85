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
	"fmt"
	"sort"

	"github.com/tmrcoders06-design/BioSentienceAI/pkg/bio"
	"github.com/tmrcoders06-design/BioSentienceAI/pkg/bserrors"
	"github.com/tmrcoders06-design/BioSentienceAI/server/types"
)

// ExplainTopFeatures is how many ranked features each per-target explanation
// carries.
const ExplainTopFeatures = 5

// Impact tiers, assigned by importance rank.
const (
	ImpactHigh   = "high"
	ImpactMedium = "medium"
	ImpactLow    = "low"
)

// explain builds the per-target importance rankings and the summary
// paragraph. Importances are a static property of each fitted model, so this
// is a global explanation applied to the instance's values.
func (s *service) explain(v bio.FeatureVector, predictions map[string]float64) (types.Explanation, error) {
	ranked := make(map[bio.Target][]types.FeatureImpact, len(bio.Targets))
	for _, target := range bio.Targets {
		model, err := s.store.Model(target)
		if err != nil {
			return types.Explanation{}, err
		}
		ranked[target] = rankFeatures(model.Importances, v)
	}

	return types.Explanation{
		HealthIndex:     ranked[bio.TargetHealthIndex],
		MutationRisk:    ranked[bio.TargetMutationRisk],
		AdaptationScore: ranked[bio.TargetAdaptationScore],
		Summary:         summarize(predictions, ranked),
	}, nil
}

// rankFeatures sorts a model's importance vector descending and keeps the
// leading features, tiered by rank: the top third of all features is high
// impact, the middle third medium, the rest low.
func rankFeatures(importances []float64, v bio.FeatureVector) []types.FeatureImpact {
	idxs := make([]int, len(importances))
	for i := range idxs {
		idxs[i] = i
	}
	sort.SliceStable(idxs, func(a, b int) bool {
		return importances[idxs[a]] > importances[idxs[b]]
	})

	values := v.Values()
	total := len(idxs)
	k := ExplainTopFeatures
	if k > total {
		k = total
	}

	impacts := make([]types.FeatureImpact, 0, k)
	for rank, i := range idxs[:k] {
		impacts = append(impacts, types.FeatureImpact{
			Feature:    bio.ReadableFeatureName(bio.FeatureNames[i]),
			Value:      values[i],
			Importance: importances[i],
			Impact:     impactTier(rank, total),
		})
	}
	return impacts
}

func impactTier(rank, total int) string {
	switch {
	case float64(rank) < float64(total)/3:
		return ImpactHigh
	case float64(rank) < 2*float64(total)/3:
		return ImpactMedium
	default:
		return ImpactLow
	}
}

// summarize templates the three predictions and the leading drivers into a
// short paragraph.
func summarize(predictions map[string]float64, ranked map[bio.Target][]types.FeatureImpact) string {
	health := predictions[string(bio.TargetHealthIndex)]
	risk := predictions[string(bio.TargetMutationRisk)]
	adaptation := predictions[string(bio.TargetAdaptationScore)]

	summary := fmt.Sprintf(
		"The biological system shows %s health (index: %.2f) with %s mutation risk (%.2f) and %s adaptation capability (%.2f). ",
		healthStatus(health), health, riskStatus(risk), risk, adaptationStatus(adaptation), adaptation)

	summary += fmt.Sprintf("Primary health driver: %s. Main risk factor: %s.",
		ranked[bio.TargetHealthIndex][0].Feature, ranked[bio.TargetMutationRisk][0].Feature)
	return summary
}

func healthStatus(health float64) string {
	switch {
	case health > 0.85:
		return "excellent"
	case health > 0.70:
		return "good"
	case health > 0.55:
		return "moderate"
	default:
		return "concerning"
	}
}

func riskStatus(risk float64) string {
	switch {
	case risk < 0.15:
		return "low"
	case risk < 0.30:
		return "moderate"
	case risk < 0.45:
		return "elevated"
	default:
		return "high"
	}
}

func adaptationStatus(adaptation float64) string {
	switch {
	case adaptation > 0.80:
		return "high"
	case adaptation > 0.60:
		return "moderate"
	default:
		return "low"
	}
}

// Explain reports one model's held-out performance and static importance
// ranking from the training metadata.
func (s *service) Explain(ctx context.Context, req types.ExplainRequest) (*types.ExplainResponse, error) {
	target := bio.Target(req.Target)
	if req.Target == "" {
		target = bio.TargetHealthIndex
	}
	if err := target.Validate(); err != nil {
		return nil, bserrors.Validation(err)
	}

	info, err := s.store.ModelInfo(target)
	if err != nil {
		return nil, err
	}

	ranking := make([]types.RankedFeature, 0, len(info.TopFeatures))
	for _, tf := range info.TopFeatures {
		ranking = append(ranking, types.RankedFeature{
			Name:       tf.Name,
			Importance: tf.Importance,
		})
	}

	return &types.ExplainResponse{
		Target:      string(target),
		Description: info.Description,
		Performance: types.ModelPerformance{
			R2Score: info.R2Score,
			MSE:     info.MSE,
		},
		FeatureImportances: ranking,
		Interpretation:     fmt.Sprintf("This model predicts %s with %.1f%% accuracy.", info.Description, info.R2Score*100),
	}, nil
}
