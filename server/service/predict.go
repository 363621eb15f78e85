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

	"github.com/montanaflynn/stats"

	"github.com/tmrcoders06-design/BioSentienceAI/pkg/bio"
	"github.com/tmrcoders06-design/BioSentienceAI/pkg/bserrors"
	"github.com/tmrcoders06-design/BioSentienceAI/server/types"
)

// Analyze validates one feature vector, predicts the three targets and
// generates an explanation.
func (s *service) Analyze(ctx context.Context, req types.AnalyzeRequest) (*types.AnalyzeResponse, error) {
	v, err := bio.FromMap(req.Data)
	if err != nil {
		return nil, bserrors.Validation(err)
	}

	predictions, confidence, err := s.predictAll(v)
	if err != nil {
		return nil, err
	}

	explanation, err := s.explain(v, predictions)
	if err != nil {
		return nil, err
	}

	return &types.AnalyzeResponse{
		Predictions:   predictions,
		Confidence:    confidence,
		Explanation:   explanation,
		InputFeatures: v.ToMap(),
		Disclaimer:    Disclaimer,
	}, nil
}

// predictAll runs all three models on one validated vector. The prediction
// is the ensemble mean; confidence is a monotonic transform of the per-tree
// dispersion, 1/(1+stddev), so tighter agreement scores closer to 1. It is
// an agreement proxy, not a calibrated probability.
func (s *service) predictAll(v bio.FeatureVector) (map[string]float64, map[string]float64, error) {
	x := v.Values()
	predictions := make(map[string]float64, len(bio.Targets))
	confidence := make(map[string]float64, len(bio.Targets))

	for _, target := range bio.Targets {
		model, err := s.store.Model(target)
		if err != nil {
			return nil, nil, err
		}

		treePredictions, err := model.TreePredictions(x)
		if err != nil {
			return nil, nil, err
		}

		mean, err := stats.Mean(treePredictions)
		if err != nil {
			return nil, nil, err
		}

		stddev, err := stats.StandardDeviation(treePredictions)
		if err != nil {
			return nil, nil, err
		}

		predictions[string(target)] = mean
		confidence[string(target)] = 1 / (1 + stddev)
	}

	return predictions, confidence, nil
}
