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

	"github.com/tmrcoders06-design/BioSentienceAI/pkg/bio"
	"github.com/tmrcoders06-design/BioSentienceAI/pkg/bserrors"
	"github.com/tmrcoders06-design/BioSentienceAI/server/types"
)

const (
	// DefaultSimulationSteps is used when the request omits the step count.
	DefaultSimulationSteps = 10

	// DefaultVariationRange is used when the request omits the sweep
	// fraction.
	DefaultVariationRange = 0.3
)

// Simulate sweeps one feature from base*(1-f) to base*(1+f) in evenly spaced
// steps, holding every other feature at its base value. Each step is an
// independent stateless prediction; the trajectory is ordered by ascending
// swept value.
func (s *service) Simulate(ctx context.Context, req types.SimulateRequest) (*types.SimulateResponse, error) {
	steps := req.Steps
	if steps == 0 {
		steps = DefaultSimulationSteps
	}

	variation := req.VariationRange
	if variation == 0 {
		variation = DefaultVariationRange
	}

	base, err := bio.FromMap(req.BaseFeatures)
	if err != nil {
		return nil, bserrors.Validation(err)
	}

	baseValue, ok := base.Value(req.VaryFeature)
	if !ok {
		return nil, bserrors.Validationf("unknown feature to vary: %s", req.VaryFeature)
	}

	if steps < 2 {
		return nil, bserrors.Validationf("steps must be at least 2, got %d", steps)
	}

	if variation <= 0 || variation >= 1 {
		return nil, bserrors.Validationf("variation range must be in (0, 1), got %g", variation)
	}

	trajectory := make([]map[string]float64, 0, steps)
	for i := 0; i < steps; i++ {
		factor := 1 - variation + 2*variation*float64(i)/float64(steps-1)
		value := baseValue * factor

		v, err := base.WithFeature(req.VaryFeature, value)
		if err != nil {
			return nil, bserrors.Validation(err)
		}

		predictions, _, err := s.predictAll(v)
		if err != nil {
			return nil, err
		}

		point := make(map[string]float64, len(predictions)+1)
		point[req.VaryFeature] = value
		for target, prediction := range predictions {
			point[target] = prediction
		}
		trajectory = append(trajectory, point)
	}

	return &types.SimulateResponse{
		Trajectory:     trajectory,
		VariedFeature:  req.VaryFeature,
		BaseValue:      baseValue,
		VariationRange: variation,
		Steps:          steps,
	}, nil
}
