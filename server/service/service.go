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

// Package service implements the analysis operations behind the HTTP
// surface: prediction with ensemble-agreement confidence, importance-based
// explanations, parameter-sweep simulations, sample data and CSV upload
// previews.
package service

import (
	"context"
	"io"

	"github.com/tmrcoders06-design/BioSentienceAI/server/config"
	"github.com/tmrcoders06-design/BioSentienceAI/server/modelstore"
	"github.com/tmrcoders06-design/BioSentienceAI/server/types"
)

// Disclaimer is attached to every analysis response.
const Disclaimer = "These are model predictions for research purposes only. Not medical advice."

// Service is the interface used by the HTTP handlers.
type Service interface {
	// Analyze validates one feature vector, predicts the three targets and
	// generates an explanation.
	Analyze(context.Context, types.AnalyzeRequest) (*types.AnalyzeResponse, error)

	// Simulate sweeps one feature around its base value and predicts every
	// step independently.
	Simulate(context.Context, types.SimulateRequest) (*types.SimulateResponse, error)

	// Explain reports one model's performance and static importance ranking.
	Explain(context.Context, types.ExplainRequest) (*types.ExplainResponse, error)

	// SampleData returns one canonical feature vector from the training
	// dataset.
	SampleData(context.Context) (*types.SampleDataResponse, error)

	// UploadDataset stores an uploaded CSV in the holding area and returns a
	// bounded preview.
	UploadDataset(ctx context.Context, filename string, r io.Reader) (*types.UploadResponse, error)
}

type service struct {
	cfg   *config.Config
	store *modelstore.ModelStore
}

// New returns a new Service instance.
func New(cfg *config.Config, store *modelstore.ModelStore) Service {
	return &service{
		cfg:   cfg,
		store: store,
	}
}
