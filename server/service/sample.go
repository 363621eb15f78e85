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
	"os"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"github.com/tmrcoders06-design/BioSentienceAI/pkg/bio"
	"github.com/tmrcoders06-design/BioSentienceAI/server/types"
)

// SampleNote tags sample responses so callers know the data's provenance.
const SampleNote = "This is demo data from the training dataset"

// SampleData returns the first training record's feature vector.
func (s *service) SampleData(ctx context.Context) (*types.SampleDataResponse, error) {
	file, err := os.Open(s.cfg.Dataset.Path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var records []bio.TrainingRecord
	if err := gocsv.Unmarshal(file, &records); err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, errors.New("training dataset is empty")
	}

	return &types.SampleDataResponse{
		Data: records[0].Features().ToMap(),
		Note: SampleNote,
	}, nil
}
