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

// Package modelstore loads the trainer's artifacts once at process start
// and serves them read-only. There is no partial-service mode: a missing or
// undecodable artifact fails construction and the server refuses to start.
package modelstore

import (
	"github.com/pkg/errors"

	logger "github.com/tmrcoders06-design/BioSentienceAI/internal/bslog"
	"github.com/tmrcoders06-design/BioSentienceAI/pkg/bio"
	"github.com/tmrcoders06-design/BioSentienceAI/pkg/forest"
	"github.com/tmrcoders06-design/BioSentienceAI/trainer/storage"
)

// ModelStore holds the three fitted models and their metadata. It is never
// mutated after New returns, so concurrent request handlers share it without
// locking.
type ModelStore struct {
	models   map[bio.Target]*forest.Forest
	metadata *storage.Metadata
}

// New loads every target's model plus the metadata document from the given
// storage.
func New(store storage.Storage) (*ModelStore, error) {
	models := make(map[bio.Target]*forest.Forest, len(bio.Targets))
	for _, target := range bio.Targets {
		f, err := store.OpenModel(target)
		if err != nil {
			return nil, errors.Wrapf(err, "load model for %s", target)
		}
		models[target] = f
		logger.WithTarget(string(target)).Infof("loaded model with %d trees", len(f.Trees))
	}

	md, err := store.Metadata()
	if err != nil {
		return nil, errors.Wrap(err, "load model metadata")
	}

	for _, target := range bio.Targets {
		if _, ok := md.Models[string(target)]; !ok {
			return nil, errors.Errorf("metadata has no entry for %s", target)
		}
	}

	return &ModelStore{
		models:   models,
		metadata: md,
	}, nil
}

// Model returns the fitted model for the given target.
func (s *ModelStore) Model(target bio.Target) (*forest.Forest, error) {
	f, ok := s.models[target]
	if !ok {
		return nil, errors.Errorf("no model for target %s", target)
	}
	return f, nil
}

// ModelInfo returns the metadata entry for the given target.
func (s *ModelStore) ModelInfo(target bio.Target) (storage.ModelInfo, error) {
	info, ok := s.metadata.Models[string(target)]
	if !ok {
		return storage.ModelInfo{}, errors.Errorf("no metadata for target %s", target)
	}
	return info, nil
}

// Metadata returns the full metadata document.
func (s *ModelStore) Metadata() *storage.Metadata {
	return s.metadata
}
