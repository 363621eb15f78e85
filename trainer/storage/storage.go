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

// Package storage persists trained model artifacts: one gob file per
// prediction target plus one metadata JSON document. The trainer writes
// them, the analysis server reads them back at startup.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tmrcoders06-design/BioSentienceAI/pkg/bio"
	"github.com/tmrcoders06-design/BioSentienceAI/pkg/forest"
)

const (
	// ModelFileSuffix is the suffix of per-target model file names.
	ModelFileSuffix = "model"

	// ModelFileExt is the extension of model files.
	ModelFileExt = "gob"

	// MetadataFileName is the metadata document file name.
	MetadataFileName = "metadata.json"
)

// TrainingSettings records the configuration a training run used.
type TrainingSettings struct {
	Seed            int64   `json:"seed"`
	TestSplit       float64 `json:"test_split"`
	Trees           int     `json:"trees"`
	MaxDepth        int     `json:"max_depth"`
	MinSamplesSplit int     `json:"min_samples_split"`
	MinSamplesLeaf  int     `json:"min_samples_leaf"`
}

// FeatureImportance is one named importance score.
type FeatureImportance struct {
	Name       string  `json:"name"`
	Importance float64 `json:"importance"`
}

// ModelInfo is the per-target section of the metadata document.
type ModelInfo struct {
	Description string              `json:"description"`
	R2Score     float64             `json:"r2_score"`
	MSE         float64             `json:"mse"`
	TopFeatures []FeatureImportance `json:"top_features"`
	ModelPath   string              `json:"model_path"`
}

// Metadata is written once per training run and read by the server for
// diagnostics and explanations.
type Metadata struct {
	TrainingDate time.Time            `json:"training_date"`
	DatasetSize  int                  `json:"dataset_size"`
	Features     []string             `json:"features"`
	Settings     TrainingSettings     `json:"training_settings"`
	Models       map[string]ModelInfo `json:"models"`
}

// Storage is the interface used for model artifact persistence.
type Storage interface {
	// SaveModel writes the fitted model for the given target.
	SaveModel(bio.Target, *forest.Forest) error

	// OpenModel reads back the fitted model for the given target.
	OpenModel(bio.Target) (*forest.Forest, error)

	// SaveMetadata writes the metadata document.
	SaveMetadata(*Metadata) error

	// Metadata reads back the metadata document.
	Metadata() (*Metadata, error)

	// ModelFilename returns the file name of the given target's model.
	ModelFilename(bio.Target) string

	// Clear removes all artifacts.
	Clear() error
}

type storage struct {
	baseDir string
}

// New returns a new Storage instance rooted at baseDir.
func New(baseDir string) Storage {
	return &storage{baseDir: baseDir}
}

// SaveModel writes the fitted model for the given target.
func (s *storage) SaveModel(target bio.Target, f *forest.Forest) error {
	if err := os.MkdirAll(s.baseDir, 0700); err != nil {
		return err
	}

	file, err := os.OpenFile(s.ModelFilename(target), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := f.Encode(file); err != nil {
		// Do not leave a truncated artifact behind.
		os.Remove(s.ModelFilename(target))
		return err
	}
	return nil
}

// OpenModel reads back the fitted model for the given target.
func (s *storage) OpenModel(target bio.Target) (*forest.Forest, error) {
	file, err := os.Open(s.ModelFilename(target))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return forest.Decode(file)
}

// SaveMetadata writes the metadata document.
func (s *storage) SaveMetadata(md *Metadata) error {
	if err := os.MkdirAll(s.baseDir, 0700); err != nil {
		return err
	}

	b, err := json.MarshalIndent(md, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.metadataFilename(), b, 0600)
}

// Metadata reads back the metadata document.
func (s *storage) Metadata() (*Metadata, error) {
	b, err := os.ReadFile(s.metadataFilename())
	if err != nil {
		return nil, err
	}

	var md Metadata
	if err := json.Unmarshal(b, &md); err != nil {
		return nil, err
	}
	return &md, nil
}

// Clear removes all artifacts.
func (s *storage) Clear() error {
	for _, target := range bio.Targets {
		if err := os.Remove(s.ModelFilename(target)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	if err := os.Remove(s.metadataFilename()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ModelFilename returns the file name of the given target's model.
func (s *storage) ModelFilename(target bio.Target) string {
	return filepath.Join(s.baseDir, fmt.Sprintf("%s_%s.%s", target, ModelFileSuffix, ModelFileExt))
}

func (s *storage) metadataFilename() string {
	return filepath.Join(s.baseDir, MetadataFileName)
}
