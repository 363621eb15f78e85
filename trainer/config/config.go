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

package config

import "errors"

type Config struct {
	// Verbose prints debug level logs.
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`

	// Console logs to stdout instead of files.
	Console bool `yaml:"console" mapstructure:"console"`

	// Dataset configuration.
	Dataset DatasetConfig `yaml:"dataset" mapstructure:"dataset"`

	// Train configuration.
	Train TrainConfig `yaml:"train" mapstructure:"train"`

	// Storage configuration.
	Storage StorageConfig `yaml:"storage" mapstructure:"storage"`

	// Log configuration.
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

type DatasetConfig struct {
	// Path is the labeled CSV dataset.
	Path string `yaml:"path" mapstructure:"path"`
}

type TrainConfig struct {
	// Seed drives the train/test shuffle and bootstrap sampling.
	Seed int64 `yaml:"seed" mapstructure:"seed"`

	// TestSplit is the held-out fraction, in (0, 1).
	TestSplit float64 `yaml:"testSplit" mapstructure:"testSplit"`

	// Trees is the ensemble size per target.
	Trees int `yaml:"trees" mapstructure:"trees"`

	// MaxDepth limits tree depth.
	MaxDepth int `yaml:"maxDepth" mapstructure:"maxDepth"`

	// MinSamplesSplit is the minimum node size eligible for a split.
	MinSamplesSplit int `yaml:"minSamplesSplit" mapstructure:"minSamplesSplit"`

	// MinSamplesLeaf is the minimum leaf size.
	MinSamplesLeaf int `yaml:"minSamplesLeaf" mapstructure:"minSamplesLeaf"`
}

type StorageConfig struct {
	// ModelDir is where model artifacts and metadata are written.
	ModelDir string `yaml:"modelDir" mapstructure:"modelDir"`
}

type LogConfig struct {
	// Dir is the log directory.
	Dir string `yaml:"dir" mapstructure:"dir"`

	// Maximum size in megabytes of log files before rotation.
	MaxSize int `yaml:"maxSize" mapstructure:"maxSize"`

	// Maximum number of days to retain old log files.
	MaxAge int `yaml:"maxAge" mapstructure:"maxAge"`

	// Maximum number of old log files to keep.
	MaxBackups int `yaml:"maxBackups" mapstructure:"maxBackups"`
}

// New default configuration.
func New() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Path: DefaultDatasetPath,
		},
		Train: TrainConfig{
			Seed:            DefaultSeed,
			TestSplit:       DefaultTestSplit,
			Trees:           DefaultTrees,
			MaxDepth:        DefaultMaxDepth,
			MinSamplesSplit: DefaultMinSamplesSplit,
			MinSamplesLeaf:  DefaultMinSamplesLeaf,
		},
		Storage: StorageConfig{
			ModelDir: DefaultModelDir,
		},
		Log: LogConfig{
			Dir:        DefaultLogDir,
			MaxSize:    DefaultLogRotateMaxSize,
			MaxAge:     DefaultLogRotateMaxAge,
			MaxBackups: DefaultLogRotateMaxBackups,
		},
	}
}

// Validate config parameters.
func (cfg *Config) Validate() error {
	if cfg.Dataset.Path == "" {
		return errors.New("dataset requires parameter path")
	}

	if cfg.Train.TestSplit <= 0 || cfg.Train.TestSplit >= 1 {
		return errors.New("train requires parameter testSplit in (0, 1)")
	}

	if cfg.Train.Trees <= 0 {
		return errors.New("train requires parameter trees")
	}

	if cfg.Train.MaxDepth <= 0 {
		return errors.New("train requires parameter maxDepth")
	}

	if cfg.Train.MinSamplesSplit < 2 {
		return errors.New("train requires parameter minSamplesSplit >= 2")
	}

	if cfg.Train.MinSamplesLeaf < 1 {
		return errors.New("train requires parameter minSamplesLeaf >= 1")
	}

	if cfg.Storage.ModelDir == "" {
		return errors.New("storage requires parameter modelDir")
	}

	return nil
}
