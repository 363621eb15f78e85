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

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestConfig_Load(t *testing.T) {
	config := &Config{
		Verbose: true,
		Console: true,
		Dataset: DatasetConfig{
			Path: "foo.csv",
		},
		Train: TrainConfig{
			Seed:            7,
			TestSplit:       0.25,
			Trees:           50,
			MaxDepth:        8,
			MinSamplesSplit: 4,
			MinSamplesLeaf:  3,
		},
		Storage: StorageConfig{
			ModelDir: "foo",
		},
		Log: LogConfig{
			Dir:        "foo",
			MaxSize:    512,
			MaxAge:     5,
			MaxBackups: 3,
		},
	}

	trainerConfigYAML := &Config{}
	contentYAML, _ := os.ReadFile("./testdata/trainer.yaml")
	if err := yaml.Unmarshal(contentYAML, &trainerConfigYAML); err != nil {
		t.Fatal(err)
	}

	assert := assert.New(t)
	assert.EqualValues(config, trainerConfigYAML)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		mock   func(cfg *Config)
		expect func(t *testing.T, err error)
	}{
		{
			name:   "valid config",
			config: New(),
			mock:   func(cfg *Config) {},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
			},
		},
		{
			name:   "dataset requires parameter path",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Dataset.Path = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "dataset requires parameter path")
			},
		},
		{
			name:   "train requires parameter testSplit in (0, 1)",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Train.TestSplit = 1
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "train requires parameter testSplit in (0, 1)")
			},
		},
		{
			name:   "train requires parameter trees",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Train.Trees = 0
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "train requires parameter trees")
			},
		},
		{
			name:   "train requires parameter maxDepth",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Train.MaxDepth = -1
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "train requires parameter maxDepth")
			},
		},
		{
			name:   "train requires parameter minSamplesSplit >= 2",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Train.MinSamplesSplit = 1
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "train requires parameter minSamplesSplit >= 2")
			},
		},
		{
			name:   "train requires parameter minSamplesLeaf >= 1",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Train.MinSamplesLeaf = 0
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "train requires parameter minSamplesLeaf >= 1")
			},
		},
		{
			name:   "storage requires parameter modelDir",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Storage.ModelDir = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "storage requires parameter modelDir")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mock(tc.config)
			tc.expect(t, tc.config.Validate())
		})
	}
}
