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

const (
	// DefaultDatasetPath is the committed sample dataset.
	DefaultDatasetPath = "data/sample_biological_data.csv"

	// DefaultModelDir is where model artifacts are written.
	DefaultModelDir = "models"

	// DefaultSeed fixes the train/test shuffle and the bootstrap sampling so
	// repeated runs produce identical models and metrics.
	DefaultSeed = 42

	// DefaultTestSplit is the held-out fraction of the dataset.
	DefaultTestSplit = 0.2

	// DefaultTrees is the ensemble size per target.
	DefaultTrees = 100

	// DefaultMaxDepth limits tree depth.
	DefaultMaxDepth = 10

	// DefaultMinSamplesSplit is the minimum node size eligible for a split.
	DefaultMinSamplesSplit = 5

	// DefaultMinSamplesLeaf is the minimum leaf size.
	DefaultMinSamplesLeaf = 2

	// DefaultLogDir is the trainer log directory.
	DefaultLogDir = "logs"

	// DefaultLogRotateMaxSize is the maximum size in megabytes of log files
	// before rotation.
	DefaultLogRotateMaxSize = 1024

	// DefaultLogRotateMaxAge is the maximum number of days to retain old
	// log files.
	DefaultLogRotateMaxAge = 7

	// DefaultLogRotateMaxBackups is the maximum number of old log files to keep.
	DefaultLogRotateMaxBackups = 20
)
