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
	// DefaultServerPort is the HTTP listen port.
	DefaultServerPort = 5000

	// DefaultModelDir is where the trainer left model artifacts.
	DefaultModelDir = "models"

	// DefaultDatasetPath backs the sample-data endpoint.
	DefaultDatasetPath = "data/sample_biological_data.csv"

	// DefaultUploadDir is the holding area for uploaded CSV files.
	DefaultUploadDir = "uploads"

	// DefaultMaxUploadSize caps CSV uploads at 16 megabytes.
	DefaultMaxUploadSize = 16 * 1024 * 1024

	// DefaultLogDir is the server log directory.
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
