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

	// Server configuration.
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// Model configuration.
	Model ModelConfig `yaml:"model" mapstructure:"model"`

	// Dataset configuration.
	Dataset DatasetConfig `yaml:"dataset" mapstructure:"dataset"`

	// Upload configuration.
	Upload UploadConfig `yaml:"upload" mapstructure:"upload"`

	// Metrics configuration.
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`

	// Log configuration.
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

type ServerConfig struct {
	// Server port.
	Port int `yaml:"port" mapstructure:"port"`

	// AssetsDir serves the web front end when set.
	AssetsDir string `yaml:"assetsDir" mapstructure:"assetsDir"`
}

type ModelConfig struct {
	// Dir is the directory holding the trainer's artifacts.
	Dir string `yaml:"dir" mapstructure:"dir"`
}

type DatasetConfig struct {
	// Path is the training dataset backing the sample-data endpoint.
	Path string `yaml:"path" mapstructure:"path"`
}

type UploadConfig struct {
	// Dir is the holding area for uploaded CSV files.
	Dir string `yaml:"dir" mapstructure:"dir"`

	// MaxSize is the upload size limit in bytes.
	MaxSize int64 `yaml:"maxSize" mapstructure:"maxSize"`
}

type MetricsConfig struct {
	// Enable the prometheus endpoint.
	Enable bool `yaml:"enable" mapstructure:"enable"`
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
		Server: ServerConfig{
			Port: DefaultServerPort,
		},
		Model: ModelConfig{
			Dir: DefaultModelDir,
		},
		Dataset: DatasetConfig{
			Path: DefaultDatasetPath,
		},
		Upload: UploadConfig{
			Dir:     DefaultUploadDir,
			MaxSize: DefaultMaxUploadSize,
		},
		Metrics: MetricsConfig{
			Enable: false,
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
	if cfg.Server.Port <= 0 {
		return errors.New("server requires parameter port")
	}

	if cfg.Model.Dir == "" {
		return errors.New("model requires parameter dir")
	}

	if cfg.Dataset.Path == "" {
		return errors.New("dataset requires parameter path")
	}

	if cfg.Upload.Dir == "" {
		return errors.New("upload requires parameter dir")
	}

	if cfg.Upload.MaxSize <= 0 {
		return errors.New("upload requires parameter maxSize")
	}

	return nil
}
