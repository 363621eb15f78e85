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

package logger

import (
	"path"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/tmrcoders06-design/BioSentienceAI/internal/bslog/logcore"
)

type logInitMeta struct {
	fileName             string
	setSugaredLoggerFunc func(*zap.SugaredLogger)
}

// InitServer wires the analysis server loggers, to files under dir unless
// console mode is requested.
func InitServer(verbose, console bool, dir string, rotate logcore.LogRotateConfig) error {
	if console {
		return createConsoleLogger(verbose)
	}

	meta := []logInitMeta{
		{
			fileName:             logcore.CoreLogFileName,
			setSugaredLoggerFunc: SetCoreLogger,
		},
		{
			fileName:             logcore.GinLogFileName,
			setSugaredLoggerFunc: SetGinLogger,
		},
	}

	return createFileLogger(verbose, meta, filepath.Join(dir, "server"), rotate)
}

// InitTrainer wires the trainer loggers.
func InitTrainer(verbose, console bool, dir string, rotate logcore.LogRotateConfig) error {
	if console {
		return createConsoleLogger(verbose)
	}

	meta := []logInitMeta{
		{
			fileName:             logcore.CoreLogFileName,
			setSugaredLoggerFunc: SetCoreLogger,
		},
	}

	return createFileLogger(verbose, meta, filepath.Join(dir, "trainer"), rotate)
}

func createConsoleLogger(verbose bool) error {
	levels = nil
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	log, err := config.Build(zap.AddCaller(), zap.AddStacktrace(zap.WarnLevel), zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	sugar := log.Sugar()
	SetCoreLogger(sugar)
	SetGinLogger(sugar)
	levels = append(levels, config.Level)
	return nil
}

func createFileLogger(verbose bool, meta []logInitMeta, logDir string, rotate logcore.LogRotateConfig) error {
	levels = nil
	for _, m := range meta {
		log, level, err := logcore.CreateLogger(path.Join(logDir, m.fileName), verbose, rotate)
		if err != nil {
			return err
		}

		m.setSugaredLoggerFunc(log.Sugar())
		levels = append(levels, level)
	}
	return nil
}
