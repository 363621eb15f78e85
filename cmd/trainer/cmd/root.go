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

package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	logger "github.com/tmrcoders06-design/BioSentienceAI/internal/bslog"
	"github.com/tmrcoders06-design/BioSentienceAI/internal/bslog/logcore"
	"github.com/tmrcoders06-design/BioSentienceAI/pkg/bio"
	"github.com/tmrcoders06-design/BioSentienceAI/trainer/config"
	"github.com/tmrcoders06-design/BioSentienceAI/trainer/storage"
	"github.com/tmrcoders06-design/BioSentienceAI/trainer/training"
	"github.com/tmrcoders06-design/BioSentienceAI/version"
)

// TrainerEnvPrefix is the environment prefix for viper.
const TrainerEnvPrefix = "biosentience_trainer"

var (
	cfg     *config.Config
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "biosentience-trainer",
	Short: "the offline model trainer of biosentience",
	Long: `Trainer is a one-shot pipeline that loads the labeled biological dataset,
fits one random forest regressor per prediction target, evaluates each on a
held-out split and persists the model artifacts consumed by the server.`,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Validate config.
		if err := cfg.Validate(); err != nil {
			return err
		}

		// Initialize logger.
		rotate := logcore.LogRotateConfig{
			MaxSize:    cfg.Log.MaxSize,
			MaxAge:     cfg.Log.MaxAge,
			MaxBackups: cfg.Log.MaxBackups,
		}
		if err := logger.InitTrainer(cfg.Verbose, cfg.Console, cfg.Log.Dir, rotate); err != nil {
			return errors.Wrap(err, "init trainer logger")
		}

		return runTrainer()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func init() {
	// Initialize default trainer config.
	cfg = config.New()

	// Initialize cobra.
	cobra.OnInitialize(initConfig)

	// Add flags.
	flagSet := rootCmd.Flags()
	flagSet.BoolVar(&cfg.Console, "console", cfg.Console, "log to stdout instead of files")
	flagSet.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "print verbose log and enable golang debug info")
	flagSet.StringVar(&cfg.Dataset.Path, "dataset", cfg.Dataset.Path, "the labeled CSV dataset to train on")
	flagSet.StringVar(&cfg.Storage.ModelDir, "model-dir", cfg.Storage.ModelDir, "the directory model artifacts are written to")
	flagSet.StringVar(&cfgFile, "config", "", "the path of trainer's configuration file")

	rootCmd.AddCommand(version.VersionCmd)
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("trainer")
		viper.AddConfigPath(".")
		viper.AddConfigPath("config")
	}

	viper.SetEnvPrefix(TrainerEnvPrefix)
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		logger.Debugf("using config file: %s", viper.ConfigFileUsed())
	}

	// Unmarshal config.
	if err := viper.Unmarshal(&cfg); err != nil {
		logger.Fatalf("cannot unmarshal config: %s", err)
	}
}

func runTrainer() error {
	logger.Infof("%s", version.Version())

	store := storage.New(cfg.Storage.ModelDir)
	md, err := training.New(cfg, store).Train()
	if err != nil {
		return err
	}

	for _, target := range bio.Targets {
		info := md.Models[string(target)]
		logger.WithTarget(string(target)).Infof("%s: R2=%.4f MSE=%.6f, saved to %s",
			info.Description, info.R2Score, info.MSE, info.ModelPath)
	}
	return nil
}
