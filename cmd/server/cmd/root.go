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
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	logger "github.com/tmrcoders06-design/BioSentienceAI/internal/bslog"
	"github.com/tmrcoders06-design/BioSentienceAI/internal/bslog/logcore"
	"github.com/tmrcoders06-design/BioSentienceAI/server"
	"github.com/tmrcoders06-design/BioSentienceAI/server/config"
	"github.com/tmrcoders06-design/BioSentienceAI/version"
)

// ServerEnvPrefix is the environment prefix for viper. Both BindEnv and
// AutomaticEnv will use this prefix.
const ServerEnvPrefix = "biosentience_server"

const gracefulStopTimeout = 10 * time.Second

var (
	cfg     *config.Config
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "biosentience-server",
	Short: "the analysis API server of biosentience",
	Long: `Server is a long-running process that loads the trained models once at startup
and serves predictions, explanations and parameter-sweep simulations over HTTP.`,
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
		if err := logger.InitServer(cfg.Verbose, cfg.Console, cfg.Log.Dir, rotate); err != nil {
			return errors.Wrap(err, "init server logger")
		}

		return runServer()
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
	// Initialize default server config.
	cfg = config.New()

	// Initialize cobra.
	cobra.OnInitialize(initConfig)

	// Add flags.
	flagSet := rootCmd.Flags()
	flagSet.BoolVar(&cfg.Console, "console", cfg.Console, "log to stdout instead of files")
	flagSet.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "print verbose log and enable golang debug info")
	flagSet.IntVar(&cfg.Server.Port, "port", cfg.Server.Port, "port is the port that server listens on")
	flagSet.StringVar(&cfgFile, "config", "", "the path of server's configuration file")

	rootCmd.AddCommand(version.VersionCmd)
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("server")
		viper.AddConfigPath(".")
		viper.AddConfigPath("config")
	}

	viper.SetEnvPrefix(ServerEnvPrefix)
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

func runServer() error {
	logger.Infof("%s", version.Version())

	svr, err := server.New(cfg)
	if err != nil {
		return err
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		logger.Infof("received signal %s, stopping server", sig)

		ctx, cancel := context.WithTimeout(context.Background(), gracefulStopTimeout)
		defer cancel()
		if err := svr.Stop(ctx); err != nil {
			logger.Errorf("stop server: %s", err)
		}
	}()

	return svr.Serve()
}
