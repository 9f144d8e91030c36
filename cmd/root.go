/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	homedir "github.com/mitchellh/go-homedir"
	seqbench "github.com/seqbench/seqbench"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "seqbench [sweep upper bound]",
	Short: "ordered-sequence benchmark harness",
	Long: `seqbench measures, for a sweep of sizes N, the cost of N ordered insertions
followed by N random-position removals against an array-backed and a
linked-node-backed integer sequence, and emits one timing row per N.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		config := seqbench.InitializeConfig()
		initLog(config)
		high, err := parseSweepBound(args, config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Usage: %s [optional: sweep upper bound, 0..%d]\n", os.Args[0], config.Sweep.Max)
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		universe, err := seqbench.LoadOrGenerate(config.Universe.FilePath, config.Universe.Size)
		if err != nil {
			log.Fatalf("failed to load integer pool %s: %s\n", config.Universe.FilePath, err)
		}
		csvSink, err := seqbench.NewCSVSink(config.OutputPath)
		if err != nil {
			log.Fatalf("failed to create output file %s: %s\n", config.OutputPath, err)
		}
		tableSink := seqbench.NewTableSink()
		sinks := []seqbench.Sink{csvSink, tableSink}
		if config.MongoDBURL != "" {
			mongoSink, err := seqbench.NewMongoSink(context.Background(), config.MongoDBURL, config.MongoDBDatabase, config.MongoDBCollection)
			if err != nil {
				log.Fatalf("failed to create mongodb sink: %s\n", err)
			}
			sinks = append(sinks, mongoSink)
		}
		err = seqbench.Sweep(universe, 0, high, config.Sweep.Repeats, seqbench.NewMultiSink(sinks...))
		if err != nil {
			log.Fatalf("sweep failed: %s\n", err)
		}
		if err := csvSink.Close(); err != nil {
			log.Fatalf("failed to finalize output file %s: %s\n", config.OutputPath, err)
		}
		log.Infof("sweep results written to %s", config.OutputPath)
		tableSink.Render(os.Stdout)
	},
}

// parseSweepBound validates the optional positional argument: zero args give
// the configured default, one non-negative integer no larger than the
// configured maximum gives that bound, anything else is a usage error.
func parseSweepBound(args []string, config *seqbench.Config) (int, error) {
	if len(args) == 0 {
		return config.Sweep.Default, nil
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("expected at most one argument, got %d", len(args))
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("sweep upper bound must be an integer: %s", err.Error())
	}
	if n < 0 {
		return 0, fmt.Errorf("sweep upper bound must be non-negative")
	}
	if n > config.Sweep.Max {
		return 0, fmt.Errorf("sweep upper bound must not exceed %d", config.Sweep.Max)
	}
	return n, nil
}

func initLog(config *seqbench.Config) {
	if config.Logger.Output == "file" {
		writer, _ := rotatelogs.New(
			config.Logger.FilePath+".%Y%m%d",
			rotatelogs.WithLinkName(config.Logger.FilePath),
			rotatelogs.WithMaxAge(time.Duration(config.Logger.MaxAge)*time.Hour),
			rotatelogs.WithRotationTime(time.Duration(config.Logger.RotationTime)*time.Hour),
		)
		log.SetOutput(writer)
	} else {
		// stdout carries only the results table
		log.SetOutput(os.Stderr)
	}
	log.SetFormatter(&log.TextFormatter{})
	levelMap := make(map[string]log.Level)
	levelMap["panic"] = log.PanicLevel
	levelMap["fatal"] = log.FatalLevel
	levelMap["error"] = log.ErrorLevel
	levelMap["warn"] = log.WarnLevel
	levelMap["info"] = log.InfoLevel
	levelMap["debug"] = log.DebugLevel
	levelMap["trace"] = log.TraceLevel
	log.SetLevel(levelMap[strings.ToLower(config.Logger.Level)])
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/seqbench.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name "seqbench" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName("seqbench")
		viper.SetConfigType("yaml")
	}

	viper.SetDefault(seqbench.OutputPathField, seqbench.DefaultOutputPath)
	viper.SetDefault(seqbench.SweepDefaultField, seqbench.DefaultSweepSize)
	viper.SetDefault(seqbench.SweepMaxField, seqbench.MaxSweepSize)
	viper.SetDefault(seqbench.SweepRepeatsField, seqbench.DefaultRunsPerTest)
	viper.SetDefault(seqbench.UniverseSizeField, seqbench.DefaultUniverseSize)
	viper.SetDefault(seqbench.UniverseFilePathField, seqbench.DefaultUniverseFilePath)
	viper.SetDefault(seqbench.MongoDBDatabaseField, "seqbench")
	viper.SetDefault(seqbench.MongoDBCollectionField, "Sweep")
	viper.SetDefault(seqbench.LoggerOutputField, "stdout")
	viper.SetDefault(seqbench.LoggerFilePathField, "./seqbench.log")
	viper.SetDefault(seqbench.LoggerRotationTimeField, 24)
	viper.SetDefault(seqbench.LoggerMaxAgeField, 240)
	viper.SetDefault(seqbench.LoggerLevelField, "info")

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in; defaults cover its absence.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	} else {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Println("Error:", err.Error())
			os.Exit(1)
		}
	}
}
