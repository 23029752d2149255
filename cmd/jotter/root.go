package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/jotter"
)

var (
	verbose    bool
	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jotter",
	Short: "A small note-taking core with bounded open notes",
	Long: `jotter keeps notes in memory, lets a few of them be open at once
and tracks which one is being edited.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: nearest .jotter.yaml or jotter.yaml)")
}

// storeOptions resolves the config file, if any, into store options.
func storeOptions() ([]jotter.Option, error) {
	opts := []jotter.Option{jotter.WithLogger(slog.Default())}

	path := configPath
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		found, err := jotter.FindConfig(wd)
		if err != nil {
			slog.Debug("no config file found, using defaults", "dir", wd)
			return opts, nil
		}
		path = found
	}

	cfg, err := jotter.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("config loaded", "path", path)
	return append(opts, cfg.Options()...), nil
}

// openStore builds the store from flags and config, exiting on failure.
func openStore() *jotter.Store {
	opts, err := storeOptions()
	if err != nil {
		fatal("Failed to load config", err)
	}
	store, err := jotter.New(opts...)
	if err != nil {
		fatal("Failed to initialize jotter", err)
	}
	return store
}
