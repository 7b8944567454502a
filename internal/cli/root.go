// Package cli implements the percolate command: a driver loop that feeds
// site coordinates into a percolation.Model and renders the result.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ReblochonMasque/percolation/internal/config"
)

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCommand builds the percolate command with its own viper instance,
// so tests can run it repeatedly without shared state.
func NewRootCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "percolate [row,col ...]",
		Short: "Open sites on a square grid and report whether it percolates",
		Long: "percolate opens the given 1-based sites in order on an n×n grid, " +
			"then prints the grid ('█' blocked, ' ' open, '.' full) and a summary. " +
			"With no arguments, sites are read from stdin, one \"row col\" or \"row,col\" pair per line.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			if err := readConfig(v, cfgFile); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			logger, err := newLogger(cfg.Verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			var sites []Site
			if len(args) > 0 {
				sites, err = ParseArgs(args)
			} else {
				sites, err = ParseLines(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			return Run(cmd.OutOrStdout(), cfg, sites, logger)
		},
	}

	cmd.Flags().String("config", "", "config file (default .percolate.yaml)")
	cmd.Flags().IntP("size", "n", 5, "grid side length")
	cmd.Flags().Bool("steps", false, "print the grid after every opened site")
	cmd.Flags().Bool("stop", true, "stop opening sites once the grid percolates")
	cmd.Flags().BoolP("verbose", "v", false, "verbose logging to stderr")

	_ = v.BindPFlag("size", cmd.Flags().Lookup("size"))
	_ = v.BindPFlag("show_steps", cmd.Flags().Lookup("steps"))
	_ = v.BindPFlag("stop_on_percolation", cmd.Flags().Lookup("stop"))
	_ = v.BindPFlag("verbose", cmd.Flags().Lookup("verbose"))

	return cmd
}

// readConfig loads an explicit config file, or an optional .percolate.yaml
// from the working or home directory, and enables PERCOLATE_* overrides.
func readConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(config.EnvPrefix)
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
		return nil
	}

	v.SetConfigName(".percolate")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	// It's fine if no config file is found; we use defaults.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	return nil
}

// newLogger returns a development logger on stderr when verbose, a no-op otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	return logger, nil
}
