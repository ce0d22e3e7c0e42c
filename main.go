package main

import (
	"fmt"
	"os"

	"github.com/leonelquinteros/gotext"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gallerygrid/pkg/gallery/catalog"
	"gallerygrid/pkg/gallery/config"
	"gallerygrid/pkg/gallery/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Infinite card grid for browsing a portfolio",
	Long: `gallery shows works, categories and their details as an endless grid of
cards that wraps around in every direction. Drag to pan, click a card to open it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		level := cfg.Log.Level
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level, cfg.Log.Development)
		if err != nil {
			return err
		}

		initGettext(cfg.Locale)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./gallery.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.AddCommand(runCmd, layoutCmd, snapshotCmd, versionCmd)
}

func initGettext(l config.LocaleConfig) {
	gotext.Configure(l.Dir, l.Language, l.Domain)
}

func loadDataset(path string) (*catalog.Dataset, error) {
	if path == "" {
		path = cfg.Catalog.Dataset
	}
	ds, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Info("dataset loaded",
		zap.String("path", path),
		zap.Int("works", len(ds.Works)),
		zap.Int("categories", len(ds.Categories)),
	)
	return ds, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
