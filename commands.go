package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gallerygrid/pkg/gallery/devtools"
	"gallerygrid/pkg/gallery/items"
	"gallerygrid/pkg/gallery/renderer/ebiten"
	"gallerygrid/pkg/gallery/renderer/tui"
	"gallerygrid/pkg/gallery/view"
)

var (
	datasetPath string
	pageRef     string
	dumpDir     string
	sheetPath   string
	sheetWait   time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the gallery window",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(datasetPath)
		if err != nil {
			return err
		}
		r, err := ebiten.New(cfg, ds, logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		if cfg.Catalog.Watch {
			path := datasetPath
			if path == "" {
				path = cfg.Catalog.Dataset
			}
			r.Watch(ctx, path)
		}
		return r.Run()
	},
}

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the grid plan of a page",
	Long: `Builds the grid for a page without opening a window and prints one cell
per slot. Pages are "landing", "category:<id>" or "work:<id>".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, router, err := headlessView()
		if err != nil {
			return err
		}
		defer v.Close()

		plan := v.Grid().Plan()
		title := router.Page().Title(router.Dataset())
		if err := tui.New(cmd.OutOrStdout()).PrintPlan(plan, title); err != nil {
			return err
		}

		if dumpDir != "" {
			path, err := devtools.WriteLayoutDump(dumpDir, devtools.Snapshot{
				Title:  title,
				Plan:   plan,
				Camera: v.Camera(),
				Cell:   v.Grid().CellPeriod(),
				Live:   v.Cards(),
			})
			if err != nil {
				return err
			}
			logger.Info("layout dump written", zap.String("path", path))
		}
		return nil
	},
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render every card of a page into a PNG contact sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, _, err := headlessView()
		if err != nil {
			return err
		}
		defer v.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), sheetWait)
		defer cancel()

		path, err := devtools.SaveContactSheet(ctx, sheetPath, v.Factory(), v.Grid().Plan(), devtools.SheetOptions{
			ItemWidth:  cfg.Grid.ItemWidth,
			ItemHeight: cfg.Grid.ItemHeight,
			Loader:     v.Loader(),
		})
		if err != nil {
			return err
		}
		logger.Info("contact sheet written", zap.String("path", path))
		return nil
	},
}

// headlessView builds a CPU-only view showing the page named by --page.
func headlessView() (*view.View, *view.Router, error) {
	page, err := items.ParsePage(pageRef)
	if err != nil {
		return nil, nil, err
	}
	ds, err := loadDataset(datasetPath)
	if err != nil {
		return nil, nil, err
	}
	v, err := view.New(cfg, view.Deps{Logger: logger})
	if err != nil {
		return nil, nil, err
	}
	router := view.NewRouter(v, ds)
	if err := router.Go(page); err != nil {
		v.Close()
		return nil, nil, err
	}
	return v, router, nil
}

func init() {
	for _, c := range []*cobra.Command{runCmd, layoutCmd, snapshotCmd} {
		c.Flags().StringVar(&datasetPath, "dataset", "", "dataset YAML file (default from config)")
	}
	for _, c := range []*cobra.Command{layoutCmd, snapshotCmd} {
		c.Flags().StringVar(&pageRef, "page", "landing", "page to build: landing, category:<id> or work:<id>")
	}
	layoutCmd.Flags().StringVar(&dumpDir, "dump", "", "also write layout.txt into this directory")
	snapshotCmd.Flags().StringVarP(&sheetPath, "out", "o", "sheet.png", "output PNG path")
	snapshotCmd.Flags().DurationVar(&sheetWait, "wait", 30*time.Second, "how long to wait for card images")
}
