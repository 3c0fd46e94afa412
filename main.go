// GioTally is a keypad calculator for the desktop.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nlyle/giotally/internal/config"
)

var (
	designWidth  = unit.Dp(270)
	designHeight = unit.Dp(420)
	controlInset = unit.Dp(6)
	cornerRadius = unit.Dp(3.5)

	barTextSize     = unit.Sp(13)
	pendingTextSize = unit.Sp(15)
	historyTextSize = unit.Sp(17)
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		themeName  string
		historyCap int
		maxInput   int
	)
	cmd := &cobra.Command{
		Use:           "giotally",
		Short:         "A keypad calculator with history and a light/dark theme",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("theme") {
				cfg.Theme = themeName
			}
			if cmd.Flags().Changed("history-cap") {
				cfg.HistoryCap = historyCap
			}
			if cmd.Flags().Changed("max-input") {
				cfg.MaxInput = maxInput
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger.Info("starting",
				zap.String("theme", cfg.Theme),
				zap.Int("history_cap", cfg.HistoryCap),
				zap.Int("max_input", cfg.MaxInput))

			run(cfg, logger)
			return nil
		},
	}

	defaults := config.Default()
	cmd.Flags().StringVar(&configPath, "config", defaultConfigPath(), "path to the config file")
	cmd.Flags().StringVar(&themeName, "theme", defaults.Theme, "initial theme (dark or light)")
	cmd.Flags().IntVar(&historyCap, "history-cap", defaults.HistoryCap, "number of history entries kept")
	cmd.Flags().IntVar(&maxInput, "max-input", defaults.MaxInput, "maximum typed operand length")
	return cmd
}

// defaultConfigPath is the per-user config file location.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "giotally.yaml"
	}
	return filepath.Join(dir, "giotally", "config.yaml")
}

// newTheme builds the material theme with the bundled Go fonts.
func newTheme() *material.Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.NoSystemFonts(), text.WithCollection(gofont.Collection()))
	return th
}

// run opens the window and blocks until the app exits.
func run(cfg config.Config, logger *zap.Logger) {
	ui := newUI(newTheme(), cfg, logger)

	go func() {
		w := app.NewWindow(
			app.Title("GioTally"),
			app.Size(designWidth, designHeight),
			app.StatusColor(ui.pal.Background),
			app.NavigationColor(ui.pal.Background),
			app.PortraitOrientation.Option(),
		)
		w.Option(app.MinSize(designWidth, designHeight))

		err := loop(w, ui)
		if err != nil {
			logger.Error("window closed", zap.Error(err))
		}
		_ = logger.Sync()
		if err != nil {
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

// loop is the main loop of the app.
func loop(w *app.Window, ui *calcUI) error {
	var ops op.Ops
	for {
		switch e := w.NextEvent().(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			paint.Fill(gtx.Ops, ui.pal.Background)
			ui.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}
