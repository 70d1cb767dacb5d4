// PanelCut - Metal Roof Panel Cut List
//
// A cross-platform desktop application that calculates sequential panel
// lengths and cut angles for metal roof panels run against ridges, hips,
// eaves and valleys, and exports cut sheets, labels and outlines.
//
// Build:
//   go build -o panelcut ./cmd/panelcut
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o panelcut.exe ./cmd/panelcut
//   GOOS=darwin  GOARCH=amd64 go build -o panelcut-darwin ./cmd/panelcut
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64
//
// Set PANELCUT_LOG_LEVEL to debug, info, warn or error (default info) and
// PANELCUT_CONFIG to use a config file other than ~/.panelcut/config.json.

package main

import (
	"log/slog"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fynetooltip "github.com/dweymouth/fyne-tooltip"

	"github.com/piwi3910/PanelCut/internal/ui"
)

const logLevelEnv = "PANELCUT_LOG_LEVEL"

// logLevel maps a level name to a slog level, defaulting to info.
func logLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(os.Getenv(logLevelEnv)),
	}))

	application := app.NewWithID("com.piwi3910.panelcut")
	window := application.NewWindow("PanelCut - Metal Roof Panel Cut List")

	appUI := ui.NewApp(application, window, logger)
	appUI.SetupMenus()
	window.SetContent(fynetooltip.AddWindowToolTipLayer(appUI.Build(), window.Canvas()))
	window.Resize(fyne.NewSize(1100, 750))
	window.CenterOnScreen()

	logger.Info("starting PanelCut")
	window.ShowAndRun()
	appUI.Close()
}
