package ui

import (
	"context"
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PanelCut/internal/model"
	"github.com/piwi3910/PanelCut/internal/project"
)

// showSettingsDialog displays the application settings editor.
func (a *App) showSettingsDialog() {
	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, nil)
	themeSelect.SetSelected(a.config.Theme)

	widthEntry := widget.NewEntry()
	widthEntry.SetText(fmt.Sprintf("%g", a.config.DefaultPanelWidth))
	slopeEntry := widget.NewEntry()
	slopeEntry.SetText(fmt.Sprintf("%g", a.config.DefaultWorkingSlope))

	directionSelect := widget.NewSelect([]string{model.LeftToRight.Arrow(), model.RightToLeft.Arrow()}, nil)
	directionSelect.SetSelected(a.config.DefaultDirection.Arrow())
	topSelect := widget.NewSelect(topConditionLabels(), nil)
	topSelect.SetSelected(a.config.DefaultTop.String())
	bottomSelect := widget.NewSelect(bottomConditionLabels(), nil)
	bottomSelect.SetSelected(a.config.DefaultBottom.String())

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Default Panel Width (in)", widthEntry),
		widget.NewFormItem("Default Working Slope (x/12)", slopeEntry),
		widget.NewFormItem("Default Install Direction", directionSelect),
		widget.NewFormItem("Default Top Condition", topSelect),
		widget.NewFormItem("Default Bottom Condition", bottomSelect),
	}

	d := dialog.NewForm("Settings", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			cfg := a.config
			var err error
			if cfg.DefaultPanelWidth, err = parseNumber("default panel width", widthEntry.Text); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			if cfg.DefaultPanelWidth <= 0 {
				dialog.ShowError(fmt.Errorf("default panel width must be > 0"), a.window)
				return
			}
			if cfg.DefaultWorkingSlope, err = parseNumber("default working slope", slopeEntry.Text); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			cfg.DefaultDirection, _ = model.ParseInstallDirection(directionSelect.Selected)
			cfg.DefaultTop, _ = model.ParseTopCondition(topSelect.Selected)
			cfg.DefaultBottom, _ = model.ParseBottomCondition(bottomSelect.Selected)
			cfg.Theme = themeSelect.Selected

			a.config = cfg
			a.theme.SetVariantName(cfg.Theme)
			a.app.Settings().SetTheme(a.theme)
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			} else {
				dialog.ShowInformation("Settings Saved", "Defaults apply to the next new job.", a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(480, 420))
	d.Show()
}

// restoreJobs stores backed up jobs in the library, or as files in the
// config directory added to the recent list when the library is unavailable.
func (a *App) restoreJobs(jobs []model.Job) (int, error) {
	if a.library != nil {
		for i, job := range jobs {
			if err := a.library.Save(context.Background(), job); err != nil {
				return i, err
			}
		}
		return len(jobs), nil
	}
	dir := filepath.Join(project.DefaultConfigDir(), "jobs")
	restored := 0
	for _, job := range jobs {
		path := filepath.Join(dir, project.JobFileName(job))
		if err := project.SaveJob(path, job); err != nil {
			return restored, err
		}
		a.config.AddRecentJob(path)
		restored++
	}
	return restored, nil
}

// showImportExportDialog displays the backup and restore dialog.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export All Data...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()
			path := writer.URI().Path()
			jobs := a.backupJobs()
			if err := project.ExportAllData(path, a.config, jobs); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.logger.Info("exported backup", "path", path, "jobs", len(jobs))
			dialog.ShowInformation("Export Complete",
				fmt.Sprintf("Settings and %d jobs exported to:\n%s", len(jobs), path), a.window)
		}, a.window)
		d.SetFileName("panelcut-backup.json")
		d.Show()
	})

	importBtn := widget.NewButton("Import All Data...", func() {
		dialog.ShowConfirm("Import Data",
			"Importing data will replace your current application settings.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					defer reader.Close()
					path := reader.URI().Path()
					backup, err := project.ImportAllData(path)
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					a.config = backup.Config
					restored, err := a.restoreJobs(backup.Jobs)
					if err != nil {
						dialog.ShowError(fmt.Errorf("failed to restore jobs: %w", err), a.window)
					}
					if err := a.saveConfig(); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported settings: %w", err), a.window)
						return
					}
					a.theme.SetVariantName(a.config.Theme)
					a.app.Settings().SetTheme(a.theme)
					a.SetupMenus()
					a.logger.Info("imported backup", "path", path, "jobs", restored)
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Restored settings and %d jobs from backup created at %s.", restored, backup.CreatedAt), a.window)
				}, a.window)
				d.Show()
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export settings and saved jobs to a backup file,\nor import from a previously exported backup."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Backup / Restore", "Close", content, a.window)
	d.Resize(fyne.NewSize(450, 250))
	d.Show()
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(project.DefaultConfigPath(), a.config)
}
