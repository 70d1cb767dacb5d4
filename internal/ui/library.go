package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PanelCut/internal/engine"
	"github.com/piwi3910/PanelCut/internal/model"
	"github.com/piwi3910/PanelCut/internal/project"
)

func (a *App) requireLibrary() bool {
	if a.library == nil {
		dialog.ShowInformation("Job Library", "The job library could not be opened. See the log for details.", a.window)
		return false
	}
	return true
}

func (a *App) saveToLibrary() {
	if !a.requireLibrary() {
		return
	}
	a.calculate()
	if err := a.library.Save(context.Background(), a.job); err != nil {
		a.logger.Error("failed to save job to library", "job", a.job.ID, "error", err)
		dialog.ShowError(err, a.window)
		return
	}
	a.logger.Info("saved job to library", "job", a.job.ID, "name", a.job.Name)
	dialog.ShowInformation("Saved", fmt.Sprintf("%q saved to the job library.", a.job.Name), a.window)
}

// showLibraryDialog lists the library with open and delete actions.
func (a *App) showLibraryDialog() {
	if !a.requireLibrary() {
		return
	}
	rows := container.NewVBox()
	var d dialog.Dialog

	var refresh func()
	refresh = func() {
		rows.RemoveAll()
		list, err := a.library.List(context.Background())
		if err != nil {
			rows.Add(widget.NewLabel(err.Error()))
			return
		}
		if len(list) == 0 {
			rows.Add(widget.NewLabel("No saved jobs yet. Use File > Save to Library."))
			return
		}

		rows.Add(container.NewGridWithColumns(5,
			widget.NewLabelWithStyle("Name", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Start", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Conditions", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Updated", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabel(""),
		))
		rows.Add(widget.NewSeparator())

		for _, s := range list {
			summary := s
			openBtn := newIconButtonWithTooltip(theme.FolderOpenIcon(), "Open this job", func() {
				a.openFromLibrary(summary.ID)
				d.Hide()
			})
			deleteBtn := newIconButtonWithTooltip(theme.DeleteIcon(), "Delete from library", func() {
				dialog.ShowConfirm("Delete Job", fmt.Sprintf("Delete %q from the library?", summary.Name), func(ok bool) {
					if !ok {
						return
					}
					if err := a.library.Delete(context.Background(), summary.ID); err != nil {
						dialog.ShowError(err, a.window)
					}
					refresh()
				}, a.window)
			})
			rows.Add(container.NewGridWithColumns(5,
				widget.NewLabel(summary.Name),
				widget.NewLabel(engine.FormatLength(summary.StartLength)),
				widget.NewLabel(fmt.Sprintf("%s / %s", summary.Bottom, summary.Top)),
				widget.NewLabel(summary.UpdatedAt),
				container.NewHBox(openBtn, deleteBtn),
			))
		}
	}
	refresh()

	d = dialog.NewCustom("Job Library", "Close", container.NewVScroll(rows), a.window)
	d.Resize(fyne.NewSize(760, 420))
	d.Show()
}

func (a *App) openFromLibrary(id string) {
	job, err := a.library.Get(context.Background(), id)
	if err != nil {
		a.logger.Error("failed to open library job", "job", id, "error", err)
		dialog.ShowError(err, a.window)
		return
	}
	a.history.Clear()
	a.job = job
	a.jobPath = ""
	a.populateForm(a.job)
	a.recompute()
}

// backupJobs gathers library jobs plus recent job files not already in the
// library.
func (a *App) backupJobs() []model.Job {
	var jobs []model.Job
	seen := make(map[string]bool)
	if a.library != nil {
		stored, err := a.library.All(context.Background())
		if err != nil {
			a.logger.Warn("failed to read library for backup", "error", err)
		}
		for _, job := range stored {
			seen[job.ID] = true
			jobs = append(jobs, job)
		}
	}
	for _, path := range a.config.RecentJobs {
		job, err := project.LoadJob(path)
		if err != nil {
			a.logger.Warn("skipping job in backup", "path", path, "error", err)
			continue
		}
		if !seen[job.ID] {
			seen[job.ID] = true
			jobs = append(jobs, job)
		}
	}
	return jobs
}
