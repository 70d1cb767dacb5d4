package ui

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PanelCut/internal/engine"
	"github.com/piwi3910/PanelCut/internal/export"
	"github.com/piwi3910/PanelCut/internal/model"
	"github.com/piwi3910/PanelCut/internal/project"
	"github.com/piwi3910/PanelCut/internal/ui/widgets"
)

const appVersion = "1.0.0"

// App holds all application state and UI references.
type App struct {
	app     fyne.App
	window  fyne.Window
	logger  *slog.Logger
	config  model.AppConfig
	theme   *PanelCutTheme
	history *History
	library *project.Library

	job     model.Job
	jobPath string

	// Form widgets
	nameEntry        *widget.Entry
	directionSelect  *widget.Select
	startEntry       *widget.Entry
	widthEntry       *widget.Entry
	slopeEntry       *widget.Entry
	topSelect        *widget.Select
	topSlopeEntry    *widget.Entry
	topSlopeRow      *fyne.Container
	bottomSelect     *widget.Select
	bottomSlopeEntry *widget.Entry
	bottomSlopeRow   *fyne.Container

	report      *widget.RichText
	panelCanvas *widgets.PanelCanvas
}

// NewApp loads the saved configuration and starts a new job from its defaults.
func NewApp(application fyne.App, window fyne.Window, logger *slog.Logger) *App {
	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		logger.Warn("failed to load config, using defaults", "path", project.DefaultConfigPath(), "error", err)
		cfg = model.DefaultAppConfig()
	}

	a := &App{
		app:     application,
		window:  window,
		logger:  logger,
		config:  cfg,
		theme:   NewPanelCutTheme(cfg.Theme),
		history: NewHistory(),
	}
	lib, err := project.OpenLibrary(context.Background(), project.DefaultLibraryPath())
	if err != nil {
		logger.Warn("job library unavailable", "path", project.DefaultLibraryPath(), "error", err)
	} else {
		a.library = lib
	}

	a.job = a.newJob()
	application.Settings().SetTheme(a.theme)
	return a
}

// Close releases the job library.
func (a *App) Close() {
	if a.library == nil {
		return
	}
	if err := a.library.Close(); err != nil {
		a.logger.Warn("failed to close job library", "error", err)
	}
	a.library = nil
}

func (a *App) newJob() model.Job {
	spec := model.DefaultPanelSpec()
	a.config.ApplyToSpec(&spec)
	return model.NewJob("Untitled", spec)
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	recent := fyne.NewMenuItem("Open Recent", nil)
	recent.ChildMenu = a.recentJobsMenu()

	exportItem := fyne.NewMenuItem("Export", nil)
	exportItem.ChildMenu = fyne.NewMenu("",
		fyne.NewMenuItem("Cut Sheet (PDF)...", a.exportPDF),
		fyne.NewMenuItem("Panel Labels (PDF)...", a.exportLabels),
		fyne.NewMenuItem("Cut List (Excel)...", a.exportExcel),
		fyne.NewMenuItem("Panel Outline (DXF)...", a.exportDXF),
	)

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Job", a.resetJob),
		fyne.NewMenuItem("Open Job...", a.openJob),
		recent,
		fyne.NewMenuItem("Save Job...", a.saveJob),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save to Library", a.saveToLibrary),
		fyne.NewMenuItem("Job Library...", a.showLibraryDialog),
		fyne.NewMenuItemSeparator(),
		exportItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Backup / Restore...", a.showImportExportDialog),
		fyne.NewMenuItem("Settings...", a.showSettingsDialog),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.Close()
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", a.undo),
		fyne.NewMenuItem("Redo", a.redo),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", a.showAboutDialog),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, helpMenu))
}

func (a *App) recentJobsMenu() *fyne.Menu {
	if len(a.config.RecentJobs) == 0 {
		empty := fyne.NewMenuItem("No recent jobs", nil)
		empty.Disabled = true
		return fyne.NewMenu("", empty)
	}
	items := make([]*fyne.MenuItem, 0, len(a.config.RecentJobs))
	for _, path := range a.config.RecentJobs {
		p := path
		items = append(items, fyne.NewMenuItem(filepath.Base(p), func() {
			a.loadJobFrom(p)
		}))
	}
	return fyne.NewMenu("", items...)
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About PanelCut",
		"PanelCut - Metal Roof Panel Cut List\n\n"+
			"Calculates panel lengths and cut angles for standing seam\n"+
			"panels run against ridges, hips, eaves and valleys.\n\n"+
			"Version "+appVersion,
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	inputs := a.buildInputsPanel()
	results := a.buildResultsPanel()

	a.populateForm(a.job)
	a.calculate()

	split := container.NewHSplit(container.NewVScroll(inputs), results)
	split.SetOffset(0.3)
	return split
}

// ─── Inputs Panel ──────────────────────────────────────────

func (a *App) buildInputsPanel() fyne.CanvasObject {
	a.nameEntry = widget.NewEntry()
	a.nameEntry.SetPlaceHolder("Job name")

	directions := []string{model.LeftToRight.Arrow(), model.RightToLeft.Arrow()}
	a.directionSelect = widget.NewSelect(directions, nil)

	a.startEntry = widget.NewEntry()
	a.startEntry.SetPlaceHolder("Inches")
	a.widthEntry = widget.NewEntry()
	a.widthEntry.SetPlaceHolder("Inches")
	a.slopeEntry = widget.NewEntry()
	a.slopeEntry.SetPlaceHolder("Rise per 12")

	a.topSlopeEntry = widget.NewEntry()
	a.topSlopeEntry.SetPlaceHolder("Rise per 12")
	a.topSlopeRow = container.NewGridWithColumns(2, widget.NewLabel("Intersecting Slope"), a.topSlopeEntry)
	a.topSelect = widget.NewSelect(topConditionLabels(), func(selected string) {
		c, err := model.ParseTopCondition(selected)
		showIf(a.topSlopeRow, err == nil && c.HasJoiningPlane())
	})

	a.bottomSlopeEntry = widget.NewEntry()
	a.bottomSlopeEntry.SetPlaceHolder("Rise per 12")
	a.bottomSlopeRow = container.NewGridWithColumns(2, widget.NewLabel("Intersecting Slope"), a.bottomSlopeEntry)
	a.bottomSelect = widget.NewSelect(bottomConditionLabels(), func(selected string) {
		c, err := model.ParseBottomCondition(selected)
		showIf(a.bottomSlopeRow, err == nil && c.HasJoiningPlane())
	})

	calcBtn := widget.NewButtonWithIcon("Calculate", theme.ConfirmIcon(), a.calculate)
	calcBtn.Importance = widget.HighImportance

	resetBtn := newIconButtonWithTooltip(theme.ContentClearIcon(), "Reset inputs to the default job", a.resetJob)
	undoBtn := newIconButtonWithTooltip(theme.ContentUndoIcon(), "Undo last calculation", a.undo)
	redoBtn := newIconButtonWithTooltip(theme.ContentRedoIcon(), "Redo", a.redo)

	bold := fyne.TextStyle{Bold: true}
	return container.NewVBox(
		widget.NewLabelWithStyle("Job", fyne.TextAlignLeading, bold),
		a.nameEntry,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Panel", fyne.TextAlignLeading, bold),
		container.NewGridWithColumns(2,
			widget.NewLabel("Install Direction"), a.directionSelect,
			widget.NewLabel("Start Length (in)"), a.startEntry,
			widget.NewLabel("Panel Width (in)"), a.widthEntry,
			widget.NewLabel("Working Slope (x/12)"), a.slopeEntry,
		),
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Top", fyne.TextAlignLeading, bold),
		container.NewGridWithColumns(2, widget.NewLabel("Condition"), a.topSelect),
		a.topSlopeRow,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Bottom", fyne.TextAlignLeading, bold),
		container.NewGridWithColumns(2, widget.NewLabel("Condition"), a.bottomSelect),
		a.bottomSlopeRow,
		widget.NewSeparator(),
		container.NewHBox(calcBtn, layout.NewSpacer(), undoBtn, redoBtn, resetBtn),
	)
}

func showIf(obj fyne.CanvasObject, visible bool) {
	if visible {
		obj.Show()
	} else {
		obj.Hide()
	}
}

func topConditionLabels() []string {
	labels := make([]string, len(model.TopConditions))
	for i, c := range model.TopConditions {
		labels[i] = c.String()
	}
	return labels
}

func bottomConditionLabels() []string {
	labels := make([]string, len(model.BottomConditions))
	for i, c := range model.BottomConditions {
		labels[i] = c.String()
	}
	return labels
}

func (a *App) formValues() formValues {
	return formValues{
		Direction:   a.directionSelect.Selected,
		Start:       a.startEntry.Text,
		Width:       a.widthEntry.Text,
		Slope:       a.slopeEntry.Text,
		Top:         a.topSelect.Selected,
		TopSlope:    a.topSlopeEntry.Text,
		Bottom:      a.bottomSelect.Selected,
		BottomSlope: a.bottomSlopeEntry.Text,
	}
}

func (a *App) populateForm(job model.Job) {
	v := formFromSpec(job.Spec)
	a.nameEntry.SetText(job.Name)
	a.directionSelect.SetSelected(v.Direction)
	a.startEntry.SetText(v.Start)
	a.widthEntry.SetText(v.Width)
	a.slopeEntry.SetText(v.Slope)
	a.topSlopeEntry.SetText(v.TopSlope)
	a.bottomSlopeEntry.SetText(v.BottomSlope)
	a.topSelect.SetSelected(v.Top)
	a.bottomSelect.SetSelected(v.Bottom)
	a.updateTitle()
}

func (a *App) updateTitle() {
	a.window.SetTitle(fmt.Sprintf("PanelCut - %s", a.job.Name))
}

// ─── Results Panel ─────────────────────────────────────────

func (a *App) buildResultsPanel() fyne.CanvasObject {
	a.report = widget.NewRichText()
	a.report.Wrapping = fyne.TextWrapWord
	a.panelCanvas = widgets.NewPanelCanvas(model.PanelOutline{}, 360, 420)

	reportCard := widget.NewCard("Cut List", "", a.report)
	return container.NewVScroll(container.NewVBox(
		reportCard,
		widgets.RenderPanelShape(a.panelCanvas),
	))
}

func (a *App) showResult(result model.GeometryResult) {
	a.report.Segments = reportSegments(result.Report)
	a.report.Refresh()
	a.panelCanvas.SetOutline(engine.OutlineFor(a.job.Spec, result))
}

// ─── Actions ───────────────────────────────────────────────

// calculate reads the form, records the previous inputs for undo and
// recomputes the cut list.
func (a *App) calculate() {
	spec, err := parseForm(a.formValues())
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	if err := spec.Validate(); err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	name := strings.TrimSpace(a.nameEntry.Text)
	if name == "" {
		name = "Untitled"
	}
	if a.job.Result != nil && (spec != a.job.Spec || name != a.job.Name) {
		a.history.Push(MakeSnapshot(a.job, "Calculate"))
	}
	a.job.Name = name
	a.job.Spec = spec
	a.recompute()
}

func (a *App) recompute() {
	result := engine.Compute(a.job.Spec)
	a.job.Result = &result
	a.job.Touch()
	a.logger.Info("calculated cut list",
		"job", a.job.ID,
		"start", a.job.Spec.StartLength,
		"top", a.job.Spec.Top.String(),
		"bottom", a.job.Spec.Bottom.String(),
		"step", result.StepLength,
		"same_direction", result.SameDirection,
	)
	a.showResult(result)
	a.updateTitle()
}

func (a *App) restore(s Snapshot) {
	a.job.Name = s.Name
	a.job.Spec = s.Spec
	a.populateForm(a.job)
	a.recompute()
}

func (a *App) undo() {
	s, ok := a.history.Undo(MakeSnapshot(a.job, "Undo"))
	if !ok {
		return
	}
	a.restore(s)
}

func (a *App) redo() {
	s, ok := a.history.Redo(MakeSnapshot(a.job, "Redo"))
	if !ok {
		return
	}
	a.restore(s)
}

func (a *App) resetJob() {
	a.history.Clear()
	a.job = a.newJob()
	a.jobPath = ""
	a.populateForm(a.job)
	a.recompute()
}

func (a *App) saveJob() {
	if a.job.Result == nil {
		a.calculate()
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := project.SaveJob(path, a.job); err != nil {
			a.logger.Error("failed to save job", "path", path, "error", err)
			dialog.ShowError(err, a.window)
			return
		}
		a.jobPath = path
		a.logger.Info("saved job", "path", path, "job", a.job.ID)
		a.rememberJob(path)
	}, a.window)
	d.SetFileName(project.JobFileName(a.job))
	d.SetFilter(storage.NewExtensionFileFilter([]string{project.JobExtension}))
	d.Show()
}

func (a *App) openJob() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.loadJobFrom(reader.URI().Path())
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{project.JobExtension}))
	d.Show()
}

func (a *App) loadJobFrom(path string) {
	job, err := project.LoadJob(path)
	if err != nil {
		a.logger.Error("failed to open job", "path", path, "error", err)
		dialog.ShowError(err, a.window)
		return
	}
	a.history.Clear()
	a.job = job
	a.jobPath = path
	a.populateForm(a.job)
	a.recompute()
	a.rememberJob(path)
}

func (a *App) rememberJob(path string) {
	a.config.AddRecentJob(path)
	if err := a.saveConfig(); err != nil {
		a.logger.Warn("failed to save recent jobs", "error", err)
	}
	a.SetupMenus()
}

// exportFile asks for a destination and runs write against it.
func (a *App) exportFile(kind, ext string, write func(path string) error) {
	if a.job.Result == nil {
		dialog.ShowInformation("No results", "Calculate the cut list before exporting.", a.window)
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := write(path); err != nil {
			a.logger.Error("export failed", "kind", kind, "path", path, "error", err)
			dialog.ShowError(fmt.Errorf("failed to export %s: %w", kind, err), a.window)
			return
		}
		a.logger.Info("exported", "kind", kind, "path", path)
		dialog.ShowInformation("Export Complete", fmt.Sprintf("%s saved to %s", kind, path), a.window)
	}, a.window)
	d.SetFileName(strings.TrimSuffix(project.JobFileName(a.job), project.JobExtension) + ext)
	d.Show()
}

func (a *App) exportPDF() {
	a.exportFile("cut sheet", ".pdf", func(path string) error {
		result := *a.job.Result
		return export.ExportPDF(path, a.job, result, engine.OutlineFor(a.job.Spec, result))
	})
}

func (a *App) exportLabels() {
	a.exportFile("panel labels", "-labels.pdf", func(path string) error {
		return export.ExportLabels(path, a.job, *a.job.Result)
	})
}

func (a *App) exportExcel() {
	a.exportFile("cut list workbook", ".xlsx", func(path string) error {
		return export.ExportExcel(path, a.job, *a.job.Result)
	})
}

func (a *App) exportDXF() {
	a.exportFile("panel outline", ".dxf", func(path string) error {
		return export.ExportDXF(path, engine.OutlineFor(a.job.Spec, *a.job.Result))
	})
}
