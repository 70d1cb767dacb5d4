package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/PanelCut/internal/model"
)

func TestSaveAndLoadJob(t *testing.T) {
	dir := t.TempDir()

	spec := model.DefaultPanelSpec()
	spec.StartLength = 144
	spec.Bottom = model.ValleyMovingUp
	spec.BottomJoiningSlope = 4
	spec.Direction = model.RightToLeft
	job := model.NewJob("North valley", spec)

	path := filepath.Join(dir, JobFileName(job))
	if err := SaveJob(path, job); err != nil {
		t.Fatalf("SaveJob error: %v", err)
	}

	loaded, err := LoadJob(path)
	if err != nil {
		t.Fatalf("LoadJob error: %v", err)
	}
	if loaded.ID != job.ID {
		t.Errorf("expected ID %s, got %s", job.ID, loaded.ID)
	}
	if loaded.Spec != spec {
		t.Errorf("spec not preserved: got %+v, want %+v", loaded.Spec, spec)
	}
	if loaded.Result != nil {
		t.Error("job saved without a result should load without one")
	}
}

func TestLoadJobNormalizesSpec(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ridge.panelcut")
	data := []byte(`{"id":"abc12345","name":"Ridge","spec":{"working_slope":4,"panel_width":16,
		"top_condition":"Ridge","top_joining_slope":9,"bottom_condition":"Eave","bottom_joining_slope":9,
		"install_direction":"LTR"}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	job, err := LoadJob(path)
	if err != nil {
		t.Fatalf("LoadJob error: %v", err)
	}
	if job.Spec.TopJoiningSlope != 4 || job.Spec.BottomJoiningSlope != 4 {
		t.Errorf("expected joining slopes to follow working slope, got %f/%f",
			job.Spec.TopJoiningSlope, job.Spec.BottomJoiningSlope)
	}
}

func TestLoadJobErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadJob(filepath.Join(dir, "missing.panelcut")); err == nil {
		t.Error("expected error for missing file")
	}

	noID := filepath.Join(dir, "noid.panelcut")
	if err := os.WriteFile(noID, []byte(`{"name":"x"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadJob(noID); err == nil {
		t.Error("expected error for job without id")
	}

	badCondition := filepath.Join(dir, "bad.panelcut")
	if err := os.WriteFile(badCondition, []byte(`{"id":"a","spec":{"top_condition":"Gable"}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadJob(badCondition); err == nil {
		t.Error("expected error for unknown top condition")
	}
}

func TestJobFileName(t *testing.T) {
	job := model.NewJob("Shop: east/west", model.DefaultPanelSpec())
	if got := JobFileName(job); got != "Shop_ east_west.panelcut" {
		t.Errorf("unexpected file name %q", got)
	}

	job.Name = "  "
	if got := JobFileName(job); got != job.ID+JobExtension {
		t.Errorf("expected ID based name, got %q", got)
	}
}
