package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/PanelCut/internal/model"
)

func TestExportAndImportAllData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultPanelWidth = 18.0
	cfg.Theme = "light"

	spec := model.DefaultPanelSpec()
	spec.Top = model.HipMovingUp
	spec.TopJoiningSlope = 8
	jobs := []model.Job{model.NewJob("Garage hip", spec)}

	if err := ExportAllData(path, cfg, jobs); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}

	if backup.Version != BackupVersion {
		t.Errorf("expected version %s, got %s", BackupVersion, backup.Version)
	}
	if backup.CreatedAt == "" {
		t.Error("expected non-empty CreatedAt")
	}
	if backup.Config.DefaultPanelWidth != 18.0 {
		t.Errorf("expected DefaultPanelWidth=18.0, got %f", backup.Config.DefaultPanelWidth)
	}
	if backup.Config.Theme != "light" {
		t.Errorf("expected Theme=light, got %s", backup.Config.Theme)
	}
	if len(backup.Jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(backup.Jobs))
	}
	if backup.Jobs[0].Spec.Top != model.HipMovingUp || backup.Jobs[0].Spec.TopJoiningSlope != 8 {
		t.Errorf("job spec not preserved: %+v", backup.Jobs[0].Spec)
	}
}

func TestImportAllDataMissingFile(t *testing.T) {
	_, err := ImportAllData(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestImportAllDataInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json}"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ImportAllData(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestImportAllDataMissingVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noversion.json")
	data := []byte(`{"config":{"theme":"dark"}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ImportAllData(path)
	if err == nil {
		t.Fatal("expected error for missing version")
	}
}

func TestExportAllDataCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deep", "nested", "backup.json")

	cfg := model.DefaultAppConfig()
	if err := ExportAllData(path, cfg, nil); err != nil {
		t.Fatalf("ExportAllData should create parent dirs: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("backup file was not created")
	}
}

func TestImportAllDataNilCollections(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")
	data := []byte(`{"version":"1.0.0","created_at":"2025-01-01T00:00:00Z","config":{"recent_jobs":null},"jobs":null}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}
	if backup.Config.RecentJobs == nil {
		t.Error("RecentJobs should not be nil after import")
	}
	if backup.Jobs == nil {
		t.Error("Jobs should not be nil after import")
	}
}
