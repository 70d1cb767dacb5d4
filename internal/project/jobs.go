package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/PanelCut/internal/model"
)

// JobExtension is the file extension for saved jobs.
const JobExtension = ".panelcut"

// JobFileName returns a file name for the job, derived from its name.
func JobFileName(job model.Job) string {
	name := strings.TrimSpace(job.Name)
	if name == "" {
		name = job.ID
	}
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`/\:*?"<>|`, r) {
			return '_'
		}
		return r
	}, name)
	return name + JobExtension
}

// SaveJob writes a job to a JSON file, creating parent directories.
func SaveJob(path string, job model.Job) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create job directory: %w", err)
	}
	data, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write job file: %w", err)
	}
	return nil
}

// LoadJob reads a job file. The inputs are normalized the same way the form
// normalizes them, so a Ridge top or Eave bottom carries the working slope.
func LoadJob(path string) (model.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Job{}, fmt.Errorf("failed to read job file: %w", err)
	}
	var job model.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return model.Job{}, fmt.Errorf("failed to parse job file: %w", err)
	}
	if job.ID == "" {
		return model.Job{}, fmt.Errorf("invalid job file: missing id field")
	}
	job.Spec = job.Spec.Normalized()
	return job, nil
}
