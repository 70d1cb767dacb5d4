package model

import (
	"time"

	"github.com/google/uuid"
)

// Job is a named, saved calculation: the inputs and, once calculated, the result.
type Job struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
	Spec      PanelSpec       `json:"spec"`
	Result    *GeometryResult `json:"result,omitempty"`
}

// NewJob creates a job for the given inputs with a fresh short ID.
func NewJob(name string, spec PanelSpec) Job {
	now := time.Now().UTC().Format(time.RFC3339)
	if name == "" {
		name = "Untitled"
	}
	return Job{
		ID:        uuid.New().String()[:8],
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
		Spec:      spec,
	}
}

// Touch updates the modification timestamp.
func (j *Job) Touch() {
	j.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
}
