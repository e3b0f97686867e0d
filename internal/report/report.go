// Package report records what a generation run did: which pairs were
// visited, the commands issued and how long everything took.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Run statuses.
const (
	StatusRunning   = "running"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// RunReport is a complete record of one orchestration pass.
type RunReport struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Projects  []ProjectRecord `json:"projects"`
	Status    string          `json:"status"`
	Duration  int64           `json:"duration_ms"`
}

// ProjectRecord captures the outcome for one (definition, structure) pair.
type ProjectRecord struct {
	Definition string `json:"definition"`
	Structure  string `json:"structure"`
	TargetName string `json:"target_name"`
	Command    string `json:"command,omitempty"`
	Status     string `json:"status"`
	Duration   int64  `json:"duration_ms"`
}

// New creates a report for a run starting now.
func New() *RunReport {
	return &RunReport{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Status:    StatusRunning,
	}
}

// Finish marks the run complete and records its total duration.
func (r *RunReport) Finish(status string) {
	r.Status = status
	r.Duration = time.Since(r.Timestamp).Milliseconds()
}

// ToJSON serializes the report.
func (r *RunReport) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return data, nil
}

// FromJSON deserializes a report.
func FromJSON(data []byte) (*RunReport, error) {
	var r RunReport
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	return &r, nil
}

// Write persists the report to path.
func (r *RunReport) Write(path string) error {
	data, err := r.ToJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
