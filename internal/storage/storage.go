package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/prokizzle/fastlane-context-mcp/pkg/types"
)

// Storage defines the interface for persisting and querying analysis runs.
type Storage interface {
	// RecordRun persists one completed analysis run.
	RecordRun(ctx context.Context, run *AnalysisRun) error
	// GetRun fetches a run by id.
	GetRun(ctx context.Context, id string) (*AnalysisRun, error)
	// ListRuns returns the most recent runs, newest first. An empty
	// rootPath lists runs for every project.
	ListRuns(ctx context.Context, rootPath string, limit int) ([]*AnalysisRun, error)

	Close() error
}

// AnalysisRun summarizes one completed project analysis: what was found and
// how long it took. Full analysis results are not persisted, only the
// counts needed for history.
type AnalysisRun struct {
	ID              string    `json:"id"`
	RootPath        string    `json:"root_path"`
	Platforms       int       `json:"platforms"`
	Lanes           int       `json:"lanes"`
	Signals         int       `json:"signals"`
	Recommendations int       `json:"recommendations"`
	DurationMs      int64     `json:"duration_ms"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewRun builds a run row from an analysis result.
func NewRun(analysis *types.ProjectAnalysis, duration time.Duration) *AnalysisRun {
	return &AnalysisRun{
		ID:              uuid.NewString(),
		RootPath:        analysis.RootPath,
		Platforms:       len(analysis.Platforms),
		Lanes:           len(analysis.Lanes),
		Signals:         len(analysis.Signals),
		Recommendations: len(analysis.Recommendations),
		DurationMs:      duration.Milliseconds(),
		CreatedAt:       time.Now().UTC(),
	}
}
