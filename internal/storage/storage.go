package storage

import (
	"time"

	"nrvtest/internal/config"
	"nrvtest/internal/domain"
)

// Storage persists and loads test run results (e.g. for the faills viewer).
type Storage interface {
	Save(results []domain.TestResult, failures []domain.TestFailure, duration time.Duration) (*domain.RunOutput, error)
	Load() (*domain.RunOutput, error)
	// SaveOutput writes the full output (e.g. after the viewer marks failures resolved).
	SaveOutput(output *domain.RunOutput) error
}

// JSONStorage stores results in a JSON file under the configured results path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's results JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
