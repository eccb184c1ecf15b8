package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"rehab-roi/domain"
)

// ProjectRepositoryMemory is an in-memory implementation of ProjectRepository.
type ProjectRepositoryMemory struct {
	mu       sync.RWMutex
	projects map[uuid.UUID]domain.ROIInput
}

// NewProjectRepositoryMemory creates a new in-memory project repository.
func NewProjectRepositoryMemory() *ProjectRepositoryMemory {
	return &ProjectRepositoryMemory{
		projects: make(map[uuid.UUID]domain.ROIInput),
	}
}

// Add stores a project and returns its generated id.
func (r *ProjectRepositoryMemory) Add(input domain.ROIInput) uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := uuid.New()
	r.projects[id] = input
	return id
}

func (r *ProjectRepositoryMemory) GetProjectInput(_ context.Context, id uuid.UUID) (domain.ROIInput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	input, ok := r.projects[id]
	if !ok {
		return domain.ROIInput{}, ErrProjectNotFound
	}
	return input, nil
}

// Seed loads projects from a JSON object keyed by project id. Each record is
// decoded on top of domain.DefaultROIInput, so absent fields keep defaults.
func (r *ProjectRepositoryMemory) Seed(src io.Reader) error {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(src).Decode(&raw); err != nil {
		return fmt.Errorf("decoding project seed: %w", err)
	}

	seeded := make(map[uuid.UUID]domain.ROIInput, len(raw))
	for key, record := range raw {
		id, err := uuid.Parse(key)
		if err != nil {
			return fmt.Errorf("project seed key %q: %w", key, err)
		}
		input := domain.DefaultROIInput()
		if err := json.Unmarshal(record, &input); err != nil {
			return fmt.Errorf("project seed %s: %w", id, err)
		}
		seeded[id] = input
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for id, input := range seeded {
		r.projects[id] = input
	}
	return nil
}
