package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"rehab-roi/domain"
)

var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository loads the financial profile of a stored renovation project.
type ProjectRepository interface {
	GetProjectInput(ctx context.Context, id uuid.UUID) (domain.ROIInput, error)
}
