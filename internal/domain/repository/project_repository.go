package repository

import (
	"context"

	"github.com/creatorhub/portal-api/internal/domain/entity"
)

// ProjectRepository define el puerto de persistencia para Project.
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Project, error)
}
