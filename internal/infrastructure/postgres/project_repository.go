package postgres

import (
	"context"
	"fmt"

	"github.com/creatorhub/portal-api/internal/domain/entity"
	"github.com/creatorhub/portal-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implementación del puerto ProjectRepository sobre PostgreSQL.
type ProjectRepo struct {
	db DB
}

// NewProjectRepository construye el adaptador de persistencia para proyectos.
func NewProjectRepository(db DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// Create persiste un proyecto. No valida spent <= budget ni deriva progress:
// son campos independientes tal como llegan.
func (r *ProjectRepo) Create(ctx context.Context, p *entity.Project) error {
	query := `
		INSERT INTO projects (id, user_id, name, status, budget, spent, start_date, due_date, progress, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.UserID, p.Name, p.Status, p.Budget, p.Spent, p.StartDate, p.DueDate, p.Progress, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// ListByUser lista los proyectos del usuario, más recientes primero.
func (r *ProjectRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Project, error) {
	query := `
		SELECT id, user_id, name, status, budget, spent, start_date, due_date, progress, created_at
		FROM projects WHERE user_id = $1 ORDER BY start_date DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []*entity.Project
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Status, &p.Budget, &p.Spent, &p.StartDate, &p.DueDate, &p.Progress, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
