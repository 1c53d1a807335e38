package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/creatorhub/portal-api/internal/domain"
	"github.com/creatorhub/portal-api/internal/domain/entity"
	"github.com/creatorhub/portal-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db DB
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db DB) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, email, password_hash, name, phone, bio, avatar_url, tier, loyalty_points, preferences, status, created_at, updated_at`

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Phone, user.Bio, user.AvatarURL,
		user.Tier, user.LoyaltyPoints, user.Preferences, user.Status,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByEmail obtiene un usuario por email. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return r.scanOne(ctx, query, email)
}

func (r *UserRepo) scanOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Phone, &u.Bio, &u.AvatarURL,
		&u.Tier, &u.LoyaltyPoints, &u.Preferences, &u.Status,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// UpdateProfile actualiza solo los campos editables del formulario de perfil.
func (r *UserRepo) UpdateProfile(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET name = $2, phone = $3, bio = $4, avatar_url = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Name, user.Phone, user.Bio, user.AvatarURL, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// UpdatePreferences reemplaza el mapa completo de preferencias de notificación.
func (r *UserRepo) UpdatePreferences(ctx context.Context, userID string, prefs map[string]bool) error {
	query := `UPDATE users SET preferences = $2, updated_at = $3 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, userID, prefs, time.Now())
	if err != nil {
		return fmt.Errorf("update preferences: %w", err)
	}
	return nil
}

// UpdatePassword actualiza el hash de contraseña.
func (r *UserRepo) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = $3 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, userID, passwordHash, time.Now())
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// UpdateTier persiste el nuevo nivel de membresía; los puntos no cambian.
func (r *UserRepo) UpdateTier(ctx context.Context, userID, tier string) error {
	query := `UPDATE users SET tier = $2, updated_at = $3 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, userID, tier, time.Now())
	if err != nil {
		return fmt.Errorf("update tier: %w", err)
	}
	return nil
}
