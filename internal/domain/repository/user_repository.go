package repository

import (
	"context"

	"github.com/creatorhub/portal-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las actualizaciones son parciales a propósito: perfil, preferencias,
// contraseña y membresía se persisten por separado, igual que los guarda
// cada pantalla.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// UpdateProfile persiste name, phone, bio y avatar_url.
	UpdateProfile(ctx context.Context, user *entity.User) error
	// UpdatePreferences reemplaza el mapa completo de preferencias.
	UpdatePreferences(ctx context.Context, userID string, prefs map[string]bool) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	// UpdateTier persiste el nivel tras un upgrade exitoso; los puntos no cambian.
	UpdateTier(ctx context.Context, userID, tier string) error
}
