package notify

import (
	"context"
	"time"

	"github.com/creatorhub/portal-api/internal/domain/entity"
)

// ToastStore define el puerto del almacén de avisos transitorios.
// El almacén es responsable de la expiración: un toast agregado con ttl deja
// de aparecer en List una vez vencido, sin intervención del servicio.
type ToastStore interface {
	Add(ctx context.Context, userID string, toast entity.Toast, ttl time.Duration) error
	// List devuelve los toasts vivos del usuario, del más antiguo al más reciente.
	List(ctx context.Context, userID string) ([]entity.Toast, error)
	Remove(ctx context.Context, userID, toastID string) error
}
