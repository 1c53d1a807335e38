// Package notify implementa el ciclo de vida de los avisos transitorios
// (toasts): creado → visible → eliminado, con expiración automática a los
// 4 segundos o cierre manual. Varios toasts coexisten ordenados del más
// antiguo al más reciente y cada temporizador es independiente.
package notify

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/creatorhub/portal-api/internal/domain/entity"
	"github.com/creatorhub/portal-api/pkg/logger"
)

// Service encola y consulta toasts por usuario sobre el ToastStore.
type Service struct {
	store    ToastStore
	duration time.Duration
	log      *logger.Logger
}

// NewService construye el servicio con la duración fija de entity.ToastDuration.
func NewService(store ToastStore, log *logger.Logger) *Service {
	return &Service{store: store, duration: entity.ToastDuration, log: log.Component("toasts")}
}

// Push encola un toast con identificador aleatorio. Un fallo del almacén se
// registra y se descarta: un aviso nunca debe hacer fallar la acción que lo
// originó.
func (s *Service) Push(ctx context.Context, userID, kind, message string) {
	toast := entity.Toast{
		ID:        uuid.New().String(),
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := s.store.Add(ctx, userID, toast, s.duration); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Str("kind", kind).Msg("no se pudo encolar el toast")
	}
}

// Success encola un toast de éxito.
func (s *Service) Success(ctx context.Context, userID, message string) {
	s.Push(ctx, userID, entity.ToastSuccess, message)
}

// Error encola un toast de error.
func (s *Service) Error(ctx context.Context, userID, message string) {
	s.Push(ctx, userID, entity.ToastError, message)
}

// List devuelve los toasts vivos del usuario, del más antiguo al más reciente.
func (s *Service) List(ctx context.Context, userID string) ([]entity.Toast, error) {
	return s.store.List(ctx, userID)
}

// Dismiss elimina un toast manualmente antes de su expiración.
// Los temporizadores de los demás toasts no se ven afectados.
func (s *Service) Dismiss(ctx context.Context, userID, toastID string) error {
	return s.store.Remove(ctx, userID, toastID)
}
