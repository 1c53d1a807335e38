// Package settings contiene los casos de uso de la pantalla de ajustes:
// perfil, preferencias de notificación y cambio de contraseña.
package settings

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/creatorhub/portal-api/internal/application/dto"
	"github.com/creatorhub/portal-api/internal/application/notify"
	"github.com/creatorhub/portal-api/internal/domain"
	"github.com/creatorhub/portal-api/internal/domain/entity"
	"github.com/creatorhub/portal-api/internal/domain/repository"
	"github.com/creatorhub/portal-api/pkg/logger"
)

// UseCase agrupa las operaciones de ajustes de cuenta.
type UseCase struct {
	userRepo repository.UserRepository
	toasts   *notify.Service
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(userRepo repository.UserRepository, toasts *notify.Service, log *logger.Logger) *UseCase {
	return &UseCase{userRepo: userRepo, toasts: toasts, log: log.Component("settings")}
}

// GetProfile lee el perfil persistido. También lo usa el botón Cancelar del
// formulario: descartar el borrador es simplemente releer.
func (uc *UseCase) GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toProfileResponse(user), nil
}

// UpdateProfile persiste el borrador del formulario en el guardado explícito.
// Solo si la escritura tiene éxito se emite el aviso de éxito; si falla, el
// registro almacenado queda intacto y se emite aviso de error.
func (uc *UseCase) UpdateProfile(ctx context.Context, userID string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	user.Name = in.Name
	user.Phone = in.Phone
	user.Bio = in.Bio
	if in.AvatarURL != "" {
		user.AvatarURL = in.AvatarURL
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.UpdateProfile(ctx, user); err != nil {
		uc.toasts.Error(ctx, userID, "No se pudo guardar el perfil.")
		return nil, err
	}
	uc.toasts.Success(ctx, userID, "Perfil actualizado.")
	return toProfileResponse(user), nil
}

// SetPreference aplica un toggle de notificación de forma optimista: el mapa
// devuelto siempre refleja el cambio, y un fallo de persistencia solo se
// registra (ventana de inconsistencia aceptada; cada toggle es idempotente,
// por lo que el orden de persistencia entre toggles rápidos no se garantiza).
func (uc *UseCase) SetPreference(ctx context.Context, userID string, in dto.PreferenceToggleRequest) (*dto.PreferencesResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	prefs := user.Preferences
	if prefs == nil {
		prefs = entity.DefaultPreferences()
	}
	prefs[in.Key] = in.Enabled

	if err := uc.userRepo.UpdatePreferences(ctx, userID, prefs); err != nil {
		uc.log.Warn().Err(err).Str("user_id", userID).Str("pref", in.Key).
			Msg("no se pudo persistir la preferencia; el toggle aplicado no se revierte")
	}
	return &dto.PreferencesResponse{Preferences: prefs}, nil
}

// ChangePassword valida que la nueva contraseña y su confirmación sean no
// vacías e iguales antes de tocar el almacén; con datos inválidos no se hace
// ninguna llamada remota. Luego verifica la contraseña actual, hashea con
// bcrypt y persiste.
func (uc *UseCase) ChangePassword(ctx context.Context, userID string, in dto.ChangePasswordRequest) error {
	if in.NewPassword == "" || in.ConfirmPassword == "" || in.NewPassword != in.ConfirmPassword {
		uc.toasts.Error(ctx, userID, "Las contraseñas no coinciden.")
		return domain.ErrPasswordMismatch
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		uc.toasts.Error(ctx, userID, "La contraseña actual no es correcta.")
		return domain.ErrUnauthorized
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := uc.userRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		uc.toasts.Error(ctx, userID, "No se pudo actualizar la contraseña.")
		return err
	}
	uc.toasts.Success(ctx, userID, "Contraseña actualizada.")
	return nil
}

func toProfileResponse(u *entity.User) *dto.ProfileResponse {
	if u == nil {
		return nil
	}
	return &dto.ProfileResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Phone:         u.Phone,
		Bio:           u.Bio,
		AvatarURL:     u.AvatarURL,
		Tier:          u.Tier,
		LoyaltyPoints: u.LoyaltyPoints,
		Preferences:   u.Preferences,
		Status:        u.Status,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
