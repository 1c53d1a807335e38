// Package membership contiene los casos de uso de la pantalla de membresía:
// la comparativa de niveles, el avance hacia el siguiente nivel y el upgrade
// a través del colaborador de pagos.
package membership

import (
	"context"
	"fmt"

	"github.com/creatorhub/portal-api/internal/application/dto"
	"github.com/creatorhub/portal-api/internal/application/notify"
	"github.com/creatorhub/portal-api/internal/domain"
	"github.com/creatorhub/portal-api/internal/domain/entity"
	domainmembership "github.com/creatorhub/portal-api/internal/domain/membership"
	"github.com/creatorhub/portal-api/internal/domain/repository"
	"github.com/creatorhub/portal-api/pkg/logger"
)

// UseCase agrupa las operaciones de membresía.
type UseCase struct {
	userRepo repository.UserRepository
	gateway  PaymentGateway
	toasts   *notify.Service
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(userRepo repository.UserRepository, gateway PaymentGateway, toasts *notify.Service, log *logger.Logger) *UseCase {
	return &UseCase{userRepo: userRepo, gateway: gateway, toasts: toasts, log: log.Component("membership")}
}

// ListTiers devuelve las cuatro tarjetas del catálogo con la elegibilidad
// calculada frente al nivel actual del usuario: igual índice → current,
// menor → locked (sin downgrade), estrictamente mayor → upgradeable.
func (uc *UseCase) ListTiers(ctx context.Context, userID string) ([]dto.TierCardDTO, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	cards := make([]dto.TierCardDTO, 0, len(entity.TierCatalog))
	for _, benefit := range entity.TierCatalog {
		cards = append(cards, dto.TierCardDTO{
			Name:         benefit.Name,
			Label:        benefit.Label,
			Icon:         benefit.Icon,
			Highlight:    benefit.Highlight,
			MonthlyPrice: benefit.MonthlyPrice,
			Threshold:    benefit.PointsThreshold,
			Features:     benefit.Features,
			Eligibility:  domainmembership.Eligibility(user.Tier, benefit.Name),
		})
	}
	return cards, nil
}

// GetProgress calcula la posición del usuario entre el umbral de su nivel y
// el del siguiente, recortada a [0,100]. En elite no hay siguiente nivel y el
// avance se reporta como 100.
func (uc *UseCase) GetProgress(ctx context.Context, userID string) (*dto.TierProgressDTO, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	current, ok := entity.TierBenefitByName(user.Tier)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTier, user.Tier)
	}

	out := &dto.TierProgressDTO{
		CurrentTier:      user.Tier,
		LoyaltyPoints:    user.LoyaltyPoints,
		CurrentThreshold: current.PointsThreshold,
		ProgressPercent:  domainmembership.Progress(user.LoyaltyPoints, user.Tier),
	}
	if next, ok := domainmembership.NextTier(user.Tier); ok {
		benefit, _ := entity.TierBenefitByName(next)
		out.NextTier = next
		out.NextThreshold = benefit.PointsThreshold
	}
	return out, nil
}

// Upgrade entrega la selección de nivel al colaborador de pagos y, solo si el
// pago se completa, persiste el nuevo nivel y relee el perfil desde el
// almacén para refrescar nivel y puntos mostrados. En caso de fallo del pago
// solo se emite un aviso de error, sin mutación de estado.
func (uc *UseCase) Upgrade(ctx context.Context, userID, targetTier string) (*dto.ProfileResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	target, ok := entity.TierBenefitByName(targetTier)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTier, targetTier)
	}
	if entity.TierIndex(targetTier) <= entity.TierIndex(user.Tier) {
		// tarjeta "current" o "locked": no hay camino de downgrade aquí
		return nil, domain.ErrTierNotUpgradeable
	}

	err = uc.gateway.Charge(ctx, CheckoutRequest{
		UserID:      user.ID,
		Email:       user.Email,
		Name:        user.Name,
		CurrentTier: user.Tier,
		TargetTier:  targetTier,
		Amount:      target.MonthlyPrice,
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("user_id", userID).Str("target_tier", targetTier).Msg("pago de upgrade rechazado")
		uc.toasts.Error(ctx, userID, "No se pudo completar el pago. Intenta de nuevo.")
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentDeclined, err)
	}

	if err := uc.userRepo.UpdateTier(ctx, userID, targetTier); err != nil {
		return nil, fmt.Errorf("persistir nuevo nivel: %w", err)
	}

	// Releer el perfil: la pantalla refresca nivel y puntos desde el almacén.
	refreshed, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if refreshed == nil {
		return nil, domain.ErrUserNotFound
	}

	uc.log.Info().Str("user_id", userID).Str("from", user.Tier).Str("to", targetTier).Msg("membresía actualizada")
	uc.toasts.Success(ctx, userID, fmt.Sprintf("¡Bienvenido a %s!", target.Label))
	return toProfileResponse(refreshed), nil
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
