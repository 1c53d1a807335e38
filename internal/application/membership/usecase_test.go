package membership_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorhub/portal-api/internal/application/membership"
	"github.com/creatorhub/portal-api/internal/application/notify"
	"github.com/creatorhub/portal-api/internal/domain"
	"github.com/creatorhub/portal-api/internal/domain/entity"
	"github.com/creatorhub/portal-api/pkg/logger"
)

const testUserID = "00000000-0000-0000-0000-000000000001"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	user            *entity.User
	updateTierCalls int
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error { r.user = u; return nil }

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if r.user != nil && r.user.ID == id {
		u := *r.user
		return &u, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.user != nil && r.user.Email == email {
		u := *r.user
		return &u, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, u *entity.User) error {
	r.user.Name, r.user.Phone, r.user.Bio, r.user.AvatarURL = u.Name, u.Phone, u.Bio, u.AvatarURL
	return nil
}

func (r *fakeUserRepo) UpdatePreferences(_ context.Context, _ string, prefs map[string]bool) error {
	r.user.Preferences = prefs
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, _, hash string) error {
	r.user.PasswordHash = hash
	return nil
}

func (r *fakeUserRepo) UpdateTier(_ context.Context, _, tier string) error {
	r.updateTierCalls++
	r.user.Tier = tier
	return nil
}

// fakeGateway registra las llamadas y devuelve el error configurado.
type fakeGateway struct {
	calls []membership.CheckoutRequest
	err   error
}

func (g *fakeGateway) Charge(_ context.Context, req membership.CheckoutRequest) error {
	g.calls = append(g.calls, req)
	return g.err
}

// fakeToastStore almacén en memoria sin expiración (suficiente para contar avisos).
type fakeToastStore struct{ toasts map[string][]entity.Toast }

func (s *fakeToastStore) Add(_ context.Context, userID string, t entity.Toast, _ time.Duration) error {
	if s.toasts == nil {
		s.toasts = make(map[string][]entity.Toast)
	}
	s.toasts[userID] = append(s.toasts[userID], t)
	return nil
}

func (s *fakeToastStore) List(_ context.Context, userID string) ([]entity.Toast, error) {
	return s.toasts[userID], nil
}

func (s *fakeToastStore) Remove(_ context.Context, userID, toastID string) error {
	out := s.toasts[userID][:0]
	for _, t := range s.toasts[userID] {
		if t.ID != toastID {
			out = append(out, t)
		}
	}
	s.toasts[userID] = out
	return nil
}

func premiumUser() *entity.User {
	return &entity.User{
		ID:            testUserID,
		Email:         "creator@example.com",
		Name:          "Alex",
		Tier:          entity.TierPremium,
		LoyaltyPoints: 2500,
		Status:        "active",
	}
}

func buildUseCase(repo *fakeUserRepo, gw *fakeGateway, store *fakeToastStore) *membership.UseCase {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return membership.NewUseCase(repo, gw, notify.NewService(store, log), log)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Las tarjetas reportan elegibilidad relativa al nivel actual: inferior
// bloqueada, actual deshabilitada, superiores elegibles.
func TestListTiers_Elegibilidad(t *testing.T) {
	repo := &fakeUserRepo{user: premiumUser()}
	uc := buildUseCase(repo, &fakeGateway{}, &fakeToastStore{})

	cards, err := uc.ListTiers(context.Background(), testUserID)
	require.NoError(t, err)
	require.Len(t, cards, 4)

	byName := map[string]string{}
	for _, c := range cards {
		byName[c.Name] = c.Eligibility
	}
	assert.Equal(t, "locked", byName[entity.TierFree])
	assert.Equal(t, "current", byName[entity.TierPremium])
	assert.Equal(t, "upgradeable", byName[entity.TierProfessional])
	assert.Equal(t, "upgradeable", byName[entity.TierElite])
}

func TestGetProgress_PremiumConPuntosIntermedios(t *testing.T) {
	repo := &fakeUserRepo{user: premiumUser()} // 2500 puntos, umbral premium=1000, professional=5000
	uc := buildUseCase(repo, &fakeGateway{}, &fakeToastStore{})

	progress, err := uc.GetProgress(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, entity.TierPremium, progress.CurrentTier)
	assert.Equal(t, entity.TierProfessional, progress.NextTier)
	assert.Equal(t, int64(1000), progress.CurrentThreshold)
	assert.Equal(t, int64(5000), progress.NextThreshold)
	assert.Equal(t, 37, progress.ProgressPercent, "(2500-1000)/(5000-1000) = 37.5 → 37")
}

func TestGetProgress_EliteSinSiguiente(t *testing.T) {
	user := premiumUser()
	user.Tier = entity.TierElite
	repo := &fakeUserRepo{user: user}
	uc := buildUseCase(repo, &fakeGateway{}, &fakeToastStore{})

	progress, err := uc.GetProgress(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Empty(t, progress.NextTier)
	assert.Equal(t, 100, progress.ProgressPercent)
}

// Pago exitoso: se persiste el nuevo nivel, se relee el perfil y se emite
// aviso de éxito.
func TestUpgrade_Exitoso(t *testing.T) {
	repo := &fakeUserRepo{user: premiumUser()}
	gw := &fakeGateway{}
	store := &fakeToastStore{}
	uc := buildUseCase(repo, gw, store)

	profile, err := uc.Upgrade(context.Background(), testUserID, entity.TierProfessional)
	require.NoError(t, err)

	require.Len(t, gw.calls, 1)
	assert.Equal(t, entity.TierPremium, gw.calls[0].CurrentTier)
	assert.Equal(t, entity.TierProfessional, gw.calls[0].TargetTier)
	assert.Equal(t, "creator@example.com", gw.calls[0].Email)

	assert.Equal(t, 1, repo.updateTierCalls)
	assert.Equal(t, entity.TierProfessional, profile.Tier, "el perfil releído refleja el nuevo nivel")
	assert.Equal(t, int64(2500), profile.LoyaltyPoints, "los puntos no cambian con el upgrade")

	toasts := store.toasts[testUserID]
	require.Len(t, toasts, 1)
	assert.Equal(t, entity.ToastSuccess, toasts[0].Kind)
}

// Pago rechazado: aviso de error y ninguna mutación de estado.
func TestUpgrade_PagoRechazado(t *testing.T) {
	repo := &fakeUserRepo{user: premiumUser()}
	gw := &fakeGateway{err: errors.New("tarjeta rechazada")}
	store := &fakeToastStore{}
	uc := buildUseCase(repo, gw, store)

	_, err := uc.Upgrade(context.Background(), testUserID, entity.TierElite)
	require.ErrorIs(t, err, domain.ErrPaymentDeclined)

	assert.Equal(t, 0, repo.updateTierCalls, "no debe persistirse ningún cambio de nivel")
	assert.Equal(t, entity.TierPremium, repo.user.Tier)

	toasts := store.toasts[testUserID]
	require.Len(t, toasts, 1)
	assert.Equal(t, entity.ToastError, toasts[0].Kind)
}

// El nivel actual y los inferiores no son elegibles: nunca se llama al gateway.
func TestUpgrade_SinDowngradeNiNivelActual(t *testing.T) {
	repo := &fakeUserRepo{user: premiumUser()}
	gw := &fakeGateway{}
	uc := buildUseCase(repo, gw, &fakeToastStore{})
	ctx := context.Background()

	_, err := uc.Upgrade(ctx, testUserID, entity.TierPremium)
	assert.ErrorIs(t, err, domain.ErrTierNotUpgradeable)

	_, err = uc.Upgrade(ctx, testUserID, entity.TierFree)
	assert.ErrorIs(t, err, domain.ErrTierNotUpgradeable)

	_, err = uc.Upgrade(ctx, testUserID, "platinum")
	assert.ErrorIs(t, err, domain.ErrUnknownTier)

	assert.Empty(t, gw.calls, "el colaborador de pagos no debe invocarse")
}
