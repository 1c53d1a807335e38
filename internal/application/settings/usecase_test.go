package settings_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/creatorhub/portal-api/internal/application/dto"
	"github.com/creatorhub/portal-api/internal/application/notify"
	"github.com/creatorhub/portal-api/internal/application/settings"
	"github.com/creatorhub/portal-api/internal/domain"
	"github.com/creatorhub/portal-api/internal/domain/entity"
	"github.com/creatorhub/portal-api/pkg/logger"
)

const testUserID = "00000000-0000-0000-0000-000000000001"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeUserRepo cuenta cada tipo de llamada para poder afirmar "no hubo
// llamada remota" en los casos de validación.
type fakeUserRepo struct {
	user *entity.User

	getCalls            int
	updateProfileCalls  int
	updatePrefsCalls    int
	updatePasswordCalls int

	updateProfileErr error
	updatePrefsErr   error
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error { r.user = u; return nil }

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.getCalls++
	if r.user != nil && r.user.ID == id {
		u := *r.user
		return &u, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, u *entity.User) error {
	r.updateProfileCalls++
	if r.updateProfileErr != nil {
		return r.updateProfileErr
	}
	r.user.Name, r.user.Phone, r.user.Bio, r.user.AvatarURL = u.Name, u.Phone, u.Bio, u.AvatarURL
	return nil
}

func (r *fakeUserRepo) UpdatePreferences(_ context.Context, _ string, prefs map[string]bool) error {
	r.updatePrefsCalls++
	if r.updatePrefsErr != nil {
		return r.updatePrefsErr
	}
	r.user.Preferences = prefs
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, _, hash string) error {
	r.updatePasswordCalls++
	r.user.PasswordHash = hash
	return nil
}

func (r *fakeUserRepo) UpdateTier(_ context.Context, _, tier string) error {
	r.user.Tier = tier
	return nil
}

type fakeToastStore struct{ toasts []entity.Toast }

func (s *fakeToastStore) Add(_ context.Context, _ string, t entity.Toast, _ time.Duration) error {
	s.toasts = append(s.toasts, t)
	return nil
}

func (s *fakeToastStore) List(_ context.Context, _ string) ([]entity.Toast, error) {
	return s.toasts, nil
}

func (s *fakeToastStore) Remove(_ context.Context, _, _ string) error { return nil }

func (s *fakeToastStore) last(t *testing.T) entity.Toast {
	t.Helper()
	require.NotEmpty(t, s.toasts, "se esperaba al menos un toast")
	return s.toasts[len(s.toasts)-1]
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func seededUser(t *testing.T) *entity.User {
	return &entity.User{
		ID:           testUserID,
		Email:        "creator@example.com",
		PasswordHash: mustHash(t, "secreta-123"),
		Name:         "Alex",
		Bio:          "Creador de contenido",
		Tier:         entity.TierFree,
		Preferences:  entity.DefaultPreferences(),
		Status:       "active",
	}
}

func buildUseCase(repo *fakeUserRepo, store *fakeToastStore) *settings.UseCase {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return settings.NewUseCase(repo, notify.NewService(store, log), log)
}

// ──────────────────────────────────────────────────────────────────────────────
// Perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateProfile_GuardadoExitoso(t *testing.T) {
	repo := &fakeUserRepo{user: seededUser(t)}
	store := &fakeToastStore{}
	uc := buildUseCase(repo, store)

	profile, err := uc.UpdateProfile(context.Background(), testUserID, dto.UpdateProfileRequest{
		Name:  "Alex Rivera",
		Phone: "+57 300 123 4567",
		Bio:   "Video y streaming",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alex Rivera", profile.Name)
	assert.Equal(t, "Alex Rivera", repo.user.Name, "el borrador quedó persistido")
	assert.Equal(t, entity.ToastSuccess, store.last(t).Kind)
}

// Si la escritura falla, el registro almacenado queda intacto y el aviso es de error.
func TestUpdateProfile_FalloDejaEstadoPrevio(t *testing.T) {
	repo := &fakeUserRepo{user: seededUser(t), updateProfileErr: errors.New("conexión perdida")}
	store := &fakeToastStore{}
	uc := buildUseCase(repo, store)

	_, err := uc.UpdateProfile(context.Background(), testUserID, dto.UpdateProfileRequest{Name: "Otro"})
	require.Error(t, err)

	assert.Equal(t, "Alex", repo.user.Name, "el nombre persistido no cambió")
	assert.Equal(t, entity.ToastError, store.last(t).Kind)
}

// ──────────────────────────────────────────────────────────────────────────────
// Preferencias
// ──────────────────────────────────────────────────────────────────────────────

func TestSetPreference_AplicaYPersiste(t *testing.T) {
	repo := &fakeUserRepo{user: seededUser(t)}
	uc := buildUseCase(repo, &fakeToastStore{})

	out, err := uc.SetPreference(context.Background(), testUserID, dto.PreferenceToggleRequest{
		Key:     entity.PrefMarketingEmails,
		Enabled: true,
	})
	require.NoError(t, err)

	assert.True(t, out.Preferences[entity.PrefMarketingEmails])
	assert.Equal(t, 1, repo.updatePrefsCalls)
	assert.True(t, repo.user.Preferences[entity.PrefMarketingEmails])
}

// Un fallo de persistencia no revierte el toggle aplicado ni falla la operación.
func TestSetPreference_FalloDePersistenciaNoRevierte(t *testing.T) {
	repo := &fakeUserRepo{user: seededUser(t), updatePrefsErr: errors.New("timeout")}
	uc := buildUseCase(repo, &fakeToastStore{})

	out, err := uc.SetPreference(context.Background(), testUserID, dto.PreferenceToggleRequest{
		Key:     entity.PrefWeeklyDigest,
		Enabled: true,
	})
	require.NoError(t, err, "el fallo solo se registra, no se propaga")
	assert.True(t, out.Preferences[entity.PrefWeeklyDigest], "el mapa devuelto refleja el toggle")
	assert.Equal(t, 1, repo.updatePrefsCalls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Contraseña
// ──────────────────────────────────────────────────────────────────────────────

// Escenario del diseño: new="abc", confirm="xyz" → rechazo con aviso de error
// y SIN ninguna llamada remota.
func TestChangePassword_DesajusteSinLlamadaRemota(t *testing.T) {
	repo := &fakeUserRepo{user: seededUser(t)}
	store := &fakeToastStore{}
	uc := buildUseCase(repo, store)

	err := uc.ChangePassword(context.Background(), testUserID, dto.ChangePasswordRequest{
		CurrentPassword: "secreta-123",
		NewPassword:     "abc",
		ConfirmPassword: "xyz",
	})
	require.ErrorIs(t, err, domain.ErrPasswordMismatch)

	assert.Equal(t, 0, repo.getCalls, "con datos inválidos no se toca el almacén")
	assert.Equal(t, 0, repo.updatePasswordCalls)
	assert.Equal(t, entity.ToastError, store.last(t).Kind)
}

func TestChangePassword_CamposVacios(t *testing.T) {
	repo := &fakeUserRepo{user: seededUser(t)}
	uc := buildUseCase(repo, &fakeToastStore{})

	err := uc.ChangePassword(context.Background(), testUserID, dto.ChangePasswordRequest{
		CurrentPassword: "secreta-123",
	})
	require.ErrorIs(t, err, domain.ErrPasswordMismatch)
	assert.Equal(t, 0, repo.updatePasswordCalls)
}

func TestChangePassword_ActualIncorrecta(t *testing.T) {
	repo := &fakeUserRepo{user: seededUser(t)}
	store := &fakeToastStore{}
	uc := buildUseCase(repo, store)

	err := uc.ChangePassword(context.Background(), testUserID, dto.ChangePasswordRequest{
		CurrentPassword: "equivocada",
		NewPassword:     "nueva-clave-1",
		ConfirmPassword: "nueva-clave-1",
	})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, 0, repo.updatePasswordCalls)
	assert.Equal(t, entity.ToastError, store.last(t).Kind)
}

func TestChangePassword_Exitoso(t *testing.T) {
	repo := &fakeUserRepo{user: seededUser(t)}
	store := &fakeToastStore{}
	uc := buildUseCase(repo, store)

	err := uc.ChangePassword(context.Background(), testUserID, dto.ChangePasswordRequest{
		CurrentPassword: "secreta-123",
		NewPassword:     "nueva-clave-1",
		ConfirmPassword: "nueva-clave-1",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.updatePasswordCalls)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.user.PasswordHash), []byte("nueva-clave-1")),
		"el hash persistido corresponde a la nueva contraseña")
	assert.Equal(t, entity.ToastSuccess, store.last(t).Kind)
}
