package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorhub/portal-api/internal/domain/entity"
	redisstore "github.com/creatorhub/portal-api/internal/infrastructure/redis"
)

const testUserID = "00000000-0000-0000-0000-000000000001"

func newStore(t *testing.T) (*redisstore.ToastStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisstore.NewToastStore(client), mr
}

func toast(id, kind, message string, createdAt time.Time) entity.Toast {
	return entity.Toast{ID: id, Kind: kind, Message: message, CreatedAt: createdAt}
}

// Un toast creado en T está presente durante [T, T+duración) y ausente después.
func TestToastStore_ExpiraTrasLaDuracion(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	err := store.Add(ctx, testUserID, toast("t1", entity.ToastSuccess, "Perfil actualizado.", time.Now()), entity.ToastDuration)
	require.NoError(t, err)

	live, err := store.List(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, live, 1, "recién creado debe estar visible")
	assert.Equal(t, "Perfil actualizado.", live[0].Message)

	// justo antes de expirar sigue visible
	mr.FastForward(entity.ToastDuration - time.Millisecond)
	live, err = store.List(ctx, testUserID)
	require.NoError(t, err)
	assert.Len(t, live, 1)

	// pasada la duración desaparece
	mr.FastForward(2 * time.Millisecond)
	live, err = store.List(ctx, testUserID)
	require.NoError(t, err)
	assert.Empty(t, live, "expirado no debe listarse")
}

// Varios toasts coexisten ordenados del más antiguo al más reciente.
func TestToastStore_OrdenDeAntiguedad(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()
	base := time.Now()

	require.NoError(t, store.Add(ctx, testUserID, toast("t2", entity.ToastError, "segundo", base.Add(time.Second)), entity.ToastDuration))
	require.NoError(t, store.Add(ctx, testUserID, toast("t1", entity.ToastSuccess, "primero", base), entity.ToastDuration))
	require.NoError(t, store.Add(ctx, testUserID, toast("t3", entity.ToastSuccess, "tercero", base.Add(2*time.Second)), entity.ToastDuration))

	live, err := store.List(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, live, 3)
	assert.Equal(t, "primero", live[0].Message)
	assert.Equal(t, "segundo", live[1].Message)
	assert.Equal(t, "tercero", live[2].Message)
}

// El cierre manual de un toast no afecta los temporizadores de los demás.
func TestToastStore_CierreManualIndependiente(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.Add(ctx, testUserID, toast("t1", entity.ToastSuccess, "uno", now), entity.ToastDuration))
	require.NoError(t, store.Add(ctx, testUserID, toast("t2", entity.ToastError, "dos", now.Add(time.Millisecond)), entity.ToastDuration))

	require.NoError(t, store.Remove(ctx, testUserID, "t1"))

	live, err := store.List(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, "t2", live[0].ID)

	// el sobreviviente expira en su propio plazo
	mr.FastForward(entity.ToastDuration + time.Millisecond)
	live, err = store.List(ctx, testUserID)
	require.NoError(t, err)
	assert.Empty(t, live)
}

// Los toasts de un usuario no se mezclan con los de otro.
func TestToastStore_AisladoPorUsuario(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()
	otherUser := "00000000-0000-0000-0000-000000000002"

	require.NoError(t, store.Add(ctx, testUserID, toast("t1", entity.ToastSuccess, "mío", time.Now()), entity.ToastDuration))

	live, err := store.List(ctx, otherUser)
	require.NoError(t, err)
	assert.Empty(t, live)
}
