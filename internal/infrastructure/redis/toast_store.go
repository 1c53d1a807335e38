// Package redis implementa el almacén de avisos transitorios (toasts) sobre
// Redis: una clave JSON con TTL por toast más un índice ZSET por usuario
// ordenado por instante de creación. La expiración la hace Redis; el índice
// se poda de forma perezosa en cada lectura.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/creatorhub/portal-api/internal/application/notify"
	"github.com/creatorhub/portal-api/internal/domain/entity"
	"github.com/creatorhub/portal-api/pkg/config"
)

var _ notify.ToastStore = (*ToastStore)(nil)

// ToastStore adaptador del puerto notify.ToastStore sobre Redis.
type ToastStore struct {
	client *redis.Client
}

// NewClient crea el cliente Redis desde la configuración de la app.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewToastStore construye el almacén con un cliente ya conectado.
func NewToastStore(client *redis.Client) *ToastStore {
	return &ToastStore{client: client}
}

func toastKey(userID, toastID string) string { return fmt.Sprintf("toasts:%s:%s", userID, toastID) }
func indexKey(userID string) string          { return fmt.Sprintf("toasts:%s:index", userID) }

// Add guarda el toast con su TTL y lo indexa por instante de creación.
// El índice hereda el TTL del toast más reciente, así desaparece solo cuando
// ya no queda ningún toast vivo.
func (s *ToastStore) Add(ctx context.Context, userID string, toast entity.Toast, ttl time.Duration) error {
	payload, err := json.Marshal(toast)
	if err != nil {
		return fmt.Errorf("marshal toast: %w", err)
	}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, toastKey(userID, toast.ID), payload, ttl)
	pipe.ZAdd(ctx, indexKey(userID), redis.Z{
		Score:  float64(toast.CreatedAt.UnixNano()),
		Member: toast.ID,
	})
	pipe.Expire(ctx, indexKey(userID), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("guardar toast: %w", err)
	}
	return nil
}

// List devuelve los toasts vivos del usuario, del más antiguo al más
// reciente. Las entradas del índice cuya clave ya expiró se eliminan aquí.
func (s *ToastStore) List(ctx context.Context, userID string) ([]entity.Toast, error) {
	ids, err := s.client.ZRange(ctx, indexKey(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("leer índice de toasts: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = toastKey(userID, id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("leer toasts: %w", err)
	}

	var toasts []entity.Toast
	var expired []interface{}
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// la clave expiró: podar el índice
			expired = append(expired, ids[i])
			continue
		}
		var t entity.Toast
		if err := json.Unmarshal([]byte(raw), &t); err != nil {
			expired = append(expired, ids[i])
			continue
		}
		toasts = append(toasts, t)
	}
	if len(expired) > 0 {
		_ = s.client.ZRem(ctx, indexKey(userID), expired...).Err()
	}
	return toasts, nil
}

// Remove elimina un toast manualmente. Los demás toasts y sus TTL no se tocan.
func (s *ToastStore) Remove(ctx context.Context, userID, toastID string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, toastKey(userID, toastID))
	pipe.ZRem(ctx, indexKey(userID), toastID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("eliminar toast: %w", err)
	}
	return nil
}
