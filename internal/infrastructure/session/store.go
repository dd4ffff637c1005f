// Package session implementa el Session Store sobre Redis: un slot único de
// identidad por sesión, creado en el login y destruido en el logout.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/crm-kam-api/internal/domain/entity"
)

// Store guarda la Identity autenticada bajo la clave "<slot>:<sessionID>".
// TTL cero significa sin expiración.
type Store struct {
	client *redis.Client
	slot   string
	ttl    time.Duration
}

// NewStore construye el store sobre un cliente Redis ya conectado.
func NewStore(client *redis.Client, slot string, ttl time.Duration) *Store {
	return &Store{client: client, slot: slot, ttl: ttl}
}

func (s *Store) key(sessionID string) string {
	return s.slot + ":" + sessionID
}

// Save escribe la identidad de la sesión (reemplaza cualquier valor previo).
func (s *Store) Save(ctx context.Context, sessionID string, id *entity.Identity) error {
	payload, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("serializar identidad: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sessionID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	return nil
}

// Load lee la identidad de la sesión. Slot ausente devuelve (nil, nil): no es
// error, es "no autenticado". Un payload corrupto también devuelve (nil, nil)
// y borra el slot, igual que se descartaba un valor ilegible del storage.
func (s *Store) Load(ctx context.Context, sessionID string) (*entity.Identity, error) {
	payload, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	var id entity.Identity
	if err := json.Unmarshal(payload, &id); err != nil {
		_ = s.client.Del(ctx, s.key(sessionID)).Err()
		return nil, nil
	}
	return &id, nil
}

// Clear destruye la sesión. Es idempotente: borrar un slot inexistente no es
// error.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	return nil
}
