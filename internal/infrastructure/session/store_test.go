package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-kam-api/internal/domain/entity"
)

func setupStore(t *testing.T) (*miniredis.Miniredis, *Store) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, NewStore(client, "app_user", 0)
}

func TestStore_SaveLoadClear(t *testing.T) {
	_, store := setupStore(t)
	ctx := context.Background()

	id := &entity.Identity{ID: "u1", Name: "Sari", Email: "sari@corp.id", Role: entity.RoleSales}
	require.NoError(t, store.Save(ctx, "sess-1", id))

	got, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got)

	require.NoError(t, store.Clear(ctx, "sess-1"))
	got, err = store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_LoadMissingSession(t *testing.T) {
	_, store := setupStore(t)

	got, err := store.Load(context.Background(), "no-such-session")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_LoadCorruptPayload(t *testing.T) {
	mr, store := setupStore(t)
	ctx := context.Background()

	// Un valor ilegible en el slot se descarta como "no autenticado" y se borra.
	require.NoError(t, mr.Set("app_user:sess-x", "{not-json"))

	got, err := store.Load(ctx, "sess-x")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, mr.Exists("app_user:sess-x"))
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	_, store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Clear(ctx, "never-existed"))
	require.NoError(t, store.Clear(ctx, "never-existed"))
}

func TestStore_SaveOverwritesPrevious(t *testing.T) {
	_, store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", &entity.Identity{ID: "u1", Role: entity.RoleSales}))
	require.NoError(t, store.Save(ctx, "sess-1", &entity.Identity{ID: "u1", Role: entity.RoleManager}))

	got, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.RoleManager, got.Role)
}

func TestStore_TTLExpiresSession(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewStore(client, "app_user", 30*time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", &entity.Identity{ID: "u1", Role: entity.RoleAdmin}))
	mr.FastForward(31 * time.Minute)

	got, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
