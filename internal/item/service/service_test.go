package service

import (
	"context"
	"strings"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/coreapp/item-service/internal/item"
	"github.com/coreapp/item-service/internal/item/repository"
)

func TestService_CreateThenGetByName(t *testing.T) {
	svc := NewService(repository.NewMemoryRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, "Apple")
	require.NoError(t, err)

	got, err := svc.GetByName(ctx, "Apple")
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "Apple", got.Name)
}

func TestService_Validation(t *testing.T) {
	svc := NewService(repository.NewMemoryRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, "")
	require.ErrorIs(t, err, ErrInvalidName)

	_, err = svc.Create(ctx, strings.Repeat("x", item.MaxNameLen+1))
	require.ErrorIs(t, err, ErrInvalidName)

	// exactly at the bound is fine
	_, err = svc.Create(ctx, strings.Repeat("x", item.MaxNameLen))
	require.NoError(t, err)
}

func TestService_DuplicateAndMissing(t *testing.T) {
	svc := NewService(repository.NewMemoryRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, "Apple")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Apple")
	require.ErrorIs(t, err, ErrDuplicate)

	_, err = svc.GetByName(ctx, "Banana")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCachedService_ReadThrough(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})

	repo := repository.NewMemoryRepo()
	svc := NewCachedService(repo, client, time.Minute)
	ctx := context.Background()

	_, err = svc.Create(ctx, "Apple")
	require.NoError(t, err)

	// first read populates the cache
	got, err := svc.GetByName(ctx, "Apple")
	require.NoError(t, err)
	require.Equal(t, "Apple", got.Name)
	require.True(t, m.Exists("item:name:Apple"))

	// second read is served from Redis: plant a marker ID in the cached
	// value and observe it come back
	require.NoError(t, m.Set("item:name:Apple", `{"ID":999,"Name":"Apple"}`))
	got2, err := svc.GetByName(ctx, "Apple")
	require.NoError(t, err)
	require.Equal(t, uint(999), got2.ID)

	// expiry falls back to the repository
	m.FastForward(2 * time.Minute)
	got3, err := svc.GetByName(ctx, "Apple")
	require.NoError(t, err)
	require.Equal(t, got.ID, got3.ID)
}
