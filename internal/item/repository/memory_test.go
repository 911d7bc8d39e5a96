package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coreapp/item-service/internal/item"
)

func TestMemoryRepo_CreateThenGetByName(t *testing.T) {
	r := NewMemoryRepo()
	ctx := context.Background()

	apple := &item.Item{Name: "Apple"}
	require.NoError(t, r.Create(ctx, apple))
	require.NotZero(t, apple.ID)

	got, err := r.GetByName(ctx, "Apple")
	require.NoError(t, err)
	require.Equal(t, apple.ID, got.ID)
	require.Equal(t, "Apple", got.Name)

	_, err = r.GetByName(ctx, "Banana")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepo_DuplicateName(t *testing.T) {
	r := NewMemoryRepo()
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &item.Item{Name: "Apple"}))
	err := r.Create(ctx, &item.Item{Name: "Apple"})
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestMemoryRepo_List(t *testing.T) {
	r := NewMemoryRepo()
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &item.Item{Name: "Apple"}))
	require.NoError(t, r.Create(ctx, &item.Item{Name: "Pear"}))

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
}
