package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/contourhq/contour/internal/store"
	"github.com/contourhq/contour/internal/store/memory"
)

func TestStore_CreateGetUpdateDelete(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	rec, err := s.Create(ctx, "User", map[string]any{"email": "a@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID)

	got, ok, err := s.Get(ctx, "User", rec.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "a@example.com", got.Values["email"])

	updated, err := s.Update(ctx, "User", rec.ID, map[string]any{"email": "b@example.com"})
	require.NoError(t, err)
	require.Equal(t, "b@example.com", updated.Values["email"])

	deleted, err := s.Delete(ctx, "User", rec.ID)
	require.NoError(t, err)
	require.Equal(t, rec.ID, deleted.ID)

	_, ok, err = s.Get(ctx, "User", rec.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStore_UpdateMissingReturnsNotFound(t *testing.T) {
	s := memory.New()
	_, err := s.Update(context.Background(), "User", "missing", map[string]any{})
	require.Error(t, err)
	var notFound *store.ErrNotFound
	require.ErrorAs(t, err, &notFound)
}

func TestStore_ListPaginatesAndOrders(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	for _, name := range []string{"carol", "alice", "bob"} {
		_, err := s.Create(ctx, "User", map[string]any{"name": name})
		require.NoError(t, err)
	}

	res, err := s.List(ctx, "User", store.ListOptions{OrderBy: "name"})
	require.NoError(t, err)
	require.Equal(t, 3, res.Total)
	require.Equal(t, []any{"alice", "bob", "carol"}, []any{
		res.Records[0].Values["name"], res.Records[1].Values["name"], res.Records[2].Values["name"],
	})

	page, err := s.List(ctx, "User", store.ListOptions{OrderBy: "name", Skip: 1, First: 1})
	require.NoError(t, err)
	require.Equal(t, 3, page.Total)
	require.Len(t, page.Records, 1)
	require.Equal(t, "bob", page.Records[0].Values["name"])
}

func TestStore_ListFiltersByPredicate(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	_, err := s.Create(ctx, "User", map[string]any{"role": "ADMIN"})
	require.NoError(t, err)
	_, err = s.Create(ctx, "User", map[string]any{"role": "USER"})
	require.NoError(t, err)

	res, err := s.List(ctx, "User", store.ListOptions{
		Filter: func(r store.Record) bool { return r.Values["role"] == "ADMIN" },
	})
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
}
