package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/contourhq/contour/internal/model"
	"github.com/contourhq/contour/internal/store"
	"github.com/contourhq/contour/internal/store/postgres"
)

const fixtureSchema = `
config db { provider = "postgres" }

model User {
  id    ShortStr @id @default(auto())
  email ShortStr @unique
  name  ShortStr?
}
`

// newTestStore spins up a disposable Postgres container, compiles the
// fixture schema, applies its DDL, and returns a ready Store. Skipped
// under -short since it needs a working Docker daemon.
func newTestStore(t *testing.T) (*postgres.Store, *model.Graph) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in -short mode")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("contour"),
		tcpostgres.WithUsername("contour"),
		tcpostgres.WithPassword("contour"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	result, err := model.Compile("fixture.contour", fixtureSchema)
	require.NoError(t, err)
	require.False(t, result.HasErrors())

	db, err := postgres.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, postgres.ApplyDDL(db, postgres.GenerateDDL(result.Graph)))

	return postgres.New(db, result.Graph), result.Graph
}

func TestStore_CreateGetUpdateDelete(t *testing.T) {
	s, _ := newTestStore(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rec, err := s.Create(ctx, "User", map[string]any{"email": "a@example.com", "name": "Alice"})
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID)

	got, ok, err := s.Get(ctx, "User", rec.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "a@example.com", got.Values["email"])

	updated, err := s.Update(ctx, "User", rec.ID, map[string]any{"name": "Alicia"})
	require.NoError(t, err)
	require.Equal(t, "Alicia", updated.Values["name"])

	deleted, err := s.Delete(ctx, "User", rec.ID)
	require.NoError(t, err)
	require.Equal(t, rec.ID, deleted.ID)

	_, ok, err = s.Get(ctx, "User", rec.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStore_UpdateMissingReturnsNotFound(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Update(ctx, "User", "00000000-0000-0000-0000-000000000000", map[string]any{"name": "x"})
	require.Error(t, err)
	var notFound *store.ErrNotFound
	require.ErrorAs(t, err, &notFound)
}

func TestStore_ListOrdersAndPaginates(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for _, email := range []string{"carol@example.com", "alice@example.com", "bob@example.com"} {
		_, err := s.Create(ctx, "User", map[string]any{"email": email})
		require.NoError(t, err)
	}

	res, err := s.List(ctx, "User", store.ListOptions{OrderBy: "email", First: 2})
	require.NoError(t, err)
	require.Equal(t, 3, res.Total)
	require.Len(t, res.Records, 2)
	require.Equal(t, "alice@example.com", res.Records[0].Values["email"])
}
