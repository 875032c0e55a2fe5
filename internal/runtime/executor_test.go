package runtime_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/contourhq/contour/internal/model"
	"github.com/contourhq/contour/internal/runtime"
	"github.com/contourhq/contour/internal/store"
	"github.com/contourhq/contour/internal/store/memory"
)

const fixtureSchema = `
config db { provider = "postgres" }

model User {
  id    ShortStr @id @default(auto())
  email ShortStr @unique
  name  ShortStr?
}
`

func compileFixture(t *testing.T) *model.Graph {
	t.Helper()
	result, err := model.Compile("fixture.contour", fixtureSchema)
	require.NoError(t, err)
	require.False(t, result.HasErrors())
	return result.Graph
}

func TestExecutor_CreateThenGet(t *testing.T) {
	graph := compileFixture(t)
	ex := runtime.New(graph, memory.New())
	ctx := context.Background()

	created, err := ex.Execute(ctx, runtime.Operation{
		Kind:  runtime.Mutation,
		Field: "createUser",
		Args:  map[string]any{"data": map[string]any{"email": "a@example.com", "name": "Alice"}},
	})
	require.NoError(t, err)
	rec := created.(store.Record)
	require.NotEmpty(t, rec.ID)

	got, err := ex.Execute(ctx, runtime.Operation{
		Kind:  runtime.Query,
		Field: "user",
		Args:  map[string]any{"where": map[string]any{"id": rec.ID}},
	})
	require.NoError(t, err)
	require.Equal(t, "a@example.com", got.(store.Record).Values["email"])
}

func TestExecutor_MissingRequiredArgumentFails(t *testing.T) {
	graph := compileFixture(t)
	ex := runtime.New(graph, memory.New())

	_, err := ex.Execute(context.Background(), runtime.Operation{
		Kind:  runtime.Mutation,
		Field: "createUser",
		Args:  map[string]any{},
	})
	require.Error(t, err)
}

func TestExecutor_UnknownFieldFails(t *testing.T) {
	graph := compileFixture(t)
	ex := runtime.New(graph, memory.New())

	_, err := ex.Execute(context.Background(), runtime.Operation{Kind: runtime.Query, Field: "bogus"})
	require.Error(t, err)
}

func TestExecutor_UpsertCreatesThenUpdates(t *testing.T) {
	graph := compileFixture(t)
	ex := runtime.New(graph, memory.New())
	ctx := context.Background()

	result, err := ex.Execute(ctx, runtime.Operation{
		Kind:  runtime.Mutation,
		Field: "upsertUser",
		Args: map[string]any{
			"where": map[string]any{"id": "fixed-id"},
			"data": map[string]any{
				"create": map[string]any{"email": "new@example.com"},
				"update": map[string]any{"email": "updated@example.com"},
			},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "new@example.com", result.(store.Record).Values["email"])

	result, err = ex.Execute(ctx, runtime.Operation{
		Kind:  runtime.Mutation,
		Field: "upsertUser",
		Args: map[string]any{
			"where": map[string]any{"id": "fixed-id"},
			"data": map[string]any{
				"create": map[string]any{"email": "new@example.com"},
				"update": map[string]any{"email": "updated@example.com"},
			},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "updated@example.com", result.(store.Record).Values["email"])
}

func TestExecutor_ListReturnsAllRecords(t *testing.T) {
	graph := compileFixture(t)
	ex := runtime.New(graph, memory.New())
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com"} {
		_, err := ex.Execute(ctx, runtime.Operation{
			Kind:  runtime.Mutation,
			Field: "createUser",
			Args:  map[string]any{"data": map[string]any{"email": email}},
		})
		require.NoError(t, err)
	}

	result, err := ex.Execute(ctx, runtime.Operation{Kind: runtime.Query, Field: "users", Args: map[string]any{}})
	require.NoError(t, err)
	require.Equal(t, 2, result.(store.ListResult).Total)
}
