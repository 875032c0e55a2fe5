package sdlparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/contourhq/contour/pkg/ast"
	"github.com/contourhq/contour/pkg/sdlparse"
)

func TestParse_SimpleModel(t *testing.T) {
	src := `
config db {
	provider = "foundationDB"
}

enum Role {
	USER
	ADMIN
}

model User {
	userId ShortStr @id @default(auto())
	email ShortStr @unique
	role Role @default(USER)
	spouse User? @relation(name: "users_spouse", field: spouseUserId, references: userId)
	spouseUserId ShortStr? @unique
}
`
	decls, err := sdlparse.Parse("test.sdl", src)
	require.NoError(t, err)
	require.Len(t, decls, 3)

	cfg, ok := decls[0].(*ast.Config)
	require.True(t, ok)
	require.Equal(t, "foundationDB", cfg.Provider)

	enum, ok := decls[1].(*ast.Enum)
	require.True(t, ok)
	require.Equal(t, "Role", enum.Name)
	require.Len(t, enum.Variants, 2)

	model, ok := decls[2].(*ast.Model)
	require.True(t, ok)
	require.Equal(t, "User", model.Name)
	require.Len(t, model.Fields, 5)

	idField := model.Fields[0]
	require.Equal(t, "userId", idField.Name)
	require.Len(t, idField.Attrs, 2)
	require.Equal(t, "id", idField.Attrs[0].Name)
	require.Equal(t, "default", idField.Attrs[1].Name)
	require.Len(t, idField.Attrs[1].Args, 1)
	require.Equal(t, ast.ArgCall, idField.Attrs[1].Args[0].Kind)
	require.Equal(t, "auto", idField.Attrs[1].Args[0].CallName)

	spouse := model.Fields[3]
	require.True(t, spouse.Type.Optional)
	require.Equal(t, "User", spouse.Type.Name)
	relAttr := spouse.Attrs[0]
	require.Equal(t, "relation", relAttr.Name)
	require.Len(t, relAttr.Args, 3)
	require.Equal(t, ast.ArgKeyValue, relAttr.Args[0].Kind)
	require.Equal(t, "name", relAttr.Args[0].Key)
}

func TestParse_ArrayAndUnknownTopLevel(t *testing.T) {
	_, err := sdlparse.Parse("bad.sdl", "widget Foo { }")
	require.Error(t, err)

	decls, err := sdlparse.Parse("arr.sdl", `model M { tags ShortStr[] @indexed }`)
	require.NoError(t, err)
	m := decls[0].(*ast.Model)
	require.True(t, m.Fields[0].Type.Array)
}
