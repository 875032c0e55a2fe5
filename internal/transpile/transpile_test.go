package transpile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/contourhq/contour/internal/semantic"
	"github.com/contourhq/contour/internal/transpile"
	"github.com/contourhq/contour/pkg/gqlast"
	"github.com/contourhq/contour/pkg/gqlprint"
	"github.com/contourhq/contour/pkg/sdlparse"
)

const fixture = `
config db { provider = "foundationDB" }

enum Role { USER ADMIN }

model User {
	userId ShortStr @id @default(auto())
	email ShortStr @unique
	role Role @default(USER)
	posts Post[] @relation(name: "user_posts")
}

model Post {
	postId ShortStr @id @default(auto())
	title ShortStr
	authorId ShortStr
	author User @relation(name: "user_posts", field: authorId, references: userId)
}

model Category {
	categoryId ShortStr @id @default(auto())
	name ShortStr @unique
}
`

func transpiledFixture(t *testing.T) *gqlast.Document {
	t.Helper()
	decls, err := sdlparse.Parse("t.sdl", fixture)
	require.NoError(t, err)
	res := semantic.Analyze(decls)
	require.False(t, res.HasErrors(), "%v", res.Diagnostics)
	return transpile.Transpile(res.Graph)
}

func defNames(doc *gqlast.Document) []string {
	var out []string
	for _, d := range doc.Definitions {
		switch d := d.(type) {
		case *gqlast.ScalarDef:
			out = append(out, d.Name)
		case *gqlast.DirectiveDef:
			out = append(out, d.Name)
		case *gqlast.InterfaceDef:
			out = append(out, d.Name)
		case *gqlast.EnumDef:
			out = append(out, d.Name)
		case *gqlast.InputDef:
			out = append(out, d.Name)
		case *gqlast.TypeDef:
			out = append(out, d.Name)
		}
	}
	return out
}

func TestTranspile_EmitsExpectedModelDefinitions(t *testing.T) {
	doc := transpiledFixture(t)
	names := defNames(doc)

	for _, want := range []string{
		"User", "UserEdge", "UserConnection",
		"UserCreateInput", "UserCreateOneInlineInput", "UserCreateManyInlineInput",
		"UserUpdateInput", "UserUpdateWithNestedWhereUniqueInput", "UserUpsertWithNestedWhereUniqueInput",
		"UserUpdateOneInlineInput", "UserUpdateManyInlineInput",
		"UserUpsertInput", "UserConnectInput",
		"UserWhereInput", "UserWhereUniqueInput", "UserOrderByInput",
		"Query", "Mutation",
	} {
		require.Contains(t, names, want)
	}
}

func TestTranspile_AllUniqueModelOmitsUpdateMany(t *testing.T) {
	doc := transpiledFixture(t)
	names := defNames(doc)
	require.NotContains(t, names, "CategoryUpdateManyInput")

	var mutation *gqlast.TypeDef
	for _, d := range doc.Definitions {
		if td, ok := d.(*gqlast.TypeDef); ok && td.Name == "Mutation" {
			mutation = td
		}
	}
	require.NotNil(t, mutation)
	for _, f := range mutation.Fields {
		require.NotEqual(t, "updateManyCategorysConnection", f.Name)
	}
}

func TestTranspile_RelationFieldsOnBothSides(t *testing.T) {
	doc := transpiledFixture(t)
	var userType, postType *gqlast.TypeDef
	for _, d := range doc.Definitions {
		if td, ok := d.(*gqlast.TypeDef); ok {
			switch td.Name {
			case "User":
				userType = td
			case "Post":
				postType = td
			}
		}
	}
	require.NotNil(t, userType)
	require.NotNil(t, postType)

	var hasPosts, hasPostsConnection bool
	for _, f := range userType.Fields {
		if f.Name == "posts" {
			hasPosts = true
		}
		if f.Name == "postsConnection" {
			hasPostsConnection = true
		}
	}
	require.True(t, hasPosts)
	require.True(t, hasPostsConnection)

	var hasAuthor bool
	for _, f := range postType.Fields {
		if f.Name == "author" {
			hasAuthor = true
			require.Equal(t, "User", f.Type.Name)
			require.True(t, f.Type.NonNull)
		}
	}
	require.True(t, hasAuthor)
}

func TestTranspile_DeterministicAcrossRuns(t *testing.T) {
	decls, err := sdlparse.Parse("t.sdl", fixture)
	require.NoError(t, err)
	res := semantic.Analyze(decls)
	require.False(t, res.HasErrors())

	out1 := gqlprint.Print(transpile.Transpile(res.Graph))
	out2 := gqlprint.Print(transpile.Transpile(res.Graph))
	require.Equal(t, out1, out2)
}

func TestTranspile_RootQueryHasNodeAndPerModelFields(t *testing.T) {
	doc := transpiledFixture(t)
	var query *gqlast.TypeDef
	for _, d := range doc.Definitions {
		if td, ok := d.(*gqlast.TypeDef); ok && td.Name == "Query" {
			query = td
		}
	}
	require.NotNil(t, query)
	names := make([]string, len(query.Fields))
	for i, f := range query.Fields {
		names[i] = f.Name
	}
	require.Contains(t, names, "node")
	require.Contains(t, names, "user")
	require.Contains(t, names, "users")
	require.Contains(t, names, "usersConnection")
}
