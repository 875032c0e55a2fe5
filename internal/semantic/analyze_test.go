package semantic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/contourhq/contour/internal/semantic"
	"github.com/contourhq/contour/pkg/sdlparse"
)

func analyze(t *testing.T, src string) semantic.Result {
	t.Helper()
	decls, err := sdlparse.Parse("t.sdl", src)
	require.NoError(t, err)
	return semantic.Analyze(decls)
}

func TestAnalyze_SimpleUserProfilePostCategory(t *testing.T) {
	src := `
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

model Profile {
	profileId ShortStr @id @default(auto())
	bio LongStr?
}

model Category {
	categoryId ShortStr @id @default(auto())
	name ShortStr @unique
}
`
	res := analyze(t, src)
	require.False(t, res.HasErrors(), "%v", res.Diagnostics)
	require.NotNil(t, res.Graph)

	user := res.Graph.Model("User")
	require.NotNil(t, user)
	postsField := user.Field("posts")
	require.NotNil(t, postsField)
	require.True(t, postsField.IsRelation())
	require.NotNil(t, postsField.Attrs.Relation.Pair)
	require.Equal(t, semantic.OneToMany, postsField.Attrs.Relation.Pair.Cardinality)

	post := res.Graph.Model("Post")
	author := post.Field("author")
	require.True(t, author.IsRelation())
	require.Equal(t, semantic.RoleOwner, author.Attrs.Relation.Role)

	category := res.Graph.Model("Category")
	require.Len(t, category.UniqueFields(), 2) // categoryId (id) + name (@unique)
}

func TestAnalyze_AutoIdDefault(t *testing.T) {
	src := `
model User {
	userId ShortStr @id @default(auto())
	email ShortStr @unique
}
`
	res := analyze(t, src)
	require.False(t, res.HasErrors(), "%v", res.Diagnostics)
	user := res.Graph.Model("User")
	require.Equal(t, "userId", user.IDField.Name)
	require.Equal(t, semantic.DefaultAuto, user.IDField.Attrs.Default.Kind)
}

func TestAnalyze_SelfRelation(t *testing.T) {
	src := `
model User {
	userId ShortStr @id @default(auto())
	spouse User? @relation(name: "users_spouse", field: spouseUserId, references: userId)
	spouseUserId ShortStr? @unique
}
`
	res := analyze(t, src)
	require.False(t, res.HasErrors(), "%v", res.Diagnostics)
	user := res.Graph.Model("User")
	spouse := user.Field("spouse")
	require.True(t, spouse.IsRelation())
	require.Equal(t, semantic.OneToOne, spouse.Attrs.Relation.Pair.Cardinality)
	require.Equal(t, semantic.RoleOwner, spouse.Attrs.Relation.Role)
}

func TestAnalyze_PartialRelationError(t *testing.T) {
	src := `
model User {
	userId ShortStr @id @default(auto())
	spouse User? @relation(name: "s", references: userId)
}
`
	res := analyze(t, src)
	require.True(t, res.HasErrors())
	require.Contains(t, kinds(res.Diagnostics), semantic.PartialRelation)
}

func TestAnalyze_UnknownDefaultFunction(t *testing.T) {
	src := `
model Event {
	eventId ShortStr @id @default(auto())
	createdAt DateTime @default(unknown_function())
}
`
	res := analyze(t, src)
	require.True(t, res.HasErrors())
	require.Contains(t, kinds(res.Diagnostics), semantic.UnknownDefaultFunction)
}

func TestAnalyze_DuplicateTopLevel(t *testing.T) {
	src := `
config db { provider = "a" }
config db2 { provider = "b" }
enum Role { USER }
enum Role { ADMIN }
`
	res := analyze(t, src)
	require.True(t, res.HasErrors())
	ks := kinds(res.Diagnostics)
	count := 0
	for _, k := range ks {
		if k == semantic.DuplicateDeclaration {
			count++
		}
	}
	require.Equal(t, 2, count)
}

func kinds(ds []semantic.Diagnostic) []semantic.DiagnosticKind {
	out := make([]semantic.DiagnosticKind, len(ds))
	for i, d := range ds {
		out[i] = d.Kind
	}
	return out
}
