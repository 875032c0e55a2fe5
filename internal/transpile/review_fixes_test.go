package transpile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/contourhq/contour/internal/semantic"
	"github.com/contourhq/contour/internal/transpile"
	"github.com/contourhq/contour/pkg/gqlast"
	"github.com/contourhq/contour/pkg/sdlparse"
)

func inputDef(t *testing.T, doc *gqlast.Document, name string) *gqlast.InputDef {
	t.Helper()
	for _, d := range doc.Definitions {
		if in, ok := d.(*gqlast.InputDef); ok && in.Name == name {
			return in
		}
	}
	t.Fatalf("input def %s not found", name)
	return nil
}

func hasInputField(in *gqlast.InputDef, name string) bool {
	for _, f := range in.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// A relation-owning scalar (Post.authorId, backing Post.author) must
// never appear directly in CreateInput/UpdateInput: it's only settable
// through the relation field's own inline input, or the caller could
// set the foreign key two incompatible ways.
func TestTranspile_CreateUpdateInputsExcludeRelationScalar(t *testing.T) {
	doc := transpiledFixture(t)

	create := inputDef(t, doc, "PostCreateInput")
	require.False(t, hasInputField(create, "authorId"), "PostCreateInput must not expose the relation-owning scalar authorId")
	require.True(t, hasInputField(create, "author"), "PostCreateInput must expose the relation field author")

	update := inputDef(t, doc, "PostUpdateInput")
	require.False(t, hasInputField(update, "authorId"), "PostUpdateInput must not expose the relation-owning scalar authorId")
	require.True(t, hasInputField(update, "author"), "PostUpdateInput must expose the relation field author")
}

// An auto-gen @id field (User.userId) is assigned by the store, so it
// must not appear in CreateInput at all.
func TestTranspile_CreateInputExcludesAutoGenID(t *testing.T) {
	doc := transpiledFixture(t)
	create := inputDef(t, doc, "UserCreateInput")
	require.False(t, hasInputField(create, "userId"), "UserCreateInput must not expose the auto-generated id field")
	require.True(t, hasInputField(create, "email"))
}

const boolArrayFixture = `
config db { provider = "foundationDB" }

model Flag {
	flagId ShortStr @id @default(auto())
	tags Boolean[]
}
`

// A Boolean[] scalar array carries the full string-like suffix family
// (substring/ordering/in/not_in) regardless of element kind, same as
// any other scalar array, per the where-input operator-suffix table.
func TestTranspile_WhereInputBooleanArrayGetsFullSuffixFamily(t *testing.T) {
	decls, err := sdlparse.Parse("t.sdl", boolArrayFixture)
	require.NoError(t, err)
	res := semantic.Analyze(decls)
	require.False(t, res.HasErrors(), "%v", res.Diagnostics)
	doc := transpile.Transpile(res.Graph)

	where := inputDef(t, doc, "FlagWhereInput")
	for _, want := range []string{
		"tags", "tags_not", "tags_contains", "tags_not_contains",
		"tags_starts_with", "tags_not_starts_with",
		"tags_ends_with", "tags_not_ends_with",
		"tags_lt", "tags_lte", "tags_gt", "tags_gte",
		"tags_in", "tags_not_in",
	} {
		require.True(t, hasInputField(where, want), "FlagWhereInput missing %s", want)
	}
}
