package semantic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/contourhq/contour/internal/fixtures"
	"github.com/contourhq/contour/internal/semantic"
	"github.com/contourhq/contour/pkg/sdlparse"
)

// goldenCase mirrors one entry of testdata/diagnostics_golden.yaml.
type goldenCase struct {
	Name      string   `yaml:"name"`
	Src       string   `yaml:"src"`
	WantKinds []string `yaml:"want_kinds"`
}

func TestAnalyze_DiagnosticsGolden(t *testing.T) {
	var cases []goldenCase
	require.NoError(t, fixtures.Load("testdata/diagnostics_golden.yaml", &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			decls, err := sdlparse.Parse("golden.sdl", tc.Src)
			require.NoError(t, err)

			res := semantic.Analyze(decls)

			got := make([]string, 0, len(res.Diagnostics))
			for _, d := range res.Diagnostics {
				got = append(got, d.Kind.String())
			}
			require.ElementsMatch(t, tc.WantKinds, got, "diagnostics: %v", res.Diagnostics)
		})
	}
}
