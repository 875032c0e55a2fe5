package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/contourhq/contour/internal/cli"
	"github.com/contourhq/contour/internal/model"
)

// loadSchema concatenates every *.contour file in dir, in filename
// order, and compiles the result as one source unit. Declaration order
// across files matters (root field order mirrors model declaration
// order), so a deterministic file order is part of the output contract
// the same way within-file declaration order is.
func loadSchema(dir string) (model.Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return model.Result{}, cli.SchemaParseError(fmt.Sprintf("reading schema directory %s", dir), err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".contour") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	if len(names) == 0 {
		return model.Result{}, cli.SchemaParseError(fmt.Sprintf("no .contour files found in %s", dir), nil)
	}

	var src strings.Builder
	for _, name := range names {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return model.Result{}, cli.SchemaParseError(fmt.Sprintf("reading %s", name), err)
		}
		src.Write(b)
		src.WriteString("\n")
	}

	result, err := model.Compile(dir, src.String())
	if err != nil {
		return model.Result{}, cli.SchemaParseError("parsing schema", err)
	}
	return result, nil
}
