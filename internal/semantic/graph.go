package semantic

// Graph is the read-only output of semantic analysis: models with
// resolved fields, a relation table (held via each field's
// Attrs.Relation.Pair), an enum table, and the config record. All
// entities are constructed once and are immutable thereafter; the
// transpiler only ever reads from a Graph.
type Graph struct {
	config     *Config
	modelOrder []string
	modelsByN  map[string]*ModelDecl
	enumOrder  []string
	enumsByN   map[string]*EnumDecl
}

func newGraph() *Graph {
	return &Graph{modelsByN: map[string]*ModelDecl{}, enumsByN: map[string]*EnumDecl{}}
}

func (g *Graph) Config() *Config { return g.config }

// Models returns every model in declaration order.
func (g *Graph) Models() []*ModelDecl {
	out := make([]*ModelDecl, 0, len(g.modelOrder))
	for _, n := range g.modelOrder {
		out = append(out, g.modelsByN[n])
	}
	return out
}

func (g *Graph) Model(name string) *ModelDecl { return g.modelsByN[name] }

// Enums returns every enum in declaration order.
func (g *Graph) Enums() []*EnumDecl {
	out := make([]*EnumDecl, 0, len(g.enumOrder))
	for _, n := range g.enumOrder {
		out = append(out, g.enumsByN[n])
	}
	return out
}

func (g *Graph) Enum(name string) *EnumDecl { return g.enumsByN[name] }
