package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contourhq/contour/internal/model"
	"github.com/contourhq/contour/internal/semantic"
)

type metaModelListItem struct {
	Name string `json:"name"`
}

func (g *Gateway) metaListHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		out := make([]metaModelListItem, 0, len(g.graph.Models()))
		for _, m := range g.graph.Models() {
			out = append(out, metaModelListItem{Name: m.Name})
		}
		c.JSON(http.StatusOK, out)
	}
}

type metaField struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Optional  bool   `json:"optional"`
	Array     bool   `json:"array"`
	Relation  bool   `json:"relation"`
	Unique    bool   `json:"unique,omitempty"`
	Indexed   bool   `json:"indexed,omitempty"`
	TargetRef string `json:"targetRef,omitempty"`
}

type metaModel struct {
	Name   string      `json:"name"`
	IDName string      `json:"idField"`
	Fields []metaField `json:"fields"`
}

func (g *Gateway) metaHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("model")
		m := g.graph.Model(name)
		if m == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "model not found"})
			return
		}
		c.JSON(http.StatusOK, describeModel(m))
	}
}

func describeModel(m *model.ModelDecl) metaModel {
	fields := make([]metaField, 0, len(m.Fields))
	for _, f := range m.Fields {
		mf := metaField{
			Name:     f.Name,
			Type:     f.Type.RefName,
			Optional: f.Optional(),
			Array:    f.IsArray(),
			Relation: f.IsRelation(),
			Unique:   f.Attrs.Unique,
			Indexed:  f.Attrs.Indexed,
		}
		if mf.Type == "" {
			mf.Type = scalarKindName(f)
		}
		if f.IsRelation() && f.Attrs.Relation != nil {
			mf.TargetRef = f.Attrs.Relation.TargetModel
		}
		fields = append(fields, mf)
	}
	return metaModel{Name: m.Name, IDName: m.IDField.Name, Fields: fields}
}

// scalarKindName names a primitive field's kind for callers that have
// no use for the generated GraphQL scalar name (internal/transpile's
// scalarGraphQLName is unexported and GraphQL-shaped; this is the
// introspection-lite equivalent for /meta responses).
func scalarKindName(f *model.Field) string {
	switch f.Type.Kind {
	case semantic.TypeShortStr:
		return "ShortString"
	case semantic.TypeLongStr:
		return "LongString"
	case semantic.TypeBoolean:
		return "Boolean"
	case semantic.TypeDateTime:
		return "DateTime"
	case semantic.TypeInt32:
		return "Int32"
	case semantic.TypeInt64:
		return "Int64"
	case semantic.TypeFloat64:
		return "Float64"
	default:
		return "Unknown"
	}
}
