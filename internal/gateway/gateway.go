// Package gateway is a gin HTTP surface over one compiled schema:
// POST /graphql dispatches a single operation through runtime.Executor,
// and GET /meta/:model dumps the resolved field/relation metadata for
// one model. Grounded on avangerus-kalita's internal/api (router.go's
// route table, meta.go's metaField/metaEntity response shape).
package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contourhq/contour/internal/model"
	"github.com/contourhq/contour/internal/runtime"
)

// Gateway owns the compiled graph and the executor dispatching
// operations against a storage backend.
type Gateway struct {
	graph    *model.Graph
	executor *runtime.Executor
}

func New(graph *model.Graph, executor *runtime.Executor) *Gateway {
	return &Gateway{graph: graph, executor: executor}
}

// Router builds the gin engine. Callers own starting/stopping the
// HTTP server (r.Run, http.Server, etc.) so Gateway stays test-friendly.
func (g *Gateway) Router() *gin.Engine {
	r := gin.Default()
	r.POST("/graphql", g.graphqlHandler())
	r.GET("/meta/:model", g.metaHandler())
	r.GET("/meta", g.metaListHandler())
	return r
}

type graphqlRequest struct {
	Kind  string         `json:"kind" binding:"required"`
	Field string         `json:"field" binding:"required"`
	Args  map[string]any `json:"args"`
}

func (g *Gateway) graphqlHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req graphqlRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		kind := runtime.Query
		if req.Kind == "mutation" {
			kind = runtime.Mutation
		}

		result, err := g.executor.Execute(c.Request.Context(), runtime.Operation{
			Kind:  kind,
			Field: req.Field,
			Args:  req.Args,
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if result == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": result})
	}
}
