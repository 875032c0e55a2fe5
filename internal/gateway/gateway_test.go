package gateway_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/contourhq/contour/internal/gateway"
	"github.com/contourhq/contour/internal/model"
	"github.com/contourhq/contour/internal/runtime"
	"github.com/contourhq/contour/internal/store/memory"
)

const fixtureSchema = `
config db { provider = "postgres" }

model User {
  id    ShortStr @id @default(auto())
  email ShortStr @unique
}
`

func newTestGateway(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	result, err := model.Compile("fixture.contour", fixtureSchema)
	require.NoError(t, err)
	require.False(t, result.HasErrors())

	ex := runtime.New(result.Graph, memory.New())
	return gateway.New(result.Graph, ex).Router()
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestGraphqlHandler_Create(t *testing.T) {
	r := newTestGateway(t)

	createRec := postJSON(t, r, "/graphql", map[string]any{
		"kind":  "mutation",
		"field": "createUser",
		"args":  map[string]any{"data": map[string]any{"email": "a@example.com"}},
	})
	require.Equal(t, http.StatusOK, createRec.Code)

	var created struct {
		Data struct {
			ID     string         `json:"ID"`
			Values map[string]any `json:"Values"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(createRec.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.ID)
}

func TestMetaHandler_UnknownModelReturns404(t *testing.T) {
	r := newTestGateway(t)
	req := httptest.NewRequest(http.MethodGet, "/meta/DoesNotExist", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetaHandler_DescribesModel(t *testing.T) {
	r := newTestGateway(t)
	req := httptest.NewRequest(http.MethodGet, "/meta/User", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"name":"email"`)
}

func TestMetaListHandler_ListsModels(t *testing.T) {
	r := newTestGateway(t)
	req := httptest.NewRequest(http.MethodGet, "/meta", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"User"`)
}
