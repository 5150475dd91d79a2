package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HumanAssisted/shapeshift-go/internal/embeddings"
	"github.com/HumanAssisted/shapeshift-go/internal/matcher"
)

func testRouter() http.Handler {
	table := map[string][]float32{
		"name":      {0.9, 0.1, 0},
		"full_name": {0.9, 0.1, 0},
		"age":       {0, 0.9, 0.1},
		"years_old": {0, 0.9, 0.1},
	}
	engine := matcher.NewEngineWithProvider(embeddings.NewStatic(3, table), 0.95)
	return NewRouter(NewHandler(engine))
}

func TestHandleShapeshift(t *testing.T) {
	router := testRouter()

	body := []byte(`{
		"source": {"name": "John Doe", "age": 30},
		"target": {"full_name": "", "years_old": 0}
	}`)
	req := httptest.NewRequest(http.MethodPost, "/shapeshift", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Result map[string]any `json:"result"`
		Debug  struct {
			SourceKeys []string `json:"source_keys"`
			TargetKeys []string `json:"target_keys"`
		} `json:"debug_info"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, map[string]any{"full_name": "John Doe", "years_old": 30.0}, resp.Result)
	assert.Equal(t, []string{"age", "name"}, resp.Debug.SourceKeys)
	assert.Equal(t, []string{"full_name", "years_old"}, resp.Debug.TargetKeys)
}

func TestHandleShapeshiftBadBody(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/shapeshift", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "static", resp["provider"])
}
