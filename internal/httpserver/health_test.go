package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sidecar-srv/config"
	"sidecar-srv/pkg/log"
	pkgml "sidecar-srv/pkg/ml"
)

func newTestServer(t *testing.T, embedder *pkgml.Embedder, crossEncoder *pkgml.CrossEncoder, tagger *pkgml.Tagger) *HTTPServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := &HTTPServer{
		gin:          gin.New(),
		l:            log.NewNop(),
		port:         8000,
		mode:         gin.TestMode,
		environment:  "testing",
		config:       &config.Config{},
		embedder:     embedder,
		crossEncoder: crossEncoder,
		tagger:       tagger,
	}

	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	return srv
}

func doGet(srv *HTTPServer, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	srv.gin.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, &pkgml.Embedder{}, &pkgml.CrossEncoder{}, &pkgml.Tagger{})

	w := doGet(srv, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestReadyCheck_AllModelsLoaded(t *testing.T) {
	srv := newTestServer(t, &pkgml.Embedder{}, &pkgml.CrossEncoder{}, &pkgml.Tagger{})

	w := doGet(srv, "/ready")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ready", body["status"])
	assert.Equal(t, ServiceName, body["service"])

	models, ok := body["models"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, models["embedder"])
	assert.Equal(t, true, models["reranker"])
	assert.Equal(t, true, models["extractor"])
}

func TestReadyCheck_MissingModel(t *testing.T) {
	srv := newTestServer(t, &pkgml.Embedder{}, nil, &pkgml.Tagger{})

	w := doGet(srv, "/ready")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "not ready", body["status"])

	models, ok := body["models"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, models["reranker"])
}

func TestLiveCheck(t *testing.T) {
	srv := newTestServer(t, nil, nil, nil)

	w := doGet(srv, "/live")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "alive", body["status"])
	assert.Equal(t, HealthVersion, body["version"])
}

func TestNew_RequiresAllModels(t *testing.T) {
	cfg := Config{
		Logger:       log.NewNop(),
		Port:         8000,
		Mode:         gin.TestMode,
		Environment:  "testing",
		Config:       &config.Config{},
		Embedder:     &pkgml.Embedder{},
		CrossEncoder: &pkgml.CrossEncoder{},
		Tagger:       &pkgml.Tagger{},
	}

	_, err := New(log.NewNop(), cfg)
	assert.NoError(t, err)

	missingTagger := cfg
	missingTagger.Tagger = nil
	_, err = New(log.NewNop(), missingTagger)
	assert.Error(t, err)

	missingEmbedder := cfg
	missingEmbedder.Embedder = nil
	_, err = New(log.NewNop(), missingEmbedder)
	assert.Error(t, err)
}
