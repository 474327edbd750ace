package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sidecar-srv/config"
	"sidecar-srv/internal/embedding"
	"sidecar-srv/internal/middleware"
	"sidecar-srv/pkg/log"
	"sidecar-srv/pkg/response"
)

type fakeUseCase struct {
	output embedding.EmbedOutput
	err    error
	input  embedding.EmbedInput
}

func (f *fakeUseCase) Embed(ctx context.Context, input embedding.EmbedInput) (embedding.EmbedOutput, error) {
	f.input = input
	if f.err != nil {
		return embedding.EmbedOutput{}, f.err
	}
	return f.output, nil
}

func newTestRouter(uc embedding.UseCase, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if cfg == nil {
		cfg = &config.Config{}
	}

	router := gin.New()
	mw := middleware.New(log.NewNop(), cfg)
	New(log.NewNop(), uc).RegisterRoutes(&router.RouterGroup, mw)
	return router
}

func doRequest(router *gin.Engine, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/embed", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestEmbed_Success(t *testing.T) {
	uc := &fakeUseCase{output: embedding.EmbedOutput{
		Vectors:   [][]float32{{0.1, 0.2}, {0.3, 0.4}},
		Dimension: 2,
	}}
	router := newTestRouter(uc, nil)

	w := doRequest(router, `{"texts": ["hello", "world"]}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp embedResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, [][]float32{{0.1, 0.2}, {0.3, 0.4}}, resp.Embeddings)
	assert.Equal(t, 2, resp.Dimension)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, []string{"hello", "world"}, uc.input.Texts)
}

func TestEmbed_MissingTexts(t *testing.T) {
	router := newTestRouter(&fakeUseCase{}, nil)

	w := doRequest(router, `{}`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusBadRequest, resp.ErrorCode)
	require.NotNil(t, resp.Errors)
	assert.Contains(t, w.Body.String(), `"texts"`)
}

func TestEmbed_EmptyTexts(t *testing.T) {
	router := newTestRouter(&fakeUseCase{}, nil)

	w := doRequest(router, `{"texts": []}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"texts"`)
}

func TestEmbed_MalformedJSON(t *testing.T) {
	router := newTestRouter(&fakeUseCase{}, nil)

	w := doRequest(router, `{"texts": [`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid request body", resp.Message)
}

func TestEmbed_InferenceFailure(t *testing.T) {
	uc := &fakeUseCase{err: embedding.ErrInferenceFailed}
	router := newTestRouter(uc, nil)

	w := doRequest(router, `{"texts": ["hello"]}`, nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusInternalServerError, resp.ErrorCode)
	assert.Equal(t, "Embedding inference failed", resp.Message)
}

func TestEmbed_ServiceAuth(t *testing.T) {
	cfg := &config.Config{
		InternalConfig: config.InternalConfig{
			ServiceKeys: map[string]string{"knowledge-srv": "secret"},
		},
	}
	uc := &fakeUseCase{output: embedding.EmbedOutput{
		Vectors:   [][]float32{{0.1}},
		Dimension: 1,
	}}
	router := newTestRouter(uc, cfg)

	w := doRequest(router, `{"texts": ["hello"]}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, `{"texts": ["hello"]}`, map[string]string{
		"X-Service-Key": "knowledge-srv:wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, `{"texts": ["hello"]}`, map[string]string{
		"X-Service-Key": "knowledge-srv:secret",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
