package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "sidecar-srv/pkg/errors"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	return c, w
}

func TestOK_WritesPayloadUnwrapped(t *testing.T) {
	c, w := newTestContext()

	OK(c, map[string]any{"scores": []float32{0.5}, "count": 1})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"scores": [0.5], "count": 1}`, w.Body.String())
}

func TestError_HTTPErrorKeepsStatus(t *testing.T) {
	c, w := newTestContext()

	Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "texts must contain at least one item"))

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusBadRequest, resp.ErrorCode)
	assert.Equal(t, "texts must contain at least one item", resp.Message)
}

func TestError_WrappedHTTPError(t *testing.T) {
	c, w := newTestContext()

	wrapped := errors.Join(errors.New("context"), pkgErrors.NewHTTPError(http.StatusUnauthorized, "Unauthorized"))
	Error(c, wrapped)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestError_UnknownErrorIsInternal(t *testing.T) {
	c, w := newTestContext()

	Error(c, errors.New("cuda out of memory at layer 7"))

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Internal server error", resp.Message)
	// Internal detail must not leak to the client.
	assert.NotContains(t, w.Body.String(), "cuda")
}

func TestValidationError_BindingConstraint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type req struct {
		Texts []string `json:"texts" binding:"required,min=1"`
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"texts": []}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var r req
	err := c.ShouldBindJSON(&r)
	require.Error(t, err)

	ValidationError(c, err)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid request", resp.Message)
	assert.Contains(t, w.Body.String(), `"texts"`)
}

func TestValidationError_MalformedBody(t *testing.T) {
	c, w := newTestContext()

	ValidationError(c, errors.New("unexpected EOF"))

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid request body", resp.Message)
	assert.Nil(t, resp.Errors)
}

func TestUnauthorized(t *testing.T) {
	c, w := newTestContext()

	Unauthorized(c)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusUnauthorized, resp.ErrorCode)
}
