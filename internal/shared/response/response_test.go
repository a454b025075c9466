package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(fn func(c *gin.Context)) (*httptest.ResponseRecorder, Response) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)

	var body Response
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestSuccess(t *testing.T) {
	w, body := record(func(c *gin.Context) {
		Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)
	assert.Nil(t, body.Error)
	assert.Equal(t, map[string]interface{}{"status": "ok"}, body.Data)
}

func TestErrors(t *testing.T) {
	w, body := record(func(c *gin.Context) { NotFound(c, "route not found") })
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
	assert.Equal(t, "route not found", body.Error.Message)

	w, body = record(func(c *gin.Context) {
		ErrorWithDetails(c, http.StatusServiceUnavailable, "UNHEALTHY", "storage down", errors.New("dial tcp").Error())
	})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "dial tcp", body.Error.Details)
}
