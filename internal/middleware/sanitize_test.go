package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSanitizePayload_StripsOperatorKeys(t *testing.T) {
	var received map[string]interface{}

	r := gin.New()
	r.Use(SanitizePayload())
	r.POST("/echo", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		require.NoError(t, json.Unmarshal(body, &received))
		c.Status(http.StatusOK)
	})

	payload := `{"userId":{"$gt":""},"title":"Sunset","nested":{"a.b":1,"ok":2},"list":[{"$where":"1"}]}`
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	// l'opérateur $gt disparaît, la clé userId devient un objet vide
	assert.Equal(t, map[string]interface{}{}, received["userId"])
	assert.Equal(t, "Sunset", received["title"])
	assert.Equal(t, map[string]interface{}{"ok": float64(2)}, received["nested"])
	assert.Equal(t, []interface{}{map[string]interface{}{}}, received["list"])
}

func TestSanitizePayload_IgnoresNonJSON(t *testing.T) {
	var received string

	r := gin.New()
	r.Use(SanitizePayload())
	r.POST("/echo", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		received = string(body)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString("$brut"))
	req.Header.Set("Content-Type", "text/plain")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "$brut", received)
}
