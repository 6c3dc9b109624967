package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newUserRouter(users *fakeUserStore) *gin.Engine {
	r := gin.New()
	h := NewUserHandler(users)
	r.POST("/api/user", h.CreateUser)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestCreateUser_Success(t *testing.T) {
	users := newFakeUserStore()
	r := newUserRouter(users)

	rr := postJSON(t, r, "/api/user", gin.H{
		"UserId":   "u1",
		"fullName": "Claire Morel",
		"Email":    "claire@example.com",
		"imageurl": "https://img.example.com/avatars/claire.jpg",
		"username": "claire",
	})

	require.Equal(t, http.StatusCreated, rr.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "u1", resp["UserId"])
	assert.Equal(t, "claire", resp["username"])
}

func TestCreateUser_MissingField(t *testing.T) {
	r := newUserRouter(newFakeUserStore())

	rr := postJSON(t, r, "/api/user", gin.H{
		"UserId": "u1",
		"Email":  "claire@example.com",
	})

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestCreateUser_InvalidJSON(t *testing.T) {
	r := newUserRouter(newFakeUserStore())

	req := httptest.NewRequest(http.MethodPost, "/api/user", strings.NewReader("{pas du json"))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestCreateUser_DuplicateKeepsFirstRecord(t *testing.T) {
	users := newFakeUserStore()
	r := newUserRouter(users)

	first := gin.H{
		"UserId":   "u1",
		"fullName": "Claire Morel",
		"Email":    "claire@example.com",
		"username": "claire",
	}
	require.Equal(t, http.StatusCreated, postJSON(t, r, "/api/user", first).Code)

	second := gin.H{
		"UserId":   "u1",
		"fullName": "Autre Personne",
		"Email":    "autre@example.com",
		"username": "autre",
	}
	rr := postJSON(t, r, "/api/user", second)
	require.Equal(t, http.StatusConflict, rr.Code)

	// le premier enregistrement n'a pas bougé
	stored, err := users.FindByUserID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Claire Morel", stored.FullName)
	assert.Equal(t, "claire@example.com", stored.Email)
}
