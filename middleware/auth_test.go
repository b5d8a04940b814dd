package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fleet-compliance-api/config"
	"fleet-compliance-api/middleware"
	"fleet-compliance-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gateRouter(auth *middleware.Auth) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", auth.AuthRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestExpiredTokenRejected(t *testing.T) {
	cfg := &config.Config{JWTSecret: []byte("test-secret"), TokenTTL: -time.Minute}
	auth := middleware.NewAuth(cfg)
	token, err := auth.GenerateToken(&models.User{Username: "ghost"})
	require.NoError(t, err)

	r := gateRouter(auth)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenSignedWithOtherKeyRejected(t *testing.T) {
	other := middleware.NewAuth(&config.Config{JWTSecret: []byte("other-secret"), TokenTTL: time.Hour})
	token, err := other.GenerateToken(&models.User{Username: "ghost"})
	require.NoError(t, err)

	auth := middleware.NewAuth(&config.Config{JWTSecret: []byte("test-secret"), TokenTTL: time.Hour})
	r := gateRouter(auth)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMissingBearerPrefixRejected(t *testing.T) {
	auth := middleware.NewAuth(&config.Config{JWTSecret: []byte("test-secret"), TokenTTL: time.Hour})
	r := gateRouter(auth)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
