package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/cartigo-backend/internal/config"
)

func sessionTestConfig() *config.Config {
	return &config.Config{
		Storefront: config.StorefrontConfig{
			SessionCookie: "session_id",
			SessionMaxAge: 86400,
		},
	}
}

func TestSessionIssuesNewID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var captured string
	r := gin.New()
	r.Use(Session(sessionTestConfig()))
	r.GET("/", func(c *gin.Context) {
		captured = GetSessionID(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	require.NotEmpty(t, captured)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session_id", cookies[0].Name)
	assert.Equal(t, captured, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSessionReusesExistingCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var captured string
	r := gin.New()
	r.Use(Session(sessionTestConfig()))
	r.GET("/", func(c *gin.Context) {
		captured = GetSessionID(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "existing-session"})
	r.ServeHTTP(w, req)

	assert.Equal(t, "existing-session", captured)
	assert.Empty(t, w.Result().Cookies())
}

func TestGetSessionIDWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, "", GetSessionID(c))
}
