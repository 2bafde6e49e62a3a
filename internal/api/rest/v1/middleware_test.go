//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MGTheTrain/specfem-web/internal/pkg/config"
	"github.com/MGTheTrain/specfem-web/internal/pkg/httputil"
	"github.com/MGTheTrain/specfem-web/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newSessionTestRouter(tokens *MockSessionTokens, required bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	middleware := OptionalSession(tokens, config.DefaultSessionCookie)
	if required {
		middleware = RequireSession(tokens, config.DefaultSessionCookie)
	}
	r.GET("/whoami", middleware, func(c *gin.Context) {
		userID, _ := httputil.UserID(c)
		c.String(http.StatusOK, userID)
	})
	return r
}

func TestRequireSession_RedirectsWithoutCookie(t *testing.T) {
	r := newSessionTestRouter(new(MockSessionTokens), true)

	req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, LoginPath+"?next=%2Fwhoami", w.Header().Get("Location"))
}

func TestRequireSession_RedirectsOnInvalidToken(t *testing.T) {
	tokens := new(MockSessionTokens)
	tokens.On("Verify", "expired").Return("", errors.New("token is expired"))
	r := newSessionTestRouter(tokens, true)

	req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: config.DefaultSessionCookie, Value: "expired"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
}

func TestRequireSession_SetsUser(t *testing.T) {
	tokens := new(MockSessionTokens)
	tokens.On("Verify", "valid").Return(testUserID, nil)
	r := newSessionTestRouter(tokens, true)

	req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: config.DefaultSessionCookie, Value: "valid"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testUserID, w.Body.String())
}

func TestOptionalSession_AllowsAnonymous(t *testing.T) {
	r := newSessionTestRouter(new(MockSessionTokens), false)

	req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(logger.NewSlogLogger(slog.NewTextHandler(&buf, nil))))
	r.POST("/simulations", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, BasePath+"/")
	})

	req, _ := http.NewRequest(http.MethodPost, "/simulations", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, buf.String(), "component=http")
	assert.Contains(t, buf.String(), "method=POST")
	assert.Contains(t, buf.String(), "status=303")
}
