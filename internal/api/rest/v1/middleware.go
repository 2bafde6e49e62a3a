package v1

import (
	"net/http"
	"net/url"
	"time"

	"github.com/MGTheTrain/specfem-web/internal/domain/users"
	"github.com/MGTheTrain/specfem-web/internal/pkg/httputil"
	"github.com/MGTheTrain/specfem-web/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequireSession redirects requests without a valid session cookie to the login page
func RequireSession(tokens users.SessionTokens, cookieName string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !authenticate(ctx, tokens, cookieName) {
			target := LoginPath + "?next=" + url.QueryEscape(ctx.Request.URL.RequestURI())
			ctx.Redirect(http.StatusFound, target)
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

// OptionalSession records the signed-in user when a valid session cookie is present
func OptionalSession(tokens users.SessionTokens, cookieName string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authenticate(ctx, tokens, cookieName)
		ctx.Next()
	}
}

func authenticate(ctx *gin.Context, tokens users.SessionTokens, cookieName string) bool {
	token, err := ctx.Cookie(cookieName)
	if err != nil || token == "" {
		return false
	}
	userID, err := tokens.Verify(token)
	if err != nil {
		return false
	}
	httputil.SetUserID(ctx, userID)
	return true
}

// RequestLogger logs one line per request
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	log = log.With("component", "http")
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		log.Info("request",
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", ctx.Writer.Status(),
			"latency", time.Since(start).String(),
			"client_ip", ctx.ClientIP())
	}
}
