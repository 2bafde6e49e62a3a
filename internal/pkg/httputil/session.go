// Package httputil holds small helpers shared by HTTP handlers and their tests.
package httputil

import "github.com/gin-gonic/gin"

const userIDKey = "specfem.userID"

// SetUserID records the signed-in user id on the request context
func SetUserID(c *gin.Context, userID string) {
	c.Set(userIDKey, userID)
}

// UserID returns the signed-in user id, if any
func UserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
