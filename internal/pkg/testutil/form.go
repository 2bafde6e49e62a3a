package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/MGTheTrain/specfem-web/internal/pkg/httputil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// NewFormRequest builds a url-encoded form request as browsers submit it
func NewFormRequest(t *testing.T, method, target string, values url.Values) *http.Request {
	t.Helper()

	req, err := http.NewRequest(method, target, strings.NewReader(values.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return req
}

// NewTestContext returns a gin test context bound to req, with route params
// and an optional signed-in user id already set.
func NewTestContext(req *http.Request, userID string, params ...gin.Param) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = params
	if userID != "" {
		httputil.SetUserID(c, userID)
	}

	return c, w
}
