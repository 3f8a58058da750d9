package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-timeoff/internal/domain"
	"go-timeoff/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeRBAC struct {
	err error
}

func (f fakeRBAC) Enforce(req domain.EnforceRequest) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return req.Role == "admin", nil
}

func TestRBACAuthorize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(service middleware.RBACService, role string) int {
		r := gin.New()
		r.GET("/x", func(c *gin.Context) {
			if role != "" {
				c.Set("role", role)
			}
			c.Next()
		}, middleware.RBACAuthorize(service, "leave_request", "review"), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		return w.Code
	}

	assert.Equal(t, http.StatusOK, run(fakeRBAC{}, "admin"))
	assert.Equal(t, http.StatusForbidden, run(fakeRBAC{}, "staff"))
	assert.Equal(t, http.StatusUnauthorized, run(fakeRBAC{}, ""))
	assert.Equal(t, http.StatusInternalServerError, run(fakeRBAC{err: errors.New("boom")}, "admin"))
}
