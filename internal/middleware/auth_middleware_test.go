package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-timeoff/internal/auth"
	autherrors "go-timeoff/internal/auth/errors"
	"go-timeoff/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeTokens struct{}

func (fakeTokens) ParseToken(token string) (*auth.Principal, error) {
	switch token {
	case "good":
		return &auth.Principal{ID: "user-1", Email: "jane@acme.test"}, nil
	case "expired":
		return nil, autherrors.ErrTokenExpired
	default:
		return nil, autherrors.ErrInvalidToken
	}
}

func newAuthRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", mw, func(c *gin.Context) {
		p := auth.PrincipalFrom(c)
		if p == nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, p.ID)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newAuthRouter(middleware.AuthMiddleware(fakeTokens{}))

	cases := []struct {
		name   string
		header string
		cookie string
		status int
		body   string
	}{
		{name: "bearer", header: "Bearer good", status: http.StatusOK, body: "user-1"},
		{name: "cookie", cookie: "good", status: http.StatusOK, body: "user-1"},
		{name: "missing", status: http.StatusUnauthorized},
		{name: "expired", header: "Bearer expired", status: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer nope", status: http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "access_token", Value: tc.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			if tc.body != "" {
				assert.Equal(t, tc.body, w.Body.String())
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	r := newAuthRouter(middleware.OptionalAuth(fakeTokens{}))

	t.Run("anonymous passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, "anonymous", w.Body.String())
	})

	t.Run("invalid token is anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer nope")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "anonymous", w.Body.String())
	})

	t.Run("valid token sets principal", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer good")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "user-1", w.Body.String())
	})
}
