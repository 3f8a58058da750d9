package tenant_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-timeoff/internal/auth"
	"go-timeoff/internal/tenant"
	tenantMock "go-timeoff/internal/tenant/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAccessRouter(resolver tenant.Resolver, mode tenant.Mode, principal *auth.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	withPrincipal := func(c *gin.Context) {
		if principal != nil {
			auth.SetPrincipal(c, principal)
		}
		c.Next()
	}
	r.GET("/org/:slug/dashboard", withPrincipal, tenant.RequireOrganization(resolver, mode), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"organization_id": c.GetString("organization_id"),
			"role":            c.GetString("role"),
			"slug":            tenant.OrganizationFrom(c).Slug,
		})
	})
	return r
}

func TestRequireOrganization(t *testing.T) {
	principal := &auth.Principal{ID: "user-1"}

	t.Run("Allowed sets tenant context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		resolver := tenantMock.NewMockResolver(ctrl)
		org := &tenant.Organization{ID: "org-A", Slug: "acme-clinic"}
		profile := &tenant.Profile{ID: "user-1", Role: tenant.RoleAdmin}
		resolver.EXPECT().ResolveAccess(gomock.Any(), principal, "acme-clinic").Return(tenant.Allowed(org, profile), nil)

		w := httptest.NewRecorder()
		newAccessRouter(resolver, tenant.PageMode, principal).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/org/acme-clinic/dashboard", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "org-A", body["organization_id"])
		assert.Equal(t, "admin", body["role"])
		assert.Equal(t, "acme-clinic", body["slug"])
	})

	t.Run("Page mode redirects with 302", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		resolver := tenantMock.NewMockResolver(ctrl)
		resolver.EXPECT().ResolveAccess(gomock.Any(), principal, "beta-care").Return(tenant.Redirect("/org/acme-clinic/dashboard"), nil)

		w := httptest.NewRecorder()
		newAccessRouter(resolver, tenant.PageMode, principal).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/org/beta-care/dashboard", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/org/acme-clinic/dashboard", w.Header().Get("Location"))
	})

	t.Run("API mode login redirect is 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		resolver := tenantMock.NewMockResolver(ctrl)
		resolver.EXPECT().ResolveAccess(gomock.Any(), (*auth.Principal)(nil), "acme-clinic").Return(tenant.Redirect("/login"), nil)

		w := httptest.NewRecorder()
		newAccessRouter(resolver, tenant.APIMode, nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/org/acme-clinic/dashboard", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("API mode cross tenant is 403 with redirect hint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		resolver := tenantMock.NewMockResolver(ctrl)
		resolver.EXPECT().ResolveAccess(gomock.Any(), principal, "beta-care").Return(tenant.Redirect("/org/acme-clinic/dashboard"), nil)

		w := httptest.NewRecorder()
		newAccessRouter(resolver, tenant.APIMode, principal).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/org/beta-care/dashboard", nil))

		require.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), `"redirect_to":"/org/acme-clinic/dashboard"`)
	})

	t.Run("Not found is 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		resolver := tenantMock.NewMockResolver(ctrl)
		resolver.EXPECT().ResolveAccess(gomock.Any(), principal, "nope").Return(tenant.NotFound(), nil)

		w := httptest.NewRecorder()
		newAccessRouter(resolver, tenant.PageMode, principal).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/org/nope/dashboard", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Resolver failure is 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		resolver := tenantMock.NewMockResolver(ctrl)
		resolver.EXPECT().ResolveAccess(gomock.Any(), principal, "acme-clinic").Return(tenant.Verdict{}, errors.New("db down"))

		w := httptest.NewRecorder()
		newAccessRouter(resolver, tenant.APIMode, principal).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/org/acme-clinic/dashboard", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
