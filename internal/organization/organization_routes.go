package organization

import (
	"go-timeoff/internal/tenant"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the page-mode dashboard and the organization detail
// endpoint, and returns the tenant-checked /orgs/:slug group for the other
// modules. authn must tolerate anonymous callers so the resolver can answer
// with a redirect instead of a bare 401.
func RegisterRoutes(r *gin.Engine, api *gin.RouterGroup, handler *Handler, resolver tenant.Resolver, authn gin.HandlerFunc) *gin.RouterGroup {
	r.GET("/org/:slug/dashboard", authn, tenant.RequireOrganization(resolver, tenant.PageMode), handler.Dashboard)

	orgs := api.Group("/orgs/:slug")
	orgs.Use(authn, tenant.RequireOrganization(resolver, tenant.APIMode))
	orgs.GET("", handler.Get)

	return orgs
}
