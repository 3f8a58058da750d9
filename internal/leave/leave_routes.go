package leave

import (
	"go-timeoff/internal/middleware"
	"go-timeoff/internal/rbac"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the reference endpoints on api and the request
// lifecycle endpoints on orgs, which must already run
// tenant.RequireOrganization in api mode.
func RegisterRoutes(
	api *gin.RouterGroup,
	orgs *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	api.GET("/leave-types", handler.ListLeaveTypes)
	api.GET("/pay-periods", handler.ListPayPeriods)

	requests := orgs.Group("/leave-requests")
	{
		requests.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceLeaveRequest, rbac.ActionRead), handler.List)
		requests.GET("/export", middleware.RBACAuthorize(rbacService, rbac.ResourceLeaveRequest, rbac.ActionExport), handler.Export)
		requests.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceLeaveRequest, rbac.ActionRead), handler.GetByID)
		requests.POST("/:id/review", middleware.RBACAuthorize(rbacService, rbac.ResourceLeaveRequest, rbac.ActionReview), handler.Review)
	}

	orgs.GET("/calendar", middleware.RBACAuthorize(rbacService, rbac.ResourceCalendar, rbac.ActionRead), handler.Calendar)
}
