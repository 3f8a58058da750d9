package notification

import (
	"go-timeoff/internal/middleware"
	"go-timeoff/internal/rbac"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects orgs to already carry the tenant access middleware.
func RegisterRoutes(orgs *gin.RouterGroup, handler *RecipientHandler, rbacService middleware.RBACService) {
	recipients := orgs.Group("/recipients")
	recipients.Use(middleware.RBACAuthorize(rbacService, rbac.ResourceRecipient, rbac.ActionManage))
	{
		recipients.GET("", handler.List)
		recipients.POST("", handler.Add)
		recipients.PATCH("/:id", handler.Update)
		recipients.DELETE("/:id", handler.Delete)
	}
}
