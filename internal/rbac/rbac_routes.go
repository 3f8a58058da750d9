package rbac

import "github.com/gin-gonic/gin"

// RegisterRoutes expects orgs to already carry the tenant access middleware.
func RegisterRoutes(orgs *gin.RouterGroup, handler *Handler) {
	orgs.GET("/permissions", handler.MyPermissions)
}
