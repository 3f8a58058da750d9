package auth

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects the authentication middleware to be passed in so the
// package stays free of the middleware import cycle.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authn gin.HandlerFunc, limit gin.HandlerFunc) {
	auth := r.Group("/auth")
	{
		auth.GET("/me", authn, limit, handler.Me)
	}
}
