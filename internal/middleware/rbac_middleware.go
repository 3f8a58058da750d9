package middleware

import (
	"go-timeoff/internal/domain"
	"go-timeoff/internal/shared/apperror"
	"go-timeoff/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is satisfied by rbac.Service.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

// RBACAuthorize checks the tenant role set by tenant.RequireOrganization.
func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.AbortWithError(c, apperror.ErrUnauthorized)
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			Role:     role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			response.AbortWithError(c, err)
			return
		}

		if !allowed {
			response.AbortWithError(c, apperror.ErrForbidden.WithDetails(map[string]string{
				"required": resource + ":" + action,
			}))
			return
		}
		c.Next()
	}
}
