package tenant

import (
	"net/http"

	"go-timeoff/internal/auth"
	"go-timeoff/internal/shared/apperror"
	"go-timeoff/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Mode int

const (
	// PageMode answers redirects with a 302 Location.
	PageMode Mode = iota
	// APIMode answers redirects with 401/403 JSON envelopes.
	APIMode
)

const (
	ctxOrganization = "tenant_organization"
	ctxProfile      = "tenant_profile"
)

// RequireOrganization resolves the :slug path parameter for the current
// principal and stops the chain unless access is allowed.
func RequireOrganization(resolver Resolver, mode Mode, logger ...*zap.Logger) gin.HandlerFunc {
	l := zap.L().Named("tenant.middleware")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("tenant.middleware")
	}

	return func(c *gin.Context) {
		slug := c.Param("slug")
		principal := auth.PrincipalFrom(c)

		verdict, err := resolver.ResolveAccess(c.Request.Context(), principal, slug)
		if err != nil {
			l.Error("resolve access failed", zap.String("slug", slug), zap.Error(err))
			response.AbortWithError(c, err)
			return
		}

		switch verdict.Kind {
		case VerdictAllowed:
			SetAccess(c, verdict.Organization, verdict.Profile)
			c.Next()
		case VerdictNotFound:
			response.AbortWithError(c, apperror.ErrNotFound)
		case VerdictRedirect:
			if mode == PageMode {
				c.Redirect(http.StatusFound, verdict.RedirectTo)
				c.Abort()
				return
			}
			if verdict.RedirectTo == LoginPath {
				response.AbortWithError(c, apperror.ErrUnauthorized)
				return
			}
			response.AbortWithError(c, apperror.ErrForbidden.WithDetails(gin.H{"redirect_to": verdict.RedirectTo}))
		default:
			response.AbortWithError(c, apperror.ErrInternal)
		}
	}
}

// SetAccess stores an allowed verdict on the gin context.
func SetAccess(c *gin.Context, org *Organization, profile *Profile) {
	c.Set(ctxOrganization, org)
	c.Set(ctxProfile, profile)
	c.Set("organization_id", org.ID)
	c.Set("organization_slug", org.Slug)
	c.Set("profile_id", profile.ID)
	c.Set("role", profile.Role)
}

// OrganizationFrom returns the organization resolved by RequireOrganization.
func OrganizationFrom(c *gin.Context) *Organization {
	v, ok := c.Get(ctxOrganization)
	if !ok {
		return nil
	}
	org, _ := v.(*Organization)
	return org
}

// ProfileFrom returns the member profile resolved by RequireOrganization.
func ProfileFrom(c *gin.Context) *Profile {
	v, ok := c.Get(ctxProfile)
	if !ok {
		return nil
	}
	p, _ := v.(*Profile)
	return p
}
