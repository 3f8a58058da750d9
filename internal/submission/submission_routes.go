package submission

import (
	"time"

	"go-timeoff/internal/middleware"
	"go-timeoff/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

type RouteOptions struct {
	Tokens         middleware.TokenParser
	RBAC           middleware.RBACService
	Redis          *redis.Client
	IdempotencyTTL time.Duration
	PublicLimit    rate.Limit
	PublicBurst    int
	UserLimit      rate.Limit
	UserBurst      int
}

// RegisterRoutes mounts the anonymous form endpoint on api and the member
// endpoint on orgs, which must already run tenant.RequireOrganization.
func RegisterRoutes(api *gin.RouterGroup, orgs *gin.RouterGroup, handler *Handler, opts RouteOptions) {
	public := api.Group("/forms")
	public.Use(
		middleware.OptionalAuth(opts.Tokens),
		middleware.RateLimitByIP(opts.PublicLimit, opts.PublicBurst),
		middleware.Idempotency(opts.Redis, opts.IdempotencyTTL),
	)
	public.POST("/:form_type", handler.SubmitPublic)

	member := orgs.Group("/forms")
	member.Use(
		middleware.RBACAuthorize(opts.RBAC, rbac.ResourceForm, rbac.ActionSubmit),
		middleware.RateLimitByUser(opts.UserLimit, opts.UserBurst),
		middleware.Idempotency(opts.Redis, opts.IdempotencyTTL),
	)
	member.POST("/:form_type", handler.SubmitForOrganization)
}
