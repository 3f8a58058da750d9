package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go-timeoff/internal/auth"
	"go-timeoff/internal/bootstrap"
	"go-timeoff/internal/config"
	"go-timeoff/internal/leave"
	"go-timeoff/internal/messaging/kafka"
	"go-timeoff/internal/middleware"
	"go-timeoff/internal/notification"
	"go-timeoff/internal/organization"
	"go-timeoff/internal/rbac"
	"go-timeoff/internal/rbac/infra"
	"go-timeoff/internal/storage"
	"go-timeoff/internal/submission"
	"go-timeoff/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

const (
	publicFormRate  = rate.Limit(0.2)
	publicFormBurst = 5
	userRate        = rate.Limit(2)
	userBurst       = 10
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	organizationRepo := organization.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	referenceRepo := leave.NewReferenceRepository(gormDB)
	recipientRepo := notification.NewRecipientRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)
	loadCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := rbacService.LoadPolicy(loadCtx); err != nil {
		return fmt.Errorf("load rbac policy: %w", err)
	}

	// --- Infrastructure ---
	auditLogger := bootstrap.NewZapAuditLogger(logger)
	publisher := notification.NewOutboxPublisher(outboxRepo, logger)

	var uploader storage.Uploader
	if cfg.Storage.Bucket != "" {
		oss, err := storage.NewOSSUploaderFromConfig(cfg.Storage, logger)
		if err != nil {
			return err
		}
		uploader = oss
	} else {
		logger.Warn("oss bucket not configured, doctor notes will not be stored")
	}

	// --- Services ---
	organizationService := organization.NewService(organizationRepo, rdb, logger)
	resolver := tenant.NewResolver(organizationService, organizationService)
	authService := auth.NewService(cfg.Auth.Secret, organizationService)
	leaveService := leave.NewService(leaveRepo, organizationService, publisher, auditLogger, logger)
	referenceService := leave.NewReferenceService(referenceRepo, logger)
	recipientService := notification.NewRecipientService(recipientRepo, logger)
	submissionService := submission.NewService(
		resolver,
		organizationService,
		organizationService,
		leaveService,
		referenceService,
		uploader,
		publisher,
		cfg.Storage.UploadTimeout,
		logger,
	)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	organizationHandler := organization.NewHandler(leaveService, logger)
	leaveHandler := leave.NewHandler(leaveService, referenceService, logger)
	recipientHandler := notification.NewRecipientHandler(recipientService, logger)
	submissionHandler := submission.NewHandler(submissionService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Routes Registration ---
	router.Use(middleware.RequestID(), middleware.ContextLogger(logger))

	authn := middleware.AuthMiddleware(authService)
	optionalAuthn := middleware.OptionalAuth(authService)

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authn, middleware.RateLimitByUser(userRate, userBurst))

		orgs := organization.RegisterRoutes(router, api, organizationHandler, resolver, optionalAuthn)
		leave.RegisterRoutes(api, orgs, leaveHandler, rbacService)
		notification.RegisterRoutes(orgs, recipientHandler, rbacService)
		rbac.RegisterRoutes(orgs, rbacHandler)
		submission.RegisterRoutes(api, orgs, submissionHandler, submission.RouteOptions{
			Tokens:      authService,
			RBAC:        rbacService,
			Redis:       rdb,
			PublicLimit: publicFormRate,
			PublicBurst: publicFormBurst,
			UserLimit:   userRate,
			UserBurst:   userBurst,
		})
	}

	return nil
}
