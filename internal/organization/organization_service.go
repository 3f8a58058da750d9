package organization

import (
	"context"
	"encoding/json"
	"time"

	"go-timeoff/internal/auth"
	autherrors "go-timeoff/internal/auth/errors"
	"go-timeoff/internal/tenant"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	OrganizationSlugKeyPrefix = "organization:slug:"
	OrganizationIDKeyPrefix   = "organization:id:"
	organizationCacheTTL      = 10 * time.Minute
)

//go:generate mockgen -destination=mock/organization_service_mock.go -package=mock . Service
type Service interface {
	FindOrganizationBySlug(ctx context.Context, slug string) (*tenant.Organization, error)
	FindOrganizationByID(ctx context.Context, id string) (*tenant.Organization, error)
	FindProfileByID(ctx context.Context, id string) (*tenant.Profile, error)
	GetMe(ctx context.Context, userID string) (auth.MeResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("organization.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("organization.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) FindOrganizationBySlug(ctx context.Context, slug string) (*tenant.Organization, error) {
	return s.cachedOrganization(ctx, OrganizationSlugKeyPrefix+slug, func() (*Organization, error) {
		return s.repo.FindBySlug(ctx, slug)
	})
}

func (s *service) FindOrganizationByID(ctx context.Context, id string) (*tenant.Organization, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return s.cachedOrganization(ctx, OrganizationIDKeyPrefix+uid.String(), func() (*Organization, error) {
		return s.repo.FindByID(ctx, uid)
	})
}

// cachedOrganization serves from redis, collapsing concurrent misses for the
// same key into a single query. Missing organizations are not cached.
func (s *service) cachedOrganization(ctx context.Context, cacheKey string, load func() (*Organization, error)) (*tenant.Organization, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var org tenant.Organization
			if json.Unmarshal([]byte(cached), &org) == nil {
				return &org, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		org, err := load()
		if err != nil {
			s.logger.Error("load organization failed", zap.String("key", cacheKey), zap.Error(err))
			return nil, err
		}
		if org == nil {
			return (*tenant.Organization)(nil), nil
		}

		view := org.ToTenant()
		if s.rdb != nil {
			if data, err := json.Marshal(view); err == nil {
				s.rdb.Set(ctx, cacheKey, data, organizationCacheTTL)
			}
		}
		return view, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*tenant.Organization), nil
}

func (s *service) FindProfileByID(ctx context.Context, id string) (*tenant.Profile, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	profile, err := s.repo.FindProfileByID(ctx, uid)
	if err != nil {
		s.logger.Error("load profile failed", zap.String("profile_id", id), zap.Error(err))
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	return profile.ToTenant(), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (auth.MeResponse, error) {
	profile, err := s.FindProfileByID(ctx, userID)
	if err != nil {
		return auth.MeResponse{}, err
	}
	if profile == nil {
		return auth.MeResponse{}, autherrors.ErrProfileNotFound
	}

	me := auth.MeResponse{
		ID:             profile.ID,
		Email:          profile.Email,
		FullName:       profile.FullName,
		Role:           profile.Role,
		OrganizationID: profile.OrganizationID,
		DashboardPath:  tenant.LoginPath,
	}

	if profile.OrganizationID != nil {
		org, err := s.FindOrganizationByID(ctx, *profile.OrganizationID)
		if err != nil {
			return auth.MeResponse{}, err
		}
		if org != nil {
			slug := org.Slug
			me.OrganizationSlug = &slug
			me.DashboardPath = tenant.DashboardPath(slug)
		}
	}

	return me, nil
}

func mapToResponse(org *tenant.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:             org.ID,
		Slug:           org.Slug,
		Name:           org.Name,
		AdminEmail:     org.AdminEmail,
		HasSpreadsheet: org.SpreadsheetID != "",
	}
}
