package organization_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	autherrors "go-timeoff/internal/auth/errors"
	"go-timeoff/internal/organization"
	organizationMock "go-timeoff/internal/organization/mock"
	"go-timeoff/internal/tenant"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
)

type serviceDeps struct {
	service   organization.Service
	repo      *organizationMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	rdb, redisMock := redismock.NewClientMock()
	repo := organizationMock.NewMockRepository(ctrl)

	return &serviceDeps{
		service:   organization.NewService(repo, rdb),
		repo:      repo,
		redismock: redisMock,
	}
}

func TestService_FindOrganizationBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("Cache hit skips the database", func(t *testing.T) {
		deps := setupServiceTest(t)
		cached, _ := json.Marshal(tenant.Organization{ID: "org-A", Slug: "acme-clinic", Name: "Acme"})
		deps.redismock.ExpectGet(organization.OrganizationSlugKeyPrefix + "acme-clinic").SetVal(string(cached))

		org, err := deps.service.FindOrganizationBySlug(ctx, "acme-clinic")

		require.NoError(t, err)
		assert.Equal(t, "org-A", org.ID)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("Cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		sheet := "sheet-123"
		key := organization.OrganizationSlugKeyPrefix + "acme-clinic"

		deps.redismock.ExpectGet(key).RedisNil()
		deps.repo.EXPECT().FindBySlug(gomock.Any(), "acme-clinic").Return(&organization.Organization{
			ID:            id,
			Slug:          "acme-clinic",
			Name:          "Acme Clinic",
			AdminEmail:    "admin@acme.test",
			SpreadsheetID: &sheet,
			Settings:      datatypes.JSONMap{"locale": "fr"},
		}, nil)
		deps.redismock.Regexp().ExpectSet(key, `.*`, 10*time.Minute).SetVal("OK")

		org, err := deps.service.FindOrganizationBySlug(ctx, "acme-clinic")

		require.NoError(t, err)
		assert.Equal(t, id.String(), org.ID)
		assert.Equal(t, "sheet-123", org.SpreadsheetID)
		assert.Equal(t, "fr", org.Locale)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("Unknown slug is nil without caching", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(organization.OrganizationSlugKeyPrefix + "ghost").RedisNil()
		deps.repo.EXPECT().FindBySlug(gomock.Any(), "ghost").Return(nil, nil)

		org, err := deps.service.FindOrganizationBySlug(ctx, "ghost")

		require.NoError(t, err)
		assert.Nil(t, org)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("Database error propagates", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(organization.OrganizationSlugKeyPrefix + "acme-clinic").RedisNil()
		deps.repo.EXPECT().FindBySlug(gomock.Any(), "acme-clinic").Return(nil, errors.New("database connection lost"))

		org, err := deps.service.FindOrganizationBySlug(ctx, "acme-clinic")

		assert.Error(t, err)
		assert.Nil(t, org)
	})
}

func TestService_FindByIDWithMalformedID(t *testing.T) {
	deps := setupServiceTest(t)

	org, err := deps.service.FindOrganizationByID(context.Background(), "org-456")
	require.NoError(t, err)
	assert.Nil(t, org)

	profile, err := deps.service.FindProfileByID(context.Background(), "not-a-uuid")
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestService_GetMe(t *testing.T) {
	ctx := context.Background()

	t.Run("Member gets dashboard path", func(t *testing.T) {
		deps := setupServiceTest(t)
		userID := uuid.New()
		orgID := uuid.New()
		deps.repo.EXPECT().FindProfileByID(gomock.Any(), userID).Return(&organization.Profile{
			ID:             userID,
			Email:          "jane@acme.test",
			FullName:       "Jane Doe",
			Role:           tenant.RoleStaff,
			OrganizationID: &orgID,
		}, nil)
		deps.redismock.ExpectGet(organization.OrganizationIDKeyPrefix + orgID.String()).RedisNil()
		deps.repo.EXPECT().FindByID(gomock.Any(), orgID).Return(&organization.Organization{ID: orgID, Slug: "acme-clinic"}, nil)
		deps.redismock.Regexp().ExpectSet(organization.OrganizationIDKeyPrefix+orgID.String(), `.*`, 10*time.Minute).SetVal("OK")

		me, err := deps.service.GetMe(ctx, userID.String())

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", me.FullName)
		require.NotNil(t, me.OrganizationSlug)
		assert.Equal(t, "acme-clinic", *me.OrganizationSlug)
		assert.Equal(t, "/org/acme-clinic/dashboard", me.DashboardPath)
	})

	t.Run("Profile without organization goes to login", func(t *testing.T) {
		deps := setupServiceTest(t)
		userID := uuid.New()
		deps.repo.EXPECT().FindProfileByID(gomock.Any(), userID).Return(&organization.Profile{ID: userID, Role: tenant.RoleStaff}, nil)

		me, err := deps.service.GetMe(ctx, userID.String())

		require.NoError(t, err)
		assert.Nil(t, me.OrganizationSlug)
		assert.Equal(t, "/login", me.DashboardPath)
	})

	t.Run("Missing profile", func(t *testing.T) {
		deps := setupServiceTest(t)
		userID := uuid.New()
		deps.repo.EXPECT().FindProfileByID(gomock.Any(), userID).Return(nil, nil)

		_, err := deps.service.GetMe(ctx, userID.String())

		assert.ErrorIs(t, err, autherrors.ErrProfileNotFound)
	})
}
