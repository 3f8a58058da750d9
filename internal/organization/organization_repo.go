package organization

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository lookups return (nil, nil) when no row matches.
//
//go:generate mockgen -destination=mock/organization_repo_mock.go -package=mock . Repository
type Repository interface {
	FindBySlug(ctx context.Context, slug string) (*Organization, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Organization, error)
	FindProfileByID(ctx context.Context, id uuid.UUID) (*Profile, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindBySlug(ctx context.Context, slug string) (*Organization, error) {
	var org Organization
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&org).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Organization, error) {
	var org Organization
	err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *repository) FindProfileByID(ctx context.Context, id uuid.UUID) (*Profile, error) {
	var profile Profile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
