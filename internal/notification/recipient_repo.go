package notification

import (
	"context"
	"errors"

	"go-timeoff/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/recipient_repo_mock.go -package=mock . RecipientRepository
type RecipientRepository interface {
	List(ctx context.Context, organizationID uuid.UUID) ([]Recipient, error)
	ListActiveEmails(ctx context.Context, organizationID uuid.UUID) ([]string, error)
	FindByID(ctx context.Context, organizationID, id uuid.UUID) (*Recipient, error)
	Create(ctx context.Context, r *Recipient) error
	Update(ctx context.Context, organizationID, id uuid.UUID, fields map[string]any) (bool, error)
	Delete(ctx context.Context, organizationID, id uuid.UUID) (bool, error)
}

type recipientRepository struct {
	db *gorm.DB
}

func NewRecipientRepository(db *gorm.DB) RecipientRepository {
	return &recipientRepository{db: db}
}

func (r *recipientRepository) List(ctx context.Context, organizationID uuid.UUID) ([]Recipient, error) {
	var items []Recipient
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID.String())).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *recipientRepository) ListActiveEmails(ctx context.Context, organizationID uuid.UUID) ([]string, error) {
	var emails []string
	err := r.db.WithContext(ctx).
		Model(&Recipient{}).
		Scopes(tenant.Scope(organizationID.String())).
		Where("is_active = ?", true).
		Order("email ASC").
		Pluck("email", &emails).Error
	if err != nil {
		return nil, err
	}
	return emails, nil
}

func (r *recipientRepository) FindByID(ctx context.Context, organizationID, id uuid.UUID) (*Recipient, error) {
	var rec Recipient
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID.String())).
		Where("id = ?", id).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *recipientRepository) Create(ctx context.Context, rec *Recipient) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recipientRepository) Update(ctx context.Context, organizationID, id uuid.UUID, fields map[string]any) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Recipient{}).
		Scopes(tenant.Scope(organizationID.String())).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *recipientRepository) Delete(ctx context.Context, organizationID, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID.String())).
		Where("id = ?", id).
		Delete(&Recipient{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
