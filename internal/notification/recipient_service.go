package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	notificationerrors "go-timeoff/internal/notification/errors"
	"go-timeoff/internal/shared/apperror"
	"go-timeoff/internal/shared/validation"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

//go:generate mockgen -destination=mock/recipient_service_mock.go -package=mock . RecipientService
type RecipientService interface {
	List(ctx context.Context, organizationID string) ([]RecipientResponse, error)
	Add(ctx context.Context, organizationID, actorID string, req AddRecipientRequest) (RecipientResponse, error)
	Update(ctx context.Context, organizationID, id string, req UpdateRecipientRequest) (RecipientResponse, error)
	Delete(ctx context.Context, organizationID, id string) error
	ListActiveEmails(ctx context.Context, organizationID string) ([]string, error)
}

type recipientService struct {
	repo   RecipientRepository
	logger *zap.Logger
}

func NewRecipientService(repo RecipientRepository, logger ...*zap.Logger) RecipientService {
	l := zap.L().Named("notification.recipient")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.recipient")
	}
	return &recipientService{repo: repo, logger: l}
}

func (s *recipientService) List(ctx context.Context, organizationID string) ([]RecipientResponse, error) {
	orgID, err := uuid.Parse(organizationID)
	if err != nil {
		return nil, apperror.ErrNotFound
	}

	items, err := s.repo.List(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("list recipients: %w", err)
	}

	out := make([]RecipientResponse, 0, len(items))
	for _, r := range items {
		out = append(out, mapRecipient(r))
	}
	return out, nil
}

func (s *recipientService) Add(ctx context.Context, organizationID, actorID string, req AddRecipientRequest) (RecipientResponse, error) {
	orgID, err := uuid.Parse(organizationID)
	if err != nil {
		return RecipientResponse{}, apperror.ErrNotFound
	}

	email := normalizeEmail(req.Email)
	if email == "" {
		return RecipientResponse{}, apperror.RequiredField("Email")
	}
	if validation.Var(email, "email") != nil {
		return RecipientResponse{}, notificationerrors.ErrInvalidRecipientEmail
	}

	rec := &Recipient{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Email:          email,
		Name:           strings.TrimSpace(req.Name),
		IsActive:       true,
		CreatedAt:      time.Now(),
	}
	if actor, err := uuid.Parse(actorID); err == nil {
		rec.AddedBy = &actor
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		if isUniqueViolation(err) {
			return RecipientResponse{}, notificationerrors.ErrRecipientExists
		}
		s.logger.Error("create recipient failed", zap.String("organization_id", organizationID), zap.Error(err))
		return RecipientResponse{}, fmt.Errorf("create recipient: %w", err)
	}

	s.logger.Info("recipient added",
		zap.String("organization_id", organizationID),
		zap.String("recipient_id", rec.ID.String()),
	)
	return mapRecipient(*rec), nil
}

func (s *recipientService) Update(ctx context.Context, organizationID, id string, req UpdateRecipientRequest) (RecipientResponse, error) {
	orgID, recID, err := parseIDs(organizationID, id)
	if err != nil {
		return RecipientResponse{}, err
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if len(fields) == 0 {
		return RecipientResponse{}, notificationerrors.ErrNothingToUpdate
	}

	ok, err := s.repo.Update(ctx, orgID, recID, fields)
	if err != nil {
		return RecipientResponse{}, fmt.Errorf("update recipient: %w", err)
	}
	if !ok {
		return RecipientResponse{}, notificationerrors.ErrRecipientNotFound
	}

	rec, err := s.repo.FindByID(ctx, orgID, recID)
	if err != nil {
		return RecipientResponse{}, fmt.Errorf("reload recipient: %w", err)
	}
	if rec == nil {
		return RecipientResponse{}, notificationerrors.ErrRecipientNotFound
	}
	return mapRecipient(*rec), nil
}

func (s *recipientService) Delete(ctx context.Context, organizationID, id string) error {
	orgID, recID, err := parseIDs(organizationID, id)
	if err != nil {
		return err
	}

	ok, err := s.repo.Delete(ctx, orgID, recID)
	if err != nil {
		return fmt.Errorf("delete recipient: %w", err)
	}
	if !ok {
		return notificationerrors.ErrRecipientNotFound
	}
	return nil
}

// ListActiveEmails feeds the fan-out; an unknown organization has none.
func (s *recipientService) ListActiveEmails(ctx context.Context, organizationID string) ([]string, error) {
	orgID, err := uuid.Parse(organizationID)
	if err != nil {
		return nil, nil
	}
	return s.repo.ListActiveEmails(ctx, orgID)
}

func parseIDs(organizationID, id string) (uuid.UUID, uuid.UUID, error) {
	orgID, err := uuid.Parse(organizationID)
	if err != nil {
		return uuid.Nil, uuid.Nil, apperror.ErrNotFound
	}
	recID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, uuid.Nil, notificationerrors.ErrRecipientNotFound
	}
	return orgID, recID, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func normalizeEmail(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

func mapRecipient(r Recipient) RecipientResponse {
	resp := RecipientResponse{
		ID:        r.ID.String(),
		Email:     r.Email,
		Name:      r.Name,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
	}
	if r.AddedBy != nil {
		id := r.AddedBy.String()
		resp.AddedBy = &id
	}
	return resp
}
