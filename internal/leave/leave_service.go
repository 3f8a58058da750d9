package leave

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go-timeoff/internal/auth"
	"go-timeoff/internal/bootstrap"
	"go-timeoff/internal/events"
	leaveerrors "go-timeoff/internal/leave/errors"
	"go-timeoff/internal/shared/apperror"
	"go-timeoff/internal/shared/contextutil"
	"go-timeoff/internal/shared/response"
	"go-timeoff/internal/tenant"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

//go:generate mockgen -destination=mock/leave_service_mock.go -package=mock . Service
type Service interface {
	Create(ctx context.Context, in CreateLeaveRequestInput) (LeaveRequestResponse, error)
	Review(ctx context.Context, reviewer auth.Principal, id string, req ReviewLeaveRequest) (LeaveRequestResponse, error)
	GetByID(ctx context.Context, viewer tenant.Profile, organizationID, id string) (LeaveRequestResponse, error)
	List(ctx context.Context, viewer tenant.Profile, organizationID string, q ListLeaveRequestsQuery) ([]LeaveRequestResponse, response.PaginationMeta, error)
	Calendar(ctx context.Context, organizationID string, q CalendarQuery) ([]CalendarEntry, error)
	Export(ctx context.Context, org tenant.Organization, status string) ([]byte, error)
	CountPending(ctx context.Context, organizationID string) (int64, error)
}

type service struct {
	repo      Repository
	profiles  tenant.ProfileFinder
	publisher events.Publisher
	audit     bootstrap.AuditLogger
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	profiles tenant.ProfileFinder,
	publisher events.Publisher,
	audit bootstrap.AuditLogger,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		repo:      repo,
		profiles:  profiles,
		publisher: publisher,
		audit:     audit,
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, in CreateLeaveRequestInput) (LeaveRequestResponse, error) {
	userID, err := uuid.Parse(in.UserID)
	if err != nil {
		return LeaveRequestResponse{}, apperror.InvalidField("user_id")
	}
	orgID, err := uuid.Parse(in.OrganizationID)
	if err != nil {
		return LeaveRequestResponse{}, apperror.InvalidField("organization_id")
	}
	leaveTypeID, err := uuid.Parse(in.LeaveTypeID)
	if err != nil {
		return LeaveRequestResponse{}, apperror.InvalidField("leave_type")
	}
	if in.EndDate.Before(in.StartDate) {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidDateRange
	}
	if DaySpan(in.StartDate, in.EndDate) > MaxRequestDays {
		return LeaveRequestResponse{}, leaveerrors.ErrRequestTooLong
	}

	now := s.now()
	req := &LeaveRequest{
		ID:             uuid.New(),
		UserID:         userID,
		LeaveTypeID:    leaveTypeID,
		OrganizationID: orgID,
		SubmissionDate: truncateDay(now),
		StartDate:      truncateDay(in.StartDate),
		EndDate:        truncateDay(in.EndDate),
		Reason:         strings.TrimSpace(in.Reason),
		CoverageName:   optionalString(in.CoverageName),
		CoverageEmail:  optionalString(in.CoverageEmail),
		Status:         StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.PayPeriodID != nil {
		if ppID, err := uuid.Parse(*in.PayPeriodID); err == nil {
			req.PayPeriodID = &ppID
		}
	}

	if err := s.repo.CreateWithDates(ctx, req); err != nil {
		s.logger.Error("create leave request failed",
			zap.String("organization_id", in.OrganizationID),
			zap.String("user_id", in.UserID),
			zap.Error(err),
		)
		return LeaveRequestResponse{}, apperror.Wrap(err, apperror.CodeInternalError, "failed to save leave request", http.StatusInternalServerError)
	}

	s.logger.Info("leave request created",
		zap.String("request_id", req.ID.String()),
		zap.String("organization_id", in.OrganizationID),
		zap.Int("days", req.TotalDays()),
	)
	return mapToResponse(*req), nil
}

// Review moves a pending request to approved or denied. Authorization is
// checked before state so a foreign admin never learns the current status.
func (s *service) Review(ctx context.Context, reviewer auth.Principal, id string, req ReviewLeaveRequest) (LeaveRequestResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if req.Decision != StatusApproved && req.Decision != StatusDenied {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidDecision
	}

	reqID, err := uuid.Parse(id)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrLeaveRequestNotFound
	}

	lr, err := s.repo.FindByID(ctx, reqID)
	if err != nil {
		log.Error("load leave request failed", zap.String("request_id", id), zap.Error(err))
		return LeaveRequestResponse{}, fmt.Errorf("load leave request: %w", err)
	}
	if lr == nil {
		return LeaveRequestResponse{}, leaveerrors.ErrLeaveRequestNotFound
	}

	profile, err := s.profiles.FindProfileByID(ctx, reviewer.ID)
	if err != nil {
		return LeaveRequestResponse{}, fmt.Errorf("load reviewer profile: %w", err)
	}
	if profile == nil || !profile.IsAdmin() || !profile.BelongsTo(lr.OrganizationID.String()) {
		log.Warn("leave review forbidden",
			zap.String("request_id", id),
			zap.String("reviewer_id", reviewer.ID),
		)
		return LeaveRequestResponse{}, leaveerrors.ErrNotReviewer
	}

	if lr.Status != StatusPending {
		return LeaveRequestResponse{}, leaveerrors.ErrAlreadyReviewed
	}

	reviewerID, err := uuid.Parse(profile.ID)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrNotReviewer
	}

	reviewedAt := s.now()
	update := ReviewUpdate{
		Status:     req.Decision,
		ReviewedBy: reviewerID,
		ReviewedAt: reviewedAt,
		AdminNotes: optionalString(req.AdminNotes),
	}

	ok, err := s.repo.ConditionalReview(ctx, lr.OrganizationID, lr.ID, update)
	if err != nil {
		log.Error("review leave request failed", zap.String("request_id", id), zap.Error(err))
		return LeaveRequestResponse{}, fmt.Errorf("review leave request: %w", err)
	}
	if !ok {
		// lost the race to a concurrent reviewer
		return LeaveRequestResponse{}, leaveerrors.ErrAlreadyReviewed
	}

	lr.Status = update.Status
	lr.ReviewedBy = &update.ReviewedBy
	lr.ReviewedAt = &reviewedAt
	lr.AdminNotes = update.AdminNotes
	lr.UpdatedAt = reviewedAt

	s.publishDecision(ctx, *lr, log)

	if s.audit != nil {
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:  "leave_request." + req.Decision,
			ActorID: profile.ID,
			Message: "leave request reviewed",
			Meta: map[string]any{
				"request_id":      lr.ID.String(),
				"organization_id": lr.OrganizationID.String(),
			},
		})
	}

	log.Info("leave request reviewed",
		zap.String("request_id", id),
		zap.String("decision", req.Decision),
		zap.String("reviewer_id", profile.ID),
	)
	return mapToResponse(*lr), nil
}

// publishDecision never fails the review; the outbox write runs on a context
// detached from request cancellation.
func (s *service) publishDecision(ctx context.Context, lr LeaveRequest, log *zap.Logger) {
	if s.publisher == nil {
		return
	}

	ev := toNotification(lr)
	ev.Type = events.TypeApproved
	if lr.Status == StatusDenied {
		ev.Type = events.TypeDenied
	}
	ev.OccurredAt = s.now()

	if err := s.publisher.Publish(contextutil.Detach(ctx), ev); err != nil {
		log.Warn("publish review notification failed",
			zap.String("request_id", lr.ID.String()),
			zap.String("type", ev.Type),
			zap.Error(err),
		)
	}
}

func (s *service) GetByID(ctx context.Context, viewer tenant.Profile, organizationID, id string) (LeaveRequestResponse, error) {
	orgID, err := uuid.Parse(organizationID)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrLeaveRequestNotFound
	}
	reqID, err := uuid.Parse(id)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrLeaveRequestNotFound
	}

	lr, err := s.repo.FindByIDInOrganization(ctx, orgID, reqID)
	if err != nil {
		return LeaveRequestResponse{}, fmt.Errorf("load leave request: %w", err)
	}
	// staff only see their own requests
	if lr == nil || (!viewer.IsAdmin() && lr.UserID.String() != viewer.ID) {
		return LeaveRequestResponse{}, leaveerrors.ErrLeaveRequestNotFound
	}

	return mapToResponse(*lr), nil
}

func (s *service) List(ctx context.Context, viewer tenant.Profile, organizationID string, q ListLeaveRequestsQuery) ([]LeaveRequestResponse, response.PaginationMeta, error) {
	orgID, err := uuid.Parse(organizationID)
	if err != nil {
		return nil, response.PaginationMeta{}, apperror.ErrNotFound
	}
	if !validStatusFilter(q.Status) {
		return nil, response.PaginationMeta{}, leaveerrors.ErrInvalidStatusFilter
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	filter := ListFilter{
		Status: q.Status,
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
	}
	if !viewer.IsAdmin() {
		uid, err := uuid.Parse(viewer.ID)
		if err != nil {
			return nil, response.PaginationMeta{}, apperror.ErrForbidden
		}
		filter.UserID = &uid
	}

	items, total, err := s.repo.List(ctx, orgID, filter)
	if err != nil {
		s.logger.Error("list leave requests failed", zap.String("organization_id", organizationID), zap.Error(err))
		return nil, response.PaginationMeta{}, fmt.Errorf("list leave requests: %w", err)
	}

	out := make([]LeaveRequestResponse, 0, len(items))
	for _, lr := range items {
		out = append(out, mapToResponse(lr))
	}
	return out, response.NewPaginationMeta(total, page, pageSize), nil
}

// Calendar defaults to the current month when no range is given.
func (s *service) Calendar(ctx context.Context, organizationID string, q CalendarQuery) ([]CalendarEntry, error) {
	orgID, err := uuid.Parse(organizationID)
	if err != nil {
		return nil, apperror.ErrNotFound
	}

	today := truncateDay(s.now())
	from := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	if q.From != "" {
		if from, err = ParseDate(q.From); err != nil {
			return nil, leaveerrors.ErrInvalidDateFormat
		}
		if q.To == "" {
			to = from.AddDate(0, 1, -1)
		}
	}
	if q.To != "" {
		if to, err = ParseDate(q.To); err != nil {
			return nil, leaveerrors.ErrInvalidDateFormat
		}
	}
	if to.Before(from) {
		return nil, leaveerrors.ErrInvalidDateRange
	}
	if DaySpan(from, to) > MaxRequestDays {
		return nil, leaveerrors.ErrCalendarRangeTooLarge
	}

	rows, err := s.repo.CalendarDates(ctx, orgID, from, to)
	if err != nil {
		return nil, fmt.Errorf("load calendar: %w", err)
	}

	entries := make([]CalendarEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, CalendarEntry{
			Date:         r.Date.Format(dateLayout),
			RequestID:    r.LeaveRequestID.String(),
			EmployeeName: r.EmployeeName,
			LeaveType:    r.LeaveTypeName,
			Color:        r.LeaveTypeColor,
			Status:       r.Status,
		})
	}
	return entries, nil
}

func (s *service) Export(ctx context.Context, org tenant.Organization, status string) ([]byte, error) {
	orgID, err := uuid.Parse(org.ID)
	if err != nil {
		return nil, apperror.ErrNotFound
	}
	if !validStatusFilter(status) {
		return nil, leaveerrors.ErrInvalidStatusFilter
	}

	items, _, err := s.repo.List(ctx, orgID, ListFilter{Status: status})
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}

	data, err := buildWorkbook(items, org.Name)
	if err != nil {
		s.logger.Error("build export workbook failed", zap.String("organization_id", org.ID), zap.Error(err))
		return nil, leaveerrors.ErrExportFailed
	}
	return data, nil
}

func (s *service) CountPending(ctx context.Context, organizationID string) (int64, error) {
	orgID, err := uuid.Parse(organizationID)
	if err != nil {
		return 0, nil
	}
	return s.repo.CountPending(ctx, orgID)
}

func validStatusFilter(status string) bool {
	switch status {
	case "", StatusPending, StatusApproved, StatusDenied:
		return true
	default:
		return false
	}
}

func optionalString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// toNotification carries the request fields shared by review events and the
// export rows.
func toNotification(lr LeaveRequest) events.Notification {
	formType := events.FormDayOff
	if lr.IsVacation() {
		formType = events.FormVacation
	}

	ev := events.Notification{
		FormType:       formType,
		OrganizationID: lr.OrganizationID.String(),
		OccurredAt:     lr.CreatedAt,
		SubmittedVia:   events.SubmittedViaPortal,
		StartDate:      lr.StartDate.Format(dateLayout),
		EndDate:        lr.EndDate.Format(dateLayout),
		TotalDays:      lr.TotalDays(),
		Reason:         lr.Reason,
		CoverageName:   deref(lr.CoverageName),
		CoverageEmail:  deref(lr.CoverageEmail),
		RequestID:      lr.ID.String(),
		AdminNotes:     deref(lr.AdminNotes),
	}
	if lr.Employee != nil {
		ev.EmployeeName = lr.Employee.FullName
		ev.EmployeeEmail = lr.Employee.Email
	}
	if lr.LeaveType != nil {
		ev.LeaveType = lr.LeaveType.Name
	}
	if lr.PayPeriod != nil {
		ev.PayPeriodLabel = lr.PayPeriod.Label()
	}
	return ev
}

func mapToResponse(lr LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:             lr.ID.String(),
		UserID:         lr.UserID.String(),
		OrganizationID: lr.OrganizationID.String(),
		LeaveTypeID:    lr.LeaveTypeID.String(),
		SubmissionDate: lr.SubmissionDate.Format(dateLayout),
		StartDate:      lr.StartDate.Format(dateLayout),
		EndDate:        lr.EndDate.Format(dateLayout),
		TotalDays:      lr.TotalDays(),
		Reason:         lr.Reason,
		CoverageName:   lr.CoverageName,
		CoverageEmail:  lr.CoverageEmail,
		Status:         lr.Status,
		ReviewedAt:     lr.ReviewedAt,
		AdminNotes:     lr.AdminNotes,
		CreatedAt:      lr.CreatedAt,
	}
	if lr.PayPeriodID != nil {
		id := lr.PayPeriodID.String()
		resp.PayPeriodID = &id
	}
	if lr.ReviewedBy != nil {
		id := lr.ReviewedBy.String()
		resp.ReviewedBy = &id
	}
	if lr.Employee != nil {
		resp.EmployeeName = lr.Employee.FullName
		resp.EmployeeEmail = lr.Employee.Email
	}
	if lr.LeaveType != nil {
		resp.LeaveType = lr.LeaveType.Name
	}
	if lr.PayPeriod != nil {
		resp.PayPeriod = lr.PayPeriod.Label()
	}
	return resp
}
