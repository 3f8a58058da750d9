package submission

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go-timeoff/internal/auth"
	"go-timeoff/internal/events"
	"go-timeoff/internal/leave"
	"go-timeoff/internal/notification"
	"go-timeoff/internal/shared/apperror"
	"go-timeoff/internal/shared/contextutil"
	"go-timeoff/internal/storage"
	submissionerrors "go-timeoff/internal/submission/errors"
	"go-timeoff/internal/tenant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const DefaultUploadTimeout = 15 * time.Second

const (
	publishAttempts   = 3
	publishRetryDelay = 50 * time.Millisecond
)

//go:generate mockgen -destination=mock/submission_service_mock.go -package=mock . Service
type Service interface {
	Submit(ctx context.Context, in SubmitInput) (SubmissionResult, error)
}

// LeaveCreator persists authenticated day_off and vacation requests.
type LeaveCreator interface {
	Create(ctx context.Context, in leave.CreateLeaveRequestInput) (leave.LeaveRequestResponse, error)
}

// References is the reference data lookup used while building a submission.
type References interface {
	ResolveLeaveType(ctx context.Context, nameOrID string) (*leave.LeaveType, error)
	FindPayPeriod(ctx context.Context, id string) (*leave.PayPeriod, error)
	PayPeriodsOverlapping(ctx context.Context, start, end time.Time) ([]leave.PayPeriod, error)
}

type service struct {
	resolver      tenant.Resolver
	orgs          tenant.OrganizationFinder
	profiles      tenant.ProfileFinder
	leaves        LeaveCreator
	references    References
	uploader      storage.Uploader
	publisher     events.Publisher
	uploadTimeout time.Duration
	now           func() time.Time
	logger        *zap.Logger
}

func NewService(
	resolver tenant.Resolver,
	orgs tenant.OrganizationFinder,
	profiles tenant.ProfileFinder,
	leaves LeaveCreator,
	references References,
	uploader storage.Uploader,
	publisher events.Publisher,
	uploadTimeout time.Duration,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("submission.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("submission.service")
	}
	if uploadTimeout <= 0 {
		uploadTimeout = DefaultUploadTimeout
	}
	return &service{
		resolver:      resolver,
		orgs:          orgs,
		profiles:      profiles,
		leaves:        leaves,
		references:    references,
		uploader:      uploader,
		publisher:     publisher,
		uploadTimeout: uploadTimeout,
		now:           time.Now,
		logger:        l,
	}
}

// Submit validates a form, stores it when the submitter is signed in and the
// form is a leave request, and always publishes the notification event.
// Persistence and notification do not share a transaction.
func (s *service) Submit(ctx context.Context, in SubmitInput) (SubmissionResult, error) {
	log := contextutil.GetLogger(ctx, s.logger).With(zap.String("form_type", in.FormType))

	form, err := ParseForm(in.FormType, in.Payload)
	if err != nil {
		return SubmissionResult{}, err
	}
	form.Normalize()
	if err := form.Validate(); err != nil {
		return SubmissionResult{}, err
	}

	var overlapping []leave.PayPeriod
	switch f := form.(type) {
	case *VacationForm:
		start, end := f.Range()
		overlapping, err = s.references.PayPeriodsOverlapping(ctx, start, end)
		if err != nil {
			return SubmissionResult{}, apperror.Wrap(err, apperror.CodeInternalError, "failed to load pay periods", http.StatusInternalServerError)
		}
		if len(overlapping) == 0 {
			return SubmissionResult{}, submissionerrors.ErrNoPayPeriod
		}
	case *SickDayForm:
		if f.NeedsAttachment() && in.Attachment == nil {
			return SubmissionResult{}, submissionerrors.ErrDoctorNoteRequired
		}
		if in.Attachment != nil {
			if err := in.Attachment.Validate(); err != nil {
				return SubmissionResult{}, submissionerrors.ErrInvalidAttachment.WithDetails(gin.H{"reason": err.Error()})
			}
		}
	}

	org, profile, err := s.resolveContext(ctx, in.Principal, in.OrganizationSlug, log)
	if err != nil {
		return SubmissionResult{}, err
	}

	n := form.Notification()
	n.OccurredAt = s.now().UTC()
	n.SubmittedVia = events.SubmittedViaPublicForm
	if in.Principal != nil {
		n.SubmittedVia = events.SubmittedViaPortal
	}
	if org != nil {
		n.OrganizationID = org.ID
		n.OrganizationName = org.Name
	}

	payPeriodID := s.labelPayPeriod(ctx, form, overlapping, &n, log)

	var result SubmissionResult
	if in.Principal != nil && profile != nil && org != nil {
		if id, ok := s.persist(ctx, form, profile, org, payPeriodID, log); ok {
			result.RequestID = &id
			n.RequestID = id
		}
	}

	if _, ok := form.(*SickDayForm); ok && in.Attachment != nil {
		n.DoctorNoteURL = s.upload(ctx, *in.Attachment, log)
	}

	// Notified reports that the fan-out was triggered. A failed outbox write
	// is retried and then logged with the event; it never fails the request.
	s.publish(contextutil.Detach(ctx), n, log)
	result.Notified = true

	log.Info("form submitted",
		zap.Bool("persisted", result.Persisted()),
		zap.Bool("notified", result.Notified),
		zap.String("organization_id", n.OrganizationID),
	)
	return result, nil
}

func (s *service) publish(ctx context.Context, n events.Notification, log *zap.Logger) {
	var err error
	for attempt := 1; attempt <= publishAttempts; attempt++ {
		if err = s.publisher.Publish(ctx, n); err == nil {
			return
		}
		log.Warn("publish submission notification failed",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt < publishAttempts {
			time.Sleep(publishRetryDelay)
		}
	}
	log.Error("submission notification dropped",
		zap.String("event_type", n.Type),
		zap.String("request_id", n.RequestID),
		zap.Any("event", n),
		zap.Error(err),
	)
}

// resolveContext finds the organization a submission belongs to. Signed-in
// callers naming a slug must pass the tenant check; anonymous callers with an
// unknown slug fall back to the global recipients.
func (s *service) resolveContext(ctx context.Context, principal *auth.Principal, slug string, log *zap.Logger) (*tenant.Organization, *tenant.Profile, error) {
	if principal != nil && slug != "" {
		verdict, err := s.resolver.ResolveAccess(ctx, principal, slug)
		if err != nil {
			return nil, nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to resolve organization", http.StatusInternalServerError)
		}
		switch verdict.Kind {
		case tenant.VerdictAllowed:
			return verdict.Organization, verdict.Profile, nil
		case tenant.VerdictNotFound:
			return nil, nil, apperror.ErrNotFound
		case tenant.VerdictRedirect:
			if verdict.RedirectTo == tenant.LoginPath {
				return nil, nil, apperror.ErrUnauthorized
			}
			return nil, nil, apperror.ErrForbidden.WithDetails(gin.H{"redirect_to": verdict.RedirectTo})
		default:
			return nil, nil, apperror.ErrInternal
		}
	}

	if principal != nil {
		profile, err := s.profiles.FindProfileByID(ctx, principal.ID)
		if err != nil {
			return nil, nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to load profile", http.StatusInternalServerError)
		}
		if profile == nil || profile.OrganizationID == nil || *profile.OrganizationID == "" {
			return nil, profile, nil
		}
		org, err := s.orgs.FindOrganizationByID(ctx, *profile.OrganizationID)
		if err != nil {
			return nil, nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to load organization", http.StatusInternalServerError)
		}
		return org, profile, nil
	}

	if slug == "" {
		return nil, nil, nil
	}
	org, err := s.orgs.FindOrganizationBySlug(ctx, slug)
	if err != nil {
		log.Warn("organization lookup failed for anonymous submission", zap.String("slug", slug), zap.Error(err))
		return nil, nil, nil
	}
	return org, nil, nil
}

// labelPayPeriod fills the pay period label on n and returns the id of the
// single period a day off falls in. Lookup failures only cost the label.
func (s *service) labelPayPeriod(ctx context.Context, form Form, overlapping []leave.PayPeriod, n *events.Notification, log *zap.Logger) *string {
	if f, ok := form.(*DayOffForm); ok && f.PayPeriodID != "" {
		pp, err := s.references.FindPayPeriod(ctx, f.PayPeriodID)
		if err != nil {
			log.Warn("find pay period failed", zap.String("pay_period_id", f.PayPeriodID), zap.Error(err))
		}
		if pp != nil {
			n.PayPeriodLabel = pp.Label()
			id := pp.ID.String()
			return &id
		}
	}

	if _, ok := form.(*VacationForm); !ok {
		date := singleDate(form)
		if date == "" {
			return nil
		}
		d, err := leave.ParseDate(date)
		if err != nil {
			return nil
		}
		overlapping, err = s.references.PayPeriodsOverlapping(ctx, d, d)
		if err != nil {
			log.Warn("pay period lookup failed", zap.String("date", date), zap.Error(err))
			return nil
		}
	}

	labels := make([]string, 0, len(overlapping))
	for _, pp := range overlapping {
		labels = append(labels, pp.Label())
	}
	n.PayPeriodLabel = strings.Join(labels, ", ")

	if _, ok := form.(*DayOffForm); ok && len(overlapping) == 1 {
		id := overlapping[0].ID.String()
		return &id
	}
	return nil
}

func singleDate(form Form) string {
	switch f := form.(type) {
	case *DayOffForm:
		return f.Date
	case *SickDayForm:
		return f.Date
	case *TimeClockForm:
		return f.ReferenceDate()
	case *OvertimeForm:
		return f.Date
	default:
		return ""
	}
}

// persist writes the leave request for day_off and vacation forms. Other
// forms are notification only.
func (s *service) persist(ctx context.Context, form Form, profile *tenant.Profile, org *tenant.Organization, payPeriodID *string, log *zap.Logger) (string, bool) {
	var (
		leaveTypeName string
		in            leave.CreateLeaveRequestInput
	)
	switch f := form.(type) {
	case *DayOffForm:
		date, _ := leave.ParseDate(f.Date)
		leaveTypeName = f.LeaveType
		in = leave.CreateLeaveRequestInput{
			PayPeriodID:   payPeriodID,
			StartDate:     date,
			EndDate:       date,
			Reason:        f.Reason,
			CoverageName:  f.CoverageName,
			CoverageEmail: f.CoverageEmail,
		}
	case *VacationForm:
		start, end := f.Range()
		leaveTypeName = leave.VacationLeaveType
		in = leave.CreateLeaveRequestInput{
			StartDate:     start,
			EndDate:       end,
			Reason:        f.Reason,
			CoverageName:  f.CoverageName,
			CoverageEmail: f.CoverageEmail,
		}
	default:
		return "", false
	}

	leaveType, err := s.references.ResolveLeaveType(ctx, leaveTypeName)
	if err != nil {
		log.Error("resolve leave type failed", zap.String("leave_type", leaveTypeName), zap.Error(err))
		return "", false
	}
	if leaveType == nil {
		log.Warn("unknown leave type, request not stored", zap.String("leave_type", leaveTypeName))
		return "", false
	}

	in.UserID = profile.ID
	in.OrganizationID = org.ID
	in.LeaveTypeID = leaveType.ID.String()

	created, err := s.leaves.Create(ctx, in)
	if err != nil {
		log.Error("store leave request failed, notifying anyway", zap.Error(err))
		return "", false
	}
	return created.ID, true
}

// upload stores the doctor's note under a timeout. A failure is a channel
// error: logged, and the event goes out without a URL.
func (s *service) upload(ctx context.Context, file storage.File, log *zap.Logger) string {
	if s.uploader == nil {
		log.Warn("doctor note received but no storage is configured")
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, s.uploadTimeout)
	defer cancel()

	url, err := s.uploader.Upload(ctx, file)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = notification.ErrChannelTimeout
		}
		log.Warn("doctor note upload failed", zap.Error(notification.NewChannelError(notification.ChannelUpload, err)))
		return ""
	}
	return url
}
