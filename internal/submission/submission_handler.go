package submission

import (
	"io"
	"net/http"
	"strings"

	"go-timeoff/internal/auth"
	"go-timeoff/internal/shared/apperror"
	"go-timeoff/internal/shared/response"
	"go-timeoff/internal/storage"
	submissionerrors "go-timeoff/internal/submission/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	payloadField    = "payload"
	attachmentField = "doctor_note"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("submission.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("submission.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("form submission failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.String("form_type", c.Param("form_type")),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// SubmitPublic accepts a form from anyone. A signed-in caller is picked up
// when a token is present; ?org=<slug> links the submission to a tenant.
func (h *Handler) SubmitPublic(c *gin.Context) {
	h.submit(c, auth.PrincipalFrom(c), strings.TrimSpace(c.Query("org")))
}

// SubmitForOrganization accepts a form from a member of the :slug tenant.
func (h *Handler) SubmitForOrganization(c *gin.Context) {
	principal := auth.PrincipalFrom(c)
	if principal == nil {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}
	h.submit(c, principal, c.Param("slug"))
}

func (h *Handler) submit(c *gin.Context, principal *auth.Principal, slug string) {
	payload, attachment, err := readSubmission(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	result, err := h.service.Submit(c.Request.Context(), SubmitInput{
		FormType:         c.Param("form_type"),
		Payload:          payload,
		Principal:        principal,
		OrganizationSlug: slug,
		Attachment:       attachment,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	status := http.StatusAccepted
	if result.Persisted() {
		status = http.StatusCreated
	}
	response.Success(c, status, result, nil)
}

// readSubmission takes a JSON body, or a multipart form carrying the JSON in
// the payload field plus an optional doctor_note file.
func readSubmission(c *gin.Context) ([]byte, *storage.File, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		body, err := c.GetRawData()
		if err != nil {
			return nil, nil, submissionerrors.ErrInvalidPayload
		}
		return body, nil, nil
	}

	payload := c.PostForm(payloadField)
	header, err := c.FormFile(attachmentField)
	if err != nil {
		if err == http.ErrMissingFile {
			return []byte(payload), nil, nil
		}
		return nil, nil, submissionerrors.ErrInvalidAttachment
	}
	if header.Size > storage.MaxFileSize {
		return nil, nil, submissionerrors.ErrInvalidAttachment
	}

	f, err := header.Open()
	if err != nil {
		return nil, nil, submissionerrors.ErrInvalidAttachment
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, storage.MaxFileSize+1))
	if err != nil {
		return nil, nil, submissionerrors.ErrInvalidAttachment
	}

	return []byte(payload), &storage.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
