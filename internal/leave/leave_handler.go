package leave

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go-timeoff/internal/auth"
	"go-timeoff/internal/shared/apperror"
	"go-timeoff/internal/shared/response"
	"go-timeoff/internal/tenant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service    Service
	references ReferenceService
	logger     *zap.Logger
}

func NewHandler(service Service, references ReferenceService, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, references: references, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// tenantContext returns the organization and profile set by
// tenant.RequireOrganization.
func (h *Handler) tenantContext(c *gin.Context) (*tenant.Organization, *tenant.Profile, bool) {
	org := tenant.OrganizationFrom(c)
	profile := tenant.ProfileFrom(c)
	if org == nil || profile == nil {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return nil, nil, false
	}
	return org, profile, true
}

func (h *Handler) List(c *gin.Context) {
	org, profile, ok := h.tenantContext(c)
	if !ok {
		return
	}

	var q ListLeaveRequestsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	items, meta, err := h.service.List(c.Request.Context(), *profile, org.ID, q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	org, profile, ok := h.tenantContext(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), *profile, org.ID, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Review(c *gin.Context) {
	principal := auth.PrincipalFrom(c)
	if principal == nil {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req ReviewLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http review leave validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Review(c.Request.Context(), *principal, c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Calendar(c *gin.Context) {
	org, _, ok := h.tenantContext(c)
	if !ok {
		return
	}

	var q CalendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	entries, err := h.service.Calendar(c.Request.Context(), org.ID, q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, entries, nil)
}

func (h *Handler) Export(c *gin.Context) {
	org, _, ok := h.tenantContext(c)
	if !ok {
		return
	}

	data, err := h.service.Export(c.Request.Context(), *org, c.Query("status"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("%s-leave-requests-%s.xlsx", org.Slug, time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, ExportContentType, data)
}

func (h *Handler) ListLeaveTypes(c *gin.Context) {
	types, err := h.references.ListLeaveTypes(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, types, nil)
}

func (h *Handler) ListPayPeriods(c *gin.Context) {
	year := 0
	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 2000 || parsed > 2100 {
			h.writeServiceError(c, apperror.InvalidField("year"))
			return
		}
		year = parsed
	}

	periods, err := h.references.ListPayPeriods(c.Request.Context(), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, periods, nil)
}
