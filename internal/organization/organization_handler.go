package organization

import (
	"context"
	"net/http"

	organizationerrors "go-timeoff/internal/organization/errors"
	"go-timeoff/internal/shared/apperror"
	"go-timeoff/internal/shared/response"
	"go-timeoff/internal/tenant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PendingCounter reports how many requests in an organization await review.
type PendingCounter interface {
	CountPending(ctx context.Context, organizationID string) (int64, error)
}

type Handler struct {
	pending PendingCounter
	logger  *zap.Logger
}

func NewHandler(pending PendingCounter, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("organization.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("organization.handler")
	}
	return &Handler{pending: pending, logger: l}
}

// Dashboard runs behind tenant.RequireOrganization.
func (h *Handler) Dashboard(c *gin.Context) {
	org := tenant.OrganizationFrom(c)
	profile := tenant.ProfileFrom(c)
	if org == nil || profile == nil {
		response.Error(c, http.StatusNotFound, apperror.CodeNotFound, organizationerrors.ErrOrganizationNotFound.Message, nil)
		return
	}

	resp := DashboardResponse{
		Organization: mapToResponse(org),
		FullName:     profile.FullName,
		Role:         profile.Role,
	}

	if profile.IsAdmin() && h.pending != nil {
		count, err := h.pending.CountPending(c.Request.Context(), org.ID)
		if err != nil {
			h.logger.Warn("count pending requests failed", zap.String("organization_id", org.ID), zap.Error(err))
		} else {
			resp.PendingCount = &count
		}
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Get(c *gin.Context) {
	org := tenant.OrganizationFrom(c)
	if org == nil {
		response.Error(c, http.StatusNotFound, apperror.CodeNotFound, organizationerrors.ErrOrganizationNotFound.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, mapToResponse(org), nil)
}
