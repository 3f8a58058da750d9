package notification

import (
	"net/http"

	"go-timeoff/internal/shared/apperror"
	"go-timeoff/internal/shared/response"
	"go-timeoff/internal/tenant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RecipientHandler struct {
	service RecipientService
	logger  *zap.Logger
}

func NewRecipientHandler(service RecipientService, logger ...*zap.Logger) *RecipientHandler {
	l := zap.L().Named("notification.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.handler")
	}
	return &RecipientHandler{service: service, logger: l}
}

func (h *RecipientHandler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("recipient request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *RecipientHandler) organizationID(c *gin.Context) (string, bool) {
	org := tenant.OrganizationFrom(c)
	if org == nil {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return "", false
	}
	return org.ID, true
}

func (h *RecipientHandler) List(c *gin.Context) {
	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	items, err := h.service.List(c.Request.Context(), orgID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items, nil)
}

func (h *RecipientHandler) Add(c *gin.Context) {
	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	var req AddRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Add(c.Request.Context(), orgID, c.GetString("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *RecipientHandler) Update(c *gin.Context) {
	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	var req UpdateRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), orgID, c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *RecipientHandler) Delete(c *gin.Context) {
	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), orgID, c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
