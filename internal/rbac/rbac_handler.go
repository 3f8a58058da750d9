package rbac

import (
	"net/http"

	"go-timeoff/internal/shared/apperror"
	"go-timeoff/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

// MyPermissions lists what the caller's tenant role may do.
func (h *Handler) MyPermissions(c *gin.Context) {
	role := c.GetString("role")
	if role == "" {
		response.Error(c, http.StatusForbidden, apperror.CodeForbidden, apperror.ErrForbidden.Message, nil)
		return
	}

	perms, err := h.service.Permissions(role)
	if err != nil {
		h.logger.Error("list permissions failed", zap.String("role", role), zap.Error(err))
		response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, apperror.ErrInternal.Message, nil)
		return
	}

	out := PermissionsResponse{Role: role, Permissions: make([]string, 0, len(perms))}
	for _, p := range perms {
		out.Permissions = append(out.Permissions, p.Resource+":"+p.Action)
	}
	response.Success(c, http.StatusOK, out, nil)
}
