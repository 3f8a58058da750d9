package auth

import (
	"net/http"

	"go-timeoff/internal/shared/apperror"
	"go-timeoff/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const principalKey = "principal"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(s Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, logger: l}
}

// SetPrincipal stores the verified caller on the gin context.
func SetPrincipal(c *gin.Context, p *Principal) {
	c.Set(principalKey, p)
	c.Set("user_id", p.ID)
}

// PrincipalFrom returns the caller stored by the auth middleware, or nil for
// anonymous requests.
func PrincipalFrom(c *gin.Context) *Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*Principal)
	return p
}

func (h *Handler) Me(c *gin.Context) {
	p := PrincipalFrom(c)
	if p == nil {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Unauthorized", nil)
		return
	}

	me, err := h.service.GetMe(c.Request.Context(), *p)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("auth me failed", zap.String("user_id", p.ID), zap.String("code", httpErr.Code))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, me, nil)
}
