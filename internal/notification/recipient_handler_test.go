package notification_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-timeoff/internal/notification"
	notificationerrors "go-timeoff/internal/notification/errors"
	"go-timeoff/internal/notification/mock"
	"go-timeoff/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func recipientContext(method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/api/v1/orgs/acme-clinic/recipients", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	tenant.SetAccess(c, acme, &tenant.Profile{ID: "u-admin", Role: tenant.RoleAdmin})
	c.Set("user_id", "u-admin")
	return c, w
}

func TestRecipientHandler_Add(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockRecipientService(ctrl)
		c, w := recipientContext(http.MethodPost, `{"email":"hr@acme.test","name":"HR"}`)

		svc.EXPECT().
			Add(gomock.Any(), acme.ID, "u-admin", notification.AddRecipientRequest{Email: "hr@acme.test", Name: "HR"}).
			Return(notification.RecipientResponse{ID: "r1", Email: "hr@acme.test", IsActive: true}, nil)

		notification.NewRecipientHandler(svc).Add(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockRecipientService(ctrl)
		c, w := recipientContext(http.MethodPost, `{"name":"HR"}`)

		notification.NewRecipientHandler(svc).Add(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "Email is required", env.Error.Message)
	})

	t.Run("duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockRecipientService(ctrl)
		c, w := recipientContext(http.MethodPost, `{"email":"hr@acme.test"}`)

		svc.EXPECT().Add(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(notification.RecipientResponse{}, notificationerrors.ErrRecipientExists)

		notification.NewRecipientHandler(svc).Add(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "CONFLICT", env.Error.Code)
	})
}

func TestRecipientHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockRecipientService(ctrl)
	c, w := recipientContext(http.MethodDelete, "")
	c.Params = gin.Params{{Key: "id", Value: "r1"}}

	svc.EXPECT().Delete(gomock.Any(), acme.ID, "r1").Return(notificationerrors.ErrRecipientNotFound)

	notification.NewRecipientHandler(svc).Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
