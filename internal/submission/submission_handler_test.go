package submission_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"go-timeoff/internal/auth"
	"go-timeoff/internal/shared/apperror"
	"go-timeoff/internal/submission"
	submissionerrors "go-timeoff/internal/submission/errors"
	"go-timeoff/internal/submission/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestContext(method, target string, body *bytes.Buffer, contentType string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, body)
	if contentType != "" {
		c.Request.Header.Set("Content-Type", contentType)
	}
	return c, w
}

func TestSubmissionHandler_SubmitPublic(t *testing.T) {
	t.Run("not persisted answers 202", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)

		body := `{"employee_name":"Kim","employee_email":"kim@acme.test","date":"2026-03-04","asked_doctor":true}`
		c, w := newTestContext(http.MethodPost, "/api/v1/forms/overtime?org=acme-clinic", bytes.NewBufferString(body), "application/json")
		c.Params = gin.Params{{Key: "form_type", Value: "overtime"}}

		svc.EXPECT().
			Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in submission.SubmitInput) (submission.SubmissionResult, error) {
				assert.Equal(t, "overtime", in.FormType)
				assert.Equal(t, "acme-clinic", in.OrganizationSlug)
				assert.Nil(t, in.Principal)
				assert.JSONEq(t, body, string(in.Payload))
				return submission.SubmissionResult{Notified: true}, nil
			})

		submission.NewHandler(svc).SubmitPublic(c)

		assert.Equal(t, http.StatusAccepted, w.Code)
		var env apiEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		assert.JSONEq(t, `{"notified":true}`, string(env.Data))
	})

	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)

		c, w := newTestContext(http.MethodPost, "/api/v1/forms/overtime", bytes.NewBufferString(`{}`), "application/json")
		c.Params = gin.Params{{Key: "form_type", Value: "overtime"}}

		svc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(submission.SubmissionResult{}, apperror.RequiredField("Senior Staff Name"))

		submission.NewHandler(svc).SubmitPublic(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var env apiEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		require.NotNil(t, env.Error)
		assert.Equal(t, "Senior Staff Name is required", env.Error.Message)
	})

	t.Run("unknown form type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)

		c, w := newTestContext(http.MethodPost, "/api/v1/forms/holiday", bytes.NewBufferString(`{}`), "application/json")
		c.Params = gin.Params{{Key: "form_type", Value: "holiday"}}

		svc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(submission.SubmissionResult{}, submissionerrors.ErrUnknownFormType)

		submission.NewHandler(svc).SubmitPublic(c)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSubmissionHandler_SubmitForOrganization(t *testing.T) {
	t.Run("persisted answers 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)

		c, w := newTestContext(http.MethodPost, "/api/v1/orgs/acme-clinic/forms/day_off", bytes.NewBufferString(`{}`), "application/json")
		c.Params = gin.Params{{Key: "slug", Value: "acme-clinic"}, {Key: "form_type", Value: "day_off"}}
		auth.SetPrincipal(c, &auth.Principal{ID: "u1", Email: "kim@acme.test"})

		id := "r1"
		svc.EXPECT().
			Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in submission.SubmitInput) (submission.SubmissionResult, error) {
				require.NotNil(t, in.Principal)
				assert.Equal(t, "u1", in.Principal.ID)
				assert.Equal(t, "acme-clinic", in.OrganizationSlug)
				return submission.SubmissionResult{RequestID: &id, Notified: true}, nil
			})

		submission.NewHandler(svc).SubmitForOrganization(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var env apiEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.JSONEq(t, `{"request_id":"r1","notified":true}`, string(env.Data))
	})

	t.Run("no principal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)

		c, w := newTestContext(http.MethodPost, "/api/v1/orgs/acme-clinic/forms/day_off", bytes.NewBufferString(`{}`), "application/json")
		c.Params = gin.Params{{Key: "slug", Value: "acme-clinic"}, {Key: "form_type", Value: "day_off"}}

		submission.NewHandler(svc).SubmitForOrganization(c)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestSubmissionHandler_Multipart(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("payload", `{"employee_name":"Kim","employee_email":"kim@acme.test","date":"2026-03-04","has_doctor_note":true}`))
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="doctor_note"; filename="note.pdf"`)
	h.Set("Content-Type", "application/pdf")
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, _ = part.Write([]byte("%PDF-1.4 note"))
	require.NoError(t, mw.Close())

	c, w := newTestContext(http.MethodPost, "/api/v1/forms/sick_day", &buf, mw.FormDataContentType())
	c.Params = gin.Params{{Key: "form_type", Value: "sick_day"}}

	svc.EXPECT().
		Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, in submission.SubmitInput) (submission.SubmissionResult, error) {
			assert.True(t, strings.Contains(string(in.Payload), `"has_doctor_note":true`))
			require.NotNil(t, in.Attachment)
			assert.Equal(t, "note.pdf", in.Attachment.Name)
			assert.Equal(t, "application/pdf", in.Attachment.ContentType)
			assert.Equal(t, []byte("%PDF-1.4 note"), in.Attachment.Data)
			return submission.SubmissionResult{Notified: true}, nil
		})

	submission.NewHandler(svc).SubmitPublic(c)
	assert.Equal(t, http.StatusAccepted, w.Code)
}
