package submission

import (
	"encoding/json"

	"go-timeoff/internal/auth"
	"go-timeoff/internal/storage"
)

// SubmitInput is one form post. Principal is nil for anonymous submitters.
type SubmitInput struct {
	FormType         string
	Payload          json.RawMessage
	Principal        *auth.Principal
	OrganizationSlug string
	Attachment       *storage.File
}

type SubmissionResult struct {
	RequestID *string `json:"request_id,omitempty"`
	Notified  bool    `json:"notified"`
}

// Persisted reports whether a leave request row was written.
func (r SubmissionResult) Persisted() bool {
	return r.RequestID != nil
}
