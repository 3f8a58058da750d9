package rbac

const (
	ResourceLeaveRequest = "leave_request"
	ResourceCalendar     = "calendar"
	ResourceRecipient    = "recipient"
	ResourceForm         = "form"

	ActionRead   = "read"
	ActionReview = "review"
	ActionExport = "export"
	ActionManage = "manage"
	ActionSubmit = "submit"
)

type PermissionsResponse struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}
