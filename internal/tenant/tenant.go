package tenant

const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// Organization is the tenant boundary as seen by access control and
// notification code.
type Organization struct {
	ID            string `json:"id"`
	Slug          string `json:"slug"`
	Name          string `json:"name"`
	AdminEmail    string `json:"admin_email"`
	SpreadsheetID string `json:"spreadsheet_id,omitempty"`
	Locale        string `json:"locale,omitempty"`
}

// Profile is a principal's membership record. OrganizationID is nil for
// principals that have not joined a tenant yet.
type Profile struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	FullName       string  `json:"full_name"`
	Role           string  `json:"role"`
	OrganizationID *string `json:"organization_id"`
}

func (p Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// BelongsTo compares organization ids exactly; no prefix or case folding.
func (p Profile) BelongsTo(organizationID string) bool {
	return p.OrganizationID != nil && *p.OrganizationID == organizationID
}

func DashboardPath(slug string) string {
	return "/org/" + slug + "/dashboard"
}

const LoginPath = "/login"
