package organization

type OrganizationResponse struct {
	ID             string `json:"id"`
	Slug           string `json:"slug"`
	Name           string `json:"name"`
	AdminEmail     string `json:"admin_email"`
	HasSpreadsheet bool   `json:"has_spreadsheet"`
}

type DashboardResponse struct {
	Organization OrganizationResponse `json:"organization"`
	FullName     string               `json:"full_name"`
	Role         string               `json:"role"`
	PendingCount *int64               `json:"pending_count,omitempty"`
}
