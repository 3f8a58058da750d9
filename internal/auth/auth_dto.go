package auth

type MeResponse struct {
	ID               string  `json:"id"`
	Email            string  `json:"email"`
	FullName         string  `json:"full_name"`
	Role             string  `json:"role"`
	OrganizationID   *string `json:"organization_id"`
	OrganizationSlug *string `json:"organization_slug"`
	DashboardPath    string  `json:"dashboard_path"`
}
