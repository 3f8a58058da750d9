package auth

// Principal is the authenticated caller as asserted by the identity provider.
// Its ID equals the Profile ID.
type Principal struct {
	ID    string
	Email string
}

// Claims is the JWT payload issued by the identity provider.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
