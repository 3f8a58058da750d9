package notification

import "time"

type AddRecipientRequest struct {
	Email string `json:"email" binding:"required,email,max=255"`
	Name  string `json:"name" binding:"max=150"`
}

type UpdateRecipientRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=150"`
	IsActive *bool   `json:"is_active"`
}

type RecipientResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	IsActive  bool      `json:"is_active"`
	AddedBy   *string   `json:"added_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
