package notificationerrors

import (
	"net/http"

	"go-timeoff/internal/shared/apperror"
)

var (
	ErrRecipientNotFound = apperror.New(
		apperror.CodeNotFound,
		"notification recipient not found",
		http.StatusNotFound,
	)
	ErrRecipientExists = apperror.New(
		apperror.CodeConflict,
		"recipient email already exists in this organization",
		http.StatusConflict,
	)
	ErrInvalidRecipientEmail = apperror.New(
		apperror.CodeInvalidInput,
		"Email is invalid",
		http.StatusBadRequest,
	)
	ErrNothingToUpdate = apperror.New(
		apperror.CodeInvalidInput,
		"at least one of name or is_active is required",
		http.StatusBadRequest,
	)
)
