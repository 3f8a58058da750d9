package organizationerrors

import (
	"net/http"

	"go-timeoff/internal/shared/apperror"
)

var (
	ErrOrganizationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Organization not found",
		http.StatusNotFound,
	)

	ErrOrganizationLookupFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to load organization",
		http.StatusInternalServerError,
	)
)
