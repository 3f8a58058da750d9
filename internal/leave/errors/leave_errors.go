package leaveerrors

import (
	"net/http"

	"go-timeoff/internal/shared/apperror"
)

var (
	ErrLeaveRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrInvalidDecision = apperror.New(
		apperror.CodeInvalidInput,
		"decision must be approved or denied",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"status must be pending, approved or denied",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start date must be before or equal end date",
		http.StatusBadRequest,
	)
	ErrCalendarRangeTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"calendar range cannot exceed 366 days",
		http.StatusBadRequest,
	)
	ErrRequestTooLong = apperror.New(
		apperror.CodeInvalidInput,
		"leave request cannot exceed 366 days",
		http.StatusBadRequest,
	)
	ErrNotReviewer = apperror.New(
		apperror.CodeForbidden,
		"only an admin of this organization can review this request",
		http.StatusForbidden,
	)
	ErrAlreadyReviewed = apperror.New(
		apperror.CodeInvalidState,
		"leave request has already been reviewed",
		http.StatusConflict,
	)
	ErrExportFailed = apperror.New(
		apperror.CodeInternalError,
		"failed to build export",
		http.StatusInternalServerError,
	)
)
