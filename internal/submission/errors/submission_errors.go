package submissionerrors

import (
	"net/http"

	"go-timeoff/internal/shared/apperror"
)

var (
	ErrUnknownFormType = apperror.New(
		apperror.CodeNotFound,
		"Form type not found",
		http.StatusNotFound,
	)

	ErrInvalidPayload = apperror.New(
		apperror.CodeInvalidInput,
		"Request body is not valid JSON",
		http.StatusBadRequest,
	)

	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"End Date must not be before Start Date",
		http.StatusBadRequest,
	)

	ErrDateRangeTooLong = apperror.New(
		apperror.CodeInvalidInput,
		"Vacation cannot exceed 366 days",
		http.StatusBadRequest,
	)

	ErrNoPayPeriod = apperror.RequiredField("Pay Period")

	ErrDoctorNoteRequired = apperror.RequiredField("Doctor Note")

	ErrInvalidAttachment = apperror.New(
		apperror.CodeInvalidInput,
		"Doctor Note must be a PDF or image up to 10MB",
		http.StatusBadRequest,
	)

	ErrClockCorrectionRequired = apperror.RequiredField("Clock In Or Clock Out Correction")
)
