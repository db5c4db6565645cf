package reporterrors

import (
	"net/http"

	"leave-report/internal/shared/apperror"
)

var (
	ErrInvalidDaysRange = apperror.New(
		apperror.CodeInvalidInput,
		"days_range must be a positive integer",
		http.StatusBadRequest,
	)
	ErrSenderNotConfigured = apperror.New(
		apperror.CodeInvalidState,
		"report sender address is not configured",
		http.StatusServiceUnavailable,
	)
)
