package leaveerrors

import (
	"net/http"

	"github.com/PhoorinS/leave-system-dfd/internal/shared/apperror"
)

var (
	ErrMissingDatePair = apperror.New(
		apperror.CodeInvalidInput,
		"start and end dates are required",
		http.StatusBadRequest,
	)
	ErrInvalidTargetStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be approved or rejected",
		http.StatusBadRequest,
	)

	// Fixed Thai alert texts from the product surface.
	ErrSubmitConnection = apperror.New(
		apperror.CodeUpstreamError,
		"เกิดข้อผิดพลาดในการเชื่อมต่อ",
		http.StatusBadGateway,
	)
	ErrUpdateConnection = apperror.New(
		apperror.CodeUpstreamError,
		"เกิดข้อผิดพลาดในการอัพเดทสถานะ",
		http.StatusBadGateway,
	)
)

// Rejected builds the error for a mutation the backend answered but did not
// accept. The Thai prefix plus the backend's own words is exactly what the
// user sees.
func Rejected(detail string) *apperror.AppError {
	if detail == "" {
		detail = "Unknown error"
	}
	return apperror.New(
		apperror.CodeUpstreamError,
		"เกิดข้อผิดพลาด: "+detail,
		http.StatusBadGateway,
	)
}
