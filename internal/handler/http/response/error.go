package response

import (
	"context"
	"errors"
	"net/http"

	"github.com/cmlabs-hris/hris-salary-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-salary-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-salary-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-salary-go/internal/pkg/hrapi"
	"github.com/cmlabs-hris/hris-salary-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var upstreamErr *hrapi.APIError

	switch {
	// User domain errors
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Payroll and attendance errors raised before the HR backend is called
	case errors.Is(err, payroll.ErrSalaryAccessDenied):
		Forbidden(w, err.Error())
	case errors.Is(err, attendance.ErrMissingUpstreamToken):
		Unauthorized(w, err.Error())

	// HR backend errors, also when wrapped by a service failure
	case errors.Is(err, hrapi.ErrUnauthorized):
		Unauthorized(w, "HR backend rejected the credentials")
	case errors.Is(err, hrapi.ErrNoCredential):
		ServiceUnavailable(w, "HR backend credentials are not configured")
	case errors.As(err, &upstreamErr):
		BadGateway(w, "HR backend returned an error")
	case errors.Is(err, context.DeadlineExceeded):
		GatewayTimeout(w, "HR backend did not answer in time")

	// Remaining source failures
	case errors.Is(err, payroll.ErrSalarySourceFailure):
		ServiceUnavailable(w, payroll.ErrSalarySourceFailure.Error())
	case errors.Is(err, attendance.ErrAttendanceUnavailable):
		ServiceUnavailable(w, attendance.ErrAttendanceUnavailable.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
