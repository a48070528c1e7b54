package response

import (
	"errors"
	"net/http"

	"github.com/hrsystem/hr-gateway/internal/domain/auth"
	"github.com/hrsystem/hr-gateway/internal/domain/user"
	"github.com/hrsystem/hr-gateway/internal/pkg/hrapi"
	"github.com/hrsystem/hr-gateway/internal/pkg/validator"
	"github.com/hrsystem/hr-gateway/internal/service/scope"
)

// HandleError maps domain errors to HTTP responses. The one error it
// deliberately does not know about is auth.ErrUnauthenticated: that one
// clears the session, which needs request state this package does not
// have, so handlers intercept it first.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var apiErr *hrapi.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusNotFound {
			NotFound(w, apiErr.Message)
			return
		}
		BadGateway(w, apiErr.Message)
		return
	}

	switch {
	case errors.Is(err, scope.ErrEmployeeUnresolved):
		BadRequest(w, "No employee record is linked to your account. Ask an admin to link one.", nil)
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrForbidden):
		Forbidden(w, "The server rejected this request for your role")
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrManagerAccessRequired),
		errors.Is(err, user.ErrInsufficientRole):
		Forbidden(w, err.Error())
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
