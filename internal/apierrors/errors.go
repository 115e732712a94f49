package apierrors

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Error codes returned to API clients
const (
	CodeNotFound           = "NOT_FOUND"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeInternal           = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeRateLimited        = "RATE_LIMIT_EXCEEDED"

	CodeProfileNotFound   = "PROFILE_NOT_FOUND"
	CodeProfileExists     = "PROFILE_EXISTS"
	CodeInvalidEmail      = "INVALID_EMAIL"
	CodeInvalidUserID     = "INVALID_USER_ID"
	CodeRoleNotGrantable  = "ROLE_NOT_GRANTABLE"
	CodeInvalidBirthDate  = "INVALID_DATE_OF_BIRTH"
	CodeCustomerNotFound  = "CUSTOMER_NOT_FOUND"
	CodeCustomerRequired  = "CUSTOMER_REQUIRED"
	CodeReferralExhausted = "REFERRAL_CODE_EXHAUSTED"
	CodeSelfRevoke        = "SELF_REVOKE"

	CodeRewardNotFound      = "REWARD_NOT_FOUND"
	CodeRewardNotOwned      = "REWARD_NOT_OWNED"
	CodeRewardUnavailable   = "REWARD_UNAVAILABLE"
	CodeMinimumNotMet       = "MINIMUM_NOT_MET"
	CodeInvalidRewardConfig = "INVALID_REWARD_CONFIG"
	CodeInvalidSubtotal     = "INVALID_SUBTOTAL"

	CodeOrderNotFound     = "ORDER_NOT_FOUND"
	CodeInvalidOrder      = "INVALID_ORDER"
	CodeInvalidTransition = "INVALID_STATUS_TRANSITION"
	CodeInvalidStatus     = "INVALID_STATUS"

	CodeUnknownSetting = "UNKNOWN_SETTING"
	CodeInvalidSetting = "INVALID_SETTING"
)

// APIError is a sanitized error with the HTTP status it is reported with
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// ServiceUnavailable keeps the cause for logging; the client only sees message
func ServiceUnavailable(code, message string, err error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, Err: err}
}

func TooManyRequests(message string) *APIError {
	return &APIError{StatusCode: http.StatusTooManyRequests, Code: CodeRateLimited, Message: message}
}

// InternalError never exposes internal details
func InternalError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternal,
		Message:    "An internal error occurred. Please try again later.",
		Err:        err,
	}
}

// ValidationError builds a 400 from validator errors, or a generic
// malformed-request error for anything else a binding can fail with
func ValidationError(err error) *APIError {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return BadRequest(CodeInvalidInput, buildValidationMessage(validationErrs))
	}
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       CodeInvalidInput,
		Message:    "Invalid request format. Please check your JSON syntax.",
		Err:        err,
	}
}
