package apierrors

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"loyalty-server/internal/loyalty"
	loyaltyProcessor "loyalty-server/internal/loyalty/processor"
	ordersProcessor "loyalty-server/internal/orders/processor"
	profilesProcessor "loyalty-server/internal/profiles/processor"
	referralProcessor "loyalty-server/internal/referral/processor"
	rewardsProcessor "loyalty-server/internal/rewards/processor"
	"loyalty-server/internal/settings"
	"loyalty-server/internal/store"
)

// MapError converts domain/processor errors to APIErrors.
// This function centralizes all error mapping logic to ensure consistent
// error responses across the entire API.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var minErr *loyalty.MinimumOrderError
	if errors.As(err, &minErr) {
		return BadRequest(CodeMinimumNotMet, fmt.Sprintf("Order subtotal must be at least %s to use this reward", minErr.Minimum.StringFixed(2)))
	}

	var keyErr *settings.KeyError
	if errors.As(err, &keyErr) {
		if errors.Is(keyErr, settings.ErrUnknownKey) {
			return NotFound(CodeUnknownSetting, fmt.Sprintf("Unknown setting %q", keyErr.Key))
		}
		return BadRequest(CodeInvalidSetting, fmt.Sprintf("Invalid value for setting %q: %v", keyErr.Key, keyErr.Err))
	}

	switch {
	// Map profile processor errors
	case errors.Is(err, profilesProcessor.ErrProfileNotFound):
		return NotFound(CodeProfileNotFound, "Profile not found")

	case errors.Is(err, profilesProcessor.ErrProfileExists):
		return Conflict(CodeProfileExists, "Profile already exists")

	case errors.Is(err, profilesProcessor.ErrInvalidEmail):
		return BadRequest(CodeInvalidEmail, "A valid email address is required")

	case errors.Is(err, profilesProcessor.ErrInvalidUserID):
		return BadRequest(CodeInvalidUserID, "User id is required")

	case errors.Is(err, profilesProcessor.ErrRoleNotGrantable):
		return BadRequest(CodeRoleNotGrantable, "Only the staff and admin roles can be granted or revoked")

	case errors.Is(err, profilesProcessor.ErrSelfRevoke):
		return Conflict(CodeSelfRevoke, "You cannot revoke your own admin role")

	case errors.Is(err, profilesProcessor.ErrDateOfBirthFuture):
		return BadRequest(CodeInvalidBirthDate, "Date of birth cannot be in the future")

	// Map referral processor errors
	case errors.Is(err, referralProcessor.ErrUserNotFound):
		return NotFound(CodeProfileNotFound, "Profile not found")

	case errors.Is(err, referralProcessor.ErrCodeSpaceExhausted):
		return ServiceUnavailable(CodeReferralExhausted, "Could not assign a referral code. Please try again.", err)

	// Map loyalty engine errors
	case errors.Is(err, loyaltyProcessor.ErrCustomerNotFound):
		return NotFound(CodeCustomerNotFound, "Customer not found")

	case errors.Is(err, loyaltyProcessor.ErrInvalidCustomer):
		return BadRequest(CodeCustomerRequired, "Customer id is required")

	// Map reward errors
	case errors.Is(err, rewardsProcessor.ErrRewardNotFound):
		return NotFound(CodeRewardNotFound, "Reward not found")

	case errors.Is(err, rewardsProcessor.ErrRewardNotOwned):
		return Forbidden("This reward belongs to another customer")

	case errors.Is(err, loyalty.ErrRewardUnavailable):
		return Conflict(CodeRewardUnavailable, "Reward is not available or has expired")

	case errors.Is(err, loyalty.ErrMinimumNotMet):
		return BadRequest(CodeMinimumNotMet, "Order subtotal does not meet the reward minimum")

	case errors.Is(err, loyalty.ErrInvalidRewardConfig):
		return ServiceUnavailable(CodeInvalidRewardConfig, "This reward cannot be applied. Please contact staff.", err)

	case errors.Is(err, loyalty.ErrNegativeSubtotal):
		return BadRequest(CodeInvalidSubtotal, "Subtotal must not be negative")

	// Map order processor errors
	case errors.Is(err, ordersProcessor.ErrOrderNotFound):
		return NotFound(CodeOrderNotFound, "Order not found")

	case errors.Is(err, ordersProcessor.ErrTableRequired),
		errors.Is(err, ordersProcessor.ErrNoItems),
		errors.Is(err, ordersProcessor.ErrInvalidItem),
		errors.Is(err, ordersProcessor.ErrRewardRequiresCustomer):
		// These carry the offending item in their message.
		return BadRequest(CodeInvalidOrder, err.Error())

	case errors.Is(err, ordersProcessor.ErrInvalidTransition):
		return Conflict(CodeInvalidTransition, "Order cannot move to that status")

	case errors.Is(err, ordersProcessor.ErrInvalidStatus):
		return BadRequest(CodeInvalidStatus, "Invalid order status. Valid values: pending, preparing, delivered")

	// Map settings errors
	case errors.Is(err, settings.ErrUnknownKey):
		return NotFound(CodeUnknownSetting, "Unknown setting")

	// Map store errors
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	default:
		return mapExternalServiceError(err)
	}
}

// mapExternalServiceError identifies infrastructure failures and maps them to
// a retryable 503 instead of a 500.
func mapExternalServiceError(err error) *APIError {
	if errors.Is(err, context.DeadlineExceeded) {
		return ServiceUnavailable(CodeServiceUnavailable, "The request timed out. Please try again later.", err)
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "redis") ||
		strings.Contains(errMsg, "too many clients") {
		return ServiceUnavailable(CodeServiceUnavailable, "Service is temporarily unavailable. Please try again later.", err)
	}

	return InternalError(err)
}
