package loyalty

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrRewardUnavailable   = errors.New("reward is unavailable or expired")
	ErrMinimumNotMet       = errors.New("minimum order value not met")
	ErrInvalidRewardConfig = errors.New("invalid reward configuration")
	ErrNegativeSubtotal    = errors.New("subtotal must not be negative")
)

var hundred = decimal.NewFromInt(100)

// MinimumOrderError carries the minimum a subtotal failed to reach.
type MinimumOrderError struct {
	Minimum decimal.Decimal
}

func (e *MinimumOrderError) Error() string {
	return fmt.Sprintf("minimum order value of %s not met", e.Minimum.StringFixed(2))
}

func (e *MinimumOrderError) Is(target error) bool {
	return target == ErrMinimumNotMet
}

// Terms are the reward attributes the discount computation depends on.
type Terms struct {
	Available          bool
	ExpiresAt          *time.Time
	MinimumOrderValue  decimal.Decimal
	RewardValue        *decimal.Decimal
	DiscountPercentage *decimal.Decimal
}

// Expired reports whether the terms have an expiration at or before now.
func (t Terms) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && !t.ExpiresAt.After(now)
}

// ComputeDiscount returns the discount a reward grants on subtotal. The
// result is always within [0, subtotal]; on error it is zero.
func ComputeDiscount(t Terms, subtotal decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	if subtotal.IsNegative() {
		return decimal.Zero, ErrNegativeSubtotal
	}
	if !t.Available || t.Expired(now) {
		return decimal.Zero, ErrRewardUnavailable
	}
	if subtotal.LessThan(t.MinimumOrderValue) {
		return decimal.Zero, &MinimumOrderError{Minimum: t.MinimumOrderValue}
	}

	var raw decimal.Decimal
	switch {
	case t.RewardValue != nil:
		raw = decimal.Min(*t.RewardValue, subtotal)
	case t.DiscountPercentage != nil:
		raw = subtotal.Mul(*t.DiscountPercentage).Div(hundred).Round(2)
	default:
		return decimal.Zero, ErrInvalidRewardConfig
	}

	discount := decimal.Min(raw, subtotal)
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	return discount, nil
}
