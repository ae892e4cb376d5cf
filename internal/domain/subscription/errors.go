package subscription

import (
	"errors"
	"fmt"
)

var (
	ErrNoActiveSubscription    = errors.New("no active subscription found")
	ErrNoCancelledSubscription = errors.New("no cancelled subscription found")
	ErrCannotCancelFree        = errors.New("cannot cancel free subscription")
	ErrInvalidPlan             = errors.New("invalid plan selected")
	ErrInvalidBillingCycle     = errors.New("invalid billing cycle")
	ErrInvalidPaymentMethod    = errors.New("invalid payment method")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

func ErrInvalidTransition(from, to Status) error {
	return fmt.Errorf("%w: from %s to %s", ErrInvalidStatusTransition, from, to)
}
