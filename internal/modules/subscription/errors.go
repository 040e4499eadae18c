package subscription

import "errors"

var (
	ErrPlanNotFound         = errors.New("subscription plan not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrAlreadySubscribed    = errors.New("already subscribed to this plan")
	ErrCannotCancelFree     = errors.New("the free tier cannot be cancelled")
	ErrInvalidBillingPeriod = errors.New("invalid billing period")
	ErrForbidden            = errors.New("forbidden")
	ErrNotFound             = errors.New("not found")

	ErrServiceLimitReached = errors.New("service limit reached for the current plan")
	ErrZoneLimitReached    = errors.New("coverage zone limit reached for the current plan")
)

// LimitError tells the caller which limit was hit and what tier lifts it.
type LimitError struct {
	Err       error
	Current   int
	Limit     int
	PlanName  string
	UpgradeTo string
}

func (e *LimitError) Error() string { return e.Err.Error() }
func (e *LimitError) Unwrap() error { return e.Err }
