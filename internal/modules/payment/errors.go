package payment

import "errors"

var (
	// ErrNotConfigured is raised before any network call when the Stripe
	// credentials are missing.
	ErrNotConfigured = errors.New("stripe credentials are not configured")

	// ErrPaymentCreation wraps a failed persistence write during intent
	// creation; the store's message is carried along.
	ErrPaymentCreation = errors.New("payment creation failed")

	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("payment not found")
	ErrForbidden        = errors.New("forbidden")
)
