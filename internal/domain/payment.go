package domain

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment records one charge attempt for a booking. All amounts are in
// minor currency units. CommissionCents + SalonAmountCents always equals
// the charged amount exactly; the split is computed by subtraction, never
// by two independent multiplications.
type Payment struct {
	ID        int64 `json:"id"`
	BookingID int64 `json:"booking_id"`
	SalonID   int64 `json:"salon_id"`
	ClientID  int64 `json:"client_id"`

	AmountCents      int64 `json:"amount_cents"`
	DepositCents     int64 `json:"deposit_cents"`
	CommissionCents  int64 `json:"commission_cents"`
	SalonAmountCents int64 `json:"salon_amount_cents"`
	RemainingCents   int64 `json:"remaining_cents"`

	// CommissionRateBps is the applied rate in basis points (2000 = 20%).
	CommissionRateBps int64 `json:"commission_rate_bps"`

	Currency              string        `json:"currency"`
	Status                PaymentStatus `json:"status"`
	StripePaymentIntentID string        `json:"stripe_payment_intent_id,omitempty"`
	IdempotencyKey        string        `json:"idempotency_key,omitempty" gorm:"uniqueIndex"`
	FailureReason         string        `json:"failure_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StripeAccount links a salon to its connected payout account.
type StripeAccount struct {
	ID             int64     `json:"id"`
	SalonID        int64     `json:"salon_id" gorm:"uniqueIndex"`
	AccountID      string    `json:"account_id"`
	ChargesEnabled bool      `json:"charges_enabled"`
	PayoutsEnabled bool      `json:"payouts_enabled"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
