package payment

type CreateIntentRequest struct {
	BookingID int64 `json:"booking_id" binding:"required"`
}

type CreateIntentResponse struct {
	PaymentID       int64  `json:"payment_id"`
	IntentID        string `json:"intent_id"`
	ClientSecret    string `json:"client_secret,omitempty"`
	AmountCents     int64  `json:"amount_cents"`
	DepositCents    int64  `json:"deposit_cents"`
	CommissionCents int64  `json:"commission_cents"`
	SalonCents      int64  `json:"salon_cents"`
	RemainingCents  int64  `json:"remaining_cents"`
	Currency        string `json:"currency"`
}

// Stats aggregates a salon's completed payments over a period.
type Stats struct {
	TotalRevenueCents    int64 `json:"total_revenue_cents"`
	TotalCommissionCents int64 `json:"total_commission_cents"`
	NetRevenueCents      int64 `json:"net_revenue_cents"`
	TransactionCount     int64 `json:"transaction_count"`
	AverageTransaction   int64 `json:"average_transaction_cents"`
}

// webhookEvent is the slice of a Stripe event this service reads.
type webhookEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID            string `json:"id"`
			PaymentIntent string `json:"payment_intent"`
		} `json:"object"`
	} `json:"data"`
}
