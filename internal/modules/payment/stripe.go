package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const stripeAPIBase = "https://api.stripe.com"

// StripeClient talks to the payments API directly over HTTP with the
// secret key. Only the intent-creation slice of the API is wrapped.
type StripeClient struct {
	secretKey string
	baseURL   string
	http      *http.Client
}

func NewStripeClient(secretKey string) *StripeClient {
	return &StripeClient{
		secretKey: secretKey,
		baseURL:   stripeAPIBase,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

// NewStripeClientWithBase points the client at a non-default API host,
// for tests.
func NewStripeClientWithBase(secretKey, baseURL string) *StripeClient {
	c := NewStripeClient(secretKey)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

type stripeIntentPayload struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

type stripeErrorPayload struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *StripeClient) CreateIntent(ctx context.Context, params CreateIntentParams) (*Intent, error) {
	if c.secretKey == "" {
		return nil, ErrNotConfigured
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(params.AmountCents, 10))
	form.Set("currency", params.Currency)
	form.Set("metadata[booking_id]", strconv.FormatInt(params.BookingID, 10))
	form.Set("automatic_payment_methods[enabled]", "true")
	if params.DestinationAccount != "" {
		form.Set("transfer_data[destination]", params.DestinationAccount)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if params.IdempotencyKey != "" {
		req.Header.Set("Idempotency-Key", params.IdempotencyKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stripe request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("stripe response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr stripeErrorPayload
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("stripe: %s (%s)", apiErr.Error.Message, apiErr.Error.Code)
		}
		return nil, fmt.Errorf("stripe: unexpected status %d", resp.StatusCode)
	}

	var intent stripeIntentPayload
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, fmt.Errorf("stripe: decoding intent: %w", err)
	}
	return &Intent{ID: intent.ID, ClientSecret: intent.ClientSecret, Status: intent.Status}, nil
}
