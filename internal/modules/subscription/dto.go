package subscription

import "salonbook/internal/domain"

type SubscribeRequest struct {
	SalonID       int64  `json:"salon_id" binding:"required"`
	PlanID        string `json:"plan_id" binding:"required"`
	BillingPeriod string `json:"billing_period" binding:"required,oneof=monthly yearly"`
}

type CancelRequest struct {
	SalonID int64  `json:"salon_id" binding:"required"`
	Reason  string `json:"reason"`
}

type PlanResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	PriceMonthlyCents int64  `json:"price_monthly_cents"`
	PriceYearlyCents  *int64 `json:"price_yearly_cents,omitempty"`
	CommissionRateBps int64  `json:"commission_rate_bps"`
	MaxServices       int    `json:"max_services"`
	MaxCoverageZones  int    `json:"max_coverage_zones"`
	PrioritySearch    bool   `json:"priority_search"`
	AnalyticsAdvanced bool   `json:"analytics_advanced"`
}

type SubscriptionResponse struct {
	ID                string  `json:"id"`
	SalonID           int64   `json:"salon_id"`
	PlanID            string  `json:"plan_id"`
	PlanName          string  `json:"plan_name"`
	Status            string  `json:"status"`
	BillingPeriod     string  `json:"billing_period"`
	StartedAt         string  `json:"started_at"`
	ExpiresAt         *string `json:"expires_at,omitempty"`
	DaysRemaining     int     `json:"days_remaining"`
	AutoRenew         bool    `json:"auto_renew"`
	CommissionRateBps int64   `json:"commission_rate_bps"`
}

func planToResponse(p *domain.Plan) PlanResponse {
	return PlanResponse{
		ID:                string(p.ID),
		Name:              p.Name,
		Description:       p.Description,
		PriceMonthlyCents: p.PriceMonthlyCents,
		PriceYearlyCents:  p.PriceYearlyCents,
		CommissionRateBps: p.CommissionRateBps,
		MaxServices:       p.MaxServices,
		MaxCoverageZones:  p.MaxCoverageZones,
		PrioritySearch:    p.PrioritySearch,
		AnalyticsAdvanced: p.AnalyticsAdvanced,
	}
}

func subscriptionToResponse(sub *domain.Subscription, plan *domain.Plan) SubscriptionResponse {
	resp := SubscriptionResponse{
		ID:            sub.ID,
		SalonID:       sub.SalonID,
		PlanID:        string(sub.PlanID),
		Status:        string(sub.Status),
		BillingPeriod: string(sub.BillingPeriod),
		StartedAt:     sub.StartedAt.UTC().Format("2006-01-02T15:04:05Z"),
		AutoRenew:     sub.AutoRenew,
		DaysRemaining: sub.DaysRemaining(),
	}
	if sub.ExpiresAt.Valid {
		s := sub.ExpiresAt.Time.UTC().Format("2006-01-02T15:04:05Z")
		resp.ExpiresAt = &s
	}
	if plan != nil {
		resp.PlanName = plan.Name
		resp.CommissionRateBps = plan.CommissionRateBps
	}
	return resp
}
