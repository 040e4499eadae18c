package domain

import (
	"database/sql"
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionExpired   SubscriptionStatus = "expired"
)

type BillingPeriod string

const (
	BillingMonthly BillingPeriod = "monthly"
	BillingYearly  BillingPeriod = "yearly"
)

// Plan is a subscription tier a salon can be on. The tier's commission
// rate is what the platform keeps from each online payment.
type Plan struct {
	ID          PlanID `gorm:"column:id;primaryKey" json:"id"`
	Name        string `gorm:"column:name" json:"name"`
	Description string `gorm:"column:description" json:"description"`

	PriceMonthlyCents int64  `gorm:"column:price_monthly_cents" json:"price_monthly_cents"`
	PriceYearlyCents  *int64 `gorm:"column:price_yearly_cents" json:"price_yearly_cents,omitempty"`

	// CommissionRateBps in basis points (2000 = 20%).
	CommissionRateBps int64 `gorm:"column:commission_rate_bps" json:"commission_rate_bps"`

	// MaxServices caps the salon's active catalog; -1 = unlimited.
	MaxServices      int `gorm:"column:max_services" json:"max_services"`
	MaxCoverageZones int `gorm:"column:max_coverage_zones" json:"max_coverage_zones"`

	PrioritySearch    bool `gorm:"column:priority_search" json:"priority_search"`
	AnalyticsAdvanced bool `gorm:"column:analytics_advanced" json:"analytics_advanced"`

	IsActive  bool      `gorm:"column:is_active" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Plan) TableName() string { return "subscription_plans" }

// Subscription is a salon's paid tier over a billing period.
type Subscription struct {
	ID            string             `gorm:"column:id;primaryKey" json:"id"`
	SalonID       int64              `gorm:"column:salon_id;index" json:"salon_id"`
	PlanID        PlanID             `gorm:"column:plan_id" json:"plan_id"`
	Status        SubscriptionStatus `gorm:"column:status" json:"status"`
	BillingPeriod BillingPeriod      `gorm:"column:billing_period" json:"billing_period"`
	StartedAt     time.Time          `gorm:"column:started_at" json:"started_at"`
	ExpiresAt     sql.NullTime       `gorm:"column:expires_at" json:"expires_at,omitempty"`
	AutoRenew     bool               `gorm:"column:auto_renew" json:"auto_renew"`
	CancelReason  sql.NullString     `gorm:"column:cancel_reason" json:"cancel_reason,omitempty"`
	CancelledAt   sql.NullTime       `gorm:"column:cancelled_at" json:"cancelled_at,omitempty"`
	CreatedAt     time.Time          `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time          `gorm:"column:updated_at" json:"updated_at"`
}

func (Subscription) TableName() string { return "subscriptions" }

func (s *Subscription) IsExpired() bool {
	if !s.ExpiresAt.Valid {
		return false
	}
	return time.Now().After(s.ExpiresAt.Time)
}

func (s *Subscription) IsActive() bool {
	return s.Status == SubscriptionActive && !s.IsExpired()
}

// DaysRemaining returns days until expiry; -1 means no expiry.
func (s *Subscription) DaysRemaining() int {
	if !s.ExpiresAt.Valid {
		return -1
	}
	remaining := time.Until(s.ExpiresAt.Time)
	if remaining < 0 {
		return 0
	}
	return int(remaining.Hours() / 24)
}
