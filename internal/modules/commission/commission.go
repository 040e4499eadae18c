// Package commission computes the deposit and the platform/salon split
// for a payment, keyed by the salon's subscription tier. All amounts are
// integer minor currency units; rounding is half-up on cents.
package commission

import "salonbook/internal/domain"

// Rates in basis points per tier. Rates strictly decrease as the tier
// increases; the free tier equals the default deposit-side rate.
const (
	DepositRateBps = 2000

	rateFreeBps    = 2000
	rateStarterBps = 1500
	rateProBps     = 1200
	ratePremiumBps = 1000
)

// Breakdown is the exact partition of a deposit between platform and
// salon: CommissionCents + SalonDepositCents == DepositCents always.
type Breakdown struct {
	DepositCents      int64
	CommissionCents   int64
	SalonDepositCents int64
	RateBps           int64
}

// RateFor returns the commission rate in basis points for a plan.
// Unrecognized plans fall back to the free tier.
func RateFor(plan domain.PlanID) int64 {
	switch plan {
	case domain.PlanStarter:
		return rateStarterBps
	case domain.PlanPro:
		return rateProBps
	case domain.PlanPremium:
		return ratePremiumBps
	default:
		return rateFreeBps
	}
}

// Deposit returns the upfront amount securing a booking: 20% of the total
// service price, rounded half-up. Negative input is a caller bug.
func Deposit(totalPriceCents int64) int64 {
	return roundBps(totalPriceCents, DepositRateBps)
}

// DepositBreakdown computes the deposit for a service price and splits it
// between platform commission and salon payout. The salon share is derived
// by subtraction so the partition is exact regardless of rounding.
func DepositBreakdown(totalPriceCents int64, plan domain.PlanID) Breakdown {
	deposit := Deposit(totalPriceCents)
	rate := RateFor(plan)
	fee := roundBps(deposit, rate)
	return Breakdown{
		DepositCents:      deposit,
		CommissionCents:   fee,
		SalonDepositCents: deposit - fee,
		RateBps:           rate,
	}
}

// Split applies a plan's commission rate to an arbitrary charged amount
// (the full price on "full" payments, the deposit otherwise) and returns
// the commission and the salon remainder.
func Split(amountCents int64, plan domain.PlanID) (commissionCents, salonCents int64) {
	fee := roundBps(amountCents, RateFor(plan))
	return fee, amountCents - fee
}

// roundBps multiplies by a basis-point rate rounding half-up.
func roundBps(amount, bps int64) int64 {
	return (amount*bps + 5000) / 10000
}
