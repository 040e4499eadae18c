package commission

import (
	"testing"

	"salonbook/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestDeposit_Rate(t *testing.T) {
	assert.Equal(t, int64(2000), Deposit(10000))
	assert.Equal(t, int64(1000), Deposit(5000))
	assert.Equal(t, int64(0), Deposit(0))
}

func TestDeposit_RoundsHalfUp(t *testing.T) {
	// 20% of 4999 = 999.8 → 1000; 20% of 4997 = 999.4 → 999
	assert.Equal(t, int64(1000), Deposit(4999))
	assert.Equal(t, int64(999), Deposit(4997))
	// 20% of 2 = 0.4 → 0; 20% of 3 = 0.6 → 1
	assert.Equal(t, int64(0), Deposit(2))
	assert.Equal(t, int64(1), Deposit(3))
}

func TestDepositBreakdown_ExactPartition(t *testing.T) {
	plans := []domain.PlanID{domain.PlanFree, domain.PlanStarter, domain.PlanPro, domain.PlanPremium}
	prices := []int64{0, 1, 3, 99, 4997, 4999, 5000, 10000, 12345, 99999, 1000001}

	for _, plan := range plans {
		for _, price := range prices {
			b := DepositBreakdown(price, plan)
			assert.Equal(t, b.DepositCents, b.CommissionCents+b.SalonDepositCents,
				"partition must be exact for plan=%s price=%d", plan, price)
			assert.Equal(t, Deposit(price), b.DepositCents)
			assert.GreaterOrEqual(t, b.SalonDepositCents, int64(0))
		}
	}
}

func TestDepositBreakdown_PlanMonotonicity(t *testing.T) {
	// For a 10000 price the deposit is 2000; commissions must strictly
	// decrease free → starter → pro → premium.
	free := DepositBreakdown(10000, domain.PlanFree)
	starter := DepositBreakdown(10000, domain.PlanStarter)
	pro := DepositBreakdown(10000, domain.PlanPro)
	premium := DepositBreakdown(10000, domain.PlanPremium)

	assert.Equal(t, int64(400), free.CommissionCents)
	assert.Equal(t, int64(300), starter.CommissionCents)
	assert.Equal(t, int64(240), pro.CommissionCents)
	assert.Equal(t, int64(200), premium.CommissionCents)

	assert.Greater(t, free.CommissionCents, starter.CommissionCents)
	assert.Greater(t, starter.CommissionCents, pro.CommissionCents)
	assert.Greater(t, pro.CommissionCents, premium.CommissionCents)
}

func TestDepositBreakdown_UnknownPlanFallsBackToFree(t *testing.T) {
	unknown := DepositBreakdown(10000, domain.PlanID("enterprise"))
	free := DepositBreakdown(10000, domain.PlanFree)
	assert.Equal(t, free, unknown)

	empty := DepositBreakdown(10000, "")
	assert.Equal(t, free, empty)
}

func TestRateFor(t *testing.T) {
	assert.Equal(t, int64(2000), RateFor(domain.PlanFree))
	assert.Equal(t, int64(1500), RateFor(domain.PlanStarter))
	assert.Equal(t, int64(1200), RateFor(domain.PlanPro))
	assert.Equal(t, int64(1000), RateFor(domain.PlanPremium))
	assert.Equal(t, int64(2000), RateFor("whatever"))
}

func TestSplit(t *testing.T) {
	fee, salon := Split(10000, domain.PlanPro)
	assert.Equal(t, int64(1200), fee)
	assert.Equal(t, int64(8800), salon)
	assert.Equal(t, int64(10000), fee+salon)

	fee, salon = Split(0, domain.PlanFree)
	assert.Equal(t, int64(0), fee)
	assert.Equal(t, int64(0), salon)
}
