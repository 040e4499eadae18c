package domain

// PlanID identifies a salon subscription tier. The tier decides the
// platform commission rate applied to payments.
type PlanID string

const (
	PlanFree    PlanID = "free"
	PlanStarter PlanID = "starter"
	PlanPro     PlanID = "pro"
	PlanPremium PlanID = "premium"
)

// Valid reports whether p is a known tier.
func (p PlanID) Valid() bool {
	switch p {
	case PlanFree, PlanStarter, PlanPro, PlanPremium:
		return true
	}
	return false
}
