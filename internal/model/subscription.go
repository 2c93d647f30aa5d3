package model

import "strings"

// Plan is a premium subscription plan.
type Plan string

const (
	PlanMonthly Plan = "MONTHLY"
	PlanYearly  Plan = "YEARLY"
)

// ParsePlan normalizes a plan name. An empty name selects the monthly plan.
func ParsePlan(s string) (Plan, bool) {
	switch Plan(strings.ToUpper(strings.TrimSpace(s))) {
	case "", PlanMonthly:
		return PlanMonthly, true
	case PlanYearly:
		return PlanYearly, true
	default:
		return "", false
	}
}

// Subscription is a user's premium subscription. A user owns at most one row.
type Subscription struct {
	ID        int64 `json:"subscriptionId"`
	UserID    int64 `json:"-"`
	PlanType  Plan  `json:"planType"`
	StartDate Date  `json:"startDate"`
	EndDate   Date  `json:"endDate"`
	Active    bool  `json:"active"`
	AutoRenew bool  `json:"autoRenew"`
}
