package dto

// SubscriptionStatus is the entitlement summary for the current user.
// A limit of -1 means unlimited.
type SubscriptionStatus struct {
	PlanType string         `json:"plan_type"`
	IsActive bool           `json:"is_active"`
	Features []string       `json:"features"`
	Usage    map[string]int `json:"usage"`
	Limits   map[string]int `json:"limits"`
}

// ChangePlanRequest switches the caller to a configured plan tier.
type ChangePlanRequest struct {
	PlanType string `json:"plan_type" binding:"required"`
}

// FeatureCheck answers "can this feature be used now?".
// Remaining is -1 when the feature is not metered for the current plan.
type FeatureCheck struct {
	Feature   string `json:"feature"`
	Allowed   bool   `json:"allowed"`
	Remaining int    `json:"remaining"`
}

// PlanItem is one catalog entry shown on the subscription screen.
type PlanItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Interval    string   `json:"interval"`
	Popular     bool     `json:"popular,omitempty"`
	Features    []string `json:"features"`
	Limitations []string `json:"limitations,omitempty"`
}

// PlanCatalog lists the configured plans.
type PlanCatalog struct {
	Plans []PlanItem `json:"plans"`
}
