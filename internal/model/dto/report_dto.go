package dto

import "time"

// DashboardStats summarizes the current month and year to date.
type DashboardStats struct {
	MonthMiles          float64 `json:"month_miles"`
	YearMiles           float64 `json:"year_miles"`
	TotalExpenses       float64 `json:"total_expenses"`
	MileageDeduction    float64 `json:"mileage_deduction"`
	TotalDeduction      float64 `json:"total_deduction"`
	EstimatedTaxSavings float64 `json:"estimated_tax_savings"`
}

// TaxReport aggregates a caller-chosen date range.
type TaxReport struct {
	TotalMiles      float64   `json:"total_miles"`
	BusinessMiles   float64   `json:"business_miles"`
	TotalDeduction  float64   `json:"total_deduction"`
	TotalExpenses   float64   `json:"total_expenses"`
	TotalTaxSavings float64   `json:"total_tax_savings"`
	PeriodStart     time.Time `json:"period_start"`
	PeriodEnd       time.Time `json:"period_end"`
}
