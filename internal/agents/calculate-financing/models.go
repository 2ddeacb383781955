// internal/agents/calculate-financing/models.go
package calculatefinancing

import "realty-concierge/internal/models"

type Input struct {
	Price float64 `json:"price"`
}

type Output struct {
	Options []models.FinancingOption `json:"options"`
}

// product is one fixed loan product evaluated by Options.
type product struct {
	label      string
	annualRate float64
	termMonths int
}

// Evaluated in this order; order is part of the response contract.
var products = []product{
	{label: "5-Year Loan (8% APR)", annualRate: 8, termMonths: 60},
	{label: "10-Year Loan (7% APR)", annualRate: 7, termMonths: 120},
}
