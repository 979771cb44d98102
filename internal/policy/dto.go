// AngelaMos | 2026
// dto.go

package policy

type PurchasePolicyRequest struct {
	Type           string  `json:"type"           validate:"required,oneof=Auto Home Life Health auto home life health"`
	CoverageAmount float64 `json:"coverageAmount" validate:"required,gte=10000,lte=1000000"`
	Deductible     float64 `json:"deductible"     validate:"required,gte=250,lte=2500"`
}

type QuoteRequest struct {
	Type           string  `json:"type"           validate:"required,oneof=Auto Home Life Health auto home life health"`
	CoverageAmount float64 `json:"coverageAmount" validate:"required,gte=10000,lte=1000000"`
	Deductible     float64 `json:"deductible"     validate:"required,gte=250,lte=2500"`
}

type QuoteResponse struct {
	Type           string  `json:"type"`
	CoverageAmount float64 `json:"coverageAmount"`
	Deductible     float64 `json:"deductible"`
	MonthlyPremium float64 `json:"monthlyPremium"`
}
