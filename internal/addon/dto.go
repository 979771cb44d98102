// AngelaMos | 2026
// dto.go

package addon

type RecommendRequest struct {
	PolicyType     string  `json:"policyType"     validate:"required,oneof=Auto Home Life Health auto home life health"`
	CoverageAmount float64 `json:"coverageAmount" validate:"required,gte=10000,lte=1000000"`
	Deductible     float64 `json:"deductible"     validate:"required,gte=250,lte=2500"`
}

type RecommendResponse struct {
	RecommendedAddOns []string `json:"recommendedAddOns"`
}
