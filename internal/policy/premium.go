// AngelaMos | 2026
// premium.go

package policy

import (
	"math"
	"strings"
)

const (
	minimumMonthlyPremium = 20.0
	defaultBasePremium    = 75.0
)

// basePremiums keys are lowercase so rating is insensitive to how the
// caller spells the type.
var basePremiums = map[string]float64{
	"auto":   50,
	"home":   120,
	"life":   30,
	"health": 150,
}

// CalculateMonthlyPremium rates a policy from its three inputs: a per-type
// base, plus 2 per 10k of coverage, minus a credit as the deductible rises
// above 500. The result never drops below the minimum premium.
func CalculateMonthlyPremium(
	policyType string,
	coverageAmount float64,
	deductible float64,
) float64 {
	base, ok := basePremiums[strings.ToLower(policyType)]
	if !ok {
		base = defaultBasePremium
	}

	premium := base + (coverageAmount/10000)*2 + (500-deductible)/10

	return math.Max(minimumMonthlyPremium, premium)
}
