// AngelaMos | 2026
// premium_test.go

package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateMonthlyPremium(t *testing.T) {
	tests := []struct {
		name       string
		policyType string
		coverage   float64
		deductible float64
		want       float64
	}{
		{
			name:       "auto at baseline deductible",
			policyType: "Auto",
			coverage:   100000,
			deductible: 500,
			want:       70,
		},
		{
			name:       "home is the priciest base after health",
			policyType: "Home",
			coverage:   250000,
			deductible: 1000,
			want:       120 + 50 - 50,
		},
		{
			name:       "life with low coverage",
			policyType: "Life",
			coverage:   50000,
			deductible: 250,
			want:       30 + 10 + 25,
		},
		{
			name:       "health",
			policyType: "Health",
			coverage:   10000,
			deductible: 500,
			want:       152,
		},
		{
			name:       "unknown type falls back to default base",
			policyType: "Pet",
			coverage:   100000,
			deductible: 500,
			want:       95,
		},
		{
			name:       "rating is case-insensitive",
			policyType: "auto",
			coverage:   100000,
			deductible: 500,
			want:       70,
		},
		{
			name:       "high deductible never drops below the floor",
			policyType: "Life",
			coverage:   10000,
			deductible: 2500,
			want:       20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateMonthlyPremium(
				tt.policyType,
				tt.coverage,
				tt.deductible,
			)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestCalculateMonthlyPremium_Floor(t *testing.T) {
	// life base 30, no coverage bump to speak of, max deductible credit:
	// 30 + 2 - 200 is well under the floor.
	got := CalculateMonthlyPremium("Life", 10000, 2500)
	assert.Equal(t, 20.0, got)
}
