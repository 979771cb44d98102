// AngelaMos | 2026
// adapter_test.go

package addon

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insureai/portal-api/internal/config"
)

func TestNewSuggesterWithoutKey(t *testing.T) {
	s, err := NewSuggester(context.Background(), config.AIConfig{
		Model:   "gemini-2.0-flash",
		Timeout: 30 * time.Second,
	})
	require.NoError(t, err)

	assert.False(t, s.Enabled())
}

func TestSuggestDisabled(t *testing.T) {
	s := &Suggester{model: "gemini-2.0-flash", timeout: time.Second}

	got, err := s.Suggest(context.Background(), SuggestionInput{
		PolicyType: "Auto",
	})
	require.NoError(t, err)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSuggestDecodesModelResponse(t *testing.T) {
	newSuggester := func(raw string) *Suggester {
		return &Suggester{
			model:   "gemini-2.0-flash",
			timeout: time.Second,
			generate: func(context.Context, string) (string, error) {
				return raw, nil
			},
		}
	}

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "recommended add-ons pass through",
			raw:  `{"recommendedAddOns":["Roadside Assistance","Rental Car"]}`,
			want: []string{"Roadside Assistance", "Rental Car"},
		},
		{
			name: "empty array stays empty",
			raw:  `{"recommendedAddOns":[]}`,
			want: []string{},
		},
		{
			name: "missing key degrades to empty",
			raw:  `{}`,
			want: []string{},
		},
		{
			name: "malformed response degrades to empty",
			raw:  `I recommend Roadside Assistance.`,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSuggester(tt.raw)

			got, err := s.Suggest(context.Background(), SuggestionInput{
				PolicyType: "Auto",
			})
			require.NoError(t, err)

			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggestTransportFailure(t *testing.T) {
	s := &Suggester{
		model:   "gemini-2.0-flash",
		timeout: time.Second,
		generate: func(context.Context, string) (string, error) {
			return "", errors.New("deadline exceeded")
		},
	}

	_, err := s.Suggest(context.Background(), SuggestionInput{
		PolicyType: "Auto",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate suggestions")
}

func TestSuggestPassesPromptToModel(t *testing.T) {
	var seen string
	s := &Suggester{
		model:   "gemini-2.0-flash",
		timeout: time.Second,
		generate: func(_ context.Context, prompt string) (string, error) {
			seen = prompt
			return `{"recommendedAddOns":[]}`, nil
		},
	}

	_, err := s.Suggest(context.Background(), SuggestionInput{
		PolicyType: "Home",
		Location:   "Austin, TX",
	})
	require.NoError(t, err)

	assert.Contains(t, seen, "Policy type: Home")
	assert.Contains(t, seen, "Location: Austin, TX")
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt(SuggestionInput{
		PolicyType:     "Auto",
		CoverageAmount: 100000,
		Deductible:     500,
		Age:            42,
		Location:       "Austin, TX",
		FamilySize:     4,
		Occupation:     "Nurse",
	})

	assert.Contains(t, prompt, "Policy type: Auto")
	assert.Contains(t, prompt, "Coverage amount: 100000")
	assert.Contains(t, prompt, "Deductible: 500")
	assert.Contains(t, prompt, "Customer age: 42")
	assert.Contains(t, prompt, "Location: Austin, TX")
	assert.Contains(t, prompt, "Family size: 4")
	assert.Contains(t, prompt, "Occupation: Nurse")
	assert.Contains(t, prompt, "JSON")
}
