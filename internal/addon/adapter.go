// AngelaMos | 2026
// adapter.go

package addon

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/insureai/portal-api/internal/config"
)

// Suggester wraps the Gemini client. A Suggester with no generate func is
// valid and returns no suggestions, so the portal runs without an API key.
type Suggester struct {
	client   *genai.Client
	model    string
	timeout  time.Duration
	generate func(ctx context.Context, prompt string) (string, error)
}

func NewSuggester(ctx context.Context, cfg config.AIConfig) (*Suggester, error) {
	s := &Suggester{
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}

	if cfg.APIKey == "" {
		slog.Warn("GEMINI_API_KEY not set, add-on suggestions disabled")
		return s, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	s.client = client
	s.generate = s.callModel
	return s, nil
}

func (s *Suggester) Enabled() bool {
	return s.generate != nil
}

// SuggestionInput carries everything the prompt needs about the customer
// and the policy they are configuring.
type SuggestionInput struct {
	PolicyType     string
	CoverageAmount float64
	Deductible     float64
	Age            int
	Location       string
	FamilySize     int
	Occupation     string
}

// suggestionSchema constrains the model to a single JSON object with a
// string array, so decoding failures mean a broken upstream, not free text.
var suggestionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"recommendedAddOns": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"recommendedAddOns"},
}

type suggestionPayload struct {
	RecommendedAddOns []string `json:"recommendedAddOns"`
}

// Suggest asks the model for add-on names. A disabled suggester or a
// malformed model response yields an empty list; only a transport failure
// is an error.
func (s *Suggester) Suggest(
	ctx context.Context,
	input SuggestionInput,
) ([]string, error) {
	if s.generate == nil {
		return []string{}, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.generate(callCtx, buildPrompt(input))
	if err != nil {
		return nil, fmt.Errorf("generate suggestions: %w", err)
	}

	var payload suggestionPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		slog.Warn("unparseable suggestion response",
			"model", s.model,
			"error", err,
		)
		return []string{}, nil
	}

	if payload.RecommendedAddOns == nil {
		return []string{}, nil
	}

	return payload.RecommendedAddOns, nil
}

func (s *Suggester) callModel(
	ctx context.Context,
	prompt string,
) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	result, err := s.client.Models.GenerateContent(ctx,
		s.model,
		contents,
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   suggestionSchema,
		},
	)
	if err != nil {
		return "", err
	}

	return result.Text(), nil
}

func buildPrompt(input SuggestionInput) string {
	var b strings.Builder

	b.WriteString("You are an insurance advisor. Based on the customer ")
	b.WriteString("profile and the policy they are configuring, recommend ")
	b.WriteString("up to three add-on coverages by name.\n\n")

	fmt.Fprintf(&b, "Policy type: %s\n", input.PolicyType)
	fmt.Fprintf(&b, "Coverage amount: %.0f\n", input.CoverageAmount)
	fmt.Fprintf(&b, "Deductible: %.0f\n", input.Deductible)
	fmt.Fprintf(&b, "Customer age: %d\n", input.Age)
	fmt.Fprintf(&b, "Location: %s\n", input.Location)
	fmt.Fprintf(&b, "Family size: %d\n", input.FamilySize)
	fmt.Fprintf(&b, "Occupation: %s\n", input.Occupation)

	b.WriteString("\nReturn only the JSON object described by the schema.")

	return b.String()
}
