// AngelaMos | 2026
// service.go

package addon

import (
	"context"
	"fmt"

	"github.com/insureai/portal-api/internal/policy"
	"github.com/insureai/portal-api/internal/profile"
)

// ProfileSource supplies the customer details the prompt is built from.
// profile.Service satisfies it.
type ProfileSource interface {
	GetProfile(ctx context.Context, userID string) (*profile.User, error)
}

type Service struct {
	suggester *Suggester
	profiles  ProfileSource
}

func NewService(suggester *Suggester, profiles ProfileSource) *Service {
	return &Service{
		suggester: suggester,
		profiles:  profiles,
	}
}

// Recommend combines the stored profile with the configurator inputs and
// asks the model. GetProfile never fails (it degrades to defaults), so the
// only error path here is the upstream call itself.
func (s *Service) Recommend(
	ctx context.Context,
	userID string,
	req RecommendRequest,
) (RecommendResponse, error) {
	user, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return RecommendResponse{}, fmt.Errorf("load profile: %w", err)
	}

	suggestions, err := s.suggester.Suggest(ctx, SuggestionInput{
		PolicyType:     policy.TitleCaseType(req.PolicyType),
		CoverageAmount: req.CoverageAmount,
		Deductible:     req.Deductible,
		Age:            user.Age,
		Location:       user.Location,
		FamilySize:     user.FamilySize,
		Occupation:     user.Occupation,
	})
	if err != nil {
		return RecommendResponse{}, err
	}

	return RecommendResponse{RecommendedAddOns: suggestions}, nil
}
