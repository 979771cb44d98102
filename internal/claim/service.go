// AngelaMos | 2026
// service.go

package claim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/insureai/portal-api/internal/core"
)

type ActivityRecorder interface {
	Record(ctx context.Context, userID, description, icon string)
}

type Service struct {
	repo       Repository
	activity   ActivityRecorder
	configured bool
	now        func() time.Time
}

func NewService(
	repo Repository,
	activity ActivityRecorder,
	configured bool,
) *Service {
	return &Service{
		repo:       repo,
		activity:   activity,
		configured: configured,
		now:        time.Now,
	}
}

// List degrades to an empty slice on store failure so the claims page keeps
// rendering; the diagnosis goes to the log.
func (s *Service) List(ctx context.Context, userID string) []Claim {
	claims, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		core.ClassifyDBError("claim.List", err)
		return []Claim{}
	}

	return claims
}

// Submit files a claim against one of the caller's policies. The claim type
// comes from the policy inside the insert transaction, the status is always
// Submitted, and the incident date has already passed format validation.
func (s *Service) Submit(
	ctx context.Context,
	userID string,
	req SubmitClaimRequest,
) (Claim, error) {
	if !s.configured {
		return Claim{}, core.NotConfiguredError()
	}

	incidentDate, err := time.Parse(dateLayout, req.IncidentDate)
	if err != nil {
		return Claim{}, fmt.Errorf("parse incident date: %w", core.ErrInvalidInput)
	}

	now := s.now()

	row := claimRow{
		ID:           uuid.New().String(),
		UserID:       userID,
		PolicyID:     req.PolicyID,
		ClaimNumber:  NewClaimNumber(now),
		Status:       StatusSubmitted,
		Description:  req.Description,
		IncidentDate: incidentDate,
	}

	saved, err := s.repo.InsertForPolicy(ctx, row)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return Claim{}, err
		}
		core.ClassifyDBError("claim.Submit", err)
		return Claim{}, fmt.Errorf("failed to save claim: %w", err)
	}

	if s.activity != nil {
		s.activity.Record(ctx, userID,
			fmt.Sprintf(
				"Filed claim %s for policy %s.",
				saved.ClaimNumber,
				saved.PolicyID,
			),
			"FileText",
		)
	}

	slog.Info("claim submitted",
		"claim_number", saved.ClaimNumber,
		"policy_id", saved.PolicyID,
		"user_id", userID,
	)

	return saved, nil
}
