// AngelaMos | 2026
// service.go

package policy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/insureai/portal-api/internal/core"
)

// ActivityRecorder appends a feed entry after a successful write. Recording
// is best-effort: the purchase has already committed when it runs.
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

// List favors availability: a store failure is logged with a classified
// diagnosis and the caller gets an empty slice, so the dashboard renders
// even when the policies table is missing or the database is down.
func (s *Service) List(ctx context.Context, userID string) []Policy {
	policies, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		core.ClassifyDBError("policy.List", err)
		return []Policy{}
	}

	return policies
}

func (s *Service) Get(
	ctx context.Context,
	userID, policyID string,
) (Policy, error) {
	p, err := s.repo.GetByID(ctx, userID, policyID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return Policy{}, err
		}
		core.ClassifyDBError("policy.Get", err)
		return Policy{}, err
	}

	return p, nil
}

// Quote rates the configurator inputs without persisting anything.
func (s *Service) Quote(req QuoteRequest) QuoteResponse {
	policyType := TitleCaseType(req.Type)

	return QuoteResponse{
		Type:           policyType,
		CoverageAmount: req.CoverageAmount,
		Deductible:     req.Deductible,
		MonthlyPremium: CalculateMonthlyPremium(
			policyType,
			req.CoverageAmount,
			req.Deductible,
		),
	}
}

// Purchase rates and persists a new policy. The premium is always computed
// here from the submitted coverage and deductible; nothing the client sends
// can set the price. New policies start Active, run for a year, and have
// their first payment due in a month.
func (s *Service) Purchase(
	ctx context.Context,
	userID string,
	req PurchasePolicyRequest,
) (Policy, error) {
	if !s.configured {
		return Policy{}, core.NotConfiguredError()
	}

	policyType := TitleCaseType(req.Type)
	now := s.now()

	premium := CalculateMonthlyPremium(
		policyType,
		req.CoverageAmount,
		req.Deductible,
	)

	startDate := now.UTC().Truncate(24 * time.Hour)
	endDate := startDate.AddDate(1, 0, 0)
	nextDueDate := startDate.AddDate(0, 1, 0)

	row := policyRow{
		ID:             NewPolicyID(policyType, now),
		UserID:         userID,
		Type:           policyType,
		Status:         StatusActive,
		Premium:        formatAmount(premium),
		CoverageAmount: formatAmount(req.CoverageAmount),
		Deductible:     formatAmount(req.Deductible),
		StartDate:      startDate,
		EndDate:        endDate,
		NextDueDate:    &nextDueDate,
	}

	saved, err := s.repo.Insert(ctx, row)
	if err != nil {
		core.ClassifyDBError("policy.Purchase", err)
		return Policy{}, fmt.Errorf("failed to save policy: %w", err)
	}

	if s.activity != nil {
		s.activity.Record(ctx, userID,
			fmt.Sprintf("Purchased a new %s policy.", saved.Type),
			"ShieldCheck",
		)
	}

	slog.Info("policy purchased",
		"policy_id", saved.ID,
		"user_id", userID,
		"type", saved.Type,
		"premium", saved.Premium,
	)

	return saved, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
