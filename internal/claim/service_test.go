// AngelaMos | 2026
// service_test.go

package claim

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insureai/portal-api/internal/core"
)

type fakeRepo struct {
	listFn   func(ctx context.Context, userID string) ([]Claim, error)
	insertFn func(ctx context.Context, row claimRow) (Claim, error)
	inserted []claimRow
}

func (f *fakeRepo) ListByUser(
	ctx context.Context,
	userID string,
) ([]Claim, error) {
	return f.listFn(ctx, userID)
}

func (f *fakeRepo) InsertForPolicy(
	ctx context.Context,
	row claimRow,
) (Claim, error) {
	f.inserted = append(f.inserted, row)
	if f.insertFn != nil {
		return f.insertFn(ctx, row)
	}
	row.Type = "Auto"
	return toClaim(row), nil
}

type fakeRecorder struct {
	entries []string
}

func (f *fakeRecorder) Record(
	_ context.Context,
	_, description, _ string,
) {
	f.entries = append(f.entries, description)
}

func validRequest() SubmitClaimRequest {
	return SubmitClaimRequest{
		PolicyID:     "POL-AUTO-1735689600000",
		Description:  "Rear-ended at a stop light on Main Street.",
		IncidentDate: "2026-03-01",
	}
}

func TestServiceSubmit(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	newService := func(repo *fakeRepo, rec ActivityRecorder) *Service {
		svc := NewService(repo, rec, true)
		svc.now = func() time.Time { return now }
		return svc
	}

	t.Run("files the claim as Submitted", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newService(repo, nil)

		c, err := svc.Submit(context.Background(), "user-1", validRequest())
		require.NoError(t, err)

		assert.Regexp(t, `^C-\d+$`, c.ClaimNumber)
		assert.Equal(t, "C-1773570600000", c.ClaimNumber)
		assert.Equal(t, StatusSubmitted, c.Status)
		assert.Equal(t, "Auto", c.Type)
		assert.Equal(t, "2026-03-01", c.IncidentDate)
	})

	t.Run("status is never taken from input", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newService(repo, nil)

		_, err := svc.Submit(context.Background(), "user-1", validRequest())
		require.NoError(t, err)

		require.Len(t, repo.inserted, 1)
		assert.Equal(t, StatusSubmitted, repo.inserted[0].Status)
	})

	t.Run("unowned policy reads as not found", func(t *testing.T) {
		repo := &fakeRepo{
			insertFn: func(context.Context, claimRow) (Claim, error) {
				return Claim{}, fmt.Errorf("claim policy: %w", core.ErrNotFound)
			},
		}
		svc := newService(repo, nil)

		_, err := svc.Submit(context.Background(), "user-1", validRequest())
		assert.ErrorIs(t, err, core.ErrNotFound)
	})

	t.Run("store failure surfaces as a wrapped error", func(t *testing.T) {
		repo := &fakeRepo{
			insertFn: func(context.Context, claimRow) (Claim, error) {
				return Claim{}, errors.New("connection refused")
			},
		}
		rec := &fakeRecorder{}
		svc := newService(repo, rec)

		_, err := svc.Submit(context.Background(), "user-1", validRequest())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save claim")
		assert.Empty(t, rec.entries)
	})

	t.Run("unconfigured store fails fast", func(t *testing.T) {
		repo := &fakeRepo{}
		rec := &fakeRecorder{}
		svc := NewService(repo, rec, false)
		svc.now = func() time.Time { return now }

		_, err := svc.Submit(context.Background(), "user-1", validRequest())
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrNotConfigured)
		assert.Empty(t, repo.inserted)
		assert.Empty(t, rec.entries)
	})

	t.Run("records an activity entry with the claim number", func(t *testing.T) {
		repo := &fakeRepo{}
		rec := &fakeRecorder{}
		svc := newService(repo, rec)

		c, err := svc.Submit(context.Background(), "user-1", validRequest())
		require.NoError(t, err)

		require.Len(t, rec.entries, 1)
		assert.Contains(t, rec.entries[0], c.ClaimNumber)
	})
}

func TestServiceList(t *testing.T) {
	t.Run("store failure degrades to empty", func(t *testing.T) {
		repo := &fakeRepo{
			listFn: func(context.Context, string) ([]Claim, error) {
				return nil, errors.New("relation \"claims\" does not exist")
			},
		}
		svc := NewService(repo, nil, true)

		got := svc.List(context.Background(), "user-1")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestSubmitClaimRequestValidation(t *testing.T) {
	v := validator.New(validator.WithRequiredStructEnabled())

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, v.Struct(validRequest()))
	})

	t.Run("nineteen character description is rejected", func(t *testing.T) {
		req := validRequest()
		req.Description = "Too short to accept"
		require.Len(t, req.Description, 19)

		assert.Error(t, v.Struct(req))
	})

	t.Run("incident date must be a calendar date", func(t *testing.T) {
		req := validRequest()
		req.IncidentDate = "03/01/2026"

		assert.Error(t, v.Struct(req))
	})

	t.Run("policy id is required", func(t *testing.T) {
		req := validRequest()
		req.PolicyID = ""

		assert.Error(t, v.Struct(req))
	})
}
