// AngelaMos | 2026
// repository.go

package policy

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/insureai/portal-api/internal/core"
)

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Policy, error)
	GetByID(ctx context.Context, userID, policyID string) (Policy, error)
	Insert(ctx context.Context, row policyRow) (Policy, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const policyColumns = `
	id, user_id, type, status, premium::text, coverage_amount::text,
	deductible::text, start_date, end_date, next_due_date`

func (r *repository) ListByUser(
	ctx context.Context,
	userID string,
) ([]Policy, error) {
	query := `
		SELECT ` + policyColumns + `
		FROM policies
		WHERE user_id = $1
		ORDER BY start_date DESC`

	var rows []policyRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("list policies: %w", err)
	}

	policies := make([]Policy, 0, len(rows))
	for _, row := range rows {
		p, err := toPolicy(row)
		if err != nil {
			return nil, fmt.Errorf("list policies: decode row %s: %w", row.ID, err)
		}
		policies = append(policies, p)
	}

	return policies, nil
}

func (r *repository) GetByID(
	ctx context.Context,
	userID, policyID string,
) (Policy, error) {
	query := `
		SELECT ` + policyColumns + `
		FROM policies
		WHERE id = $1 AND user_id = $2`

	var row policyRow
	err := r.db.GetContext(ctx, &row, query, policyID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return Policy{}, fmt.Errorf("get policy: %w", core.ErrNotFound)
	}
	if err != nil {
		return Policy{}, fmt.Errorf("get policy: %w", err)
	}

	p, err := toPolicy(row)
	if err != nil {
		return Policy{}, fmt.Errorf("get policy: decode row %s: %w", row.ID, err)
	}

	return p, nil
}

func (r *repository) Insert(
	ctx context.Context,
	row policyRow,
) (Policy, error) {
	query := `
		INSERT INTO policies
			(id, user_id, type, status, premium, coverage_amount,
			 deductible, start_date, end_date, next_due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + policyColumns

	var saved policyRow
	err := r.db.GetContext(ctx, &saved, query,
		row.ID,
		row.UserID,
		row.Type,
		row.Status,
		row.Premium,
		row.CoverageAmount,
		row.Deductible,
		row.StartDate,
		row.EndDate,
		row.NextDueDate,
	)
	if err != nil {
		if core.IsDuplicateKey(err) {
			return Policy{}, fmt.Errorf("insert policy: %w", core.ErrDuplicateKey)
		}
		return Policy{}, fmt.Errorf("insert policy: %w", err)
	}

	p, err := toPolicy(saved)
	if err != nil {
		return Policy{}, fmt.Errorf("insert policy: decode row %s: %w", saved.ID, err)
	}

	return p, nil
}
