// AngelaMos | 2026
// repository.go

package claim

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/insureai/portal-api/internal/core"
)

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Claim, error)
	InsertForPolicy(ctx context.Context, row claimRow) (Claim, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const claimColumns = `
	id, user_id, policy_id, claim_number, type, status, description,
	incident_date, created_at`

func (r *repository) ListByUser(
	ctx context.Context,
	userID string,
) ([]Claim, error) {
	query := `
		SELECT ` + claimColumns + `
		FROM claims
		WHERE user_id = $1
		ORDER BY incident_date DESC`

	var rows []claimRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}

	claims := make([]Claim, 0, len(rows))
	for _, row := range rows {
		claims = append(claims, toClaim(row))
	}

	return claims, nil
}

// InsertForPolicy checks ownership and inserts in one transaction: the claim
// type is copied from the referenced policy, and a policy the user does not
// own reads the same as one that does not exist.
func (r *repository) InsertForPolicy(
	ctx context.Context,
	row claimRow,
) (Claim, error) {
	var saved claimRow

	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var policyType string
		err := tx.GetContext(ctx, &policyType,
			`SELECT type FROM policies WHERE id = $1 AND user_id = $2 FOR SHARE`,
			row.PolicyID, row.UserID,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("claim policy: %w", core.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("claim policy lookup: %w", err)
		}

		query := `
			INSERT INTO claims
				(id, user_id, policy_id, claim_number, type, status,
				 description, incident_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING ` + claimColumns

		err = tx.GetContext(ctx, &saved, query,
			row.ID,
			row.UserID,
			row.PolicyID,
			row.ClaimNumber,
			policyType,
			row.Status,
			row.Description,
			row.IncidentDate,
		)
		if err != nil {
			if core.IsDuplicateKey(err) {
				return fmt.Errorf("insert claim: %w", core.ErrDuplicateKey)
			}
			return fmt.Errorf("insert claim: %w", err)
		}

		return nil
	})
	if err != nil {
		return Claim{}, err
	}

	return toClaim(saved), nil
}
