// AngelaMos | 2026
// entity.go

package claim

import (
	"fmt"
	"time"
)

const (
	StatusSubmitted = "Submitted"
	StatusInReview  = "In Review"
	StatusApproved  = "Approved"
	StatusDenied    = "Denied"
)

type Claim struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	PolicyID     string    `json:"policyId"`
	ClaimNumber  string    `json:"claimNumber"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	Description  string    `json:"description"`
	IncidentDate string    `json:"incidentDate"`
	CreatedAt    time.Time `json:"createdAt"`
}

type claimRow struct {
	ID           string    `db:"id"`
	UserID       string    `db:"user_id"`
	PolicyID     string    `db:"policy_id"`
	ClaimNumber  string    `db:"claim_number"`
	Type         string    `db:"type"`
	Status       string    `db:"status"`
	Description  string    `db:"description"`
	IncidentDate time.Time `db:"incident_date"`
	CreatedAt    time.Time `db:"created_at"`
}

const dateLayout = "2006-01-02"

// toClaim normalizes the incident date to a calendar day; whatever time or
// zone the store attached to the DATE column is dropped.
func toClaim(row claimRow) Claim {
	return Claim{
		ID:           row.ID,
		UserID:       row.UserID,
		PolicyID:     row.PolicyID,
		ClaimNumber:  row.ClaimNumber,
		Type:         row.Type,
		Status:       row.Status,
		Description:  row.Description,
		IncidentDate: row.IncidentDate.Format(dateLayout),
		CreatedAt:    row.CreatedAt,
	}
}

// NewClaimNumber builds the customer-facing claim number from a millisecond
// timestamp, e.g. C-1735689600000.
func NewClaimNumber(now time.Time) string {
	return fmt.Sprintf("C-%d", now.UnixMilli())
}
