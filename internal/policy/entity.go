// AngelaMos | 2026
// entity.go

package policy

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	TypeAuto   = "Auto"
	TypeHome   = "Home"
	TypeLife   = "Life"
	TypeHealth = "Health"
)

const (
	StatusActive  = "Active"
	StatusPending = "Pending"
	StatusExpired = "Expired"
)

// Policy is the typed application record, camelCase on the wire.
type Policy struct {
	ID             string  `json:"id"`
	UserID         string  `json:"userId"`
	Type           string  `json:"type"`
	Status         string  `json:"status"`
	Premium        float64 `json:"premium"`
	CoverageAmount float64 `json:"coverageAmount"`
	Deductible     float64 `json:"deductible"`
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate"`
	NextDueDate    string  `json:"nextDueDate,omitempty"`
}

// policyRow is the raw policies row. NUMERIC columns scan as text and are
// parsed explicitly; nothing is assumed about what the store hands back.
type policyRow struct {
	ID             string     `db:"id"`
	UserID         string     `db:"user_id"`
	Type           string     `db:"type"`
	Status         string     `db:"status"`
	Premium        string     `db:"premium"`
	CoverageAmount string     `db:"coverage_amount"`
	Deductible     string     `db:"deductible"`
	StartDate      time.Time  `db:"start_date"`
	EndDate        time.Time  `db:"end_date"`
	NextDueDate    *time.Time `db:"next_due_date"`
}

const dateLayout = "2006-01-02"

// toPolicy decodes a row into a Policy. The type column is title-cased and
// must land on one of the four recognized policy types; anything else is a
// data-integrity failure, not a business outcome.
func toPolicy(row policyRow) (Policy, error) {
	premium, err := strconv.ParseFloat(row.Premium, 64)
	if err != nil {
		return Policy{}, fmt.Errorf("parse premium %q: %w", row.Premium, err)
	}

	coverage, err := strconv.ParseFloat(row.CoverageAmount, 64)
	if err != nil {
		return Policy{}, fmt.Errorf(
			"parse coverage_amount %q: %w",
			row.CoverageAmount,
			err,
		)
	}

	deductible, err := strconv.ParseFloat(row.Deductible, 64)
	if err != nil {
		return Policy{}, fmt.Errorf(
			"parse deductible %q: %w",
			row.Deductible,
			err,
		)
	}

	policyType := TitleCaseType(row.Type)
	if !IsRecognizedType(policyType) {
		return Policy{}, fmt.Errorf("unrecognized policy type %q", row.Type)
	}

	p := Policy{
		ID:             row.ID,
		UserID:         row.UserID,
		Type:           policyType,
		Status:         row.Status,
		Premium:        premium,
		CoverageAmount: coverage,
		Deductible:     deductible,
		StartDate:      row.StartDate.Format(dateLayout),
		EndDate:        row.EndDate.Format(dateLayout),
	}

	if row.NextDueDate != nil {
		p.NextDueDate = row.NextDueDate.Format(dateLayout)
	}

	return p, nil
}

func TitleCaseType(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func IsRecognizedType(s string) bool {
	switch s {
	case TypeAuto, TypeHome, TypeLife, TypeHealth:
		return true
	}
	return false
}

// NewPolicyID builds the generated policy id: type plus a millisecond
// timestamp suffix, e.g. POL-AUTO-1735689600000.
func NewPolicyID(policyType string, now time.Time) string {
	return fmt.Sprintf(
		"POL-%s-%d",
		strings.ToUpper(policyType),
		now.UnixMilli(),
	)
}
