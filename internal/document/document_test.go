// AngelaMos | 2026
// document_test.go

package document

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDocument(t *testing.T) {
	base := documentRow{
		ID:         "doc-1",
		UserID:     "user-1",
		Name:       "Auto Policy Contract.pdf",
		Type:       "Contract",
		UploadDate: time.Date(2026, 1, 15, 14, 30, 0, 0, time.UTC),
		FileSizeKb: 245,
		StorageURL: "https://storage.example.com/doc-1.pdf",
		RelatedPolicyID: sql.NullString{
			String: "POL-AUTO-1735689600000",
			Valid:  true,
		},
	}

	t.Run("carries all columns and normalizes the date", func(t *testing.T) {
		doc := toDocument(base)

		assert.Equal(t, "2026-01-15", doc.UploadDate)
		assert.Equal(t, int64(245), doc.FileSizeKb)
		assert.Equal(t, "https://storage.example.com/doc-1.pdf", doc.StorageURL)
		assert.Equal(t, "POL-AUTO-1735689600000", doc.RelatedPolicyID)
		assert.Empty(t, doc.RelatedClaimID)
	})

	t.Run("upload date drops time and zone", func(t *testing.T) {
		row := base
		loc := time.FixedZone("UTC+9", 9*3600)
		row.UploadDate = time.Date(2026, 1, 15, 23, 59, 59, 0, loc)

		doc := toDocument(row)
		assert.Equal(t, "2026-01-15", doc.UploadDate)
	})

	t.Run("wire names match the portal contract", func(t *testing.T) {
		row := base
		row.RelatedClaimID = sql.NullString{String: "claim-1", Valid: true}

		raw, err := json.Marshal(toDocument(row))
		require.NoError(t, err)

		payload := string(raw)
		assert.Contains(t, payload, `"fileSizeKb":245`)
		assert.Contains(t, payload, `"storageUrl"`)
		assert.Contains(t, payload, `"relatedPolicyId"`)
		assert.Contains(t, payload, `"relatedClaimId":"claim-1"`)
		assert.Contains(t, payload, `"uploadDate":"2026-01-15"`)
	})

	t.Run("null references are omitted from the wire", func(t *testing.T) {
		row := base
		row.RelatedPolicyID = sql.NullString{}

		raw, err := json.Marshal(toDocument(row))
		require.NoError(t, err)

		assert.NotContains(t, string(raw), "relatedPolicyId")
		assert.NotContains(t, string(raw), "relatedClaimId")
	})
}

type fakeRepo struct {
	listFn func(ctx context.Context, userID string) ([]Document, error)
}

func (f *fakeRepo) ListByUser(
	ctx context.Context,
	userID string,
) ([]Document, error) {
	return f.listFn(ctx, userID)
}

func TestServiceList(t *testing.T) {
	t.Run("store failure degrades to empty", func(t *testing.T) {
		repo := &fakeRepo{
			listFn: func(context.Context, string) ([]Document, error) {
				return nil, errors.New("relation \"documents\" does not exist")
			},
		}
		svc := NewService(repo)

		got := svc.List(context.Background(), "user-1")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
