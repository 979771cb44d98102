// AngelaMos | 2026
// document.go

package document

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/insureai/portal-api/internal/core"
	"github.com/insureai/portal-api/internal/middleware"
)

type Document struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	UploadDate      string `json:"uploadDate"`
	FileSizeKb      int64  `json:"fileSizeKb"`
	StorageURL      string `json:"storageUrl"`
	RelatedPolicyID string `json:"relatedPolicyId,omitempty"`
	RelatedClaimID  string `json:"relatedClaimId,omitempty"`
}

type documentRow struct {
	ID              string         `db:"id"`
	UserID          string         `db:"user_id"`
	Name            string         `db:"name"`
	Type            string         `db:"type"`
	UploadDate      time.Time      `db:"upload_date"`
	FileSizeKb      int64          `db:"file_size_kb"`
	StorageURL      string         `db:"storage_url"`
	RelatedPolicyID sql.NullString `db:"related_policy_id"`
	RelatedClaimID  sql.NullString `db:"related_claim_id"`
}

const dateLayout = "2006-01-02"

// toDocument normalizes the upload date to a calendar day, same contract as
// the policy and claim mappers.
func toDocument(row documentRow) Document {
	return Document{
		ID:              row.ID,
		UserID:          row.UserID,
		Name:            row.Name,
		Type:            row.Type,
		UploadDate:      row.UploadDate.Format(dateLayout),
		FileSizeKb:      row.FileSizeKb,
		StorageURL:      row.StorageURL,
		RelatedPolicyID: row.RelatedPolicyID.String,
		RelatedClaimID:  row.RelatedClaimID.String,
	}
}

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Document, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID string,
) ([]Document, error) {
	query := `
		SELECT id, user_id, name, type, upload_date, file_size_kb,
		       storage_url, related_policy_id, related_claim_id
		FROM documents
		WHERE user_id = $1
		ORDER BY upload_date DESC`

	var rows []documentRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, toDocument(row))
	}

	return docs, nil
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List degrades to empty on store failure, same contract as the other read
// surfaces.
func (s *Service) List(ctx context.Context, userID string) []Document {
	docs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		core.ClassifyDBError("document.List", err)
		return []Document{}
	}

	return docs
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/documents", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.ListDocuments)
	})
}

func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	core.OK(w, h.service.List(r.Context(), userID))
}
