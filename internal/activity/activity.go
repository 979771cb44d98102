// AngelaMos | 2026
// activity.go

package activity

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/insureai/portal-api/internal/core"
	"github.com/insureai/portal-api/internal/middleware"
)

const (
	defaultLimit = 5
	maxLimit     = 50
)

type Activity struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"createdAt"`
}

type activityRow struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	Description string    `db:"description"`
	Icon        string    `db:"icon"`
	CreatedAt   time.Time `db:"created_at"`
}

type Repository interface {
	Insert(ctx context.Context, a *Activity) error
	RecentByUser(ctx context.Context, userID string, limit int) ([]Activity, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, a *Activity) error {
	query := `
		INSERT INTO activities (id, user_id, description, icon)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &a.CreatedAt, query,
		a.ID,
		a.UserID,
		a.Description,
		a.Icon,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}

	return nil
}

func (r *repository) RecentByUser(
	ctx context.Context,
	userID string,
	limit int,
) ([]Activity, error) {
	query := `
		SELECT id, user_id, description, icon, created_at
		FROM activities
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	var rows []activityRow
	if err := r.db.SelectContext(ctx, &rows, query, userID, limit); err != nil {
		return nil, fmt.Errorf("recent activities: %w", err)
	}

	activities := make([]Activity, 0, len(rows))
	for _, row := range rows {
		activities = append(activities, Activity(row))
	}

	return activities, nil
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record appends a feed entry after another module's write has committed.
// It never fails the caller: a store error here is a log line, not a
// rolled-back purchase.
func (s *Service) Record(
	ctx context.Context,
	userID, description, icon string,
) {
	a := &Activity{
		ID:          uuid.New().String(),
		UserID:      userID,
		Description: description,
		Icon:        icon,
	}

	if err := s.repo.Insert(ctx, a); err != nil {
		core.ClassifyDBError("activity.Record", err)
		slog.Warn("could not record activity",
			"user_id", userID,
			"description", description,
			"error", err,
		)
	}
}

// Recent clamps the limit to [1, maxLimit] and falls back to the default
// when the caller sends nothing usable. Store failures read as an empty
// feed.
func (s *Service) Recent(
	ctx context.Context,
	userID string,
	limit int,
) []Activity {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	activities, err := s.repo.RecentByUser(ctx, userID, limit)
	if err != nil {
		core.ClassifyDBError("activity.Recent", err)
		return []Activity{}
	}

	return activities
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
	r.Route("/activities", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.ListActivities)
	})
}

func (h *Handler) ListActivities(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			core.BadRequest(w, "limit must be an integer")
			return
		}
		limit = parsed
	}

	core.OK(w, h.service.Recent(r.Context(), userID, limit))
}
