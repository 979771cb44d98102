// AngelaMos | 2026
// service.go

package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/insureai/portal-api/internal/auth"
	"github.com/insureai/portal-api/internal/core"
)

type Service struct {
	repo       Repository
	configured bool
}

func NewService(repo Repository, configured bool) *Service {
	return &Service{repo: repo, configured: configured}
}

// GetProfile favors availability: on any store failure it logs a classified
// diagnosis and returns a default profile so the page still renders. Fresh
// accounts get their portal columns seeded on first read.
func (s *Service) GetProfile(
	ctx context.Context,
	userID string,
) (*User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		core.ClassifyDBError("GetProfile", err)
		fallback := &User{ID: userID, Name: "Member"}
		applyDefaults(fallback)
		return fallback, nil
	}

	if !user.Seeded() {
		applyDefaults(user)
		if seedErr := s.repo.SeedDefaults(ctx, user); seedErr != nil {
			core.ClassifyDBError("GetProfile.seed", seedErr)
			slog.Warn("could not persist profile defaults",
				"user_id", userID,
				"error", seedErr,
			)
		}
	}

	return user, nil
}

func (s *Service) UpdateProfile(
	ctx context.Context,
	userID string,
	req UpdateProfileRequest,
) (*User, error) {
	if !s.configured {
		return nil, core.NotConfiguredError()
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, err
		}
		core.ClassifyDBError("UpdateProfile", err)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	user.Name = req.Name
	user.Email = strings.ToLower(req.Email)
	user.Age = req.Age
	user.Location = req.Location
	user.FamilySize = req.FamilySize
	user.Occupation = req.Occupation
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}

	if err := s.repo.UpdateProfile(ctx, user); err != nil {
		core.ClassifyDBError("UpdateProfile", err)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) GetByID(
	ctx context.Context,
	id string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) Create(
	ctx context.Context,
	email, passwordHash, name string,
) (*auth.UserInfo, error) {
	if !s.configured {
		return nil, core.NotConfiguredError()
	}

	user := &User{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(email),
		PasswordHash: passwordHash,
		Name:         name,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
	}
}

var _ auth.UserProvider = (*Service)(nil)
