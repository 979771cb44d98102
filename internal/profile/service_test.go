// AngelaMos | 2026
// service_test.go

package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insureai/portal-api/internal/core"
)

type fakeRepo struct {
	users   map[string]*User
	getErr  error
	seedErr error
	seeded  []string
	updated []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[string]*User{}}
}

func (f *fakeRepo) Create(_ context.Context, user *User) error {
	if _, exists := f.users[user.ID]; exists {
		return core.ErrDuplicateKey
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	user, ok := f.users[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeRepo) UpdateProfile(_ context.Context, user *User) error {
	f.updated = append(f.updated, user.ID)
	f.users[user.ID] = user
	return nil
}

func (f *fakeRepo) SeedDefaults(_ context.Context, user *User) error {
	f.seeded = append(f.seeded, user.ID)
	if f.seedErr != nil {
		return f.seedErr
	}
	f.users[user.ID] = user
	return nil
}

func TestGetProfile(t *testing.T) {
	t.Run("fresh account is seeded with defaults", func(t *testing.T) {
		repo := newFakeRepo()
		repo.users["user-1"] = &User{
			ID:    "user-1",
			Email: "amy@example.com",
			Name:  "Amy",
		}
		svc := NewService(repo, true)

		user, err := svc.GetProfile(context.Background(), "user-1")
		require.NoError(t, err)

		assert.Equal(t, 35, user.Age)
		assert.Equal(t, "New York, NY", user.Location)
		assert.Equal(t, 2, user.FamilySize)
		assert.Equal(t, "Software Engineer", user.Occupation)
		assert.NotEmpty(t, user.Avatar)
		assert.Equal(t, []string{"user-1"}, repo.seeded)
	})

	t.Run("seeded account is returned as stored", func(t *testing.T) {
		repo := newFakeRepo()
		repo.users["user-1"] = &User{
			ID:         "user-1",
			Name:       "Amy",
			Age:        42,
			Location:   "Austin, TX",
			FamilySize: 4,
			Occupation: "Nurse",
		}
		svc := NewService(repo, true)

		user, err := svc.GetProfile(context.Background(), "user-1")
		require.NoError(t, err)

		assert.Equal(t, 42, user.Age)
		assert.Equal(t, "Austin, TX", user.Location)
		assert.Empty(t, repo.seeded)
	})

	t.Run("store failure degrades to a default profile", func(t *testing.T) {
		repo := newFakeRepo()
		repo.getErr = errors.New("connection refused")
		svc := NewService(repo, true)

		user, err := svc.GetProfile(context.Background(), "user-1")
		require.NoError(t, err)

		assert.Equal(t, "user-1", user.ID)
		assert.Equal(t, "Member", user.Name)
		assert.Equal(t, 35, user.Age)
	})

	t.Run("seed failure does not fail the read", func(t *testing.T) {
		repo := newFakeRepo()
		repo.users["user-1"] = &User{ID: "user-1", Name: "Amy"}
		repo.seedErr = errors.New("read-only transaction")
		svc := NewService(repo, true)

		user, err := svc.GetProfile(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, 35, user.Age)
	})
}

func TestUpdateProfile(t *testing.T) {
	req := UpdateProfileRequest{
		Name:       "Amy Lee",
		Email:      "Amy@Example.com",
		Age:        40,
		Location:   "Denver, CO",
		FamilySize: 3,
		Occupation: "Architect",
	}

	t.Run("updates and lowercases the email", func(t *testing.T) {
		repo := newFakeRepo()
		repo.users["user-1"] = &User{
			ID:     "user-1",
			Name:   "Amy",
			Age:    35,
			Avatar: "https://example.com/a.png",
		}
		svc := NewService(repo, true)

		user, err := svc.UpdateProfile(context.Background(), "user-1", req)
		require.NoError(t, err)

		assert.Equal(t, "Amy Lee", user.Name)
		assert.Equal(t, "amy@example.com", user.Email)
		assert.Equal(t, 40, user.Age)
		assert.Equal(t, "https://example.com/a.png", user.Avatar,
			"empty avatar in the request keeps the stored one")
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, true)

		_, err := svc.UpdateProfile(context.Background(), "ghost", req)
		assert.ErrorIs(t, err, core.ErrNotFound)
	})

	t.Run("unconfigured store fails fast", func(t *testing.T) {
		repo := newFakeRepo()
		repo.users["user-1"] = &User{ID: "user-1", Name: "Amy"}
		svc := NewService(repo, false)

		_, err := svc.UpdateProfile(context.Background(), "user-1", req)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrNotConfigured)
		assert.Empty(t, repo.updated)
	})
}

func TestUserProvider(t *testing.T) {
	t.Run("create lowercases the email", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, true)

		info, err := svc.Create(
			context.Background(),
			"Amy@Example.com",
			"hash",
			"Amy",
		)
		require.NoError(t, err)

		assert.Equal(t, "amy@example.com", info.Email)
		assert.NotEmpty(t, info.ID)
	})

	t.Run("create fails fast without a configured store", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, false)

		_, err := svc.Create(
			context.Background(),
			"amy@example.com",
			"hash",
			"Amy",
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrNotConfigured)
		assert.Empty(t, repo.users)
	})

	t.Run("lookup round-trips through UserInfo", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, true)

		created, err := svc.Create(
			context.Background(),
			"amy@example.com",
			"hash",
			"Amy",
		)
		require.NoError(t, err)

		byEmail, err := svc.GetByEmail(context.Background(), "AMY@example.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, byEmail.ID)
		assert.Equal(t, "hash", byEmail.PasswordHash)
	})
}
