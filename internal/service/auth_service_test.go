package service_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/translate-service/internal/auth"
	"github.com/spec-kit/translate-service/internal/domain"
	"github.com/spec-kit/translate-service/internal/repository"
	"github.com/spec-kit/translate-service/internal/service"
	apperrors "github.com/spec-kit/translate-service/pkg/util"
)

// fakeUserRepo is an in-memory UserRepository enforcing username uniqueness
// the way the database unique index does.
type fakeUserRepo struct {
	mu         sync.Mutex
	nextID     int64
	byID       map[int64]domain.User
	byUsername map[string]int64

	createErr error
	lookupErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:       make(map[int64]domain.User),
		byUsername: make(map[string]int64),
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if _, exists := r.byUsername[user.Username]; exists {
		return repository.ErrUsernameTaken
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.byID[user.ID] = *user
	r.byUsername[user.Username] = user.ID
	return nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	id, ok := r.byUsername[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	user := r.byID[id]
	return &user, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &user, nil
}

func newAuthService(t *testing.T, repo repository.UserRepository) *service.AuthService {
	t.Helper()
	tokens, err := auth.NewTokenManager("test-secret", "HS256", 30)
	require.NoError(t, err)
	return service.NewAuthService(repo, auth.NewHasher(), tokens, nil)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with assigned id and hashed password", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newAuthService(t, repo)

		user, err := svc.Register(ctx, "alice", "a@x", "alice1", "Secr3t!")
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.NotEqual(t, "Secr3t!", user.PasswordHash)
		assert.True(t, auth.NewHasher().Verify("Secr3t!", user.PasswordHash))
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("distinct usernames get distinct ids", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newAuthService(t, repo)

		first, err := svc.Register(ctx, "alice", "a@x", "alice1", "pw-one")
		require.NoError(t, err)
		second, err := svc.Register(ctx, "bob", "b@x", "bob1", "pw-two")
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("duplicate username is rejected without a second record", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newAuthService(t, repo)

		_, err := svc.Register(ctx, "alice", "a@x", "alice1", "Secr3t!")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "mallory", "m@x", "alice1", "other")
		require.Error(t, err)
		domainErr := apperrors.ToDomainError(err)
		assert.Equal(t, "USER_EXISTS", domainErr.Code)
		assert.Equal(t, http.StatusForbidden, domainErr.HTTPStatus)
		assert.Len(t, repo.byID, 1)
	})

	t.Run("constraint violation after a clean precheck is still a conflict", func(t *testing.T) {
		// Simulates two registrations racing: the existence check misses but
		// the insert hits the unique index.
		repo := newFakeUserRepo()
		svc := newAuthService(t, &racingRepo{fakeUserRepo: repo})

		_, err := svc.Register(ctx, "alice", "a@x", "alice1", "Secr3t!")
		require.Error(t, err)
		domainErr := apperrors.ToDomainError(err)
		assert.Equal(t, "USER_EXISTS", domainErr.Code)
		assert.Equal(t, http.StatusForbidden, domainErr.HTTPStatus)
	})

	t.Run("store failure surfaces as unavailable", func(t *testing.T) {
		repo := newFakeUserRepo()
		repo.lookupErr = errors.New("connection refused")
		svc := newAuthService(t, repo)

		_, err := svc.Register(ctx, "alice", "a@x", "alice1", "Secr3t!")
		require.Error(t, err)
		domainErr := apperrors.ToDomainError(err)
		assert.Equal(t, "STORE_UNAVAILABLE", domainErr.Code)
		assert.Equal(t, http.StatusServiceUnavailable, domainErr.HTTPStatus)
	})
}

// racingRepo reports no existing user on lookup but fails the insert with the
// uniqueness error, like a concurrent registration landing first.
type racingRepo struct {
	*fakeUserRepo
}

func (r *racingRepo) GetByUsername(context.Context, string) (*domain.User, error) {
	return nil, repository.ErrUserNotFound
}

func (r *racingRepo) Create(context.Context, *domain.User) error {
	return repository.ErrUsernameTaken
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*service.AuthService, *fakeUserRepo) {
		repo := newFakeUserRepo()
		svc := newAuthService(t, repo)
		_, err := svc.Register(ctx, "alice", "a@x", "alice1", "Secr3t!")
		require.NoError(t, err)
		return svc, repo
	}

	t.Run("valid credentials issue a token", func(t *testing.T) {
		svc, _ := setup(t)

		before := time.Now()
		result, err := svc.Login(ctx, "alice1", "Secr3t!")
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.WithinDuration(t, before.Add(30*time.Minute), result.ExpiresAt, 2*time.Second)
		assert.Equal(t, domain.Summary{ID: 1, Username: "alice1", Firstname: "alice", Lastname: "a@x"}, result.User)

		claims, err := svc.TokenManager().Parse(result.Token)
		require.NoError(t, err)
		assert.Equal(t, "alice1", claims.Subject)
		assert.Equal(t, int64(1), claims.UserID)
	})

	t.Run("unknown username and wrong password are indistinguishable", func(t *testing.T) {
		svc, _ := setup(t)

		_, errUnknown := svc.Login(ctx, "nobody", "Secr3t!")
		_, errWrongPw := svc.Login(ctx, "alice1", "wrong")
		require.Error(t, errUnknown)
		require.Error(t, errWrongPw)

		unknownErr := apperrors.ToDomainError(errUnknown)
		wrongPwErr := apperrors.ToDomainError(errWrongPw)
		assert.Equal(t, http.StatusUnauthorized, unknownErr.HTTPStatus)
		assert.Equal(t, http.StatusUnauthorized, wrongPwErr.HTTPStatus)
		assert.Equal(t, unknownErr.Message, wrongPwErr.Message)
		assert.Equal(t, "Invalid username or password", wrongPwErr.Message)
	})

	t.Run("store failure surfaces as unavailable", func(t *testing.T) {
		svc, repo := setup(t)
		repo.lookupErr = errors.New("connection reset")

		_, err := svc.Login(ctx, "alice1", "Secr3t!")
		require.Error(t, err)
		assert.Equal(t, "STORE_UNAVAILABLE", apperrors.ToDomainError(err).Code)
	})
}
