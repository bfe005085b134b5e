package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/translate-service/internal/auth"
	"github.com/spec-kit/translate-service/internal/domain"
	"github.com/spec-kit/translate-service/internal/events"
	"github.com/spec-kit/translate-service/internal/repository"
	apperrors "github.com/spec-kit/translate-service/pkg/util"
)

// invalidCredentials is the single message for every login failure so
// responses cannot be used to enumerate usernames.
const invalidCredentials = "Invalid username or password"

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	hasher     auth.Hasher
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(users repository.UserRepository, hasher auth.Hasher, tokens *auth.TokenManager, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		users:      users,
		hasher:     hasher,
		tokens:     tokens,
		dispatcher: dispatcher,
	}
}

// LoginResult is returned on successful authentication. The token travels as
// an HTTP-only cookie, never in the JSON body.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      domain.Summary
}

// Register creates a new account. The existence check is an optimization;
// the store's unique index is what actually guards against duplicate
// usernames under concurrency.
func (s *AuthService) Register(ctx context.Context, firstname, lastname, username, password string) (*domain.User, error) {
	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, apperrors.NewUserExists()
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, apperrors.NewStoreUnavailable(err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Firstname:    firstname,
		Lastname:     lastname,
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, apperrors.NewUserExists()
		}
		return nil, apperrors.NewStoreUnavailable(err)
	}

	s.publish(ctx, events.EventUserRegistered, events.UserRegisteredPayload{
		UserID:   user.ID,
		Username: user.Username,
	})
	return user, nil
}

// Login authenticates a user and issues an access token. Unknown username and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorized(invalidCredentials)
		}
		return nil, apperrors.NewStoreUnavailable(err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, apperrors.NewUnauthorized(invalidCredentials)
	}

	token, expiresAt, err := s.tokens.Issue(user.Username, user.ID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventUserLoggedIn, events.UserLoggedInPayload{
		UserID:    user.ID,
		Username:  user.Username,
		ExpiresAt: expiresAt,
	})

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user.Summary(),
	}, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
