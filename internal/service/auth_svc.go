package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/IbrahimAwiby/youtube-clone/internal/middleware"
	"github.com/IbrahimAwiby/youtube-clone/internal/model"
	"github.com/IbrahimAwiby/youtube-clone/pkg/hash"
)

// ErrInvalidCredentials covers both unknown emails and wrong passwords so
// the response does not reveal which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserAccounts is the account persistence the auth service needs. The
// concrete implementation is *repository.UserRepo.
type UserAccounts interface {
	CreateUser(ctx context.Context, email, displayName, passwordHash string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
}

// AuthService owns sign-up, sign-in, and session lifecycle. Session tokens
// are random uuids handed to the client in an HttpOnly cookie; the store only
// ever sees their SHA-256 digest.
type AuthService struct {
	users      UserAccounts
	store      sessionStore
	sessionTTL time.Duration
}

// NewAuthService builds the service. Sessions live in Redis when available
// and fall back to process memory otherwise.
func NewAuthService(users UserAccounts, cache *CacheService, sessionTTL time.Duration) *AuthService {
	var store sessionStore
	if cache != nil && cache.Client() != nil {
		store = newRedisSessionStore(cache.Client())
	} else {
		middleware.Logger.Info().Msg("sessions: redis unavailable, using in-memory store")
		store = newMemorySessionStore()
	}
	return &AuthService{users: users, store: store, sessionTTL: sessionTTL}
}

// SessionTTL is the lifetime new sessions are issued with.
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}

// SignUp creates an account and opens a session for it. Returns the session
// and the raw token for the cookie.
func (s *AuthService) SignUp(ctx context.Context, email, displayName, password string) (*model.Session, string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, email, displayName, string(hashed))
	if err != nil {
		return nil, "", err
	}
	return s.openSession(ctx, user)
}

// SignIn verifies credentials and opens a session.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*model.Session, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	return s.openSession(ctx, user)
}

// SignOut invalidates the session behind a token. Unknown tokens are a no-op.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.store.Del(ctx, hash.SessionDigest(token))
}

// SessionFromToken resolves a cookie token to its session, or nil when the
// token is unknown or expired. Implements middleware.SessionReader.
func (s *AuthService) SessionFromToken(ctx context.Context, token string) (*model.Session, error) {
	if token == "" {
		return nil, nil
	}
	return s.store.Get(ctx, hash.SessionDigest(token))
}

func (s *AuthService) openSession(ctx context.Context, user *model.User) (*model.Session, string, error) {
	token := uuid.NewString()
	sess := model.Session{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.Put(ctx, hash.SessionDigest(token), sess, s.sessionTTL); err != nil {
		return nil, "", fmt.Errorf("store session: %w", err)
	}
	return &sess, token, nil
}
