package service

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/barbershop-service/internal/auth"
	"github.com/spec-kit/barbershop-service/internal/domain"
	"github.com/spec-kit/barbershop-service/internal/events"
	"github.com/spec-kit/barbershop-service/internal/observability"
	"github.com/spec-kit/barbershop-service/internal/repository"
)

// LoginGuard throttles repeated failed logins for the same login name.
type LoginGuard interface {
	Locked(ctx context.Context, login string) (bool, error)
	RecordFailure(ctx context.Context, login string) error
	Reset(ctx context.Context, login string) error
}

// AuthService coordinates registration, login and token checks.
type AuthService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	hasher     *auth.PasswordHasher
	guard      LoginGuard
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics

	dummyOnce     sync.Once
	dummyVerifier string
}

// AuthDependencies encapsulates the collaborators of the auth service.
// Guard, Dispatcher, Logger and Metrics are optional.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Tokens     *auth.TokenManager
	Hasher     *auth.PasswordHasher
	Guard      LoginGuard
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Metrics    *observability.Metrics
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:      deps.UserRepo,
		tokens:     deps.Tokens,
		hasher:     deps.Hasher,
		guard:      deps.Guard,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		metrics:    deps.Metrics,
	}
}

// AuthenticateUser checks a login/password pair against the credential store.
// An unknown login and a wrong password both yield domain.ErrInvalidCredentials.
func (s *AuthService) AuthenticateUser(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Spend the same bcrypt work as a real comparison.
			s.hasher.Verify(password, s.dummyHash())
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// Register creates a new staff account.
func (s *AuthService) Register(ctx context.Context, login, password, position string) (*domain.User, error) {
	if _, err := s.users.GetByLogin(ctx, login); err == nil {
		return nil, domain.ErrLoginTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Login:        login,
		PasswordHash: hash,
		Position:     position,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.ErrLoginTaken
		}
		return nil, err
	}

	publish(ctx, s.dispatcher, s.logger, events.EventUserRegistered, "user", user.ID, map[string]string{
		"login":    user.Login,
		"position": user.Position,
	})
	return user, nil
}

// Login authenticates the caller and issues an access token.
func (s *AuthService) Login(ctx context.Context, login, password string) (*domain.User, domain.IssuedToken, error) {
	if s.guard != nil {
		locked, err := s.guard.Locked(ctx, login)
		if err != nil {
			s.logger.Warn("login guard unavailable", zap.Error(err))
		} else if locked {
			s.metrics.RecordAuth(observability.AuthLoginLocked)
			return nil, domain.IssuedToken{}, domain.ErrTooManyAttempts
		}
	}

	user, err := s.AuthenticateUser(ctx, login, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			s.metrics.RecordAuth(observability.AuthLoginFailed)
			if s.guard != nil {
				if gErr := s.guard.RecordFailure(ctx, login); gErr != nil {
					s.logger.Warn("record login failure", zap.Error(gErr))
				}
			}
		}
		return nil, domain.IssuedToken{}, err
	}

	token, err := s.IssueToken(user.Identity())
	if err != nil {
		return nil, domain.IssuedToken{}, err
	}

	if s.guard != nil {
		if err := s.guard.Reset(ctx, login); err != nil {
			s.logger.Warn("reset login failures", zap.Error(err))
		}
	}
	s.metrics.RecordAuth(observability.AuthLoginSucceeded)
	s.logger.Info("user logged in", zap.String("login", user.Login))
	return user, token, nil
}

// IssueToken signs a token for identity.
func (s *AuthService) IssueToken(identity domain.Identity) (domain.IssuedToken, error) {
	return s.tokens.Issue(identity)
}

// VerifyToken returns the login asserted by token or one of
// domain.ErrInvalidToken and domain.ErrExpiredToken.
func (s *AuthService) VerifyToken(token string) (string, error) {
	login, err := s.tokens.Verify(token)
	switch {
	case err == nil:
		s.metrics.RecordAuth(observability.AuthTokenAccepted)
	case errors.Is(err, domain.ErrExpiredToken):
		s.metrics.RecordAuth(observability.AuthTokenExpired)
	default:
		s.metrics.RecordAuth(observability.AuthTokenInvalid)
	}
	return login, err
}

// CurrentUser resolves the credential record behind a verified login.
// A login that no longer exists is reported as an invalid token.
func (s *AuthService) CurrentUser(ctx context.Context, login string) (*domain.User, error) {
	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}

// EnsureBootstrapUser creates the first account when it does not exist yet,
// since registering further accounts requires an authenticated caller.
func (s *AuthService) EnsureBootstrapUser(ctx context.Context, login, password, position string) (bool, error) {
	if login == "" {
		return false, nil
	}
	if _, err := s.Register(ctx, login, password, position); err != nil {
		if errors.Is(err, domain.ErrLoginTaken) {
			return false, nil
		}
		return false, err
	}
	s.logger.Info("bootstrap user created", zap.String("login", login))
	return true, nil
}

func (s *AuthService) dummyHash() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash("barbershop-dummy-password")
		if err != nil {
			s.logger.Warn("dummy hash", zap.Error(err))
			return
		}
		s.dummyVerifier = hash
	})
	return s.dummyVerifier
}
