package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/user"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const userContextKey contextKey = "user"

// ErrTokensUnsupported is returned by strategies that do not issue tokens.
var ErrTokensUnsupported = errors.New("strategy does not issue tokens")

// Strategy authenticates users and, optionally, issues and reads tokens.
type Strategy interface {
	Login(ctx context.Context, email, password string) (*user.User, error)
	GetCurrentUserID(ctx context.Context) (uuid.UUID, error)
	GenerateToken(ctx context.Context, u *user.User) (string, error)
}

type Service struct {
	strategy Strategy
	logger   *slog.Logger
}

func New(
	strategy Strategy,
	logger *slog.Logger,
) *Service {
	return &Service{strategy: strategy, logger: logger}
}

// NewWithJWT is used by the HTTP API.
func NewWithJWT(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *Service {
	return New(NewJWTStrategy(uow, cfg, logger), logger)
}

// NewWithBasic checks credentials only; the CLI uses it before writes.
func NewWithBasic(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return New(NewBasicStrategy(uow, logger), logger)
}

func (s *Service) GetCurrentUserID(
	token *jwt.Token,
) (userID uuid.UUID, err error) {
	log := s.logger.With("context", "GetCurrentUserID")
	userID, err = s.strategy.GetCurrentUserID(
		context.WithValue(context.Background(), userContextKey, token),
	)
	if err != nil {
		log.Error("GetCurrentUserID failed", "error", err)
		return
	}
	log.Debug("GetCurrentUserID successful", "userID", userID)
	return
}

func (s *Service) Login(
	ctx context.Context,
	email, password string,
) (u *user.User, err error) {
	log := s.logger.With("context", "Login", "email", email)
	log.Debug("Login called")
	u, err = s.strategy.Login(ctx, email, password)
	if err != nil {
		log.Error("Login failed", "error", err)
		return nil, err
	}
	log.Info("Login successful", "userID", u.ID)
	return
}

func (s *Service) GenerateToken(
	ctx context.Context,
	u *user.User,
) (string, error) {
	log := s.logger.With("userID", u.ID)
	token, err := s.strategy.GenerateToken(ctx, u)
	if err != nil {
		log.Error("GenerateToken failed", "error", err)
		return "", err
	}
	log.Debug("GenerateToken successful")
	return token, nil
}

// dummyHash is compared against when the email is unknown so both failure
// paths cost one bcrypt comparison.
var dummyHash = sync.OnceValue(func() string {
	h, _ := utils.HashPassword("ledger-dummy-password")
	return h
})

// verifyCredentials resolves the user by email and checks the password.
// Unknown email and wrong password both yield user.ErrUserUnauthorized.
func verifyCredentials(
	ctx context.Context,
	uow repository.UnitOfWork,
	email, password string,
) (u *user.User, err error) {
	err = uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return fmt.Errorf("failed to get user repository: %w", err)
		}
		u, err = repo.GetByEmail(ctx, email)
		if errors.Is(err, user.ErrUserNotFound) {
			_ = utils.CheckPasswordHash(password, dummyHash())
			return user.ErrUserUnauthorized
		}
		if err != nil {
			return err
		}
		if !utils.CheckPasswordHash(password, u.Password) {
			return user.ErrUserUnauthorized
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// JWTStrategy implements Strategy with HS256 tokens carrying the user id.
type JWTStrategy struct {
	uow    repository.UnitOfWork
	cfg    *config.Jwt
	logger *slog.Logger
}

func NewJWTStrategy(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *JWTStrategy {
	return &JWTStrategy{uow: uow, cfg: cfg, logger: logger}
}

func (s *JWTStrategy) GenerateToken(
	ctx context.Context,
	u *user.User,
) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["name"] = u.Name
	claims["email"] = u.Email
	claims["user_id"] = u.ID.String()
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()
	return token.SignedString([]byte(s.cfg.Secret))
}

func (s *JWTStrategy) Login(
	ctx context.Context,
	email, password string,
) (*user.User, error) {
	return verifyCredentials(ctx, s.uow, email, password)
}

func (s *JWTStrategy) GetCurrentUserID(
	ctx context.Context,
) (uuid.UUID, error) {
	token, ok := ctx.Value(userContextKey).(*jwt.Token)
	if !ok || token == nil {
		return uuid.Nil, user.ErrUserUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, user.ErrUserUnauthorized
	}
	userIDRaw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, user.ErrUserUnauthorized
	}
	userID, err := uuid.Parse(userIDRaw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", user.ErrUserUnauthorized, err)
	}
	return userID, nil
}

// BasicStrategy implements Strategy for the CLI: password check, no tokens.
type BasicStrategy struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func NewBasicStrategy(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *BasicStrategy {
	return &BasicStrategy{uow: uow, logger: logger}
}

func (s *BasicStrategy) Login(
	ctx context.Context,
	email, password string,
) (*user.User, error) {
	return verifyCredentials(ctx, s.uow, email, password)
}

func (s *BasicStrategy) GetCurrentUserID(ctx context.Context) (uuid.UUID, error) {
	return uuid.Nil, ErrTokensUnsupported
}

func (s *BasicStrategy) GenerateToken(ctx context.Context, u *user.User) (string, error) {
	return "", ErrTokensUnsupported
}
