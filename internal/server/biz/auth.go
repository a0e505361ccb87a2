package biz

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cast"
	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"

	"github.com/openmart/storegate/internal/authz"
	"github.com/openmart/storegate/internal/store"
)

// AuthConfig configures token signing.
type AuthConfig struct {
	SecretKey string        `conf:"secret_key" yaml:"secret_key" json:"secret_key"`
	TokenTTL  time.Duration `conf:"token_ttl"  yaml:"token_ttl"  json:"token_ttl"`
}

type AuthServiceParams struct {
	fx.In

	Store  store.Store
	Config AuthConfig
}

func NewAuthService(params AuthServiceParams) *AuthService {
	cfg := params.Config
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 7 * 24 * time.Hour
	}

	return &AuthService{
		AbstractService: &AbstractService{store: params.Store},
		config:          cfg,
	}
}

// AuthService authenticates credentials and mints/validates the JWT the
// middleware resolves identities from.
type AuthService struct {
	*AbstractService

	config AuthConfig
}

// HashPassword hashes a password using bcrypt.
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return hex.EncodeToString(hashedPassword), nil
}

// VerifyPassword verifies a password against a hash.
func VerifyPassword(hashedPassword, password string) error {
	decodedHashedPassword, err := hex.DecodeString(hashedPassword)
	if err != nil {
		return fmt.Errorf("failed to decode hashed password: %w", err)
	}

	return bcrypt.CompareHashAndPassword(decodedHashedPassword, []byte(password))
}

// AuthenticateUser authenticates a user with email and password.
func (s *AuthService) AuthenticateUser(ctx context.Context, email, password string) (*store.User, error) {
	user, err := s.store.Users().FindByEmail(ctx, email)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, fmt.Errorf("invalid email or password: %w", ErrInvalidPassword)
		}

		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.Blocked {
		return nil, fmt.Errorf("account is blocked: %w", ErrInvalidPassword)
	}

	if err := VerifyPassword(user.Password, password); err != nil {
		return nil, fmt.Errorf("invalid email or password: %w", ErrInvalidPassword)
	}

	return user, nil
}

// GenerateJWTToken generates a JWT token for a user.
func (s *AuthService) GenerateJWTToken(_ context.Context, user *store.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(s.config.TokenTTL).Unix(),
	})

	tokenString, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// AuthenticateJWTToken validates a token and resolves the acting identity.
// The role is loaded fresh from the store so a role change takes effect on
// the next request, not on token renewal.
func (s *AuthService) AuthenticateJWTToken(ctx context.Context, tokenString string) (authz.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(s.config.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return authz.Identity{}, ErrInvalidJWT
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return authz.Identity{}, ErrInvalidJWT
	}

	userID := cast.ToInt(claims["user_id"])
	if userID == 0 {
		return authz.Identity{}, ErrInvalidJWT
	}

	user, err := s.store.Users().FindByID(ctx, userID)
	if err != nil {
		if store.IsNotFound(err) {
			return authz.Identity{}, ErrInvalidJWT
		}

		return authz.Identity{}, fmt.Errorf("failed to load user: %w", err)
	}

	if user.Blocked {
		return authz.Identity{}, ErrInvalidJWT
	}

	return IdentityFromUser(user), nil
}
