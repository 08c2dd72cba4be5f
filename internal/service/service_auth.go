package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-tube/internal/config"
	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/internal/store"
	"github.com/MKhiriev/go-tube/internal/utils"
	"github.com/MKhiriev/go-tube/models"
)

// authService verifies session tokens minted by the identity provider and
// maps their subject to a local user.
//
// Tokens are verified against the provider's JWKS when a JWKS URL is
// configured, and against the shared HMAC key otherwise (local setups and
// tests).
type authService struct {
	userRepository store.UserRepository

	// keyFunc resolves the verification key of a token.
	keyFunc jwt.Keyfunc

	// tokenIssuer is matched against the "iss" claim when not empty.
	tokenIssuer string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. With cfg.JWKSURL set the key set
// is fetched once here and refreshed in the background when an unknown key id
// shows up.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) (AuthService, error) {
	a := &authService{
		userRepository: userRepository,
		tokenIssuer:    cfg.TokenIssuer,
		logger:         logger,
	}

	if cfg.JWKSURL == "" {
		a.keyFunc = hmacKeyFunc(cfg.TokenSignKey)
		return a, nil
	}

	jwks, err := keyfunc.Get(cfg.JWKSURL, keyfunc.Options{
		RefreshUnknownKID: true,
		RefreshRateLimit:  time.Minute,
		RefreshErrorHandler: func(err error) {
			logger.Err(err).Str("jwks", cfg.JWKSURL).Msg("refreshing JWKS failed")
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching JWKS from %s: %w", cfg.JWKSURL, err)
	}
	a.keyFunc = jwks.Keyfunc

	return a, nil
}

func hmacKeyFunc(signKey string) jwt.Keyfunc {
	return func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return []byte(signKey), nil
	}
}

// ParseToken validates a raw session token. Any failure is reported as
// ErrUnauthenticated so callers never see low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ParseToken(tokenString, a.keyFunc, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("session token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	return token, nil
}

// Authenticate parses the token and loads the user it belongs to. A valid
// token of a user that was never synced is still unauthenticated.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindByClerkID(ctx, token.ClerkID)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("clerk_id", token.ClerkID).Msg("token subject has no local user")
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if err != nil {
		log.Err(err).Str("clerk_id", token.ClerkID).Msg("user lookup by clerk id failed")
		return models.User{}, fmt.Errorf("user lookup by clerk id failed: %w", err)
	}

	return user, nil
}
