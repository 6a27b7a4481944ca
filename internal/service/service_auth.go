package service

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/config"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/logger"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/utils"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/models"
	"github.com/golang-jwt/jwt/v5"
)

// Authorization schemes understood by the auth service.
const (
	SchemeToken  = "token"
	SchemeBearer = "bearer"
)

// staticTokenSubject is the subject reported for requests carrying the
// static server token.
const staticTokenSubject = "server-token"

// authService is the concrete implementation of AuthService.
// It accepts either the static server token or an HS256 JWT.
type authService struct {
	// token is the static server token. Empty disables static token auth.
	token string

	// tokenSignKey is the HMAC secret used to verify JWT tokens.
	// Empty disables bearer JWT auth.
	tokenSignKey string

	// tokenIssuer is the "iss" claim every accepted JWT must carry.
	tokenIssuer string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService from the credentials in cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		token:        cfg.Token,
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}

// Authenticate validates credential for the given scheme.
//
// A bearer credential is first checked as a JWT when a sign key is configured;
// an expired JWT yields ErrTokenIsExpired. Both schemes then fall back to the
// static server token, so "Bearer <server token>" is accepted as well.
//
// Returns the authenticated token model or ErrInvalidCredentials.
func (a *authService) Authenticate(ctx context.Context, scheme, credential string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if credential == "" {
		return models.Token{}, ErrInvalidCredentials
	}

	if scheme != SchemeToken && scheme != SchemeBearer {
		log.Debug().Str("scheme", scheme).Msg("unsupported authorization scheme")
		return models.Token{}, ErrInvalidCredentials
	}

	if scheme == SchemeBearer && a.tokenSignKey != "" {
		token, err := utils.ValidateAndParseJWTToken(credential, a.tokenSignKey, a.tokenIssuer)
		if err == nil {
			return token, nil
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		log.Debug().Err(err).Msg("bearer credential is not a valid JWT")
	}

	if a.token != "" && subtle.ConstantTimeCompare([]byte(credential), []byte(a.token)) == 1 {
		return models.Token{RegisteredClaims: jwt.RegisteredClaims{Subject: staticTokenSubject}}, nil
	}

	return models.Token{}, ErrInvalidCredentials
}
