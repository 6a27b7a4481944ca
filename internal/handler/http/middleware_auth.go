package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/logger"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/service"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/utils"
)

// tokenQueryParam is the query parameter the notebook host accepts the
// server token in.
const tokenQueryParam = "token"

// auth is an HTTP middleware that enforces authentication.
//
// The credential is taken from the "Authorization" header ("token <t>" or
// "Bearer <t>") or, when the header is absent, from the token query
// parameter. It is checked via [service.AuthService.Authenticate]; on success
// the authenticated subject is stored in the request context under
// [utils.SubjectCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - No credential is present ([ErrNoCredentials]).
//   - The header value cannot be parsed ([ErrInvalidAuthorizationHeader]).
//   - The token has expired ([service.ErrTokenIsExpired]).
//   - The credential is otherwise invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		scheme, credential, err := credentialFromRequest(r)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), statusFromError(err))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.Authenticate(ctx, scheme, credential)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
				http.Error(w, service.ErrTokenIsExpired.Error(), http.StatusUnauthorized)
				return
			default:
				log.Err(err).Str("scheme", scheme).Msg("authentication failed")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
		}

		ctx = context.WithValue(ctx, utils.SubjectCtxKey, token.Subject)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// credentialFromRequest extracts the authorization scheme and credential.
// The header wins over the query parameter; a query token always uses the
// "token" scheme.
func credentialFromRequest(r *http.Request) (string, string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		scheme, credential, err := utils.ParseAuthorizationHeader(authHeader)
		if err != nil {
			return "", "", ErrInvalidAuthorizationHeader
		}
		return scheme, credential, nil
	}

	if token := r.URL.Query().Get(tokenQueryParam); token != "" {
		return service.SchemeToken, token, nil
	}

	return "", "", ErrNoCredentials
}
