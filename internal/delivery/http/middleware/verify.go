package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "mezcaltasting/internal/delivery/http/helpers"
	"mezcaltasting/internal/domain"
)

type contextKey string

const verifiedUserKey contextKey = "verifiedUserID"

// SetVerifiedUser returns a context with the verified user ID set. Used by
// the verification middleware.
func SetVerifiedUser(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, verifiedUserKey, userID)
}

// VerifiedUserFromContext returns the verified user ID from the context, if present.
func VerifiedUserFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(verifiedUserKey).(int)
	return id, ok
}

// RequireVerification returns a wrapper that checks the Bearer verification
// token and sets the verified user ID in the request context. The token only
// proves the holder passed the store email check; it is a UX gate in front
// of mutation endpoints, not an authentication boundary.
func RequireVerification(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, domain.ErrVerificationRequired.Error())
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			userID, err := verifier.Verify(token)
			if err != nil {
				logger.Debug("verification token rejected", "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired verification token")
				return
			}
			r = r.WithContext(SetVerifiedUser(r.Context(), userID))
			next(w, r)
		}
	}
}
