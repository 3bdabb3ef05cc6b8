package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	userID int
	err    error
}

func (f *fakeVerifier) Verify(token string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.userID, nil
}

func TestRequireVerification(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		authHeader string
		verifier   *fakeVerifier
		wantStatus int
		wantUserID int
	}{
		{
			name:       "valid token",
			authHeader: "Bearer good-token",
			verifier:   &fakeVerifier{userID: 4},
			wantStatus: http.StatusOK,
			wantUserID: 4,
		},
		{
			name:       "missing header",
			authHeader: "",
			verifier:   &fakeVerifier{userID: 4},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic abc",
			verifier:   &fakeVerifier{userID: 4},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty token",
			authHeader: "Bearer   ",
			verifier:   &fakeVerifier{userID: 4},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "rejected token",
			authHeader: "Bearer bad-token",
			verifier:   &fakeVerifier{err: errors.New("expired")},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int
			var called bool
			next := func(w http.ResponseWriter, r *http.Request) {
				called = true
				gotUserID, _ = VerifiedUserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}

			handler := RequireVerification(tt.verifier, logger)(next)
			req := httptest.NewRequest(http.MethodPost, "/store/reservations", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()
			handler(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				require.True(t, called)
				assert.Equal(t, tt.wantUserID, gotUserID)
			} else {
				assert.False(t, called, "next must not run without verification")
			}
		})
	}
}
