package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fyyur/internal/lib/logger/handlers/slogdiscard"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key string, expires time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(method, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(expires),
	})

	signed, err := token.SignedString([]byte(key))
	require.NoError(t, err)

	return signed
}

func TestBearerGuard(t *testing.T) {
	t.Parallel()

	handler := New(slogdiscard.NewDiscardLogger(), secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	later := time.Now().Add(time.Hour)

	testCases := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{
			name:           "Valid token",
			header:         "Bearer " + sign(t, jwt.SigningMethodHS256, secret, later),
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Missing header",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Wrong scheme",
			header:         "Basic YWRtaW46YWRtaW4=",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Wrong secret",
			header:         "Bearer " + sign(t, jwt.SigningMethodHS256, "other", later),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Expired",
			header:         "Bearer " + sign(t, jwt.SigningMethodHS256, secret, time.Now().Add(-time.Hour)),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Unexpected algorithm",
			header:         "Bearer " + sign(t, jwt.SigningMethodHS512, secret, later),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/venues/create", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"status":"Error","error":"unauthorized"}`, rr.Body.String())
			}
		})
	}
}
