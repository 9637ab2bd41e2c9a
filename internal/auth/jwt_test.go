package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiyatma/coin-tracker-be/internal/models"
)

const testSecret = "test-secret-key"

func testUser() models.User {
	return models.User{ID: "user-123", Username: "alice"}
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	ts := NewTokenService(testSecret, 30*time.Minute)

	token, err := ts.Issue(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ts.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice", claims.Subject)
}

func TestTokenService_IssueIsNotDeterministic(t *testing.T) {
	ts := NewTokenService(testSecret, 30*time.Minute)

	first, err := ts.Issue(testUser())
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond) // shift iat/exp by a second

	second, err := ts.Issue(testUser())
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	for _, token := range []string{first, second} {
		_, err := ts.Validate(token)
		assert.NoError(t, err)
	}
}

func TestTokenService_Validate_Failures(t *testing.T) {
	ts := NewTokenService(testSecret, 30*time.Minute)

	expired, err := NewTokenService(testSecret, -1*time.Minute).Issue(testUser())
	require.NoError(t, err)

	otherKey, err := NewTokenService("some-other-key", 30*time.Minute).Issue(testUser())
	require.NoError(t, err)

	valid, err := ts.Issue(testUser())
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "empty", token: ""},
		{name: "expired with valid signature", token: expired},
		{name: "signed with different key", token: otherKey},
		{name: "tampered payload", token: valid[:len(valid)-4] + "xxxx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.Validate(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestMiddleware(t *testing.T) {
	ts := NewTokenService(testSecret, 30*time.Minute)

	var gotClaims *Claims
	handler := ts.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	token, err := ts.Issue(testUser())
	require.NoError(t, err)

	expired, err := NewTokenService(testSecret, -1*time.Minute).Issue(testUser())
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		cookie     string
		wantStatus int
	}{
		{name: "valid bearer token", authHeader: "Bearer " + token, wantStatus: http.StatusOK},
		{name: "valid token via cookie", cookie: token, wantStatus: http.StatusOK},
		{name: "missing token", wantStatus: http.StatusUnauthorized},
		{name: "malformed header", authHeader: token, wantStatus: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer garbage", wantStatus: http.StatusUnauthorized},
		{name: "expired token", authHeader: "Bearer " + expired, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotClaims = nil
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "token", Value: tt.cookie})
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				require.NotNil(t, gotClaims)
				assert.Equal(t, "user-123", gotClaims.UserID)
				assert.Equal(t, "alice", gotClaims.Username)
			} else {
				assert.Nil(t, gotClaims, "handler must not run on auth failure")
			}
		})
	}
}
