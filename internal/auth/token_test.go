package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sanketkadam3921/financial-dashboard/internal/auth"
)

const testSecret = "test-secret"

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := auth.NewTokenManager(testSecret, time.Hour)
	userID := uuid.New()

	token, err := tm.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenManager_Verify(t *testing.T) {
	tm := auth.NewTokenManager(testSecret, time.Hour)
	userID := uuid.New()

	sign := func(t *testing.T, claims jwt.MapClaims, secret string) string {
		t.Helper()

		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		return signed
	}

	type testCase struct {
		name  string
		token func(t *testing.T) string
	}

	tests := []testCase{
		{
			name:  "Garbage",
			token: func(t *testing.T) string { return "not.a.token" },
		},
		{
			name: "Expired",
			token: func(t *testing.T) string {
				expired := auth.NewTokenManager(testSecret, -time.Minute)

				token, err := expired.Issue(userID)
				require.NoError(t, err)

				return token
			},
		},
		{
			name: "WrongSecret",
			token: func(t *testing.T) string {
				return sign(t, jwt.MapClaims{
					"userId": userID.String(),
					"exp":    time.Now().Add(time.Hour).Unix(),
				}, "other-secret")
			},
		},
		{
			name: "MissingUserIDClaim",
			token: func(t *testing.T) string {
				return sign(t, jwt.MapClaims{
					"exp": time.Now().Add(time.Hour).Unix(),
				}, testSecret)
			},
		},
		{
			name: "NonUUIDUserID",
			token: func(t *testing.T) string {
				return sign(t, jwt.MapClaims{
					"userId": "42",
					"exp":    time.Now().Add(time.Hour).Unix(),
				}, testSecret)
			},
		},
		{
			name: "UnexpectedSigningMethod",
			token: func(t *testing.T) string {
				token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
					"userId": userID.String(),
					"exp":    time.Now().Add(time.Hour).Unix(),
				})

				signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)

				return signed
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tm.Verify(tt.token(t))

			assert.ErrorIs(t, err, auth.ErrInvalidToken)
			assert.Equal(t, uuid.Nil, got)
		})
	}
}
