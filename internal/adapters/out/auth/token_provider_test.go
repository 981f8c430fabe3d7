package auth_test

import (
	"testing"
	"time"

	"shipments/internal/adapters/out/auth"
	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTTokenProvider_RequiresSecretAndTTL(t *testing.T) {
	_, err := auth.NewJWTTokenProvider("", time.Hour)
	require.Error(t, err)

	_, err = auth.NewJWTTokenProvider("test-secret", 0)
	require.Error(t, err)

	_, err = auth.NewJWTTokenProvider("test-secret", time.Hour)
	require.NoError(t, err)
}

func TestJWTTokenProvider_IssueAndVerify_RoundTripsClaims(t *testing.T) {
	provider, err := auth.NewJWTTokenProvider("test-secret", time.Hour)
	require.NoError(t, err)

	claims := ports.Claims{UserID: kernel.NewUUID(), IsAdmin: true}
	token, err := provider.Issue(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	verified, err := provider.Verify(token)
	require.NoError(t, err)
	assert.True(t, verified.UserID.IsEqual(claims.UserID))
	assert.True(t, verified.IsAdmin)
}

func TestJWTTokenProvider_Issue_RejectsUnconstructedUserID(t *testing.T) {
	provider, err := auth.NewJWTTokenProvider("test-secret", time.Hour)
	require.NoError(t, err)

	_, err = provider.Issue(ports.Claims{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestJWTTokenProvider_Verify_RejectsGarbage(t *testing.T) {
	provider, err := auth.NewJWTTokenProvider("test-secret", time.Hour)
	require.NoError(t, err)

	_, err = provider.Verify("not-a-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAccessDenied)
}

func TestJWTTokenProvider_Verify_RejectsWrongSecret(t *testing.T) {
	issuer, err := auth.NewJWTTokenProvider("test-secret", time.Hour)
	require.NoError(t, err)
	verifier, err := auth.NewJWTTokenProvider("other-secret", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue(ports.Claims{UserID: kernel.NewUUID()})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAccessDenied)
}

func TestJWTTokenProvider_Verify_RejectsExpiredToken(t *testing.T) {
	provider, err := auth.NewJWTTokenProvider("test-secret", time.Nanosecond)
	require.NoError(t, err)

	token, err := provider.Issue(ports.Claims{UserID: kernel.NewUUID()})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = provider.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAccessDenied)
}
