package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/02loveslollipop/sgsb-barragens/services/api/models"
)

func TestSignAndParse(t *testing.T) {
	tokens := NewTokens("s3cret")
	name := "Ana"
	raw, err := tokens.Sign(models.UserIdentity{OpenID: "open-1", Name: &name}, time.Hour)
	require.NoError(t, err)

	claims, err := tokens.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "open-1", claims.Subject)
	assert.NotEmpty(t, claims.ID)

	id := claims.Identity()
	require.NotNil(t, id.Name)
	assert.Equal(t, "Ana", *id.Name)
	assert.Nil(t, id.Email)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	raw, err := NewTokens("one").Sign(models.UserIdentity{OpenID: "open-1"}, time.Hour)
	require.NoError(t, err)

	_, err = NewTokens("two").Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpired(t *testing.T) {
	tokens := NewTokens("s3cret")
	raw, err := tokens.Sign(models.UserIdentity{OpenID: "open-1"}, -time.Minute)
	require.NoError(t, err)

	_, err = tokens.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsMissingSubject(t *testing.T) {
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{Name: "x"}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	_, err = NewTokens("s3cret").Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := NewTokens("s3cret").Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func setupRevoker(t *testing.T) (*miniredis.Miniredis, *Revoker) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewRevoker(client)
}

func TestRevokeUntilExpiry(t *testing.T) {
	mr, revoker := setupRevoker(t)
	ctx := context.Background()

	revoked, err := revoker.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, revoker.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))
	revoked, err = revoker.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	mr.FastForward(2 * time.Hour)
	revoked, err = revoker.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevokeIgnoresExpiredTokens(t *testing.T) {
	mr, revoker := setupRevoker(t)

	require.NoError(t, revoker.Revoke(context.Background(), "jti-2", time.Now().Add(-time.Minute)))
	assert.False(t, mr.Exists(revokedPrefix+"jti-2"))
}
