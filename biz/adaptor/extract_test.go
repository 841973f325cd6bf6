package adaptor

import (
	"testing"
	"time"

	"campus-lms/biz/infrastructure/consts"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestJwtTokenRoundTrip(t *testing.T) {
	token, exp, err := signJwtToken("user-1", consts.RoleStudent, testSecret, 3600)
	require.NoError(t, err)
	assert.Greater(t, exp, time.Now().Unix())

	meta, err := parseUserMeta(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", meta.GetUserId())
	assert.Equal(t, consts.RoleStudent, meta.GetRole())
}

func TestParseUserMetaRejects(t *testing.T) {
	t.Run("密钥不符", func(t *testing.T) {
		token, _, err := signJwtToken("user-1", consts.RoleStudent, testSecret, 3600)
		require.NoError(t, err)
		_, err = parseUserMeta(token, "other-secret")
		assert.Error(t, err)
	})

	t.Run("令牌过期", func(t *testing.T) {
		token, _, err := signJwtToken("user-1", consts.RoleStudent, testSecret, -60)
		require.NoError(t, err)
		_, err = parseUserMeta(token, testSecret)
		assert.Error(t, err)
	})

	t.Run("非HMAC签名", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"userId": "user-1"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = parseUserMeta(token, testSecret)
		assert.Error(t, err)
	})

	t.Run("畸形令牌", func(t *testing.T) {
		_, err := parseUserMeta("not-a-token", testSecret)
		assert.Error(t, err)
	})
}
