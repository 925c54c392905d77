package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/developer2iverto/Dresscollections-sub000/models"
)

func TestAdminJWT(t *testing.T) {
	svc, err := NewJWTService("test-secret")
	require.NoError(t, err)

	token, err := svc.GenerateAdminJWT("admin-1", "ops@example.com", models.RoleMarketingManager)
	require.NoError(t, err)

	claims, err := svc.VerifyAdminJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, models.RoleMarketingManager, claims.Role)
	assert.Equal(t, "dresscollections-cms", claims.Issuer)

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewJWTService("other-secret")
		require.NoError(t, err)
		_, err = other.VerifyAdminJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		svc.now = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }
		old, err := svc.GenerateAdminJWT("admin-1", "ops@example.com", models.RoleAdmin)
		require.NoError(t, err)
		_, err = svc.VerifyAdminJWT(old)
		assert.Error(t, err)
	})

	t.Run("missing claims", func(t *testing.T) {
		_, err := svc.GenerateAdminJWT("", "ops@example.com", models.RoleAdmin)
		assert.Error(t, err)
	})
}

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	_, err := NewJWTService("")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	auth := NewAuthService()

	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)
	assert.True(t, auth.VerifyPassword(hash, "correct horse"))
	assert.False(t, auth.VerifyPassword(hash, "wrong horse"))

	assert.False(t, auth.ValidatePassword("short"))
	assert.True(t, auth.ValidatePassword("long enough"))
}
