package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthLoginSuccess(t *testing.T) {
	cfg := newTestConfig(t)
	jwtService := NewJWTService(cfg)
	svc, err := NewAuthService(cfg, jwtService)
	require.NoError(t, err)

	token, err := svc.Login("admin123")
	require.NoError(t, err)

	// 签发的令牌必须可被校验且携带admin角色
	claims, err := jwtService.ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestAuthLoginWrongPassword(t *testing.T) {
	cfg := newTestConfig(t)
	svc, err := NewAuthService(cfg, NewJWTService(cfg))
	require.NoError(t, err)

	for _, password := range []string{"salah", "", "ADMIN123"} {
		_, err := svc.Login(password)
		assert.ErrorIs(t, err, ErrPasswordIncorrect, "password %q", password)
	}
}
