package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookinn/infras/jwt"
	"bookinn/internal/domains/auth/model/dto"
	"bookinn/shared/constant"
	"bookinn/shared/timezone"
)

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestUpdateLastLoginRequest(t *testing.T) {
	now := timezone.Now()

	req := dto.UpdateLastLoginRequest{
		LastLogin: now,
	}

	assert.Equal(t, now, req.LastLogin)
}

func TestRegisterRequest_ToUserModel(t *testing.T) {
	req := dto.RegisterRequest{
		Username: "newuser",
		Password: "plaintext",
	}

	user := req.ToUserModel("hashed-password")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "newuser", user.Username)
	assert.Equal(t, "hashed-password", user.Password)
	assert.Equal(t, constant.RoleUser, user.Role)
	assert.True(t, user.Active)
	assert.Equal(t, "newuser", user.CreatedBy)
}
