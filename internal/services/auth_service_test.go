package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()

	user, err := svc.Register(db, &dto.RegisterRequest{
		Email:       "hr@acme.test",
		Password:    "s3cret!",
		CompanyName: "Acme",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "hr@acme.test", user.Email)
	assert.Equal(t, "Acme", user.CompanyName)
	assert.NotEqual(t, "s3cret!", user.PasswordHash)
	assert.False(t, user.CreatedAt.IsZero())

	loggedIn, err := svc.Login(db, &dto.LoginRequest{
		Email:    "hr@acme.test",
		Password: "s3cret!",
	})
	require.NoError(t, err)
	require.NotNil(t, loggedIn)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestRegisterWeakPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()

	user, err := svc.Register(db, &dto.RegisterRequest{
		Email:       "hr@acme.test",
		Password:    "12345",
		CompanyName: "Acme",
	})
	require.Error(t, err)
	assert.Nil(t, user)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeWeakPassword, appErr.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()

	req := &dto.RegisterRequest{
		Email:       "hr@acme.test",
		Password:    "s3cret!",
		CompanyName: "Acme",
	}
	_, err := svc.Register(db, req)
	require.NoError(t, err)

	dup, err := svc.Register(db, &dto.RegisterRequest{
		Email:       "hr@acme.test",
		Password:    "different",
		CompanyName: "Other Co",
	})
	require.Error(t, err)
	assert.Nil(t, dup)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeEmailAlreadyExists, appErr.Code)
	assert.Equal(t, 409, appErr.HTTPCode)
}

func TestLoginFailuresReturnNil(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()

	_, err := svc.Register(db, &dto.RegisterRequest{
		Email:       "hr@acme.test",
		Password:    "s3cret!",
		CompanyName: "Acme",
	})
	require.NoError(t, err)

	t.Run("unknown email", func(t *testing.T) {
		user, err := svc.Login(db, &dto.LoginRequest{Email: "nobody@acme.test", Password: "s3cret!"})
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("wrong password", func(t *testing.T) {
		user, err := svc.Login(db, &dto.LoginRequest{Email: "hr@acme.test", Password: "wrong"})
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("email is case sensitive", func(t *testing.T) {
		user, err := svc.Login(db, &dto.LoginRequest{Email: "HR@acme.test", Password: "s3cret!"})
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}
