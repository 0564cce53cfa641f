package services

import (
	"context"
	"testing"

	"streamify/db"
	"streamify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	setupTestDB(t)
	us := NewUserService(nil)

	user, token, err := us.Register(context.Background(), "ada@example.com", "secret123", "Ada Lovelace")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEmpty(t, token)
	assert.False(t, user.IsOnboarded)
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")

	loggedIn, newToken, err := us.Login(context.Background(), "ada@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, newToken)
	assert.NotEqual(t, token, newToken, "login rotates the session token")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setupTestDB(t)
	us := NewUserService(nil)

	_, _, err := us.Register(context.Background(), "dup@example.com", "secret123", "First")
	require.NoError(t, err)

	_, _, err = us.Register(context.Background(), "dup@example.com", "secret123", "Second")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLoginWrongPassword(t *testing.T) {
	setupTestDB(t)
	us := NewUserService(nil)

	_, _, err := us.Register(context.Background(), "bob@example.com", "secret123", "Bob")
	require.NoError(t, err)

	_, _, err = us.Login(context.Background(), "bob@example.com", "wrong")
	assert.ErrorIs(t, err, ErrForbidden)

	_, _, err = us.Login(context.Background(), "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestLogoutInvalidatesTokens(t *testing.T) {
	setupTestDB(t)
	us := NewUserService(nil)

	user, _, err := us.Register(context.Background(), "carol@example.com", "secret123", "Carol")
	require.NoError(t, err)

	require.NoError(t, us.Logout(context.Background(), user.ID))

	var count int64
	require.NoError(t, db.ORM.Model(&models.UserTokens{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestOnboard(t *testing.T) {
	setupTestDB(t)
	us := NewUserService(nil)

	user, _, err := us.Register(context.Background(), "dave@example.com", "secret123", "Dave")
	require.NoError(t, err)

	_, err = us.Onboard(context.Background(), user.ID, OnboardingData{FullName: "Dave"})
	assert.ErrorIs(t, err, ErrInvalidOperation, "languages are required")

	updated, err := us.Onboard(context.Background(), user.ID, OnboardingData{
		FullName:         "Dave Example",
		NativeLanguage:   "german",
		LearningLanguage: "french",
		Location:         "Berlin",
	})
	require.NoError(t, err)
	assert.True(t, updated.IsOnboarded)
	assert.Equal(t, "german", updated.NativeLanguage)
}
