package services

import (
	"testing"

	"streamify/db"
	"streamify/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB поднимает in-memory SQLite и подменяет глобальный ORM
func setupTestDB(t *testing.T) {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.AutoMigrate(&models.User{}, &models.UserTokens{}, &models.Friendship{}, &models.FriendRequest{})
	require.NoError(t, err)

	db.ORM = database
}

func createTestUser(t *testing.T, onboarded bool) *models.User {
	t.Helper()

	user := &models.User{
		Email:            gofakeit.Email(),
		FullName:         gofakeit.Name(),
		Password:         "irrelevant",
		NativeLanguage:   "english",
		LearningLanguage: "spanish",
		IsOnboarded:      onboarded,
	}
	require.NoError(t, db.ORM.Create(user).Error)
	return user
}

func makeFriends(t *testing.T, a, b *models.User) {
	t.Helper()

	pair := []models.Friendship{
		{UserID: a.ID, FriendID: b.ID},
		{UserID: b.ID, FriendID: a.ID},
	}
	require.NoError(t, db.ORM.Create(&pair).Error)
}
