package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	mathrand "math/rand"
	"strings"

	"streamify/db"
	"streamify/models"

	"golang.org/x/crypto/argon2"
	"gorm.io/gorm"
)

type UserService struct {
	gateway *StreamGateway
}

func NewUserService(gateway *StreamGateway) *UserService {
	return &UserService{gateway: gateway}
}

// OnboardingData - профиль, который пользователь заполняет при онбординге
type OnboardingData struct {
	FullName         string
	Bio              string
	NativeLanguage   string
	LearningLanguage string
	Location         string
}

// Register создает пользователя и выдает сессионный токен.
// Профиль зеркалируется во внешний чат-провайдер fire-and-forget.
func (us *UserService) Register(ctx context.Context, email, password, fullName string) (*models.User, string, error) {
	if email == "" || fullName == "" {
		return nil, "", fmt.Errorf("%w: email and full name are required", ErrInvalidOperation)
	}
	if len(password) < 6 {
		return nil, "", fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidOperation)
	}

	var alreadyExists int64
	err := db.GetReadOnlyDB(ctx).Model(&models.User{}).Where("email = ?", email).Count(&alreadyExists).Error
	if err != nil {
		return nil, "", fmt.Errorf("error checking existing user: %w", err)
	}
	if alreadyExists > 0 {
		return nil, "", fmt.Errorf("%w: email already in use", ErrConflict)
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Email:      email,
		FullName:   fullName,
		Password:   passwordHash,
		ProfilePic: randomAvatar(),
	}
	if err := db.GetWriteDB(ctx).Create(user).Error; err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	if us.gateway != nil {
		if err := us.gateway.UpsertUser(ctx, user); err != nil {
			log.Printf("Register: failed to upsert stream user %d: %v", user.ID, err)
		}
	}

	token, err := us.issueToken(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login проверяет пароль и ротирует сессионный токен
func (us *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	var user models.User
	err := db.GetReadOnlyDB(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("%w: invalid email or password", ErrForbidden)
	}
	if err != nil {
		return nil, "", fmt.Errorf("error loading user: %w", err)
	}

	if !verifyPassword(user.Password, password) {
		return nil, "", fmt.Errorf("%w: invalid email or password", ErrForbidden)
	}

	token, err := us.issueToken(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (us *UserService) Logout(ctx context.Context, userID int64) error {
	err := db.GetWriteDB(ctx).Where("user_id = ?", userID).Delete(&models.UserTokens{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete tokens: %w", err)
	}
	return nil
}

// Onboard заполняет профиль и помечает пользователя как onboarded,
// после чего тот начинает появляться в рекомендациях
func (us *UserService) Onboard(ctx context.Context, userID int64, data OnboardingData) (*models.User, error) {
	if data.FullName == "" || data.NativeLanguage == "" || data.LearningLanguage == "" {
		return nil, fmt.Errorf("%w: full name, native language and learning language are required", ErrInvalidOperation)
	}

	var user models.User
	err := db.GetWriteDB(ctx).Where("id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	user.FullName = data.FullName
	user.Bio = data.Bio
	user.NativeLanguage = data.NativeLanguage
	user.LearningLanguage = data.LearningLanguage
	user.Location = data.Location
	user.IsOnboarded = true

	if err := db.GetWriteDB(ctx).Save(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if us.gateway != nil {
		if err := us.gateway.UpsertUser(ctx, &user); err != nil {
			log.Printf("Onboard: failed to upsert stream user %d: %v", user.ID, err)
		}
	}
	return &user, nil
}

// issueToken удаляет старые токены пользователя и создает новый
func (us *UserService) issueToken(ctx context.Context, userID int64) (string, error) {
	if err := us.Logout(ctx, userID); err != nil {
		return "", err
	}

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	token := hex.EncodeToString(tokenBytes)

	err := db.GetWriteDB(ctx).Create(&models.UserTokens{
		UserID: userID,
		Token:  token,
	}).Error
	if err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}
	return token, nil
}

func hashPassword(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	hash := argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)
	return hex.EncodeToString(salt) + "$" + hex.EncodeToString(hash), nil
}

func verifyPassword(stored, password string) bool {
	parts := strings.Split(stored, "$")
	if len(parts) != 2 {
		return false
	}
	salt, err := hex.DecodeString(parts[0])
	if err != nil {
		return false
	}
	hash := argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)
	return hex.EncodeToString(hash) == parts[1]
}

func randomAvatar() string {
	return fmt.Sprintf("https://avatar.iran.liara.run/public/%d.png", mathrand.Intn(100)+1)
}
