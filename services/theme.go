package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// DefaultTheme применяется, пока пользователь ничего не выбрал
const DefaultTheme = "coffee"

// ThemeService хранит выбранную тему оформления per-user.
// Ключ без TTL - предпочтение живет, пока его не перезапишут.
type ThemeService struct {
	client *redis.Client
}

func NewThemeService(client *redis.Client) *ThemeService {
	return &ThemeService{client: client}
}

func themeKey(userID int64) string {
	return fmt.Sprintf("streamify:theme:%d", userID)
}

func (ts *ThemeService) GetTheme(ctx context.Context, userID int64) (string, error) {
	theme, err := ts.client.Get(ctx, themeKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return DefaultTheme, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get theme: %w", err)
	}
	return theme, nil
}

func (ts *ThemeService) SetTheme(ctx context.Context, userID int64, theme string) error {
	if theme == "" {
		return fmt.Errorf("%w: theme must not be empty", ErrInvalidOperation)
	}
	if err := ts.client.Set(ctx, themeKey(userID), theme, 0).Err(); err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}
	return nil
}
