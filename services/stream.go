package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"streamify/config"
	"streamify/models"

	"github.com/golang-jwt/jwt/v5"
)

const defaultStreamBaseURL = "https://chat.stream-io-api.com"

// StreamGateway - клиент внешнего чат-провайдера. Передается сервисам
// явно, а не через глобальную переменную, чтобы ядро тестировалось
// без провайдера.
type StreamGateway struct {
	apiKey    string
	apiSecret []byte
	baseURL   string
	client    *http.Client
}

func NewStreamGateway(conf config.StreamConfig) (*StreamGateway, error) {
	if conf.APIKey == "" || conf.APISecret == "" {
		return nil, fmt.Errorf("stream api key or secret is missing")
	}
	return &StreamGateway{
		apiKey:    conf.APIKey,
		apiSecret: []byte(conf.APISecret),
		baseURL:   defaultStreamBaseURL,
		client:    &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// SetBaseURL переопределяет адрес провайдера (для тестов)
func (g *StreamGateway) SetBaseURL(url string) {
	g.baseURL = url
}

// UpsertUser зеркалирует профиль во внешний провайдер. Вызывающие
// используют его как fire-and-forget: ошибку логируют и не пробрасывают.
func (g *StreamGateway) UpsertUser(ctx context.Context, user *models.User) error {
	payload := map[string]interface{}{
		"users": map[string]interface{}{
			strconv.FormatInt(user.ID, 10): map[string]interface{}{
				"id":    strconv.FormatInt(user.ID, 10),
				"name":  user.FullName,
				"image": user.ProfilePic,
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal upsert payload: %w", err)
	}

	serverToken, err := g.signServerToken()
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/users?api_key=%s", g.baseURL, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build upsert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", serverToken)
	req.Header.Set("Stream-Auth-Type", "jwt")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("upsert request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("upsert request returned status %d", resp.StatusCode)
	}
	return nil
}

// GenerateToken выдает сессионный токен провайдера для пользователя.
// Токен - HS256 JWT с user_id, подписанный секретом приложения.
func (g *StreamGateway) GenerateToken(userID int64) (string, error) {
	claims := jwt.MapClaims{
		"user_id": strconv.FormatInt(userID, 10),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.apiSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign stream token: %w", err)
	}
	return signed, nil
}

// signServerToken подписывает серверный токен для server-side API вызовов
func (g *StreamGateway) signServerToken() (string, error) {
	claims := jwt.MapClaims{"server": true}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.apiSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign server token: %w", err)
	}
	return signed, nil
}
