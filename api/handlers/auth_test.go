package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"streamify/api/middleware"

	"github.com/gin-gonic/gin"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	setupTestDB(t)
	gin.SetMode(gin.TestMode)
	Init(nil, nil)

	r := gin.New()
	r.POST("/api/v1/auth/register", Register)
	r.POST("/api/v1/auth/login", Login)

	authorized := r.Group("/api/v1/")
	authorized.Use(middleware.AuthMiddleware())
	{
		authorized.POST("auth/logout", Logout)
		authorized.POST("auth/onboard", Onboard)
	}
	return r
}

func postJSON(r *gin.Engine, path, token string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterHandler(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(r, "/api/v1/auth/register", "", RegisterRequest{
		Email:    "new@example.com",
		Password: "secret123",
		FullName: "New User",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a session token in the response")
	}

	// Повторная регистрация на тот же email
	wDup := postJSON(r, "/api/v1/auth/register", "", RegisterRequest{
		Email:    "new@example.com",
		Password: "secret123",
		FullName: "Imposter",
	})
	if wDup.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate email, got %d", wDup.Code)
	}
}

func TestLoginAndOnboardHandler(t *testing.T) {
	r := setupAuthRouter(t)

	postJSON(r, "/api/v1/auth/register", "", RegisterRequest{
		Email:    "flow@example.com",
		Password: "secret123",
		FullName: "Flow User",
	})

	wLogin := postJSON(r, "/api/v1/auth/login", "", LoginRequest{
		Email:    "flow@example.com",
		Password: "secret123",
	})
	if wLogin.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", wLogin.Code, wLogin.Body.String())
	}
	var loginResp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(wLogin.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	wOnboard := postJSON(r, "/api/v1/auth/onboard", loginResp.Token, OnboardRequest{
		FullName:         "Flow User",
		NativeLanguage:   "english",
		LearningLanguage: "japanese",
	})
	if wOnboard.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", wOnboard.Code, wOnboard.Body.String())
	}

	// После logout токен больше не работает
	wLogout := postJSON(r, "/api/v1/auth/logout", loginResp.Token, struct{}{})
	if wLogout.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", wLogout.Code)
	}
	wStale := postJSON(r, "/api/v1/auth/onboard", loginResp.Token, OnboardRequest{
		FullName:         "Flow User",
		NativeLanguage:   "english",
		LearningLanguage: "japanese",
	})
	if wStale.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with a revoked token, got %d", wStale.Code)
	}
}

func TestLoginHandlerWrongPassword(t *testing.T) {
	r := setupAuthRouter(t)

	postJSON(r, "/api/v1/auth/register", "", RegisterRequest{
		Email:    "wp@example.com",
		Password: "secret123",
		FullName: "WP User",
	})

	w := postJSON(r, "/api/v1/auth/login", "", LoginRequest{
		Email:    "wp@example.com",
		Password: "nope",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for wrong password, got %d", w.Code)
	}
}
