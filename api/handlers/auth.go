package handlers

import (
	"errors"
	"net/http"

	"streamify/services"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type OnboardRequest struct {
	FullName         string `json:"full_name" binding:"required"`
	Bio              string `json:"bio"`
	NativeLanguage   string `json:"native_language" binding:"required"`
	LearningLanguage string `json:"learning_language" binding:"required"`
	Location         string `json:"location"`
}

func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, token, err := userService.Register(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		// Занятый email отдаем как 409, не как общий 400
		if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		mapServiceError(c, "Register", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  user,
		"token": token,
	})
}

func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, token, err := userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		mapServiceError(c, "Login", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

func Logout(c *gin.Context) {
	actorID := c.GetInt64("user_id")
	if actorID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := userService.Logout(c.Request.Context(), actorID); err != nil {
		mapServiceError(c, "Logout", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// Onboard заполняет профиль; после онбординга пользователь попадает
// в рекомендации
func Onboard(c *gin.Context) {
	actorID := c.GetInt64("user_id")
	if actorID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req OnboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, err := userService.Onboard(c.Request.Context(), actorID, services.OnboardingData{
		FullName:         req.FullName,
		Bio:              req.Bio,
		NativeLanguage:   req.NativeLanguage,
		LearningLanguage: req.LearningLanguage,
		Location:         req.Location,
	})
	if err != nil {
		mapServiceError(c, "Onboard", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
