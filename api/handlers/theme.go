package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// GetTheme - обработчик GET /users/theme
// Пока пользователь ничего не выбрал, возвращается тема по умолчанию
func GetTheme(c *gin.Context) {
	actorID := c.GetInt64("user_id")
	if actorID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	theme, err := themeService.GetTheme(c.Request.Context(), actorID)
	if err != nil {
		mapServiceError(c, "GetTheme", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

// SetTheme - обработчик PUT /users/theme
func SetTheme(c *gin.Context) {
	actorID := c.GetInt64("user_id")
	if actorID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := themeService.SetTheme(c.Request.Context(), actorID, req.Theme); err != nil {
		mapServiceError(c, "SetTheme", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}
