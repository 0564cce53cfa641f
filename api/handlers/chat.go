package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetChatToken - обработчик GET /chat/token
// Выдает сессионный токен внешнего чат-провайдера. Ошибка провайдера
// отдается как 500, а не молча проглатывается.
func GetChatToken(c *gin.Context) {
	actorID := c.GetInt64("user_id")
	if actorID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if streamGateway == nil {
		mapServiceError(c, "GetChatToken", errStreamUnavailable)
		return
	}

	token, err := streamGateway.GenerateToken(actorID)
	if err != nil {
		mapServiceError(c, "GetChatToken", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
