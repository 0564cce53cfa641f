package handlers

import (
	"errors"
	"log"
	"net/http"

	"streamify/services"

	"github.com/gin-gonic/gin"
)

var errStreamUnavailable = errors.New("stream gateway is not configured")

var (
	relationshipService = services.NewRelationshipService()
	directoryService    = services.NewDirectoryService()
	userService         *services.UserService
	themeService        *services.ThemeService
	streamGateway       *services.StreamGateway
)

// Init связывает обработчики с внешними зависимостями (чат-провайдер, Redis).
// Вызывается один раз при старте, до регистрации маршрутов.
func Init(gateway *services.StreamGateway, themes *services.ThemeService) {
	streamGateway = gateway
	userService = services.NewUserService(gateway)
	themeService = themes
}

// mapServiceError транслирует доменные ошибки в HTTP-статусы.
// Внутренние ошибки логируются с именем операции, клиенту уходит
// общий ответ без деталей.
func mapServiceError(c *gin.Context, operation string, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidOperation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		log.Printf("Error in %s: %v", operation, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
