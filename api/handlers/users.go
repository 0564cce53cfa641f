package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetRecommendedUsers - обработчик GET /users/recommended
func GetRecommendedUsers(c *gin.Context) {
	actorID := c.GetInt64("user_id")
	if actorID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	users, err := directoryService.RecommendedUsers(c.Request.Context(), actorID)
	if err != nil {
		mapServiceError(c, "GetRecommendedUsers", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetMyFriends - обработчик GET /users/friends
func GetMyFriends(c *gin.Context) {
	actorID := c.GetInt64("user_id")
	if actorID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	friends, err := directoryService.Friends(c.Request.Context(), actorID)
	if err != nil {
		mapServiceError(c, "GetMyFriends", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"friends": friends})
}
