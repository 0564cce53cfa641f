package handlers

import (
	"net/http"
	"strconv"

	"streamify/api/middleware"

	"github.com/gin-gonic/gin"
)

// SendFriendRequest - обработчик POST /users/friend-request/:id
func SendFriendRequest(c *gin.Context) {
	actorID := c.GetInt64("user_id")
	if actorID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	recipientID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipient ID"})
		return
	}

	request, err := relationshipService.SendFriendRequest(c.Request.Context(), actorID, recipientID)
	if err != nil {
		middleware.RecordRelationshipOperation("send_request", "error", "streamify")
		mapServiceError(c, "SendFriendRequest", err)
		return
	}

	middleware.RecordRelationshipOperation("send_request", "ok", "streamify")
	c.JSON(http.StatusCreated, request)
}

// AcceptFriendRequest - обработчик PUT /users/friend-request/:id/accept
func AcceptFriendRequest(c *gin.Context) {
	actorID := c.GetInt64("user_id")
	if actorID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	requestID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	if err := relationshipService.AcceptFriendRequest(c.Request.Context(), actorID, requestID); err != nil {
		middleware.RecordRelationshipOperation("accept_request", "error", "streamify")
		mapServiceError(c, "AcceptFriendRequest", err)
		return
	}

	middleware.RecordRelationshipOperation("accept_request", "ok", "streamify")
	c.JSON(http.StatusOK, gin.H{"message": "Friend request accepted"})
}

// GetFriendRequests - обработчик GET /users/friend-requests
// Возвращает входящие pending-заявки и принятые заявки, отправленные
// самим пользователем
func GetFriendRequests(c *gin.Context) {
	actorID := c.GetInt64("user_id")
	if actorID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	incoming, accepted, err := directoryService.FriendRequests(c.Request.Context(), actorID)
	if err != nil {
		mapServiceError(c, "GetFriendRequests", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"incoming": incoming,
		"accepted": accepted,
	})
}

// GetOutgoingFriendRequests - обработчик GET /users/outgoing-friend-requests
func GetOutgoingFriendRequests(c *gin.Context) {
	actorID := c.GetInt64("user_id")
	if actorID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	requests, err := directoryService.OutgoingFriendRequests(c.Request.Context(), actorID)
	if err != nil {
		mapServiceError(c, "GetOutgoingFriendRequests", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}
