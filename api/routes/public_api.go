package routes

import (
	"streamify/api/handlers"
	"streamify/api/middleware"

	"github.com/gin-gonic/gin"
)

func PublicApi(router *gin.Engine) *gin.RouterGroup {
	publicEndpoints := router.Group("/api/v1/")
	{
		publicEndpoints.POST("auth/register", handlers.Register)
		publicEndpoints.POST("auth/login", handlers.Login)
	}

	authorized := router.Group("/api/v1/")
	authorized.Use(middleware.AuthMiddleware())
	{
		authorized.POST("auth/logout", handlers.Logout)
		authorized.POST("auth/onboard", handlers.Onboard)

		// Друзья и заявки
		authorized.GET("users/recommended", handlers.GetRecommendedUsers)
		authorized.GET("users/friends", handlers.GetMyFriends)
		authorized.POST("users/friend-request/:id", handlers.SendFriendRequest)
		authorized.PUT("users/friend-request/:id/accept", handlers.AcceptFriendRequest)
		authorized.GET("users/friend-requests", handlers.GetFriendRequests)
		authorized.GET("users/outgoing-friend-requests", handlers.GetOutgoingFriendRequests)

		// Предпочтения UI
		authorized.GET("users/theme", handlers.GetTheme)
		authorized.PUT("users/theme", handlers.SetTheme)

		// Внешний чат-провайдер
		authorized.GET("chat/token", handlers.GetChatToken)
	}

	return publicEndpoints
}
