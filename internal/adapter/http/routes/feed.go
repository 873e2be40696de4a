package routes

import (
	"bidtrack/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathActivities    = "/activities"
	PathNotifications = "/notifications"
)

func addFeedRoutes(rg *gin.RouterGroup, activityHandler *handlers.ActivityHandler, notificationHandler *handlers.NotificationHandler) {
	activities := rg.Group(PathActivities)
	{
		activities.GET("", activityHandler.GetActivities)
	}

	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", notificationHandler.GetNotifications)
		notifications.PUT("", notificationHandler.UpdateNotifications)
	}
}
