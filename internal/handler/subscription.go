package handler

import (
	"VidTube/internal/service"
	"VidTube/utils"

	"github.com/gin-gonic/gin"
)

// ToggleSubscription flips the caller's subscription to a channel.
func ToggleSubscription(c *gin.Context) {
	result, err := service.ToggleSubscription(
		c.Request.Context(),
		utils.CtxID(c, "channel_id"),
		utils.ViewerID(c),
	)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, result)
}

// Subscribers lists the users subscribed to a channel.
func Subscribers(c *gin.Context) {
	resp, err := service.GetSubscribers(utils.CtxID(c, "channel_id"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, resp)
}

// SubscribedChannels lists the channels a user subscribes to.
func SubscribedChannels(c *gin.Context) {
	resp, err := service.GetSubscribedChannels(utils.CtxID(c, "subscriber_id"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, resp)
}

// SubscriptionVideos lists the latest videos of the caller's subscriptions.
func SubscriptionVideos(c *gin.Context) {
	videos, err := service.GetSubscriptionVideos(utils.ViewerID(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, videos)
}
