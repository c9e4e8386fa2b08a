package controller

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luizfilipeschaeffer/omni/internal/infrastructure/realtime"
)

// NotifyController is the side-channel ingress: other processes POST an event
// here and it is pushed to the target user's socket if one is attached.
type NotifyController struct {
	registry *realtime.Registry
}

func NewNotifyController(registry *realtime.Registry) *NotifyController {
	return &NotifyController{registry: registry}
}

type notifyBody struct {
	UserID string `json:"userId"`
}

// Handle pushes the request body to the target socket. 200 means the frame
// was handed to an attached connection, 404 means the user is offline; either
// way the caller's own work is already durable and must not be rolled back.
func (ctl *NotifyController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
			return
		}
		var body notifyBody
		if err := json.Unmarshal(raw, &body); err != nil || body.UserID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
			return
		}

		// The raw body is forwarded as-is; the ingress does not interpret
		// the event beyond routing it.
		if ctl.registry.Notify(body.UserID, raw) {
			c.JSON(http.StatusOK, gin.H{"delivered": true})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"delivered": false})
	}
}
