package http

import (
	"github.com/gin-gonic/gin"

	"github.com/luizfilipeschaeffer/omni/internal/infrastructure/realtime"
	"github.com/luizfilipeschaeffer/omni/internal/pkg/push/presentation/controller"
)

// RegisterRoutes mounts the websocket endpoint under the versioned group and
// the push ingress at the root, matching the side-channel contract other
// processes already speak.
func RegisterRoutes(r *gin.Engine, g *gin.RouterGroup, registry *realtime.Registry, sendBuffer int) {
	socket := controller.NewSocketController(registry, sendBuffer)
	notify := controller.NewNotifyController(registry)

	g.GET("/ws", socket.Handle())
	r.POST("/notify", notify.Handle())
}
