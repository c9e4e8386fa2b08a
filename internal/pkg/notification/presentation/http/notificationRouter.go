package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cacheport "github.com/luizfilipeschaeffer/omni/internal/infrastructure/cache/port"
	"github.com/luizfilipeschaeffer/omni/internal/pkg/notification/presentation/controller"
)

func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, cache cacheport.Cache, pageSize int) {
	h := controller.NewNotificationController(pool, cache, pageSize)

	g.GET("/notifications", h.List())
	g.GET("/notifications/unread-count", h.UnreadCount())
	g.POST("/notifications/read-all", h.MarkAllRead())
	g.POST("/notifications/:id/read", h.MarkRead())
	g.DELETE("/notifications/read", h.ClearRead())
	g.DELETE("/notifications/:id", h.Dismiss())

	g.GET("/chat-requests/sent", h.ListSent())
	g.GET("/chat-requests/pending", h.PendingProbe())
}
