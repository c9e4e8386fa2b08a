package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luizfilipeschaeffer/omni/internal/pkg/chat/presentation/controller"
)

func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool) {
	h := controller.NewChatController(pool)

	g.GET("/chats", h.List())
	g.GET("/chats/:chatId/messages", h.ListMessages())
	g.POST("/chats/:chatId/messages", h.SendMessage())
	g.PUT("/chats/:chatId/messages/:messageId", h.EditMessage())
	g.DELETE("/chats/:chatId/messages/:messageId", h.DeleteMessage())
	g.POST("/chats/:chatId/messages/:messageId/viewed", h.MarkViewed())
}
