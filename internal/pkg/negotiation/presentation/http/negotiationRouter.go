package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luizfilipeschaeffer/omni/internal/pkg/negotiation/application/usecase"
	"github.com/luizfilipeschaeffer/omni/internal/pkg/negotiation/presentation/controller"
)

// RegisterRoutes registers the negotiation endpoints under the given router
// group. It constructs per-endpoint controllers and binds them directly.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, notifier usecase.Notifier) {
	requestCtl := controller.NewRequestChatController(pool, notifier)
	acceptCtl := controller.NewAcceptChatController(pool)
	rejectCtl := controller.NewRejectChatController(pool)
	requestDelCtl := controller.NewRequestDeletionController(pool, notifier)
	approveDelCtl := controller.NewApproveDeletionController(pool)
	rejectDelCtl := controller.NewRejectDeletionController(pool, notifier)

	// Chat-creation state machine
	g.POST("/chat-requests", requestCtl.Handle())
	g.POST("/chat-requests/:notificationId/accept", acceptCtl.Handle())
	g.DELETE("/chat-requests/:notificationId", rejectCtl.Handle())

	// Chat-deletion state machine
	g.POST("/chats/:chatId/deletion-requests", requestDelCtl.Handle())
	g.POST("/deletion-requests/:notificationId/approve", approveDelCtl.Handle())
	g.POST("/deletion-requests/:notificationId/reject", rejectDelCtl.Handle())
}
