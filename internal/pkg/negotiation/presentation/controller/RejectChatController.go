package controller

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luizfilipeschaeffer/omni/internal/pkg/negotiation/application/usecase"
	notifAdapter "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/persistence/repository/adapter"
	"github.com/luizfilipeschaeffer/omni/internal/presentation/web"
)

// RejectChatController handles declining a pending chat request.
type RejectChatController struct {
	UC *usecase.RejectChatUseCase
}

func NewRejectChatController(pool *pgxpool.Pool) *RejectChatController {
	uc := usecase.NewRejectChatUseCase(notifAdapter.NewPgNotificationRepository(pool))
	return &RejectChatController{UC: uc}
}

func (h *RejectChatController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		nid, err := strconv.ParseInt(c.Param("notificationId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "notificationId must be numeric"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := h.UC.Execute(ctx, usecase.RejectChatInput{
			TargetID:       web.ActingUser(c),
			NotificationID: nid,
		}); err != nil {
			web.Fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
