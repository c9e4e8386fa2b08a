package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	chatAdapter "github.com/luizfilipeschaeffer/omni/internal/pkg/chat/persistence/repository/adapter"
	"github.com/luizfilipeschaeffer/omni/internal/pkg/negotiation/application/usecase"
	notifAdapter "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/persistence/repository/adapter"
	userAdapter "github.com/luizfilipeschaeffer/omni/internal/pkg/user/persistence/repository/adapter"
	"github.com/luizfilipeschaeffer/omni/internal/presentation/web"
)

// RequestDeletionController handles opening a deletion negotiation for a
// conversation.
type RequestDeletionController struct {
	UC *usecase.RequestDeletionUseCase
}

func NewRequestDeletionController(pool *pgxpool.Pool, notifier usecase.Notifier) *RequestDeletionController {
	uc := usecase.NewRequestDeletionUseCase(
		chatAdapter.NewPgChatRepository(pool),
		notifAdapter.NewPgNotificationRepository(pool),
		userAdapter.NewPgUserRepository(pool),
		notifier,
	)
	return &RequestDeletionController{UC: uc}
}

func (h *RequestDeletionController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		chatID := c.Param("chatId")
		if chatID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "chatId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		n, err := h.UC.Execute(ctx, usecase.RequestDeletionInput{
			RequesterID:    web.ActingUser(c),
			ConversationID: chatID,
		})
		if err != nil {
			web.Fail(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":         n.ID,
			"user_id":    n.UserID,
			"type":       n.Type,
			"payload":    n.Payload,
			"created_at": n.CreatedAt,
		})
	}
}
