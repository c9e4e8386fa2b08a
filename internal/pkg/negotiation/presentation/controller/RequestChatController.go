package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luizfilipeschaeffer/omni/internal/pkg/negotiation/application/usecase"
	notifAdapter "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/persistence/repository/adapter"
	userAdapter "github.com/luizfilipeschaeffer/omni/internal/pkg/user/persistence/repository/adapter"
	"github.com/luizfilipeschaeffer/omni/internal/presentation/web"
)

// RequestChatController handles the chat-request endpoint (one controller per endpoint)
type RequestChatController struct {
	UC *usecase.RequestChatUseCase
}

func NewRequestChatController(pool *pgxpool.Pool, notifier usecase.Notifier) *RequestChatController {
	uc := usecase.NewRequestChatUseCase(
		notifAdapter.NewPgNotificationRepository(pool),
		userAdapter.NewPgUserRepository(pool),
		notifier,
	)
	return &RequestChatController{UC: uc}
}

type requestChatRequest struct {
	TargetID string `json:"target_id" binding:"required"`
}

func (h *RequestChatController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req requestChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		n, err := h.UC.Execute(ctx, usecase.RequestChatInput{
			InitiatorID: web.ActingUser(c),
			TargetID:    req.TargetID,
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
