package controller

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luizfilipeschaeffer/omni/internal/pkg/negotiation/application/usecase"
	negotiationAdapter "github.com/luizfilipeschaeffer/omni/internal/pkg/negotiation/persistence/repository/adapter"
	"github.com/luizfilipeschaeffer/omni/internal/presentation/web"
)

// AcceptChatController handles accepting a pending chat request.
type AcceptChatController struct {
	UC *usecase.AcceptChatUseCase
}

func NewAcceptChatController(pool *pgxpool.Pool) *AcceptChatController {
	uc := usecase.NewAcceptChatUseCase(negotiationAdapter.NewPgNegotiationRepository(pool))
	return &AcceptChatController{UC: uc}
}

type acceptChatRequest struct {
	Name *string `json:"name"`
}

func (h *AcceptChatController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		nid, err := strconv.ParseInt(c.Param("notificationId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "notificationId must be numeric"})
			return
		}

		var req acceptChatRequest
		// Body is optional; a bare accept keeps the conversation unnamed.
		_ = c.ShouldBindJSON(&req)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		conv, err := h.UC.Execute(ctx, usecase.AcceptChatInput{
			TargetID:       web.ActingUser(c),
			NotificationID: nid,
			Name:           req.Name,
		})
		if err != nil {
			web.Fail(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":         conv.ID,
			"name":       conv.Name,
			"is_group":   conv.IsGroup,
			"created_at": conv.CreatedAt,
		})
	}
}
