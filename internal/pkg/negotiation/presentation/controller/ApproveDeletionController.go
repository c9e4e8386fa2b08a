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

// ApproveDeletionController handles granting a pending deletion request.
type ApproveDeletionController struct {
	UC *usecase.ApproveDeletionUseCase
}

func NewApproveDeletionController(pool *pgxpool.Pool) *ApproveDeletionController {
	uc := usecase.NewApproveDeletionUseCase(negotiationAdapter.NewPgNegotiationRepository(pool))
	return &ApproveDeletionController{UC: uc}
}

func (h *ApproveDeletionController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		nid, err := strconv.ParseInt(c.Param("notificationId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "notificationId must be numeric"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		convID, err := h.UC.Execute(ctx, usecase.ApproveDeletionInput{
			ApproverID:     web.ActingUser(c),
			NotificationID: nid,
		})
		if err != nil {
			web.Fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "conversation_id": convID})
	}
}
