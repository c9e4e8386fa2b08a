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

// RejectDeletionController handles declining a pending deletion request.
type RejectDeletionController struct {
	UC *usecase.RejectDeletionUseCase
}

func NewRejectDeletionController(pool *pgxpool.Pool, notifier usecase.Notifier) *RejectDeletionController {
	uc := usecase.NewRejectDeletionUseCase(negotiationAdapter.NewPgNegotiationRepository(pool), notifier)
	return &RejectDeletionController{UC: uc}
}

func (h *RejectDeletionController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		nid, err := strconv.ParseInt(c.Param("notificationId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "notificationId must be numeric"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		rejected, err := h.UC.Execute(ctx, usecase.RejectDeletionInput{
			ApproverID:     web.ActingUser(c),
			NotificationID: nid,
		})
		if err != nil {
			web.Fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"ok":           true,
			"notification": gin.H{"id": rejected.ID, "user_id": rejected.UserID, "type": rejected.Type},
		})
	}
}
