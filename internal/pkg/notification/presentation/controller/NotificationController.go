package controller

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cacheport "github.com/luizfilipeschaeffer/omni/internal/infrastructure/cache/port"
	"github.com/luizfilipeschaeffer/omni/internal/pkg/notification/application/usecase"
	notification "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/domain"
	"github.com/luizfilipeschaeffer/omni/internal/pkg/notification/persistence/repository/adapter"
	"github.com/luizfilipeschaeffer/omni/internal/presentation/web"
)

// NotificationController groups the notification-log endpoints: the polling
// read, its write-backs (mark read, dismiss) and the two pending probes.
type NotificationController struct {
	listUC     *usecase.ListNotificationsUseCase
	sentUC     *usecase.ListSentRequestsUseCase
	markUC     *usecase.MarkReadUseCase
	markAllUC  *usecase.MarkAllReadUseCase
	dismissUC  *usecase.DismissNotificationUseCase
	clearUC    *usecase.ClearReadUseCase
	countUC    *usecase.CountUnreadUseCase
	repo       *adapter.PgNotificationRepository
	pageSize   int
	reqTimeout time.Duration
}

func NewNotificationController(pool *pgxpool.Pool, cache cacheport.Cache, pageSize int) *NotificationController {
	repo := adapter.NewPgNotificationRepository(pool)
	return &NotificationController{
		listUC:     usecase.NewListNotificationsUseCase(repo),
		sentUC:     usecase.NewListSentRequestsUseCase(repo),
		markUC:     usecase.NewMarkReadUseCase(repo, cache),
		markAllUC:  usecase.NewMarkAllReadUseCase(repo, cache),
		dismissUC:  usecase.NewDismissNotificationUseCase(repo, cache),
		clearUC:    usecase.NewClearReadUseCase(repo),
		countUC:    usecase.NewCountUnreadUseCase(repo, cache),
		repo:       repo,
		pageSize:   pageSize,
		reqTimeout: 3 * time.Second,
	}
}

func toJSON(n notification.Notification) gin.H {
	return gin.H{
		"id":         n.ID,
		"user_id":    n.UserID,
		"type":       n.Type,
		"payload":    n.Payload,
		"read":       n.Read,
		"created_at": n.CreatedAt,
	}
}

// List serves the reconciler's poll: newest first, bounded page.
func (h *NotificationController) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.reqTimeout)
		defer cancel()

		ns, err := h.listUC.Execute(ctx, usecase.ListNotificationsInput{
			UserID: web.ActingUser(c),
			Limit:  h.pageSize,
		})
		if err != nil {
			web.Fail(c, err)
			return
		}
		out := make([]gin.H, 0, len(ns))
		for _, n := range ns {
			out = append(out, toJSON(n))
		}
		c.JSON(http.StatusOK, out)
	}
}

// ListSent returns the acting user's own unresolved chat requests.
func (h *NotificationController) ListSent() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.reqTimeout)
		defer cancel()

		ns, err := h.sentUC.Execute(ctx, usecase.ListSentRequestsInput{
			UserID: web.ActingUser(c),
			Limit:  h.pageSize,
		})
		if err != nil {
			web.Fail(c, err)
			return
		}
		out := make([]gin.H, 0, len(ns))
		for _, n := range ns {
			out = append(out, toJSON(n))
		}
		c.JSON(http.StatusOK, out)
	}
}

// PendingProbe answers whether a chat request from the acting user to
// targetId is still pending, for pre-flight duplicate checks in clients.
func (h *NotificationController) PendingProbe() gin.HandlerFunc {
	return func(c *gin.Context) {
		targetID := c.Query("targetId")
		if targetID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "targetId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), h.reqTimeout)
		defer cancel()

		pending, err := h.repo.HasPendingChatRequest(ctx, web.ActingUser(c), targetID)
		if err != nil {
			web.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"pending": pending})
	}
}

// MarkRead flips one notification's read flag.
func (h *NotificationController) MarkRead() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id must be numeric"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), h.reqTimeout)
		defer cancel()

		if err := h.markUC.Execute(ctx, usecase.MarkReadInput{
			UserID:         web.ActingUser(c),
			NotificationID: id,
		}); err != nil {
			web.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// MarkAllRead flips every unread notification for the acting user.
func (h *NotificationController) MarkAllRead() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.reqTimeout)
		defer cancel()

		if err := h.markAllUC.Execute(ctx, usecase.MarkAllReadInput{UserID: web.ActingUser(c)}); err != nil {
			web.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// Dismiss deletes one notification.
func (h *NotificationController) Dismiss() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id must be numeric"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), h.reqTimeout)
		defer cancel()

		if err := h.dismissUC.Execute(ctx, usecase.DismissNotificationInput{
			UserID:         web.ActingUser(c),
			NotificationID: id,
		}); err != nil {
			web.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// ClearRead removes every read notification for the acting user.
func (h *NotificationController) ClearRead() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.reqTimeout)
		defer cancel()

		removed, err := h.clearUC.Execute(ctx, usecase.ClearReadInput{UserID: web.ActingUser(c)})
		if err != nil {
			web.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "removed": removed})
	}
}

// UnreadCount serves the badge counter.
func (h *NotificationController) UnreadCount() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.reqTimeout)
		defer cancel()

		count, err := h.countUC.Execute(ctx, usecase.CountUnreadInput{UserID: web.ActingUser(c)})
		if err != nil {
			web.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}
