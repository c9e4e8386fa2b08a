package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luizfilipeschaeffer/omni/internal/pkg/chat/application/usecase"
	"github.com/luizfilipeschaeffer/omni/internal/pkg/chat/persistence/repository/adapter"
	"github.com/luizfilipeschaeffer/omni/internal/presentation/web"
)

type ChatController struct {
	listUC     *usecase.ListChatsUseCase
	messagesUC *usecase.ListMessagesUseCase
	sendUC     *usecase.SendMessageUseCase
	editUC     *usecase.EditMessageUseCase
	deleteUC   *usecase.DeleteMessageUseCase
	viewedUC   *usecase.MarkMessageViewedUseCase
	reqTimeout time.Duration
}

func NewChatController(pool *pgxpool.Pool) *ChatController {
	repo := adapter.NewPgChatRepository(pool)
	return &ChatController{
		listUC:     usecase.NewListChatsUseCase(repo),
		messagesUC: usecase.NewListMessagesUseCase(repo),
		sendUC:     usecase.NewSendMessageUseCase(repo),
		editUC:     usecase.NewEditMessageUseCase(repo),
		deleteUC:   usecase.NewDeleteMessageUseCase(repo),
		viewedUC:   usecase.NewMarkMessageViewedUseCase(repo),
		reqTimeout: 3 * time.Second,
	}
}

// List returns the acting user's conversations for the sidebar.
func (h *ChatController) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.reqTimeout)
		defer cancel()

		chats, err := h.listUC.Execute(ctx, usecase.ListChatsInput{UserID: web.ActingUser(c)})
		if err != nil {
			web.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, chats)
	}
}

// ListMessages returns a conversation's messages, oldest first.
func (h *ChatController) ListMessages() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.reqTimeout)
		defer cancel()

		msgs, err := h.messagesUC.Execute(ctx, usecase.ListMessagesInput{
			ConversationID: c.Param("chatId"),
			RequesterID:    web.ActingUser(c),
		})
		if err != nil {
			web.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, msgs)
	}
}

// SendMessage appends a message to a conversation.
func (h *ChatController) SendMessage() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Content string `json:"content" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), h.reqTimeout)
		defer cancel()

		msg, err := h.sendUC.Execute(ctx, usecase.SendMessageInput{
			ConversationID: c.Param("chatId"),
			AuthorID:       web.ActingUser(c),
			Content:        body.Content,
		})
		if err != nil {
			web.Fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, msg)
	}
}

// EditMessage replaces a message's content, author-only.
func (h *ChatController) EditMessage() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Content string `json:"content" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), h.reqTimeout)
		defer cancel()

		msg, err := h.editUC.Execute(ctx, usecase.EditMessageInput{
			ConversationID: c.Param("chatId"),
			MessageID:      c.Param("messageId"),
			AuthorID:       web.ActingUser(c),
			Content:        body.Content,
		})
		if err != nil {
			web.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, msg)
	}
}

// DeleteMessage removes a message, author-only.
func (h *ChatController) DeleteMessage() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.reqTimeout)
		defer cancel()

		if err := h.deleteUC.Execute(ctx, usecase.DeleteMessageInput{
			ConversationID: c.Param("chatId"),
			MessageID:      c.Param("messageId"),
			AuthorID:       web.ActingUser(c),
		}); err != nil {
			web.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// MarkViewed stamps a message as seen by the acting user.
func (h *ChatController) MarkViewed() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.reqTimeout)
		defer cancel()

		if err := h.viewedUC.Execute(ctx, usecase.MarkMessageViewedInput{
			ConversationID: c.Param("chatId"),
			MessageID:      c.Param("messageId"),
			ViewerID:       web.ActingUser(c),
		}); err != nil {
			web.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
