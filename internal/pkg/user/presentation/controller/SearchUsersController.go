package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luizfilipeschaeffer/omni/internal/pkg/user/persistence/repository/adapter"
	repository "github.com/luizfilipeschaeffer/omni/internal/pkg/user/persistence/repository/port"
	"github.com/luizfilipeschaeffer/omni/internal/presentation/web"
)

const searchLimit = 20

// SearchUsersController serves the directory lookup used to address a chat
// request.
type SearchUsersController struct {
	repo       repository.UserRepository
	reqTimeout time.Duration
}

func NewSearchUsersController(pool *pgxpool.Pool) *SearchUsersController {
	return &SearchUsersController{
		repo:       adapter.NewPgUserRepository(pool),
		reqTimeout: 3 * time.Second,
	}
}

func (h *SearchUsersController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Query("q")
		if q == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), h.reqTimeout)
		defer cancel()

		users, err := h.repo.Search(ctx, q, searchLimit)
		if err != nil {
			web.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}
