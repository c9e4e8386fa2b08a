package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luizfilipeschaeffer/omni/internal/pkg/user/presentation/controller"
)

func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool) {
	search := controller.NewSearchUsersController(pool)

	g.GET("/users/search", search.Handle())
}
