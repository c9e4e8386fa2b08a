package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cacheport "github.com/luizfilipeschaeffer/omni/internal/infrastructure/cache/port"
	"github.com/luizfilipeschaeffer/omni/internal/infrastructure/realtime"
	chatHTTP "github.com/luizfilipeschaeffer/omni/internal/pkg/chat/presentation/http"
	"github.com/luizfilipeschaeffer/omni/internal/pkg/negotiation/application/usecase"
	negotiationHTTP "github.com/luizfilipeschaeffer/omni/internal/pkg/negotiation/presentation/http"
	notificationHTTP "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/presentation/http"
	pushHTTP "github.com/luizfilipeschaeffer/omni/internal/pkg/push/presentation/http"
	userHTTP "github.com/luizfilipeschaeffer/omni/internal/pkg/user/presentation/http"
	"github.com/luizfilipeschaeffer/omni/internal/presentation/web"
)

// Deps carries the shared infrastructure handed down to the HTTP layer.
type Deps struct {
	Pool     *pgxpool.Pool
	Cache    cacheport.Cache
	Registry *realtime.Registry
	Notifier usecase.Notifier

	NotificationPageSize int
	SendBuffer           int
}

// RegisterRoutes mounts all version 1 API routes under /api/v1.
func RegisterRoutes(r *gin.Engine, d Deps) {
	v1 := r.Group("/api/v1")

	// The websocket endpoint authenticates via its announce frame, and the
	// push ingress is addressed to a user in its body; everything else needs
	// the acting-user header.
	pushHTTP.RegisterRoutes(r, v1, d.Registry, d.SendBuffer)

	authed := v1.Group("", web.RequireUser())
	negotiationHTTP.RegisterRoutes(authed, d.Pool, d.Notifier)
	notificationHTTP.RegisterRoutes(authed, d.Pool, d.Cache, d.NotificationPageSize)
	chatHTTP.RegisterRoutes(authed, d.Pool)
	userHTTP.RegisterRoutes(authed, d.Pool)
}
