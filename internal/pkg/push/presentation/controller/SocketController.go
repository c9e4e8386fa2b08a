package controller

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/luizfilipeschaeffer/omni/internal/infrastructure/realtime"
)

// SocketController handles the websocket endpoint for realtime notification
// delivery. The client identifies itself with a single announce frame right
// after the upgrade; everything after that flows server-to-client.
type SocketController struct {
	registry   *realtime.Registry
	sendBuffer int
}

func NewSocketController(registry *realtime.Registry, sendBuffer int) *SocketController {
	return &SocketController{registry: registry, sendBuffer: sendBuffer}
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for now; plug a proper checker when auth is added.
		return true
	},
}

type announceFrame struct {
	UserID string `json:"userId"`
}

const (
	announceTimeout = 10 * time.Second
	readTimeout     = 60 * time.Second
)

// Handle upgrades the HTTP connection, waits for the announce frame and keeps
// the connection registered until the client disconnects.
func (ctl *SocketController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the response; just log and return.
			return
		}

		// The first frame must carry the user id. Frames before it are not
		// deliverable, so an unannounced socket gets a short deadline.
		_ = ws.SetReadDeadline(time.Now().Add(announceTimeout))
		_, data, err := ws.ReadMessage()
		if err != nil {
			_ = ws.Close()
			return
		}
		var announce announceFrame
		if err := json.Unmarshal(data, &announce); err != nil || announce.UserID == "" {
			_ = ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "announce frame required"),
				time.Now().Add(time.Second))
			_ = ws.Close()
			return
		}

		conn := realtime.NewConnection(announce.UserID, ws, ctl.sendBuffer)
		ctl.registry.Attach(conn)
		defer func() {
			ctl.registry.Detach(conn)
			conn.Close(websocket.CloseNormalClosure, "session closed")
		}()

		slog.Debug("push socket announced", "user_id", announce.UserID, "conn_id", conn.ID)

		ws.SetReadLimit(1 << 20) // 1MB payload cap
		_ = ws.SetReadDeadline(time.Now().Add(readTimeout))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(readTimeout))
		})

		// Receive-only channel: drain further frames so pings and close
		// handshakes are processed, but ignore their content.
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}
}
