package realtime

import (
	"encoding/json"
	"log/slog"
	"time"

	notification "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/domain"
)

// eventFrame is the wire shape of one pushed notification: a single JSON
// message per event, no further framing.
type eventFrame struct {
	ID        int64                `json:"id"`
	Type      notification.Type    `json:"type"`
	Payload   notification.Payload `json:"payload"`
	Read      bool                 `json:"read"`
	CreatedAt time.Time            `json:"createdAt"`
}

// Forwarder pushes freshly written notifications to connected recipients via
// the Registry. It satisfies the negotiation layer's Notifier port: failures
// are logged at debug level and otherwise invisible, because the durable log
// plus polling is the correctness backstop.
type Forwarder struct {
	registry *Registry
}

func NewForwarder(registry *Registry) *Forwarder {
	return &Forwarder{registry: registry}
}

func (f *Forwarder) Forward(userID string, n notification.Notification) {
	if f == nil || f.registry == nil {
		return
	}
	payload, err := json.Marshal(eventFrame{
		ID:        n.ID,
		Type:      n.Type,
		Payload:   n.Payload,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	})
	if err != nil {
		slog.Debug("push encode failed", "user", userID, "err", err)
		return
	}
	if !f.registry.Notify(userID, payload) {
		slog.Debug("push skipped, user offline", "user", userID)
	}
}
