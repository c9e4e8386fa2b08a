package realtime

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Registry is the process-local directory of live push connections, keyed by
// user ID with at most one connection per user. It is created at service start
// and passed to whatever needs to attach or forward; there is no package-level
// instance.
//
// The lock is never held across a network write: Notify hands the payload to
// the connection's buffered send channel and returns.
type Registry struct {
	mu    sync.RWMutex
	users map[string]*Connection
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{users: make(map[string]*Connection)}
}

// Attach registers a connection for its user. If a previous connection exists
// it is replaced and closed after the swap, enforcing one active socket per
// user.
func (r *Registry) Attach(conn *Connection) {
	r.mu.Lock()
	previous := r.users[conn.UserID]
	r.users[conn.UserID] = conn
	r.mu.Unlock()

	conn.Start()

	if previous != nil && previous != conn {
		previous.Close(4001, "session replaced")
	}
}

// Detach removes the mapping only when it still points at conn, so a close
// racing a newer Attach for the same user never evicts the fresh connection.
func (r *Registry) Detach(conn *Connection) {
	r.mu.Lock()
	if current, ok := r.users[conn.UserID]; ok && current == conn {
		delete(r.users, conn.UserID)
	}
	r.mu.Unlock()
}

// Notify delivers payload to the current connection of the given user.
// It reports false when the user is offline or the connection refused the
// write; the caller treats both the same way.
func (r *Registry) Notify(userID string, payload []byte) bool {
	r.mu.RLock()
	conn := r.users[userID]
	r.mu.RUnlock()
	if conn == nil {
		return false
	}
	if err := conn.Send(payload); err != nil {
		// Send already closed the connection on failure; drop the stale entry.
		r.Detach(conn)
		return false
	}
	return true
}

// Online reports whether the user currently has a registered connection.
func (r *Registry) Online(userID string) bool {
	r.mu.RLock()
	_, ok := r.users[userID]
	r.mu.RUnlock()
	return ok
}

// Len returns the number of registered connections.
func (r *Registry) Len() int {
	r.mu.RLock()
	n := len(r.users)
	r.mu.RUnlock()
	return n
}

// Close terminates all tracked connections and clears the directory. Used at
// shutdown to drain the push layer deterministically.
func (r *Registry) Close() {
	r.mu.Lock()
	conns := make([]*Connection, 0, len(r.users))
	for _, conn := range r.users {
		conns = append(conns, conn)
	}
	r.users = make(map[string]*Connection)
	r.mu.Unlock()

	for _, conn := range conns {
		conn.Close(websocket.CloseGoingAway, "server shutdown")
	}
}
