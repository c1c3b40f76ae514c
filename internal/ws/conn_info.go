package ws

import (
	"time"

	"github.com/google/uuid"
)

// ConnInfo identifies one websocket connection to a chat room. It is
// kept alongside the connection for event payloads and diagnostics.
type ConnInfo struct {
	ConnID      string
	UserID      int
	DeviceID    string
	IP          string
	RequestID   string
	TraceID     string
	ConnectedAt time.Time
}

func newConnID() string {
	return uuid.NewString()
}
