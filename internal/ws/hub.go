package ws

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"jobmarket-service/internal/models"
	"jobmarket-service/internal/observability"
)

// Hub maintains active websocket connections per chat room.
type Hub struct {
	rooms    map[int]map[*websocket.Conn]bool
	connInfo map[int]map[*websocket.Conn]ConnInfo
	mu       sync.RWMutex
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		rooms:    make(map[int]map[*websocket.Conn]bool),
		connInfo: make(map[int]map[*websocket.Conn]ConnInfo),
	}
}

// AddClient registers a websocket connection to a room.
func (h *Hub) AddClient(roomID int, conn *websocket.Conn, info ConnInfo) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.rooms[roomID]; !ok {
		h.rooms[roomID] = make(map[*websocket.Conn]bool)
	}
	h.rooms[roomID][conn] = true
	if _, ok := h.connInfo[roomID]; !ok {
		h.connInfo[roomID] = make(map[*websocket.Conn]ConnInfo)
	}
	h.connInfo[roomID][conn] = info
}

// RemoveClient removes a websocket connection from a room.
func (h *Hub) RemoveClient(roomID int, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.rooms[roomID]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.rooms, roomID)
		}
	}
	if infos, ok := h.connInfo[roomID]; ok {
		delete(infos, conn)
		if len(infos) == 0 {
			delete(h.connInfo, roomID)
		}
	}
}

// BroadcastMessage sends a new message to all clients in its room.
func (h *Hub) BroadcastMessage(roomID int, msg models.Message) {
	h.broadcast(roomID, models.RoomEvent{Type: "message", Message: &msg})
}

// BroadcastMessageDeleted notifies clients that a message was removed.
func (h *Hub) BroadcastMessageDeleted(roomID int, messageID int) {
	h.broadcast(roomID, models.RoomEvent{Type: "message_deleted", MessageID: messageID})
}

// BroadcastRoomDeleted notifies clients that the room itself is gone.
func (h *Hub) BroadcastRoomDeleted(roomID int) {
	h.broadcast(roomID, models.RoomEvent{Type: "room_deleted", RoomID: roomID})
}

func (h *Hub) broadcast(roomID int, event models.RoomEvent) {
	conns := h.roomConns(roomID)

	payload, _ := json.Marshal(event)
	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("websocket write error: %v", err)
			conn.Close()
			h.RemoveClient(roomID, conn)
			h.publishWSError(roomID, conn, err)
		}
	}
}

// roomConns snapshots the room membership so writes happen outside the
// lock while AddClient and RemoveClient keep mutating the map.
func (h *Hub) roomConns(roomID int) []*websocket.Conn {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns := make([]*websocket.Conn, 0, len(h.rooms[roomID]))
	for conn := range h.rooms[roomID] {
		conns = append(conns, conn)
	}
	return conns
}

func (h *Hub) publishWSError(roomID int, conn *websocket.Conn, err error) {
	info, ok := h.getConnInfo(roomID, conn)
	if !ok {
		return
	}

	payload := map[string]interface{}{
		"ws": map[string]interface{}{
			"room_id":     roomID,
			"event":       "ws_error",
			"conn_id":     info.ConnID,
			"duration_ms": time.Since(info.ConnectedAt).Milliseconds(),
			"reason":      err.Error(),
		},
		"identity": map[string]interface{}{
			"user_id":   info.UserID,
			"device_id": info.DeviceID,
			"ip":        info.IP,
		},
	}

	headers := observability.BuildHeaders(info.RequestID, info.TraceID)
	_ = observability.PublishEvent(context.Background(), "ws_events.rooms", observability.EventEnvelope{
		EventType: "ws_events",
		EventName: "ws_error",
		Payload:   payload,
	}, headers)
	observability.IncWSEvent("ws_error")
}

func (h *Hub) getConnInfo(roomID int, conn *websocket.Conn) (ConnInfo, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if infos, ok := h.connInfo[roomID]; ok {
		info, exists := infos[conn]
		return info, exists
	}
	return ConnInfo{}, false
}
