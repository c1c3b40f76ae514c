package ws

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"

	"jobmarket-service/internal/auth"
	"jobmarket-service/internal/observability"
	"jobmarket-service/internal/repositories"
)

// RoomWebSocketHandler handles chat room websocket connections.
type RoomWebSocketHandler struct {
	hub      *Hub
	roomRepo repositories.ChatRoomRepository
	tokens   *auth.TokenManager
}

// NewRoomWebSocketHandler constructs a RoomWebSocketHandler.
func NewRoomWebSocketHandler(hub *Hub, roomRepo repositories.ChatRoomRepository, tokens *auth.TokenManager) *RoomWebSocketHandler {
	return &RoomWebSocketHandler{hub: hub, roomRepo: roomRepo, tokens: tokens}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handle upgrades the connection and registers the client after a
// participant check against the room.
func (h *RoomWebSocketHandler) Handle(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("room_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	ctx, span := otel.Tracer("jobmarket-service/ws").Start(c.Request.Context(), "ws.handshake")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	token := c.GetHeader("Authorization")
	if token == "" {
		token = c.Query("token")
		if token != "" {
			token = "Bearer " + token
		}
	}

	userID, err := h.validateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	room, err := h.roomRepo.Get(c.Request.Context(), roomID)
	if err != nil || !room.IsParticipant(userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized for room"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	traceID := span.SpanContext().TraceID().String()
	requestID := observability.RequestIDFromRequest(c.Request)
	info := ConnInfo{
		ConnID:      newConnID(),
		UserID:      userID,
		DeviceID:    observability.DeviceIDFromRequest(c.Request),
		IP:          observability.IPFromRequest(c.Request),
		RequestID:   requestID,
		TraceID:     traceID,
		ConnectedAt: time.Now(),
	}
	h.hub.AddClient(roomID, conn, info)

	observability.IncWSActive()
	observability.IncWSEvent("ws_connect")
	_ = observability.PublishEvent(ctx, "ws_events.rooms", observability.EventEnvelope{
		EventType: "ws_events",
		EventName: "ws_connect",
		Payload:   wsPayload(roomID, "ws_connect", info, 0, ""),
	}, observability.BuildHeaders(requestID, traceID))

	// Drain reads until the peer goes away, then clean up.
	go func() {
		var closeReason string
		defer func() {
			h.hub.RemoveClient(roomID, conn)
			observability.DecWSActive()
			observability.IncWSEvent("ws_disconnect")
			_ = observability.PublishEvent(ctx, "ws_events.rooms", observability.EventEnvelope{
				EventType: "ws_events",
				EventName: "ws_disconnect",
				Payload:   wsPayload(roomID, "ws_disconnect", info, time.Since(info.ConnectedAt).Milliseconds(), closeReason),
			}, observability.BuildHeaders(requestID, traceID))
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				closeReason = err.Error()
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					observability.IncWSEvent("ws_error")
					_ = observability.PublishEvent(ctx, "ws_events.rooms", observability.EventEnvelope{
						EventType: "ws_events",
						EventName: "ws_error",
						Payload:   wsPayload(roomID, "ws_error", info, time.Since(info.ConnectedAt).Milliseconds(), closeReason),
					}, observability.BuildHeaders(requestID, traceID))
				}
				return
			}
		}
	}()
}

func (h *RoomWebSocketHandler) validateToken(header string) (int, error) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 {
		return 0, auth.ErrInvalidToken
	}
	claims, err := h.tokens.Verify(parts[1])
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

func wsPayload(roomID int, event string, info ConnInfo, durationMS int64, reason string) map[string]interface{} {
	return map[string]interface{}{
		"ws": map[string]interface{}{
			"room_id":     roomID,
			"event":       event,
			"conn_id":     info.ConnID,
			"duration_ms": durationMS,
			"reason":      reason,
		},
		"identity": map[string]interface{}{
			"user_id":   info.UserID,
			"device_id": info.DeviceID,
			"ip":        info.IP,
		},
	}
}
