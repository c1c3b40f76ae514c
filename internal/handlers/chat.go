package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobmarket-service/internal/models"
	"jobmarket-service/internal/observability"
	"jobmarket-service/internal/pagination"
	"jobmarket-service/internal/repositories"
	"jobmarket-service/internal/telemetry"
	"jobmarket-service/internal/ws"
)

// ChatHandler manages chat rooms and their messages. Authorization
// fields (recruiter id, applicant id, sender id) are re-read from
// storage on every call before a mutation is allowed.
type ChatHandler struct {
	roomRepo    repositories.ChatRoomRepository
	messageRepo repositories.MessageRepository
	userRepo    repositories.UserRepository
	jobRepo     repositories.JobRepository
	hub         *ws.Hub
	audit       *telemetry.AuditEmitter
}

// NewChatHandler builds a ChatHandler.
func NewChatHandler(roomRepo repositories.ChatRoomRepository, messageRepo repositories.MessageRepository, userRepo repositories.UserRepository, jobRepo repositories.JobRepository, hub *ws.Hub, audit *telemetry.AuditEmitter) *ChatHandler {
	return &ChatHandler{
		roomRepo:    roomRepo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		jobRepo:     jobRepo,
		hub:         hub,
		audit:       audit,
	}
}

// CreateRoom opens a chat room between the caller (as recruiter) and an
// applicant about one of the caller's announcements.
func (h *ChatHandler) CreateRoom(c *gin.Context) {
	var req struct {
		ApplicantID    int `json:"applicant_id" binding:"required"`
		AnnouncementID int `json:"job_announcement_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetInt("userID")
	if userID == req.ApplicantID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot create chat with yourself"})
		return
	}

	if _, err := h.userRepo.FindByID(c.Request.Context(), req.ApplicantID); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrUserNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "applicant not found"})
		return
	}

	announcement, err := h.jobRepo.FindByIDWithOwner(c.Request.Context(), req.AnnouncementID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrAnnouncementNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "job announcement not found"})
		return
	}
	if announcement.OwnerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "must own the job announcement to create a chat room"})
		return
	}

	room, err := h.roomRepo.Create(c.Request.Context(), userID, req.ApplicantID, req.AnnouncementID)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "chat room already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create chat room"})
		return
	}

	h.audit.Emit(c.Request.Context(), "INFO",
		fmt.Sprintf("chat room %d created for announcement %d", room.ID, room.AnnouncementID),
		requestIDFromContext(c), userIDFromContext(c))
	c.JSON(http.StatusCreated, room)
}

// GetRoom returns one room joined with participants and announcement.
func (h *ChatHandler) GetRoom(c *gin.Context) {
	roomID, ok := pathID(c, "room_id")
	if !ok {
		return
	}

	detail, err := h.roomRepo.GetDetail(c.Request.Context(), roomID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrRoomNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "chat room not found"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ListRooms returns all rooms matching the filter derived from the
// route, joined with participants and announcement.
func (h *ChatHandler) ListRooms(c *gin.Context) {
	filter, ok := h.roomFilter(c)
	if !ok {
		return
	}

	rooms, err := h.roomRepo.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load chat rooms"})
		return
	}
	if rooms == nil {
		rooms = []models.RoomDetail{}
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// ListRoomsPage returns a page of rooms matching the route filter.
func (h *ChatHandler) ListRoomsPage(c *gin.Context) {
	filter, ok := h.roomFilter(c)
	if !ok {
		return
	}
	params := pageParams(c)

	rooms, total, err := h.roomRepo.ListPage(c.Request.Context(), filter, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load chat rooms"})
		return
	}
	c.JSON(http.StatusOK, pagination.New(rooms, total, params, c.Request.URL.Path))
}

// roomFilter derives the listing filter from route params. Routes with
// a user or announcement segment use it; "mine" uses the caller.
func (h *ChatHandler) roomFilter(c *gin.Context) (repositories.RoomFilter, bool) {
	var filter repositories.RoomFilter
	switch {
	case c.Param("recruiter_id") != "":
		id, ok := pathID(c, "recruiter_id")
		if !ok {
			return filter, false
		}
		filter.RecruiterID = id
	case c.Param("applicant_id") != "":
		id, ok := pathID(c, "applicant_id")
		if !ok {
			return filter, false
		}
		filter.ApplicantID = id
	case c.Param("announcement_id") != "":
		id, ok := pathID(c, "announcement_id")
		if !ok {
			return filter, false
		}
		filter.AnnouncementID = id
	case strings.Contains(c.FullPath(), "/mine"):
		filter.MemberID = c.GetInt("userID")
	}
	return filter, true
}

// DeleteRoom removes a room; either participant may do it. Messages
// cascade away with the room.
func (h *ChatHandler) DeleteRoom(c *gin.Context) {
	roomID, ok := pathID(c, "room_id")
	if !ok {
		return
	}

	userID := c.GetInt("userID")
	room, err := h.roomRepo.Get(c.Request.Context(), roomID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrRoomNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "chat room not found"})
		return
	}
	if !room.IsParticipant(userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not a room participant"})
		return
	}

	if err := h.roomRepo.Delete(c.Request.Context(), roomID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete chat room"})
		return
	}

	h.hub.BroadcastRoomDeleted(roomID)
	h.audit.Emit(c.Request.Context(), "INFO",
		fmt.Sprintf("chat room %d deleted", roomID),
		requestIDFromContext(c), userIDFromContext(c))
	c.Status(http.StatusNoContent)
}

// PostMessage stores a message in a room and broadcasts it.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	roomID, userID, ok := h.requireParticipant(c)
	if !ok {
		return
	}

	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.messageRepo.Create(c.Request.Context(), roomID, userID, req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store message"})
		return
	}

	observability.IncChatMessage("create")
	h.hub.BroadcastMessage(roomID, msg)
	c.JSON(http.StatusCreated, msg)
}

// ListMessages returns all messages of a room, insertion order, to a
// participant.
func (h *ChatHandler) ListMessages(c *gin.Context) {
	roomID, _, ok := h.requireParticipant(c)
	if !ok {
		return
	}

	msgs, err := h.messageRepo.ListByRoom(c.Request.Context(), roomID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
		return
	}
	if msgs == nil {
		msgs = []models.Message{}
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// ListMessagesPage returns one page of a room's messages to a
// participant.
func (h *ChatHandler) ListMessagesPage(c *gin.Context) {
	roomID, _, ok := h.requireParticipant(c)
	if !ok {
		return
	}
	params := pageParams(c)

	msgs, total, err := h.messageRepo.ListPageByRoom(c.Request.Context(), roomID, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
		return
	}
	c.JSON(http.StatusOK, pagination.New(msgs, total, params, c.Request.URL.Path))
}

// GetMessage returns one message joined with room and sender, to a
// participant of its room.
func (h *ChatHandler) GetMessage(c *gin.Context) {
	messageID, ok := pathID(c, "message_id")
	if !ok {
		return
	}

	detail, err := h.messageRepo.GetDetail(c.Request.Context(), messageID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrMessageNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "message not found"})
		return
	}
	if !detail.Room.IsParticipant(c.GetInt("userID")) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not a room participant"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// DeleteMessage removes a message; only its sender may do it.
func (h *ChatHandler) DeleteMessage(c *gin.Context) {
	messageID, ok := pathID(c, "message_id")
	if !ok {
		return
	}

	userID := c.GetInt("userID")
	msg, err := h.messageRepo.Get(c.Request.Context(), messageID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrMessageNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "message not found"})
		return
	}
	if msg.SenderID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the sender can delete a message"})
		return
	}

	if err := h.messageRepo.Delete(c.Request.Context(), messageID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete message"})
		return
	}

	observability.IncChatMessage("delete")
	h.hub.BroadcastMessageDeleted(msg.RoomID, messageID)
	c.JSON(http.StatusOK, msg)
}

// requireParticipant resolves the room id from the path and verifies
// the caller is a participant.
func (h *ChatHandler) requireParticipant(c *gin.Context) (int, int, bool) {
	roomID, ok := pathID(c, "room_id")
	if !ok {
		return 0, 0, false
	}

	userID := c.GetInt("userID")
	room, err := h.roomRepo.Get(c.Request.Context(), roomID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrRoomNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "chat room not found"})
		return 0, 0, false
	}
	if !room.IsParticipant(userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not a room participant"})
		return 0, 0, false
	}
	return roomID, userID, true
}
