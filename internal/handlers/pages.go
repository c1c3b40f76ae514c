package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobmarket-service/internal/pagination"
	"jobmarket-service/internal/repositories"
)

// PageHandler renders the server-side HTML views. The pages are thin;
// they call back into the JSON API and the websocket endpoint for
// anything dynamic.
type PageHandler struct {
	jobRepo  repositories.JobRepository
	roomRepo repositories.ChatRoomRepository
}

func NewPageHandler(jobRepo repositories.JobRepository, roomRepo repositories.ChatRoomRepository) *PageHandler {
	return &PageHandler{jobRepo: jobRepo, roomRepo: roomRepo}
}

// JobsPage renders the announcement listing.
func (h *PageHandler) JobsPage(c *gin.Context) {
	params := pageParams(c)
	jobs, total, err := h.jobRepo.ListPage(c.Request.Context(), 0, params)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"message": "failed to load job announcements"})
		return
	}
	page := pagination.New(jobs, total, params, c.Request.URL.Path)
	c.HTML(http.StatusOK, "jobs.html", gin.H{
		"Jobs": jobs,
		"Meta": page.Meta,
	})
}

// RoomPage renders a chat room shell; messages arrive over the
// websocket.
func (h *PageHandler) RoomPage(c *gin.Context) {
	roomID, ok := pathID(c, "room_id")
	if !ok {
		return
	}
	detail, err := h.roomRepo.GetDetail(c.Request.Context(), roomID)
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"message": "chat room not found"})
		return
	}
	c.HTML(http.StatusOK, "room.html", gin.H{"Room": detail})
}
