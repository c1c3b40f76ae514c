package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobmarket-service/internal/models"
	"jobmarket-service/internal/pagination"
	"jobmarket-service/internal/repositories"
	"jobmarket-service/internal/telemetry"
)

// JobHandler serves CRUD on job announcements.
type JobHandler struct {
	jobRepo repositories.JobRepository
	audit   *telemetry.AuditEmitter
}

func NewJobHandler(jobRepo repositories.JobRepository, audit *telemetry.AuditEmitter) *JobHandler {
	return &JobHandler{jobRepo: jobRepo, audit: audit}
}

type jobRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description" binding:"required"`
	Company       string `json:"company" binding:"required"`
	Location      string `json:"location"`
	SalaryMin     *int   `json:"salary_min"`
	SalaryMax     *int   `json:"salary_max"`
	PictureFileID *int   `json:"picture_file_id"`
}

// Create posts a new announcement owned by the caller.
func (h *JobHandler) Create(c *gin.Context) {
	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.SalaryMin != nil && req.SalaryMax != nil && *req.SalaryMin > *req.SalaryMax {
		c.JSON(http.StatusBadRequest, gin.H{"error": "salary_min cannot exceed salary_max"})
		return
	}

	announcement, err := h.jobRepo.Create(c.Request.Context(), models.JobAnnouncement{
		OwnerID:       c.GetInt("userID"),
		Title:         req.Title,
		Description:   req.Description,
		Company:       req.Company,
		Location:      req.Location,
		SalaryMin:     req.SalaryMin,
		SalaryMax:     req.SalaryMax,
		PictureFileID: req.PictureFileID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create job announcement"})
		return
	}

	h.audit.Emit(c.Request.Context(), "INFO",
		fmt.Sprintf("job announcement %d created", announcement.ID),
		requestIDFromContext(c), userIDFromContext(c))
	c.JSON(http.StatusCreated, announcement)
}

// Get returns one announcement joined with its owner.
func (h *JobHandler) Get(c *gin.Context) {
	announcementID, ok := pathID(c, "announcement_id")
	if !ok {
		return
	}
	detail, err := h.jobRepo.FindByIDWithOwner(c.Request.Context(), announcementID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrAnnouncementNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "job announcement not found"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// List returns a page of all announcements.
func (h *JobHandler) List(c *gin.Context) {
	h.list(c, 0)
}

// ListByOwner returns a page of one user's announcements.
func (h *JobHandler) ListByOwner(c *gin.Context) {
	ownerID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	h.list(c, ownerID)
}

func (h *JobHandler) list(c *gin.Context, ownerID int) {
	params := pageParams(c)
	jobs, total, err := h.jobRepo.ListPage(c.Request.Context(), ownerID, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load job announcements"})
		return
	}
	c.JSON(http.StatusOK, pagination.New(jobs, total, params, c.Request.URL.Path))
}

// Update replaces an announcement's fields. Owner only.
func (h *JobHandler) Update(c *gin.Context) {
	announcementID, ok := pathID(c, "announcement_id")
	if !ok {
		return
	}

	existing, err := h.jobRepo.FindByID(c.Request.Context(), announcementID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrAnnouncementNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "job announcement not found"})
		return
	}
	if existing.OwnerID != c.GetInt("userID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "not the announcement owner"})
		return
	}

	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.SalaryMin != nil && req.SalaryMax != nil && *req.SalaryMin > *req.SalaryMax {
		c.JSON(http.StatusBadRequest, gin.H{"error": "salary_min cannot exceed salary_max"})
		return
	}

	updated, err := h.jobRepo.Update(c.Request.Context(), models.JobAnnouncement{
		ID:            announcementID,
		Title:         req.Title,
		Description:   req.Description,
		Company:       req.Company,
		Location:      req.Location,
		SalaryMin:     req.SalaryMin,
		SalaryMax:     req.SalaryMax,
		PictureFileID: req.PictureFileID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update job announcement"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes an announcement. Owner only. Applications, payment
// slips and chat rooms referring to it cascade away.
func (h *JobHandler) Delete(c *gin.Context) {
	announcementID, ok := pathID(c, "announcement_id")
	if !ok {
		return
	}

	existing, err := h.jobRepo.FindByID(c.Request.Context(), announcementID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrAnnouncementNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "job announcement not found"})
		return
	}
	if existing.OwnerID != c.GetInt("userID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "not the announcement owner"})
		return
	}

	if err := h.jobRepo.Delete(c.Request.Context(), announcementID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete job announcement"})
		return
	}

	h.audit.Emit(c.Request.Context(), "INFO",
		fmt.Sprintf("job announcement %d deleted", announcementID),
		requestIDFromContext(c), userIDFromContext(c))
	c.Status(http.StatusNoContent)
}
