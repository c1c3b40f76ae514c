package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobmarket-service/internal/models"
	"jobmarket-service/internal/repositories"
	"jobmarket-service/internal/telemetry"
)

// ApplicationHandler serves job applications and their status flow.
type ApplicationHandler struct {
	appRepo repositories.ApplicationRepository
	jobRepo repositories.JobRepository
	audit   *telemetry.AuditEmitter
}

func NewApplicationHandler(appRepo repositories.ApplicationRepository, jobRepo repositories.JobRepository, audit *telemetry.AuditEmitter) *ApplicationHandler {
	return &ApplicationHandler{appRepo: appRepo, jobRepo: jobRepo, audit: audit}
}

// Create submits an application to an announcement. Owners cannot
// apply to their own postings, and a user applies at most once.
func (h *ApplicationHandler) Create(c *gin.Context) {
	announcementID, ok := pathID(c, "announcement_id")
	if !ok {
		return
	}

	var req struct {
		ResumeFileID      *int `json:"resume_file_id"`
		CoverLetterFileID *int `json:"cover_letter_file_id"`
		TranscriptFileID  *int `json:"transcript_file_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetInt("userID")
	announcement, err := h.jobRepo.FindByID(c.Request.Context(), announcementID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrAnnouncementNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "job announcement not found"})
		return
	}
	if announcement.OwnerID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot apply to your own announcement"})
		return
	}

	app, err := h.appRepo.Create(c.Request.Context(), models.JobApplication{
		AnnouncementID:    announcementID,
		ApplicantID:       userID,
		Status:            models.ApplicationPending,
		ResumeFileID:      req.ResumeFileID,
		CoverLetterFileID: req.CoverLetterFileID,
		TranscriptFileID:  req.TranscriptFileID,
	})
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "already applied to this announcement"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create application"})
		return
	}

	h.audit.Emit(c.Request.Context(), "INFO",
		fmt.Sprintf("application %d submitted to announcement %d", app.ID, announcementID),
		requestIDFromContext(c), userIDFromContext(c))
	c.JSON(http.StatusCreated, app)
}

// ListByAnnouncement returns an announcement's applications to its
// owner.
func (h *ApplicationHandler) ListByAnnouncement(c *gin.Context) {
	announcementID, ok := pathID(c, "announcement_id")
	if !ok {
		return
	}

	announcement, err := h.jobRepo.FindByID(c.Request.Context(), announcementID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrAnnouncementNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "job announcement not found"})
		return
	}
	if announcement.OwnerID != c.GetInt("userID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "not the announcement owner"})
		return
	}

	apps, err := h.appRepo.ListByAnnouncement(c.Request.Context(), announcementID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load applications"})
		return
	}
	if apps == nil {
		apps = []models.JobApplication{}
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// ListMine returns the caller's own applications.
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	apps, err := h.appRepo.ListByApplicant(c.Request.Context(), c.GetInt("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load applications"})
		return
	}
	if apps == nil {
		apps = []models.JobApplication{}
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// UpdateStatus moves an application through its status flow. The
// announcement owner accepts or rejects; the applicant withdraws.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	applicationID, ok := pathID(c, "application_id")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required,oneof=accepted rejected withdrawn"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.appRepo.FindByID(c.Request.Context(), applicationID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "application not found"})
		return
	}

	userID := c.GetInt("userID")
	if req.Status == models.ApplicationWithdrawn {
		if app.ApplicantID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "only the applicant can withdraw"})
			return
		}
	} else {
		announcement, err := h.jobRepo.FindByID(c.Request.Context(), app.AnnouncementID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load announcement"})
			return
		}
		if announcement.OwnerID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "not the announcement owner"})
			return
		}
	}
	if app.Status != models.ApplicationPending {
		c.JSON(http.StatusConflict, gin.H{"error": "application already " + app.Status})
		return
	}

	updated, err := h.appRepo.UpdateStatus(c.Request.Context(), applicationID, req.Status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update application"})
		return
	}

	h.audit.Emit(c.Request.Context(), "INFO",
		fmt.Sprintf("application %d marked %s", applicationID, req.Status),
		requestIDFromContext(c), userIDFromContext(c))
	c.JSON(http.StatusOK, updated)
}
