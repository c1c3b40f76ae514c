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

// PaymentHandler records payment slips against announcements.
type PaymentHandler struct {
	paymentRepo repositories.PaymentRepository
	jobRepo     repositories.JobRepository
	audit       *telemetry.AuditEmitter
}

func NewPaymentHandler(paymentRepo repositories.PaymentRepository, jobRepo repositories.JobRepository, audit *telemetry.AuditEmitter) *PaymentHandler {
	return &PaymentHandler{paymentRepo: paymentRepo, jobRepo: jobRepo, audit: audit}
}

// Create records a payment slip by the caller against an announcement.
func (h *PaymentHandler) Create(c *gin.Context) {
	var req struct {
		AnnouncementID int     `json:"job_announcement_id" binding:"required"`
		Amount         float64 `json:"amount" binding:"required,gt=0"`
		QRCodeFileID   *int    `json:"qr_code_file_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.jobRepo.FindByID(c.Request.Context(), req.AnnouncementID); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrAnnouncementNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "job announcement not found"})
		return
	}

	slip, err := h.paymentRepo.Create(c.Request.Context(), models.PaymentSlip{
		PayerID:        c.GetInt("userID"),
		AnnouncementID: req.AnnouncementID,
		Amount:         req.Amount,
		QRCodeFileID:   req.QRCodeFileID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record payment"})
		return
	}

	h.audit.Emit(c.Request.Context(), "INFO",
		fmt.Sprintf("payment slip %d recorded for announcement %d", slip.ID, slip.AnnouncementID),
		requestIDFromContext(c), userIDFromContext(c))
	c.JSON(http.StatusCreated, slip)
}

// Get returns one payment slip to its payer or an admin.
func (h *PaymentHandler) Get(c *gin.Context) {
	slipID, ok := pathID(c, "payment_id")
	if !ok {
		return
	}
	slip, err := h.paymentRepo.FindByID(c.Request.Context(), slipID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "payment not found"})
		return
	}
	if slip.PayerID != c.GetInt("userID") && !c.GetBool("isAdmin") {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your payment"})
		return
	}
	c.JSON(http.StatusOK, slip)
}

// ListMine returns the caller's payment slips.
func (h *PaymentHandler) ListMine(c *gin.Context) {
	slips, err := h.paymentRepo.ListByPayer(c.Request.Context(), c.GetInt("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load payments"})
		return
	}
	if slips == nil {
		slips = []models.PaymentSlip{}
	}
	c.JSON(http.StatusOK, gin.H{"payments": slips})
}

// Confirm marks a slip confirmed. Admin only.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	slipID, ok := pathID(c, "payment_id")
	if !ok {
		return
	}
	slip, err := h.paymentRepo.Confirm(c.Request.Context(), slipID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "payment not found"})
		return
	}

	h.audit.Emit(c.Request.Context(), "INFO",
		fmt.Sprintf("payment slip %d confirmed", slipID),
		requestIDFromContext(c), userIDFromContext(c))
	c.JSON(http.StatusOK, slip)
}
