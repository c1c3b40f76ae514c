package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"jobmarket-service/internal/models"
)

const paymentColumns = `id, payer_id, announcement_id, amount, qr_code_file_id, confirmed, created_at`

// PaymentRepository abstracts payment slip persistence.
type PaymentRepository interface {
	Create(ctx context.Context, slip models.PaymentSlip) (models.PaymentSlip, error)
	FindByID(ctx context.Context, slipID int) (models.PaymentSlip, error)
	ListByPayer(ctx context.Context, payerID int) ([]models.PaymentSlip, error)
	Confirm(ctx context.Context, slipID int) (models.PaymentSlip, error)
}

// PaymentRepo is a sqlx implementation of PaymentRepository.
type PaymentRepo struct {
	db *sqlx.DB
}

// NewPaymentRepo constructs a PaymentRepo.
func NewPaymentRepo(db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

// Create inserts an unconfirmed payment slip.
func (r *PaymentRepo) Create(ctx context.Context, slip models.PaymentSlip) (models.PaymentSlip, error) {
	var stored models.PaymentSlip
	err := r.db.GetContext(ctx, &stored,
		`INSERT INTO payment_slips (payer_id, announcement_id, amount, qr_code_file_id)
            VALUES ($1, $2, $3, $4) RETURNING `+paymentColumns,
		slip.PayerID, slip.AnnouncementID, slip.Amount, slip.QRCodeFileID)
	return stored, err
}

// FindByID fetches a slip.
func (r *PaymentRepo) FindByID(ctx context.Context, slipID int) (models.PaymentSlip, error) {
	var slip models.PaymentSlip
	err := r.db.GetContext(ctx, &slip,
		`SELECT `+paymentColumns+` FROM payment_slips WHERE id=$1`, slipID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PaymentSlip{}, ErrPaymentNotFound
	}
	return slip, err
}

// ListByPayer returns a user's slips, newest first.
func (r *PaymentRepo) ListByPayer(ctx context.Context, payerID int) ([]models.PaymentSlip, error) {
	var slips []models.PaymentSlip
	err := r.db.SelectContext(ctx, &slips,
		`SELECT `+paymentColumns+` FROM payment_slips WHERE payer_id=$1 ORDER BY created_at DESC, id DESC`,
		payerID)
	return slips, err
}

// Confirm marks a slip confirmed and returns it.
func (r *PaymentRepo) Confirm(ctx context.Context, slipID int) (models.PaymentSlip, error) {
	var slip models.PaymentSlip
	err := r.db.GetContext(ctx, &slip,
		`UPDATE payment_slips SET confirmed=TRUE WHERE id=$1 RETURNING `+paymentColumns, slipID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PaymentSlip{}, ErrPaymentNotFound
	}
	return slip, err
}
