package models

import "time"

// PaymentSlip records a payment made against an announcement, with an
// optional QR code file attached by the payer.
type PaymentSlip struct {
	ID             int       `db:"id" json:"id"`
	PayerID        int       `db:"payer_id" json:"payer_id"`
	AnnouncementID int       `db:"announcement_id" json:"announcement_id"`
	Amount         float64   `db:"amount" json:"amount"`
	QRCodeFileID   *int      `db:"qr_code_file_id" json:"qr_code_file_id,omitempty"`
	Confirmed      bool      `db:"confirmed" json:"confirmed"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
