package models

import "time"

// FileItem is an uploaded artifact: avatar, announcement picture,
// application attachment or payment QR code. The blob itself lives in
// the configured blob store under Path.
type FileItem struct {
	ID        int       `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Type      string    `db:"type" json:"type"`
	Path      string    `db:"path" json:"path"`
	OwnerID   int       `db:"owner_id" json:"owner_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
