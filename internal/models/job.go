package models

import "time"

// JobAnnouncement is a posting owned by a recruiter.
type JobAnnouncement struct {
	ID            int       `db:"id" json:"id"`
	OwnerID       int       `db:"owner_id" json:"owner_id"`
	Title         string    `db:"title" json:"title"`
	Description   string    `db:"description" json:"description"`
	Company       string    `db:"company" json:"company"`
	Location      string    `db:"location" json:"location"`
	SalaryMin     *int      `db:"salary_min" json:"salary_min,omitempty"`
	SalaryMax     *int      `db:"salary_max" json:"salary_max,omitempty"`
	PictureFileID *int      `db:"picture_file_id" json:"picture_file_id,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// AnnouncementDetail joins the posting with its owner.
type AnnouncementDetail struct {
	JobAnnouncement
	Owner Participant `db:"owner" json:"owner"`
}

// AnnouncementSummary is the compact shape embedded in chat room views.
type AnnouncementSummary struct {
	ID      int    `db:"id" json:"id"`
	Title   string `db:"title" json:"title"`
	Company string `db:"company" json:"company"`
}
