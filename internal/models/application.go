package models

import "time"

// Application status values.
const (
	ApplicationPending   = "pending"
	ApplicationAccepted  = "accepted"
	ApplicationRejected  = "rejected"
	ApplicationWithdrawn = "withdrawn"
)

// JobApplication links an applicant to an announcement, with optional
// attachment files.
type JobApplication struct {
	ID                int       `db:"id" json:"id"`
	AnnouncementID    int       `db:"announcement_id" json:"announcement_id"`
	ApplicantID       int       `db:"applicant_id" json:"applicant_id"`
	Status            string    `db:"status" json:"status"`
	ResumeFileID      *int      `db:"resume_file_id" json:"resume_file_id,omitempty"`
	CoverLetterFileID *int      `db:"cover_letter_file_id" json:"cover_letter_file_id,omitempty"`
	TranscriptFileID  *int      `db:"transcript_file_id" json:"transcript_file_id,omitempty"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}
