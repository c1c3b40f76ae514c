package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"jobmarket-service/internal/models"
)

const applicationColumns = `id, announcement_id, applicant_id, status,
    resume_file_id, cover_letter_file_id, transcript_file_id, created_at`

// ApplicationRepository abstracts job application persistence.
type ApplicationRepository interface {
	Create(ctx context.Context, app models.JobApplication) (models.JobApplication, error)
	FindByID(ctx context.Context, applicationID int) (models.JobApplication, error)
	ListByAnnouncement(ctx context.Context, announcementID int) ([]models.JobApplication, error)
	ListByApplicant(ctx context.Context, applicantID int) ([]models.JobApplication, error)
	UpdateStatus(ctx context.Context, applicationID int, status string) (models.JobApplication, error)
}

// ApplicationRepo is a sqlx implementation of ApplicationRepository.
type ApplicationRepo struct {
	db *sqlx.DB
}

// NewApplicationRepo constructs an ApplicationRepo.
func NewApplicationRepo(db *sqlx.DB) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// Create inserts an application in pending status. A second application
// by the same user to the same announcement hits the unique constraint.
func (r *ApplicationRepo) Create(ctx context.Context, app models.JobApplication) (models.JobApplication, error) {
	var stored models.JobApplication
	query := `INSERT INTO job_applications
            (announcement_id, applicant_id, resume_file_id, cover_letter_file_id, transcript_file_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + applicationColumns
	err := r.db.GetContext(ctx, &stored, query,
		app.AnnouncementID, app.ApplicantID,
		app.ResumeFileID, app.CoverLetterFileID, app.TranscriptFileID)
	return stored, err
}

// FindByID fetches an application.
func (r *ApplicationRepo) FindByID(ctx context.Context, applicationID int) (models.JobApplication, error) {
	var app models.JobApplication
	err := r.db.GetContext(ctx, &app,
		`SELECT `+applicationColumns+` FROM job_applications WHERE id=$1`, applicationID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.JobApplication{}, ErrApplicationNotFound
	}
	return app, err
}

// ListByAnnouncement returns applications for a posting.
func (r *ApplicationRepo) ListByAnnouncement(ctx context.Context, announcementID int) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.db.SelectContext(ctx, &apps,
		`SELECT `+applicationColumns+` FROM job_applications WHERE announcement_id=$1 ORDER BY created_at ASC, id ASC`,
		announcementID)
	return apps, err
}

// ListByApplicant returns a user's applications.
func (r *ApplicationRepo) ListByApplicant(ctx context.Context, applicantID int) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.db.SelectContext(ctx, &apps,
		`SELECT `+applicationColumns+` FROM job_applications WHERE applicant_id=$1 ORDER BY created_at DESC, id DESC`,
		applicantID)
	return apps, err
}

// UpdateStatus moves an application to a new status and returns it.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, applicationID int, status string) (models.JobApplication, error) {
	var app models.JobApplication
	err := r.db.GetContext(ctx, &app,
		`UPDATE job_applications SET status=$2 WHERE id=$1 RETURNING `+applicationColumns,
		applicationID, status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.JobApplication{}, ErrApplicationNotFound
	}
	return app, err
}
