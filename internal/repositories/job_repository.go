package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"jobmarket-service/internal/models"
	"jobmarket-service/internal/pagination"
)

const announcementColumns = `id, owner_id, title, description, company, location,
    salary_min, salary_max, picture_file_id, created_at`

// JobRepository abstracts job announcement persistence.
type JobRepository interface {
	Create(ctx context.Context, a models.JobAnnouncement) (models.JobAnnouncement, error)
	FindByID(ctx context.Context, announcementID int) (models.JobAnnouncement, error)
	FindByIDWithOwner(ctx context.Context, announcementID int) (models.AnnouncementDetail, error)
	List(ctx context.Context, ownerID int) ([]models.JobAnnouncement, error)
	ListPage(ctx context.Context, ownerID int, p pagination.Params) ([]models.JobAnnouncement, int, error)
	Update(ctx context.Context, a models.JobAnnouncement) (models.JobAnnouncement, error)
	Delete(ctx context.Context, announcementID int) error
}

// JobRepo is a sqlx implementation of JobRepository.
type JobRepo struct {
	db *sqlx.DB
}

// NewJobRepo constructs a JobRepo.
func NewJobRepo(db *sqlx.DB) *JobRepo {
	return &JobRepo{db: db}
}

// Create inserts an announcement owned by a.OwnerID.
func (r *JobRepo) Create(ctx context.Context, a models.JobAnnouncement) (models.JobAnnouncement, error) {
	var stored models.JobAnnouncement
	query := `INSERT INTO job_announcements (owner_id, title, description, company, location,
            salary_min, salary_max, picture_file_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + announcementColumns
	err := r.db.GetContext(ctx, &stored, query,
		a.OwnerID, a.Title, a.Description, a.Company, a.Location,
		a.SalaryMin, a.SalaryMax, a.PictureFileID)
	return stored, err
}

// FindByID fetches an announcement by id.
func (r *JobRepo) FindByID(ctx context.Context, announcementID int) (models.JobAnnouncement, error) {
	var a models.JobAnnouncement
	err := r.db.GetContext(ctx, &a,
		`SELECT `+announcementColumns+` FROM job_announcements WHERE id=$1`, announcementID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.JobAnnouncement{}, ErrAnnouncementNotFound
	}
	return a, err
}

// FindByIDWithOwner fetches the announcement joined with its owner.
// Chat room creation checks ownership against this result.
func (r *JobRepo) FindByIDWithOwner(ctx context.Context, announcementID int) (models.AnnouncementDetail, error) {
	var detail models.AnnouncementDetail
	query := `SELECT a.id, a.owner_id, a.title, a.description, a.company, a.location,
            a.salary_min, a.salary_max, a.picture_file_id, a.created_at,
            u.id "owner.id", u.username "owner.username", u.firstname "owner.firstname",
            u.lastname "owner.lastname", f.path "owner.avatar_path"
        FROM job_announcements a
        JOIN users u ON u.id = a.owner_id
        LEFT JOIN file_items f ON f.id = u.avatar_file_id
        WHERE a.id=$1`
	err := r.db.GetContext(ctx, &detail, query, announcementID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AnnouncementDetail{}, ErrAnnouncementNotFound
	}
	return detail, err
}

// List returns announcements, optionally filtered by owner (0 = all).
func (r *JobRepo) List(ctx context.Context, ownerID int) ([]models.JobAnnouncement, error) {
	var items []models.JobAnnouncement
	if ownerID != 0 {
		err := r.db.SelectContext(ctx, &items,
			`SELECT `+announcementColumns+` FROM job_announcements WHERE owner_id=$1 ORDER BY created_at DESC, id DESC`,
			ownerID)
		return items, err
	}
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+announcementColumns+` FROM job_announcements ORDER BY created_at DESC, id DESC`)
	return items, err
}

// ListPage returns a page of announcements plus the total count for the
// same filter.
func (r *JobRepo) ListPage(ctx context.Context, ownerID int, p pagination.Params) ([]models.JobAnnouncement, int, error) {
	var (
		total int
		items []models.JobAnnouncement
	)
	if ownerID != 0 {
		if err := r.db.GetContext(ctx, &total,
			`SELECT COUNT(*) FROM job_announcements WHERE owner_id=$1`, ownerID); err != nil {
			return nil, 0, err
		}
		err := r.db.SelectContext(ctx, &items,
			`SELECT `+announcementColumns+` FROM job_announcements WHERE owner_id=$1
                ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`,
			ownerID, p.Limit, p.Offset())
		return items, total, err
	}
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM job_announcements`); err != nil {
		return nil, 0, err
	}
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+announcementColumns+` FROM job_announcements
            ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		p.Limit, p.Offset())
	return items, total, err
}

// Update rewrites the mutable fields of an announcement.
func (r *JobRepo) Update(ctx context.Context, a models.JobAnnouncement) (models.JobAnnouncement, error) {
	var stored models.JobAnnouncement
	query := `UPDATE job_announcements SET title=$2, description=$3, company=$4, location=$5,
            salary_min=$6, salary_max=$7, picture_file_id=$8
        WHERE id=$1
        RETURNING ` + announcementColumns
	err := r.db.GetContext(ctx, &stored, query,
		a.ID, a.Title, a.Description, a.Company, a.Location,
		a.SalaryMin, a.SalaryMax, a.PictureFileID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.JobAnnouncement{}, ErrAnnouncementNotFound
	}
	return stored, err
}

// Delete removes an announcement. Applications, payment slips and chat
// rooms referencing it cascade away at the storage layer.
func (r *JobRepo) Delete(ctx context.Context, announcementID int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM job_announcements WHERE id=$1`, announcementID)
	if err != nil {
		return err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrAnnouncementNotFound
	}
	return nil
}
