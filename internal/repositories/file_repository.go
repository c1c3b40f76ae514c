package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"jobmarket-service/internal/models"
)

// FileRepository abstracts file metadata persistence. The blobs live in
// the blob store; rows here only carry title, type and storage path.
type FileRepository interface {
	Create(ctx context.Context, item models.FileItem) (models.FileItem, error)
	FindByID(ctx context.Context, fileID int) (models.FileItem, error)
	ListByOwner(ctx context.Context, ownerID int) ([]models.FileItem, error)
	Delete(ctx context.Context, fileID int) error
}

// FileRepo is a sqlx implementation of FileRepository.
type FileRepo struct {
	db *sqlx.DB
}

// NewFileRepo constructs a FileRepo.
func NewFileRepo(db *sqlx.DB) *FileRepo {
	return &FileRepo{db: db}
}

// Create inserts a file record.
func (r *FileRepo) Create(ctx context.Context, item models.FileItem) (models.FileItem, error) {
	var stored models.FileItem
	err := r.db.GetContext(ctx, &stored,
		`INSERT INTO file_items (title, type, path, owner_id) VALUES ($1, $2, $3, $4)
            RETURNING id, title, type, path, owner_id, created_at`,
		item.Title, item.Type, item.Path, item.OwnerID)
	return stored, err
}

// FindByID fetches file metadata.
func (r *FileRepo) FindByID(ctx context.Context, fileID int) (models.FileItem, error) {
	var item models.FileItem
	err := r.db.GetContext(ctx, &item,
		`SELECT id, title, type, path, owner_id, created_at FROM file_items WHERE id=$1`, fileID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.FileItem{}, ErrFileNotFound
	}
	return item, err
}

// ListByOwner returns all files uploaded by a user.
func (r *FileRepo) ListByOwner(ctx context.Context, ownerID int) ([]models.FileItem, error) {
	var items []models.FileItem
	err := r.db.SelectContext(ctx, &items,
		`SELECT id, title, type, path, owner_id, created_at FROM file_items WHERE owner_id=$1 ORDER BY id ASC`,
		ownerID)
	return items, err
}

// Delete removes a file record.
func (r *FileRepo) Delete(ctx context.Context, fileID int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM file_items WHERE id=$1`, fileID)
	if err != nil {
		return err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrFileNotFound
	}
	return nil
}
