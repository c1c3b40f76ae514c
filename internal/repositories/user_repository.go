package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"jobmarket-service/internal/models"
	"jobmarket-service/internal/pagination"
)

const userColumns = `id, username, email, hashed_password, prefix, firstname, lastname,
    birth_date, address, latitude, longitude, tel_number, verified_at, is_admin,
    avatar_file_id, created_at`

// UserRepository abstracts user persistence.
type UserRepository interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	FindByID(ctx context.Context, userID int) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	UpdateProfile(ctx context.Context, user models.User) (models.User, error)
	SetAvatar(ctx context.Context, userID int, fileID int) error
	ListPage(ctx context.Context, p pagination.Params) ([]models.User, int, error)
}

// UserRepo is a sqlx implementation of UserRepository.
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo constructs a UserRepo.
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a new user and returns the stored row.
func (r *UserRepo) Create(ctx context.Context, user models.User) (models.User, error) {
	var stored models.User
	query := `INSERT INTO users (username, email, hashed_password, prefix, firstname, lastname,
            birth_date, address, latitude, longitude, tel_number)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING ` + userColumns
	err := r.db.GetContext(ctx, &stored, query,
		user.Username, user.Email, user.HashedPassword, user.Prefix, user.Firstname,
		user.Lastname, user.BirthDate, user.Address, user.Latitude, user.Longitude,
		user.TelNumber)
	return stored, err
}

// FindByID fetches a user by id.
func (r *UserRepo) FindByID(ctx context.Context, userID int) (models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE id=$1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

// FindByUsername fetches a user by its unique username.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE username=$1`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

// UpdateProfile updates the mutable profile fields and returns the row.
func (r *UserRepo) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	var stored models.User
	query := `UPDATE users SET email=$2, prefix=$3, firstname=$4, lastname=$5, birth_date=$6,
            address=$7, latitude=$8, longitude=$9, tel_number=$10
        WHERE id=$1
        RETURNING ` + userColumns
	err := r.db.GetContext(ctx, &stored, query,
		user.ID, user.Email, user.Prefix, user.Firstname, user.Lastname, user.BirthDate,
		user.Address, user.Latitude, user.Longitude, user.TelNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	return stored, err
}

// SetAvatar points the user's avatar at an uploaded file.
func (r *UserRepo) SetAvatar(ctx context.Context, userID int, fileID int) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET avatar_file_id=$2 WHERE id=$1`, userID, fileID)
	if err != nil {
		return err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ListPage returns a page of users plus the total count.
func (r *UserRepo) ListPage(ctx context.Context, p pagination.Params) ([]models.User, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM users`); err != nil {
		return nil, 0, err
	}
	var users []models.User
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id ASC LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &users, query, p.Limit, p.Offset())
	return users, total, err
}
