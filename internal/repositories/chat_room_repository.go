package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"jobmarket-service/internal/models"
	"jobmarket-service/internal/pagination"
)

// RoomFilter narrows room listings. The zero value matches all rooms;
// at most one field is honored, checked in declaration order.
type RoomFilter struct {
	RecruiterID    int
	ApplicantID    int
	MemberID       int
	AnnouncementID int
}

func (f RoomFilter) where() (string, []interface{}) {
	switch {
	case f.RecruiterID != 0:
		return ` WHERE r.recruiter_id = $1`, []interface{}{f.RecruiterID}
	case f.ApplicantID != 0:
		return ` WHERE r.applicant_id = $1`, []interface{}{f.ApplicantID}
	case f.MemberID != 0:
		return ` WHERE (r.recruiter_id = $1 OR r.applicant_id = $1)`, []interface{}{f.MemberID}
	case f.AnnouncementID != 0:
		return ` WHERE r.announcement_id = $1`, []interface{}{f.AnnouncementID}
	}
	return "", nil
}

// ChatRoomRepository abstracts chat room persistence.
type ChatRoomRepository interface {
	Create(ctx context.Context, recruiterID, applicantID, announcementID int) (models.ChatRoom, error)
	Get(ctx context.Context, roomID int) (models.ChatRoom, error)
	GetDetail(ctx context.Context, roomID int) (models.RoomDetail, error)
	List(ctx context.Context, f RoomFilter) ([]models.RoomDetail, error)
	ListPage(ctx context.Context, f RoomFilter, p pagination.Params) ([]models.RoomDetail, int, error)
	Delete(ctx context.Context, roomID int) error
}

// ChatRoomRepo is a sqlx implementation of ChatRoomRepository.
type ChatRoomRepo struct {
	db *sqlx.DB
}

// NewChatRoomRepo constructs a ChatRoomRepo.
func NewChatRoomRepo(db *sqlx.DB) *ChatRoomRepo {
	return &ChatRoomRepo{db: db}
}

const roomDetailSelect = `SELECT r.id, r.recruiter_id, r.applicant_id, r.announcement_id, r.created_at,
        rec.id "recruiter.id", rec.username "recruiter.username", rec.firstname "recruiter.firstname",
        rec.lastname "recruiter.lastname", recf.path "recruiter.avatar_path",
        app.id "applicant.id", app.username "applicant.username", app.firstname "applicant.firstname",
        app.lastname "applicant.lastname", appf.path "applicant.avatar_path",
        a.id "announcement.id", a.title "announcement.title", a.company "announcement.company"
    FROM chat_rooms r
    JOIN users rec ON rec.id = r.recruiter_id
    LEFT JOIN file_items recf ON recf.id = rec.avatar_file_id
    JOIN users app ON app.id = r.applicant_id
    LEFT JOIN file_items appf ON appf.id = app.avatar_file_id
    JOIN job_announcements a ON a.id = r.announcement_id`

// Create persists a new room. The UNIQUE(recruiter, applicant,
// announcement) constraint rejects a second room for the same triple.
func (r *ChatRoomRepo) Create(ctx context.Context, recruiterID, applicantID, announcementID int) (models.ChatRoom, error) {
	var room models.ChatRoom
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO chat_rooms (recruiter_id, applicant_id, announcement_id) VALUES ($1, $2, $3)
            RETURNING id, recruiter_id, applicant_id, announcement_id, created_at`,
		recruiterID, applicantID, announcementID).
		Scan(&room.ID, &room.RecruiterID, &room.ApplicantID, &room.AnnouncementID, &room.CreatedAt)
	return room, err
}

// Get fetches the bare room row. Authorization checks read recruiter
// and applicant ids from here, fresh on every call.
func (r *ChatRoomRepo) Get(ctx context.Context, roomID int) (models.ChatRoom, error) {
	var room models.ChatRoom
	err := r.db.GetContext(ctx, &room,
		`SELECT id, recruiter_id, applicant_id, announcement_id, created_at FROM chat_rooms WHERE id=$1`,
		roomID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ChatRoom{}, ErrRoomNotFound
	}
	return room, err
}

// GetDetail fetches a room joined with both participants and the
// announcement.
func (r *ChatRoomRepo) GetDetail(ctx context.Context, roomID int) (models.RoomDetail, error) {
	var detail models.RoomDetail
	err := r.db.GetContext(ctx, &detail, roomDetailSelect+` WHERE r.id=$1`, roomID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RoomDetail{}, ErrRoomNotFound
	}
	return detail, err
}

// List returns all rooms matching the filter in the joined shape.
func (r *ChatRoomRepo) List(ctx context.Context, f RoomFilter) ([]models.RoomDetail, error) {
	where, args := f.where()
	var rooms []models.RoomDetail
	err := r.db.SelectContext(ctx, &rooms,
		roomDetailSelect+where+` ORDER BY r.created_at DESC, r.id DESC`, args...)
	return rooms, err
}

// ListPage returns one page of matching rooms plus the total count for
// the same filter.
func (r *ChatRoomRepo) ListPage(ctx context.Context, f RoomFilter, p pagination.Params) ([]models.RoomDetail, int, error) {
	where, args := f.where()

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM chat_rooms r`+where, args...); err != nil {
		return nil, 0, err
	}

	limitPos := len(args) + 1
	query := fmt.Sprintf(`%s%s ORDER BY r.created_at DESC, r.id DESC LIMIT $%d OFFSET $%d`,
		roomDetailSelect, where, limitPos, limitPos+1)
	args = append(args, p.Limit, p.Offset())

	var rooms []models.RoomDetail
	err := r.db.SelectContext(ctx, &rooms, query, args...)
	return rooms, total, err
}

// Delete removes the room. Messages cascade away via the room_id
// foreign key.
func (r *ChatRoomRepo) Delete(ctx context.Context, roomID int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM chat_rooms WHERE id=$1`, roomID)
	if err != nil {
		return err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrRoomNotFound
	}
	return nil
}
