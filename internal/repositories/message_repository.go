package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"jobmarket-service/internal/models"
	"jobmarket-service/internal/pagination"
)

// MessageRepository defines interactions for chat messages.
type MessageRepository interface {
	Create(ctx context.Context, roomID, senderID int, content string) (models.Message, error)
	ListByRoom(ctx context.Context, roomID int) ([]models.Message, error)
	ListPageByRoom(ctx context.Context, roomID int, p pagination.Params) ([]models.Message, int, error)
	Get(ctx context.Context, messageID int) (models.Message, error)
	GetDetail(ctx context.Context, messageID int) (models.MessageDetail, error)
	Delete(ctx context.Context, messageID int) error
}

// MessageRepo is a sqlx-backed repository.
type MessageRepo struct {
	db *sqlx.DB
}

// NewMessageRepo constructs a MessageRepo.
func NewMessageRepo(db *sqlx.DB) *MessageRepo {
	return &MessageRepo{db: db}
}

// Create stores a message in a room and returns the stored row.
func (r *MessageRepo) Create(ctx context.Context, roomID, senderID int, content string) (models.Message, error) {
	var msg models.Message
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO messages (room_id, sender_id, content) VALUES ($1, $2, $3)
            RETURNING id, room_id, sender_id, content, created_at`,
		roomID, senderID, content).
		Scan(&msg.ID, &msg.RoomID, &msg.SenderID, &msg.Content, &msg.CreatedAt)
	return msg, err
}

// ListByRoom returns all room messages in insertion order.
func (r *MessageRepo) ListByRoom(ctx context.Context, roomID int) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.SelectContext(ctx, &msgs,
		`SELECT id, room_id, sender_id, content, created_at FROM messages
            WHERE room_id=$1 ORDER BY created_at ASC, id ASC`,
		roomID)
	return msgs, err
}

// ListPageByRoom returns a page of room messages, insertion order,
// plus the room's total message count.
func (r *MessageRepo) ListPageByRoom(ctx context.Context, roomID int, p pagination.Params) ([]models.Message, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM messages WHERE room_id=$1`, roomID); err != nil {
		return nil, 0, err
	}
	var msgs []models.Message
	err := r.db.SelectContext(ctx, &msgs,
		`SELECT id, room_id, sender_id, content, created_at FROM messages
            WHERE room_id=$1 ORDER BY created_at ASC, id ASC LIMIT $2 OFFSET $3`,
		roomID, p.Limit, p.Offset())
	return msgs, total, err
}

// Get retrieves a single message row.
func (r *MessageRepo) Get(ctx context.Context, messageID int) (models.Message, error) {
	var msg models.Message
	err := r.db.GetContext(ctx, &msg,
		`SELECT id, room_id, sender_id, content, created_at FROM messages WHERE id=$1`, messageID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Message{}, ErrMessageNotFound
	}
	return msg, err
}

// GetDetail retrieves a message joined with its room and sender. The
// room carries recruiter and applicant ids for the participant check.
func (r *MessageRepo) GetDetail(ctx context.Context, messageID int) (models.MessageDetail, error) {
	var detail models.MessageDetail
	query := `SELECT m.id, m.room_id, m.sender_id, m.content, m.created_at,
            r.id "room.id", r.recruiter_id "room.recruiter_id", r.applicant_id "room.applicant_id",
            r.announcement_id "room.announcement_id", r.created_at "room.created_at",
            s.id "sender.id", s.username "sender.username", s.firstname "sender.firstname",
            s.lastname "sender.lastname", sf.path "sender.avatar_path"
        FROM messages m
        JOIN chat_rooms r ON r.id = m.room_id
        JOIN users s ON s.id = m.sender_id
        LEFT JOIN file_items sf ON sf.id = s.avatar_file_id
        WHERE m.id=$1`
	err := r.db.GetContext(ctx, &detail, query, messageID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.MessageDetail{}, ErrMessageNotFound
	}
	return detail, err
}

// Delete removes a message.
func (r *MessageRepo) Delete(ctx context.Context, messageID int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id=$1`, messageID)
	if err != nil {
		return err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrMessageNotFound
	}
	return nil
}
