package models

import "time"

// Message is a chat message. Messages are never edited; they are
// created by a participant and deleted only by their sender.
type Message struct {
	ID        int       `db:"id" json:"id"`
	RoomID    int       `db:"room_id" json:"room_id"`
	SenderID  int       `db:"sender_id" json:"sender_id"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// MessageDetail joins a message with its room and sender.
type MessageDetail struct {
	Message
	Room   ChatRoom    `db:"room" json:"room"`
	Sender Participant `db:"sender" json:"sender"`
}
