package models

import "time"

// ChatRoom links a recruiter, an applicant and the announcement they
// are talking about. The recruiter is always the announcement owner at
// creation time and recruiter and applicant always differ.
type ChatRoom struct {
	ID             int       `db:"id" json:"id"`
	RecruiterID    int       `db:"recruiter_id" json:"recruiter_id"`
	ApplicantID    int       `db:"applicant_id" json:"applicant_id"`
	AnnouncementID int       `db:"announcement_id" json:"announcement_id"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// IsParticipant reports whether the user is the recruiter or applicant.
func (r ChatRoom) IsParticipant(userID int) bool {
	return r.RecruiterID == userID || r.ApplicantID == userID
}

// RoomDetail is a chat room joined with both participants (avatar
// included) and the announcement.
type RoomDetail struct {
	ChatRoom
	Recruiter    Participant         `db:"recruiter" json:"recruiter"`
	Applicant    Participant         `db:"applicant" json:"applicant"`
	Announcement AnnouncementSummary `db:"announcement" json:"announcement"`
}

// RoomEvent is broadcasted through websockets to room clients.
type RoomEvent struct {
	Type      string   `json:"type"`
	Message   *Message `json:"message,omitempty"`
	MessageID int      `json:"message_id,omitempty"`
	RoomID    int      `json:"room_id,omitempty"`
}
