package models

import "time"

// User is a registered account. Recruiters and applicants are both
// plain users; the roles only exist relative to a chat room.
type User struct {
	ID             int        `db:"id" json:"id"`
	Username       string     `db:"username" json:"username"`
	Email          string     `db:"email" json:"email"`
	HashedPassword string     `db:"hashed_password" json:"-"`
	Prefix         string     `db:"prefix" json:"prefix"`
	Firstname      string     `db:"firstname" json:"firstname"`
	Lastname       string     `db:"lastname" json:"lastname"`
	BirthDate      *time.Time `db:"birth_date" json:"birth_date,omitempty"`
	Address        string     `db:"address" json:"address"`
	Latitude       float64    `db:"latitude" json:"latitude"`
	Longitude      float64    `db:"longitude" json:"longitude"`
	TelNumber      string     `db:"tel_number" json:"tel_number"`
	VerifiedAt     *time.Time `db:"verified_at" json:"verified_at,omitempty"`
	IsAdmin        bool       `db:"is_admin" json:"is_admin"`
	AvatarFileID   *int       `db:"avatar_file_id" json:"avatar_file_id,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

// Participant is the public view of a user embedded in joined results.
type Participant struct {
	ID         int     `db:"id" json:"id"`
	Username   string  `db:"username" json:"username"`
	Firstname  string  `db:"firstname" json:"firstname"`
	Lastname   string  `db:"lastname" json:"lastname"`
	AvatarPath *string `db:"avatar_path" json:"avatar_path,omitempty"`
}
