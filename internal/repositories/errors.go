package repositories

import (
	"errors"

	"github.com/lib/pq"
)

// Sentinel errors returned by the repositories. Handlers map these to
// HTTP statuses with errors.Is.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrFileNotFound         = errors.New("file not found")
	ErrAnnouncementNotFound = errors.New("job announcement not found")
	ErrApplicationNotFound  = errors.New("job application not found")
	ErrPaymentNotFound      = errors.New("payment slip not found")
	ErrRoomNotFound         = errors.New("chat room not found")
	ErrMessageNotFound      = errors.New("message not found")
	ErrDuplicate            = errors.New("duplicate record")
)

const uniqueViolationCode = "23505"

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolationCode
	}
	return errors.Is(err, ErrDuplicate)
}
