package repositories

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmarket-service/internal/db"
	"jobmarket-service/internal/models"
	"jobmarket-service/internal/pagination"
)

// setupTestDB connects to the database named by TEST_DATABASE_URL and
// applies migrations. Tests that need it are skipped when the variable
// is unset.
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("skipping database test: TEST_DATABASE_URL not set")
	}

	conn, err := db.Connect(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func createTestUser(t *testing.T, conn *sqlx.DB) models.User {
	t.Helper()

	tag := uuid.NewString()
	user, err := NewUserRepo(conn).Create(context.Background(), models.User{
		Username:       "u-" + tag,
		Email:          tag + "@example.com",
		HashedPassword: "x",
	})
	require.NoError(t, err)
	return user
}

func createTestRoom(t *testing.T, conn *sqlx.DB) (models.ChatRoom, models.User, models.User) {
	t.Helper()

	ctx := context.Background()
	recruiter := createTestUser(t, conn)
	applicant := createTestUser(t, conn)

	announcement, err := NewJobRepo(conn).Create(ctx, models.JobAnnouncement{
		OwnerID: recruiter.ID,
		Title:   "Backend engineer",
		Company: "ACME",
	})
	require.NoError(t, err)

	room, err := NewChatRoomRepo(conn).Create(ctx, recruiter.ID, applicant.ID, announcement.ID)
	require.NoError(t, err)
	return room, recruiter, applicant
}

func TestDeletingRoomRemovesMessages(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()

	room, recruiter, applicant := createTestRoom(t, conn)
	roomRepo := NewChatRoomRepo(conn)
	msgRepo := NewMessageRepo(conn)

	first, err := msgRepo.Create(ctx, room.ID, recruiter.ID, "hello")
	require.NoError(t, err)
	_, err = msgRepo.Create(ctx, room.ID, applicant.ID, "hi")
	require.NoError(t, err)

	require.NoError(t, roomRepo.Delete(ctx, room.ID))

	_, err = roomRepo.Get(ctx, room.ID)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	msgs, err := msgRepo.ListByRoom(ctx, room.ID)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	_, err = msgRepo.Get(ctx, first.ID)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestMessagesOrderedByTimeThenID(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()

	room, recruiter, _ := createTestRoom(t, conn)
	msgRepo := NewMessageRepo(conn)

	// equal timestamps force the id tiebreak
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	var ids []int
	for i := 0; i < 3; i++ {
		var id int
		err := conn.QueryRowxContext(ctx,
			`INSERT INTO messages (room_id, sender_id, content, created_at)
                VALUES ($1, $2, $3, $4) RETURNING id`,
			room.ID, recruiter.ID, fmt.Sprintf("same instant %d", i), ts).Scan(&id)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	late, err := msgRepo.Create(ctx, room.ID, recruiter.ID, "later")
	require.NoError(t, err)

	early := ts.Add(-time.Hour)
	var earlyID int
	err = conn.QueryRowxContext(ctx,
		`INSERT INTO messages (room_id, sender_id, content, created_at)
            VALUES ($1, $2, $3, $4) RETURNING id`,
		room.ID, recruiter.ID, "earlier", early).Scan(&earlyID)
	require.NoError(t, err)

	msgs, err := msgRepo.ListByRoom(ctx, room.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 5)

	assert.Equal(t, earlyID, msgs[0].ID)
	assert.Equal(t, ids, []int{msgs[1].ID, msgs[2].ID, msgs[3].ID})
	assert.Equal(t, late.ID, msgs[4].ID)

	page, total, err := msgRepo.ListPageByRoom(ctx, room.ID, pagination.Clamp(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, page, 2)
	assert.Equal(t, ids[1], page[0].ID)
	assert.Equal(t, ids[2], page[1].ID)
}

func TestDuplicateRoomIsUniqueViolation(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()

	room, recruiter, applicant := createTestRoom(t, conn)

	_, err := NewChatRoomRepo(conn).Create(ctx, recruiter.ID, applicant.ID, room.AnnouncementID)
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}
