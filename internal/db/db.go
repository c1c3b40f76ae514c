package db

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Connect initializes the database connection and runs migrations.
func Connect(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return db, nil
}

func runMigrations(db *sqlx.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            username TEXT NOT NULL UNIQUE,
            email TEXT NOT NULL UNIQUE,
            hashed_password TEXT NOT NULL,
            prefix TEXT NOT NULL DEFAULT '',
            firstname TEXT NOT NULL DEFAULT '',
            lastname TEXT NOT NULL DEFAULT '',
            birth_date DATE,
            address TEXT NOT NULL DEFAULT '',
            latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
            longitude DOUBLE PRECISION NOT NULL DEFAULT 0,
            tel_number TEXT NOT NULL DEFAULT '',
            verified_at TIMESTAMPTZ,
            is_admin BOOLEAN NOT NULL DEFAULT FALSE,
            avatar_file_id INT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        );`,
		`CREATE TABLE IF NOT EXISTS file_items (
            id SERIAL PRIMARY KEY,
            title TEXT NOT NULL,
            type TEXT NOT NULL,
            path TEXT NOT NULL,
            owner_id INT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        );`,
		`ALTER TABLE users DROP CONSTRAINT IF EXISTS users_avatar_file_fk;`,
		`ALTER TABLE users ADD CONSTRAINT users_avatar_file_fk
            FOREIGN KEY (avatar_file_id) REFERENCES file_items(id) ON DELETE SET NULL;`,
		`CREATE TABLE IF NOT EXISTS job_announcements (
            id SERIAL PRIMARY KEY,
            owner_id INT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            title TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            company TEXT NOT NULL DEFAULT '',
            location TEXT NOT NULL DEFAULT '',
            salary_min INT,
            salary_max INT,
            picture_file_id INT REFERENCES file_items(id) ON DELETE SET NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        );`,
		`CREATE TABLE IF NOT EXISTS job_applications (
            id SERIAL PRIMARY KEY,
            announcement_id INT NOT NULL REFERENCES job_announcements(id) ON DELETE CASCADE,
            applicant_id INT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            status TEXT NOT NULL DEFAULT 'pending',
            resume_file_id INT REFERENCES file_items(id) ON DELETE SET NULL,
            cover_letter_file_id INT REFERENCES file_items(id) ON DELETE SET NULL,
            transcript_file_id INT REFERENCES file_items(id) ON DELETE SET NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE(announcement_id, applicant_id)
        );`,
		`CREATE TABLE IF NOT EXISTS payment_slips (
            id SERIAL PRIMARY KEY,
            payer_id INT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            announcement_id INT NOT NULL REFERENCES job_announcements(id) ON DELETE CASCADE,
            amount NUMERIC(12,2) NOT NULL,
            qr_code_file_id INT REFERENCES file_items(id) ON DELETE SET NULL,
            confirmed BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        );`,
		`CREATE TABLE IF NOT EXISTS chat_rooms (
            id SERIAL PRIMARY KEY,
            recruiter_id INT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            applicant_id INT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            announcement_id INT NOT NULL REFERENCES job_announcements(id) ON DELETE CASCADE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE(recruiter_id, applicant_id, announcement_id),
            CHECK (recruiter_id <> applicant_id)
        );`,
		`CREATE TABLE IF NOT EXISTS messages (
            id SERIAL PRIMARY KEY,
            room_id INT NOT NULL REFERENCES chat_rooms(id) ON DELETE CASCADE,
            sender_id INT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            content TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        );`,
		`CREATE INDEX IF NOT EXISTS idx_messages_room_created ON messages(room_id, created_at, id);`,
		`CREATE INDEX IF NOT EXISTS idx_chat_rooms_recruiter ON chat_rooms(recruiter_id);`,
		`CREATE INDEX IF NOT EXISTS idx_chat_rooms_applicant ON chat_rooms(applicant_id);`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}
	log.Println("database migrations applied")
	return nil
}
