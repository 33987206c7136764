package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	sqlite "github.com/mattn/go-sqlite3"
)

// Begin opens a new journal session for serverURL and returns a recorder
// bound to it.
func (j *Journal) Begin(serverURL string) (*Recorder, error) {
	id := ulid.Make().String()

	_, err := j.db.Exec(`
		INSERT INTO sessions (id, server_url, started_at)
		VALUES (?, ?, ?);
	`, id, serverURL, time.Now().Unix())
	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) && errors.Is(sqliteErr.ExtendedCode, sqlite.ErrConstraintPrimaryKey) {
			return nil, fmt.Errorf("failed to begin session '%s': %w", id, ErrSessionExists)
		}
		return nil, fmt.Errorf("failed to insert session : %w", err)
	}

	return &Recorder{journal: j, sessionID: id}, nil
}

func (j *Journal) Sessions() ([]*Session, error) {
	rows, err := j.db.Query(`
		SELECT s.id, s.server_url, s.started_at, COUNT(e.id)
		FROM sessions s
		LEFT JOIN events e ON e.session_id = s.id
		GROUP BY s.id
		ORDER BY s.started_at DESC, s.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var sessions []*Session
	for rows.Next() {
		s := &Session{}
		if err := rows.Scan(&s.ID, &s.ServerURL, &s.StartedAt, &s.Events); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

func (j *Journal) Session(id string) (*Session, error) {
	row := j.db.QueryRow(`
		SELECT s.id, s.server_url, s.started_at, COUNT(e.id)
		FROM sessions s
		LEFT JOIN events e ON e.session_id = s.id
		WHERE s.id = ?
		GROUP BY s.id
	`, id)

	s := &Session{}
	if err := row.Scan(&s.ID, &s.ServerURL, &s.StartedAt, &s.Events); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session '%s': %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query session '%s' : %w", id, err)
	}
	return s, nil
}

// Latest returns the most recently started session.
func (j *Journal) Latest() (*Session, error) {
	sessions, err := j.Sessions()
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, fmt.Errorf("no sessions: %w", ErrRecordNotFound)
	}
	return sessions[0], nil
}

func (j *Journal) DeleteSession(id string) error {
	result, err := j.db.Exec("DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete session '%s': %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete session '%s': %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("session '%s': %w", id, ErrRecordNotFound)
	}
	return nil
}
