package journal

import (
	"fmt"
	"time"
)

// Recorder appends events to one journal session. It is used from the session
// goroutine only.
type Recorder struct {
	journal   *Journal
	sessionID string
	seq       int64
}

func (r *Recorder) SessionID() string {
	return r.sessionID
}

// Record stores frame with the outcome of applying it.
func (r *Recorder) Record(connection uint64, frame []byte, outcome error) error {
	r.seq++
	text := ""
	if outcome != nil {
		text = outcome.Error()
	}

	_, err := r.journal.db.Exec(`
		INSERT INTO events (session_id, connection, seq, frame, outcome, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?);
	`, r.sessionID, connection, r.seq, string(frame), text, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to record event %d : %w", r.seq, err)
	}
	return nil
}

// Events returns a session's events in arrival order.
func (j *Journal) Events(sessionID string) ([]*Event, error) {
	rows, err := j.db.Query(`
		SELECT id, session_id, connection, seq, frame, outcome, recorded_at
		FROM events
		WHERE session_id = ?
		ORDER BY seq
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var events []*Event
	for rows.Next() {
		e := &Event{}
		var frame string
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Connection, &e.Seq, &frame, &e.Outcome, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		e.Frame = []byte(frame)
		events = append(events, e)
	}

	return events, rows.Err()
}
