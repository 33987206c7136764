package journal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/go-playground/assert/v2"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"), os.DirFS("../.."))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestRecordAndReadBack(t *testing.T) {
	j := openTestJournal(t)

	r, err := j.Begin("ws://localhost:9012")
	assert.Equal(t, err, nil)

	assert.Equal(t, r.Record(1, []byte(`{"method":"add account table","accountIndex":0,"name":"A"}`), nil), nil)
	assert.Equal(t, r.Record(1, []byte(`{"method":"delete account table","accountIndex":4}`), errors.New("desync")), nil)
	assert.Equal(t, r.Record(2, []byte(`{"method":"mark as saved"}`), nil), nil)

	events, err := j.Events(r.SessionID())
	assert.Equal(t, err, nil)
	assert.Equal(t, len(events), 3)
	assert.Equal(t, events[0].Seq, int64(1))
	assert.Equal(t, events[0].Connection, uint64(1))
	assert.Equal(t, string(events[0].Frame), `{"method":"add account table","accountIndex":0,"name":"A"}`)
	assert.Equal(t, events[0].Outcome, "")
	assert.Equal(t, events[1].Outcome, "desync")
	assert.Equal(t, events[2].Connection, uint64(2))

	s, err := j.Session(r.SessionID())
	assert.Equal(t, err, nil)
	assert.Equal(t, s.ServerURL, "ws://localhost:9012")
	assert.Equal(t, s.Events, 3)
}

func TestSessionsNewestFirst(t *testing.T) {
	j := openTestJournal(t)

	_, err := j.Latest()
	assert.Equal(t, errors.Is(err, ErrRecordNotFound), true)

	first, _ := j.Begin("ws://a")
	second, _ := j.Begin("ws://b")

	sessions, err := j.Sessions()
	assert.Equal(t, err, nil)
	assert.Equal(t, len(sessions), 2)

	latest, err := j.Latest()
	assert.Equal(t, err, nil)
	assert.Equal(t, latest.ID, second.SessionID())
	assert.NotEqual(t, latest.ID, first.SessionID())
}

func TestDeleteSessionCascades(t *testing.T) {
	j := openTestJournal(t)

	r, _ := j.Begin("ws://a")
	_ = r.Record(1, []byte(`{"method":"mark as saved"}`), nil)

	assert.Equal(t, j.DeleteSession(r.SessionID()), nil)

	_, err := j.Session(r.SessionID())
	assert.Equal(t, errors.Is(err, ErrRecordNotFound), true)
	events, err := j.Events(r.SessionID())
	assert.Equal(t, err, nil)
	assert.Equal(t, len(events), 0)

	err = j.DeleteSession(r.SessionID())
	assert.Equal(t, errors.Is(err, ErrRecordNotFound), true)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := Open(path, os.DirFS("../.."))
	assert.Equal(t, err, nil)
	r, _ := j.Begin("ws://a")
	assert.Equal(t, j.Close(), nil)

	j, err = Open(path, os.DirFS("../.."))
	assert.Equal(t, err, nil)
	defer j.Close()

	s, err := j.Session(r.SessionID())
	assert.Equal(t, err, nil)
	assert.Equal(t, s.ID, r.SessionID())
}

func TestOpenFailsWithoutMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	j, err := Open(path, fstest.MapFS{})
	assert.NotEqual(t, err, nil)
	assert.Equal(t, j == nil, true)

	j, err = Open(path, os.DirFS("../.."))
	assert.Equal(t, err, nil)
	assert.Equal(t, j.Close(), nil)
}
