package journal

type Session struct {
	ID        string
	ServerURL string
	StartedAt int64
	Events    int
}

type Event struct {
	ID         int64
	SessionID  string
	Connection uint64
	Seq        int64
	Frame      []byte
	// Outcome is empty when the frame applied cleanly, otherwise the error
	// text.
	Outcome    string
	RecordedAt int64
}
