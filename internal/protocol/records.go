package protocol

// Event is one decoded inbound record. Index fields are pointers so that an
// absent index is distinguishable from position 0.
type Event struct {
	Method           string  `json:"method"`
	AccountIndex     *int    `json:"accountIndex,omitempty"`
	TransactionIndex *int    `json:"transactionIndex,omitempty"`
	NewIndex         *int    `json:"newIndex,omitempty"`
	Name             *string `json:"name,omitempty"`
	Amount           *string `json:"amount,omitempty"`
	Description      *string `json:"description,omitempty"`
	Date             *string `json:"date,omitempty"`
}

// Command is one outbound record built from the current selection and form.
type Command struct {
	Method      string `json:"method"`
	Name        string `json:"name,omitempty"`
	NewName     string `json:"newName,omitempty"`
	Amount      string `json:"amount,omitempty"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
}

// Int and String build optional event fields.
func Int(v int) *int { return &v }

func String(v string) *string { return &v }

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
