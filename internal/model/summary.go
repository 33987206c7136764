package model

type SaveState int

const (
	SaveUnknown SaveState = iota
	SaveSaved
	SaveUnsaved
)

func (s SaveState) String() string {
	switch s {
	case SaveSaved:
		return "saved"
	case SaveUnsaved:
		return "unsaved"
	default:
		return "unknown"
	}
}

// Summary holds the aggregate display values that have no structural effect
// on the account collection.
type Summary struct {
	NetIncome    string
	TotalBalance string
	SaveState    SaveState
}
