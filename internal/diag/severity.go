package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevError is for messages that carry the "error:" keyword, and for
	// messages with no recognisable keyword at all.
	SevError Severity = iota
	// SevWarning is for messages that carry the "Warning:" keyword.
	SevWarning
)

func (s Severity) String() string {
	switch s {
	case SevError:
		return "ERROR"
	case SevWarning:
		return "WARNING"
	}
	return "UNKNOWN"
}
