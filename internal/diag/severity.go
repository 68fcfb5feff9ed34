package diag

// Severity ranks a diagnostic.
type Severity uint8

const (
	// SevInfo notes something a user may want to know, e.g. a run left unpadded.
	SevInfo Severity = iota
	// SevWarning marks a file that is valid but not aligned (--check).
	SevWarning
	// SevError means the file could not be aligned at all.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// AtLeast reports whether s is as severe as floor.
func (s Severity) AtLeast(floor Severity) bool {
	return s >= floor
}
