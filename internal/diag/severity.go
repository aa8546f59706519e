package diag

// Severity defines the importance of a report.
type Severity uint8

const (
	// SevWarning is for lint findings.
	SevWarning Severity = iota
	// SevError is for syntax errors.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "Warning"
	case SevError:
		return "Error"
	}
	return "Unknown"
}

// Letter is the one-letter form used by line-oriented output.
func (s Severity) Letter() string {
	if s == SevError {
		return "E"
	}
	return "W"
}
