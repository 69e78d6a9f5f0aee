package store

// ErrorClassification is the dialect-neutral class of a driver error.
type ErrorClassification int

const (
	// Unclassified covers every error without special handling.
	Unclassified ErrorClassification = iota

	// UniqueViolation means a UNIQUE or PRIMARY KEY constraint rejected the row.
	UniqueViolation

	// ConnectionFailure means the database could not be reached or was busy.
	ConnectionFailure
)

func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case ConnectionFailure:
		return "connection_failure"
	default:
		return "unclassified"
	}
}
