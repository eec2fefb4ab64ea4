package domain

// UserID is the internal identifier of a user, as stored in the uid field of
// a user record.
type UserID string

// String returns the identifier as a plain string.
func (id UserID) String() string { return string(id) }

// User is the subset of a stored user record the lookup reads.
type User struct {
	// UID is the user's internal identifier.
	UID UserID `json:"uid"`
	// Email is the address the record is keyed by. It is not guaranteed to be
	// unique across records.
	Email string `json:"email"`
}
