package token

import "github.com/google/uuid"

// NewOpaqueID returns a fresh random UUID in canonical string form, suitable
// for one-shot challenge or request identifiers.
func NewOpaqueID() string {
	return uuid.NewString()
}

// ParseOpaqueID validates s as a UUID and returns its canonical lowercase
// form. Inputs that are not UUID-shaped are rejected before any lookup is
// attempted with them.
func ParseOpaqueID(s string) (string, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}
