package domain_models

import "github.com/google/uuid"

// Identity is the authenticated caller, resolved once per request and
// passed explicitly to every data access call.
type Identity struct {
	UserID   uuid.UUID
	Email    string
	FullName string
}

// OwnedBy reports whether a claimed owner id matches the identity. An
// empty claim means the caller did not assert an owner.
func (i Identity) OwnedBy(claimed string) bool {
	if claimed == "" {
		return true
	}
	id, err := uuid.Parse(claimed)
	if err != nil {
		return false
	}
	return id == i.UserID
}
