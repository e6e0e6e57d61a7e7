package models

// Identity is the authenticated principal of one request. Role holds the
// effective role computed at login, not necessarily the stored one.
type Identity struct {
	UserID uint     `json:"user_id"`
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	Role   UserRole `json:"role"`
}

func (i *Identity) IsModerator() bool {
	return i != nil && i.Role == RoleModerator
}
