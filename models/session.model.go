package models

// Session is the authenticated caller's identity, parsed from the bearer
// token by the auth middleware and carried through request locals. It is the
// only identity source handlers may use.
type Session struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"` // ADMIN, INSTRUCTOR, STUDENT
}

const (
	RoleAdmin      = "ADMIN"
	RoleInstructor = "INSTRUCTOR"
	RoleStudent    = "STUDENT"
)

// IsInstructor reports whether the session belongs to an instructor account.
func (s Session) IsInstructor() bool {
	return s.Role == RoleInstructor
}
