package domain

// Profile is the durable identity record written to disk after a
// successful login and read back at startup to repopulate the session.
type Profile struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Role   string `json:"role,omitempty"`
}

// Session is the in-process authentication state. Authenticated is only
// ever true while Token is non-empty.
type Session struct {
	Name          string
	Email         string
	UserID        string
	Role          string
	Token         string
	Authenticated bool
}
