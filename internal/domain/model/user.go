package model

// UserRecord is an immutable snapshot of a user fetched from the external
// user directory. Fields are carried verbatim from the upstream payload.
type UserRecord struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	City  string `json:"city"`
}
