package entities

// User is one row of the users sheet. Company scopes what the login can see;
// an empty company marks internal staff.
type User struct {
	Login        string
	PasswordHash string
	Company      string
}
