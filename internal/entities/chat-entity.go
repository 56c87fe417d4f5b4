package entities

// ChatMessage is one row of the append-only chat sheet shared between the
// technicians and the client company.
type ChatMessage struct {
	ID      string
	SentAt  string // RFC 3339; lexical order == chronological order
	User    string
	Message string
	Company string
}
