package dto

type PostMessageDTO struct {
	Company string `json:"company" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type ChatMessageDTO struct {
	ID      string `json:"id"`
	SentAt  string `json:"sent_at"`
	User    string `json:"user"`
	Message string `json:"message"`
}

// ChatFeedDTO is the visible tail of a company's chat plus the new-message
// indicator for the requesting session.
type ChatFeedDTO struct {
	Messages  []ChatMessageDTO `json:"messages"`
	HasUnread bool             `json:"has_unread"`
}
