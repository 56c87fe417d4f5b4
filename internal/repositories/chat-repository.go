package repositories

import (
	"context"

	"maintenance-system/internal/entities"

	"go.uber.org/zap"
)

type ChatRepositoryInterface interface {
	GetByCompany(ctx context.Context, company string) ([]entities.ChatMessage, error)
	Append(ctx context.Context, message entities.ChatMessage) error
}

type ChatRepository struct {
	store  SheetStore
	sheet  string
	logger *zap.Logger
}

func NewChatRepository(store SheetStore, sheet string, logger *zap.Logger) ChatRepositoryInterface {
	return &ChatRepository{
		store:  store,
		sheet:  sheet,
		logger: logger,
	}
}

func (r *ChatRepository) GetByCompany(ctx context.Context, company string) ([]entities.ChatMessage, error) {
	rows, err := r.store.ReadRows(ctx, r.sheet)
	if err != nil {
		return nil, err
	}

	messages := make([]entities.ChatMessage, 0)
	for _, row := range rows {
		if !sameCompany(row["company"], company) {
			continue
		}
		messages = append(messages, entities.ChatMessage{
			ID:      row["message_id"],
			SentAt:  row["sent_at"],
			User:    row["user"],
			Message: row["message"],
			Company: row["company"],
		})
	}
	return messages, nil
}

func (r *ChatRepository) Append(ctx context.Context, message entities.ChatMessage) error {
	return r.store.AppendRow(ctx, r.sheet, []string{
		message.ID,
		message.SentAt,
		message.User,
		message.Message,
		message.Company,
	})
}
