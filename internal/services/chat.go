package services

import (
	"context"
	"time"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatFeedLimit is how many trailing messages the feed shows, matching what
// the dashboard always displayed.
const ChatFeedLimit = 30

type ChatServiceInterface interface {
	Feed(ctx context.Context, session service.SessionContext, company string) (*dto.ChatFeedDTO, error)
	PostMessage(ctx context.Context, session service.SessionContext, payload dto.PostMessageDTO) (*dto.ChatMessageDTO, error)
}

// ChatService serves the append-only chat between the technicians and each
// client company. The per-user read watermark lives in the cache, keyed by
// (login, company); it used to hide in UI session globals.
type ChatService struct {
	chatRepository repositories.ChatRepositoryInterface
	cache          repositories.CacheRepositoryInterface
	logger         *zap.Logger

	now func() time.Time
}

func NewChatService(
	chatRepository repositories.ChatRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		chatRepository: chatRepository,
		cache:          cache,
		logger:         logger,
		now:            time.Now,
	}
}

func lastReadKey(login, company string) string {
	return "chat:lastread:" + login + ":" + company
}

// Feed returns the trailing messages for a company plus whether anything
// arrived since this user last looked, then advances the user's watermark.
func (s *ChatService) Feed(ctx context.Context, session service.SessionContext, company string) (*dto.ChatFeedDTO, error) {
	if !session.CanAccess(company) {
		return nil, apperrors.ErrForbiddenCompany
	}

	messages, err := s.chatRepository.GetByCompany(ctx, company)
	if err != nil {
		return nil, err
	}

	if len(messages) > ChatFeedLimit {
		messages = messages[len(messages)-ChatFeedLimit:]
	}

	feed := &dto.ChatFeedDTO{Messages: make([]dto.ChatMessageDTO, 0, len(messages))}
	var latest string
	for _, m := range messages {
		if m.SentAt > latest {
			latest = m.SentAt
		}
		feed.Messages = append(feed.Messages, dto.ChatMessageDTO{
			ID:      m.ID,
			SentAt:  m.SentAt,
			User:    m.User,
			Message: m.Message,
		})
	}

	if latest != "" {
		lastRead, err := s.cache.Get(ctx, lastReadKey(session.Login, company))
		if err != nil && err != repositories.ErrCacheMiss {
			s.logger.Warn("chat watermark read failed", zap.Error(err))
		}
		feed.HasUnread = lastRead == "" || latest > lastRead

		if err := s.cache.Set(ctx, lastReadKey(session.Login, company), latest, 0); err != nil {
			s.logger.Warn("chat watermark update failed", zap.Error(err))
		}
	}

	return feed, nil
}

func (s *ChatService) PostMessage(ctx context.Context, session service.SessionContext, payload dto.PostMessageDTO) (*dto.ChatMessageDTO, error) {
	if !session.CanAccess(payload.Company) {
		return nil, apperrors.ErrForbiddenCompany
	}

	message := entities.ChatMessage{
		ID:      uuid.New().String(),
		SentAt:  s.now().Format(time.RFC3339),
		User:    session.Login,
		Message: payload.Message,
		Company: payload.Company,
	}

	if err := s.chatRepository.Append(ctx, message); err != nil {
		s.logger.Error("failed to post chat message", zap.String("company", payload.Company), zap.Error(err))
		return nil, err
	}

	// The author has obviously read their own message.
	if err := s.cache.Set(ctx, lastReadKey(session.Login, payload.Company), message.SentAt, 0); err != nil {
		s.logger.Warn("chat watermark update failed", zap.Error(err))
	}

	return &dto.ChatMessageDTO{
		ID:      message.ID,
		SentAt:  message.SentAt,
		User:    message.User,
		Message: message.Message,
	}, nil
}
