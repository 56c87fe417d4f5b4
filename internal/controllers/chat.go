package controllers

import (
	"net/http"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/services"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ChatController struct {
	chatService services.ChatServiceInterface
	logger      *zap.Logger
}

func NewChatController(chatService services.ChatServiceInterface, logger *zap.Logger) *ChatController {
	return &ChatController{
		chatService: chatService,
		logger:      logger,
	}
}

func (c *ChatController) GetFeed(ctx echo.Context) error {
	session, err := utils.SessionFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	company := ctx.Param("company")
	feed, err := c.chatService.Feed(ctx.Request().Context(), session, company)
	if err != nil {
		c.logger.Error("GetFeed: failed", zap.String("company", company), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, feed, "chat feed", http.StatusOK)
}

func (c *ChatController) PostMessage(ctx echo.Context) error {
	session, err := utils.SessionFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.PostMessageDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	message, err := c.chatService.PostMessage(ctx.Request().Context(), session, payload)
	if err != nil {
		c.logger.Error("PostMessage: failed", zap.String("company", payload.Company), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, message, "message sent", http.StatusCreated)
}
