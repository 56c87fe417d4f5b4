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

type UsageController struct {
	usageService services.UsageServiceInterface
	logger       *zap.Logger
}

func NewUsageController(usageService services.UsageServiceInterface, logger *zap.Logger) *UsageController {
	return &UsageController{
		usageService: usageService,
		logger:       logger,
	}
}

func (c *UsageController) RecordVisit(ctx echo.Context) error {
	session, err := utils.SessionFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.RecordVisitDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	event, err := c.usageService.RecordVisit(ctx.Request().Context(), session, payload)
	if err != nil {
		c.logger.Error("RecordVisit: failed",
			zap.String("company", payload.Company),
			zap.String("code", payload.EquipmentCode),
			zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, event, "usage event recorded", http.StatusCreated)
}

func (c *UsageController) AutoSweep(ctx echo.Context) error {
	session, err := utils.SessionFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.AutoUsageDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.usageService.AutoSweep(ctx.Request().Context(), session, payload)
	if err != nil {
		c.logger.Error("AutoSweep: failed", zap.String("company", payload.Company), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, result, "automatic usage sweep finished", http.StatusOK)
}
