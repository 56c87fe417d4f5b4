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

type TaskController struct {
	taskService services.TaskServiceInterface
	logger      *zap.Logger
}

func NewTaskController(taskService services.TaskServiceInterface, logger *zap.Logger) *TaskController {
	return &TaskController{
		taskService: taskService,
		logger:      logger,
	}
}

func (c *TaskController) GetTasks(ctx echo.Context) error {
	session, err := utils.SessionFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	company := ctx.Param("company")
	tasks, err := c.taskService.GetTasks(ctx.Request().Context(), session, company)
	if err != nil {
		c.logger.Error("GetTasks: listing failed", zap.String("company", company), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, tasks, "tasks listed", http.StatusOK, uint64(len(tasks)))
}

func (c *TaskController) CreateTask(ctx echo.Context) error {
	session, err := utils.SessionFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CreateTaskDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	task, err := c.taskService.CreateTask(ctx.Request().Context(), session, payload)
	if err != nil {
		c.logger.Error("CreateTask: failed", zap.String("company", payload.Company), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, task, "task created", http.StatusCreated)
}

func (c *TaskController) CompleteTask(ctx echo.Context) error {
	session, err := utils.SessionFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	company := ctx.Param("company")
	taskID := ctx.Param("id")
	if err := c.taskService.CompleteTask(ctx.Request().Context(), session, company, taskID); err != nil {
		c.logger.Warn("CompleteTask: failed",
			zap.String("company", company), zap.String("task_id", taskID), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, struct{}{}, "task completed", http.StatusOK)
}
