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

type TaskServiceInterface interface {
	GetTasks(ctx context.Context, session service.SessionContext, company string) ([]dto.TaskDTO, error)
	CreateTask(ctx context.Context, session service.SessionContext, payload dto.CreateTaskDTO) (*dto.TaskDTO, error)
	CompleteTask(ctx context.Context, session service.SessionContext, company, taskID string) error
}

type TaskService struct {
	taskRepository repositories.TaskRepositoryInterface
	logger         *zap.Logger

	now func() time.Time
}

func NewTaskService(taskRepository repositories.TaskRepositoryInterface, logger *zap.Logger) *TaskService {
	return &TaskService{
		taskRepository: taskRepository,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *TaskService) GetTasks(ctx context.Context, session service.SessionContext, company string) ([]dto.TaskDTO, error) {
	if !session.CanAccess(company) {
		return nil, apperrors.ErrForbiddenCompany
	}

	tasks, err := s.taskRepository.GetByCompany(ctx, company)
	if err != nil {
		return nil, err
	}

	out := make([]dto.TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, dto.TaskDTO{
			ID:          t.ID,
			Company:     t.Company,
			Title:       t.Title,
			AssignedBy:  t.AssignedBy,
			AssignedAt:  t.AssignedAt,
			Completed:   t.Completed,
			CompletedAt: t.CompletedAt,
		})
	}
	return out, nil
}

func (s *TaskService) CreateTask(ctx context.Context, session service.SessionContext, payload dto.CreateTaskDTO) (*dto.TaskDTO, error) {
	if !session.CanAccess(payload.Company) {
		return nil, apperrors.ErrForbiddenCompany
	}

	assignedBy := payload.AssignedBy
	if assignedBy == "" {
		assignedBy = session.Login
	}

	task := entities.Task{
		ID:         uuid.New().String(),
		Company:    payload.Company,
		Title:      payload.Title,
		AssignedBy: assignedBy,
		AssignedAt: s.now().Format("2006-01-02 15:04:05"),
	}

	if err := s.taskRepository.Append(ctx, task); err != nil {
		s.logger.Error("failed to create task", zap.String("company", task.Company), zap.Error(err))
		return nil, err
	}

	return &dto.TaskDTO{
		ID:         task.ID,
		Company:    task.Company,
		Title:      task.Title,
		AssignedBy: task.AssignedBy,
		AssignedAt: task.AssignedAt,
	}, nil
}

func (s *TaskService) CompleteTask(ctx context.Context, session service.SessionContext, company, taskID string) error {
	if !session.CanAccess(company) {
		return apperrors.ErrForbiddenCompany
	}
	return s.taskRepository.MarkCompleted(ctx, company, taskID, s.now().Format("2006-01-02 15:04:05"))
}
