package repositories

import (
	"context"

	"maintenance-system/internal/entities"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/utils"

	"go.uber.org/zap"
)

type TaskRepositoryInterface interface {
	GetByCompany(ctx context.Context, company string) ([]entities.Task, error)
	Append(ctx context.Context, task entities.Task) error
	MarkCompleted(ctx context.Context, company, taskID, completedAt string) error
}

type TaskRepository struct {
	store  SheetStore
	sheet  string
	logger *zap.Logger
}

func NewTaskRepository(store SheetStore, sheet string, logger *zap.Logger) TaskRepositoryInterface {
	return &TaskRepository{
		store:  store,
		sheet:  sheet,
		logger: logger,
	}
}

// Column positions of the completion cells, 1-based over the tasks header.
const (
	taskCompletedCol   = 6
	taskCompletedAtCol = 7
)

func (r *TaskRepository) GetByCompany(ctx context.Context, company string) ([]entities.Task, error) {
	rows, err := r.store.ReadRows(ctx, r.sheet)
	if err != nil {
		return nil, err
	}

	tasks := make([]entities.Task, 0)
	for i, row := range rows {
		if !sameCompany(row["company"], company) {
			continue
		}
		tasks = append(tasks, entities.Task{
			ID:          row["task_id"],
			Company:     row["company"],
			Title:       row["title"],
			AssignedBy:  row["assigned_by"],
			AssignedAt:  row["assigned_at"],
			Completed:   utils.ParseYes(row["completed"]),
			CompletedAt: row["completed_at"],
			RowIndex:    i + 1,
		})
	}
	return tasks, nil
}

func (r *TaskRepository) Append(ctx context.Context, task entities.Task) error {
	completed := "no"
	if task.Completed {
		completed = "yes"
	}
	return r.store.AppendRow(ctx, r.sheet, []string{
		task.ID,
		task.Company,
		task.Title,
		task.AssignedBy,
		task.AssignedAt,
		completed,
		task.CompletedAt,
	})
}

// MarkCompleted flips the completion cells of the row holding the task. The
// sheet is append-only otherwise, so the row position found during the scan
// is still valid for the update. The task must belong to the given company;
// a matching ID under another company reads as not found.
func (r *TaskRepository) MarkCompleted(ctx context.Context, company, taskID, completedAt string) error {
	rows, err := r.store.ReadRows(ctx, r.sheet)
	if err != nil {
		return err
	}

	for i, row := range rows {
		if row["task_id"] != taskID || !sameCompany(row["company"], company) {
			continue
		}
		if err := r.store.UpdateCell(ctx, r.sheet, i+1, taskCompletedCol, "yes"); err != nil {
			return err
		}
		return r.store.UpdateCell(ctx, r.sheet, i+1, taskCompletedAtCol, completedAt)
	}
	return apperrors.ErrNotFound
}
