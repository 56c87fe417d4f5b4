package services

import (
	"context"
	"testing"
	"time"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTaskRepository struct {
	tasks []entities.Task
}

func (f *fakeTaskRepository) GetByCompany(ctx context.Context, company string) ([]entities.Task, error) {
	var out []entities.Task
	for _, t := range f.tasks {
		if t.Company == company {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepository) Append(ctx context.Context, task entities.Task) error {
	f.tasks = append(f.tasks, task)
	return nil
}

func (f *fakeTaskRepository) MarkCompleted(ctx context.Context, company, taskID, completedAt string) error {
	for i := range f.tasks {
		if f.tasks[i].ID == taskID && f.tasks[i].Company == company {
			f.tasks[i].Completed = true
			f.tasks[i].CompletedAt = completedAt
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func newTestTaskService(repo *fakeTaskRepository) *TaskService {
	svc := NewTaskService(repo, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC) }
	return svc
}

func TestCreateTaskDefaultsAssignerToSession(t *testing.T) {
	repo := &fakeTaskRepository{}
	svc := newTestTaskService(repo)

	task, err := svc.CreateTask(context.Background(), service.SessionContext{Login: "jdoe"}, dto.CreateTaskDTO{
		Company: "acme",
		Title:   "grease bearings",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "jdoe", task.AssignedBy)
	assert.Equal(t, "2026-03-02 09:30:00", task.AssignedAt)
	require.Len(t, repo.tasks, 1)
}

func TestCompleteTaskStampsCompletionTime(t *testing.T) {
	repo := &fakeTaskRepository{tasks: []entities.Task{
		{ID: "t-1", Company: "acme", Title: "swap filter"},
	}}
	svc := newTestTaskService(repo)
	session := service.SessionContext{Login: "jdoe", Company: "acme"}

	require.NoError(t, svc.CompleteTask(context.Background(), session, "acme", "t-1"))

	tasks, err := svc.GetTasks(context.Background(), session, "acme")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].Completed)
	assert.Equal(t, "2026-03-02 09:30:00", tasks[0].CompletedAt)
}

func TestTaskAccessIsCompanyScoped(t *testing.T) {
	svc := newTestTaskService(&fakeTaskRepository{})
	session := service.SessionContext{Login: "gx", Company: "globex"}
	ctx := context.Background()

	_, err := svc.GetTasks(ctx, session, "acme")
	assert.ErrorIs(t, err, apperrors.ErrForbiddenCompany)

	_, err = svc.CreateTask(ctx, session, dto.CreateTaskDTO{Company: "acme", Title: "x"})
	assert.ErrorIs(t, err, apperrors.ErrForbiddenCompany)

	err = svc.CompleteTask(ctx, session, "acme", "t-1")
	assert.ErrorIs(t, err, apperrors.ErrForbiddenCompany)
}

func TestCompleteTaskCannotReachOtherCompanyByID(t *testing.T) {
	repo := &fakeTaskRepository{tasks: []entities.Task{
		{ID: "t-9", Company: "acme", Title: "replace belt"},
	}}
	svc := newTestTaskService(repo)

	// The session names its own company in the URL but a foreign task ID;
	// the completion must not land on acme's row.
	session := service.SessionContext{Login: "gx", Company: "globex"}
	err := svc.CompleteTask(context.Background(), session, "globex", "t-9")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.False(t, repo.tasks[0].Completed)
}
