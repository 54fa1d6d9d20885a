package api

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/service"
)

// MockTaskService is a mock implementation of service.TaskService for testing
type MockTaskService struct {
	CreateTaskFn   func(ctx context.Context, raw any) (*domain.Task, error)
	ListTasksFn    func(ctx context.Context) ([]*domain.Task, error)
	GetTaskFn      func(ctx context.Context, id string) (*domain.Task, error)
	UpdateTaskFn   func(ctx context.Context, id string, raw any) (*domain.Task, error)
	DeleteTaskFn   func(ctx context.Context, id string) (*domain.Task, error)
	ClassifyTaskFn func(ctx context.Context, raw any) (domain.ClassificationResult, error)
	AnalyticsFn    func(ctx context.Context) (domain.Analytics, error)
}

var _ service.TaskService = (*MockTaskService)(nil)

// CreateTask implements service.TaskService
func (m *MockTaskService) CreateTask(ctx context.Context, raw any) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, raw)
	}
	return nil, nil
}

// ListTasks implements service.TaskService
func (m *MockTaskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx)
	}
	return nil, nil
}

// GetTask implements service.TaskService
func (m *MockTaskService) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, id)
	}
	return nil, nil
}

// UpdateTask implements service.TaskService
func (m *MockTaskService) UpdateTask(ctx context.Context, id string, raw any) (*domain.Task, error) {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, id, raw)
	}
	return nil, nil
}

// DeleteTask implements service.TaskService
func (m *MockTaskService) DeleteTask(ctx context.Context, id string) (*domain.Task, error) {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, id)
	}
	return nil, nil
}

// ClassifyTask implements service.TaskService
func (m *MockTaskService) ClassifyTask(ctx context.Context, raw any) (domain.ClassificationResult, error) {
	if m.ClassifyTaskFn != nil {
		return m.ClassifyTaskFn(ctx, raw)
	}
	return domain.ClassificationResult{}, nil
}

// Analytics implements service.TaskService
func (m *MockTaskService) Analytics(ctx context.Context) (domain.Analytics, error) {
	if m.AnalyticsFn != nil {
		return m.AnalyticsFn(ctx)
	}
	return domain.Analytics{}, nil
}
