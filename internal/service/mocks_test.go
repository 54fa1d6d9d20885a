package service

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockTaskStore mocks the store.TaskStore interface
type MockTaskStore struct {
	mock.Mock
}

func (m *MockTaskStore) Create(ctx context.Context, input domain.TaskInput) (*domain.Task, error) {
	args := m.Called(ctx, input)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *MockTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	args := m.Called(ctx)
	tasks, _ := args.Get(0).([]*domain.Task)
	return tasks, args.Error(1)
}

func (m *MockTaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	args := m.Called(ctx, id)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *MockTaskStore) Update(ctx context.Context, id string, input domain.TaskInput) (*domain.Task, error) {
	args := m.Called(ctx, id, input)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *MockTaskStore) Delete(ctx context.Context, id string) (*domain.Task, error) {
	args := m.Called(ctx, id)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *MockTaskStore) Aggregate(ctx context.Context) (domain.Analytics, error) {
	args := m.Called(ctx)
	a, _ := args.Get(0).(domain.Analytics)
	return a, args.Error(1)
}

// MockClassifier mocks the Classifier interface
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, description string) domain.ClassificationResult {
	args := m.Called(ctx, description)
	return args.Get(0).(domain.ClassificationResult)
}
