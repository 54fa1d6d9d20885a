// Package service contains the application-specific use cases for tasks.
//
// TaskService binds the input validators in package domain, the configured
// store.TaskStore and the classification service into the operations exposed
// by the HTTP API. It receives its store once at construction and never
// switches backends afterwards.
//
// Error handling principles:
//  1. Validation failures are returned unchanged as *domain.ValidationError.
//  2. Missing tasks are reported with the ErrTaskNotFound sentinel.
//  3. Any other failure is wrapped in a *TaskServiceError with the operation name.
//  4. Classification has no failure path other than input validation.
package service
