package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/service"
)

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	if taskService == nil {
		panic("taskService cannot be nil")
	}
	return &TaskHandler{taskService: taskService}
}

// Routes returns a router serving the task endpoints, to be mounted at /tasks.
// The fixed paths are registered before /{id} so they are never read as ids.
func (h *TaskHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListTasks)
	r.Get("/analytics", h.GetAnalytics)
	r.Post("/classify", h.ClassifyTask)
	r.Post("/", h.CreateTask)
	r.Get("/{"+taskIDParam+"}", h.GetTask)
	r.Put("/{"+taskIDParam+"}", h.UpdateTask)
	r.Delete("/{"+taskIDParam+"}", h.DeleteTask)
	return r
}

// ListTasks handles GET /tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		handleServiceError(w, r, err, "Failed to fetch tasks")
		return
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}

// GetAnalytics handles GET /tasks/analytics.
func (h *TaskHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.taskService.Analytics(r.Context())
	if err != nil {
		handleServiceError(w, r, err, "Failed to fetch analytics")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, analytics)
}

// ClassifyTask handles POST /tasks/classify.
// It only fails when the request itself is invalid.
func (h *TaskHandler) ClassifyTask(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(w, r)
	if !ok {
		return
	}

	result, err := h.taskService.ClassifyTask(r.Context(), body)
	if err != nil {
		handleServiceError(w, r, err, "Failed to classify task")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// CreateTask handles POST /tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), body)
	if err != nil {
		handleServiceError(w, r, err, "Failed to create task")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, task)
}

// GetTask handles GET /tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.taskService.GetTask(r.Context(), getPathID(r))
	if err != nil {
		handleServiceError(w, r, err, "Failed to fetch task")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// UpdateTask handles PUT /tasks/{id}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), getPathID(r), body)
	if err != nil {
		handleServiceError(w, r, err, "Failed to update task")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if _, err := h.taskService.DeleteTask(r.Context(), getPathID(r)); err != nil {
		handleServiceError(w, r, err, "Failed to delete task")
		return
	}
	shared.RespondNoContent(w)
}
