package domain

// PriorityCounts is the number of tasks at each priority.
type PriorityCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// StatusCounts is the number of tasks in each status.
type StatusCounts struct {
	Todo     int `json:"todo"`
	Progress int `json:"progress"`
	Done     int `json:"done"`
}

// Analytics is the aggregate breakdown of every stored task.
// Each task is counted exactly once in ByPriority and once in ByStatus.
type Analytics struct {
	ByPriority PriorityCounts `json:"byPriority"`
	ByStatus   StatusCounts   `json:"byStatus"`
}

// Add counts a single task into both breakdowns.
func (a *Analytics) Add(t *Task) {
	switch t.Priority {
	case PriorityHigh:
		a.ByPriority.High++
	case PriorityMedium:
		a.ByPriority.Medium++
	case PriorityLow:
		a.ByPriority.Low++
	}

	switch t.Status {
	case StatusTodo:
		a.ByStatus.Todo++
	case StatusProgress:
		a.ByStatus.Progress++
	case StatusDone:
		a.ByStatus.Done++
	}
}

// PriorityTotal is the sum of ByPriority.
func (a Analytics) PriorityTotal() int {
	return a.ByPriority.High + a.ByPriority.Medium + a.ByPriority.Low
}

// StatusTotal is the sum of ByStatus.
func (a Analytics) StatusTotal() int {
	return a.ByStatus.Todo + a.ByStatus.Progress + a.ByStatus.Done
}
