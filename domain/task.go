package domain

// Task represents a to-do item with a completion flag, accumulated tracked
// time in milliseconds and a reference to an importance level.
type Task struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"des"`
	Done         bool   `json:"done"`
	Time         int64  `json:"time"`
	ImportanceID int64  `json:"iid"`
}

func (t *Task) IsDone() bool {
	return t != nil && t.Done
}

// AddTime accumulates tracked milliseconds. Non-positive deltas are ignored.
func (t *Task) AddTime(delta int64) {
	if t == nil || delta <= 0 {
		return
	}
	t.Time += delta
}
