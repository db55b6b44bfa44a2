package model

type Task struct {
	ID       uint64 `db:"id" json:"id"`
	Title    string `db:"title" json:"title"`
	Deadline string `db:"deadline" json:"deadline"`
	Category string `db:"category" json:"category"`
	IsDone   bool   `db:"is_done" json:"is_done"`
}

type AddTaskRequest struct {
	Title    string `json:"title" validate:"notblank"`
	Deadline string `json:"deadline" validate:"notblank"`
	Category string `json:"category" validate:"notblank,taskcategory"`
}

// TaskBoard is the task screen: the two partitions plus the sorted view.
type TaskBoard struct {
	Todo      []Task `json:"todo"`
	Done      []Task `json:"done"`
	Sorted    []Task `json:"sorted"`
	SortMode  string `json:"sort_mode"`
	TodoEmpty string `json:"todo_empty,omitempty"`
	DoneEmpty string `json:"done_empty,omitempty"`
}
