package handler

type createTaskRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
}

// updateTaskRequest carries the full set of mutable fields; an update is a
// whole-record overwrite, not a patch.
type updateTaskRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	IsComplete  bool   `json:"is_complete"`
}
