package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/compose-demos/constant"
	"github.com/muhammadheryan/compose-demos/model"
	"github.com/muhammadheryan/compose-demos/utils/errors"
)

func taskID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return 0, false
	}
	return id, true
}

// TaskBoard handler
// @Summary Task board
// @Description Pending and done partitions plus the list sorted by mode
// @Tags Task
// @Produce json
// @Param sort query string false "default | deadline | pending_first | done_first"
// @Success 200 {object} model.TaskBoard
// @Failure 422 {object} errorResponse
// @Router /tasks [get]
func (s *RestHandler) TaskBoard(w http.ResponseWriter, r *http.Request) {
	mode := constant.SortMode(r.URL.Query().Get("sort"))
	res, err := s.TaskApp.Board(r.Context(), mode)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AddTask handler
// @Summary Add task
// @Tags Task
// @Accept json
// @Produce json
// @Param request body model.AddTaskRequest true "Task"
// @Success 200 {object} model.Task
// @Failure 422 {object} errorResponse
// @Router /tasks [post]
func (s *RestHandler) AddTask(w http.ResponseWriter, r *http.Request) {
	var req model.AddTaskRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.TaskApp.Add(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ToggleTask handler
// @Summary Toggle task done
// @Tags Task
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} model.Task
// @Failure 404 {object} errorResponse
// @Router /tasks/{id}/toggle [post]
func (s *RestHandler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}
	res, err := s.TaskApp.Toggle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteTask handler
// @Summary Delete task
// @Tags Task
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} successResponse
// @Failure 404 {object} errorResponse
// @Router /tasks/{id} [delete]
func (s *RestHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}
	if err := s.TaskApp.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// TaskCategories handler
// @Summary Task categories
// @Tags Task
// @Produce json
// @Success 200 {array} string
// @Router /tasks/categories [get]
func (s *RestHandler) TaskCategories(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, constant.TaskCategories)
}
