package task

import (
	"context"

	"github.com/muhammadheryan/compose-demos/constant"
	"github.com/muhammadheryan/compose-demos/model"
	taskrepo "github.com/muhammadheryan/compose-demos/repository/task"
	"github.com/muhammadheryan/compose-demos/utils/errors"
	"github.com/muhammadheryan/compose-demos/utils/logger"
	validatorx "github.com/muhammadheryan/compose-demos/utils/validator"
	"go.uber.org/zap"
)

type TaskApp interface {
	Add(ctx context.Context, req *model.AddTaskRequest) (*model.Task, error)
	Toggle(ctx context.Context, id uint64) (*model.Task, error)
	Delete(ctx context.Context, id uint64) error
	Board(ctx context.Context, mode constant.SortMode) (*model.TaskBoard, error)
}

type taskAppImpl struct {
	taskRepo taskrepo.TaskRepository
}

func NewTaskApp(taskRepo taskrepo.TaskRepository) TaskApp {
	return &taskAppImpl{taskRepo: taskRepo}
}

func (s *taskAppImpl) Add(ctx context.Context, req *model.AddTaskRequest) (*model.Task, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetFieldErrors(fieldMessages(err))
	}

	task, err := s.taskRepo.Create(ctx, &model.Task{
		Title:    req.Title,
		Deadline: req.Deadline,
		Category: req.Category,
	})
	if err != nil {
		logger.Error("[Add] err taskRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return task, nil
}

func (s *taskAppImpl) Toggle(ctx context.Context, id uint64) (*model.Task, error) {
	found, err := s.taskRepo.ToggleDone(ctx, id)
	if err != nil {
		logger.Error("[Toggle] err taskRepo.ToggleDone", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !found {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	task, err := s.taskRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[Toggle] err taskRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if task == nil {
		// deleted between the two statements
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return task, nil
}

func (s *taskAppImpl) Delete(ctx context.Context, id uint64) error {
	deleted, err := s.taskRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[Delete] err taskRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

func (s *taskAppImpl) Board(ctx context.Context, mode constant.SortMode) (*model.TaskBoard, error) {
	if mode == "" {
		mode = constant.SortDefault
	}
	if !mode.Valid() {
		return nil, errors.SetFieldErrors(map[string]string{"sort": "unknown sort mode"})
	}

	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		logger.Error("[Board] err taskRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	todo, done := Partition(tasks)
	board := &model.TaskBoard{
		Todo:     todo,
		Done:     done,
		Sorted:   Sorted(tasks, mode),
		SortMode: string(mode),
	}
	if len(todo) == 0 {
		board.TodoEmpty = constant.EmptyTodoMessage
	}
	if len(done) == 0 {
		board.DoneEmpty = constant.EmptyDoneMessage
	}
	return board, nil
}

var taskMessages = map[string]string{
	"title":    "Judul garapan tidak boleh kosong",
	"deadline": "Deadline harus dipilih",
	"category": "Kategori harus dipilih",
}

func fieldMessages(err error) map[string]string {
	out := map[string]string{}
	for field, tag := range validatorx.FieldTags(err) {
		msg := taskMessages[field]
		if field == "category" && tag == "taskcategory" {
			msg = "Kategori tidak dikenal"
		}
		if msg == "" {
			msg = "invalid " + field
		}
		out[field] = msg
	}
	return out
}
