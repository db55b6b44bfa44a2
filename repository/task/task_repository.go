package task

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/compose-demos/model"
)

type SQL struct {
	conn *sqlx.DB
}

type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) (*model.Task, error)
	Get(ctx context.Context, id uint64) (*model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	ToggleDone(ctx context.Context, id uint64) (bool, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

func NewTaskRepository(conn *sqlx.DB) TaskRepository {
	return &SQL{conn: conn}
}

const (
	insertTaskQuery = `INSERT INTO task (title, deadline, category, is_done) VALUES (?, ?, ?, ?)`
	selectTaskBase  = `SELECT id, title, deadline, category, is_done FROM task`
	toggleDoneQuery = `UPDATE task SET is_done = NOT is_done WHERE id = ?`
	deleteTaskQuery = `DELETE FROM task WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.Task) (*model.Task, error) {
	result, err := s.conn.ExecContext(ctx, insertTaskQuery, data.Title, data.Deadline, data.Category, data.IsDone)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	created := *data
	created.ID = uint64(lastID)
	return &created, nil
}

func (s *SQL) Get(ctx context.Context, id uint64) (*model.Task, error) {
	var entity model.Task
	if err := s.conn.QueryRowxContext(ctx, selectTaskBase+" WHERE id = ?", id).StructScan(&entity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// List returns every task in storage (insertion) order.
func (s *SQL) List(ctx context.Context) ([]model.Task, error) {
	tasks := []model.Task{}
	if err := s.conn.SelectContext(ctx, &tasks, selectTaskBase+" ORDER BY id"); err != nil {
		return nil, err
	}
	return tasks, nil
}

// ToggleDone flips is_done in one statement and reports whether the row exists.
func (s *SQL) ToggleDone(ctx context.Context, id uint64) (bool, error) {
	result, err := s.conn.ExecContext(ctx, toggleDoneQuery, id)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// Delete reports whether a row was removed.
func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	result, err := s.conn.ExecContext(ctx, deleteTaskQuery, id)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
