package task_test

import (
	"context"
	"sync"
	"testing"

	"github.com/muhammadheryan/compose-demos/cmd/config"
	"github.com/muhammadheryan/compose-demos/cmd/database"
	"github.com/muhammadheryan/compose-demos/model"
	taskrepo "github.com/muhammadheryan/compose-demos/repository/task"
)

func newRepo(t *testing.T) taskrepo.TaskRepository {
	t.Helper()
	cfg := &config.Config{Database: config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"}}
	db, err := database.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("database.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return taskrepo.NewTaskRepository(db)
}

func TestSQL_CreateListGet(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	for _, title := range []string{"Laprak", "UTS", "Futsal"} {
		if _, err := repo.Create(ctx, &model.Task{Title: title, Deadline: "2024-05-01", Category: "Tugas"}); err != nil {
			t.Fatalf("Create(%s) error = %v", title, err)
		}
	}

	tasks, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("List() returned %d tasks, want 3", len(tasks))
	}
	for i, task := range tasks {
		if task.ID != uint64(i+1) || task.IsDone {
			t.Fatalf("task %d = %+v", i, task)
		}
	}

	got, err := repo.Get(ctx, 2)
	if err != nil || got == nil || got.Title != "UTS" {
		t.Fatalf("Get(2) = %+v, %v", got, err)
	}

	missing, err := repo.Get(ctx, 42)
	if err != nil || missing != nil {
		t.Fatalf("Get(42) = %+v, %v; want nil, nil", missing, err)
	}
}

func TestSQL_ToggleDone(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	created, err := repo.Create(ctx, &model.Task{Title: "Laprak", Deadline: "2024-05-01", Category: "Tugas"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := repo.ToggleDone(ctx, created.ID)
	if err != nil || !found {
		t.Fatalf("ToggleDone() = %v, %v", found, err)
	}
	got, _ := repo.Get(ctx, created.ID)
	if !got.IsDone {
		t.Fatalf("task not marked done")
	}

	found, err = repo.ToggleDone(ctx, 42)
	if err != nil || found {
		t.Fatalf("ToggleDone(42) = %v, %v; want false, nil", found, err)
	}
}

func TestSQL_ToggleDoneConcurrent(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	created, err := repo.Create(ctx, &model.Task{Title: "UAS", Deadline: "2024-06-01", Category: "Kuliah"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// an even number of flips lands back on pending
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.ToggleDone(ctx, created.ID); err != nil {
				t.Errorf("ToggleDone() error = %v", err)
			}
		}()
	}
	wg.Wait()

	got, _ := repo.Get(ctx, created.ID)
	if got.IsDone {
		t.Fatalf("task done after 10 flips, a flip was lost")
	}
}

func TestSQL_DeleteNeverReusesIDs(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	first, _ := repo.Create(ctx, &model.Task{Title: "A", Deadline: "d", Category: "Lainnya"})
	second, _ := repo.Create(ctx, &model.Task{Title: "B", Deadline: "d", Category: "Lainnya"})

	deleted, err := repo.Delete(ctx, second.ID)
	if err != nil || !deleted {
		t.Fatalf("Delete() = %v, %v", deleted, err)
	}
	deleted, err = repo.Delete(ctx, second.ID)
	if err != nil || deleted {
		t.Fatalf("second Delete() = %v, %v; want false", deleted, err)
	}

	third, _ := repo.Create(ctx, &model.Task{Title: "C", Deadline: "d", Category: "Lainnya"})
	if third.ID == second.ID || third.ID <= first.ID {
		t.Fatalf("id %d reused or out of order", third.ID)
	}
}
