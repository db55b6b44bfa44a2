package task

import (
	"cmp"
	"slices"

	"github.com/muhammadheryan/compose-demos/constant"
	"github.com/muhammadheryan/compose-demos/model"
)

// Partition splits tasks into not-done and done, keeping their order.
func Partition(tasks []model.Task) (todo, done []model.Task) {
	todo = []model.Task{}
	done = []model.Task{}
	for _, t := range tasks {
		if t.IsDone {
			done = append(done, t)
		} else {
			todo = append(todo, t)
		}
	}
	return todo, done
}

// Sorted returns a sorted copy of tasks; tasks itself is left as is.
func Sorted(tasks []model.Task, mode constant.SortMode) []model.Task {
	out := slices.Clone(tasks)
	if out == nil {
		out = []model.Task{}
	}
	switch mode {
	case constant.SortDeadline:
		slices.SortStableFunc(out, func(a, b model.Task) int {
			return cmp.Compare(a.Deadline, b.Deadline)
		})
	case constant.SortPendingFirst:
		slices.SortStableFunc(out, func(a, b model.Task) int {
			return cmp.Compare(doneRank(a), doneRank(b))
		})
	case constant.SortDoneFirst:
		slices.SortStableFunc(out, func(a, b model.Task) int {
			return cmp.Compare(doneRank(b), doneRank(a))
		})
	}
	return out
}

func doneRank(t model.Task) int {
	if t.IsDone {
		return 1
	}
	return 0
}
