package constant

type SortMode string

const (
	SortDefault      SortMode = "default"
	SortDeadline     SortMode = "deadline"
	SortPendingFirst SortMode = "pending_first"
	SortDoneFirst    SortMode = "done_first"
)

func (m SortMode) Valid() bool {
	switch m {
	case SortDefault, SortDeadline, SortPendingFirst, SortDoneFirst:
		return true
	}
	return false
}

var TaskCategories = []string{"Kuliah", "Tugas", "Olahraga", "Hiburan", "Kegiatan kampus", "Lainnya"}

const (
	EmptyTodoMessage = "Kamu hebat! Tidak ada tugas tersisa 🎉"
	EmptyDoneMessage = "Ayo Selesaikan Tugasmu Sekarang 🔥"
)
