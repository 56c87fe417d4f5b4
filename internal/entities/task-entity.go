package entities

// Task is one row of the per-company task sheet. Tasks are append-only;
// completion flips two cells in place.
type Task struct {
	ID          string
	Company     string
	Title       string
	AssignedBy  string
	AssignedAt  string
	Completed   bool
	CompletedAt string

	// RowIndex is the 1-based data-row position in the sheet, needed to
	// address the completion cells. Not part of the record itself.
	RowIndex int
}
