package repositories

import "context"

// Row is one record of a worksheet, keyed by the lowercased, trimmed header
// row. Missing cells read as "".
type Row map[string]string

// SheetStore is everything the dashboard requires of its tabular backing
// store: schema-less reads, append-only writes, and single-cell updates.
// Row and column indexes are 1-based over data rows (the header is row 0 and
// not addressable).
type SheetStore interface {
	ReadRows(ctx context.Context, table string) ([]Row, error)
	AppendRow(ctx context.Context, table string, values []string) error
	UpdateCell(ctx context.Context, table string, rowIndex, colIndex int, value string) error
}

// Sheet headers. The store creates a missing worksheet with its header row on
// first append, which is how fresh workbooks bootstrap themselves.
var SheetHeaders = map[string][]string{
	"companies": {"company", "manager", "contact", "location", "technician", "layout_url", "qr_url", "process_params_url"},
	"equipment": {"company", "code", "description", "zone", "op", "consumables", "rated_life", "install_date", "photo_url", "manual_url", "datasheet_url"},
	"usage_log": {"company", "date", "op", "code", "description", "hours", "replaced_parts", "client_notes", "tech_notes", "source"},
	"tasks":     {"task_id", "company", "title", "assigned_by", "assigned_at", "completed", "completed_at"},
	"chat":      {"message_id", "sent_at", "user", "message", "company"},
	"users":     {"login", "password_hash", "company"},
}
