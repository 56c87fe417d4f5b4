package entities

// Usage event sources.
const (
	UsageSourceManual = "manual"
	UsageSourceAuto   = "auto"
)

// UsageEvent is one row of the usage log: a maintenance visit or an
// automatic end-of-window record for a single piece of equipment.
// Row order in the log is treated as chronological order.
type UsageEvent struct {
	Company       string
	Date          string // YYYY-MM-DD
	OP            string
	EquipmentCode string
	Description   string
	Hours         float64
	ReplacedParts []string
	ClientNotes   string
	TechNotes     string
	Source        string
}

// Replaced reports whether the event marks the named part as replaced.
// Matching is by exact name; unknown names are simply never asked about.
func (e UsageEvent) Replaced(part string) bool {
	for _, p := range e.ReplacedParts {
		if p == part {
			return true
		}
	}
	return false
}
