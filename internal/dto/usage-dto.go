package dto

import "github.com/aarondl/null/v8"

// RecordVisitDTO records one maintenance visit for one piece of equipment.
// Hours may be entered manually; when absent they are derived from how far
// into the daily operating window the visit was recorded. A visit that
// replaces parts always records zero hours for itself — the reset happens in
// the wear ledger, not by rewriting history.
type RecordVisitDTO struct {
	Company       string       `json:"company" validate:"required"`
	EquipmentCode string       `json:"equipment_code" validate:"required"`
	Date          string       `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Hours         null.Float64 `json:"hours,omitempty"`
	ReplacedParts []string     `json:"replaced_parts,omitempty"`
	ClientNotes   string       `json:"client_notes,omitempty"`
	TechNotes     string       `json:"tech_notes,omitempty"`
}

// AutoUsageDTO triggers the end-of-window sweep that writes one automatic
// usage event per equipment of the company for the given date.
type AutoUsageDTO struct {
	Company string `json:"company" validate:"required"`
	Date    string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type UsageEventDTO struct {
	Company       string   `json:"company"`
	Date          string   `json:"date"`
	OP            string   `json:"op,omitempty"`
	EquipmentCode string   `json:"equipment_code"`
	Description   string   `json:"description,omitempty"`
	Hours         float64  `json:"hours"`
	ReplacedParts []string `json:"replaced_parts,omitempty"`
	Source        string   `json:"source"`
}

// AutoUsageResultDTO reports what the sweep did.
type AutoUsageResultDTO struct {
	Date     string   `json:"date"`
	Recorded []string `json:"recorded"` // equipment codes that got an event
	Skipped  []string `json:"skipped"`  // already had an automatic event that day
}
