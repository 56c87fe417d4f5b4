package repositories

import (
	"context"
	"strconv"
	"strings"

	"maintenance-system/internal/entities"
	"maintenance-system/pkg/utils"

	"go.uber.org/zap"
)

type UsageRepositoryInterface interface {
	// GetEvents returns the usage log for one (company, equipment) pair in
	// the order the rows appear in the sheet, which is the order the wear
	// reducer folds them in.
	GetEvents(ctx context.Context, company, code string) ([]entities.UsageEvent, error)
	AppendEvent(ctx context.Context, event entities.UsageEvent) error
	HasAutoEvent(ctx context.Context, company, code, date string) (bool, error)
}

type UsageRepository struct {
	store  SheetStore
	sheet  string
	logger *zap.Logger
}

func NewUsageRepository(store SheetStore, sheet string, logger *zap.Logger) UsageRepositoryInterface {
	return &UsageRepository{
		store:  store,
		sheet:  sheet,
		logger: logger,
	}
}

// ReplacedPartsSeparator is how the replaced-parts cell joins names. The
// legacy sheets used ";" because part names contain commas.
const ReplacedPartsSeparator = ";"

func (r *UsageRepository) GetEvents(ctx context.Context, company, code string) ([]entities.UsageEvent, error) {
	rows, err := r.store.ReadRows(ctx, r.sheet)
	if err != nil {
		return nil, err
	}

	events := make([]entities.UsageEvent, 0)
	for _, row := range rows {
		if !sameCompany(row["company"], company) || strings.TrimSpace(row["code"]) != strings.TrimSpace(code) {
			continue
		}
		events = append(events, entities.UsageEvent{
			Company:       row["company"],
			Date:          row["date"],
			OP:            row["op"],
			EquipmentCode: strings.TrimSpace(row["code"]),
			Description:   row["description"],
			Hours:         utils.ParseHours(row["hours"]),
			ReplacedParts: splitReplacedParts(row["replaced_parts"]),
			ClientNotes:   row["client_notes"],
			TechNotes:     row["tech_notes"],
			Source:        row["source"],
		})
	}
	return events, nil
}

func (r *UsageRepository) AppendEvent(ctx context.Context, event entities.UsageEvent) error {
	return r.store.AppendRow(ctx, r.sheet, []string{
		event.Company,
		event.Date,
		event.OP,
		event.EquipmentCode,
		event.Description,
		strconv.FormatFloat(event.Hours, 'f', -1, 64),
		strings.Join(event.ReplacedParts, ReplacedPartsSeparator),
		event.ClientNotes,
		event.TechNotes,
		event.Source,
	})
}

func (r *UsageRepository) HasAutoEvent(ctx context.Context, company, code, date string) (bool, error) {
	events, err := r.GetEvents(ctx, company, code)
	if err != nil {
		return false, err
	}
	for _, ev := range events {
		if ev.Source == entities.UsageSourceAuto && ev.Date == date {
			return true, nil
		}
	}
	return false, nil
}

func splitReplacedParts(raw string) []string {
	var parts []string
	for _, p := range strings.Split(raw, ReplacedPartsSeparator) {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
