package repositories

import (
	"context"
	"strings"

	"maintenance-system/internal/entities"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/utils"

	"go.uber.org/zap"
)

type EquipmentRepositoryInterface interface {
	GetByCompany(ctx context.Context, company string) ([]entities.Equipment, error)
	FindByCode(ctx context.Context, company, code string) (*entities.Equipment, error)
	// GetZones returns the distinct zone names across the whole catalog, in
	// first-appearance order.
	GetZones(ctx context.Context) ([]string, error)
}

type EquipmentRepository struct {
	store  SheetStore
	sheet  string
	logger *zap.Logger
}

func NewEquipmentRepository(store SheetStore, sheet string, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{
		store:  store,
		sheet:  sheet,
		logger: logger,
	}
}

func sameCompany(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func (r *EquipmentRepository) GetByCompany(ctx context.Context, company string) ([]entities.Equipment, error) {
	rows, err := r.store.ReadRows(ctx, r.sheet)
	if err != nil {
		return nil, err
	}

	equipment := make([]entities.Equipment, 0)
	for _, row := range rows {
		if row["code"] == "" || !sameCompany(row["company"], company) {
			continue
		}
		equipment = append(equipment, entities.Equipment{
			Company:      row["company"],
			Code:         strings.TrimSpace(row["code"]),
			Description:  row["description"],
			Zone:         strings.TrimSpace(row["zone"]),
			OP:           row["op"],
			Consumables:  parseConsumables(row["consumables"], row["rated_life"]),
			InstallDate:  row["install_date"],
			PhotoURL:     row["photo_url"],
			ManualURL:    row["manual_url"],
			DatasheetURL: row["datasheet_url"],
		})
	}
	return equipment, nil
}

func (r *EquipmentRepository) FindByCode(ctx context.Context, company, code string) (*entities.Equipment, error) {
	equipment, err := r.GetByCompany(ctx, company)
	if err != nil {
		return nil, err
	}
	for i := range equipment {
		if equipment[i].Code == strings.TrimSpace(code) {
			return &equipment[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *EquipmentRepository) GetZones(ctx context.Context) ([]string, error) {
	rows, err := r.store.ReadRows(ctx, r.sheet)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	zones := make([]string, 0)
	for _, row := range rows {
		zone := strings.TrimSpace(row["zone"])
		if zone == "" || seen[zone] {
			continue
		}
		seen[zone] = true
		zones = append(zones, zone)
	}
	return zones, nil
}

// parseConsumables zips the two parallel comma-separated catalog cells into
// explicit name/rated-life pairs. A rated-life list shorter than the name
// list leaves the trailing parts on the default; blank or non-numeric cells
// also fall back to the default.
func parseConsumables(names, ratedLives string) []entities.Consumable {
	lives := strings.Split(ratedLives, ",")

	var out []entities.Consumable
	i := 0
	for _, raw := range strings.Split(names, ",") {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		rated := float64(entities.DefaultRatedLifeHours)
		if i < len(lives) {
			rated = utils.ParseRatedLife(lives[i], entities.DefaultRatedLifeHours)
		}
		out = append(out, entities.Consumable{Name: name, RatedLifeHours: rated})
		i++
	}
	return out
}
