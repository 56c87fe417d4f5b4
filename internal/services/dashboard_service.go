package services

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	"maintenance-system/internal/wear"
	"maintenance-system/pkg/drivelink"

	"go.uber.org/zap"
)

// OfflineReporter is the slice of the cached store the dashboard needs to
// tell users they are looking at stale data.
type OfflineReporter interface {
	Offline() bool
}

type DashboardServiceInterface interface {
	CompanyRollup(ctx context.Context, company string) (wear.HealthState, error)
	Zones(ctx context.Context, company string) ([]dto.ZoneDTO, error)
	EquipmentBadges(ctx context.Context, company, zone string) ([]dto.EquipmentBadgeDTO, error)
	EquipmentDetail(ctx context.Context, company, code string) (*dto.EquipmentDetailDTO, error)
}

// DashboardService derives everything the dashboard shows from the
// equipment catalog and the usage log. Wear state is recomputed from scratch
// on every call; the logs are small and the store underneath is cached.
type DashboardService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	usageRepository     repositories.UsageRepositoryInterface
	offline             OfflineReporter
	logger              *zap.Logger
}

func NewDashboardService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	usageRepository repositories.UsageRepositoryInterface,
	offline OfflineReporter,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		equipmentRepository: equipmentRepository,
		usageRepository:     usageRepository,
		offline:             offline,
		logger:              logger,
	}
}

// wearStateFor folds the usage log of one piece of equipment.
func (s *DashboardService) wearStateFor(ctx context.Context, eq entities.Equipment) (wear.State, error) {
	events, err := s.usageRepository.GetEvents(ctx, eq.Company, eq.Code)
	if err != nil {
		return nil, err
	}
	return wear.Reduce(events, eq.ConsumableNames()), nil
}

// equipmentRollup classifies every consumable of one piece of equipment
// under the given profile and rolls the states up.
func (s *DashboardService) equipmentRollup(ctx context.Context, eq entities.Equipment, profile wear.ThresholdProfile) (wear.HealthState, error) {
	state, err := s.wearStateFor(ctx, eq)
	if err != nil {
		return wear.Good, err
	}

	worst := wear.Good
	for _, c := range eq.Consumables {
		a := wear.Classify(state[c.Name], c.RatedLifeHours, profile)
		worst = wear.Rollup(worst, a.State)
	}
	return worst, nil
}

// CompanyRollup is the alert badge next to a company name: the most severe
// state over every consumable of every equipment the company owns.
func (s *DashboardService) CompanyRollup(ctx context.Context, company string) (wear.HealthState, error) {
	equipment, err := s.equipmentRepository.GetByCompany(ctx, company)
	if err != nil {
		return wear.Good, err
	}

	worst := wear.Good
	for _, eq := range equipment {
		state, err := s.equipmentRollup(ctx, eq, wear.ProfileRollup)
		if err != nil {
			return wear.Good, err
		}
		worst = wear.Rollup(worst, state)
		if worst == wear.FailureImminent {
			break // nothing can outrank this
		}
	}
	return worst, nil
}

// Zones lists the zone selector for a company. The zone vocabulary comes
// from the whole catalog, so a zone the company has no equipment in shows up
// flagged as empty instead of disappearing.
func (s *DashboardService) Zones(ctx context.Context, company string) ([]dto.ZoneDTO, error) {
	zones, err := s.equipmentRepository.GetZones(ctx)
	if err != nil {
		return nil, err
	}
	equipment, err := s.equipmentRepository.GetByCompany(ctx, company)
	if err != nil {
		return nil, err
	}

	byZone := make(map[string][]entities.Equipment)
	for _, eq := range equipment {
		byZone[eq.Zone] = append(byZone[eq.Zone], eq)
	}

	out := make([]dto.ZoneDTO, 0, len(zones))
	for _, zone := range zones {
		entry := dto.ZoneDTO{
			Name:        zone,
			DisplayName: friendlyZoneName(zone),
			Alert:       wear.Good.String(),
		}
		inZone := byZone[zone]
		if len(inZone) == 0 {
			entry.Empty = true
			out = append(out, entry)
			continue
		}

		worst := wear.Good
		for _, eq := range inZone {
			state, err := s.equipmentRollup(ctx, eq, wear.ProfileRollup)
			if err != nil {
				return nil, err
			}
			worst = wear.Rollup(worst, state)
		}
		entry.Alert = worst.String()
		out = append(out, entry)
	}
	return out, nil
}

// EquipmentBadges lists a zone's equipment with the list-badge health state.
func (s *DashboardService) EquipmentBadges(ctx context.Context, company, zone string) ([]dto.EquipmentBadgeDTO, error) {
	equipment, err := s.equipmentRepository.GetByCompany(ctx, company)
	if err != nil {
		return nil, err
	}

	out := make([]dto.EquipmentBadgeDTO, 0)
	for _, eq := range equipment {
		if eq.Zone != zone {
			continue
		}
		state, err := s.equipmentRollup(ctx, eq, wear.ProfileListBadge)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.EquipmentBadgeDTO{
			Code:        eq.Code,
			Description: eq.Description,
			Label:       fmt.Sprintf("%s - %s", eq.Code, eq.Description),
			Alert:       state.String(),
		})
	}
	return out, nil
}

// EquipmentDetail builds the per-consumable panel for one piece of
// equipment, classified under the detail profile.
func (s *DashboardService) EquipmentDetail(ctx context.Context, company, code string) (*dto.EquipmentDetailDTO, error) {
	eq, err := s.equipmentRepository.FindByCode(ctx, company, code)
	if err != nil {
		return nil, err
	}

	state, err := s.wearStateFor(ctx, *eq)
	if err != nil {
		return nil, err
	}

	detail := &dto.EquipmentDetailDTO{
		Code:         eq.Code,
		Description:  eq.Description,
		Zone:         eq.Zone,
		OP:           eq.OP,
		InstallDate:  eq.InstallDate,
		PhotoURL:     drivelink.ViewURL(eq.PhotoURL),
		ManualURL:    drivelink.ViewURL(eq.ManualURL),
		DatasheetURL: drivelink.ViewURL(eq.DatasheetURL),
		Consumables:  make([]dto.ConsumableStatusDTO, 0, len(eq.Consumables)),
		Offline:      s.offline.Offline(),
	}

	worst := wear.Good
	for _, c := range eq.Consumables {
		a := wear.Classify(state[c.Name], c.RatedLifeHours, wear.ProfileDetail)
		worst = wear.Rollup(worst, a.State)
		detail.Consumables = append(detail.Consumables, dto.ConsumableStatusDTO{
			Name:             c.Name,
			UsedHours:        state[c.Name],
			RatedLifeHours:   c.RatedLifeHours,
			RemainingHours:   a.RemainingHours,
			ConsumedFraction: a.ConsumedFraction,
			State:            a.State.String(),
		})
	}
	detail.Alert = worst.String()

	return detail, nil
}

// friendlyZoneName renders "zona_molienda" as "Zona Molienda". Zone names
// come from Spanish-language sheets, so the first letter may be a multi-byte
// rune.
func friendlyZoneName(zone string) string {
	words := strings.Fields(strings.ReplaceAll(zone, "_", " "))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
