package services

import (
	"context"
	"time"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/config"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/service"

	"go.uber.org/zap"
)

type UsageServiceInterface interface {
	RecordVisit(ctx context.Context, session service.SessionContext, payload dto.RecordVisitDTO) (*dto.UsageEventDTO, error)
	AutoSweep(ctx context.Context, session service.SessionContext, payload dto.AutoUsageDTO) (*dto.AutoUsageResultDTO, error)
}

// UsageService appends usage events to the log. It never rewrites existing
// rows; all wear accounting is derived downstream by the wear ledger.
type UsageService struct {
	usageRepository     repositories.UsageRepositoryInterface
	equipmentRepository repositories.EquipmentRepositoryInterface
	window              config.OperatingWindowConfig
	logger              *zap.Logger

	now func() time.Time
}

func NewUsageService(
	usageRepository repositories.UsageRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	window config.OperatingWindowConfig,
	logger *zap.Logger,
) *UsageService {
	return &UsageService{
		usageRepository:     usageRepository,
		equipmentRepository: equipmentRepository,
		window:              window,
		logger:              logger,
		now:                 time.Now,
	}
}

// windowHours derives usage hours from how far into the daily operating
// window the clock is, capped at the window's total duration.
func (s *UsageService) windowHours(at time.Time) float64 {
	midnight := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())
	elapsed := at.Sub(midnight) - s.window.Start
	if elapsed < 0 {
		elapsed = 0
	}
	if max := s.window.Duration(); elapsed > max {
		elapsed = max
	}
	return elapsed.Hours()
}

// RecordVisit appends one usage event for one piece of equipment. Hours come
// from the payload when entered, otherwise from the operating window. A
// visit that replaced parts records zero hours of its own — resetting the
// replaced parts is the wear ledger's job, and the other parts of the
// equipment must not silently accrue phantom hours from the swap visit.
func (s *UsageService) RecordVisit(ctx context.Context, session service.SessionContext, payload dto.RecordVisitDTO) (*dto.UsageEventDTO, error) {
	if !session.CanAccess(payload.Company) {
		return nil, apperrors.ErrForbiddenCompany
	}

	eq, err := s.equipmentRepository.FindByCode(ctx, payload.Company, payload.EquipmentCode)
	if err != nil {
		return nil, err
	}

	date := payload.Date
	if date == "" {
		date = s.now().Format("2006-01-02")
	}

	replaced := filterKnownParts(payload.ReplacedParts, eq.ConsumableNames())

	var hours float64
	switch {
	case len(replaced) > 0:
		hours = 0
	case payload.Hours.Valid:
		hours = payload.Hours.Float64
		if hours < 0 {
			hours = 0
		}
	default:
		hours = s.windowHours(s.now())
	}

	event := entities.UsageEvent{
		Company:       eq.Company,
		Date:          date,
		OP:            eq.OP,
		EquipmentCode: eq.Code,
		Description:   eq.Description,
		Hours:         hours,
		ReplacedParts: replaced,
		ClientNotes:   payload.ClientNotes,
		TechNotes:     payload.TechNotes,
		Source:        entities.UsageSourceManual,
	}

	if err := s.usageRepository.AppendEvent(ctx, event); err != nil {
		s.logger.Error("failed to append usage event",
			zap.String("company", event.Company),
			zap.String("code", event.EquipmentCode),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("usage event recorded",
		zap.String("company", event.Company),
		zap.String("code", event.EquipmentCode),
		zap.Float64("hours", event.Hours),
		zap.Strings("replaced", event.ReplacedParts))

	return usageEventDTO(event), nil
}

// AutoSweep writes the end-of-window usage event for every equipment of the
// company. At most one automatic event exists per (company, equipment, date);
// running the sweep twice is a no-op for equipment already covered.
func (s *UsageService) AutoSweep(ctx context.Context, session service.SessionContext, payload dto.AutoUsageDTO) (*dto.AutoUsageResultDTO, error) {
	if !session.CanAccess(payload.Company) {
		return nil, apperrors.ErrForbiddenCompany
	}

	date := payload.Date
	if date == "" {
		date = s.now().Format("2006-01-02")
	}

	equipment, err := s.equipmentRepository.GetByCompany(ctx, payload.Company)
	if err != nil {
		return nil, err
	}

	result := &dto.AutoUsageResultDTO{Date: date, Recorded: []string{}, Skipped: []string{}}
	hours := s.windowHours(s.now())

	for _, eq := range equipment {
		exists, err := s.usageRepository.HasAutoEvent(ctx, eq.Company, eq.Code, date)
		if err != nil {
			return nil, err
		}
		if exists {
			result.Skipped = append(result.Skipped, eq.Code)
			continue
		}

		event := entities.UsageEvent{
			Company:       eq.Company,
			Date:          date,
			OP:            eq.OP,
			EquipmentCode: eq.Code,
			Description:   eq.Description,
			Hours:         hours,
			Source:        entities.UsageSourceAuto,
		}
		if err := s.usageRepository.AppendEvent(ctx, event); err != nil {
			return nil, err
		}
		result.Recorded = append(result.Recorded, eq.Code)
	}

	s.logger.Info("automatic usage sweep finished",
		zap.String("company", payload.Company),
		zap.String("date", date),
		zap.Int("recorded", len(result.Recorded)),
		zap.Int("skipped", len(result.Skipped)))

	return result, nil
}

// filterKnownParts keeps only replaced names present in the catalog list.
// Unknown names are dropped here so the log never carries them.
func filterKnownParts(replaced, known []string) []string {
	knownSet := make(map[string]bool, len(known))
	for _, k := range known {
		knownSet[k] = true
	}
	var out []string
	for _, p := range replaced {
		if knownSet[p] {
			out = append(out, p)
		}
	}
	return out
}

func usageEventDTO(event entities.UsageEvent) *dto.UsageEventDTO {
	return &dto.UsageEventDTO{
		Company:       event.Company,
		Date:          event.Date,
		OP:            event.OP,
		EquipmentCode: event.EquipmentCode,
		Description:   event.Description,
		Hours:         event.Hours,
		ReplacedParts: event.ReplacedParts,
		Source:        event.Source,
	}
}
