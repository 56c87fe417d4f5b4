package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/pkg/config"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/service"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUsageRepository struct {
	events []entities.UsageEvent
}

func (f *fakeUsageRepository) GetEvents(ctx context.Context, company, code string) ([]entities.UsageEvent, error) {
	var out []entities.UsageEvent
	for _, ev := range f.events {
		if strings.EqualFold(ev.Company, company) && ev.EquipmentCode == code {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeUsageRepository) AppendEvent(ctx context.Context, event entities.UsageEvent) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeUsageRepository) HasAutoEvent(ctx context.Context, company, code, date string) (bool, error) {
	for _, ev := range f.events {
		if strings.EqualFold(ev.Company, company) && ev.EquipmentCode == code &&
			ev.Date == date && ev.Source == entities.UsageSourceAuto {
			return true, nil
		}
	}
	return false, nil
}

type fakeEquipmentRepository struct {
	equipment []entities.Equipment
}

func (f *fakeEquipmentRepository) GetByCompany(ctx context.Context, company string) ([]entities.Equipment, error) {
	var out []entities.Equipment
	for _, eq := range f.equipment {
		if strings.EqualFold(eq.Company, company) {
			out = append(out, eq)
		}
	}
	return out, nil
}

func (f *fakeEquipmentRepository) FindByCode(ctx context.Context, company, code string) (*entities.Equipment, error) {
	for i := range f.equipment {
		if strings.EqualFold(f.equipment[i].Company, company) && f.equipment[i].Code == code {
			return &f.equipment[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeEquipmentRepository) GetZones(ctx context.Context) ([]string, error) {
	var zones []string
	seen := map[string]bool{}
	for _, eq := range f.equipment {
		if eq.Zone != "" && !seen[eq.Zone] {
			seen[eq.Zone] = true
			zones = append(zones, eq.Zone)
		}
	}
	return zones, nil
}

var testWindow = config.OperatingWindowConfig{Start: 8 * time.Hour, End: 18 * time.Hour}

func newTestUsageService(usage *fakeUsageRepository, equipment *fakeEquipmentRepository, at time.Time) *UsageService {
	svc := NewUsageService(usage, equipment, testWindow, zap.NewNop())
	svc.now = func() time.Time { return at }
	return svc
}

func pressEquipment() *fakeEquipmentRepository {
	return &fakeEquipmentRepository{equipment: []entities.Equipment{
		{
			Company: "acme", Code: "EQ-1", Description: "hydraulic press", Zone: "stamping", OP: "OP-100",
			Consumables: []entities.Consumable{
				{Name: "seal kit", RatedLifeHours: 500},
				{Name: "filter", RatedLifeHours: 700},
			},
		},
		{Company: "acme", Code: "EQ-2", Description: "lathe", Zone: "machining"},
	}}
}

func TestRecordVisitManualHours(t *testing.T) {
	usage := &fakeUsageRepository{}
	svc := newTestUsageService(usage, pressEquipment(), time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC))

	event, err := svc.RecordVisit(context.Background(), service.SessionContext{Login: "jdoe", Company: "acme"}, dto.RecordVisitDTO{
		Company:       "acme",
		EquipmentCode: "EQ-1",
		Date:          "2026-03-02",
		Hours:         null.Float64From(6.5),
	})
	require.NoError(t, err)

	assert.Equal(t, 6.5, event.Hours)
	assert.Equal(t, entities.UsageSourceManual, event.Source)
	require.Len(t, usage.events, 1)
	assert.Equal(t, "OP-100", usage.events[0].OP)
}

func TestRecordVisitReplacedPartsRecordZeroHours(t *testing.T) {
	usage := &fakeUsageRepository{}
	svc := newTestUsageService(usage, pressEquipment(), time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC))

	event, err := svc.RecordVisit(context.Background(), service.SessionContext{Company: "acme"}, dto.RecordVisitDTO{
		Company:       "acme",
		EquipmentCode: "EQ-1",
		Hours:         null.Float64From(9),
		ReplacedParts: []string{"seal kit", "flux capacitor"},
	})
	require.NoError(t, err)

	// The swap visit contributes no running hours, even with hours entered,
	// and unknown part names never reach the log.
	assert.Equal(t, 0.0, event.Hours)
	assert.Equal(t, []string{"seal kit"}, event.ReplacedParts)
}

func TestRecordVisitDerivesHoursFromOperatingWindow(t *testing.T) {
	cases := []struct {
		name  string
		clock time.Time
		hours float64
	}{
		{"mid window", time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC), 4},
		{"before window", time.Date(2026, 3, 2, 6, 30, 0, 0, time.UTC), 0},
		{"after window", time.Date(2026, 3, 2, 21, 0, 0, 0, time.UTC), 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			usage := &fakeUsageRepository{}
			svc := newTestUsageService(usage, pressEquipment(), tc.clock)

			event, err := svc.RecordVisit(context.Background(), service.SessionContext{}, dto.RecordVisitDTO{
				Company:       "acme",
				EquipmentCode: "EQ-1",
			})
			require.NoError(t, err)
			assert.InDelta(t, tc.hours, event.Hours, 1e-9)
		})
	}
}

func TestRecordVisitNegativeHoursFloorAtZero(t *testing.T) {
	usage := &fakeUsageRepository{}
	svc := newTestUsageService(usage, pressEquipment(), time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC))

	event, err := svc.RecordVisit(context.Background(), service.SessionContext{}, dto.RecordVisitDTO{
		Company:       "acme",
		EquipmentCode: "EQ-1",
		Hours:         null.Float64From(-3),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, event.Hours)
}

func TestRecordVisitForbiddenForOtherCompany(t *testing.T) {
	svc := newTestUsageService(&fakeUsageRepository{}, pressEquipment(), time.Now())

	_, err := svc.RecordVisit(context.Background(), service.SessionContext{Login: "gx", Company: "globex"}, dto.RecordVisitDTO{
		Company:       "acme",
		EquipmentCode: "EQ-1",
	})
	assert.ErrorIs(t, err, apperrors.ErrForbiddenCompany)
}

func TestAutoSweepIsIdempotentPerDay(t *testing.T) {
	usage := &fakeUsageRepository{}
	svc := newTestUsageService(usage, pressEquipment(), time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC))
	ctx := context.Background()
	session := service.SessionContext{Company: "acme"}

	result, err := svc.AutoSweep(ctx, session, dto.AutoUsageDTO{Company: "acme", Date: "2026-03-02"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"EQ-1", "EQ-2"}, result.Recorded)
	assert.Empty(t, result.Skipped)

	for _, ev := range usage.events {
		assert.Equal(t, entities.UsageSourceAuto, ev.Source)
		assert.InDelta(t, 10.0, ev.Hours, 1e-9)
	}

	result, err = svc.AutoSweep(ctx, session, dto.AutoUsageDTO{Company: "acme", Date: "2026-03-02"})
	require.NoError(t, err)
	assert.Empty(t, result.Recorded)
	assert.ElementsMatch(t, []string{"EQ-1", "EQ-2"}, result.Skipped)
	assert.Len(t, usage.events, 2)
}

func TestAutoSweepNewDayRecordsAgain(t *testing.T) {
	usage := &fakeUsageRepository{}
	svc := newTestUsageService(usage, pressEquipment(), time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC))
	ctx := context.Background()
	session := service.SessionContext{}

	_, err := svc.AutoSweep(ctx, session, dto.AutoUsageDTO{Company: "acme", Date: "2026-03-02"})
	require.NoError(t, err)

	result, err := svc.AutoSweep(ctx, session, dto.AutoUsageDTO{Company: "acme", Date: "2026-03-03"})
	require.NoError(t, err)
	assert.Len(t, result.Recorded, 2)
	assert.Len(t, usage.events, 4)
}
