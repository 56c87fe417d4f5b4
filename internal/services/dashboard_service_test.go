package services

import (
	"context"
	"testing"

	"maintenance-system/internal/entities"
	"maintenance-system/internal/wear"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticOffline bool

func (o staticOffline) Offline() bool { return bool(o) }

func newTestDashboard(equipment *fakeEquipmentRepository, usage *fakeUsageRepository, offline bool) *DashboardService {
	return NewDashboardService(equipment, usage, staticOffline(offline), zap.NewNop())
}

func dashboardFixture() (*fakeEquipmentRepository, *fakeUsageRepository) {
	equipment := &fakeEquipmentRepository{equipment: []entities.Equipment{
		{
			Company: "acme", Code: "EQ-1", Description: "hydraulic press", Zone: "stamping",
			Consumables: []entities.Consumable{
				{Name: "seal kit", RatedLifeHours: 400},
				{Name: "filter", RatedLifeHours: 700},
			},
		},
		{
			Company: "acme", Code: "EQ-2", Description: "lathe", Zone: "machining",
			Consumables: []entities.Consumable{
				{Name: "insert", RatedLifeHours: 700},
			},
		},
		{
			Company: "globex", Code: "GX-1", Description: "mill", Zone: "zona_molienda",
			Consumables: []entities.Consumable{
				{Name: "blade", RatedLifeHours: 700},
			},
		},
	}}
	usage := &fakeUsageRepository{events: []entities.UsageEvent{
		// seal kit and filter at 395 of 400 and 700: seal kit nearly spent.
		{Company: "acme", EquipmentCode: "EQ-1", Date: "2026-02-01", Hours: 395},
		// insert barely used.
		{Company: "acme", EquipmentCode: "EQ-2", Date: "2026-02-01", Hours: 10},
	}}
	return equipment, usage
}

func TestCompanyRollupIsWorstOverEquipment(t *testing.T) {
	equipment, usage := dashboardFixture()
	svc := newTestDashboard(equipment, usage, false)

	// seal kit: 5h remaining of 400, inside the rollup profile's warning band.
	state, err := svc.CompanyRollup(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, wear.Warning, state)
}

func TestCompanyRollupHealthyWithoutUsage(t *testing.T) {
	equipment, _ := dashboardFixture()
	svc := newTestDashboard(equipment, &fakeUsageRepository{}, false)

	state, err := svc.CompanyRollup(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, wear.Good, state)
}

func TestZonesCarryCatalogVocabulary(t *testing.T) {
	equipment, usage := dashboardFixture()
	svc := newTestDashboard(equipment, usage, false)

	zones, err := svc.Zones(context.Background(), "acme")
	require.NoError(t, err)
	require.Len(t, zones, 3)

	byName := map[string]int{}
	for i, z := range zones {
		byName[z.Name] = i
	}

	stamping := zones[byName["stamping"]]
	assert.False(t, stamping.Empty)
	assert.Equal(t, wear.Warning.String(), stamping.Alert)

	machining := zones[byName["machining"]]
	assert.False(t, machining.Empty)
	assert.Equal(t, wear.Good.String(), machining.Alert)

	// Globex's zone exists in the catalog, so acme sees it too, flagged
	// empty rather than dropped.
	molienda := zones[byName["zona_molienda"]]
	assert.True(t, molienda.Empty)
	assert.Equal(t, "Zona Molienda", molienda.DisplayName)
	assert.Equal(t, wear.Good.String(), molienda.Alert)
}

func TestFriendlyZoneName(t *testing.T) {
	cases := []struct {
		zone string
		want string
	}{
		{"zona_molienda", "Zona Molienda"},
		{"stamping", "Stamping"},
		{"área_de_hornos", "Área De Hornos"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, friendlyZoneName(tc.zone))
	}
}

func TestEquipmentBadgesFilterByZone(t *testing.T) {
	equipment, usage := dashboardFixture()
	svc := newTestDashboard(equipment, usage, false)

	badges, err := svc.EquipmentBadges(context.Background(), "acme", "stamping")
	require.NoError(t, err)
	require.Len(t, badges, 1)

	assert.Equal(t, "EQ-1", badges[0].Code)
	assert.Equal(t, "EQ-1 - hydraulic press", badges[0].Label)
	// 5h remaining sits inside the list-badge profile's critical band.
	assert.Equal(t, wear.Critical.String(), badges[0].Alert)
}

func TestEquipmentDetailPerConsumable(t *testing.T) {
	equipment, usage := dashboardFixture()
	svc := newTestDashboard(equipment, usage, true)

	detail, err := svc.EquipmentDetail(context.Background(), "acme", "EQ-1")
	require.NoError(t, err)

	assert.True(t, detail.Offline)
	require.Len(t, detail.Consumables, 2)

	seal := detail.Consumables[0]
	assert.Equal(t, "seal kit", seal.Name)
	assert.InDelta(t, 395, seal.UsedHours, 1e-9)
	assert.InDelta(t, 5, seal.RemainingHours, 1e-9)
	assert.InDelta(t, 395.0/400.0, seal.ConsumedFraction, 1e-9)
	assert.Equal(t, wear.Critical.String(), seal.State)

	filter := detail.Consumables[1]
	assert.Equal(t, "filter", filter.Name)
	assert.InDelta(t, 305, filter.RemainingHours, 1e-9)
	assert.Equal(t, wear.Warning.String(), filter.State)

	// The detail alert rolls up its own consumable states.
	assert.Equal(t, wear.Critical.String(), detail.Alert)
}
