package dto

// ZoneDTO is one entry of the zone selector for a company.
type ZoneDTO struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Empty       bool   `json:"empty"` // no equipment assigned to the zone
	Alert       string `json:"alert"` // rollup health state of the zone
}

// EquipmentBadgeDTO is one entry of the equipment selector inside a zone.
type EquipmentBadgeDTO struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Label       string `json:"label"` // "CODE - description", how the legacy UI names equipment
	Alert       string `json:"alert"`
}

// ConsumableStatusDTO is one wear part on the equipment detail panel.
type ConsumableStatusDTO struct {
	Name             string  `json:"name"`
	UsedHours        float64 `json:"used_hours"`
	RatedLifeHours   float64 `json:"rated_life_hours"`
	RemainingHours   float64 `json:"remaining_hours"`
	ConsumedFraction float64 `json:"consumed_fraction"`
	State            string  `json:"state"`
}

// EquipmentDetailDTO is the full equipment page: identity, media links
// (resolved to viewable form) and the health of every consumable.
type EquipmentDetailDTO struct {
	Code         string                `json:"code"`
	Description  string                `json:"description"`
	Zone         string                `json:"zone"`
	OP           string                `json:"op"`
	InstallDate  string                `json:"install_date,omitempty"`
	PhotoURL     string                `json:"photo_url,omitempty"`
	ManualURL    string                `json:"manual_url,omitempty"`
	DatasheetURL string                `json:"datasheet_url,omitempty"`
	Consumables  []ConsumableStatusDTO `json:"consumables"`
	Alert        string                `json:"alert"` // rollup over the consumables
	Offline      bool                  `json:"offline,omitempty"`
}
