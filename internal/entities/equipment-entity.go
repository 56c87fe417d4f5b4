package entities

// DefaultRatedLifeHours is assumed for a consumable whose rated-life cell is
// missing or not numeric.
const DefaultRatedLifeHours = 700

// Consumable is a named wear part with its rated service life in hours.
// The catalog sheet stores consumable names and rated lives as two parallel
// comma-separated lists; the repository zips them into this explicit pairing
// so nothing downstream depends on list positions.
type Consumable struct {
	Name           string
	RatedLifeHours float64
}

// Equipment is one piece of equipment in the catalog, identified by
// (company, code).
type Equipment struct {
	Company      string
	Code         string
	Description  string
	Zone         string
	OP           string // production order reference shown on the visit form
	Consumables  []Consumable
	InstallDate  string
	PhotoURL     string
	ManualURL    string
	DatasheetURL string
}

// ConsumableNames returns the part names in catalog order.
func (e Equipment) ConsumableNames() []string {
	names := make([]string, 0, len(e.Consumables))
	for _, c := range e.Consumables {
		names = append(names, c.Name)
	}
	return names
}

// RatedLife looks up the rated life for a part name, falling back to the
// default for names not in the catalog.
func (e Equipment) RatedLife(part string) float64 {
	for _, c := range e.Consumables {
		if c.Name == part {
			return c.RatedLifeHours
		}
	}
	return DefaultRatedLifeHours
}
