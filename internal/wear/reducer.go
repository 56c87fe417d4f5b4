// Package wear holds the two pieces of real domain logic in the dashboard:
// folding the usage log into per-part accumulated hours, and classifying the
// result into discrete health states via explicit threshold profiles.
package wear

import "maintenance-system/internal/entities"

// State maps a consumable name to the hours accumulated against it since its
// last replacement. It is derived per request and never persisted.
type State map[string]float64

// Reduce folds a chronologically ordered usage log for one (company,
// equipment) pair into a State. Every consumable starts at zero. For each
// event, a part named in the event's replaced set is reset to zero — the
// event's hours are NOT added to it, even though they may cover operation
// before the swap — and every other part accrues the event's hours.
//
// Replaced names not in the consumable list are silently ignored, and an
// empty log yields an all-zero state, so Reduce is total on any input.
func Reduce(events []entities.UsageEvent, consumables []string) State {
	state := make(State, len(consumables))
	for _, part := range consumables {
		state[part] = 0
	}

	for _, ev := range events {
		for _, part := range consumables {
			if ev.Replaced(part) {
				state[part] = 0
			} else {
				state[part] += ev.Hours
			}
		}
	}

	return state
}
