package graph

import (
	"sort"

	"github.com/watchmen-in/cisadex-engine/entity"
)

// Opportunity is a suggested-but-not-yet-declared coordination
// relationship: a candidate entity, a human-readable rationale, and a
// heuristic confidence score.
type Opportunity struct {
	Entity   entity.Entity `json:"entity"`
	Reason   string        `json:"reason"`
	Strength float64       `json:"strength"`
}

// Opportunities scores candidate partners for an entity. Candidates are
// every other entity without a declared relationship to the origin;
// inferred coordination edges do not disqualify a candidate, since they
// are themselves suggestions rather than formal arrangements.
//
// Scoring keeps the maximum applicable rule per candidate:
//
//   - same state, different agency, complementary law-enforcement-family
//     functions on both sides: 0.7
//   - same state, different agency, overlapping sectors: 0.6
//   - overlapping jurisdiction with cyber signals on both sides: 0.8
//   - overlapping jurisdiction with critical-infrastructure signals on
//     both sides: 0.7
//
// Only candidates scoring strictly above the floor (0.5) are returned,
// sorted by descending strength. All four constants and the floor are
// tunable parameters.
func (g *Graph) Opportunities(id string) []Opportunity {
	origin, ok := g.entities[id]
	if !ok {
		return nil
	}

	declared := make(map[string]struct{}, len(origin.Relationships))
	for _, rel := range origin.Relationships {
		if rel.Active {
			declared[rel.RelatedEntityID] = struct{}{}
		}
	}

	var out []Opportunity
	for _, candidateID := range g.order {
		if candidateID == id {
			continue
		}
		if _, skip := declared[candidateID]; skip {
			continue
		}
		candidate := g.entities[candidateID]

		score, reason := g.scoreOpportunity(origin, candidate)
		if score > g.params.OpportunityFloor {
			out = append(out, Opportunity{Entity: candidate, Reason: reason, Strength: score})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Strength > out[j].Strength
	})
	return out
}

// scoreOpportunity applies every rule to the pair and keeps the maximum.
func (g *Graph) scoreOpportunity(origin, candidate entity.Entity) (float64, string) {
	var best float64
	var reason string
	consider := func(score float64, why string) {
		if score > best {
			best = score
			reason = why
		}
	}

	sameState := origin.Location.State != "" && origin.Location.State == candidate.Location.State
	differentAgency := origin.ParentAgency != candidate.ParentAgency

	if sameState && differentAgency {
		if origin.HasAnyFunction(lawEnforcementFamily...) && candidate.HasAnyFunction(lawEnforcementFamily...) {
			consider(g.params.ComplementaryFunctionScore,
				"complementary law enforcement functions in the same state")
		}
		if sharesSector(origin, candidate) {
			consider(g.params.SharedSectorScore,
				"overlapping sector coverage across agencies in the same state")
		}
	}

	if origin.SharesState(candidate) {
		if cyberSignal(origin) && cyberSignal(candidate) {
			consider(g.params.CyberCoordinationScore,
				"cyber coordination potential across overlapping jurisdictions")
		}
		if infrastructureSignal(origin) && infrastructureSignal(candidate) {
			consider(g.params.InfrastructureScore,
				"critical infrastructure protection across overlapping jurisdictions")
		}
	}

	return best, reason
}

func sharesSector(a, b entity.Entity) bool {
	for _, s := range a.Sectors {
		if b.HasSector(s) {
			return true
		}
	}
	return false
}
