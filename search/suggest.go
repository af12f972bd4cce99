package search

import (
	"sort"
	"strings"

	"github.com/watchmen-in/cisadex-engine/entity"
	"github.com/watchmen-in/cisadex-engine/geo"
)

// DefaultProximityRadius is the radius in miles used by ByProximity when
// the caller passes a non-positive radius.
const DefaultProximityRadius = 50.0

// Proximate is one entity with its distance from a query point.
type Proximate struct {
	Entity   entity.Entity `json:"entity"`
	Distance float64       `json:"distance_miles"`
}

// ByProximity returns entities within the radius of the center, sorted by
// ascending distance. Entities without valid coordinates are excluded. A
// non-positive radius means DefaultProximityRadius.
func (s *Searcher) ByProximity(center entity.Coordinates, radiusMiles float64) []Proximate {
	if radiusMiles <= 0 {
		radiusMiles = DefaultProximityRadius
	}
	var out []Proximate
	for _, e := range s.entities {
		if !e.Location.Coordinates.Valid() {
			continue
		}
		d := geo.Haversine(center, e.Location.Coordinates)
		if d <= radiusMiles {
			out = append(out, Proximate{Entity: e, Distance: d})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Distance < out[j].Distance
	})
	return out
}

// Suggestions returns up to limit distinct completion strings for a
// partial query, drawn from entity names, "City, ST" pairs, and agency
// names, matched by case-insensitive substring in first-seen order. A
// blank query returns nil.
func (s *Searcher) Suggestions(partial string, limit int) []string {
	partial = strings.ToLower(strings.TrimSpace(partial))
	if partial == "" {
		return nil
	}
	if limit <= 0 {
		limit = 10
	}

	seen := make(map[string]struct{})
	var out []string
	add := func(candidate string) bool {
		if candidate == "" || !strings.Contains(strings.ToLower(candidate), partial) {
			return len(out) < limit
		}
		if _, dup := seen[candidate]; dup {
			return len(out) < limit
		}
		seen[candidate] = struct{}{}
		out = append(out, candidate)
		return len(out) < limit
	}

	for _, e := range s.entities {
		if !add(e.Name) {
			return out
		}
		if e.Location.City != "" && e.Location.State != "" {
			if !add(e.Location.City + ", " + e.Location.State) {
				return out
			}
		}
		if !add(string(e.ParentAgency)) {
			return out
		}
	}
	return out
}
