package search

import (
	"github.com/watchmen-in/cisadex-engine/entity"
	"github.com/watchmen-in/cisadex-engine/geo"
	"github.com/watchmen-in/cisadex-engine/tuning"
)

// Cluster is a group of geographically close entities at one zoom level.
// Coordinates is the centroid (arithmetic mean) of the member points.
type Cluster struct {
	Coordinates     entity.Coordinates `json:"coordinates"`
	Count           int                `json:"count"`
	EntityIDs       []string           `json:"entity_ids"`
	PrimarySector   entity.Sector      `json:"primary_sector,omitempty"`
	PrimaryFunction entity.Function    `json:"primary_function,omitempty"`
	ZoomLevel       int                `json:"zoom_level"`
}

// BuildClusters greedily groups entities by proximity at the given zoom
// level. Each entity seeds a cluster unless it falls inside the radius of
// an existing one, in which case it joins the first such cluster in input
// order. Entities with out-of-range coordinates are skipped. The grouping
// depends on input order and reassigning members after centroid shifts is
// deliberately not done; the output is a map overlay, not a partition
// with stability guarantees.
func BuildClusters(entities []entity.Entity, zoom int, params *tuning.Params) []Cluster {
	if params == nil {
		params = tuning.Defaults()
	}
	radius := geo.RadiusForZoom(zoom, params.ZoomRadiiMiles)

	type building struct {
		members []entity.Entity
		// seed is the comparison point for membership; the centroid is
		// computed once at the end.
		seed entity.Coordinates
	}
	var groups []*building

next:
	for _, e := range entities {
		if !e.Location.Coordinates.Valid() {
			continue
		}
		for _, g := range groups {
			if geo.Haversine(g.seed, e.Location.Coordinates) <= radius {
				g.members = append(g.members, e)
				continue next
			}
		}
		groups = append(groups, &building{
			members: []entity.Entity{e},
			seed:    e.Location.Coordinates,
		})
	}

	clusters := make([]Cluster, 0, len(groups))
	for _, g := range groups {
		clusters = append(clusters, finishCluster(g.members, zoom))
	}
	return clusters
}

func finishCluster(members []entity.Entity, zoom int) Cluster {
	c := Cluster{
		Count:     len(members),
		EntityIDs: make([]string, 0, len(members)),
		ZoomLevel: zoom,
	}
	var sumLat, sumLng float64
	for _, m := range members {
		c.EntityIDs = append(c.EntityIDs, m.ID)
		sumLat += m.Location.Coordinates.Lat
		sumLng += m.Location.Coordinates.Lng
	}
	c.Coordinates = entity.Coordinates{
		Lat: sumLat / float64(len(members)),
		Lng: sumLng / float64(len(members)),
	}
	c.PrimarySector = primarySector(members)
	c.PrimaryFunction = primaryFunction(members)
	return c
}

// primarySector is the most frequent sector tag across members, with
// first-seen order breaking count ties.
func primarySector(members []entity.Entity) entity.Sector {
	counts := make(map[entity.Sector]int)
	var order []entity.Sector
	for _, m := range members {
		for _, s := range m.Sectors {
			if counts[s] == 0 {
				order = append(order, s)
			}
			counts[s]++
		}
	}
	var best entity.Sector
	bestCount := 0
	for _, s := range order {
		if counts[s] > bestCount {
			best, bestCount = s, counts[s]
		}
	}
	return best
}

// primaryFunction is the most frequent function tag across members, with
// first-seen order breaking count ties.
func primaryFunction(members []entity.Entity) entity.Function {
	counts := make(map[entity.Function]int)
	var order []entity.Function
	for _, m := range members {
		for _, f := range m.Functions {
			if counts[f] == 0 {
				order = append(order, f)
			}
			counts[f]++
		}
	}
	var best entity.Function
	bestCount := 0
	for _, f := range order {
		if counts[f] > bestCount {
			best, bestCount = f, counts[f]
		}
	}
	return best
}
