package graph

import (
	"sort"

	"github.com/watchmen-in/cisadex-engine/entity"
	"github.com/watchmen-in/cisadex-engine/tuning"
)

// DefaultNetworkDepth is the BFS hop limit used when a caller does not
// specify one.
const DefaultNetworkDepth = 2

// Graph is the immutable coordination graph over one entity collection.
type Graph struct {
	entities map[string]entity.Entity
	order    []string

	// adjacency maps an entity ID to its neighbor IDs in discovery order.
	adjacency map[string][]string
	adjSet    map[string]map[string]struct{}

	// strength is the symmetric coordination-strength matrix.
	strength map[string]map[string]float64

	// edgePairs is the set of unordered entity pairs with at least one
	// edge in either direction.
	edgePairs map[pairKey]struct{}

	// typePairs tracks, per relationship type, which unordered pairs
	// carry it. A pair declared as parent and later rediscovered by
	// coordination inference counts once under each type.
	typePairs map[entity.RelationType]map[pairKey]struct{}

	params *tuning.Params
}

// pairKey identifies an unordered entity pair; A is always the smaller ID.
type pairKey struct {
	A, B string
}

func orderPair(a, b string) pairKey {
	if a < b {
		return pairKey{A: a, B: b}
	}
	return pairKey{A: b, B: a}
}

// Build constructs the graph from the collection: explicit declared
// relationships first, then the agency, geographic, and functional
// inference passes. A nil params selects the defaults.
func Build(entities []entity.Entity, params *tuning.Params) *Graph {
	if params == nil {
		params = tuning.Defaults()
	}
	g := &Graph{
		entities:  make(map[string]entity.Entity, len(entities)),
		adjacency: make(map[string][]string),
		adjSet:    make(map[string]map[string]struct{}),
		strength:  make(map[string]map[string]float64),
		edgePairs: make(map[pairKey]struct{}),
		typePairs: make(map[entity.RelationType]map[pairKey]struct{}),
		params:    params,
	}
	for _, e := range entities {
		if e.ID == "" {
			continue
		}
		if _, dup := g.entities[e.ID]; dup {
			continue
		}
		g.entities[e.ID] = e
		g.order = append(g.order, e.ID)
	}

	g.addExplicit()
	g.inferAgencyStructure()
	g.inferGeographic()
	g.inferFunctional()
	return g
}

// addExplicit records every active declared relationship. Bidirectional
// types get the mirrored edge; parent/child stay directional.
func (g *Graph) addExplicit() {
	for _, id := range g.order {
		e := g.entities[id]
		for _, rel := range e.Relationships {
			if !rel.Active || rel.RelatedEntityID == "" {
				continue
			}
			g.addEdge(e.ID, rel.RelatedEntityID, rel.Type)
			if rel.Type.Descriptor().Bidirectional {
				g.addEdge(rel.RelatedEntityID, e.ID, rel.Type)
			}
		}
	}
}

// inferAgencyStructure links entities sharing a parent agency: every pair
// of regional offices coordinates, and a field office coordinates with a
// regional office covering at least one of its jurisdiction states.
func (g *Graph) inferAgencyStructure() {
	g.eachPair(func(a, b entity.Entity) {
		if a.ParentAgency == "" || a.ParentAgency != b.ParentAgency {
			return
		}
		bothRegional := a.Type == entity.TypeRegionalOffice && b.Type == entity.TypeRegionalOffice
		fieldUnderRegional := (a.Type == entity.TypeFieldOffice && b.Type == entity.TypeRegionalOffice ||
			a.Type == entity.TypeRegionalOffice && b.Type == entity.TypeFieldOffice) &&
			a.SharesState(b)
		if bothRegional || fieldUnderRegional {
			g.addCoordination(a.ID, b.ID)
		}
	})
}

// lawEnforcementFamily are the complementary law-enforcement functions
// used by geographic inference and opportunity scoring.
var lawEnforcementFamily = []entity.Function{
	entity.FunctionLawEnforcement,
	entity.FunctionIntelligence,
	entity.FunctionIncidentResponse,
	entity.FunctionCyberForensics,
}

// emergencyFamily are the emergency-management functions used by
// geographic inference.
var emergencyFamily = []entity.Function{
	entity.FunctionEmergencyManagement,
	entity.FunctionIncidentResponse,
}

// inferGeographic links entities with overlapping state or jurisdiction
// when both carry complementary law-enforcement-family functions, or both
// carry emergency-management-family functions.
func (g *Graph) inferGeographic() {
	g.eachPair(func(a, b entity.Entity) {
		if !a.SharesState(b) {
			return
		}
		lawEnforcement := a.HasAnyFunction(lawEnforcementFamily...) && b.HasAnyFunction(lawEnforcementFamily...)
		emergency := a.HasAnyFunction(emergencyFamily...) && b.HasAnyFunction(emergencyFamily...)
		if lawEnforcement || emergency {
			g.addCoordination(a.ID, b.ID)
		}
	})
}

// cyberFunctions are the function tags counted as a cyber signal.
var cyberFunctions = []entity.Function{
	entity.FunctionCyberForensics,
	entity.FunctionThreatAnalysis,
	entity.FunctionVulnerabilityAssessment,
}

// infrastructureSectors are the sector tags counted as a
// critical-infrastructure-protection signal.
var infrastructureSectors = []entity.Sector{
	entity.SectorEnergy,
	entity.SectorTransportationSystems,
	entity.SectorCommunications,
	entity.SectorWaterWastewater,
}

func cyberSignal(e entity.Entity) bool {
	return e.HasAnyFunction(cyberFunctions...) || e.HasSector(entity.SectorInformationTechnology)
}

func infrastructureSignal(e entity.Entity) bool {
	return e.HasAnySector(infrastructureSectors...)
}

// inferFunctional links entities sharing any sector or function tag when
// both show cyber signals or both show critical-infrastructure signals.
func (g *Graph) inferFunctional() {
	g.eachPair(func(a, b entity.Entity) {
		if !sharesTag(a, b) {
			return
		}
		if (cyberSignal(a) && cyberSignal(b)) || (infrastructureSignal(a) && infrastructureSignal(b)) {
			g.addCoordination(a.ID, b.ID)
		}
	})
}

func sharesTag(a, b entity.Entity) bool {
	for _, s := range a.Sectors {
		if b.HasSector(s) {
			return true
		}
	}
	for _, f := range a.Functions {
		if b.HasFunction(f) {
			return true
		}
	}
	return false
}

// eachPair visits every unordered pair of distinct entities in collection
// order. O(n^2); acceptable at directory scale (hundreds to low thousands
// of records) but worth revisiting if the dataset grows substantially.
func (g *Graph) eachPair(fn func(a, b entity.Entity)) {
	for i := 0; i < len(g.order); i++ {
		for j := i + 1; j < len(g.order); j++ {
			fn(g.entities[g.order[i]], g.entities[g.order[j]])
		}
	}
}

// addCoordination adds a mirrored coordination edge between two entities.
func (g *Graph) addCoordination(aID, bID string) {
	g.addEdge(aID, bID, entity.RelationCoordination)
	g.addEdge(bID, aID, entity.RelationCoordination)
}

// addEdge records a directed adjacency entry (deduplicated) and raises the
// symmetric strength for the pair to the relationship type's strength if
// it is higher than what is already stored. Rediscovery by additional
// rules therefore only ever increases strength; the strongest known
// relation wins.
func (g *Graph) addEdge(from, to string, rt entity.RelationType) {
	if from == "" || to == "" || from == to {
		return
	}
	set, ok := g.adjSet[from]
	if !ok {
		set = make(map[string]struct{})
		g.adjSet[from] = set
	}
	if _, exists := set[to]; !exists {
		set[to] = struct{}{}
		g.adjacency[from] = append(g.adjacency[from], to)
	}

	key := orderPair(from, to)
	g.edgePairs[key] = struct{}{}
	pairs, ok := g.typePairs[rt]
	if !ok {
		pairs = make(map[pairKey]struct{})
		g.typePairs[rt] = pairs
	}
	pairs[key] = struct{}{}
	g.raiseStrength(from, to, g.strengthFor(rt))
	g.raiseStrength(to, from, g.strengthFor(rt))
}

func (g *Graph) strengthFor(rt entity.RelationType) float64 {
	if s, ok := g.params.StrengthFor(string(rt)); ok {
		return s
	}
	return rt.Strength()
}

func (g *Graph) raiseStrength(a, b string, s float64) {
	row, ok := g.strength[a]
	if !ok {
		row = make(map[string]float64)
		g.strength[a] = row
	}
	if s > row[b] {
		row[b] = s
	}
}

// Related returns the full records of every entity directly adjacent to
// id, in discovery order. Neighbor IDs with no record in the collection
// are silently dropped. An unknown id yields an empty slice.
func (g *Graph) Related(id string) []entity.Entity {
	neighbors := g.adjacency[id]
	out := make([]entity.Entity, 0, len(neighbors))
	for _, nid := range neighbors {
		if e, ok := g.entities[nid]; ok {
			out = append(out, e)
		}
	}
	return out
}

// Network returns every entity reachable from id within maxDepth hops,
// excluding the origin itself. maxDepth counts edges from the origin:
// depth 0 returns nothing, depth 1 returns exactly the direct neighbors.
// Negative depths behave like 0. The traversal tracks visited IDs, so
// cycles are safe.
func (g *Graph) Network(id string, maxDepth int) []entity.Entity {
	if maxDepth <= 0 {
		return nil
	}
	visited := map[string]struct{}{id: {}}
	frontier := []string{id}
	var out []entity.Entity

	for depth := 0; depth < maxDepth && len(frontier) > 0; depth++ {
		var next []string
		for _, cur := range frontier {
			for _, nid := range g.adjacency[cur] {
				if _, seen := visited[nid]; seen {
					continue
				}
				visited[nid] = struct{}{}
				next = append(next, nid)
				if e, ok := g.entities[nid]; ok {
					out = append(out, e)
				}
			}
		}
		frontier = next
	}
	return out
}

// Strength returns the stored coordination strength between two entities,
// or 0 when no edge between them was ever recorded. Storage is symmetric:
// Strength(a, b) always equals Strength(b, a).
func (g *Graph) Strength(a, b string) float64 {
	return g.strength[a][b]
}

// Degree is one entry in the most-connected ranking.
type Degree struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Degree int    `json:"degree"`
}

// Statistics aggregates counts over the whole graph.
type Statistics struct {
	// TotalEdges is the number of distinct entity pairs with at least one
	// edge in either direction.
	TotalEdges int `json:"total_edges"`

	// EdgesByType counts, per relationship type, the pairs carrying that
	// type; a pair with several types appears once under each.
	EdgesByType map[entity.RelationType]int `json:"edges_by_type"`

	// AverageDegree is the mean neighbor count per entity.
	AverageDegree float64 `json:"average_degree"`

	// TopConnected lists up to the ten highest-degree entities.
	TopConnected []Degree `json:"top_connected"`
}

// Stats computes aggregate statistics for the graph.
func (g *Graph) Stats() Statistics {
	stats := Statistics{EdgesByType: make(map[entity.RelationType]int)}

	for rt, pairs := range g.typePairs {
		stats.EdgesByType[rt] = len(pairs)
	}
	stats.TotalEdges = len(g.edgePairs)

	if len(g.order) > 0 {
		sum := 0
		for _, id := range g.order {
			sum += len(g.adjacency[id])
		}
		stats.AverageDegree = float64(sum) / float64(len(g.order))
	}

	ranked := make([]Degree, 0, len(g.order))
	for _, id := range g.order {
		ranked = append(ranked, Degree{
			ID:     id,
			Name:   g.entities[id].Name,
			Degree: len(g.adjacency[id]),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Degree > ranked[j].Degree
	})
	if len(ranked) > 10 {
		ranked = ranked[:10]
	}
	stats.TopConnected = ranked
	return stats
}
