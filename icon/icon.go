package icon

import "github.com/watchmen-in/cisadex-engine/entity"

// Set names the table a resolved icon was drawn from.
type Set string

const (
	SetSector   Set = "sector"
	SetFunction Set = "function"
	SetAgency   Set = "agency"
	SetGeneric  Set = "generic"
)

// Priority values per icon set. Lower is more specific; the generic icon
// sorts after everything.
const (
	PrioritySector   = 1
	PriorityFunction = 2
	PriorityAgency   = 3
	PriorityGeneric  = 999
)

// Config is a resolved visual identity: the winning tag, the table it came
// from, remaining same-category tags in precedence order, and the marker
// color. Config is pure derived data with no lifecycle.
type Config struct {
	Primary   string   `json:"primary"`
	IconSet   Set      `json:"icon_set"`
	Fallbacks []string `json:"fallbacks,omitempty"`
	Color     string   `json:"color"`
	Priority  int      `json:"priority"`
}

// Thresholds holds the cluster dominance cutoffs. The defaults are the
// empirically chosen values the map has always shipped with; they are
// tunable parameters, not fundamental constants.
type Thresholds struct {
	// Sector is the member share a single sector must exceed. Default 0.5.
	Sector float64

	// Function is the member share a single function must exceed. Default 0.5.
	Function float64

	// Agency is the member share a single agency must exceed. Default 0.6.
	Agency float64
}

// DefaultThresholds returns the standard cluster dominance cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{Sector: 0.5, Function: 0.5, Agency: 0.6}
}

// ForEntity resolves the visual identity of a single entity:
//
//  1. Exactly one sector tag: that sector's icon.
//  2. More than one sector tag, or the entity carries the
//     government-facilities sector: the entity's highest-priority
//     function's icon, defaulting to law enforcement when the entity has
//     no function tags at all.
//  3. Otherwise: the parent agency's icon, or the generic federal icon
//     when the agency is unrecognized.
func ForEntity(e entity.Entity) Config {
	if len(e.Sectors) == 1 {
		return sectorConfig(e.Sectors[0], e.Sectors)
	}
	if len(e.Sectors) > 1 || e.HasSector(entity.SectorGovernmentFacilities) {
		fn := topFunction(e.Functions)
		return functionConfig(fn, e.Functions)
	}
	return agencyConfig(e.ParentAgency)
}

// ForCluster resolves one identity for an aggregated cluster. Sector
// dominance is checked before function, function before agency; a mixed
// cluster with no dominant identity gets the generic federal icon.
func ForCluster(members []entity.Entity, th Thresholds) Config {
	if len(members) == 0 {
		return genericConfig()
	}

	total := float64(len(members))

	if sector, count := dominantSector(members); float64(count)/total > th.Sector {
		return sectorConfig(sector, nil)
	}
	if fn, count := dominantFunction(members); float64(count)/total > th.Function {
		return functionConfig(fn, nil)
	}
	if agency, count := dominantAgency(members); float64(count)/total > th.Agency {
		return agencyConfig(agency)
	}
	return genericConfig()
}

// Lookup resolves the display info (glyph, color, label) for a Config.
// Unknown tags fall back to the generic identity.
func Lookup(c Config) Info {
	switch c.IconSet {
	case SetSector:
		if info, ok := sectorInfo[entity.Sector(c.Primary)]; ok {
			return info
		}
	case SetFunction:
		if info, ok := functionInfo[entity.Function(c.Primary)]; ok {
			return info
		}
	case SetAgency:
		if info, ok := agencyInfo[entity.Agency(c.Primary)]; ok {
			return info
		}
	}
	return genericInfo
}

// zoomBaseSizes maps zoom levels 0..9 to the base marker size in pixels.
// Out-of-range zoom levels clamp to the nearest entry.
var zoomBaseSizes = []int{16, 20, 24, 28, 32, 36, 40, 44, 48, 52}

// Size returns the marker pixel dimensions for a zoom level and a Config
// priority. Priority 1 scales 1.2x, priority 2 scales 1.1x, everything
// else renders at base size.
func Size(zoom, priority int) (width, height int) {
	if zoom < 0 {
		zoom = 0
	}
	if zoom >= len(zoomBaseSizes) {
		zoom = len(zoomBaseSizes) - 1
	}
	base := float64(zoomBaseSizes[zoom])

	switch priority {
	case 1:
		base *= 1.2
	case 2:
		base *= 1.1
	}
	px := int(base + 0.5)
	return px, px
}

func sectorConfig(s entity.Sector, all []entity.Sector) Config {
	info, ok := sectorInfo[s]
	if !ok {
		return genericConfig()
	}
	return Config{
		Primary:   string(s),
		IconSet:   SetSector,
		Fallbacks: sectorFallbacks(s, all),
		Color:     info.Color,
		Priority:  PrioritySector,
	}
}

func functionConfig(f entity.Function, all []entity.Function) Config {
	info, ok := functionInfo[f]
	if !ok {
		return genericConfig()
	}
	return Config{
		Primary:   string(f),
		IconSet:   SetFunction,
		Fallbacks: functionFallbacks(f, all),
		Color:     info.Color,
		Priority:  PriorityFunction,
	}
}

func agencyConfig(a entity.Agency) Config {
	info, ok := agencyInfo[a]
	if !ok {
		return genericConfig()
	}
	return Config{
		Primary:  string(a),
		IconSet:  SetAgency,
		Color:    info.Color,
		Priority: PriorityAgency,
	}
}

func genericConfig() Config {
	return Config{
		Primary:  "federal",
		IconSet:  SetGeneric,
		Color:    genericInfo.Color,
		Priority: PriorityGeneric,
	}
}

// topFunction returns the highest-priority function among tags, or law
// enforcement when tags is empty.
func topFunction(tags []entity.Function) entity.Function {
	for _, f := range functionPriority {
		for _, tag := range tags {
			if tag == f {
				return f
			}
		}
	}
	return entity.FunctionLawEnforcement
}

// sectorFallbacks lists the entity's remaining sectors in priority order.
func sectorFallbacks(chosen entity.Sector, all []entity.Sector) []string {
	var out []string
	for _, s := range sectorPriority {
		if s == chosen {
			continue
		}
		for _, tag := range all {
			if tag == s {
				out = append(out, string(s))
				break
			}
		}
	}
	return out
}

// functionFallbacks lists the entity's remaining functions in priority order.
func functionFallbacks(chosen entity.Function, all []entity.Function) []string {
	var out []string
	for _, f := range functionPriority {
		if f == chosen {
			continue
		}
		for _, tag := range all {
			if tag == f {
				out = append(out, string(f))
				break
			}
		}
	}
	return out
}

// dominantSector tallies sector tags across members and returns the most
// frequent one with its count. Ties resolve by the fixed priority order.
func dominantSector(members []entity.Entity) (entity.Sector, int) {
	counts := make(map[entity.Sector]int)
	for _, m := range members {
		for _, s := range m.Sectors {
			counts[s]++
		}
	}
	var best entity.Sector
	bestCount := 0
	for _, s := range sectorPriority {
		if counts[s] > bestCount {
			best = s
			bestCount = counts[s]
		}
	}
	return best, bestCount
}

// dominantFunction tallies function tags across members and returns the
// most frequent one with its count.
func dominantFunction(members []entity.Entity) (entity.Function, int) {
	counts := make(map[entity.Function]int)
	for _, m := range members {
		for _, f := range m.Functions {
			counts[f]++
		}
	}
	var best entity.Function
	bestCount := 0
	for _, f := range functionPriority {
		if counts[f] > bestCount {
			best = f
			bestCount = counts[f]
		}
	}
	return best, bestCount
}

// dominantAgency tallies parent agencies across members, one per member.
func dominantAgency(members []entity.Entity) (entity.Agency, int) {
	counts := make(map[entity.Agency]int)
	var order []entity.Agency
	for _, m := range members {
		if counts[m.ParentAgency] == 0 {
			order = append(order, m.ParentAgency)
		}
		counts[m.ParentAgency]++
	}
	var best entity.Agency
	bestCount := 0
	for _, a := range order {
		if counts[a] > bestCount {
			best = a
			bestCount = counts[a]
		}
	}
	return best, bestCount
}
