package geo

// regionStates maps each of the ten standard federal regions to its member
// state and territory codes. Every US state, DC, and the inhabited
// territories appear in exactly one region.
var regionStates = map[string][]string{
	"new_england":       {"CT", "ME", "MA", "NH", "RI", "VT"},
	"northeast":         {"NJ", "NY", "PR", "VI"},
	"mid_atlantic":      {"DE", "DC", "MD", "PA", "VA", "WV"},
	"southeast":         {"AL", "FL", "GA", "KY", "MS", "NC", "SC", "TN"},
	"great_lakes":       {"IL", "IN", "MI", "MN", "OH", "WI"},
	"south_central":     {"AR", "LA", "NM", "OK", "TX"},
	"central_plains":    {"IA", "KS", "MO", "NE"},
	"mountain":          {"CO", "MT", "ND", "SD", "UT", "WY"},
	"pacific_west":      {"AZ", "CA", "HI", "NV", "AS", "GU", "MP"},
	"pacific_northwest": {"AK", "ID", "OR", "WA"},
}

// RegionStates returns the member state codes for a named region, or nil
// for an unknown region name. The returned slice is a copy.
func RegionStates(region string) []string {
	states, ok := regionStates[region]
	if !ok {
		return nil
	}
	out := make([]string, len(states))
	copy(out, states)
	return out
}

// Regions returns all known region names. Order is not defined.
func Regions() []string {
	names := make([]string, 0, len(regionStates))
	for name := range regionStates {
		names = append(names, name)
	}
	return names
}
