// Package tuning centralizes the engine's tunable parameters: clustering
// radii, cluster dominance thresholds, opportunity scoring constants, the
// substring-scan cap, and relationship-strength overrides.
//
// The defaults reproduce the values the directory has always shipped
// with. They are empirically chosen and preserved for behavioral
// compatibility, which is exactly why they live here as named parameters
// instead of constants buried in the algorithms. Parameters load from an
// optional YAML file overlaid on the defaults; an absent file means
// defaults.
package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Params holds every tunable parameter of the engine. Zero values in a
// loaded file mean "keep the default".
type Params struct {
	// MaxSubstringCandidates bounds the text index substring fallback per
	// query token. Default 500.
	MaxSubstringCandidates int `yaml:"max_substring_candidates,omitempty"`

	// ZoomRadiiMiles overrides the zoom-level clustering radius table
	// when non-empty. Default: 1000, 500, 200, 100, 50, 25, 12, 6, 3, 1.5.
	ZoomRadiiMiles []float64 `yaml:"zoom_radii_miles,omitempty"`

	// DefaultZoomLevel is the clustering zoom used when a search does not
	// specify one. Default 5.
	DefaultZoomLevel int `yaml:"default_zoom_level,omitempty"`

	// Cluster dominance thresholds (strict lower bounds on member share).
	SectorDominance   float64 `yaml:"sector_dominance,omitempty"`   // default 0.5
	FunctionDominance float64 `yaml:"function_dominance,omitempty"` // default 0.5
	AgencyDominance   float64 `yaml:"agency_dominance,omitempty"`   // default 0.6

	// Opportunity scoring constants.
	OpportunityFloor           float64 `yaml:"opportunity_floor,omitempty"`            // default 0.5
	ComplementaryFunctionScore float64 `yaml:"complementary_function_score,omitempty"` // default 0.7
	SharedSectorScore          float64 `yaml:"shared_sector_score,omitempty"`          // default 0.6
	CyberCoordinationScore     float64 `yaml:"cyber_coordination_score,omitempty"`     // default 0.8
	InfrastructureScore        float64 `yaml:"infrastructure_score,omitempty"`         // default 0.7

	// RelationshipStrengths overrides the static strength for individual
	// relationship types, keyed by type name.
	RelationshipStrengths map[string]float64 `yaml:"relationship_strengths,omitempty"`
}

// Defaults returns the standard parameter set.
func Defaults() *Params {
	return &Params{
		MaxSubstringCandidates:     500,
		ZoomRadiiMiles:             []float64{1000, 500, 200, 100, 50, 25, 12, 6, 3, 1.5},
		DefaultZoomLevel:           5,
		SectorDominance:            0.5,
		FunctionDominance:          0.5,
		AgencyDominance:            0.6,
		OpportunityFloor:           0.5,
		ComplementaryFunctionScore: 0.7,
		SharedSectorScore:          0.6,
		CyberCoordinationScore:     0.8,
		InfrastructureScore:        0.7,
	}
}

// Load reads a YAML parameter file and overlays it on the defaults.
// Missing or zero fields keep their default values.
func Load(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tuning file: %w", err)
	}
	return Parse(data)
}

// Parse overlays YAML data on the defaults and validates the result.
func Parse(data []byte) (*Params, error) {
	var loaded Params
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parse tuning file: %w", err)
	}

	p := Defaults()
	if loaded.MaxSubstringCandidates > 0 {
		p.MaxSubstringCandidates = loaded.MaxSubstringCandidates
	}
	if len(loaded.ZoomRadiiMiles) > 0 {
		p.ZoomRadiiMiles = loaded.ZoomRadiiMiles
	}
	if loaded.DefaultZoomLevel > 0 {
		p.DefaultZoomLevel = loaded.DefaultZoomLevel
	}
	if loaded.SectorDominance > 0 {
		p.SectorDominance = loaded.SectorDominance
	}
	if loaded.FunctionDominance > 0 {
		p.FunctionDominance = loaded.FunctionDominance
	}
	if loaded.AgencyDominance > 0 {
		p.AgencyDominance = loaded.AgencyDominance
	}
	if loaded.OpportunityFloor > 0 {
		p.OpportunityFloor = loaded.OpportunityFloor
	}
	if loaded.ComplementaryFunctionScore > 0 {
		p.ComplementaryFunctionScore = loaded.ComplementaryFunctionScore
	}
	if loaded.SharedSectorScore > 0 {
		p.SharedSectorScore = loaded.SharedSectorScore
	}
	if loaded.CyberCoordinationScore > 0 {
		p.CyberCoordinationScore = loaded.CyberCoordinationScore
	}
	if loaded.InfrastructureScore > 0 {
		p.InfrastructureScore = loaded.InfrastructureScore
	}
	if len(loaded.RelationshipStrengths) > 0 {
		p.RelationshipStrengths = loaded.RelationshipStrengths
	}

	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Params) validate() error {
	for name, score := range map[string]float64{
		"sector_dominance":             p.SectorDominance,
		"function_dominance":           p.FunctionDominance,
		"agency_dominance":             p.AgencyDominance,
		"opportunity_floor":            p.OpportunityFloor,
		"complementary_function_score": p.ComplementaryFunctionScore,
		"shared_sector_score":          p.SharedSectorScore,
		"cyber_coordination_score":     p.CyberCoordinationScore,
		"infrastructure_score":         p.InfrastructureScore,
	} {
		if score <= 0 || score > 1 {
			return fmt.Errorf("tuning: %s must be in (0, 1], got %v", name, score)
		}
	}
	for name, strength := range p.RelationshipStrengths {
		if strength <= 0 || strength > 1 {
			return fmt.Errorf("tuning: relationship strength for %q must be in (0, 1], got %v", name, strength)
		}
	}
	for i, r := range p.ZoomRadiiMiles {
		if r <= 0 {
			return fmt.Errorf("tuning: zoom radius at level %d must be positive, got %v", i, r)
		}
	}
	return nil
}

// StrengthFor returns the configured strength override for a relationship
// type name, or ok=false when the static table should be used.
func (p *Params) StrengthFor(relationType string) (float64, bool) {
	s, ok := p.RelationshipStrengths[relationType]
	return s, ok
}
