package entity

import "fmt"

// RelationType classifies the link between two entities.
type RelationType string

const (
	// RelationParent points from an entity to the office it reports to.
	// Directional; RelationChild is its inverse and is not auto-mirrored.
	RelationParent RelationType = "parent"

	// RelationChild points from an entity to an office reporting to it.
	RelationChild RelationType = "child"

	// RelationPartner marks a standing partnership between peers.
	RelationPartner RelationType = "partner"

	// RelationCoordination marks routine operational coordination. All
	// inferred edges are of this type.
	RelationCoordination RelationType = "coordination"

	// RelationTaskForce marks joint task-force membership.
	RelationTaskForce RelationType = "task_force"

	// RelationFusionCenter marks participation in a shared fusion center.
	RelationFusionCenter RelationType = "fusion_center"
)

// RelationDescriptor is the static descriptor for a relationship type.
// The table below is configuration, not derived data: it is the single
// source of truth for edge weight when two entities are linked by more
// than one relationship type (the maximum strength wins).
type RelationDescriptor struct {
	// Bidirectional marks types whose adjacency edge is mirrored
	// automatically. Parent/child are directional inverses and are not.
	Bidirectional bool

	// Strength is the coordination confidence weight in (0, 1].
	Strength float64
}

// relationDescriptors maps each relationship type to its descriptor.
var relationDescriptors = map[RelationType]RelationDescriptor{
	RelationParent:       {Bidirectional: false, Strength: 0.9},
	RelationChild:        {Bidirectional: false, Strength: 0.9},
	RelationPartner:      {Bidirectional: true, Strength: 0.7},
	RelationCoordination: {Bidirectional: true, Strength: 0.6},
	RelationTaskForce:    {Bidirectional: true, Strength: 0.8},
	RelationFusionCenter: {Bidirectional: true, Strength: 0.8},
}

// RelationTypes lists all known relationship types in a stable order.
func RelationTypes() []RelationType {
	return []RelationType{
		RelationParent, RelationChild, RelationPartner,
		RelationCoordination, RelationTaskForce, RelationFusionCenter,
	}
}

// IsValid returns true if the relationship type is one of the known values.
func (r RelationType) IsValid() bool {
	_, ok := relationDescriptors[r]
	return ok
}

// String returns the string representation of the relationship type.
func (r RelationType) String() string { return string(r) }

// Descriptor returns the static descriptor for the relationship type.
// Unknown types get a non-mirrored descriptor with zero strength, the
// documented fallback for unrecognized keys.
func (r RelationType) Descriptor() RelationDescriptor {
	if d, ok := relationDescriptors[r]; ok {
		return d
	}
	return RelationDescriptor{}
}

// Strength returns the static edge weight for the relationship type.
// Returns 0.0 for unknown types.
func (r RelationType) Strength() float64 { return r.Descriptor().Strength }

// ParseRelationType parses a string into a RelationType value.
// Returns an error if the string is not a known relationship type.
func ParseRelationType(s string) (RelationType, error) {
	r := RelationType(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid relationship type: %s", s)
	}
	return r, nil
}
