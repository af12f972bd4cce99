package entity

// Coordinates is a WGS84 coordinate pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the pair is inside the WGS84 envelope
// (lat in [-90, 90], lng in [-180, 180]). Entities with invalid
// coordinates are excluded from geographic and clustering operations but
// remain reachable through text and organizational filters.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Location is the physical address of an entity.
type Location struct {
	Address     string      `json:"address"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	Coordinates Coordinates `json:"coordinates"`
}

// Jurisdiction describes the geographic and topical reach of an entity.
type Jurisdiction struct {
	// Coverage is a free-text description of the covered area.
	Coverage string `json:"coverage,omitempty"`

	// States lists two-letter state codes inside the jurisdiction.
	States []string `json:"states,omitempty"`

	// Specialties lists free-form topical specialties.
	Specialties []string `json:"specialties,omitempty"`
}

// Status captures the operational posture of an entity.
type Status struct {
	Operational  bool  `json:"operational"`
	Hours        Hours `json:"hours,omitempty"`
	PublicAccess bool  `json:"public_access"`
}

// Relationship is a link to another entity declared by the data source.
// Declared relationships are distinct from graph edges inferred later;
// inactive declarations contribute no edges.
type Relationship struct {
	RelatedEntityID string       `json:"related_entity_id"`
	Type            RelationType `json:"relationship_type"`
	Description     string       `json:"description,omitempty"`
	Active          bool         `json:"active"`
}

// Metadata is an optional free-form bag attached to an entity.
type Metadata struct {
	SpecialPrograms []string `json:"special_programs,omitempty"`
	Notes           string   `json:"notes,omitempty"`
}

// Entity is one federal office, laboratory, or agency record in the
// directory. ID is the unique, immutable join key across all derived
// structures.
type Entity struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Type         OfficeType `json:"type"`
	ParentAgency Agency     `json:"parent_agency"`

	Location     Location     `json:"location"`
	Jurisdiction Jurisdiction `json:"jurisdiction"`

	// Sectors are critical-infrastructure sector tags (0..N).
	Sectors []Sector `json:"sectors,omitempty"`

	// Functions are operational-function tags (0..N).
	Functions []Function `json:"functions,omitempty"`

	// Capabilities are free-form capability tags.
	Capabilities []string `json:"capabilities,omitempty"`

	Status Status `json:"status"`

	// Relationships are links declared by the data source (optional).
	Relationships []Relationship `json:"relationships,omitempty"`

	Metadata *Metadata `json:"metadata,omitempty"`
}

// HasSector reports whether the entity carries the given sector tag.
func (e Entity) HasSector(s Sector) bool {
	for _, tag := range e.Sectors {
		if tag == s {
			return true
		}
	}
	return false
}

// HasFunction reports whether the entity carries the given function tag.
func (e Entity) HasFunction(f Function) bool {
	for _, tag := range e.Functions {
		if tag == f {
			return true
		}
	}
	return false
}

// HasAnyFunction reports whether the entity carries at least one of the
// given function tags.
func (e Entity) HasAnyFunction(fns ...Function) bool {
	for _, f := range fns {
		if e.HasFunction(f) {
			return true
		}
	}
	return false
}

// HasAnySector reports whether the entity carries at least one of the
// given sector tags.
func (e Entity) HasAnySector(sectors ...Sector) bool {
	for _, s := range sectors {
		if e.HasSector(s) {
			return true
		}
	}
	return false
}

// JurisdictionStates returns the entity's location state plus every state
// code in its jurisdiction, deduplicated, preserving first-seen order.
// This is the state set used for overlap inference.
func (e Entity) JurisdictionStates() []string {
	seen := make(map[string]struct{}, len(e.Jurisdiction.States)+1)
	var states []string
	add := func(s string) {
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		states = append(states, s)
	}
	add(e.Location.State)
	for _, s := range e.Jurisdiction.States {
		add(s)
	}
	return states
}

// SharesState reports whether two entities have any state in common across
// their location state and jurisdiction state lists.
func (e Entity) SharesState(other Entity) bool {
	mine := make(map[string]struct{})
	for _, s := range e.JurisdictionStates() {
		mine[s] = struct{}{}
	}
	for _, s := range other.JurisdictionStates() {
		if _, ok := mine[s]; ok {
			return true
		}
	}
	return false
}
