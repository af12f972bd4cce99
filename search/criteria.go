package search

import "github.com/watchmen-in/cisadex-engine/entity"

// OperationalStatus is the two-value filter enum mapped onto the boolean
// Status.Operational field.
type OperationalStatus string

const (
	StatusOperational    OperationalStatus = "operational"
	StatusNonOperational OperationalStatus = "non_operational"
)

// Criteria is a partially-populated filter request. Every nil or zero
// facet is a no-op; the zero Criteria matches the whole collection.
type Criteria struct {
	// Text is the free-text query run through the inverted index.
	Text string `json:"text,omitempty"`

	Geo            *GeoCriteria            `json:"geo,omitempty"`
	Operational    *OperationalCriteria    `json:"operational,omitempty"`
	Organizational *OrganizationalCriteria `json:"organizational,omitempty"`
	Advanced       *AdvancedCriteria       `json:"advanced,omitempty"`

	// ZoomLevel selects the clustering radius for the result. Nil means
	// the configured default zoom.
	ZoomLevel *int `json:"zoom_level,omitempty"`
}

// GeoCriteria narrows by state, named region, or radius around a point.
type GeoCriteria struct {
	// State keeps entities located in, or with jurisdiction over, the
	// given two-letter state code.
	State string `json:"state,omitempty"`

	// Region keeps entities whose states fall inside a named region from
	// the standard ten-region table. An unknown region matches nothing.
	Region string `json:"region,omitempty"`

	// Radius keeps entities within a great-circle distance of a center.
	Radius *RadiusCriteria `json:"radius,omitempty"`
}

// RadiusCriteria is a center point and a distance in statute miles.
type RadiusCriteria struct {
	Center entity.Coordinates `json:"center"`
	Miles  float64            `json:"miles"`
}

// OperationalCriteria narrows by operational tags and posture. Tag slices
// use any-match semantics: an entity passes when it shares at least one
// tag with the filter set.
type OperationalCriteria struct {
	Sectors      []entity.Sector   `json:"sectors,omitempty"`
	Functions    []entity.Function `json:"functions,omitempty"`
	Capabilities []string          `json:"capabilities,omitempty"`

	// Status filters on the two-value operational enum. Empty means no
	// filtering.
	Status OperationalStatus `json:"status,omitempty"`

	// Hours filters on an exact staffing-hours match.
	Hours entity.Hours `json:"hours,omitempty"`
}

// OrganizationalCriteria narrows by organizational attributes with exact
// matching. The boolean pointers distinguish "unspecified" from false.
type OrganizationalCriteria struct {
	Agency       entity.Agency     `json:"agency,omitempty"`
	OfficeType   entity.OfficeType `json:"office_type,omitempty"`
	Operational  *bool             `json:"operational,omitempty"`
	PublicAccess *bool             `json:"public_access,omitempty"`
}

// AdvancedCriteria holds the free-text sub-filters and the optional CEL
// expression. Each text sub-filter passes an entity when any query token
// appears as a substring of the targeted fields.
type AdvancedCriteria struct {
	// Capabilities matches against the entity's capability tags.
	Capabilities string `json:"capabilities,omitempty"`

	// Specialties matches against jurisdiction specialties.
	Specialties string `json:"specialties,omitempty"`

	// Keywords matches against a combined blob of name, jurisdiction
	// coverage, special programs, and notes.
	Keywords string `json:"keywords,omitempty"`

	// Expr is a CEL expression over the per-entity attribute map; it must
	// evaluate to a boolean. See Attributes for the available fields.
	Expr string `json:"expr,omitempty"`
}
