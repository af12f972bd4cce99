// Package search orchestrates text, geographic, operational,
// organizational, and advanced filters into one query pipeline over the
// entity collection, and derives map clusters for the filtered result.
//
// Criteria is a typed struct with one optional field per facet; an absent
// facet is a pass-through, never an error, so the zero Criteria returns
// the whole collection. Facets apply in a fixed order chosen for
// selectivity (text first), but because every stage is a set
// intersection the final result set does not depend on the order.
//
// Clustering is greedy single-pass grid clustering parameterized by map
// zoom level. The claim order is first-seen-first-clustered, which makes
// cluster membership sensitive to input order when an entity is within
// radius of two seeds. That non-determinism band is intentional and
// matches the map's historical behavior; do not stabilize it.
//
// The advanced facet optionally accepts a CEL expression evaluated
// against a per-entity attribute map, for filters the fixed facets cannot
// express (for example `entity.state == "TX" && "energy" in entity.sectors`).
package search
