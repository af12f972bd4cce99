// Package graph builds the coordination relationship graph over the
// entity collection and answers network queries against it.
//
// The graph combines two edge sources. Explicit edges come from
// relationships declared in the data itself; bidirectional types are
// mirrored automatically, while parent/child stay directional. Inferred
// edges come from three rules run over every entity pair: shared agency
// structure (regional offices of one agency, field offices under a
// regional office covering their state), geographic overlap with
// complementary law-enforcement or emergency-management functions, and
// shared sector or function tags with cyber or critical-infrastructure
// signals on both sides.
//
// Alongside the adjacency structure the graph keeps a coordination
// strength matrix. Every time an edge between two entities is discovered
// by any rule, the stored strength for the pair rises to the maximum of
// its current value and the new relationship type's static strength;
// strength is always stored symmetrically, even for directional edges.
//
// The graph is built once from the collection and is immutable afterward,
// so it is safe for any number of concurrent readers. Edges referencing
// IDs with no record in the collection are tolerated at build time and
// silently dropped when queries resolve IDs to records.
package graph
