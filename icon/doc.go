// Package icon deterministically picks a single representative visual
// identity for an entity or for a cluster of entities on the map.
//
// The resolver works from three static lookup tables (sector, function,
// and agency, each mapping a tag to a color, glyph, and label) plus fixed
// priority orderings within each category. Single entities resolve through
// a three-step precedence rule; clusters resolve through dominance
// thresholds over member tag frequencies, falling back to a generic
// federal icon when no single identity dominates.
//
// Everything here is a pure function of its arguments with no lifecycle
// beyond the call that produced it.
package icon
