// Package entity defines the canonical record shape for the federal entity
// directory: offices, laboratories, and agency facilities together with
// their geography, jurisdiction, operational tags, and declared
// relationships.
//
// Entities are plain values keyed by their ID string. Every derived
// structure in this module (text index, coordination graph, clusters)
// joins on ID, never on object identity, so entities may be freely copied.
//
// The package also carries the static enum tables that the rest of the
// engine treats as configuration: office types, parent agencies, the
// sixteen critical-infrastructure sectors, operational functions, and the
// relationship-type descriptor table that is the single source of truth
// for coordination edge weights.
package entity
