// Package engine provides the query engine for a federal entity
// directory: offices, laboratories, and operations centers of federal
// agencies, tagged with critical-infrastructure sectors, operational
// functions, and coordinates.
//
// # Core Concepts
//
// The engine is organized around several key concepts:
//
//   - Entities: Individual federal office records, the unit everything
//     else derives from
//   - Search: A staged filter pipeline (text, geographic, operational,
//     organizational, advanced) plus zoom-aware clustering
//   - Graph: A relationship graph combining declared relationships with
//     edges inferred from agency structure, geography, and function
//   - Icons: Deterministic map-icon resolution for entities and clusters
//
// # Getting Started
//
// Load a collection and build an engine:
//
//	import (
//		"github.com/watchmen-in/cisadex-engine"
//		"github.com/watchmen-in/cisadex-engine/loader"
//	)
//
//	res, err := loader.LoadFile("entities.json", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	eng, err := engine.New(res.Entities)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Then query it:
//
//	result, err := eng.Search(ctx, search.Criteria{
//		Geo: &search.GeoCriteria{State: "TX"},
//	})
//
// All derived structures are built during New; every query afterwards is
// read-only and safe for concurrent use.
//
// # Observability
//
// The engine emits structured logs through log/slog and, when configured
// with WithTracer and WithMeter, OpenTelemetry spans and metrics for
// search operations.
package engine
