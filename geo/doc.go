// Package geo provides the geographic primitives behind radius filtering
// and map clustering: great-circle distance via the haversine formula,
// the standard ten-region partition of US states and territories, and the
// zoom-level to cluster-radius lookup table.
//
// All distances are statute miles over an Earth radius of 3,959 miles.
package geo
