// Package index builds an inverted token index over entity fields and
// answers free-text lookups against it.
//
// The index maps each retained token to its posting set, the set of entity
// IDs whose indexed text contains that token. Lookups union posting sets
// for exact token matches and, for query tokens longer than three
// characters, for any indexed token containing the query token as a
// substring. The substring scan walks the whole token table, so it is
// bounded by a configurable candidate cap to keep worst-case query cost
// under control on large collections.
//
// Tokens of length two or fewer are discarded at build time and are
// therefore unsearchable. That is a deliberate tradeoff against index
// size: short tokens are dominated by noise words and unit abbreviations.
package index
