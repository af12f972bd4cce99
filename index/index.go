package index

import (
	"strings"

	"github.com/watchmen-in/cisadex-engine/entity"
)

// DefaultSubstringCap bounds how many candidate IDs a single query token
// may collect through the substring fallback scan.
const DefaultSubstringCap = 500

// minTokenLen is the shortest token retained at build time. Shorter tokens
// are noise words and unit abbreviations.
const minTokenLen = 3

// substringMinQueryLen is the shortest query token eligible for the
// substring fallback over the whole token table.
const substringMinQueryLen = 4

// Index is an immutable inverted token index over a fixed entity
// collection. Build it once with Build; lookups never mutate it, so an
// Index is safe for concurrent readers.
type Index struct {
	// postings maps token -> set of entity IDs.
	postings map[string]map[string]struct{}

	// tokens holds the indexed tokens in insertion order so substring
	// scans are deterministic.
	tokens []string

	substringCap int
}

// Build constructs an inverted index over the collection. substringCap
// bounds the substring fallback per query token; values <= 0 select
// DefaultSubstringCap.
func Build(entities []entity.Entity, substringCap int) *Index {
	if substringCap <= 0 {
		substringCap = DefaultSubstringCap
	}
	idx := &Index{
		postings:     make(map[string]map[string]struct{}),
		substringCap: substringCap,
	}
	for _, e := range entities {
		for _, token := range Tokenize(indexedText(e)) {
			set, ok := idx.postings[token]
			if !ok {
				set = make(map[string]struct{})
				idx.postings[token] = set
				idx.tokens = append(idx.tokens, token)
			}
			set[e.ID] = struct{}{}
		}
	}
	return idx
}

// indexedText concatenates every searchable field of an entity into one
// string: name, parent agency, type, city, state, address, jurisdiction
// coverage, every tag, every jurisdiction state code, and every special
// program.
func indexedText(e entity.Entity) string {
	var sb strings.Builder
	write := func(s string) {
		if s == "" {
			return
		}
		sb.WriteString(s)
		sb.WriteByte(' ')
	}

	write(e.Name)
	write(string(e.ParentAgency))
	write(string(e.Type))
	write(e.Location.City)
	write(e.Location.State)
	write(e.Location.Address)
	write(e.Jurisdiction.Coverage)
	for _, s := range e.Sectors {
		write(string(s))
	}
	for _, f := range e.Functions {
		write(string(f))
	}
	for _, c := range e.Capabilities {
		write(c)
	}
	for _, s := range e.Jurisdiction.Specialties {
		write(s)
	}
	for _, s := range e.Jurisdiction.States {
		write(s)
	}
	if e.Metadata != nil {
		for _, p := range e.Metadata.SpecialPrograms {
			write(p)
		}
	}
	return sb.String()
}

// Tokenize lowercases s, splits on whitespace, and drops tokens of length
// two or fewer. Queries and indexed text go through the same path.
func Tokenize(s string) []string {
	fields := strings.Fields(strings.ToLower(s))
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) >= minTokenLen {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Candidates returns the set of entity IDs matching the query: the union,
// over every query token, of the exact posting set plus (for tokens longer
// than three characters) the posting sets of every indexed token
// containing the query token as a substring. A blank query returns nil.
func (idx *Index) Candidates(query string) map[string]struct{} {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	candidates := make(map[string]struct{})
	for _, token := range tokens {
		for id := range idx.postings[token] {
			candidates[id] = struct{}{}
		}
		if len(token) < substringMinQueryLen {
			continue
		}
		collected := 0
		for _, indexed := range idx.tokens {
			if collected >= idx.substringCap {
				break
			}
			if indexed == token || !strings.Contains(indexed, token) {
				continue
			}
			for id := range idx.postings[indexed] {
				if collected >= idx.substringCap {
					break
				}
				candidates[id] = struct{}{}
				collected++
			}
		}
	}
	return candidates
}

// Filter narrows entities to those matched by the query. A blank query is
// a pass-through, returning the input unchanged, so text search composes
// with prior pipeline stages rather than applying only to the full
// collection. A non-blank query whose tokens are all too short to be
// indexed matches nothing.
func (idx *Index) Filter(entities []entity.Entity, query string) []entity.Entity {
	if strings.TrimSpace(query) == "" {
		return entities
	}
	candidates := idx.Candidates(query)
	matched := make([]entity.Entity, 0, len(entities))
	for _, e := range entities {
		if _, ok := candidates[e.ID]; ok {
			matched = append(matched, e)
		}
	}
	return matched
}

// TokenCount returns the number of distinct indexed tokens.
func (idx *Index) TokenCount() int { return len(idx.tokens) }
