package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/cel-go/cel"

	"github.com/watchmen-in/cisadex-engine/entity"
	"github.com/watchmen-in/cisadex-engine/geo"
	"github.com/watchmen-in/cisadex-engine/index"
	"github.com/watchmen-in/cisadex-engine/tuning"
)

// Result is the outcome of one search: the surviving entities, the
// zoom-dependent cluster view of them, and the facet names that actually
// filtered.
type Result struct {
	Entities   []entity.Entity `json:"entities"`
	TotalCount int             `json:"total_count"`
	Clusters   []Cluster       `json:"clusters"`

	// AppliedFilters lists the names of the facets that were present on
	// the criteria, in application order. The criteria themselves are
	// not echoed back; the caller already holds them.
	AppliedFilters []string `json:"applied_filters"`

	// SearchTime is the wall-clock duration of the search in
	// milliseconds.
	SearchTime float64 `json:"search_time_ms"`
}

// Searcher runs the staged filter pipeline over a fixed collection.
type Searcher struct {
	entities []entity.Entity
	idx      *index.Index
	params   *tuning.Params
	env      *cel.Env
	log      *slog.Logger
}

// New builds a searcher over the collection, constructing the text index
// and the CEL environment for advanced expressions.
func New(entities []entity.Entity, params *tuning.Params, log *slog.Logger) (*Searcher, error) {
	if params == nil {
		params = tuning.Defaults()
	}
	if log == nil {
		log = slog.Default()
	}
	env, err := newExprEnv()
	if err != nil {
		return nil, fmt.Errorf("search: build expression environment: %w", err)
	}
	return &Searcher{
		entities: entities,
		idx:      index.Build(entities, params.MaxSubstringCandidates),
		params:   params,
		env:      env,
		log:      log,
	}, nil
}

// Search applies the facets of the criteria in order (text, geographic,
// operational, organizational, advanced) and clusters the survivors at
// the requested zoom level. Absent facets pass everything through; the
// zero Criteria returns the full collection.
func (s *Searcher) Search(ctx context.Context, c Criteria) (*Result, error) {
	start := time.Now()

	matched := s.entities
	var applied []string

	if c.Text != "" {
		matched = s.idx.Filter(matched, c.Text)
		applied = append(applied, "text")
	}
	if c.Geo != nil {
		var err error
		matched, err = s.applyGeo(matched, c.Geo)
		if err != nil {
			return nil, err
		}
		applied = append(applied, "geo")
	}
	if c.Operational != nil {
		matched = applyOperational(matched, c.Operational)
		applied = append(applied, "operational")
	}
	if c.Organizational != nil {
		matched = applyOrganizational(matched, c.Organizational)
		applied = append(applied, "organizational")
	}
	if c.Advanced != nil {
		var err error
		matched, err = s.applyAdvanced(ctx, matched, c.Advanced)
		if err != nil {
			return nil, err
		}
		applied = append(applied, "advanced")
	}

	zoom := s.params.DefaultZoomLevel
	if c.ZoomLevel != nil {
		zoom = *c.ZoomLevel
	}
	clusters := BuildClusters(matched, zoom, s.params)

	elapsed := time.Since(start)
	s.log.DebugContext(ctx, "search complete",
		slog.Int("matched", len(matched)),
		slog.Int("clusters", len(clusters)),
		slog.Any("filters", applied),
		slog.Duration("elapsed", elapsed))

	return &Result{
		Entities:       matched,
		TotalCount:     len(matched),
		Clusters:       clusters,
		AppliedFilters: applied,
		SearchTime:     float64(elapsed) / float64(time.Millisecond),
	}, nil
}

func (s *Searcher) applyGeo(entities []entity.Entity, g *GeoCriteria) ([]entity.Entity, error) {
	matched := entities
	if g.State != "" {
		matched = filter(matched, func(e entity.Entity) bool {
			return inState(e, g.State)
		})
	}
	if g.Region != "" {
		states := geo.RegionStates(g.Region)
		set := make(map[string]struct{}, len(states))
		for _, st := range states {
			set[strings.ToUpper(st)] = struct{}{}
		}
		// Unknown region: empty set, nothing matches.
		matched = filter(matched, func(e entity.Entity) bool {
			for _, st := range e.JurisdictionStates() {
				if _, ok := set[strings.ToUpper(st)]; ok {
					return true
				}
			}
			return false
		})
	}
	if g.Radius != nil {
		if !g.Radius.Center.Valid() {
			return nil, fmt.Errorf("search: radius center %v out of range", g.Radius.Center)
		}
		if g.Radius.Miles < 0 {
			return nil, fmt.Errorf("search: radius must be non-negative, got %v", g.Radius.Miles)
		}
		matched = filter(matched, func(e entity.Entity) bool {
			if !e.Location.Coordinates.Valid() {
				return false
			}
			return geo.Haversine(g.Radius.Center, e.Location.Coordinates) <= g.Radius.Miles
		})
	}
	return matched, nil
}

// inState reports whether the entity is located in or has jurisdiction
// over the given state code, case-insensitively.
func inState(e entity.Entity, state string) bool {
	for _, st := range e.JurisdictionStates() {
		if strings.EqualFold(st, state) {
			return true
		}
	}
	return false
}

func applyOperational(entities []entity.Entity, o *OperationalCriteria) []entity.Entity {
	matched := entities
	if len(o.Sectors) > 0 {
		matched = filter(matched, func(e entity.Entity) bool {
			return e.HasAnySector(o.Sectors...)
		})
	}
	if len(o.Functions) > 0 {
		matched = filter(matched, func(e entity.Entity) bool {
			return e.HasAnyFunction(o.Functions...)
		})
	}
	if len(o.Capabilities) > 0 {
		matched = filter(matched, func(e entity.Entity) bool {
			return hasAnyString(e.Capabilities, o.Capabilities)
		})
	}
	if o.Status != "" {
		want := o.Status == StatusOperational
		matched = filter(matched, func(e entity.Entity) bool {
			return e.Status.Operational == want
		})
	}
	if o.Hours != "" {
		matched = filter(matched, func(e entity.Entity) bool {
			return e.Status.Hours == o.Hours
		})
	}
	return matched
}

func applyOrganizational(entities []entity.Entity, o *OrganizationalCriteria) []entity.Entity {
	matched := entities
	if o.Agency != "" {
		matched = filter(matched, func(e entity.Entity) bool {
			return e.ParentAgency == o.Agency
		})
	}
	if o.OfficeType != "" {
		matched = filter(matched, func(e entity.Entity) bool {
			return e.Type == o.OfficeType
		})
	}
	if o.Operational != nil {
		matched = filter(matched, func(e entity.Entity) bool {
			return e.Status.Operational == *o.Operational
		})
	}
	if o.PublicAccess != nil {
		matched = filter(matched, func(e entity.Entity) bool {
			return e.Status.PublicAccess == *o.PublicAccess
		})
	}
	return matched
}

func (s *Searcher) applyAdvanced(ctx context.Context, entities []entity.Entity, a *AdvancedCriteria) ([]entity.Entity, error) {
	matched := entities
	if a.Capabilities != "" {
		matched = filter(matched, func(e entity.Entity) bool {
			return tokensMatch(a.Capabilities, strings.Join(e.Capabilities, " "))
		})
	}
	if a.Specialties != "" {
		matched = filter(matched, func(e entity.Entity) bool {
			return tokensMatch(a.Specialties, strings.Join(e.Jurisdiction.Specialties, " "))
		})
	}
	if a.Keywords != "" {
		matched = filter(matched, func(e entity.Entity) bool {
			return tokensMatch(a.Keywords, keywordBlob(e))
		})
	}
	if a.Expr != "" {
		prog, err := s.compileExpr(a.Expr)
		if err != nil {
			return nil, err
		}
		matched = s.filterExpr(ctx, matched, a.Expr, prog)
	}
	return matched, nil
}

// tokensMatch reports whether any whitespace-split token of the query
// occurs as a substring of the target, case-insensitively.
func tokensMatch(query, target string) bool {
	target = strings.ToLower(target)
	for _, tok := range strings.Fields(strings.ToLower(query)) {
		if strings.Contains(target, tok) {
			return true
		}
	}
	return false
}

// keywordBlob is the searchable text for the advanced keyword filter:
// name, jurisdiction coverage, special programs, and notes.
func keywordBlob(e entity.Entity) string {
	parts := []string{e.Name, e.Jurisdiction.Coverage}
	if e.Metadata != nil {
		parts = append(parts, e.Metadata.Notes)
		parts = append(parts, e.Metadata.SpecialPrograms...)
	}
	return strings.Join(parts, " ")
}

func hasAnyString(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

func filter(entities []entity.Entity, keep func(entity.Entity) bool) []entity.Entity {
	out := make([]entity.Entity, 0, len(entities))
	for _, e := range entities {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
