package engine

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/watchmen-in/cisadex-engine/entity"
	"github.com/watchmen-in/cisadex-engine/graph"
	"github.com/watchmen-in/cisadex-engine/icon"
	"github.com/watchmen-in/cisadex-engine/search"
	"github.com/watchmen-in/cisadex-engine/tuning"
)

// Engine is the query facade over a loaded entity collection. It owns
// the text index, the relationship graph, and the search pipeline, all
// built eagerly at construction; queries afterwards are read-only and
// safe for concurrent use.
type Engine struct {
	entities []entity.Entity
	byID     map[string]entity.Entity

	searcher *search.Searcher
	graph    *graph.Graph

	log        *slog.Logger
	tracer     trace.Tracer
	metrics    *searchMetrics
	params     *tuning.Params
	thresholds icon.Thresholds
}

// New builds an engine over the collection. Records with a duplicate ID
// keep the first occurrence; later duplicates are dropped with a warning.
// Construction builds every derived structure up front, so New cost is
// proportional to the collection size (pairwise for the graph) and
// queries do no lazy work.
func New(entities []entity.Entity, opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	params := cfg.params
	if params == nil && cfg.tuningPath != "" {
		loaded, err := tuning.Load(cfg.tuningPath)
		if err != nil {
			return nil, NewConfigurationError("Engine.New", err)
		}
		params = loaded
	}
	if params == nil {
		params = tuning.Defaults()
	}

	deduped := make([]entity.Entity, 0, len(entities))
	byID := make(map[string]entity.Entity, len(entities))
	for _, e := range entities {
		if e.ID == "" {
			return nil, NewValidationError("Engine.New",
				fmt.Errorf("entity %q has no id", e.Name))
		}
		if _, dup := byID[e.ID]; dup {
			cfg.logger.Warn("duplicate entity id, keeping first occurrence",
				"id", e.ID, "name", e.Name)
			continue
		}
		byID[e.ID] = e
		deduped = append(deduped, e)
	}

	searcher, err := search.New(deduped, params, cfg.logger)
	if err != nil {
		return nil, NewInternalError("Engine.New", err)
	}

	metrics, err := initSearchMetrics(cfg.meter)
	if err != nil {
		return nil, NewConfigurationError("Engine.New", err)
	}

	eng := &Engine{
		entities: deduped,
		byID:     byID,
		searcher: searcher,
		graph:    graph.Build(deduped, params),
		log:      cfg.logger,
		tracer:   cfg.tracer,
		metrics:  metrics,
		params:   params,
		thresholds: icon.Thresholds{
			Sector:   params.SectorDominance,
			Function: params.FunctionDominance,
			Agency:   params.AgencyDominance,
		},
	}

	cfg.logger.Info("engine ready",
		"entities", len(deduped),
		"dropped_duplicates", len(entities)-len(deduped))
	return eng, nil
}

// Count returns the number of entities in the collection after
// deduplication.
func (e *Engine) Count() int { return len(e.entities) }

// Entity returns the record for an ID, or ErrEntityNotFound.
func (e *Engine) Entity(id string) (entity.Entity, error) {
	ent, ok := e.byID[id]
	if !ok {
		return entity.Entity{}, NewNotFoundError("Engine.Entity", ErrEntityNotFound).
			WithContext(map[string]any{"id": id})
	}
	return ent, nil
}

// Search runs the staged filter pipeline and clusters the survivors.
// Malformed criteria (an out-of-range radius center, an expression that
// does not compile) return a validation error wrapping ErrInvalidCriteria.
func (e *Engine) Search(ctx context.Context, c search.Criteria) (*search.Result, error) {
	result, err := e.searcher.Search(ctx, c)
	e.recordSearch(ctx, result, err)
	if err != nil {
		return nil, NewValidationError("Engine.Search",
			fmt.Errorf("%w: %w", ErrInvalidCriteria, err))
	}
	return result, nil
}

// EntitiesByProximity returns entities within radiusMiles of the center,
// nearest first. A non-positive radius uses the 50-mile default.
func (e *Engine) EntitiesByProximity(center entity.Coordinates, radiusMiles float64) ([]search.Proximate, error) {
	if !center.Valid() {
		return nil, NewValidationError("Engine.EntitiesByProximity",
			fmt.Errorf("center %+v out of range", center))
	}
	return e.searcher.ByProximity(center, radiusMiles), nil
}

// Suggestions returns up to limit completion strings for a partial query.
func (e *Engine) Suggestions(partial string, limit int) []string {
	return e.searcher.Suggestions(partial, limit)
}

// RelatedEntities returns the entities directly connected to id in the
// relationship graph.
func (e *Engine) RelatedEntities(id string) ([]entity.Entity, error) {
	if _, ok := e.byID[id]; !ok {
		return nil, NewNotFoundError("Engine.RelatedEntities", ErrEntityNotFound).
			WithContext(map[string]any{"id": id})
	}
	return e.graph.Related(id), nil
}

// CoordinationNetwork returns every entity reachable from id within
// maxDepth hops, excluding the origin. A zero or negative depth selects
// the default depth (graph.DefaultNetworkDepth), so an empty traversal
// cannot be requested here; callers needing strict depth semantics,
// where depth 0 means no hops at all, should use graph.Network directly.
func (e *Engine) CoordinationNetwork(id string, maxDepth int) ([]entity.Entity, error) {
	if _, ok := e.byID[id]; !ok {
		return nil, NewNotFoundError("Engine.CoordinationNetwork", ErrEntityNotFound).
			WithContext(map[string]any{"id": id})
	}
	if maxDepth <= 0 {
		maxDepth = graph.DefaultNetworkDepth
	}
	return e.graph.Network(id, maxDepth), nil
}

// CoordinationStrength returns the strength of the connection between
// two entities, 0 when they are not connected.
func (e *Engine) CoordinationStrength(a, b string) float64 {
	return e.graph.Strength(a, b)
}

// CoordinationOpportunities scores potential partners for an entity that
// have no declared relationship with it, strongest first.
func (e *Engine) CoordinationOpportunities(id string) ([]graph.Opportunity, error) {
	if _, ok := e.byID[id]; !ok {
		return nil, NewNotFoundError("Engine.CoordinationOpportunities", ErrEntityNotFound).
			WithContext(map[string]any{"id": id})
	}
	return e.graph.Opportunities(id), nil
}

// RelationshipStatistics returns aggregate statistics over the graph.
func (e *Engine) RelationshipStatistics() graph.Statistics {
	return e.graph.Stats()
}

// EntityIcon resolves the map icon for one entity.
func (e *Engine) EntityIcon(id string) (icon.Config, error) {
	ent, ok := e.byID[id]
	if !ok {
		return icon.Config{}, NewNotFoundError("Engine.EntityIcon", ErrEntityNotFound).
			WithContext(map[string]any{"id": id})
	}
	return icon.ForEntity(ent), nil
}

// ClusterIcon resolves the map icon for a cluster by its member IDs.
// Unknown IDs are skipped; an empty or fully unknown member list gets
// the generic icon.
func (e *Engine) ClusterIcon(memberIDs []string) icon.Config {
	members := make([]entity.Entity, 0, len(memberIDs))
	for _, id := range memberIDs {
		if ent, ok := e.byID[id]; ok {
			members = append(members, ent)
		}
	}
	return icon.ForCluster(members, e.thresholds)
}
