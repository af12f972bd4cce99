package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/cel-go/cel"

	"github.com/watchmen-in/cisadex-engine/entity"
)

// newExprEnv builds the CEL environment for advanced expressions. A
// single variable "entity" is exposed as a string-keyed map of the
// attributes produced by Attributes.
func newExprEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("entity", cel.MapType(cel.StringType, cel.DynType)),
	)
}

// compileExpr compiles an advanced expression and requires a boolean
// result type. Compilation failures surface to the caller; they indicate
// a malformed request, not a data problem.
func (s *Searcher) compileExpr(expr string) (cel.Program, error) {
	ast, issues := s.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("search: compile expression: %w", issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("search: expression must evaluate to bool, got %s", ast.OutputType())
	}
	prog, err := s.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("search: build expression program: %w", err)
	}
	return prog, nil
}

// filterExpr evaluates the compiled program against each entity.
// Per-entity evaluation errors (a missing key, a type mismatch on one
// record) drop that entity rather than failing the search.
func (s *Searcher) filterExpr(ctx context.Context, entities []entity.Entity, expr string, prog cel.Program) []entity.Entity {
	out := make([]entity.Entity, 0, len(entities))
	for _, e := range entities {
		val, _, err := prog.ContextEval(ctx, map[string]any{"entity": Attributes(e)})
		if err != nil {
			s.log.DebugContext(ctx, "expression evaluation failed",
				"entity_id", e.ID, "expr", expr, "error", err)
			continue
		}
		keep, ok := val.Value().(bool)
		if ok && keep {
			out = append(out, e)
		}
	}
	return out
}

// Attributes is the per-entity map visible to advanced expressions.
// String fields are lowercased so expressions compare case-insensitively
// by convention.
func Attributes(e entity.Entity) map[string]any {
	return map[string]any{
		"id":            e.ID,
		"name":          strings.ToLower(e.Name),
		"type":          string(e.Type),
		"agency":        string(e.ParentAgency),
		"state":         strings.ToUpper(e.Location.State),
		"city":          strings.ToLower(e.Location.City),
		"sectors":       lowerStrings(sectorStrings(e.Sectors)),
		"functions":     lowerStrings(functionStrings(e.Functions)),
		"capabilities":  lowerStrings(e.Capabilities),
		"operational":   e.Status.Operational,
		"hours":         string(e.Status.Hours),
		"public_access": e.Status.PublicAccess,
	}
}

func sectorStrings(sectors []entity.Sector) []string {
	out := make([]string, len(sectors))
	for i, s := range sectors {
		out[i] = string(s)
	}
	return out
}

func functionStrings(fns []entity.Function) []string {
	out := make([]string, len(fns))
	for i, f := range fns {
		out[i] = string(f)
	}
	return out
}

func lowerStrings(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
