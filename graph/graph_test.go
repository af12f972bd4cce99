package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watchmen-in/cisadex-engine/entity"
)

func entityIDs(entities []entity.Entity) []string {
	out := make([]string, len(entities))
	for i, e := range entities {
		out[i] = e.ID
	}
	return out
}

// isolated builds a minimal entity that triggers no inference rules.
func isolated(id string) entity.Entity {
	return entity.Entity{ID: id, Name: id}
}

func TestBuild_ExplicitBidirectional(t *testing.T) {
	entities := []entity.Entity{
		{ID: "a", Relationships: []entity.Relationship{
			{RelatedEntityID: "b", Type: entity.RelationPartner, Active: true},
		}},
		isolated("b"),
	}
	g := Build(entities, nil)

	assert.Equal(t, []string{"b"}, entityIDs(g.Related("a")))
	assert.Equal(t, []string{"a"}, entityIDs(g.Related("b")))
	assert.Equal(t, 0.7, g.Strength("a", "b"))
}

func TestBuild_ExplicitDirectionalNotMirrored(t *testing.T) {
	entities := []entity.Entity{
		{ID: "child", Relationships: []entity.Relationship{
			{RelatedEntityID: "parent", Type: entity.RelationParent, Active: true},
		}},
		isolated("parent"),
	}
	g := Build(entities, nil)

	assert.Equal(t, []string{"parent"}, entityIDs(g.Related("child")))
	assert.Empty(t, g.Related("parent"))

	// Strength is stored symmetrically even for directional edges.
	assert.Equal(t, 0.9, g.Strength("child", "parent"))
	assert.Equal(t, 0.9, g.Strength("parent", "child"))
}

func TestBuild_InactiveRelationshipIgnored(t *testing.T) {
	entities := []entity.Entity{
		{ID: "a", Relationships: []entity.Relationship{
			{RelatedEntityID: "b", Type: entity.RelationPartner, Active: false},
		}},
		isolated("b"),
	}
	g := Build(entities, nil)

	assert.Empty(t, g.Related("a"))
	assert.Equal(t, 0.0, g.Strength("a", "b"))
}

func TestBuild_AgencyStructureInference(t *testing.T) {
	entities := []entity.Entity{
		{ID: "r1", ParentAgency: entity.AgencyCISA, Type: entity.TypeRegionalOffice,
			Location: entity.Location{State: "PA"}},
		{ID: "r2", ParentAgency: entity.AgencyCISA, Type: entity.TypeRegionalOffice,
			Location: entity.Location{State: "GA"}},
		{ID: "f1", ParentAgency: entity.AgencyCISA, Type: entity.TypeFieldOffice,
			Location: entity.Location{State: "PA"}},
		{ID: "f-other", ParentAgency: entity.AgencyFBI, Type: entity.TypeFieldOffice,
			Location: entity.Location{State: "PA"}},
	}
	g := Build(entities, nil)

	// Regional offices of one agency always coordinate.
	assert.Contains(t, entityIDs(g.Related("r1")), "r2")

	// Field office coordinates with the regional office covering its state.
	assert.Contains(t, entityIDs(g.Related("f1")), "r1")
	assert.NotContains(t, entityIDs(g.Related("f1")), "r2")

	// Different agency: no structural edge.
	assert.Empty(t, g.Related("f-other"))

	assert.Equal(t, 0.6, g.Strength("r1", "r2"))
}

func TestBuild_GeographicInference(t *testing.T) {
	entities := []entity.Entity{
		{ID: "le", Location: entity.Location{State: "TX"},
			Functions: []entity.Function{entity.FunctionLawEnforcement}},
		{ID: "intel", Location: entity.Location{State: "TX"},
			Functions: []entity.Function{entity.FunctionIntelligence}},
		{ID: "em1", Jurisdiction: entity.Jurisdiction{States: []string{"TX"}},
			Functions: []entity.Function{entity.FunctionEmergencyManagement}},
		{ID: "em2", Location: entity.Location{State: "TX"},
			Functions: []entity.Function{entity.FunctionIncidentResponse}},
		{ID: "outreach", Location: entity.Location{State: "TX"},
			Functions: []entity.Function{entity.FunctionOutreach}},
		{ID: "far-le", Location: entity.Location{State: "WA"},
			Functions: []entity.Function{entity.FunctionLawEnforcement}},
	}
	g := Build(entities, nil)

	// Complementary law-enforcement family in the same state.
	assert.Contains(t, entityIDs(g.Related("le")), "intel")

	// Emergency family via jurisdiction-state overlap.
	assert.Contains(t, entityIDs(g.Related("em1")), "em2")

	// Outreach carries neither family; no state overlap for far-le.
	assert.Empty(t, g.Related("outreach"))
	assert.Empty(t, g.Related("far-le"))
}

func TestBuild_FunctionalInference(t *testing.T) {
	entities := []entity.Entity{
		{ID: "cyber1", Sectors: []entity.Sector{entity.SectorInformationTechnology},
			Functions: []entity.Function{entity.FunctionThreatAnalysis}},
		{ID: "cyber2", Sectors: []entity.Sector{entity.SectorInformationTechnology}},
		{ID: "energy1", Sectors: []entity.Sector{entity.SectorEnergy}},
		{ID: "energy2", Sectors: []entity.Sector{entity.SectorEnergy}},
		{ID: "food", Sectors: []entity.Sector{entity.SectorFoodAgriculture}},
	}
	g := Build(entities, nil)

	// Shared IT sector and cyber signals on both sides.
	assert.Contains(t, entityIDs(g.Related("cyber1")), "cyber2")

	// Shared energy sector: critical-infrastructure signal on both sides.
	assert.Contains(t, entityIDs(g.Related("energy1")), "energy2")

	// Food & agriculture is not an infrastructure-signal sector and shares
	// no tags with the others.
	assert.Empty(t, g.Related("food"))
}

func TestStrength_MaxWinsAcrossRules(t *testing.T) {
	// Explicit task_force (0.8) plus inferred coordination (0.6): the
	// stored strength must be the maximum, regardless of discovery order.
	entities := []entity.Entity{
		{ID: "a", Location: entity.Location{State: "VA"},
			Functions: []entity.Function{entity.FunctionLawEnforcement},
			Relationships: []entity.Relationship{
				{RelatedEntityID: "b", Type: entity.RelationTaskForce, Active: true},
			}},
		{ID: "b", Location: entity.Location{State: "VA"},
			Functions: []entity.Function{entity.FunctionIntelligence}},
	}
	g := Build(entities, nil)

	assert.Equal(t, 0.8, g.Strength("a", "b"))
	assert.Equal(t, 0.8, g.Strength("b", "a"))
}

func TestStrength_SymmetricAndZeroDefault(t *testing.T) {
	g := Build([]entity.Entity{isolated("a"), isolated("b")}, nil)

	assert.Equal(t, 0.0, g.Strength("a", "b"))
	assert.Equal(t, 0.0, g.Strength("nope", "a"))
}

// chain builds a -- b -- c -- d as explicit partner links.
func chain() *Graph {
	return Build([]entity.Entity{
		{ID: "a", Relationships: []entity.Relationship{
			{RelatedEntityID: "b", Type: entity.RelationPartner, Active: true},
		}},
		{ID: "b", Relationships: []entity.Relationship{
			{RelatedEntityID: "c", Type: entity.RelationPartner, Active: true},
		}},
		{ID: "c", Relationships: []entity.Relationship{
			{RelatedEntityID: "d", Type: entity.RelationPartner, Active: true},
		}},
		isolated("d"),
	}, nil)
}

func TestNetwork_DepthSemantics(t *testing.T) {
	g := chain()

	// Depth 0 (and negatives) return nothing.
	assert.Empty(t, g.Network("a", 0))
	assert.Empty(t, g.Network("a", -1))

	// Depth 1 is exactly the direct neighbors.
	assert.Equal(t, []string{"b"}, entityIDs(g.Network("a", 1)))

	// Depth 2 adds the two-hop ring; origin stays excluded.
	assert.Equal(t, []string{"b", "c"}, entityIDs(g.Network("a", 2)))

	// Depth beyond the graph diameter includes everything reachable.
	assert.Equal(t, []string{"b", "c", "d"}, entityIDs(g.Network("a", 10)))
}

func TestNetwork_CycleSafe(t *testing.T) {
	g := Build([]entity.Entity{
		{ID: "a", Relationships: []entity.Relationship{
			{RelatedEntityID: "b", Type: entity.RelationPartner, Active: true},
		}},
		{ID: "b", Relationships: []entity.Relationship{
			{RelatedEntityID: "c", Type: entity.RelationPartner, Active: true},
		}},
		{ID: "c", Relationships: []entity.Relationship{
			{RelatedEntityID: "a", Type: entity.RelationPartner, Active: true},
		}},
	}, nil)

	got := g.Network("a", 10)
	assert.ElementsMatch(t, []string{"b", "c"}, entityIDs(got))
}

func TestNetwork_UnresolvedIDsDropped(t *testing.T) {
	g := Build([]entity.Entity{
		{ID: "a", Relationships: []entity.Relationship{
			{RelatedEntityID: "ghost", Type: entity.RelationPartner, Active: true},
		}},
	}, nil)

	assert.Empty(t, g.Network("a", 2))
	assert.Empty(t, g.Related("a"))
}

func TestOpportunities_ComplementaryScenario(t *testing.T) {
	// Same state, different agencies, law enforcement one side and
	// intelligence the other, no declared relationship between them.
	entities := []entity.Entity{
		{ID: "fbi-dallas", Name: "FBI Dallas", ParentAgency: entity.AgencyFBI,
			Location:  entity.Location{State: "TX"},
			Functions: []entity.Function{entity.FunctionLawEnforcement}},
		{ID: "cisa-tx", Name: "CISA Texas", ParentAgency: entity.AgencyCISA,
			Location:  entity.Location{State: "TX"},
			Functions: []entity.Function{entity.FunctionIntelligence}},
	}
	g := Build(entities, nil)

	opps := g.Opportunities("fbi-dallas")
	require.Len(t, opps, 1)
	assert.Equal(t, "cisa-tx", opps[0].Entity.ID)
	assert.Equal(t, 0.7, opps[0].Strength)
	assert.Contains(t, opps[0].Reason, "complementary")
}

func TestOpportunities_MaxApplicableScoreWins(t *testing.T) {
	// Cyber (0.8) and infrastructure (0.7) both apply; cyber wins.
	entities := []entity.Entity{
		{ID: "a", ParentAgency: entity.AgencyCISA,
			Location: entity.Location{State: "CO"},
			Sectors:  []entity.Sector{entity.SectorEnergy, entity.SectorInformationTechnology}},
		{ID: "b", ParentAgency: entity.AgencyDOE,
			Location: entity.Location{State: "CO"},
			Sectors:  []entity.Sector{entity.SectorEnergy, entity.SectorInformationTechnology}},
	}
	g := Build(entities, nil)

	opps := g.Opportunities("a")
	require.Len(t, opps, 1)
	assert.Equal(t, 0.8, opps[0].Strength)
	assert.Contains(t, opps[0].Reason, "cyber")
}

func TestOpportunities_DeclaredPartnersAndSelfExcluded(t *testing.T) {
	entities := []entity.Entity{
		{ID: "a", ParentAgency: entity.AgencyFBI,
			Location:  entity.Location{State: "TX"},
			Functions: []entity.Function{entity.FunctionLawEnforcement},
			Relationships: []entity.Relationship{
				{RelatedEntityID: "declared", Type: entity.RelationPartner, Active: true},
			}},
		{ID: "declared", ParentAgency: entity.AgencyCISA,
			Location:  entity.Location{State: "TX"},
			Functions: []entity.Function{entity.FunctionIntelligence}},
		{ID: "open", ParentAgency: entity.AgencyUSSS,
			Location:  entity.Location{State: "TX"},
			Functions: []entity.Function{entity.FunctionCyberForensics}},
	}
	g := Build(entities, nil)

	opps := g.Opportunities("a")
	require.Len(t, opps, 1)
	assert.Equal(t, "open", opps[0].Entity.ID)
}

func TestOpportunities_BelowFloorExcluded(t *testing.T) {
	// Same agency blocks the same-state rules; no jurisdiction signals.
	entities := []entity.Entity{
		{ID: "a", ParentAgency: entity.AgencyFBI, Location: entity.Location{State: "TX"},
			Functions: []entity.Function{entity.FunctionLawEnforcement}},
		{ID: "b", ParentAgency: entity.AgencyFBI, Location: entity.Location{State: "TX"},
			Functions: []entity.Function{entity.FunctionIntelligence}},
	}
	g := Build(entities, nil)

	assert.Empty(t, g.Opportunities("a"))
}

func TestOpportunities_SortedDescending(t *testing.T) {
	entities := []entity.Entity{
		{ID: "origin", ParentAgency: entity.AgencyCISA,
			Location:  entity.Location{State: "NY"},
			Sectors:   []entity.Sector{entity.SectorInformationTechnology, entity.SectorEnergy},
			Functions: []entity.Function{entity.FunctionLawEnforcement}},
		{ID: "cyber-peer", ParentAgency: entity.AgencyFBI,
			Location: entity.Location{State: "NY"},
			Sectors:  []entity.Sector{entity.SectorInformationTechnology}},
		{ID: "le-peer", ParentAgency: entity.AgencyUSSS,
			Location:  entity.Location{State: "NY"},
			Functions: []entity.Function{entity.FunctionIntelligence}},
	}
	g := Build(entities, nil)

	opps := g.Opportunities("origin")
	require.Len(t, opps, 2)
	assert.Equal(t, "cyber-peer", opps[0].Entity.ID)
	assert.Equal(t, 0.8, opps[0].Strength)
	assert.Equal(t, "le-peer", opps[1].Entity.ID)
	assert.Equal(t, 0.7, opps[1].Strength)
}

func TestOpportunities_UnknownOrigin(t *testing.T) {
	g := Build([]entity.Entity{isolated("a")}, nil)
	assert.Nil(t, g.Opportunities("ghost"))
}

func TestStats(t *testing.T) {
	entities := []entity.Entity{
		{ID: "a", Name: "Alpha", Relationships: []entity.Relationship{
			{RelatedEntityID: "b", Type: entity.RelationPartner, Active: true},
			{RelatedEntityID: "c", Type: entity.RelationTaskForce, Active: true},
		}},
		isolated("b"),
		isolated("c"),
		isolated("d"),
	}
	g := Build(entities, nil)

	stats := g.Stats()
	assert.Equal(t, 2, stats.TotalEdges)
	assert.Equal(t, 1, stats.EdgesByType[entity.RelationPartner])
	assert.Equal(t, 1, stats.EdgesByType[entity.RelationTaskForce])
	// Four entities, four directed adjacency entries.
	assert.InDelta(t, 1.0, stats.AverageDegree, 1e-9)

	require.NotEmpty(t, stats.TopConnected)
	assert.Equal(t, "a", stats.TopConnected[0].ID)
	assert.Equal(t, "Alpha", stats.TopConnected[0].Name)
	assert.Equal(t, 2, stats.TopConnected[0].Degree)
	assert.LessOrEqual(t, len(stats.TopConnected), 10)
}

func TestStats_SharedPairCountsEachType(t *testing.T) {
	// A pair linked by a directional parent declaration and rediscovered
	// by coordination inference keeps a full count under both types.
	entities := []entity.Entity{
		{ID: "field", ParentAgency: entity.AgencyFBI,
			Type:      entity.TypeFieldOffice,
			Location:  entity.Location{State: "TX"},
			Functions: []entity.Function{entity.FunctionLawEnforcement},
			Relationships: []entity.Relationship{
				{RelatedEntityID: "regional", Type: entity.RelationParent, Active: true},
			}},
		{ID: "regional", ParentAgency: entity.AgencyFBI,
			Type:      entity.TypeRegionalOffice,
			Location:  entity.Location{State: "TX"},
			Functions: []entity.Function{entity.FunctionIntelligence}},
	}
	g := Build(entities, nil)

	stats := g.Stats()
	assert.Equal(t, 1, stats.TotalEdges)
	assert.Equal(t, 1, stats.EdgesByType[entity.RelationParent])
	assert.Equal(t, 1, stats.EdgesByType[entity.RelationCoordination])
}

func TestStats_EmptyGraph(t *testing.T) {
	g := Build(nil, nil)
	stats := g.Stats()
	assert.Equal(t, 0, stats.TotalEdges)
	assert.Equal(t, 0.0, stats.AverageDegree)
	assert.Empty(t, stats.TopConnected)
}
