package index

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watchmen-in/cisadex-engine/entity"
)

func testEntities() []entity.Entity {
	return []entity.Entity{
		{
			ID:           "cisa-r3",
			Name:         "CISA Region 3 Office",
			Type:         entity.TypeRegionalOffice,
			ParentAgency: entity.AgencyCISA,
			Location:     entity.Location{City: "Philadelphia", State: "PA"},
			Capabilities: []string{"cyber_forensics", "threat_hunting"},
		},
		{
			ID:           "fbi-pitt",
			Name:         "FBI Pittsburgh Field Office",
			Type:         entity.TypeFieldOffice,
			ParentAgency: entity.AgencyFBI,
			Location:     entity.Location{City: "Pittsburgh", State: "PA"},
			Functions:    []entity.Function{entity.FunctionLawEnforcement},
		},
		{
			ID:           "nist-gaithersburg",
			Name:         "NIST Gaithersburg Laboratory",
			Type:         entity.TypeLaboratory,
			ParentAgency: entity.AgencyNIST,
			Location:     entity.Location{City: "Gaithersburg", State: "MD"},
			Jurisdiction: entity.Jurisdiction{Coverage: "national standards development"},
			Metadata:     &entity.Metadata{SpecialPrograms: []string{"NICE Framework"}},
		},
	}
}

func ids(entities []entity.Entity) []string {
	out := make([]string, len(entities))
	for i, e := range entities {
		out[i] = e.ID
	}
	return out
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("The FBI Field Office of PA")
	// "the"/"fbi" survive at length 3; "of" and "pa" are dropped.
	assert.Equal(t, []string{"the", "fbi", "field", "office"}, tokens)

	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   "))
	assert.Empty(t, Tokenize("of to in"))
}

func TestFilter_ExactToken(t *testing.T) {
	entities := testEntities()
	idx := Build(entities, 0)

	got := idx.Filter(entities, "pittsburgh")
	require.Len(t, got, 1)
	assert.Equal(t, "fbi-pitt", got[0].ID)
}

func TestFilter_SubstringFallback(t *testing.T) {
	entities := testEntities()
	idx := Build(entities, 0)

	// "cyber" (length > 3) must reach the cyber_forensics capability tag
	// through the substring scan.
	got := idx.Filter(entities, "cyber")
	require.Len(t, got, 1)
	assert.Equal(t, "cisa-r3", got[0].ID)

	// Special programs are indexed too.
	got = idx.Filter(entities, "nice")
	require.Len(t, got, 1)
	assert.Equal(t, "nist-gaithersburg", got[0].ID)
}

func TestFilter_ShortTokenNoSubstring(t *testing.T) {
	entities := testEntities()
	idx := Build(entities, 0)

	// "fbi" matches exactly but is too short for the substring scan, so
	// it cannot reach "fbi-adjacent" compound tokens it is not a whole
	// token of.
	got := idx.Filter(entities, "fbi")
	require.Len(t, got, 1)
	assert.Equal(t, "fbi-pitt", got[0].ID)
}

func TestFilter_BlankQueryPassThrough(t *testing.T) {
	entities := testEntities()
	idx := Build(entities, 0)

	assert.Equal(t, ids(entities), ids(idx.Filter(entities, "")))
	assert.Equal(t, ids(entities), ids(idx.Filter(entities, "   ")))
}

func TestFilter_UnindexableQueryMatchesNothing(t *testing.T) {
	entities := testEntities()
	idx := Build(entities, 0)

	// Non-blank, but every token is too short to exist in the index.
	assert.Empty(t, idx.Filter(entities, "pa"))
}

func TestFilter_ComposesWithNarrowedInput(t *testing.T) {
	entities := testEntities()
	idx := Build(entities, 0)

	// Both PA entities match "office", but a pre-narrowed input keeps
	// only the intersection.
	narrowed := entities[1:2]
	got := idx.Filter(narrowed, "office")
	require.Len(t, got, 1)
	assert.Equal(t, "fbi-pitt", got[0].ID)
}

func TestFilter_MultiTokenUnion(t *testing.T) {
	entities := testEntities()
	idx := Build(entities, 0)

	got := idx.Filter(entities, "pittsburgh gaithersburg")
	assert.ElementsMatch(t, []string{"fbi-pitt", "nist-gaithersburg"}, ids(got))
}

func TestCandidates_SubstringCap(t *testing.T) {
	// Many entities sharing a long token reachable only by substring.
	var entities []entity.Entity
	for i := 0; i < 50; i++ {
		entities = append(entities, entity.Entity{
			ID:   fmt.Sprintf("e-%02d", i),
			Name: fmt.Sprintf("cybersecurity outpost %02d", i),
		})
	}

	idx := Build(entities, 10)
	got := idx.Candidates("cyber")
	// The cap bounds the substring scan; the exact match set is empty
	// here, so only capped substring candidates remain.
	assert.LessOrEqual(t, len(got), 10)
	assert.NotEmpty(t, got)
}

func TestBuild_TokenCount(t *testing.T) {
	idx := Build(testEntities(), 0)
	assert.Greater(t, idx.TokenCount(), 10)
}
