package enrichment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifyTargetPersonas_DefaultTrio(t *testing.T) {
	personas := IdentifyTargetPersonas("Technology", "", "")

	require.Len(t, personas, 3)
	assert.Equal(t, "VP of Sales / Chief Revenue Officer", personas[0].Persona)
	assert.Equal(t, "Head of Revenue Operations", personas[1].Persona)
	assert.Equal(t, "Sales Enablement Manager", personas[2].Persona)
	for _, p := range personas {
		assert.NotEmpty(t, p.Why)
	}
}

func TestIdentifyTargetPersonas_CREProduct(t *testing.T) {
	personas := IdentifyTargetPersonas("Financial Services", "CRE deal management software", "")

	require.Len(t, personas, 3)
	assert.Equal(t, "Acquisitions Associate", personas[0].Persona)
	assert.Equal(t, "Acquisitions Analyst", personas[1].Persona)
	assert.Equal(t, "Director of Acquisitions", personas[2].Persona)
}

func TestIdentifyTargetPersonas_AcquisitionsOverrideSelectsCREFamily(t *testing.T) {
	tests := []string{
		"Acquisitions Associate",
		"acquisitions analyst",
		"Senior Acquisitions Associate",
	}

	for _, override := range tests {
		t.Run(override, func(t *testing.T) {
			personas := IdentifyTargetPersonas("Technology", "", override)
			require.Len(t, personas, 3)
			assert.Equal(t, "Acquisitions Associate", personas[0].Persona)
		})
	}
}

func TestIdentifyTargetPersonas_SeniorOverrideGetsManagerSecondary(t *testing.T) {
	personas := IdentifyTargetPersonas("Technology", "", "VP of Engineering")

	require.Len(t, personas, 2)
	assert.Equal(t, "VP of Engineering", personas[0].Persona)
	assert.Equal(t, "Manager reporting to VP of Engineering", personas[1].Persona)
}

func TestIdentifyTargetPersonas_PlainOverrideEchoes(t *testing.T) {
	personas := IdentifyTargetPersonas("Technology", "", "Procurement Specialist")

	require.Len(t, personas, 1)
	assert.Equal(t, "Procurement Specialist", personas[0].Persona)
	assert.Equal(t, "Explicitly requested target persona", personas[0].Why)
}

func TestMapPersonaToSearchTitles_CREFamilies(t *testing.T) {
	tests := []struct {
		persona string
		want    []string
	}{
		{
			persona: "Acquisitions Associate",
			want: []string{
				"Acquisitions Associate",
				"Senior Acquisitions Associate",
				"Acquisitions Manager",
				"Investment Associate",
			},
		},
		{
			persona: "Acquisitions Analyst",
			want: []string{
				"Acquisitions Analyst",
				"Investment Analyst",
				"Deal Analyst",
				"Financial Analyst",
			},
		},
		{
			persona: "Director of Acquisitions",
			want: []string{
				"Director of Acquisitions",
				"VP of Acquisitions",
				"Head of Acquisitions",
				"Managing Director of Acquisitions",
				"Acquisitions Director",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.persona, func(t *testing.T) {
			assert.Equal(t, tt.want, MapPersonaToSearchTitles(tt.persona))
		})
	}
}

func TestMapPersonaToSearchTitles_SalesFamilies(t *testing.T) {
	titles := MapPersonaToSearchTitles("VP of Sales / Chief Revenue Officer")
	assert.Equal(t, []string{
		"VP of Sales",
		"Vice President of Sales",
		"Chief Revenue Officer",
		"CRO",
		"SVP Sales",
	}, titles)

	assert.Len(t, MapPersonaToSearchTitles("Head of Revenue Operations"), 4)
	assert.Len(t, MapPersonaToSearchTitles("Sales Enablement Manager"), 4)
}

func TestMapPersonaToSearchTitles_FallbackVerbatim(t *testing.T) {
	assert.Equal(t, []string{"Chief Happiness Officer"}, MapPersonaToSearchTitles("Chief Happiness Officer"))
}
