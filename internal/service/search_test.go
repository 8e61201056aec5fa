package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maracujarp/rulebook-api/internal/models"
)

func searchFixture() []models.Section {
	return []models.Section{
		{
			ID:    "s1",
			Title: "Regole Generali",
			Rules: []models.Rule{
				{ID: "r1", SectionID: "s1", Title: "Rispetto reciproco", Content: "<p>Tratta tutti i membri con rispetto.</p>"},
				{ID: "r2", SectionID: "s1", Title: "Niente spam", Content: "<p>Vietato inviare messaggi ripetuti.</p>"},
			},
		},
		{
			ID:    "s2",
			Title: "Roleplay",
			Rules: []models.Rule{
				{ID: "r3", SectionID: "s2", Title: "Metagaming", Content: "<p>Non usare informazioni esterne al gioco.</p>"},
			},
		},
	}
}

func TestFilterSectionsBlankQueryIsIdentity(t *testing.T) {
	sections := searchFixture()

	filtered, matches := filterSections(sections, "   ")
	require.Equal(t, sections, filtered)
	require.Equal(t, 3, matches)
}

func TestFilterSectionsMatchesTitleCaseInsensitive(t *testing.T) {
	filtered, matches := filterSections(searchFixture(), "rispetto")
	require.Equal(t, 1, matches)
	require.Len(t, filtered, 1)
	require.Equal(t, "Regole Generali", filtered[0].Title)
	require.Len(t, filtered[0].Rules, 1)
	require.Equal(t, "Rispetto reciproco", filtered[0].Rules[0].Title)
}

func TestFilterSectionsMatchesContent(t *testing.T) {
	filtered, matches := filterSections(searchFixture(), "informazioni")
	require.Equal(t, 1, matches)
	require.Len(t, filtered, 1)
	require.Equal(t, "Roleplay", filtered[0].Title)
}

func TestFilterSectionsDropsEmptySections(t *testing.T) {
	filtered, matches := filterSections(searchFixture(), "nessuna corrispondenza")
	require.Zero(t, matches)
	require.Empty(t, filtered)
}

func TestHighlightMatches(t *testing.T) {
	annotated := highlightMatches("Rispetto reciproco e rispetto delle regole", "rispetto")
	require.Equal(t,
		"<mark>Rispetto</mark> reciproco e <mark>rispetto</mark> delle regole",
		annotated)
}

func TestHighlightMatchesBlankTerm(t *testing.T) {
	require.Equal(t, "testo", highlightMatches("testo", "  "))
}

func TestHighlightMatchesNoOccurrence(t *testing.T) {
	require.Equal(t, "testo", highlightMatches("testo", "assente"))
}

func TestHighlightMatchesSkipsShiftedLowercaseOffsets(t *testing.T) {
	// Lowercasing grows 'Ⱥ' (2 bytes to 3) and shrinks 'ſ' (2 bytes to 1),
	// so the totals match while the offsets in between do not. Annotating
	// here would splice markers mid-rune.
	text := "Ⱥ regole ſtoriche, regole nuove"
	require.Len(t, strings.ToLower(text), len(text))
	require.Equal(t, text, highlightMatches(text, "regole"))
}

func TestStripHighlightsInvertsHighlight(t *testing.T) {
	texts := []string{
		"Rispetto reciproco",
		"<p>Tratta tutti i membri con rispetto.</p>",
		"parole senza corrispondenze",
	}
	for _, text := range texts {
		annotated := highlightMatches(text, "rispetto")
		require.Equal(t, text, stripHighlights(annotated))
	}
}
