package service

import (
	"strings"
	"unicode/utf8"

	"github.com/maracujarp/rulebook-api/internal/models"
)

// Highlight markers inserted around matched spans. Stripping them from an
// annotated string yields exactly the original string.
const (
	markOpen  = "<mark>"
	markClose = "</mark>"
)

// matchesQuery reports whether the query occurs case-insensitively in the
// rule's title or content. Content is matched as raw text, markup included;
// matches inside tags are an accepted quirk of the original behaviour.
func matchesQuery(rule models.Rule, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(rule.Title), loweredQuery) ||
		strings.Contains(strings.ToLower(rule.Content), loweredQuery)
}

// filterSections returns the sections whose rules match the query, each
// narrowed to its matching rules, plus the total match count. A blank query
// is the identity transform.
func filterSections(sections []models.Section, query string) ([]models.Section, int) {
	query = strings.TrimSpace(query)
	if query == "" {
		total := 0
		for _, section := range sections {
			total += len(section.Rules)
		}
		return sections, total
	}

	lowered := strings.ToLower(query)
	filtered := make([]models.Section, 0, len(sections))
	matches := 0
	for _, section := range sections {
		kept := make([]models.Rule, 0, len(section.Rules))
		for _, rule := range section.Rules {
			if matchesQuery(rule, lowered) {
				kept = append(kept, rule)
			}
		}
		if len(kept) == 0 {
			continue
		}
		matches += len(kept)
		section.Rules = kept
		filtered = append(filtered, section)
	}
	return filtered, matches
}

// highlightMatches wraps every non-overlapping, case-insensitive occurrence
// of term in text with highlight markers. A blank term returns text
// unchanged.
func highlightMatches(text, term string) string {
	term = strings.TrimSpace(term)
	if term == "" {
		return text
	}

	loweredText := strings.ToLower(text)
	loweredTerm := strings.ToLower(term)
	if !sameByteOffsets(text, loweredText) {
		// Lowercasing shifted byte offsets (rare outside Latin text);
		// annotating would corrupt the string, so return it untouched.
		return text
	}

	var annotated strings.Builder
	start := 0
	for {
		i := strings.Index(loweredText[start:], loweredTerm)
		if i < 0 {
			break
		}
		i += start
		end := i + len(loweredTerm)
		annotated.WriteString(text[start:i])
		annotated.WriteString(markOpen)
		annotated.WriteString(text[i:end])
		annotated.WriteString(markClose)
		start = end
	}
	if start == 0 {
		return text
	}
	annotated.WriteString(text[start:])
	return annotated.String()
}

// sameByteOffsets reports whether original and lowered, which hold the same
// number of runes (lowercasing maps runes one to one), keep every rune at the
// same byte offset. Equal total lengths are not enough: one rune can grow
// while another shrinks, leaving the offsets in between misaligned.
func sameByteOffsets(original, lowered string) bool {
	for len(original) > 0 && len(lowered) > 0 {
		_, originalSize := utf8.DecodeRuneInString(original)
		_, loweredSize := utf8.DecodeRuneInString(lowered)
		if originalSize != loweredSize {
			return false
		}
		original = original[originalSize:]
		lowered = lowered[loweredSize:]
	}
	return len(original) == len(lowered)
}

// stripHighlights removes every highlight marker, restoring the original
// string.
func stripHighlights(text string) string {
	text = strings.ReplaceAll(text, markOpen, "")
	return strings.ReplaceAll(text, markClose, "")
}
