package services

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ersonp/nerbench/internal/domain/entities"
)

// Snippet length bounds, in characters.
const (
	MinSnippetLength    = 300
	MaxSnippetLength    = 1200
	TargetSnippetLength = 800
)

var (
	// reCapitalizedRun matches runs of capitalized words, a rough proxy for
	// named entities in English prose.
	reCapitalizedRun = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*`)
	// reHonorific matches title-plus-name patterns.
	reHonorific = regexp.MustCompile(`\b(Mr\.|Mrs\.|Dr\.|Sir|Lady|Chief|Father|Mgr|Rev\.)\s+[A-Z]`)
	// reSentenceBreak approximates sentence boundaries.
	reSentenceBreak = regexp.MustCompile(`[.!?]\s+[A-Z]`)
)

// Keyword lists used by the density heuristic. The French variants matter for
// the bilingual archival corpora this tool was built around.
var (
	geoTerms = []string{
		"river", "lake", "fort", "mountain", "prairie", "settlement",
		"territory", "district", "creek", "hill", "bay", "island",
		"rivière", "lac", "montagne", "territoire",
	}
	orgTerms = []string{
		"Company", "Association", "Department", "Commission", "Police",
		"Compagnie", "Société",
	}
)

// ExtractedSnippet is a selected passage with its density score.
type ExtractedSnippet struct {
	entities.Snippet
	DensityScore float64 `json:"entity_density_score"`
}

// SnippetService selects annotation-worthy passages from document text.
// Selection favors passages that look entity-rich over uniform coverage.
type SnippetService struct{}

// NewSnippetService creates a snippet extraction service.
func NewSnippetService() *SnippetService {
	return &SnippetService{}
}

// EstimateEntityDensity scores how entity-rich a passage looks, 0 to 1.
// Purely lexical: capitalized word runs, geographic and organizational
// keywords, and honorific patterns each contribute a capped share.
func (s *SnippetService) EstimateEntityDensity(text string) float64 {
	var score float64
	lower := strings.ToLower(text)

	capRuns := len(reCapitalizedRun.FindAllString(text, -1))
	score += minFloat(float64(capRuns)/50, 0.3)

	geoCount := 0
	for _, term := range geoTerms {
		geoCount += strings.Count(lower, term)
	}
	score += minFloat(float64(geoCount)/10, 0.3)

	titles := len(reHonorific.FindAllString(text, -1))
	score += minFloat(float64(titles)/10, 0.2)

	orgCount := 0
	for _, term := range orgTerms {
		orgCount += strings.Count(text, term)
	}
	score += minFloat(float64(orgCount)/5, 0.2)

	return minFloat(score, 1.0)
}

// SnippetBudget returns how many snippets to extract for a document of the
// given word count, along with the name of the sizing strategy.
func (s *SnippetService) SnippetBudget(wordCount int) (int, string) {
	switch {
	case wordCount < 500:
		return 1, "full_text"
	case wordCount < 2000:
		return clamp(wordCount/500, 1, 3), "small_doc"
	case wordCount < 10000:
		return clamp(wordCount/1000, 5, 10), "medium_doc"
	default:
		return clamp(wordCount/2000, 10, 15), "large_doc"
	}
}

// Extract selects up to numSnippets non-overlapping passages from text,
// preferring higher estimated entity density. Snippets are numbered 1..n in
// document order and carry offsets into the full text.
func (s *SnippetService) Extract(text string, numSnippets int) []ExtractedSnippet {
	if len(text) < MinSnippetLength || len(text) < TargetSnippetLength*3/2 {
		return []ExtractedSnippet{{
			Snippet: entities.Snippet{
				ID:        1,
				Text:      strings.TrimSpace(text),
				CharStart: 0,
				CharEnd:   len(text),
			},
			DensityScore: s.EstimateEntityDensity(text),
		}}
	}

	candidates := s.buildCandidates(text)
	if len(candidates) == 0 {
		candidates = s.chunkFallback(text)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].DensityScore > candidates[j].DensityScore
	})

	var selected []ExtractedSnippet
	for _, c := range candidates {
		if overlapsAny(c, selected) {
			continue
		}
		selected = append(selected, c)
		if len(selected) >= numSnippets {
			break
		}
	}

	sort.Slice(selected, func(i, j int) bool {
		return selected[i].CharStart < selected[j].CharStart
	})
	for i := range selected {
		selected[i].ID = i + 1
	}
	return selected
}

// buildCandidates grows a candidate from each sentence boundary until it
// reaches the target length.
func (s *SnippetService) buildCandidates(text string) []ExtractedSnippet {
	boundaries := sentenceBoundaries(text)

	var candidates []ExtractedSnippet
	for i, start := range boundaries[:len(boundaries)-1] {
		end := start
		for _, next := range boundaries[i+1:] {
			if next-start >= MinSnippetLength {
				end = next
				if next-start >= TargetSnippetLength {
					break
				}
			}
		}
		if end-start < MinSnippetLength {
			continue
		}

		snippetText := strings.TrimSpace(text[start:end])
		if len(snippetText) < MinSnippetLength {
			continue
		}

		candidates = append(candidates, ExtractedSnippet{
			Snippet: entities.Snippet{
				Text:      snippetText,
				CharStart: start,
				CharEnd:   end,
			},
			DensityScore: s.EstimateEntityDensity(snippetText),
		})
	}
	return candidates
}

// chunkFallback splits the text into half-overlapping fixed windows when no
// sentence-based candidate qualified (e.g. OCR output without punctuation).
func (s *SnippetService) chunkFallback(text string) []ExtractedSnippet {
	var candidates []ExtractedSnippet
	for start := 0; start < len(text); start += TargetSnippetLength / 2 {
		end := start + TargetSnippetLength
		if end > len(text) {
			end = len(text)
		}
		snippetText := strings.TrimSpace(text[start:end])
		if len(snippetText) < MinSnippetLength {
			continue
		}
		candidates = append(candidates, ExtractedSnippet{
			Snippet: entities.Snippet{
				Text:      snippetText,
				CharStart: start,
				CharEnd:   end,
			},
			DensityScore: s.EstimateEntityDensity(snippetText),
		})
	}
	return candidates
}

// sentenceBoundaries returns approximate sentence start offsets, always
// including 0 and len(text).
func sentenceBoundaries(text string) []int {
	boundaries := []int{0}
	for _, loc := range reSentenceBreak.FindAllStringIndex(text, -1) {
		boundaries = append(boundaries, loc[0]+2)
	}
	return append(boundaries, len(text))
}

func overlapsAny(c ExtractedSnippet, selected []ExtractedSnippet) bool {
	for _, s := range selected {
		if !(c.CharEnd <= s.CharStart || c.CharStart >= s.CharEnd) {
			return true
		}
	}
	return false
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
