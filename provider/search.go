package provider

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/kodydeda4/recipeflow/core"
)

// searchThreshold is the minimum similarity ratio for a fuzzy match.
const searchThreshold = 0.4

// Search returns up to limit recipes whose names fuzzily match query,
// ranked best-first by similarity. An exact substring match always ranks
// above pure edit-distance matches. A limit of zero or below means no
// limit. Search reads a point-in-time snapshot and never blocks mutations
// for longer than the copy.
func (p *InMemoryProvider) Search(query string, limit int) []core.Recipe {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	recipes := p.Snapshot().Recipes()

	type scored struct {
		recipe core.Recipe
		score  float64
	}
	matches := make([]scored, 0, len(recipes))
	upperQuery := strings.ToUpper(query)
	for _, r := range recipes {
		s := similarity(upperQuery, strings.ToUpper(r.Name))
		if s < searchThreshold {
			continue
		}
		matches = append(matches, scored{recipe: r, score: s})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]core.Recipe, len(matches))
	for i, m := range matches {
		out[i] = m.recipe
	}
	return out
}

// similarity maps a pair of uppercased strings onto [0, 1]: 1 for an exact
// match, 1 for containment, otherwise one minus the normalized edit
// distance.
func similarity(query, name string) float64 {
	if name == "" {
		return 0
	}
	if strings.Contains(name, query) {
		return 1
	}
	dist := levenshtein.ComputeDistance(query, name)
	maxlen := len(query)
	if len(name) > maxlen {
		maxlen = len(name)
	}
	return 1 - float64(dist)/float64(maxlen)
}
