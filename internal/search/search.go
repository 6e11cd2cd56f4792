package search

import (
	"github.com/sahilm/fuzzy"

	"github.com/simeonrst/apphub/internal/model"
)

// Result represents a fuzzy search match.
type Result struct {
	App            *model.App
	MatchedIndexes []int
	Score          int
}

// appNames implements fuzzy.Source for an app slice.
type appNames []*model.App

func (an appNames) String(i int) string {
	return an[i].Name
}

func (an appNames) Len() int {
	return len(an)
}

// FuzzySearchApps searches all apps by name using fuzzy matching.
// Returns results sorted by match score (best first).
func FuzzySearchApps(apps []model.App, query string) []Result {
	if query == "" {
		return nil
	}

	source := make(appNames, len(apps))
	for i := range apps {
		source[i] = &apps[i]
	}

	matches := fuzzy.FindFrom(query, source)

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			App:            source[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
