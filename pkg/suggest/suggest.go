// Package suggest finds likely intended names for a mistyped one.
package suggest

import (
	"cmp"
	"flag"
	"slices"
	"strings"
)

// threshold is the minimum similarity score required for a string to be considered similar.
const threshold = 0.5

type match struct {
	name  string
	score float64
}

// FindSimilar returns up to maxResults candidates similar to target, most similar first. Ties are
// broken alphabetically.
func FindSimilar(target string, candidates []string, maxResults int) []string {
	if target == "" || maxResults <= 0 {
		return []string{}
	}

	matches := make([]match, 0, len(candidates))
	for _, name := range candidates {
		if score := calculateSimilarity(target, name); score > threshold {
			matches = append(matches, match{name: name, score: score})
		}
	}
	slices.SortFunc(matches, func(a, b match) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})

	result := make([]string, 0, min(maxResults, len(matches)))
	for _, m := range matches[:min(maxResults, len(matches))] {
		result = append(result, m.name)
	}
	return result
}

// Flags returns flags defined in fset whose names are similar to name. Leading dashes on name are
// ignored and the results are rendered with a single dash, e.g. "-file".
func Flags(name string, fset *flag.FlagSet, maxResults int) []string {
	if fset == nil {
		return []string{}
	}
	var names []string
	fset.VisitAll(func(f *flag.Flag) {
		names = append(names, f.Name)
	})
	similar := FindSimilar(strings.TrimLeft(name, "-"), names, maxResults)
	for i, s := range similar {
		similar[i] = "-" + s
	}
	return similar
}

func calculateSimilarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		return 1.0
	}
	if strings.HasPrefix(b, a) {
		return 0.9
	}
	distance := levenshteinDistance(a, b)
	return 1.0 - float64(distance)/float64(max(len(a), len(b)))
}

// levenshteinDistance computes the edit distance keeping only two rows of the matrix.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
