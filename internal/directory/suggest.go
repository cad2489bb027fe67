package directory

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest finds the record name closest to term by edit distance. It is used
// to hint at a likely typo when a search matches nothing.
func Suggest(records []Person, term string, maxDistance int) (string, bool) {
	term = NormalizeSearch(term)
	if term == "" || maxDistance <= 0 {
		return "", false
	}
	best, bestDist := "", maxDistance+1
	for _, r := range records {
		name := strings.ToLower(r.Name)
		d := levenshtein.ComputeDistance(term, name)
		// compare against each word too, so "bbo" finds "Bob Smith"
		for _, word := range strings.Fields(name) {
			d = min(d, levenshtein.ComputeDistance(term, word))
		}
		if d < bestDist {
			best, bestDist = r.Name, d
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}
