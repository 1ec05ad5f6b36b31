package search

import "strings"

// matchesLocation reports whether a candidate's recorded location
// satisfies the query location. The match is a case-insensitive
// substring check with the candidate side as the haystack: a candidate
// in "Greater Bangalore Area" matches a query for "bangalore", but a
// candidate in "Bangalore" does not match a query for
// "Bangalore, Karnataka".
func matchesLocation(candidateLocation, queryLocation string) bool {
	return strings.Contains(
		strings.ToLower(candidateLocation),
		strings.ToLower(queryLocation),
	)
}
