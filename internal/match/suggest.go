package match

// SuggestThreshold is the minimum Similarity for a candidate to be offered.
const SuggestThreshold = 0.6

// Suggest returns the candidate closest to word, or "" when none is similar
// enough. Ties keep the earliest candidate so hints are stable.
func Suggest(word string, candidates []string) string {
	best := ""
	bestScore := 0.0

	for _, c := range candidates {
		if c == word {
			return c
		}

		score := Similarity(word, c)
		if score >= SuggestThreshold && score > bestScore {
			best, bestScore = c, score
		}
	}

	return best
}
