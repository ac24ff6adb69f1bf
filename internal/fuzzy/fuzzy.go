// Package fuzzy ranks candidates against a subsequence query, the way a
// command palette filters its entries.
package fuzzy

import (
	"slices"
	"strings"
	"unicode"
)

// Candidate is a searchable string with attached data.
type Candidate struct {
	Text string
	Data any
}

// Match is a candidate that contains every query rune in order.
type Match struct {
	Candidate

	// Score is higher for better matches.
	Score int

	// Positions are the rune indices of the matched characters.
	Positions []int
}

// Find returns the candidates matching query, best first, ties broken by
// text. Matching ignores case. An empty query matches every candidate with
// a zero score in input order. A limit of zero or less means no limit.
func Find(query string, candidates []Candidate, limit int) []Match {
	query = strings.ToLower(strings.TrimSpace(query))

	var matches []Match
	if query == "" {
		matches = make([]Match, len(candidates))
		for i, c := range candidates {
			matches[i] = Match{Candidate: c}
		}
		return truncate(matches, limit)
	}

	q := []rune(query)
	for _, c := range candidates {
		if positions := locate(q, c.Text); positions != nil {
			matches = append(matches, Match{
				Candidate: c,
				Score:     score(q, []rune(c.Text), positions),
				Positions: positions,
			})
		}
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		return strings.Compare(a.Text, b.Text)
	})
	return truncate(matches, limit)
}

// locate scans text left to right for the query runes and returns their
// positions, or nil when some rune is missing.
func locate(q []rune, text string) []int {
	runes := []rune(strings.ToLower(text))
	positions := make([]int, 0, len(q))
	for i := 0; i < len(runes) && len(positions) < len(q); i++ {
		if runes[i] == q[len(positions)] {
			positions = append(positions, i)
		}
	}
	if len(positions) != len(q) {
		return nil
	}
	return positions
}

const (
	baseScore        = 100
	consecutiveBonus = 20
	boundaryBonus    = 15
	prefixBonus      = 25
	exactPrefixBonus = 50
	gapPenalty       = 2
	shortTextCutoff  = 20
)

func score(q, text []rune, positions []int) int {
	s := baseScore

	for i, p := range positions {
		if i > 0 && p == positions[i-1]+1 {
			s += consecutiveBonus
		}
		if isBoundary(text, p) {
			s += boundaryBonus
		}
	}

	first, last := positions[0], positions[len(positions)-1]
	if first == 0 {
		s += prefixBonus
	}
	s -= (last - first - len(positions) + 1) * gapPenalty
	s -= first

	if len(text) < shortTextCutoff {
		s += shortTextCutoff - len(text)
	}
	if strings.HasPrefix(strings.ToLower(string(text)), string(q)) {
		s += exactPrefixBonus
	}

	return max(s, 1)
}

// isBoundary reports whether text[i] starts a word: it follows a space or
// punctuation, or it is an upper case rune after a lower case one.
func isBoundary(text []rune, i int) bool {
	if i == 0 {
		return true
	}
	prev, cur := text[i-1], text[i]
	if unicode.IsSpace(prev) || unicode.IsPunct(prev) {
		return true
	}
	return unicode.IsLower(prev) && unicode.IsUpper(cur)
}

func truncate(matches []Match, limit int) []Match {
	if limit > 0 && limit < len(matches) {
		return matches[:limit]
	}
	return matches
}
