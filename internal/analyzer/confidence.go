package analyzer

import (
	"regexp"
	"unicode/utf8"
)

// MatchConfidence scores how strongly a normalized message matches a
// pattern list, in [0,1].
//
// Per matching pattern: base 0.3, plus up to 0.4 scaled by the fraction of
// the message the match covers, plus up to 0.2 for matches near the start,
// plus a flat 0.1 when the match spans the whole message. The pattern
// list's score is the best per-match score, with 0.1 added for every
// matching pattern beyond the first, capped at 1.0.
//
// Lengths and positions are measured in runes so that multi-byte scripts
// score the same as single-byte ones.
func MatchConfidence(message string, patterns []*regexp.Regexp) float64 {
	msgLen := utf8.RuneCountInString(message)
	if msgLen == 0 {
		return 0
	}

	var best float64
	matches := 0

	for _, re := range patterns {
		loc := re.FindStringIndex(message)
		if loc == nil {
			continue
		}
		matches++

		matchLen := utf8.RuneCountInString(message[loc[0]:loc[1]])
		matchStart := utf8.RuneCountInString(message[:loc[0]])

		score := 0.3

		lengthBonus := float64(matchLen) / float64(msgLen) * 0.4
		if lengthBonus > 0.4 {
			lengthBonus = 0.4
		}
		score += lengthBonus

		score += float64(msgLen-matchStart) / float64(msgLen) * 0.2

		if matchLen == msgLen {
			score += 0.1
		}

		if score > best {
			best = score
		}
	}

	if matches > 1 {
		best += float64(matches-1) * 0.1
	}
	if best > 1.0 {
		best = 1.0
	}
	return best
}
