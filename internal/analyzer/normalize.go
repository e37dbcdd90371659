package analyzer

import "strings"

// Normalize prepares a raw utterance for pattern matching: lowercase, trim,
// collapse runs of three or more identical runes to a single rune (defeats
// emphatic repetition like "모르겠어어어"), and collapse whitespace runs.
func Normalize(message string) string {
	message = strings.ToLower(strings.TrimSpace(message))

	var b strings.Builder
	b.Grow(len(message))

	var prev rune
	run := 0
	for _, r := range message {
		if r == prev {
			run++
		} else {
			// A run of exactly two stays as typed; three or more
			// collapse to one, so emit the held-back second rune
			// only when the run ended at two.
			if run == 1 {
				b.WriteRune(prev)
			}
			prev = r
			run = 0
			b.WriteRune(r)
		}
	}
	if run == 1 {
		b.WriteRune(prev)
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
