package analyzer

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pats(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

func TestMatchConfidence(t *testing.T) {
	t.Run("no match scores zero", func(t *testing.T) {
		assert.Zero(t, MatchConfidence("안녕하세요", pats("뭐예요")))
	})

	t.Run("empty message scores zero", func(t *testing.T) {
		assert.Zero(t, MatchConfidence("", pats("뭐예요")))
	})

	t.Run("full span match earns the bonus", func(t *testing.T) {
		full := MatchConfidence("뭐예요", pats("뭐예요"))
		partial := MatchConfidence("이게 뭐예요", pats("뭐예요"))
		assert.Greater(t, full, partial)
		// base 0.3 + length 0.4 + position 0.2 + span bonus 0.1
		assert.InDelta(t, 1.0, full, 1e-9)
	})

	t.Run("earlier matches score higher than later ones", func(t *testing.T) {
		early := MatchConfidence("뭐예요 이게 궁금해요", pats("뭐예요"))
		late := MatchConfidence("이게 궁금해요 뭐예요", pats("뭐예요"))
		assert.Greater(t, early, late)
	})

	t.Run("each extra matching pattern adds a tenth", func(t *testing.T) {
		one := MatchConfidence("이게 뭐예요", pats("뭐예요"))
		two := MatchConfidence("이게 뭐예요", pats("뭐예요", "예요"))
		assert.InDelta(t, 0.1, two-one, 1e-9)
	})

	t.Run("caps at one", func(t *testing.T) {
		conf := MatchConfidence("뭐예요", pats("뭐예요", "뭐", "예요", "뭐예"))
		assert.LessOrEqual(t, conf, 1.0)
	})
}
