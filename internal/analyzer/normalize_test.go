package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases and trims", "  HELLO World  ", "hello world"},
		{"collapses inner whitespace", "이게   뭐예요\t?", "이게 뭐예요 ?"},
		{"collapses runs of three or more", "너무우우우 어려워요", "너무우 어려워요"},
		{"keeps doubled runes", "네네 맞아요", "네네 맞아요"},
		{"long run of latin letters", "soooooo cool", "so cool"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"이게 뭐예요?",
		"모르겠어요오오오   너무 막막해요",
		"WHY does   this happennnnn",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize should be idempotent for %q", in)
	}
}
