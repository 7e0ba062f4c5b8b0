package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadString(t *testing.T) {
	var s Sizer

	assert.Equal(t, "ab   ", s.PadString("ab", 5, true))
	assert.Equal(t, "   ab", s.PadString("ab", 5, false))
	assert.Equal(t, "abcdef", s.PadString("abcdef", 5, true), "over-wide strings pass through")
}

func TestPadStringWideRunes(t *testing.T) {
	var s Sizer

	// CJK runes occupy two columns each.
	assert.Equal(t, "三月  ", s.PadString("三月", 6, true))
	assert.Equal(t, 6, s.displayWidth("三月  "))
}

func TestTruncateString(t *testing.T) {
	var s Sizer

	assert.Equal(t, "abc", s.TruncateString("abcdef", 3))
	assert.Equal(t, "三", s.TruncateString("三月", 3), "never splits a wide rune")
}

func TestSelectStyle(t *testing.T) {
	assert.Equal(t, StyleFull, SelectStyle(120, 30))
	assert.Equal(t, StyleCompact, SelectStyle(120, 8))
	assert.Equal(t, StyleCompact, SelectStyle(50, 30))
}
