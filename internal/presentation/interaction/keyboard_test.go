package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected *KeyEvent
	}{
		{name: "plain character", input: []byte{'q'}, expected: &KeyEvent{Key: 'q', Type: KeyChar}},
		{name: "ctrl-c", input: []byte{3}, expected: &KeyEvent{Key: 3, Type: KeyChar}},
		{name: "bare escape", input: []byte{27}, expected: &KeyEvent{Key: 27, Type: KeyEscape}},
		{name: "arrow up", input: []byte{27, '[', 'A'}, expected: &KeyEvent{Type: KeyArrowUp}},
		{name: "arrow down", input: []byte{27, '[', 'B'}, expected: &KeyEvent{Type: KeyArrowDown}},
		{name: "arrow right", input: []byte{27, '[', 'C'}, expected: &KeyEvent{Type: KeyArrowRight}},
		{name: "arrow left", input: []byte{27, '[', 'D'}, expected: &KeyEvent{Type: KeyArrowLeft}},
		{name: "unknown escape sequence", input: []byte{27, '[', 'Z'}, expected: nil},
		{name: "empty", input: nil, expected: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := ParseInput(tt.input)
			if tt.expected == nil {
				assert.Nil(t, event)
				return
			}
			require.NotNil(t, event)
			assert.Equal(t, *tt.expected, *event)
		})
	}
}
