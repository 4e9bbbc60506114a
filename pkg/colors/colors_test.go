package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyle(t *testing.T) {
	tests := []struct {
		name  string
		color string
		want  string
	}{
		{"hex passthrough uppercased", "#ab12cd", "#AB12CD"},
		{"hex already uppercase", "#FF0000", "#FF0000"},
		{"known name", "red", "#EF4444"},
		{"known name mixed case", "Navy", "#1E3A8A"},
		{"unknown name passthrough", "chartreuse", "chartreuse"},
		{"invalid hex digits still verbatim", "#zzzzzz", "#ZZZZZZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Style(tt.color))
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name  string
		color string
		want  string
	}{
		{"known hex", "#000000", "Black"},
		{"known hex lowercase input", "#ffa500", "Orange"},
		{"unknown hex passthrough", "#123456", "#123456"},
		{"non-hex passthrough", "burgundy", "burgundy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.color))
		})
	}
}

func TestStyleDisplayNameNotInverse(t *testing.T) {
	// Таблицы не обязаны быть взаимно обратными: "red" в стиле — #EF4444,
	// а имя для #EF4444 не определено.
	hex := Style("red")
	assert.Equal(t, "#EF4444", hex)
	assert.Equal(t, "#EF4444", DisplayName(hex))
}
