package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"john@example.com", true},
		{"first.last+tag@shop.co.in", true},
		{"", false},
		{"john", false},
		{"john@", false},
		{" john@example.com", false},
		{"John <john@example.com>", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Email(tt.in), tt.in)
	}
}

func TestMinLen(t *testing.T) {
	assert.True(t, MinLen("Jo", 2))
	assert.False(t, MinLen("J", 2))
	assert.True(t, MinLen("Åa", 2))
}

func TestRequired(t *testing.T) {
	assert.False(t, Required("   "))
	assert.True(t, Required("x"))
}
