package queries

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name       string
		number     int
		size       int
		wantLimit  int32
		wantOffset int32
	}{
		{name: "defaults", number: 0, size: 0, wantLimit: 20, wantOffset: 0},
		{name: "second page", number: 2, size: 10, wantLimit: 10, wantOffset: 20},
		{name: "negative number clamps to zero", number: -3, size: 10, wantLimit: 10, wantOffset: 0},
		{name: "size capped at max", number: 1, size: 500, wantLimit: 100, wantOffset: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage(tt.number, tt.size)
			assert.Equal(t, tt.wantLimit, p.Limit())
			assert.Equal(t, tt.wantOffset, p.Offset())
		})
	}
}
