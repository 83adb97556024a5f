package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClip(t *testing.T) {
	tests := []struct {
		name        string
		val, lo, hi int
		want        int
	}{
		{"below", -3, 0, 10, 0},
		{"at_low", 0, 0, 10, 0},
		{"inside", 5, 0, 10, 5},
		{"at_high", 10, 0, 10, 10},
		{"above", 42, 0, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clip(tt.val, tt.lo, tt.hi))
			assert.Equal(t, int32(tt.want), Clip32(int32(tt.val), int32(tt.lo), int32(tt.hi)))
		})
	}
}

func TestRoundUpEven(t *testing.T) {
	for n, want := range map[int]int{1: 2, 2: 2, 3: 4, 300: 300, 301: 302} {
		assert.Equal(t, want, RoundUpEven(n), "RoundUpEven(%d)", n)
	}
}

func TestHalfCeil(t *testing.T) {
	for n, want := range map[int]int{1: 1, 2: 1, 3: 2, 8: 4, 301: 151} {
		assert.Equal(t, want, HalfCeil(n), "HalfCeil(%d)", n)
	}
}

func TestMaxSample(t *testing.T) {
	assert.Equal(t, int32(1), MaxSample(MinBitDepth))
	assert.Equal(t, int32(255), MaxSample(DefaultBitDepth))
	assert.Equal(t, int32(1023), MaxSample(10))
	assert.Equal(t, int32(65535), MaxSample(MaxBitDepth))
}
