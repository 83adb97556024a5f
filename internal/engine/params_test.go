package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-yuv-scaler/internal/filter"
	"github.com/tphakala/go-yuv-scaler/internal/picture"
)

func TestNewParams(t *testing.T) {
	tests := []struct {
		name                   string
		srcW, srcH, dstW, dstH int
		want                   Params
	}{
		{
			name: "halve_8x4",
			srcW: 8, srcH: 4, dstW: 4, dstH: 2,
			want: Params{
				SrcWidth: 8, SrcHeight: 4, TrgtWidth: 4, TrgtHeight: 2,
				RndTrgtWidth: 4, RndTrgtHeight: 2,
				ScaleX: 512, ScaleY: 512, AddX: 8, AddY: 8, ShiftX: 8, ShiftY: 8,
			},
		},
		{
			name: "odd_target_600_to_301",
			srcW: 600, srcH: 600, dstW: 301, dstH: 300,
			want: Params{
				SrcWidth: 600, SrcHeight: 600, TrgtWidth: 301, TrgtHeight: 300,
				RndTrgtWidth: 302, RndTrgtHeight: 300,
				ScaleX: 509, ScaleY: 512, AddX: 8, AddY: 8, ShiftX: 8, ShiftY: 8,
			},
		},
		{
			name: "identity",
			srcW: 16, srcH: 10, dstW: 16, dstH: 10,
			want: Params{
				SrcWidth: 16, SrcHeight: 10, TrgtWidth: 16, TrgtHeight: 10,
				RndTrgtWidth: 16, RndTrgtHeight: 10,
				ScaleX: 256, ScaleY: 256, AddX: 8, AddY: 8, ShiftX: 8, ShiftY: 8,
			},
		},
		{
			name: "upscale_1x1",
			srcW: 1, srcH: 1, dstW: 3, dstH: 3,
			want: Params{
				SrcWidth: 1, SrcHeight: 1, TrgtWidth: 3, TrgtHeight: 3,
				RndTrgtWidth: 4, RndTrgtHeight: 4,
				ScaleX: 64, ScaleY: 64, AddX: 8, AddY: 8, ShiftX: 8, ShiftY: 8,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewParams(tt.srcW, tt.srcH, tt.dstW, tt.dstH)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
			assert.Zero(t, p.RndTrgtWidth%2, "rounded width must be even")
			assert.Zero(t, p.RndTrgtHeight%2, "rounded height must be even")
		})
	}
}

func TestNewParamsDeterministic(t *testing.T) {
	a, err := NewParams(1920, 1080, 1280, 720)
	require.NoError(t, err)
	for range 10 {
		b, err := NewParams(1920, 1080, 1280, 720)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestNewParamsInvalid(t *testing.T) {
	for _, dims := range [][4]int{
		{0, 4, 4, 2},
		{8, 0, 4, 2},
		{8, 4, 0, 2},
		{8, 4, 4, -1},
	} {
		_, err := NewParams(dims[0], dims[1], dims[2], dims[3])
		assert.ErrorIs(t, err, picture.ErrInvalidDimensions, "dims %v", dims)
	}
}

func TestParamsWithCrop(t *testing.T) {
	p, err := NewParams(20, 20, 8, 8)
	require.NoError(t, err)

	hor, ver := p.Classes()
	assert.Equal(t, filter.Class5_2, hor) // 20/8 = 5/2 exactly
	assert.Equal(t, filter.Class5_2, ver)

	cropped, err := p.WithCrop(2, 2, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, 16, cropped.CropWidth())
	assert.Equal(t, 16, cropped.CropHeight())
	hor, ver = cropped.Classes()
	assert.Equal(t, filter.Class2, hor)
	assert.Equal(t, filter.Class2, ver)

	// The original value is untouched.
	assert.Zero(t, p.LeftOffset)

	_, err = p.WithCrop(-1, 0, 0, 0)
	assert.ErrorIs(t, err, picture.ErrInvalidDimensions)
	_, err = p.WithCrop(10, 10, 0, 0)
	assert.ErrorIs(t, err, picture.ErrInvalidDimensions)
}

func TestParamsClassesIndependentAxes(t *testing.T) {
	p, err := NewParams(64, 8, 16, 8)
	require.NoError(t, err)
	hor, ver := p.Classes()
	assert.Equal(t, filter.ClassMax, hor)
	assert.Equal(t, filter.ClassIdentity, ver)
}

func TestChromaParams(t *testing.T) {
	p, err := NewParams(600, 600, 301, 300)
	require.NoError(t, err)
	p, err = p.WithCrop(0, 4, 0, 2)
	require.NoError(t, err)

	c := p.ChromaParams()
	assert.Equal(t, 300, c.SrcWidth)
	assert.Equal(t, 300, c.SrcHeight)
	assert.Equal(t, 151, c.RndTrgtWidth)
	assert.Equal(t, 150, c.RndTrgtHeight)
	assert.Equal(t, 509, c.ScaleX)
	assert.Equal(t, 512, c.ScaleY)
	assert.Equal(t, 2, c.RightOffset)
	assert.Equal(t, 1, c.BottomOffset)

	small, err := NewParams(8, 4, 4, 2)
	require.NoError(t, err)
	c = small.ChromaParams()
	assert.Equal(t, 4, c.SrcWidth)
	assert.Equal(t, 2, c.SrcHeight)
	assert.Equal(t, 2, c.RndTrgtWidth)
	assert.Equal(t, 1, c.RndTrgtHeight)
}

func TestParamsIdentity(t *testing.T) {
	p, err := NewParams(8, 4, 8, 4)
	require.NoError(t, err)
	assert.True(t, p.Identity())

	p, err = NewParams(8, 4, 7, 4)
	require.NoError(t, err)
	assert.True(t, p.Identity(), "7 rounds up to 8")

	p, err = NewParams(8, 4, 4, 2)
	require.NoError(t, err)
	assert.False(t, p.Identity())
	assert.Contains(t, p.String(), "8x4->4x2")
}

func TestRefPosition(t *testing.T) {
	// Identity steps land on whole samples with phase 0.
	for j := range 32 {
		refPos, phase := RefPosition(j, 1<<ScaleShift, 1<<(ScaleShift-roundingAddShift), ScaleShift)
		assert.Equal(t, j, refPos)
		assert.Zero(t, phase)
	}

	// 8 -> 6: step 341/256 of a sample.
	p, err := NewParams(8, 8, 6, 6)
	require.NoError(t, err)
	require.Equal(t, 341, p.ScaleX)
	for _, tc := range []struct{ j, refPos, phase int }{
		{0, 0, 0},
		{1, 1, 5},
		{2, 2, 11},
		{3, 4, 0},
		{4, 5, 5},
	} {
		refPos, phase := RefPosition(tc.j, p.ScaleX, p.AddX, p.ShiftX)
		assert.Equal(t, tc.refPos, refPos, "output %d", tc.j)
		assert.Equal(t, tc.phase, phase, "output %d", tc.j)
	}
}
