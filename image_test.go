package scaler

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleYCbCr(t *testing.T) {
	src := image.NewYCbCr(image.Rect(0, 0, 8, 4), image.YCbCrSubsampleRatio420)
	copy(src.Y, sampleY)
	copy(src.Cb, sampleU)
	copy(src.Cr, sampleV)

	out, err := ScaleYCbCr(src, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 2), out.Rect)
	assert.Equal(t, image.YCbCrSubsampleRatio420, out.SubsampleRatio)
	assert.Equal(t, []byte{82, 147, 108, 80, 61, 102, 54, 20}, out.Y)
	assert.Equal(t, []byte{141, 23}, out.Cb)
	assert.Equal(t, []byte{59, 44}, out.Cr)

	_, err = ScaleYCbCr(image.NewYCbCr(image.Rect(0, 0, 4, 4), image.YCbCrSubsampleRatio422), 2, 2)
	require.Error(t, err)
}

func TestFromYCbCr(t *testing.T) {
	src := image.NewYCbCr(image.Rect(0, 0, 8, 4), image.YCbCrSubsampleRatio420)
	copy(src.Y, sampleY)

	img, err := FromYCbCr(src)
	require.NoError(t, err)
	assert.Equal(t, sampleY, img.Luma.Bytes())
	assert.Equal(t, 4, img.ChromaU.Width)
	assert.Equal(t, 2, img.ChromaU.Height)
}

func TestPSNR(t *testing.T) {
	a := newSample(t)
	b := newSample(t)
	b.Luma.Data[0] += 16 // single error of 16 over 32 samples: MSE 8

	psnr, err := PSNR(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 10*math.Log10(255*255/8.0), psnr[0], 1e-9)
	assert.True(t, math.IsInf(psnr[1], 1))
	assert.True(t, math.IsInf(psnr[2], 1))

	psnr10, err := PSNRBitDepth(a, b, 10)
	require.NoError(t, err)
	assert.InDelta(t, 10*math.Log10(1023*1023/8.0), psnr10[0], 1e-9)

	_, err = PSNRBitDepth(a, b, 0)
	require.ErrorIs(t, err, ErrInvalidConfig)

	params, err := NewScalingParameters(8, 4, 4, 2)
	require.NoError(t, err)
	small, err := Scale(a, params, true)
	require.NoError(t, err)
	_, err = PSNR(a, small)
	require.ErrorIs(t, err, ErrPlaneMismatch)
	_, err = PSNR(nil, a)
	require.ErrorIs(t, err, ErrPlaneMismatch)
}
