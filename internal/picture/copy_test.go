package picture

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-yuv-scaler/internal/testutil"
)

func newTestBuffer(t *testing.T, data []int32, width, height int) *Buffer {
	t.Helper()
	b, err := NewBufferFromSamples(data, width, height, false)
	require.NoError(t, err)
	return b
}

func TestCopyFillReplicatesEdges(t *testing.T) {
	src := newTestBuffer(t, []int32{
		1, 2, 3,
		4, 5, 6,
	}, 3, 2)
	dst := newTestBuffer(t, nil, 5, 4)

	Copy(src, dst, true)

	testutil.AssertPlaneEqual(t, []int32{
		1, 2, 3, 3, 3,
		4, 5, 6, 6, 6,
		4, 5, 6, 6, 6,
		4, 5, 6, 6, 6,
	}, dst.Data, dst.Width)
}

func TestCopyCropLeavesRestUntouched(t *testing.T) {
	src := newTestBuffer(t, []int32{
		1, 2, 3,
		4, 5, 6,
	}, 3, 2)
	dst := newTestBuffer(t, []int32{
		9, 9,
		9, 9,
		9, 9,
	}, 2, 3)

	Copy(src, dst, false)

	testutil.AssertPlaneEqual(t, []int32{
		1, 2,
		4, 5,
		9, 9,
	}, dst.Data, dst.Width)
}

func TestCopyFillIntoSmaller(t *testing.T) {
	src := newTestBuffer(t, []int32{
		1, 2, 3,
		4, 5, 6,
	}, 3, 2)
	dst := newTestBuffer(t, nil, 2, 1)

	Copy(src, dst, true)

	testutil.AssertPlaneEqual(t, []int32{1, 2}, dst.Data, dst.Width)
}

func TestCopySameSize(t *testing.T) {
	data := testutil.RandomSamples(7, 6*5, 255)
	src := newTestBuffer(t, data, 6, 5)
	for _, fill := range []bool{false, true} {
		dst := newTestBuffer(t, nil, 6, 5)
		Copy(src, dst, fill)
		testutil.AssertPlaneEqual(t, data, dst.Data, dst.Width, "fill=%v", fill)
	}
}

func TestExtend(t *testing.T) {
	src := newTestBuffer(t, []int32{7, 8}, 2, 1)
	dst, err := Extend(src, 3, 2)
	require.NoError(t, err)
	testutil.AssertPlaneEqual(t, []int32{
		7, 8, 8,
		7, 8, 8,
	}, dst.Data, dst.Width)

	_, err = Extend(src, 0, 2)
	require.ErrorIs(t, err, ErrInvalidDimensions)
}
