package picture

// Copy adapts src into dst, which may have a different size.
//
// Without fill, only the overlapping min(src, dst) extent is copied and
// every other dst sample keeps whatever value it held before; callers that
// need defined values there must initialize dst themselves.
//
// With fill, the full source extent is copied (clipped to dst), each copied
// row is extended to dst.Width by repeating its last source column, and the
// rows past src.Height repeat the last filled row.
func Copy(src, dst *Buffer, fill bool) {
	maxX := min(src.Width, dst.Width)
	maxY := min(src.Height, dst.Height)
	if fill {
		maxX = dst.Width
		maxY = dst.Height
	}
	// Columns/rows below these bounds come from src, the rest are replicated.
	srcX := min(src.Width, maxX)
	srcY := min(src.Height, maxY)

	for i := range maxY {
		row := dst.Data[dst.Index(i, 0) : dst.Index(i, 0)+maxX]
		if i >= srcY {
			copy(row, dst.Data[dst.Index(i-1, 0):dst.Index(i-1, 0)+maxX])
			continue
		}
		copy(row[:srcX], src.Data[src.Index(i, 0):src.Index(i, 0)+srcX])
		for j := srcX; j < maxX; j++ {
			row[j] = row[j-1]
		}
	}
}

// Extend returns a new width x height plane holding src edge-extended (or
// cropped) to that size.
func Extend(src *Buffer, width, height int) (*Buffer, error) {
	dst, err := NewBuffer(width, height, false)
	if err != nil {
		return nil, err
	}
	Copy(src, dst, true)
	return dst, nil
}
