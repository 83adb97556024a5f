// Package filter holds the fixed polyphase filter bank used for
// reference-picture rescaling and the ratio classifier that picks a
// kernel family per axis.
//
// The bank is organized as 8 ratio classes, each with 16 sub-pixel phases
// of 12 taps. Coefficients are 7-bit fixed point: every kernel sums to
// [Unity] (128), so one filter pass scales the signal by 2^7.
package filter

import (
	"fmt"

	"github.com/tphakala/simd/f64"
)

// Bank geometry.
const (
	NumClasses = 8
	NumPhases  = 16
	NumTaps    = 12

	// Unity is the DC gain of every kernel.
	Unity = 128

	// UnityBits is log2(Unity).
	UnityBits = 7

	// PhaseBits is the number of fractional position bits that select a phase.
	PhaseBits = 4
	PhaseMask = NumPhases - 1

	// TapOffset is the distance from the first tap to the reference sample.
	// Tap k of an output sample reads source index refPos + k - TapOffset.
	TapOffset = 5
)

// Class selects one ratio band of the bank.
type Class int

// Ratio classes, ordered by increasing downscale ratio (source/target).
const (
	ClassIdentity Class = iota // ratio <= 20/19
	Class5_4                   // 20/19 < ratio <= 5/4
	Class5_3                   // 5/4 < ratio <= 5/3
	Class2                     // 5/3 < ratio <= 2
	Class5_2                   // 2 < ratio <= 5/2
	Class20_7                  // 5/2 < ratio <= 20/7
	Class15_4                  // 20/7 < ratio <= 15/4
	ClassMax                   // ratio > 15/4
)

var classNames = [NumClasses]string{
	"r<=20/19",
	"20/19<r<=5/4",
	"5/4<r<=5/3",
	"5/3<r<=2",
	"2<r<=5/2",
	"5/2<r<=20/7",
	"20/7<r<=15/4",
	"r>15/4",
}

// String returns the ratio band covered by the class.
func (c Class) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return classNames[c]
}

// Valid reports whether c indexes the bank.
func (c Class) Valid() bool {
	return c >= ClassIdentity && c <= ClassMax
}

// kernels64 mirrors coefficients as float64 for the SIMD dot product.
// All values are small integers, so the conversion is exact.
var kernels64 [NumClasses][NumPhases][NumTaps]float64

func init() {
	for c := range coefficients {
		for p := range coefficients[c] {
			for k, v := range coefficients[c][p] {
				kernels64[c][p][k] = float64(v)
			}
		}
	}
}

// Kernel returns the 12 taps for class c and phase.
// The returned array is shared and must not be modified.
func Kernel(c Class, phase int) *[NumTaps]int32 {
	return &coefficients[c][phase&PhaseMask]
}

// Kernel64 returns the float64 taps for class c and phase as a slice.
// The returned slice is shared and must not be modified.
func Kernel64(c Class, phase int) []float64 {
	return kernels64[c][phase&PhaseMask][:]
}

// DCGain returns the sum of the taps of one kernel.
func DCGain(c Class, phase int) float64 {
	return f64.Sum(Kernel64(c, phase))
}
