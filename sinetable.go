package sinetable

import (
	"errors"
	"fmt"
	"math"
)

// Default table parameters.
const (
	DefaultSlices         = 8
	DefaultPointsPerSlice = 256
	DefaultScale          = 0x7FFE
	DefaultPi             = 3.14159265358
)

// Default output file names.
const (
	IntegerFileName  = "sine_integer.hex"
	FractionFileName = "sine_fract.hex"
)

var (
	// ErrBadRecord is returned by the reader when a record cannot be parsed.
	ErrBadRecord = errors.New("sinetable: bad record")
	// ErrTooManyIndices is returned when Slices*PointsPerSlice exceeds
	// the addressable range.
	ErrTooManyIndices = errors.New("sinetable: too many indices")
	// ErrBadAddress is returned by the reader when a record address does not
	// match the index of its first value.
	ErrBadAddress = errors.New("sinetable: bad record address")
)

var (
	errClosed         = errors.New("sinetable: is closed")
)

// --------------------------------------------------------------------

// Compression is the compression codec
type Compression byte

func (c Compression) isValid() bool {
	return c < unknownCompression
}

// Supported compression codecs
const (
	NoCompression Compression = iota
	SnappyCompression
	unknownCompression
)

// --------------------------------------------------------------------

// Params define the table parameters.
type Params struct {
	// Slices is the number of equal subdivisions of the quadrant.
	// Default: 8.
	Slices int

	// PointsPerSlice is the number of points in each slice.
	// Default: 256.
	PointsPerSlice int

	// Scale is the full-scale quantization constant.
	// Default: 0x7FFE.
	Scale int64

	// Pi is the approximation of π used to compute the samples.
	// Default: 3.14159265358.
	Pi float64
}

func (p *Params) norm() *Params {
	var pp Params
	if p != nil {
		pp = *p
	}

	if pp.Slices < 1 {
		pp.Slices = DefaultSlices
	}
	if pp.PointsPerSlice < 1 {
		pp.PointsPerSlice = DefaultPointsPerSlice
	}
	if pp.Scale < 1 {
		pp.Scale = DefaultScale
	}
	if pp.Pi <= 0 {
		pp.Pi = DefaultPi
	}

	return &pp
}

// Validate checks that the number of indices is addressable.
func (p *Params) Validate() error {
	_, err := p.indices()
	return err
}

// Indices returns the number of table indices or 0 if the parameters
// exceed the addressable range.
func (p *Params) Indices() int {
	n, _ := p.indices()
	return n
}

func (p *Params) indices() (int, error) {
	pp := p.norm()

	limit := uint64(maxAddress) + 1
	if uint64(math.MaxInt) < limit {
		limit = uint64(math.MaxInt)
	}
	if uint64(pp.Slices) > limit/uint64(pp.PointsPerSlice) {
		return 0, fmt.Errorf("%w: %d slices of %d points exceed %d", ErrTooManyIndices, pp.Slices, pp.PointsPerSlice, limit)
	}
	return pp.Slices * pp.PointsPerSlice, nil
}
