package curve

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Point encoding prefixes, SEC 1 style. Infinity is the single byte
// 0x00.
const (
	prefixInfinity     = 0x00
	prefixEven         = 0x02
	prefixOdd          = 0x03
	prefixUncompressed = 0x04
)

// FieldByteSize returns the width of one field element in bytes.
func (c *Curve) FieldByteSize() int {
	return (c.P.BitLen() + 7) / 8
}

// ScalarByteSize returns the width of one scalar mod n in bytes.
func (c *Curve) ScalarByteSize() int {
	return (c.N.BitLen() + 7) / 8
}

// EncodePoint serializes p. Compressed form is a parity byte (0x02 for
// even y, 0x03 for odd) followed by x; uncompressed form is 0x04
// followed by x and y. Coordinates are fixed-width big-endian.
func (c *Curve) EncodePoint(p Point, compressed bool) []byte {
	if p.IsInfinity() {
		return []byte{prefixInfinity}
	}
	size := c.FieldByteSize()
	if compressed {
		out := make([]byte, 1+size)
		out[0] = prefixEven + byte(p.y.Bit(0))
		p.x.FillBytes(out[1:])
		return out
	}
	out := make([]byte, 1+2*size)
	out[0] = prefixUncompressed
	p.x.FillBytes(out[1 : 1+size])
	p.y.FillBytes(out[1+size:])
	return out
}

// DecodePoint parses a point encoding and validates the result against
// the curve equation before returning it. Compressed encodings recover
// y by solving y^2 = x^3 + ax + b and selecting the root whose parity
// matches the prefix byte.
func (c *Curve) DecodePoint(data []byte) (Point, error) {
	size := c.FieldByteSize()

	switch {
	case len(data) == 1 && data[0] == prefixInfinity:
		return Point{}, nil

	case len(data) == 1+2*size && data[0] == prefixUncompressed:
		x := new(big.Int).SetBytes(data[1 : 1+size])
		y := new(big.Int).SetBytes(data[1+size:])
		return c.NewPoint(x, y)

	case len(data) == 1+size && (data[0] == prefixEven || data[0] == prefixOdd):
		x := new(big.Int).SetBytes(data[1:])
		if x.Cmp(c.P) >= 0 {
			return Point{}, fmt.Errorf("curve %s: x out of range: %w", c.Name, ecc.ErrInvalidPoint)
		}
		y, ok := c.fp.Sqrt(c.rhs(x))
		if !ok {
			return Point{}, fmt.Errorf("curve %s: x has no point: %w", c.Name, ecc.ErrInvalidPoint)
		}
		if y.Bit(0) != uint(data[0]&1) {
			y = c.fp.Neg(y)
		}
		return c.NewPoint(x, y)
	}

	return Point{}, fmt.Errorf("curve %s: malformed point encoding (%d bytes): %w",
		c.Name, len(data), ecc.ErrInvalidPoint)
}
