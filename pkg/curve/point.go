package curve

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Point is an affine point on a curve. The zero value is the point at
// infinity, the identity of the group. Points are immutable: group
// operations return fresh values and never modify their operands.
type Point struct {
	x, y *big.Int
}

// Infinity returns the point at infinity.
func Infinity() Point {
	return Point{}
}

// IsInfinity reports whether p is the identity element.
func (p Point) IsInfinity() bool {
	return p.x == nil
}

// X returns a copy of the x-coordinate, or nil for infinity.
func (p Point) X() *big.Int {
	if p.x == nil {
		return nil
	}
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y-coordinate, or nil for infinity.
func (p Point) Y() *big.Int {
	if p.y == nil {
		return nil
	}
	return new(big.Int).Set(p.y)
}

// Equal reports whether p and q are the same group element.
func (p Point) Equal(q Point) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() && q.IsInfinity()
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

func (p Point) String() string {
	if p.IsInfinity() {
		return "Point(infinity)"
	}
	return fmt.Sprintf("Point(%s, %s)", p.x.Text(16), p.y.Text(16))
}

// NewPoint builds a point from raw coordinates. The coordinates must
// be reduced into [0, p) and satisfy the curve equation; anything else
// is rejected with ecc.ErrInvalidPoint before the point can reach a
// group operation.
func (c *Curve) NewPoint(x, y *big.Int) (Point, error) {
	if x == nil || y == nil {
		return Point{}, fmt.Errorf("curve %s: nil coordinate: %w", c.Name, ecc.ErrInvalidPoint)
	}
	if !c.isOnCurveXY(x, y) {
		return Point{}, fmt.Errorf("curve %s: (%s, %s): %w", c.Name, x.Text(16), y.Text(16), ecc.ErrInvalidPoint)
	}
	return Point{x: new(big.Int).Set(x), y: new(big.Int).Set(y)}, nil
}

// Neg returns -p, the reflection (x, -y mod p). Infinity negates to
// itself.
func (c *Curve) Neg(p Point) Point {
	if p.IsInfinity() {
		return p
	}
	return Point{x: new(big.Int).Set(p.x), y: c.fp.Neg(p.y)}
}

// Add computes p + q under the chord-and-tangent group law. Inputs
// must be valid curve points (the constructors guarantee this);
// behavior on off-curve points is undefined.
//
// Cases, in order: identity operands, inverse pair (same x, negated
// y), doubling (same point), and the generic chord case.
func (c *Curve) Add(p, q Point) Point {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}

	if p.x.Cmp(q.x) == 0 {
		// Same x: the points are either inverses of each other or
		// equal. y1 + y2 = 0 covers both the inverse pair and the
		// order-2 point (y = 0) doubling itself.
		if c.fp.Add(p.y, q.y).Sign() == 0 {
			return Point{}
		}
		return c.Double(p)
	}

	// Chord slope: (y2 - y1) / (x2 - x1). The denominator is nonzero
	// because the x-coordinates differ mod p.
	num := c.fp.Sub(q.y, p.y)
	den := c.fp.Sub(q.x, p.x)
	lambda := c.fp.Mul(num, c.mustInv(den))
	return c.complete(p, q, lambda)
}

// Double computes 2p. A point with y = 0 has a vertical tangent and
// doubles to infinity.
func (c *Curve) Double(p Point) Point {
	if p.IsInfinity() {
		return p
	}
	if p.y.Sign() == 0 {
		return Point{}
	}

	// Tangent slope: (3x^2 + a) / (2y).
	num := c.fp.Add(c.fp.Mul(big.NewInt(3), c.fp.Mul(p.x, p.x)), c.A)
	den := c.fp.Add(p.y, p.y)
	lambda := c.fp.Mul(num, c.mustInv(den))
	return c.complete(p, p, lambda)
}

// complete applies x3 = l^2 - x1 - x2, y3 = l(x1 - x3) - y1, shared by
// the chord and tangent cases.
func (c *Curve) complete(p, q Point, lambda *big.Int) Point {
	x3 := c.fp.Sub(c.fp.Sub(c.fp.Mul(lambda, lambda), p.x), q.x)
	y3 := c.fp.Sub(c.fp.Mul(lambda, c.fp.Sub(p.x, x3)), p.y)
	return Point{x: x3, y: y3}
}

// mustInv inverts a field element known to be nonzero by the case
// analysis in Add and Double.
func (c *Curve) mustInv(v *big.Int) *big.Int {
	inv, err := c.fp.Inv(v)
	if err != nil {
		panic(fmt.Sprintf("curve %s: unreachable zero denominator", c.Name))
	}
	return inv
}

// mult is the raw MSB-first double-and-add ladder for k >= 0. It does
// not reduce k, so it can run the full n*P subgroup test.
func (c *Curve) mult(k *big.Int, p Point) Point {
	acc := Point{}
	for i := k.BitLen() - 1; i >= 0; i-- {
		acc = c.Double(acc)
		if k.Bit(i) == 1 {
			acc = c.Add(acc, p)
		}
	}
	return acc
}

// ScalarMult returns k*p in O(log k) point operations. k = 0 yields
// infinity; a negative k multiplies by -k and negates the result;
// k >= n is reduced mod n first, since p has order dividing n.
func (c *Curve) ScalarMult(k *big.Int, p Point) Point {
	if k.Sign() < 0 {
		return c.Neg(c.ScalarMult(new(big.Int).Neg(k), p))
	}
	if k.Cmp(c.N) >= 0 {
		k = new(big.Int).Mod(k, c.N)
	}
	return c.mult(k, p)
}

// ScalarBaseMult returns k*G.
func (c *Curve) ScalarBaseMult(k *big.Int) Point {
	return c.ScalarMult(k, c.Generator())
}
