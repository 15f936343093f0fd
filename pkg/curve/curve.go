// Package curve implements short-Weierstrass elliptic curves
// y^2 = x^3 + ax + b over prime fields: parameter validation, the
// affine group law, double-and-add scalar multiplication, subgroup
// membership checks, and point encoding.
//
// The arithmetic is variable-time. It is meant for interoperability
// and protocol work, not for workloads that need side-channel
// resistance.
package curve

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/field"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Curve is an immutable parameter set (p, a, b, G, n, h) together with
// the group operations it induces. Construct one with New or use a
// named curve from params.go; never mutate the fields afterwards.
type Curve struct {
	Name   string
	P      *big.Int // field prime
	A, B   *big.Int // curve coefficients
	Gx, Gy *big.Int // generator
	N      *big.Int // order of the generator
	H      int      // cofactor

	fp *field.Field
}

// New validates a parameter set and returns the curve. It rejects
// singular curves (zero discriminant), generators that do not lie on
// the curve, and order values n with n*G != infinity.
func New(name string, p, a, b, gx, gy, n *big.Int, h int) (*Curve, error) {
	fp := field.New(p)
	c := &Curve{
		Name: name,
		P:    fp.P(),
		A:    fp.Reduce(a),
		B:    fp.Reduce(b),
		Gx:   fp.Reduce(gx),
		Gy:   fp.Reduce(gy),
		N:    new(big.Int).Set(n),
		H:    h,
		fp:   fp,
	}

	// Discriminant condition: 4a^3 + 27b^2 != 0 mod p.
	a3 := fp.Mul(fp.Mul(c.A, c.A), c.A)
	b2 := fp.Mul(c.B, c.B)
	disc := fp.Add(fp.Mul(big.NewInt(4), a3), fp.Mul(big.NewInt(27), b2))
	if disc.Sign() == 0 {
		return nil, fmt.Errorf("curve %s: %w", name, ecc.ErrSingularCurve)
	}

	if !c.isOnCurveXY(c.Gx, c.Gy) {
		return nil, fmt.Errorf("curve %s: generator: %w", name, ecc.ErrInvalidPoint)
	}
	if n.Sign() <= 0 {
		return nil, fmt.Errorf("curve %s: order must be positive: %w", name, ecc.ErrInvalidScalar)
	}
	if !c.mult(c.N, c.Generator()).IsInfinity() {
		return nil, fmt.Errorf("curve %s: n is not the generator order: %w", name, ecc.ErrInvalidPoint)
	}

	return c, nil
}

// Generator returns the base point G.
func (c *Curve) Generator() Point {
	return Point{x: new(big.Int).Set(c.Gx), y: new(big.Int).Set(c.Gy)}
}

// rhs evaluates x^3 + ax + b mod p.
func (c *Curve) rhs(x *big.Int) *big.Int {
	x3 := c.fp.Mul(c.fp.Mul(x, x), x)
	return c.fp.Add(c.fp.Add(x3, c.fp.Mul(c.A, x)), c.B)
}

func (c *Curve) isOnCurveXY(x, y *big.Int) bool {
	if x.Sign() < 0 || x.Cmp(c.P) >= 0 || y.Sign() < 0 || y.Cmp(c.P) >= 0 {
		return false
	}
	return c.fp.Mul(y, y).Cmp(c.rhs(x)) == 0
}

// IsOnCurve reports whether p satisfies the curve equation. The point
// at infinity is on every curve.
func (c *Curve) IsOnCurve(p Point) bool {
	if p.IsInfinity() {
		return true
	}
	return c.isOnCurveXY(p.x, p.y)
}

// InSubgroup reports whether n*p = infinity. Externally supplied
// points must pass this before ECDH or verification; it blocks
// small-subgroup and invalid-curve attacks.
func (c *Curve) InSubgroup(p Point) bool {
	return c.mult(c.N, p).IsInfinity()
}

// ValidatePoint checks an externally supplied point: it must be a
// finite point on the curve that lies in the prime-order subgroup.
func (c *Curve) ValidatePoint(p Point) error {
	if p.IsInfinity() {
		return fmt.Errorf("curve %s: point at infinity: %w", c.Name, ecc.ErrInvalidPoint)
	}
	if !c.IsOnCurve(p) {
		return fmt.Errorf("curve %s: not on curve: %w", c.Name, ecc.ErrInvalidPoint)
	}
	if !c.InSubgroup(p) {
		return fmt.Errorf("curve %s: wrong subgroup: %w", c.Name, ecc.ErrInvalidPoint)
	}
	return nil
}

// CheckScalar validates a private or ephemeral scalar k in [1, n-1].
func (c *Curve) CheckScalar(k *big.Int) error {
	if k == nil || k.Sign() <= 0 || k.Cmp(c.N) >= 0 {
		return ecc.ErrInvalidScalar
	}
	return nil
}
