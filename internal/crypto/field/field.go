// Package field implements arithmetic over the prime field F_p.
// Every result is reduced into [0, p).
package field

import (
	"math/big"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

var two = big.NewInt(2)

// Field performs modular arithmetic modulo a fixed prime p.
type Field struct {
	p *big.Int
}

// New returns a field with modulus p. p must be an odd prime; the
// caller (curve construction) is responsible for supplying one.
func New(p *big.Int) *Field {
	return &Field{p: new(big.Int).Set(p)}
}

// P returns a copy of the field modulus.
func (f *Field) P() *big.Int {
	return new(big.Int).Set(f.p)
}

// Reduce maps x into [0, p). big.Int.Mod is Euclidean, so negative
// inputs land in range as well.
func (f *Field) Reduce(x *big.Int) *big.Int {
	return new(big.Int).Mod(x, f.p)
}

// Add returns x + y mod p.
func (f *Field) Add(x, y *big.Int) *big.Int {
	z := new(big.Int).Add(x, y)
	return z.Mod(z, f.p)
}

// Sub returns x - y mod p.
func (f *Field) Sub(x, y *big.Int) *big.Int {
	z := new(big.Int).Sub(x, y)
	return z.Mod(z, f.p)
}

// Mul returns x * y mod p.
func (f *Field) Mul(x, y *big.Int) *big.Int {
	z := new(big.Int).Mul(x, y)
	return z.Mod(z, f.p)
}

// Neg returns -x mod p.
func (f *Field) Neg(x *big.Int) *big.Int {
	z := new(big.Int).Neg(x)
	return z.Mod(z, f.p)
}

// Inv returns the multiplicative inverse of x mod p. Since p is prime,
// x^(p-2) = x^-1 by Fermat's little theorem. Inverting the zero
// element returns ecc.ErrDivisionByZero.
func (f *Field) Inv(x *big.Int) (*big.Int, error) {
	if f.Reduce(x).Sign() == 0 {
		return nil, ecc.ErrDivisionByZero
	}
	e := new(big.Int).Sub(f.p, two)
	return new(big.Int).Exp(x, e, f.p), nil
}

// Sqrt returns a square root of x mod p and true, or nil and false if
// x is a quadratic non-residue.
func (f *Field) Sqrt(x *big.Int) (*big.Int, bool) {
	r := new(big.Int).ModSqrt(f.Reduce(x), f.p)
	if r == nil {
		return nil, false
	}
	return r, true
}
