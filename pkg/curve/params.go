package curve

import (
	"fmt"
	"math/big"
	"sync"
)

// Named curves are built once and shared for the lifetime of the
// process. The sync.Once guards make the accessors safe for concurrent
// first use; the returned *Curve must be treated as read-only.
var (
	secp256k1     *Curve
	secp256k1Once sync.Once

	p256     *Curve
	p256Once sync.Once
)

// Secp256k1 returns the Koblitz curve y^2 = x^3 + 7 used by Bitcoin
// and Ethereum (SEC 2, version 2.0).
func Secp256k1() *Curve {
	secp256k1Once.Do(func() {
		var err error
		secp256k1, err = New("secp256k1",
			hexInt("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"),
			big.NewInt(0),
			big.NewInt(7),
			hexInt("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
			hexInt("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"),
			hexInt("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"),
			1,
		)
		if err != nil {
			panic(err)
		}
	})
	return secp256k1
}

// P256 returns the NIST P-256 curve (FIPS 186-4), a = -3 mod p.
func P256() *Curve {
	p256Once.Do(func() {
		var err error
		p256, err = New("P-256",
			hexInt("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff"),
			hexInt("ffffffff00000001000000000000000000000000fffffffffffffffffffffffc"),
			hexInt("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b"),
			hexInt("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296"),
			hexInt("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5"),
			hexInt("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551"),
			1,
		)
		if err != nil {
			panic(err)
		}
	})
	return p256
}

// ByName resolves a curve by its canonical name. This is how callers
// that take curve selection from configuration pick a parameter set.
func ByName(name string) (*Curve, error) {
	switch name {
	case "secp256k1":
		return Secp256k1(), nil
	case "P-256", "p256":
		return P256(), nil
	}
	return nil, fmt.Errorf("curve: unknown curve %q", name)
}

func hexInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curve: bad hex constant " + s)
	}
	return v
}
