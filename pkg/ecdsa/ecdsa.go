// Package ecdsa implements the elliptic curve digital signature
// algorithm over the curves in pkg/curve.
//
// Signing draws a fresh ephemeral nonce from the caller-supplied
// reader on every invocation; concurrent signing calls each get an
// independent nonce. Deterministic nonces (RFC 6979) are not
// implemented, so the reader must be a CSPRNG.
package ecdsa

import (
	"fmt"
	"io"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/sample"
	"github.com/smallyu/go-ecc/pkg/curve"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// PublicKey is a validated point Q = d*G on a named curve.
type PublicKey struct {
	Curve *curve.Curve
	Point curve.Point
}

// PrivateKey is a scalar d in [1, n-1] together with its derived
// public key.
type PrivateKey struct {
	PublicKey
	D *big.Int
}

// Signature is an (r, s) pair with both components in [1, n-1]. It is
// immutable once produced; its only lifecycle is creation and
// verification.
type Signature struct {
	R *big.Int
	S *big.Int
}

// GenerateKey draws d uniformly from [1, n-1] and derives Q = d*G.
func GenerateKey(c *curve.Curve, rand io.Reader) (*PrivateKey, error) {
	d, err := sample.Scalar(rand, c.N)
	if err != nil {
		return nil, fmt.Errorf("ecdsa: sample private scalar: %w", err)
	}
	return NewPrivateKey(c, d)
}

// NewPrivateKey builds a key pair from an existing scalar, rejecting
// values outside [1, n-1] with ecc.ErrInvalidScalar.
func NewPrivateKey(c *curve.Curve, d *big.Int) (*PrivateKey, error) {
	if err := c.CheckScalar(d); err != nil {
		return nil, fmt.Errorf("ecdsa: private scalar: %w", err)
	}
	return &PrivateKey{
		PublicKey: PublicKey{Curve: c, Point: c.ScalarBaseMult(d)},
		D:         new(big.Int).Set(d),
	}, nil
}

// hashToInt interprets a digest as an integer, truncating to the bit
// length of the group order per SECG (excess bits are shifted out the
// way OpenSSL and crypto/ecdsa do).
func hashToInt(digest []byte, c *curve.Curve) *big.Int {
	orderBits := c.N.BitLen()
	orderBytes := (orderBits + 7) / 8
	if len(digest) > orderBytes {
		digest = digest[:orderBytes]
	}
	e := new(big.Int).SetBytes(digest)
	if excess := len(digest)*8 - orderBits; excess > 0 {
		e.Rsh(e, uint(excess))
	}
	return e
}

// Sign produces an (r, s) signature over digest. The digest is an
// opaque fixed-width hash computed by the caller.
//
// The loop retries with a fresh nonce whenever r or s comes out zero.
// Each retry fires with probability about 1/n, so for the shipped
// curves a second iteration is astronomically unlikely.
func Sign(rand io.Reader, priv *PrivateKey, digest []byte) (*Signature, error) {
	c := priv.Curve
	e := hashToInt(digest, c)

	for {
		k, err := sample.Scalar(rand, c.N)
		if err != nil {
			return nil, fmt.Errorf("ecdsa: sample nonce: %w", err)
		}

		R := c.ScalarBaseMult(k)
		if R.IsInfinity() {
			continue
		}
		r := new(big.Int).Mod(R.X(), c.N)
		if r.Sign() == 0 {
			continue
		}

		// s = k^-1 (e + r*d) mod n. k is in [1, n-1] and n is prime,
		// so the inverse exists.
		kInv := new(big.Int).ModInverse(k, c.N)
		s := new(big.Int).Mul(r, priv.D)
		s.Add(s, e)
		s.Mul(s, kInv)
		s.Mod(s, c.N)
		if s.Sign() == 0 {
			continue
		}

		return &Signature{R: r, S: s}, nil
	}
}

// Verify reports whether sig is a valid signature over digest under
// pub. Malformed signatures (r or s outside [1, n-1]) and invalid
// public keys surface as errors; a well-formed signature that simply
// does not match returns (false, nil).
func Verify(pub *PublicKey, digest []byte, sig *Signature) (bool, error) {
	c := pub.Curve
	if sig == nil || sig.R == nil || sig.S == nil {
		return false, ecc.ErrInvalidSignature
	}
	if err := c.CheckScalar(sig.R); err != nil {
		return false, fmt.Errorf("ecdsa: r: %w", ecc.ErrInvalidSignature)
	}
	if err := c.CheckScalar(sig.S); err != nil {
		return false, fmt.Errorf("ecdsa: s: %w", ecc.ErrInvalidSignature)
	}
	if err := c.ValidatePoint(pub.Point); err != nil {
		return false, fmt.Errorf("ecdsa: public key: %w", err)
	}

	e := hashToInt(digest, c)
	w := new(big.Int).ModInverse(sig.S, c.N)
	u1 := new(big.Int).Mul(e, w)
	u1.Mod(u1, c.N)
	u2 := new(big.Int).Mul(sig.R, w)
	u2.Mod(u2, c.N)

	P := c.Add(c.ScalarBaseMult(u1), c.ScalarMult(u2, pub.Point))
	if P.IsInfinity() {
		return false, nil
	}
	return new(big.Int).Mod(P.X(), c.N).Cmp(sig.R) == 0, nil
}
