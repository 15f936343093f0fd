// Package ecdh derives shared secrets via elliptic curve
// Diffie-Hellman. Both parties compute d_own * Q_peer; commutativity
// of scalar multiplication gives them the same point without either
// private scalar ever leaving its owner.
package ecdh

import (
	"fmt"

	"github.com/smallyu/go-ecc/pkg/curve"
	"github.com/smallyu/go-ecc/pkg/ecc"
	"github.com/smallyu/go-ecc/pkg/ecdsa"
)

// SharedPoint computes d*Q_peer after validating the peer point
// (curve membership and subgroup order). The validation is what makes
// it safe to multiply a secret scalar into an attacker-chosen point.
func SharedPoint(priv *ecdsa.PrivateKey, peer curve.Point) (curve.Point, error) {
	c := priv.Curve
	if err := c.ValidatePoint(peer); err != nil {
		return curve.Point{}, fmt.Errorf("ecdh: peer key: %w", err)
	}
	s := c.ScalarMult(priv.D, peer)
	if s.IsInfinity() {
		return curve.Point{}, fmt.Errorf("ecdh: derived infinity: %w", ecc.ErrInvalidPoint)
	}
	return s, nil
}

// SharedSecret computes the canonical shared secret: the x-coordinate
// of d*Q_peer as fixed-width big-endian bytes, ready for a KDF.
func SharedSecret(priv *ecdsa.PrivateKey, peer curve.Point) ([]byte, error) {
	s, err := SharedPoint(priv, peer)
	if err != nil {
		return nil, err
	}
	out := make([]byte, priv.Curve.FieldByteSize())
	s.X().FillBytes(out)
	return out, nil
}
