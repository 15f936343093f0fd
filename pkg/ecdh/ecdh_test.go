package ecdh

import (
	"bytes"
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecc/pkg/curve"
	"github.com/smallyu/go-ecc/pkg/ecc"
	"github.com/smallyu/go-ecc/pkg/ecdsa"
)

func TestSharedSecretSymmetry(t *testing.T) {
	for _, c := range []*curve.Curve{curve.Secp256k1(), curve.P256()} {
		alice, err := ecdsa.GenerateKey(c, rand.Reader)
		require.NoError(t, err)
		bob, err := ecdsa.GenerateKey(c, rand.Reader)
		require.NoError(t, err)

		aliceSecret, err := SharedSecret(alice, bob.Point)
		require.NoError(t, err)
		bobSecret, err := SharedSecret(bob, alice.Point)
		require.NoError(t, err)

		require.Len(t, aliceSecret, c.FieldByteSize())
		require.True(t, bytes.Equal(aliceSecret, bobSecret),
			"shared secrets differ on %s", c.Name)
	}
}

func TestSharedSecretMatchesProduct(t *testing.T) {
	// d_a*(d_b*G) must equal (d_a*d_b mod n)*G.
	c := curve.Secp256k1()
	alice, err := ecdsa.GenerateKey(c, rand.Reader)
	require.NoError(t, err)
	bob, err := ecdsa.GenerateKey(c, rand.Reader)
	require.NoError(t, err)

	shared, err := SharedPoint(alice, bob.Point)
	require.NoError(t, err)

	prod := new(big.Int).Mul(alice.D, bob.D)
	prod.Mod(prod, c.N)
	require.True(t, shared.Equal(c.ScalarBaseMult(prod)))
}

func TestSharedSecretRejectsInvalidPeer(t *testing.T) {
	c := curve.Secp256k1()
	alice, err := ecdsa.GenerateKey(c, rand.Reader)
	require.NoError(t, err)

	_, err = SharedSecret(alice, curve.Infinity())
	require.ErrorIs(t, err, ecc.ErrInvalidPoint)
}

func TestSharedSecretRejectsSmallSubgroupPeer(t *testing.T) {
	// On y^2 = x^3 + 1 over F_11 the generator (2, 3) spans an
	// order-6 subgroup of the order-12 group; (5, 4) lies outside it
	// and must be rejected before any secret scalar touches it.
	c, err := curve.New("tiny11",
		big.NewInt(11), big.NewInt(0), big.NewInt(1),
		big.NewInt(2), big.NewInt(3), big.NewInt(6), 2)
	require.NoError(t, err)

	priv, err := ecdsa.NewPrivateKey(c, big.NewInt(5))
	require.NoError(t, err)

	outside, err := c.NewPoint(big.NewInt(5), big.NewInt(4))
	require.NoError(t, err)

	_, err = SharedSecret(priv, outside)
	require.ErrorIs(t, err, ecc.ErrInvalidPoint)
}

func TestSharedSecretFixedWidth(t *testing.T) {
	// The x-coordinate is left-padded to the field width even when it
	// is numerically small.
	c, err := curve.New("toy17",
		big.NewInt(17), big.NewInt(2), big.NewInt(2),
		big.NewInt(5), big.NewInt(1), big.NewInt(19), 1)
	require.NoError(t, err)

	alice, err := ecdsa.NewPrivateKey(c, big.NewInt(3))
	require.NoError(t, err)
	bob, err := ecdsa.NewPrivateKey(c, big.NewInt(7))
	require.NoError(t, err)

	secret, err := SharedSecret(alice, bob.Point)
	require.NoError(t, err)
	require.Len(t, secret, 1)

	want := c.ScalarBaseMult(big.NewInt(21 % 19))
	require.Equal(t, want.X().Bytes(), bytes.TrimLeft(secret, "\x00"))
}
