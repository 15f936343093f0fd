package e2e

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"math/big"
	"testing"

	"filippo.io/nistec"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	dcrecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/smallyu/go-ecc/pkg/curve"
	"github.com/smallyu/go-ecc/pkg/ecdh"
	"github.com/smallyu/go-ecc/pkg/ecdsa"
)

// TestSecp256k1SignatureAcceptedByDecred signs with this library and
// verifies with the decred implementation. Agreement here pins down
// the scalar ladder, the addition law, and the signing equation all at
// once.
func TestSecp256k1SignatureAcceptedByDecred(t *testing.T) {
	c := curve.Secp256k1()

	priv, err := ecdsa.GenerateKey(c, rand.Reader)
	if err != nil {
		t.Fatalf("keygen: %v", err)
	}

	digest := sha256.Sum256([]byte("cross-implementation check"))
	sig, err := ecdsa.Sign(rand.Reader, priv, digest[:])
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	// Hand our compressed public key to decred.
	refPub, err := secp256k1.ParsePubKey(priv.PublicKey.Bytes())
	if err != nil {
		t.Fatalf("decred rejected our public key encoding: %v", err)
	}

	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(sig.R.Bytes()); overflow {
		t.Fatal("r overflows the group order")
	}
	if overflow := s.SetByteSlice(sig.S.Bytes()); overflow {
		t.Fatal("s overflows the group order")
	}

	if !dcrecdsa.NewSignature(&r, &s).Verify(digest[:], refPub) {
		t.Fatal("decred rejected a signature this library accepts")
	}
}

// TestSecp256k1PublicKeyMatchesDecred derives d*G with both
// implementations from the same scalar.
func TestSecp256k1PublicKeyMatchesDecred(t *testing.T) {
	c := curve.Secp256k1()

	refPriv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		t.Fatalf("decred keygen: %v", err)
	}

	d := new(big.Int).SetBytes(refPriv.Serialize())
	priv, err := ecdsa.NewPrivateKey(c, d)
	if err != nil {
		t.Fatalf("import decred scalar: %v", err)
	}

	want := refPriv.PubKey().SerializeCompressed()
	got := priv.PublicKey.Bytes()
	if !bytes.Equal(got, want) {
		t.Fatalf("d*G mismatch:\n  ours:   %x\n  decred: %x", got, want)
	}

	// And the uncompressed form decodes back on their side too.
	if _, err := secp256k1.ParsePubKey(c.EncodePoint(priv.Point, false)); err != nil {
		t.Fatalf("decred rejected our uncompressed encoding: %v", err)
	}
}

// TestP256ScalarBaseMultMatchesNistec checks our P-256 ladder against
// the constant-time nistec implementation.
func TestP256ScalarBaseMultMatchesNistec(t *testing.T) {
	c := curve.P256()

	for i := 0; i < 8; i++ {
		priv, err := ecdsa.GenerateKey(c, rand.Reader)
		if err != nil {
			t.Fatalf("keygen: %v", err)
		}

		scalar := make([]byte, 32)
		priv.D.FillBytes(scalar)

		ref, err := nistec.NewP256Point().ScalarBaseMult(scalar)
		if err != nil {
			t.Fatalf("nistec scalar mult: %v", err)
		}

		got := c.EncodePoint(priv.Point, false)
		if !bytes.Equal(got, ref.Bytes()) {
			t.Fatalf("d*G mismatch on P-256:\n  ours:   %x\n  nistec: %x", got, ref.Bytes())
		}
	}
}

// TestP256SharedSecretMatchesNistec runs one ECDH side through nistec.
func TestP256SharedSecretMatchesNistec(t *testing.T) {
	c := curve.P256()

	alice, err := ecdsa.GenerateKey(c, rand.Reader)
	if err != nil {
		t.Fatalf("alice keygen: %v", err)
	}
	bob, err := ecdsa.GenerateKey(c, rand.Reader)
	if err != nil {
		t.Fatalf("bob keygen: %v", err)
	}

	secret, err := ecdh.SharedSecret(alice, bob.Point)
	if err != nil {
		t.Fatalf("ecdh: %v", err)
	}

	bobRef, err := nistec.NewP256Point().SetBytes(c.EncodePoint(bob.Point, false))
	if err != nil {
		t.Fatalf("nistec rejected bob's point: %v", err)
	}
	scalar := make([]byte, 32)
	alice.D.FillBytes(scalar)
	sharedRef, err := nistec.NewP256Point().ScalarMult(bobRef, scalar)
	if err != nil {
		t.Fatalf("nistec scalar mult: %v", err)
	}

	// nistec returns the uncompressed encoding; the x-coordinate is
	// bytes [1, 33).
	if !bytes.Equal(secret, sharedRef.Bytes()[1:33]) {
		t.Fatalf("shared secret mismatch:\n  ours:   %x\n  nistec: %x", secret, sharedRef.Bytes()[1:33])
	}
}

// TestFullExchange wires keygen, point transport, signing and ECDH
// together the way two communicating parties would.
func TestFullExchange(t *testing.T) {
	for _, c := range []*curve.Curve{curve.Secp256k1(), curve.P256()} {
		alice, err := ecdsa.GenerateKey(c, rand.Reader)
		if err != nil {
			t.Fatalf("alice keygen: %v", err)
		}
		bob, err := ecdsa.GenerateKey(c, rand.Reader)
		if err != nil {
			t.Fatalf("bob keygen: %v", err)
		}

		// Keys travel compressed and are revalidated on receipt.
		alicePub, err := ecdsa.ParsePublicKey(c, alice.PublicKey.Bytes())
		if err != nil {
			t.Fatalf("parse alice pub: %v", err)
		}
		bobPub, err := ecdsa.ParsePublicKey(c, bob.PublicKey.Bytes())
		if err != nil {
			t.Fatalf("parse bob pub: %v", err)
		}

		// Alice signs; Bob checks with the transported key.
		digest := sha256.Sum256([]byte("handshake transcript"))
		sig, err := ecdsa.Sign(rand.Reader, alice, digest[:])
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		wire, err := ecdsa.ParseSignature(c, sig.Bytes(c))
		if err != nil {
			t.Fatalf("signature transport: %v", err)
		}
		ok, err := ecdsa.Verify(alicePub, digest[:], wire)
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if !ok {
			t.Fatalf("signature rejected on %s", c.Name)
		}

		// Both sides derive the session secret.
		aliceSecret, err := ecdh.SharedSecret(alice, bobPub.Point)
		if err != nil {
			t.Fatalf("alice ecdh: %v", err)
		}
		bobSecret, err := ecdh.SharedSecret(bob, alicePub.Point)
		if err != nil {
			t.Fatalf("bob ecdh: %v", err)
		}
		if !bytes.Equal(aliceSecret, bobSecret) {
			t.Fatalf("shared secrets diverge on %s", c.Name)
		}
	}
}
