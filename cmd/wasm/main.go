//go:build js && wasm

package main

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-ecc/pkg/curve"
	"github.com/smallyu/go-ecc/pkg/ecdh"
	"github.com/smallyu/go-ecc/pkg/ecdsa"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go ECC WASM Initialized")

	// Expose Go functions to JS.
	js.Global().Set("GoECC", map[string]interface{}{
		"GenerateKey":  js.FuncOf(GenerateKey),
		"Sign":         js.FuncOf(Sign),
		"Verify":       js.FuncOf(Verify),
		"SharedSecret": js.FuncOf(SharedSecret),
	})

	<-c
}

// GenerateKey creates a key pair on the named curve.
// Arguments:
// 0: Curve name (string), e.g. "secp256k1" or "P-256"
// Returns:
// JSON {privateKey, publicKey} with hex values, or an error string.
func GenerateKey(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (curveName)"
	}

	c, err := curve.ByName(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	priv, err := ecdsa.GenerateKey(c, rand.Reader)
	if err != nil {
		return fmt.Sprintf("error: keygen failed: %v", err)
	}

	resp := map[string]interface{}{
		"privateKey": priv.D.Text(16),
		"publicKey":  hex.EncodeToString(priv.PublicKey.Bytes()),
	}
	respBytes, _ := json.Marshal(resp)
	return string(respBytes)
}

// Sign signs a digest with a private scalar.
// Arguments:
// 0: Curve name (string)
// 1: Private scalar (hex string)
// 2: Digest (hex string)
// Returns:
// JSON {r, s} with hex values, or an error string.
func Sign(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (curveName, privHex, digestHex)"
	}

	c, err := curve.ByName(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	d, ok := parseHexInt(args[1].String())
	if !ok {
		return "error: invalid private scalar hex"
	}
	digest, err := hex.DecodeString(args[2].String())
	if err != nil {
		return fmt.Sprintf("error: invalid digest hex: %v", err)
	}

	priv, err := ecdsa.NewPrivateKey(c, d)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	sig, err := ecdsa.Sign(rand.Reader, priv, digest)
	if err != nil {
		return fmt.Sprintf("error: sign failed: %v", err)
	}

	resp := map[string]interface{}{
		"r": sig.R.Text(16),
		"s": sig.S.Text(16),
	}
	respBytes, _ := json.Marshal(resp)
	return string(respBytes)
}

// Verify checks a signature over a digest.
// Arguments:
// 0: Curve name (string)
// 1: Public key (hex-encoded point)
// 2: Digest (hex string)
// 3: r (hex string)
// 4: s (hex string)
// Returns:
// bool, or an error string for malformed input.
func Verify(this js.Value, args []js.Value) interface{} {
	if len(args) != 5 {
		return "error: expected 5 arguments (curveName, pubHex, digestHex, rHex, sHex)"
	}

	c, err := curve.ByName(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	pubBytes, err := hex.DecodeString(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: invalid public key hex: %v", err)
	}
	pub, err := ecdsa.ParsePublicKey(c, pubBytes)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	digest, err := hex.DecodeString(args[2].String())
	if err != nil {
		return fmt.Sprintf("error: invalid digest hex: %v", err)
	}

	r, okR := parseHexInt(args[3].String())
	s, okS := parseHexInt(args[4].String())
	if !okR || !okS {
		return "error: invalid signature hex"
	}

	ok, err := ecdsa.Verify(pub, digest, &ecdsa.Signature{R: r, S: s})
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return ok
}

// SharedSecret derives the ECDH shared secret.
// Arguments:
// 0: Curve name (string)
// 1: Own private scalar (hex string)
// 2: Peer public key (hex-encoded point)
// Returns:
// Hex-encoded secret, or an error string.
func SharedSecret(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (curveName, privHex, peerPubHex)"
	}

	c, err := curve.ByName(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	d, ok := parseHexInt(args[1].String())
	if !ok {
		return "error: invalid private scalar hex"
	}
	priv, err := ecdsa.NewPrivateKey(c, d)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	peerBytes, err := hex.DecodeString(args[2].String())
	if err != nil {
		return fmt.Sprintf("error: invalid peer key hex: %v", err)
	}
	peer, err := c.DecodePoint(peerBytes)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	secret, err := ecdh.SharedSecret(priv, peer)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return hex.EncodeToString(secret)
}

func parseHexInt(s string) (*big.Int, bool) {
	return new(big.Int).SetString(s, 16)
}
