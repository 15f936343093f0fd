package ecdsa

import (
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"

	"github.com/smallyu/go-ecc/pkg/curve"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Bytes returns the fixed-width r || s encoding for the given curve.
func (s *Signature) Bytes(c *curve.Curve) []byte {
	size := c.ScalarByteSize()
	out := make([]byte, 2*size)
	s.R.FillBytes(out[:size])
	s.S.FillBytes(out[size:])
	return out
}

// ParseSignature decodes a fixed-width r || s encoding, enforcing the
// [1, n-1] range on both components.
func ParseSignature(c *curve.Curve, data []byte) (*Signature, error) {
	size := c.ScalarByteSize()
	if len(data) != 2*size {
		return nil, fmt.Errorf("ecdsa: signature length %d, want %d: %w",
			len(data), 2*size, ecc.ErrInvalidSignature)
	}
	sig := &Signature{
		R: new(big.Int).SetBytes(data[:size]),
		S: new(big.Int).SetBytes(data[size:]),
	}
	if c.CheckScalar(sig.R) != nil || c.CheckScalar(sig.S) != nil {
		return nil, ecc.ErrInvalidSignature
	}
	return sig, nil
}

// signatureCBOR is the wire form: minimally encoded big-endian
// component bytes under integer keys.
type signatureCBOR struct {
	R []byte `cbor:"1,keyasint"`
	S []byte `cbor:"2,keyasint"`
}

// MarshalCBOR implements cbor.Marshaler.
func (s *Signature) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(signatureCBOR{R: s.R.Bytes(), S: s.S.Bytes()})
}

// UnmarshalCBOR implements cbor.Unmarshaler. Range validation is left
// to Verify, which rejects out-of-range components.
func (s *Signature) UnmarshalCBOR(data []byte) error {
	var raw signatureCBOR
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("ecdsa: decode signature: %w", err)
	}
	s.R = new(big.Int).SetBytes(raw.R)
	s.S = new(big.Int).SetBytes(raw.S)
	return nil
}

// Bytes returns the compressed point encoding of the public key.
func (pub *PublicKey) Bytes() []byte {
	return pub.Curve.EncodePoint(pub.Point, true)
}

// ParsePublicKey decodes a point encoding and fully validates it
// (curve membership and subgroup order) before returning a key.
func ParsePublicKey(c *curve.Curve, data []byte) (*PublicKey, error) {
	p, err := c.DecodePoint(data)
	if err != nil {
		return nil, fmt.Errorf("ecdsa: public key: %w", err)
	}
	if err := c.ValidatePoint(p); err != nil {
		return nil, fmt.Errorf("ecdsa: public key: %w", err)
	}
	return &PublicKey{Curve: c, Point: p}, nil
}
