// Package ecc holds the error taxonomy shared by the curve engine and
// the protocols built on it.
package ecc

import "errors"

// Common errors returned by the ECC library.
var (
	// ErrDivisionByZero is returned when the multiplicative inverse of
	// the zero field element is requested.
	ErrDivisionByZero = errors.New("ecc: inverse of zero")

	// ErrInvalidPoint is returned when coordinates do not satisfy the
	// curve equation, or when a point fails the subgroup-order check.
	ErrInvalidPoint = errors.New("ecc: invalid point")

	// ErrSingularCurve is returned when curve parameters have a zero
	// discriminant (4a^3 + 27b^2 = 0 mod p).
	ErrSingularCurve = errors.New("ecc: singular curve")

	// ErrInvalidScalar is returned when a private or ephemeral scalar
	// lies outside [1, n-1].
	ErrInvalidScalar = errors.New("ecc: scalar outside [1, n-1]")

	// ErrInvalidSignature is returned when a signature is malformed,
	// i.e. r or s lies outside [1, n-1]. A well-formed signature that
	// simply does not verify is not an error.
	ErrInvalidSignature = errors.New("ecc: malformed signature")
)
