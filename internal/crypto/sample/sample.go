// Package sample draws uniformly distributed scalars from a caller
// supplied randomness source. It is the single entry point for both
// private-key generation and per-signature nonces.
package sample

import (
	crand "crypto/rand"
	"io"
	"math/big"
)

var one = big.NewInt(1)

// Scalar returns a uniform integer in [1, n-1] read from rand.
// crypto/rand.Int performs the rejection sampling, so the result
// carries no modulo bias.
func Scalar(rand io.Reader, n *big.Int) (*big.Int, error) {
	// Sample k in [0, n-2], then shift to [1, n-1].
	k, err := crand.Int(rand, new(big.Int).Sub(n, one))
	if err != nil {
		return nil, err
	}
	return k.Add(k, one), nil
}
