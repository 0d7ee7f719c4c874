// Copyright (c) 2026 The Akshara Mantapa Authors.
// Licensed under the MIT license. See LICENSE in the project root.

package mantapa

import "math/big"

// Bijection realizes a reversible permutation of Σ^L by multiplication
// modulo M = |Σ|^L: content_to_address multiplies by a, address_to_content
// multiplies by a's inverse mod M. Built once from the alphabet size and
// immutable thereafter.
type Bijection struct {
	alphabetSize int
	modulus      *big.Int
	multiplier   *big.Int
	inverse      *big.Int
}

// NewBijection builds the engine for the given alphabet size: M = size^L,
// the multiplier is the smallest integer at or above K₀ coprime to M, and
// the inverse is its modular inverse mod M. Panics if that inverse doesn't
// exist, which would mean the coprimality search above is broken — it
// cannot happen given a multiplier chosen to be coprime to M.
func NewBijection(alphabetSize int) *Bijection {
	sigma := big.NewInt(int64(alphabetSize))
	modulus := new(big.Int).Exp(sigma, big.NewInt(ClustersPerPage), nil)

	k0, ok := new(big.Int).SetString(k0Literal, 10)
	if !ok {
		panic("mantapa: malformed K0 literal")
	}

	multiplier := smallestCoprimeAtOrAbove(k0, modulus)
	inverse := new(big.Int).ModInverse(multiplier, modulus)
	if inverse == nil {
		panic("mantapa: chosen multiplier has no inverse modulo M")
	}

	return &Bijection{
		alphabetSize: alphabetSize,
		modulus:      modulus,
		multiplier:   multiplier,
		inverse:      inverse,
	}
}

// smallestCoprimeAtOrAbove returns the smallest integer c >= start with
// gcd(c, m) == 1. Expected to terminate in a handful of trials for the K₀
// and M this module uses.
func smallestCoprimeAtOrAbove(start, m *big.Int) *big.Int {
	one := big.NewInt(1)
	c := new(big.Int).Set(start)
	g := new(big.Int)
	for {
		g.GCD(nil, nil, c, m)
		if g.Cmp(one) == 0 {
			return new(big.Int).Set(c)
		}
		c.Add(c, one)
	}
}

// Modulus returns a copy of M = |Σ|^L.
func (b *Bijection) Modulus() *big.Int {
	return new(big.Int).Set(b.modulus)
}

// ContentToAddress computes A = (C·a) mod M, used by search: it maps the
// content integer whose digits are a query's clusters to the address at
// which that content appears.
func (b *Bijection) ContentToAddress(content *big.Int) *big.Int {
	r := new(big.Int).Mul(content, b.multiplier)
	return r.Mod(r, b.modulus)
}

// AddressToContent computes C = (A·a⁻¹) mod M, used by page rendering.
func (b *Bijection) AddressToContent(address *big.Int) *big.Int {
	r := new(big.Int).Mul(address, b.inverse)
	return r.Mod(r, b.modulus)
}

// IndicesToBigInt evaluates a sequence of cluster indices as a base-|Σ|
// number via Horner's method, most significant digit first. The sequence
// may be any length, not just L — callers doing L-length page content use
// a length-400 slice; ParseAddress's Kannada-mandira path uses whatever
// length Segment happened to produce.
func (b *Bijection) IndicesToBigInt(indices []int) *big.Int {
	sigma := big.NewInt(int64(b.alphabetSize))
	c := new(big.Int)
	for _, idx := range indices {
		c.Mul(c, sigma)
		c.Add(c, big.NewInt(int64(idx)))
	}
	return c
}

// BigIntToIndices is the base-|Σ| expansion of c into exactly length
// digits, most significant first (repeated divmod by |Σ|, big-endian).
// Positions above c's most significant digit are 0 (space); if c is
// |Σ|^length or more, its digits beyond the first length are dropped.
func (b *Bijection) BigIntToIndices(c *big.Int, length int) []int {
	sigma := big.NewInt(int64(b.alphabetSize))
	n := new(big.Int).Set(c)
	r := new(big.Int)
	indices := make([]int, length)
	for i := length - 1; i >= 0; i-- {
		n.QuoRem(n, sigma, r)
		indices[i] = int(r.Int64())
	}
	return indices
}
