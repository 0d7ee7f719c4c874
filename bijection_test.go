// Copyright (c) 2026 The Akshara Mantapa Authors.
// Licensed under the MIT license. See LICENSE in the project root.

package mantapa

import (
	"math/big"
	"math/rand"
	"testing"
)

func smallTestBijection() *Bijection {
	// A small alphabet size keeps these property tests fast; the
	// bijection's algebra doesn't depend on the real |Σ|.
	return NewBijection(11)
}

func TestRoundTripAddressContent(t *testing.T) {
	b := smallTestBijection()
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		a := randomBigInt(r, b.Modulus())
		c := b.AddressToContent(a)
		got := b.ContentToAddress(c)
		if got.Cmp(a) != 0 {
			t.Fatalf("ContentToAddress(AddressToContent(%s)) = %s, want %s", a, got, a)
		}
	}
}

func TestRoundTripContentAddress(t *testing.T) {
	b := smallTestBijection()
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		c := randomBigInt(r, b.Modulus())
		a := b.ContentToAddress(c)
		got := b.AddressToContent(a)
		if got.Cmp(c) != 0 {
			t.Fatalf("AddressToContent(ContentToAddress(%s)) = %s, want %s", c, got, c)
		}
	}
}

func TestIndicesBigIntRoundTrip(t *testing.T) {
	b := smallTestBijection()
	r := rand.New(rand.NewSource(3))
	const length = 20
	for i := 0; i < 20; i++ {
		indices := make([]int, length)
		for j := range indices {
			indices[j] = r.Intn(11)
		}
		c := b.IndicesToBigInt(indices)
		got := b.BigIntToIndices(c, length)
		for j := range indices {
			if got[j] != indices[j] {
				t.Fatalf("BigIntToIndices(IndicesToBigInt(%v)) = %v", indices, got)
			}
		}
	}
}

func TestBigIntToIndicesPadsWithZero(t *testing.T) {
	b := smallTestBijection()
	got := b.BigIntToIndices(big.NewInt(0), 5)
	for i, v := range got {
		if v != 0 {
			t.Errorf("BigIntToIndices(0, 5)[%d] = %d, want 0", i, v)
		}
	}
}

func TestModulusIsAlphabetSizePowClustersPerPage(t *testing.T) {
	b := NewBijection(3)
	want := new(big.Int).Exp(big.NewInt(3), big.NewInt(ClustersPerPage), nil)
	if b.Modulus().Cmp(want) != 0 {
		t.Errorf("Modulus() = %s, want 3^%d", b.Modulus(), ClustersPerPage)
	}
}

func randomBigInt(r *rand.Rand, bound *big.Int) *big.Int {
	n := new(big.Int).Rand(r, bound)
	return n
}
