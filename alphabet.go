// Copyright (c) 2026 The Akshara Mantapa Authors.
// Licensed under the MIT license. See LICENSE in the project root.

package mantapa

import "github.com/kannada-babel/mantapa/internal/kannada"

// Alphabet is the ordered set of valid Kannada grapheme clusters, Σ, used as
// the base of the numeral system for page content. It is built once and is
// safe to share read-only across concurrent callers.
type Alphabet struct {
	inner *kannada.Alphabet
}

// NewAlphabet builds Σ from the fixed Kannada script construction.
func NewAlphabet() *Alphabet {
	return &Alphabet{inner: kannada.New()}
}

// Size returns |Σ|.
func (a *Alphabet) Size() int { return a.inner.Size() }

// Get returns the cluster at index i, or false if i is out of range.
func (a *Alphabet) Get(i int) (string, bool) { return a.inner.Get(i) }

// IndexOf returns the index of cluster, or false if it isn't in Σ.
func (a *Alphabet) IndexOf(cluster string) (int, bool) { return a.inner.IndexOf(cluster) }

// IndicesToString concatenates the clusters named by indices, silently
// skipping any index out of range.
func (a *Alphabet) IndicesToString(indices []int) string {
	return a.inner.IndicesToString(indices)
}

// Segment performs greedy longest-match segmentation of text, returning
// false if any position fails to match a cluster of any length.
func (a *Alphabet) Segment(text string) ([]int, bool) { return a.inner.Segment(text) }

// MaxClusterRunes is the longest cluster's length in Unicode scalar values.
func (a *Alphabet) MaxClusterRunes() int { return a.inner.MaxClusterRunes() }
