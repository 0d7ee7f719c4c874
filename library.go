// Copyright (c) 2026 The Akshara Mantapa Authors.
// Licensed under the MIT license. See LICENSE in the project root.

package mantapa

import (
	"fmt"
	"math/big"
	"math/rand"
	"strings"
)

// Library composes an Alphabet and a Bijection into the user-level
// operations over the page space. It is built once and, like its two
// components, is immutable and safe for concurrent use after construction.
type Library struct {
	alphabet  *Alphabet
	bijection *Bijection
}

// NewLibrary builds the alphabet and bijection engine. This is the only
// place a startup invariant (prefix-closure, multiplier invertibility) can
// fail, and it panics if one does — both are mathematically guaranteed by
// the fixed construction, so this should never fire outside of a broken
// build.
func NewLibrary() *Library {
	alphabet := NewAlphabet()
	bijection := NewBijection(alphabet.Size())
	debugf("library initialized: |alphabet|=%d modulus bits=%d\n",
		alphabet.Size(), bijection.Modulus().BitLen())
	return &Library{alphabet: alphabet, bijection: bijection}
}

// AlphabetSize returns |Σ|.
func (lib *Library) AlphabetSize() int { return lib.alphabet.Size() }

// PageLength returns L, the number of clusters per page.
func (lib *Library) PageLength() int { return ClustersPerPage }

func (lib *Library) renderPage(loc Location) Page {
	content := lib.bijection.AddressToContent(loc.Raw)
	indices := lib.bijection.BigIntToIndices(content, ClustersPerPage)
	return Page{
		Location:         loc,
		RawContent:       lib.alphabet.IndicesToString(indices),
		FormattedContent: formatContent(lib.alphabet, indices),
		ClusterIndices:   indices,
	}
}

// PageOf renders the page at loc. Any raw address is accepted, including
// one at or beyond the bijection's modulus M: the multiply-then-reduce
// step inside AddressToContent reduces it mod M, so an out-of-range
// address simply renders the same page as its reduction, with no explicit
// bounds check here.
func (lib *Library) PageOf(loc Location) Page {
	return lib.renderPage(loc)
}

// SearchForPrefix finds the location whose page begins with text exactly
// (the remainder of the page is spaces). Known in the original
// implementation as "search" / address_of(text); it returns false if text
// fails to segment into any clusters. Text longer than a page is cut to its
// first L clusters, so only those appear at the start of the page.
func (lib *Library) SearchForPrefix(text string) (Location, bool) {
	indices, ok := lib.alphabet.Segment(text)
	if !ok || len(indices) == 0 {
		debugf("SearchForPrefix(%q): unsegmentable or empty\n", text)
		return Location{}, false
	}

	padded := make([]int, ClustersPerPage)
	copy(padded, indices)

	content := lib.bijection.IndicesToBigInt(padded)
	raw := lib.bijection.ContentToAddress(content)
	return LocationFromRaw(raw), true
}

// SearchAtRandomPosition finds a location whose page contains text at a
// uniformly random offset, with independently random clusters elsewhere on
// the page. It fails if text is unsegmentable, empty, or as long as or
// longer than a page.
func (lib *Library) SearchAtRandomPosition(text string) (Location, bool) {
	indices, ok := lib.alphabet.Segment(text)
	if !ok || len(indices) == 0 || len(indices) >= ClustersPerPage {
		debugf("SearchAtRandomPosition(%q): unsegmentable, empty, or too long\n", text)
		return Location{}, false
	}

	maxPosition := ClustersPerPage - len(indices)
	position := rand.Intn(maxPosition + 1)

	content := make([]int, ClustersPerPage)
	alphabetSize := lib.alphabet.Size()
	for i := 0; i < position; i++ {
		content[i] = rand.Intn(alphabetSize)
	}
	copy(content[position:], indices)
	for i := position + len(indices); i < ClustersPerPage; i++ {
		content[i] = rand.Intn(alphabetSize)
	}

	c := lib.bijection.IndicesToBigInt(content)
	raw := lib.bijection.ContentToAddress(c)
	return LocationFromRaw(raw), true
}

// RandomPage samples a page approximately uniformly from the whole address
// space, by concatenating enough random 63-bit words to exceed M's bit
// length and reducing the result mod M.
func (lib *Library) RandomPage() Page {
	modulus := lib.bijection.Modulus()

	words := modulus.BitLen()/63 + 2
	raw := new(big.Int)
	word := new(big.Int)
	for i := 0; i < words; i++ {
		raw.Lsh(raw, 63)
		word.SetInt64(rand.Int63())
		raw.Or(raw, word)
	}
	raw.Mod(raw, modulus)

	return lib.renderPage(LocationFromRaw(raw))
}

// Verify reports whether the page at loc begins with expectedPrefix.
func (lib *Library) Verify(loc Location, expectedPrefix string) bool {
	page := lib.renderPage(loc)
	return strings.HasPrefix(page.RawContent, expectedPrefix)
}

// NextPage renders the page immediately following loc.
func (lib *Library) NextPage(loc Location) Page {
	return lib.renderPage(loc.Next())
}

// PreviousPage renders the page immediately before loc, and false only
// when loc is the zero address.
func (lib *Library) PreviousPage(loc Location) (Page, bool) {
	prev, ok := loc.Previous()
	if !ok {
		return Page{}, false
	}
	return lib.renderPage(prev), true
}

// MandiraAsKannada renders mandira as Kannada text: the base-|Σ| expansion
// to 399 digits, with leading zero-clusters (spaces) trimmed down to the
// first non-zero digit. If mandira is zero, every digit is zero and none
// of them is trimmed — the full 399-space string is returned, matching the
// original's position().unwrap_or(0). It returns false without computing
// anything if mandira is too large to render cheaply (10,000 bits or more).
func (lib *Library) MandiraAsKannada(mandira *big.Int) (string, bool) {
	if mandira.BitLen() >= mandiraDisplayBitGuard {
		return "", false
	}
	indices := lib.bijection.BigIntToIndices(mandira, mandiraKannadaDigits)
	start := 0
	for i, idx := range indices {
		if idx != 0 {
			start = i
			break
		}
	}
	return lib.alphabet.IndicesToString(indices[start:]), true
}

// ParseAddress accepts pure hex, a hierarchical address with a hex or
// Kannada mandira field, or a pure-Kannada string (interpreted as a
// mandira with gode=patti=pustaka=puta=1). "Contains Kannada" is decided
// by the presence of any code point in U+0C80..U+0CFF.
func (lib *Library) ParseAddress(s string) (Location, error) {
	if strings.TrimSpace(s) == "" {
		return Location{}, fmt.Errorf("mantapa: empty address")
	}

	if !strings.Contains(s, ".") {
		if hasKannada(s) {
			mandira, err := lib.kannadaToBigInt(s)
			if err != nil {
				return Location{}, err
			}
			h := HierarchicalAddress{Mandira: mandira, Gode: 1, Patti: 1, Pustaka: 1, Puta: 1}
			return LocationFromHierarchical(h), nil
		}
		raw, err := ParseHex(s)
		if err != nil {
			return Location{}, err
		}
		return LocationFromRaw(raw), nil
	}

	mandiraStr, gode, patti, pustaka, puta, err := splitHierarchicalTail(s)
	if err != nil {
		return Location{}, err
	}

	var mandira *big.Int
	if hasKannada(mandiraStr) {
		mandira, err = lib.kannadaToBigInt(mandiraStr)
	} else {
		mandira, err = ParseHex(mandiraStr)
	}
	if err != nil {
		return Location{}, err
	}

	h := HierarchicalAddress{Mandira: mandira, Gode: gode, Patti: patti, Pustaka: pustaka, Puta: puta}
	return LocationFromHierarchical(h), nil
}

func (lib *Library) kannadaToBigInt(s string) (*big.Int, error) {
	indices, ok := lib.alphabet.Segment(s)
	if !ok || len(indices) == 0 {
		return nil, fmt.Errorf("mantapa: %q is not a segmentable Kannada mandira", s)
	}
	return lib.bijection.IndicesToBigInt(indices), nil
}
