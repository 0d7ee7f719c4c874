// Copyright (c) 2026 The Akshara Mantapa Authors.
// Licensed under the MIT license. See LICENSE in the project root.

package mantapa

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

var bigOne = big.NewInt(1)

// HierarchicalAddress is the room.wall.shelf.book.page (mandira, gode,
// patti, pustaka, puta) decomposition of a raw address. Gode is in [1,4],
// Patti in [1,5], Pustaka in [1,32], Puta in [1,410]; Mandira is any
// non-negative integer.
type HierarchicalAddress struct {
	Mandira *big.Int
	Gode    int
	Patti   int
	Pustaka int
	Puta    int
}

// ZeroHierarchical is the hierarchical form of the raw address 0.
func ZeroHierarchical() HierarchicalAddress {
	return HierarchicalAddress{Mandira: big.NewInt(0), Gode: 1, Patti: 1, Pustaka: 1, Puta: 1}
}

// ToRaw converts the hierarchical address to its raw integer form:
//
//	A = (((mandira*4 + (gode-1))*5 + (patti-1))*32 + (pustaka-1))*410 + (puta-1)
func (h HierarchicalAddress) ToRaw() *big.Int {
	a := new(big.Int).Set(h.Mandira)
	a.Mul(a, big.NewInt(WallsPerRoom))
	a.Add(a, big.NewInt(int64(h.Gode-1)))
	a.Mul(a, big.NewInt(ShelvesPerWall))
	a.Add(a, big.NewInt(int64(h.Patti-1)))
	a.Mul(a, big.NewInt(BooksPerShelf))
	a.Add(a, big.NewInt(int64(h.Pustaka-1)))
	a.Mul(a, big.NewInt(PagesPerBook))
	a.Add(a, big.NewInt(int64(h.Puta-1)))
	return a
}

// HierarchicalFromRaw decomposes a non-negative raw address into its
// hierarchical form, least-significant field first.
func HierarchicalFromRaw(raw *big.Int) HierarchicalAddress {
	a := new(big.Int).Set(raw)
	mod := new(big.Int)

	a.DivMod(a, big.NewInt(PagesPerBook), mod)
	puta := int(mod.Int64()) + 1

	a.DivMod(a, big.NewInt(BooksPerShelf), mod)
	pustaka := int(mod.Int64()) + 1

	a.DivMod(a, big.NewInt(ShelvesPerWall), mod)
	patti := int(mod.Int64()) + 1

	a.DivMod(a, big.NewInt(WallsPerRoom), mod)
	gode := int(mod.Int64()) + 1

	return HierarchicalAddress{Mandira: a, Gode: gode, Patti: patti, Pustaka: pustaka, Puta: puta}
}

// Next returns the hierarchical address immediately following h, carrying
// puta into pustaka into patti into gode into mandira as each field
// overflows its range.
func (h HierarchicalAddress) Next() HierarchicalAddress {
	raw := h.ToRaw()
	raw.Add(raw, bigOne)
	return HierarchicalFromRaw(raw)
}

// Previous returns the hierarchical address immediately before h, and
// false only when h is the global zero address.
func (h HierarchicalAddress) Previous() (HierarchicalAddress, bool) {
	raw := h.ToRaw()
	if raw.Sign() == 0 {
		return HierarchicalAddress{}, false
	}
	raw.Sub(raw, bigOne)
	return HierarchicalFromRaw(raw), true
}

// hexOf renders n as lowercase hex, with "0" for zero and no "0x" prefix.
func hexOf(n *big.Int) string {
	if n.Sign() == 0 {
		return "0"
	}
	return strings.ToLower(n.Text(16))
}

// Display renders h as "<mandira_hex>.<gode>.<patti>.<pustaka>.<puta>".
func (h HierarchicalAddress) Display() string {
	return fmt.Sprintf("%s.%d.%d.%d.%d", hexOf(h.Mandira), h.Gode, h.Patti, h.Pustaka, h.Puta)
}

// Location pairs a raw address with its hierarchical decomposition; the
// two are always kept consistent.
type Location struct {
	Raw          *big.Int
	Hierarchical HierarchicalAddress
}

// LocationFromRaw builds a Location from a raw address, computing its
// canonical hierarchical decomposition.
func LocationFromRaw(raw *big.Int) Location {
	r := new(big.Int).Set(raw)
	return Location{Raw: r, Hierarchical: HierarchicalFromRaw(r)}
}

// LocationFromHierarchical builds a Location from a hierarchical address,
// recomputing the hierarchical decomposition from the raw value so the
// result is always canonical regardless of how the caller built h.
func LocationFromHierarchical(h HierarchicalAddress) Location {
	raw := h.ToRaw()
	return Location{Raw: raw, Hierarchical: HierarchicalFromRaw(raw)}
}

// Hex is the lowercase hexadecimal rendering of the raw address.
func (l Location) Hex() string { return hexOf(l.Raw) }

// Display is the hierarchical rendering of the location.
func (l Location) Display() string { return l.Hierarchical.Display() }

// Next returns the location immediately following l.
func (l Location) Next() Location {
	return LocationFromHierarchical(l.Hierarchical.Next())
}

// Previous returns the location immediately before l, and false only when
// l is the global zero address.
func (l Location) Previous() (Location, bool) {
	h, ok := l.Hierarchical.Previous()
	if !ok {
		return Location{}, false
	}
	return LocationFromHierarchical(h), true
}

// ParseHex parses a lowercase- or uppercase-hex raw address. "0" parses to
// the zero address.
func ParseHex(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("mantapa: empty hex address")
	}
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("mantapa: invalid hex address %q", s)
	}
	if n.Sign() < 0 {
		return nil, fmt.Errorf("mantapa: negative address %q", s)
	}
	return n, nil
}

// splitHierarchicalTail splits a hierarchical display string into its
// mandira field (everything before the fourth-from-last '.') and the four
// trailing decimal fields, validating each field's range.
func splitHierarchicalTail(s string) (mandiraStr string, gode, patti, pustaka, puta int, err error) {
	parts := strings.Split(s, ".")
	if len(parts) < 5 {
		err = fmt.Errorf("mantapa: hierarchical address %q needs at least 5 fields", s)
		return
	}

	tail := parts[len(parts)-4:]
	mandiraStr = strings.Join(parts[:len(parts)-4], ".")

	if gode, err = parseRangedField(tail[0], "gode", 1, WallsPerRoom); err != nil {
		return
	}
	if patti, err = parseRangedField(tail[1], "patti", 1, ShelvesPerWall); err != nil {
		return
	}
	if pustaka, err = parseRangedField(tail[2], "pustaka", 1, BooksPerShelf); err != nil {
		return
	}
	if puta, err = parseRangedField(tail[3], "puta", 1, PagesPerBook); err != nil {
		return
	}
	return
}

func parseRangedField(s, name string, lo, hi int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("mantapa: %s field %q is not an integer", name, s)
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("mantapa: %s field %d out of range [%d,%d]", name, v, lo, hi)
	}
	return v, nil
}

// ParseHierarchical parses a hierarchical display string whose mandira
// field is hex (case-insensitive). For Kannada mandira fields, use
// Library.ParseAddress, which has access to the alphabet needed to
// segment it.
func ParseHierarchical(s string) (HierarchicalAddress, error) {
	mandiraStr, gode, patti, pustaka, puta, err := splitHierarchicalTail(s)
	if err != nil {
		return HierarchicalAddress{}, err
	}

	mandira, err := ParseHex(mandiraStr)
	if err != nil {
		return HierarchicalAddress{}, fmt.Errorf("mantapa: invalid mandira field %q: %w", mandiraStr, err)
	}

	return HierarchicalAddress{Mandira: mandira, Gode: gode, Patti: patti, Pustaka: pustaka, Puta: puta}, nil
}

// hasKannada reports whether s contains any Kannada code point
// (U+0C80..U+0CFF).
func hasKannada(s string) bool {
	for _, r := range s {
		if r >= 0x0C80 && r <= 0x0CFF {
			return true
		}
	}
	return false
}
