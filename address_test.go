// Copyright (c) 2026 The Akshara Mantapa Authors.
// Licensed under the MIT license. See LICENSE in the project root.

package mantapa

import (
	"math/big"
	"testing"
)

func TestHierarchicalRoundTrip(t *testing.T) {
	// H = (mandira=0xabc, gode=2, patti=3, pustaka=10, puta=77)
	mandira, _ := new(big.Int).SetString("abc", 16)
	h := HierarchicalAddress{Mandira: mandira, Gode: 2, Patti: 3, Pustaka: 10, Puta: 77}

	raw := h.ToRaw()
	want := new(big.Int)
	want.SetString("abc", 16)
	want.Mul(want, big.NewInt(4))
	want.Add(want, big.NewInt(1)) // gode-1
	want.Mul(want, big.NewInt(5))
	want.Add(want, big.NewInt(2)) // patti-1
	want.Mul(want, big.NewInt(32))
	want.Add(want, big.NewInt(9)) // pustaka-1
	want.Mul(want, big.NewInt(410))
	want.Add(want, big.NewInt(76)) // puta-1

	if raw.Cmp(want) != 0 {
		t.Fatalf("ToRaw() = %s, want %s", raw, want)
	}

	back := HierarchicalFromRaw(raw)
	if back.Mandira.Cmp(mandira) != 0 || back.Gode != 2 || back.Patti != 3 ||
		back.Pustaka != 10 || back.Puta != 77 {
		t.Fatalf("HierarchicalFromRaw(ToRaw(h)) = %+v, want %+v", back, h)
	}
}

func TestZeroAddressIsCanonical(t *testing.T) {
	z := ZeroHierarchical()
	if z.ToRaw().Sign() != 0 {
		t.Errorf("ZeroHierarchical().ToRaw() = %s, want 0", z.ToRaw())
	}
	if z.Gode != 1 || z.Patti != 1 || z.Pustaka != 1 || z.Puta != 1 {
		t.Errorf("ZeroHierarchical() = %+v, want all-1 fields", z)
	}
}

func TestNextCarries(t *testing.T) {
	h := HierarchicalAddress{
		Mandira: big.NewInt(5), Gode: WallsPerRoom, Patti: ShelvesPerWall,
		Pustaka: BooksPerShelf, Puta: PagesPerBook,
	}
	next := h.Next()
	if next.Mandira.Cmp(big.NewInt(6)) != 0 || next.Gode != 1 || next.Patti != 1 ||
		next.Pustaka != 1 || next.Puta != 1 {
		t.Errorf("Next() at top of book = %+v, want mandira=6, all-1 fields", next)
	}
}

func TestPreviousFailsOnlyAtZero(t *testing.T) {
	z := ZeroHierarchical()
	if _, ok := z.Previous(); ok {
		t.Error("Previous() on zero address succeeded, want failure")
	}

	one := z.Next()
	back, ok := one.Previous()
	if !ok {
		t.Fatal("Previous() on address 1 failed")
	}
	if back.ToRaw().Sign() != 0 {
		t.Errorf("Previous(Next(zero)) raw = %s, want 0", back.ToRaw())
	}
}

func TestLocationNextRawDiffersByOne(t *testing.T) {
	loc := LocationFromRaw(big.NewInt(123456))
	next := loc.Next()
	diff := new(big.Int).Sub(next.Raw, loc.Raw)
	if diff.Cmp(bigOne) != 0 {
		t.Errorf("raw difference between consecutive locations = %s, want 1", diff)
	}
}

func TestHexRendering(t *testing.T) {
	if got := LocationFromRaw(big.NewInt(0)).Hex(); got != "0" {
		t.Errorf("Hex() of zero = %q, want \"0\"", got)
	}
	loc := LocationFromRaw(big.NewInt(0x4e))
	if got := loc.Hex(); got != "4e" {
		t.Errorf("Hex() = %q, want \"4e\"", got)
	}
}

func TestParseHexRoundTrip(t *testing.T) {
	raw, err := ParseHex("4E")
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if raw.Cmp(big.NewInt(0x4e)) != 0 {
		t.Errorf("ParseHex(\"4E\") = %s, want 78", raw)
	}
	loc := LocationFromRaw(raw)
	if loc.Hex() != "4e" {
		t.Errorf("round trip hex = %q, want \"4e\"", loc.Hex())
	}
}

func TestParseHexRejectsGarbage(t *testing.T) {
	if _, err := ParseHex("not-hex"); err == nil {
		t.Error("ParseHex(\"not-hex\") succeeded, want error")
	}
	if _, err := ParseHex(""); err == nil {
		t.Error("ParseHex(\"\") succeeded, want error")
	}
}

func TestParseHierarchicalHexMandira(t *testing.T) {
	h, err := ParseHierarchical("abc.2.3.10.77")
	if err != nil {
		t.Fatalf("ParseHierarchical: %v", err)
	}
	want, _ := new(big.Int).SetString("abc", 16)
	if h.Mandira.Cmp(want) != 0 || h.Gode != 2 || h.Patti != 3 || h.Pustaka != 10 || h.Puta != 77 {
		t.Errorf("ParseHierarchical(\"abc.2.3.10.77\") = %+v", h)
	}
}

func TestParseHierarchicalRejectsOutOfRangeField(t *testing.T) {
	if _, err := ParseHierarchical("0.5.1.1.1"); err == nil {
		t.Error("ParseHierarchical with gode=5 succeeded, want error (gode in [1,4])")
	}
}

func TestParseHierarchicalZeroMandiraLiteral(t *testing.T) {
	h, err := ParseHierarchical("0.1.1.1.1")
	if err != nil {
		t.Fatalf("ParseHierarchical: %v", err)
	}
	if h.Mandira.Sign() != 0 {
		t.Errorf("mandira = %s, want 0", h.Mandira)
	}
}

func TestHasKannada(t *testing.T) {
	if !hasKannada("ಕ") {
		t.Error("hasKannada(\"ಕ\") = false, want true")
	}
	if hasKannada("abc.1.2.3.4") {
		t.Error("hasKannada(\"abc.1.2.3.4\") = true, want false")
	}
}
