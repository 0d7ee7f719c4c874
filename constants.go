// Copyright (c) 2026 The Akshara Mantapa Authors.
// Licensed under the MIT license. See LICENSE in the project root.

package mantapa

// Frozen constants of the addressing scheme. Changing any of these changes
// the identity of every page and address; they are not configuration.
const (
	// ClustersPerPage is L, the number of grapheme clusters on a page.
	ClustersPerPage = 400

	// ClustersPerLine controls where formatted page content wraps.
	ClustersPerLine = 25

	// PagesPerBook is puta's range size (ಪುಟ).
	PagesPerBook = 410

	// BooksPerShelf is pustaka's range size (ಪುಸ್ತಕ).
	BooksPerShelf = 32

	// ShelvesPerWall is patti's range size (ಪಟ್ಟಿ).
	ShelvesPerWall = 5

	// WallsPerRoom is gode's range size (ಗೋಡೆ).
	WallsPerRoom = 4
)

// k0Literal seeds the search for the bijection's multiplier. Changing it
// changes every page's address; it is part of the on-wire contract.
const k0Literal = "314159265358979323846264338327950288419"

// mandiraKannadaDigits is the fixed digit count used by MandiraAsKannada.
// It is 399, not ClustersPerPage, to preserve display compatibility with
// the original implementation (see SPEC_FULL.md).
const mandiraKannadaDigits = 399

// mandiraDisplayBitGuard bounds the cost of rendering mandira as Kannada
// text; above this many bits the rendering is skipped.
const mandiraDisplayBitGuard = 10000
