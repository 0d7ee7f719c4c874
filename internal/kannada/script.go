// Copyright (c) 2026 The Akshara Mantapa Authors.
// Licensed under the MIT license. See LICENSE in the project root.

// Package kannada holds the raw Kannada script tables and the grapheme
// cluster alphabet built from them. Callers outside this module should go
// through the mantapa package's Alphabet wrapper rather than this package
// directly.
package kannada

// Consonants lists the 36 Kannada consonant letters, in script order.
var Consonants = []rune{
	'ಕ', 'ಖ', 'ಗ', 'ಘ', 'ಙ',
	'ಚ', 'ಛ', 'ಜ', 'ಝ', 'ಞ',
	'ಟ', 'ಠ', 'ಡ', 'ಢ', 'ಣ',
	'ತ', 'ಥ', 'ದ', 'ಧ', 'ನ',
	'ಪ', 'ಫ', 'ಬ', 'ಭ', 'ಮ',
	'ಯ', 'ರ', 'ಱ', 'ಲ', 'ಳ', 'ೞ', 'ವ',
	'ಶ', 'ಷ', 'ಸ', 'ಹ',
}

// Vowels lists the 14 independent Kannada vowels.
var Vowels = []rune{
	'ಅ', 'ಆ', 'ಇ', 'ಈ', 'ಉ', 'ಊ', 'ಋ', 'ೠ', 'ಎ', 'ಏ', 'ಐ', 'ಒ', 'ಓ', 'ಔ',
}

// Matras lists the 13 dependent vowel signs.
var Matras = []rune{
	'ಾ', 'ಿ', 'ೀ', 'ು', 'ೂ', 'ೃ', 'ೄ', 'ೆ', 'ೇ', 'ೈ', 'ೊ', 'ೋ', 'ೌ',
}

// Modifiers are the anusvara and visarga.
var Modifiers = []rune{'ಂ', 'ಃ'}

// Punctuation is the 6 single-character punctuation marks, including the
// leading space, in fixed script-defined order.
var Punctuation = []rune{' ', '.', ',', '!', '?', '।'}

// Halant is the virama, which combines two consonants into a conjunct or
// turns a single consonant "dead" (vowel-less).
const Halant = '್'
