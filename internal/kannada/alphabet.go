// Copyright (c) 2026 The Akshara Mantapa Authors.
// Licensed under the MIT license. See LICENSE in the project root.

package kannada

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Alphabet enumerates the valid Kannada grapheme clusters in canonical
// construction order. Index 0 is always the single space, also used as
// zero-padding when encoding short queries. Size() is an output of this
// construction, not a constant anyone should hard-code.
type Alphabet struct {
	clusters        []string
	index           map[string]int
	maxClusterRunes int
}

// New builds the alphabet: leading space, punctuation, vowels (+modifiers),
// bare consonants, consonant+matra(+modifier)/+modifier, dead consonants,
// two-consonant conjuncts (+matra/+modifier), dead conjuncts. The order is
// part of the bijection's contract; it must never be reshuffled.
func New() *Alphabet {
	clusters := make([]string, 0, 1+5+42+36+1476+36+54432+1296)

	clusters = append(clusters, " ")

	for _, p := range Punctuation {
		if p == ' ' {
			continue
		}
		clusters = append(clusters, string(p))
	}

	for _, v := range Vowels {
		clusters = append(clusters, string(v))
		for _, m := range Modifiers {
			clusters = append(clusters, string(v)+string(m))
		}
	}

	for _, c := range Consonants {
		clusters = append(clusters, string(c))
	}

	for _, c := range Consonants {
		for _, mat := range Matras {
			clusters = append(clusters, string(c)+string(mat))
			for _, m := range Modifiers {
				clusters = append(clusters, string(c)+string(mat)+string(m))
			}
		}
		for _, m := range Modifiers {
			clusters = append(clusters, string(c)+string(m))
		}
	}

	for _, c := range Consonants {
		clusters = append(clusters, string(c)+string(Halant))
	}

	for _, c1 := range Consonants {
		for _, c2 := range Consonants {
			base := string(c1) + string(Halant) + string(c2)
			clusters = append(clusters, base)
			for _, mat := range Matras {
				withMatra := base + string(mat)
				clusters = append(clusters, withMatra)
				for _, m := range Modifiers {
					clusters = append(clusters, withMatra+string(m))
				}
			}
			for _, m := range Modifiers {
				clusters = append(clusters, base+string(m))
			}
		}
	}

	for _, c1 := range Consonants {
		for _, c2 := range Consonants {
			clusters = append(clusters, string(c1)+string(Halant)+string(c2)+string(Halant))
		}
	}

	index := make(map[string]int, len(clusters))
	maxRunes := 1
	for i, cl := range clusters {
		index[cl] = i
		if n := utf8.RuneCountInString(cl); n > maxRunes {
			maxRunes = n
		}
	}

	a := &Alphabet{clusters: clusters, index: index, maxClusterRunes: maxRunes}
	a.assertPrefixClosed()
	return a
}

// assertPrefixClosed panics if some cluster has a proper prefix that is not
// itself a cluster. Greedy longest-match segmentation is only correct when
// this holds; the fixed construction above satisfies it by inspection, but
// we check rather than assume it (see SPEC_FULL.md's Open Questions).
func (a *Alphabet) assertPrefixClosed() {
	runes := make([]rune, 0, a.maxClusterRunes)
	for _, cl := range a.clusters {
		runes = runes[:0]
		for _, r := range cl {
			runes = append(runes, r)
		}
		for i := 1; i < len(runes); i++ {
			prefix := string(runes[:i])
			if _, ok := a.index[prefix]; !ok {
				panic(fmt.Sprintf(
					"kannada: cluster %q has non-cluster prefix %q", cl, prefix))
			}
		}
	}
}

// Size returns |Σ|.
func (a *Alphabet) Size() int { return len(a.clusters) }

// Get returns the cluster at index i, or false if i is out of range.
func (a *Alphabet) Get(i int) (string, bool) {
	if i < 0 || i >= len(a.clusters) {
		return "", false
	}
	return a.clusters[i], true
}

// IndexOf returns the index of cluster, or false if it isn't in Σ.
func (a *Alphabet) IndexOf(cluster string) (int, bool) {
	i, ok := a.index[cluster]
	return i, ok
}

// MaxClusterRunes is the longest cluster's length, in Unicode scalar
// values, bounding segmentation look-ahead.
func (a *Alphabet) MaxClusterRunes() int { return a.maxClusterRunes }

// IndicesToString concatenates the clusters named by indices. Indices out
// of range are silently skipped.
func (a *Alphabet) IndicesToString(indices []int) string {
	var b strings.Builder
	for _, idx := range indices {
		if cl, ok := a.Get(idx); ok {
			b.WriteString(cl)
		}
	}
	return b.String()
}

// Segment performs greedy longest-match segmentation of text from the
// left: at each position it tries the longest remaining candidate length
// down to 1, taking the first one that names a cluster. It returns false,
// with no partial result, if any position fails to match at any length.
func (a *Alphabet) Segment(text string) ([]int, bool) {
	runes := []rune(text)
	var result []int
	pos := 0

	for pos < len(runes) {
		remaining := len(runes) - pos
		maxLen := a.maxClusterRunes
		if remaining < maxLen {
			maxLen = remaining
		}

		matched := false
		for l := maxLen; l >= 1; l-- {
			candidate := string(runes[pos : pos+l])
			if idx, ok := a.index[candidate]; ok {
				result = append(result, idx)
				pos += l
				matched = true
				break
			}
		}

		if !matched {
			return nil, false
		}
	}

	return result, true
}
