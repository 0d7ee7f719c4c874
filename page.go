// Copyright (c) 2026 The Akshara Mantapa Authors.
// Licensed under the MIT license. See LICENSE in the project root.

package mantapa

import "strings"

// Page is a rendered length-L page: its location, the raw concatenated
// cluster text, the same text wrapped for display, and the underlying
// cluster indices.
type Page struct {
	Location         Location
	RawContent       string
	FormattedContent string
	ClusterIndices   []int
}

// formatContent wraps indices as cluster text, inserting '\n' after every
// ClustersPerLine clusters.
func formatContent(alphabet *Alphabet, indices []int) string {
	var b strings.Builder
	for i, idx := range indices {
		if i > 0 && i%ClustersPerLine == 0 {
			b.WriteByte('\n')
		}
		if cl, ok := alphabet.Get(idx); ok {
			b.WriteString(cl)
		}
	}
	return b.String()
}
