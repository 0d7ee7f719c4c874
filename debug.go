// Copyright (c) 2026 The Akshara Mantapa Authors.
// Licensed under the MIT license. See LICENSE in the project root.

package mantapa

import (
	"fmt"
	"io"
)

// Debug enables library debug logging by setting it to an io.Writer.
// Disable debugging by setting it back to nil (the default value).
var Debug io.Writer

// debugf prints to the Debug io.Writer if it isn't nil.
func debugf(format string, a ...interface{}) {
	if Debug == nil {
		return
	}

	fmt.Fprintf(Debug, "dbg: ")
	fmt.Fprintf(Debug, format, a...)
}
