/*
Package textfile provides API helpers to load UTF-8 text files as inputs for
context trees, i.e. as past or sequence.

Files are read completely and synchronously. Line endings are symbols like
any other, with the exception of a single trailing newline, which editors
tend to add silently and which will be dropped if requested.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ctw'
func tracer() tracing.Trace {
	return tracing.Select("ctw")
}
