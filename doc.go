/*
Package ctw computes Context Tree Weighting estimates for symbol sequences.

Context Tree Weighting

Context Tree Weighting (CTW) is a technique for adaptive data compression and
next-symbol prediction. Given a finite alphabet, a past prefix, a sequence and
a maximum context depth D, it builds the complete tree of contexts (runs of
symbols preceding a predicted symbol) of lengths 0…D. Every node carries two
probabilities:

	kt  = probability of the symbols following the node's context,
	      estimated sequentially with a Krichevsky–Trofimov style estimator
	ctw = kt                                     for nodes at depth D
	ctw = ½·kt + ½·∏ child.ctw                   otherwise

The root's ctw value is the probability of the sequence under a mixture over
all Markov models of order 0…D.

From the paper by Willems, Shtarkov and Tjalkens, 1995:

The context-tree weighting method: basic properties

[…] We describe a sequential universal data compression procedure for binary
tree sources that performs the "double mixture." Using a context tree, this
method weights in an efficient recursive way the coding distributions
corresponding to all bounded memory tree sources, and achieves a desirable
coding distribution for tree sources with an unknown model and unknown
parameters. […]

_________________________________________________________________________

This package generalizes the estimator to arbitrary alphabets. Symbols are
user-perceived characters (grapheme clusters), so inputs may be any UTF-8
text. A tree is built once, completely, by New and is immutable afterwards:

	tree, err := ctw.New("10", "1011010", 2)
	if err != nil {
	    …
	}
	fmt.Print(tree)           // one line per context, pre-order
	p := tree.Probability()   // CTW probability of the sequence

Treating grapheme clusters as symbols differs from counting code points for
text with combining marks: "e\u0308" is a single symbol here, not two. The
alphabet, and thus every kt and ctw value, changes accordingly. For inputs
without combining sequences (e.g., ASCII) both views coincide.

Probabilities are accumulated as natural logarithms internally. Long runs
will therefore underflow to 0 when converted to plain probabilities, but never
produce rounding artifacts outside of [0,1].

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ctw

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// CTWError is an error type for the ctw module
type CTWError string

func (e CTWError) Error() string {
	return string(e)
}

// ErrEmptyAlphabet is flagged if both past and sequence are empty. The estimator
// smoothes with a pseudo-count of 1/|alphabet|, which is undefined in this case.
const ErrEmptyAlphabet = CTWError("alphabet is empty; past and sequence must not both be empty")

// ErrInvalidDepth is flagged for negative maximum context depths.
const ErrInvalidDepth = CTWError("context depth must not be negative")

// ErrUnknownSymbol is flagged whenever a symbol is not part of a tree's alphabet.
const ErrUnknownSymbol = CTWError("symbol is not part of the alphabet")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = CTWError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
