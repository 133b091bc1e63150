package ctw

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"slices"
	"strings"
)

// Search describes a single context search of the collector. Searches are
// reported to observers of a tree while it is being built (see WithObserver).
type Search struct {
	Context string // the context searched for
	History string // the history which has been scanned
	Run     string // the symbols following every occurrence of Context
}

// history returns the symbols to be scanned for contexts of length k: the
// tail of length k of the past (or all of it, if it is shorter), followed by
// the sequence.
func (t *Tree) history(k int) []string {
	if k == 0 {
		return t.sequence
	}
	tail := t.past
	if len(tail) > k {
		tail = tail[len(tail)-k:]
	}
	h := make([]string, 0, len(tail)+len(t.sequence))
	h = append(h, tail...)
	return append(h, t.sequence...)
}

// collect returns the symbols which immediately follow an occurrence of ctx
// within the history for contexts of length len(ctx). Occurrences are found
// left to right, including overlapping ones. The empty context matches at
// every position of the sequence.
//
// If the past is shorter than ctx, the first positions of the sequence
// cannot be matched.
func (t *Tree) collect(ctx []string) []string {
	k := len(ctx)
	h := t.history(k)
	var run []string
	for i := k; i < len(h); i++ {
		if slices.Equal(h[i-k:i], ctx) {
			run = append(run, h[i])
		}
	}
	if t.verbose || t.observer != nil {
		search := Search{
			Context: strings.Join(ctx, ""),
			History: strings.Join(h, ""),
			Run:     strings.Join(run, ""),
		}
		if t.verbose {
			T().Infof("Searched %s in %s and got %s.", search.Context, search.History, search.Run)
		}
		if t.observer != nil {
			t.observer(search)
		}
	}
	return run
}

// Collect returns the symbols which immediately follow every occurrence of
// context within the history string, concatenated in the order of their
// occurrence. The history string consists of the last len(context) symbols of
// the past followed by the sequence. For an empty context the history is the
// sequence alone, and Collect("") returns the sequence unchanged.
//
// If context never occurs, Collect returns the empty string.
func (t *Tree) Collect(context string) string {
	if t == nil {
		return ""
	}
	return strings.Join(t.collect(Segment(context)), "")
}
