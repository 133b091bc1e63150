package ctw

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"slices"
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
)

var setupGraphemes sync.Once

// Segment splits a string into symbols. A symbol is a user-perceived character,
// i.e. an extended grapheme cluster according to UAX#29. For ASCII text every
// byte is a symbol of its own.
func Segment(s string) []string {
	if s == "" {
		return nil
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(s)
	symbols := make([]string, gstr.Len())
	for i := range symbols {
		symbols[i] = gstr.Nth(i)
	}
	return symbols
}

// Alphabet is the set of distinct symbols occurring in the past or in the
// sequence of a context tree. It is immutable after creation.
//
// Although an alphabet is a set, it has a well-defined iteration order. The
// default order is ascending by symbol (byte-wise), making tree traversals
// and printed output deterministic. No computed probability depends on the
// order.
type Alphabet struct {
	symbols []string       // symbols in iteration order
	index   map[string]int // symbol → position within symbols
}

// NewAlphabet creates the alphabet of symbols found in past and sequence.
// It returns ErrEmptyAlphabet if both are empty.
func NewAlphabet(past, sequence string) (*Alphabet, error) {
	return newAlphabet(Segment(past), Segment(sequence), strings.Compare)
}

func newAlphabet(past, sequence []string, order func(a, b string) int) (*Alphabet, error) {
	seen := make(map[string]struct{}, 8)
	for _, s := range past {
		seen[s] = struct{}{}
	}
	for _, s := range sequence {
		seen[s] = struct{}{}
	}
	if len(seen) == 0 {
		return nil, ErrEmptyAlphabet
	}
	alpha := &Alphabet{
		symbols: make([]string, 0, len(seen)),
		index:   make(map[string]int, len(seen)),
	}
	for s := range seen {
		alpha.symbols = append(alpha.symbols, s)
	}
	if order == nil {
		order = strings.Compare
	}
	slices.SortFunc(alpha.symbols, order)
	for i, s := range alpha.symbols {
		alpha.index[s] = i
	}
	return alpha, nil
}

// Size returns the number of symbols in the alphabet.
func (alpha *Alphabet) Size() int {
	if alpha == nil {
		return 0
	}
	return len(alpha.symbols)
}

// Symbols returns the symbols of the alphabet in iteration order.
// The returned slice is a copy.
func (alpha *Alphabet) Symbols() []string {
	if alpha == nil {
		return nil
	}
	return slices.Clone(alpha.symbols)
}

// Contains reports whether symbol is part of the alphabet.
func (alpha *Alphabet) Contains(symbol string) bool {
	_, ok := alpha.Index(symbol)
	return ok
}

// Index returns the position of symbol in the alphabet's iteration order.
func (alpha *Alphabet) Index(symbol string) (int, bool) {
	if alpha == nil {
		return -1, false
	}
	i, ok := alpha.index[symbol]
	if !ok {
		return -1, false
	}
	return i, true
}

func (alpha *Alphabet) String() string {
	if alpha == nil {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, s := range alpha.symbols {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('"')
		b.WriteString(s)
		b.WriteByte('"')
	}
	b.WriteByte('}')
	return b.String()
}
