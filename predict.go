package ctw

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"math"
	"strings"
)

// Predict returns the CTW probability of symbol being the next symbol after
// the sequence. It is the ratio
//
//	P(sequence + symbol) / P(sequence)
//
// where the numerator is computed by a tree for the extended sequence, using
// the same past, depth and alphabet order.
//
// Predict returns ErrUnknownSymbol if symbol is not part of the alphabet.
func (t *Tree) Predict(symbol string) (float64, error) {
	if !t.alpha.Contains(symbol) {
		return 0, fmt.Errorf("cannot predict %q: %w", symbol, ErrUnknownSymbol)
	}
	ext, err := t.extend(symbol)
	if err != nil {
		return 0, err
	}
	return math.Exp(ext.root.logCTW - t.root.logCTW), nil
}

// PredictAll returns predictions for every symbol of the alphabet. The
// predictions sum up to 1, up to rounding errors.
func (t *Tree) PredictAll() (map[string]float64, error) {
	p := make(map[string]float64, t.alpha.Size())
	for _, x := range t.alpha.symbols {
		px, err := t.Predict(x)
		if err != nil {
			return nil, err
		}
		p[x] = px
	}
	return p, nil
}

// extend builds a tree for the sequence extended by symbol. Diagnostics are
// not repeated for the extended tree.
func (t *Tree) extend(symbol string) (*Tree, error) {
	alpha := t.alpha
	opts := []Option{
		Parallel(t.parallel),
		WithOrder(func(a, b string) int {
			i, _ := alpha.Index(a)
			j, _ := alpha.Index(b)
			return i - j
		}),
	}
	seq := strings.Join(t.sequence, "") + symbol
	return New(strings.Join(t.past, ""), seq, t.depth, opts...)
}
