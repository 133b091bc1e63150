package ctw

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"math"
)

// Estimator assigns probabilities to symbols given a run of prior observations.
//
// It is an additive smoothing estimator: the probability of symbol x after a
// run of n symbols, out of which c are equal to x, is
//
//	(c + 1/|A|) / (n + 1)
//
// where |A| is the size of the alphabet. This generalizes the binary
// Krichevsky–Trofimov estimator, which is recovered for |A| = 2.
type Estimator struct {
	pseudo float64 // pseudo-count 1/|A|
}

// NewEstimator creates an estimator for an alphabet of the given size.
// size must be positive.
func NewEstimator(size int) Estimator {
	assert(size > 0, "estimator requires a non-empty alphabet")
	return Estimator{pseudo: 1.0 / float64(size)}
}

// ProbabilityOfSymbol returns the probability assigned to symbol after having
// observed the run prior.
func (est Estimator) ProbabilityOfSymbol(prior []string, symbol string) float64 {
	occ := 0
	for _, s := range prior {
		if s == symbol {
			occ++
		}
	}
	return est.conditional(occ, len(prior))
}

func (est Estimator) conditional(occ, n int) float64 {
	return (float64(occ) + est.pseudo) / (float64(n) + 1.0)
}

// ProbabilityOfString returns the sequential probability of observing run,
// i.e. the product of the probabilities of every symbol given all symbols
// preceding it. An empty run has probability 1.
func (est Estimator) ProbabilityOfString(run []string) float64 {
	return math.Exp(est.LogProbabilityOfString(run))
}

// LogProbabilityOfString returns the natural logarithm of ProbabilityOfString(run).
//
// Counts are tracked incrementally, so this is linear in the length of run.
func (est Estimator) LogProbabilityOfString(run []string) float64 {
	counts := make(map[string]int, 4)
	logp := 0.0
	for n, symbol := range run {
		logp += math.Log(est.conditional(counts[symbol], n))
		counts[symbol]++
	}
	return logp
}

// mix returns log(½·exp(a) + ½·exp(b)), never exceeding 0 for arguments ≤ 0.
func mix(a, b float64) float64 {
	if a < b {
		a, b = b, a
	}
	if math.IsInf(b, -1) {
		return a - math.Ln2
	}
	m := a + math.Log1p(math.Exp(b-a)) - math.Ln2
	return math.Min(m, 0)
}
