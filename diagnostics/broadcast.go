/*
Package diagnostics broadcasts context searches of tree construction to
subscribers.

A Broadcaster is handed to ctw.New as an observer. Every search of the context
collector is then published to all subscribers, which receive them
asynchronously on channels of their own:

	b := diagnostics.New()
	done := diagnostics.Report(os.Stderr, b.Subscribe(nil, 16))
	tree, err := ctw.New(past, seq, depth, ctw.WithObserver(b.Observer()))
	b.Close()
	<-done

Broadcasters are safe for concurrent use, i.e. may observe parallel builds.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package diagnostics

import (
	"context"
	"fmt"
	"io"

	"github.com/guiguan/caster"
	"github.com/npillmayer/ctw"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ctw'
func tracer() tracing.Trace {
	return tracing.Select("ctw")
}

// Broadcaster publishes context searches to subscribers.
type Broadcaster struct {
	cast *caster.Caster
}

// New creates a broadcaster. It has to be closed by the client.
func New() *Broadcaster {
	return &Broadcaster{
		cast: caster.New(nil),
	}
}

// Observer returns a function suitable for ctw.WithObserver, publishing every
// search to all current subscribers.
func (b *Broadcaster) Observer() func(ctw.Search) {
	return func(s ctw.Search) {
		if !b.cast.Pub(s) {
			tracer().Errorf("search for %q published to closed broadcaster", s.Context)
		}
	}
}

// Subscribe returns a channel which receives all searches published after
// subscription. The channel is closed when the broadcaster is closed or ctx
// is done. ctx may be nil.
func (b *Broadcaster) Subscribe(ctx context.Context, capacity uint) <-chan ctw.Search {
	out := make(chan ctw.Search, capacity)
	sub, ok := b.cast.Sub(ctx, capacity)
	if !ok {
		close(out)
		return out
	}
	go func() {
		defer close(out)
		for m := range sub {
			if s, ok := m.(ctw.Search); ok {
				out <- s
			}
		}
	}()
	return out
}

// Close closes the broadcaster and all subscriber channels.
func (b *Broadcaster) Close() {
	b.cast.Close()
}

// Report writes every search received on searches to w, one line each, until
// searches is closed. It returns a channel which is closed after the last
// search has been written.
func Report(w io.Writer, searches <-chan ctw.Search) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range searches {
			fmt.Fprintf(w, "Searched %s in %s and got %s.\n", s.Context, s.History, s.Run)
		}
	}()
	return done
}
