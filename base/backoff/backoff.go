package backoff

import (
	"context"
	"math"
	"time"
)

type Strategy interface {
	Duration(count int, start time.Duration) time.Duration
}

type Backoff struct {
	Last     time.Duration
	Next     time.Duration
	start    time.Duration
	limit    time.Duration
	count    int
	strategy Strategy
}

func NewBackoff(strategy Strategy, start time.Duration, limit time.Duration) *Backoff {
	b := Backoff{strategy: strategy, start: start, limit: limit}
	b.Reset()
	return &b
}

func (b *Backoff) Reset() {
	b.count = 0
	b.Last = 0
	b.Next = b.next()
}

// Wait sleeps for Next, or returns ctx.Err() when ctx ends first
func (b *Backoff) Wait(ctx context.Context) error {
	t := time.NewTimer(b.Next)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
	}
	b.count++
	b.Last = b.Next
	b.Next = b.next()
	return nil
}

func (b *Backoff) Count() int {
	return b.count
}

func (b *Backoff) next() time.Duration {
	d := b.strategy.Duration(b.count, b.start)
	if b.limit > 0 && d > b.limit {
		d = b.limit
	}
	return d
}

type exponential struct{}

func (exponential) Duration(count int, start time.Duration) time.Duration {
	return time.Duration(math.Pow(2, float64(count))) * start
}

func NewExponential(start time.Duration, limit time.Duration) *Backoff {
	return NewBackoff(exponential{}, start, limit)
}

type linear struct{}

func (linear) Duration(count int, start time.Duration) time.Duration {
	return time.Duration(count+1) * start
}

func NewLinear(start time.Duration, limit time.Duration) *Backoff {
	return NewBackoff(linear{}, start, limit)
}

// Retry calls fn until it succeeds, retryable reports false or attempts run
// out. The last error is returned.
func Retry(ctx context.Context, b *Backoff, attempts int, retryable func(error) bool, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i == attempts-1 || (retryable != nil && !retryable(err)) {
			break
		}
		if werr := b.Wait(ctx); werr != nil {
			return err
		}
	}
	return err
}
