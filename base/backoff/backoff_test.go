package backoff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type backoffSuite struct {
	suite.Suite
}

func (s *backoffSuite) TestExponential() {
	b := NewExponential(time.Millisecond, 3*time.Millisecond)
	s.Equal(time.Millisecond, b.Next)
	s.Require().NoError(b.Wait(context.Background()))
	s.Equal(2*time.Millisecond, b.Next)
	s.Require().NoError(b.Wait(context.Background()))
	s.Equal(3*time.Millisecond, b.Next)
	s.Equal(2, b.Count())

	b.Reset()
	s.Equal(time.Millisecond, b.Next)
	s.Equal(0, b.Count())
}

func (s *backoffSuite) TestLinear() {
	b := NewLinear(time.Millisecond, 0)
	s.Require().NoError(b.Wait(context.Background()))
	s.Equal(2*time.Millisecond, b.Next)
}

func (s *backoffSuite) TestWaitCanceled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b := NewLinear(time.Hour, 0)
	s.ErrorIs(b.Wait(ctx), context.Canceled)
	s.Equal(0, b.Count())
}

func (s *backoffSuite) TestRetry() {
	boom := errors.New("boom")

	calls := 0
	err := Retry(context.Background(), NewLinear(time.Millisecond, 0), 3, nil, func() error {
		calls++
		if calls < 3 {
			return boom
		}
		return nil
	})
	s.NoError(err)
	s.Equal(3, calls)

	calls = 0
	err = Retry(context.Background(), NewLinear(time.Millisecond, 0), 2, nil, func() error {
		calls++
		return boom
	})
	s.ErrorIs(err, boom)
	s.Equal(2, calls)

	calls = 0
	err = Retry(context.Background(), NewLinear(time.Millisecond, 0), 5, func(error) bool { return false }, func() error {
		calls++
		return boom
	})
	s.ErrorIs(err, boom)
	s.Equal(1, calls)
}

func TestBackoffSuite(t *testing.T) {
	suite.Run(t, new(backoffSuite))
}
