package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestWithValue() {
	bg := Background()
	ctx := WithValue(bg, "mint", "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU")
	ts.Equal("7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU", Value(ctx, "mint"))
	ts.Nil(Value(bg, "mint"))
}

func (ts *testsuite) TestWithValues() {
	bg := Background()
	ctx := WithValues(bg, map[string]interface{}{
		"attemptId": "a1",
		"state":     "Idle",
	})
	ts.Equal("a1", Value(ctx, "attemptId"))
	ts.Equal("Idle", Value(ctx, "state"))
}

func (ts *testsuite) TestWithCancel() {
	bg := Background()
	ctx, cancel := WithCancel(bg)
	defer cancel()
	after100Ms := func(ctx context.Context) bool {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(100 * time.Millisecond):
			return true
		}
	}
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	ts.False(after100Ms(ctx))
}

func (ts *testsuite) TestTimeout() {
	bg := Background()
	ctx, cancel := WithTimeout(bg, 10*time.Millisecond)
	defer cancel()
	<-ctx.Done()
	ts.Equal(context.DeadlineExceeded, ctx.Err())
}

func (ts *testsuite) TestZeroTimeoutNeverExpires() {
	ctx, cancel := WithTimeout(Background(), 0)
	_, hasDeadline := ctx.Deadline()
	ts.False(hasDeadline)
	cancel()
	ts.Equal(context.Canceled, ctx.Err())
}
