package wallet

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/scalp-empire/royalties/base/backoff"
	bCtx "github.com/scalp-empire/royalties/base/ctx"
	"github.com/scalp-empire/royalties/base/log"
	"github.com/scalp-empire/royalties/domain/royalty"
)

const (
	DefaultRpcEndpoint = rpc.MainNetBeta_RPC

	defaultRpcAttempts  = 3
	defaultRpcRetryWait = 500 * time.Millisecond
	maxRpcRetryWait     = 4 * time.Second
)

// TokenAccountsGetter is the slice of *rpc.Client the reader needs
type TokenAccountsGetter interface {
	GetTokenAccountsByOwner(
		ctx context.Context,
		owner solana.PublicKey,
		conf *rpc.GetTokenAccountsConfig,
		opts *rpc.GetTokenAccountsOpts,
	) (*rpc.GetTokenAccountsResult, error)
}

type parsedTokenAccount struct {
	Parsed struct {
		Info struct {
			Mint        string `json:"mint"`
			TokenAmount struct {
				Amount   string `json:"amount"`
				Decimals int    `json:"decimals"`
			} `json:"tokenAmount"`
		} `json:"info"`
	} `json:"parsed"`
}

type inventoryReader struct {
	rpc       TokenAccountsGetter
	attempts  int
	retryWait time.Duration
}

type InventoryOptionFunc func(*inventoryReader)

// WithRetry bounds the RPC attempts, waiting exponentially from wait between them
func WithRetry(attempts int, wait time.Duration) InventoryOptionFunc {
	return func(r *inventoryReader) {
		r.attempts = attempts
		r.retryWait = wait
	}
}

func NewInventoryReader(getter TokenAccountsGetter, opts ...InventoryOptionFunc) royalty.InventoryReader {
	r := &inventoryReader{
		rpc:       getter,
		attempts:  defaultRpcAttempts,
		retryWait: defaultRpcRetryWait,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewRpcInventoryReader talks to endpoint, DefaultRpcEndpoint when empty
func NewRpcInventoryReader(endpoint string, opts ...InventoryOptionFunc) royalty.InventoryReader {
	if endpoint == "" {
		endpoint = DefaultRpcEndpoint
	}
	return NewInventoryReader(rpc.New(endpoint), opts...)
}

// ListOwnedMints returns the mints of SPL token accounts holding exactly one
// indivisible token, deduplicated in RPC order.
func (r *inventoryReader) ListOwnedMints(ctx bCtx.Ctx, owner solana.PublicKey) ([]royalty.Mint, error) {
	var res *rpc.GetTokenAccountsResult
	b := backoff.NewExponential(r.retryWait, maxRpcRetryWait)
	retryable := func(error) bool { return ctx.Err() == nil }
	err := backoff.Retry(ctx, b, r.attempts, retryable, func() error {
		var err error
		res, err = r.rpc.GetTokenAccountsByOwner(
			ctx,
			owner,
			&rpc.GetTokenAccountsConfig{ProgramId: solana.TokenProgramID.ToPointer()},
			&rpc.GetTokenAccountsOpts{
				Commitment: rpc.CommitmentConfirmed,
				Encoding:   solana.EncodingJSONParsed,
			},
		)
		if err != nil {
			ctx.WithFields(log.Fields{
				"owner":   owner,
				"attempt": b.Count() + 1,
				"err":     err,
			}).Warn("rpc.GetTokenAccountsByOwner attempt failed")
		}
		return err
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"owner": owner,
			"err":   err,
		}).Error("rpc.GetTokenAccountsByOwner failed")
		return nil, err
	}

	seen := map[string]struct{}{}
	out := []royalty.Mint{}
	for _, v := range res.Value {
		if v == nil || v.Account.Data == nil {
			continue
		}
		acc := parsedTokenAccount{}
		if err := json.Unmarshal(v.Account.Data.GetRawJSON(), &acc); err != nil {
			ctx.WithFields(log.Fields{
				"account": v.Pubkey,
				"err":     err,
			}).Warn("skipping unparsable token account")
			continue
		}
		info := acc.Parsed.Info
		mint := strings.TrimSpace(info.Mint)
		if mint == "" || info.TokenAmount.Decimals != 0 || strings.TrimSpace(info.TokenAmount.Amount) != "1" {
			continue
		}
		if _, ok := seen[mint]; ok {
			continue
		}
		seen[mint] = struct{}{}
		out = append(out, royalty.Mint(mint))
	}
	return out, nil
}
