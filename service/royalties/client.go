package royalties

import (
	"net/http"
	"time"

	bCtx "github.com/scalp-empire/royalties/base/ctx"
	"github.com/scalp-empire/royalties/base/env"
	"github.com/scalp-empire/royalties/domain/royalty"
)

const (
	DefaultEndpoint = "https://royalties.scalp-empire.com/v1"
	DefaultTimeout  = 30 * time.Second

	apiKeyHeader = "x-api-key"

	defaultPayProofsLimit = 100
	maxPayProofsLimit     = 1000
)

type GetPayProofsOptions struct {
	// inclusive lower bound on the proof timestamp
	Since *time.Time
	Limit int
}

type GetPayProofsOptionsFunc func(*GetPayProofsOptions) error

func ParseGetPayProofsOptions(opts ...GetPayProofsOptionsFunc) (GetPayProofsOptions, error) {
	opt := GetPayProofsOptions{Limit: defaultPayProofsLimit}
	for _, f := range opts {
		if err := f(&opt); err != nil {
			return opt, err
		}
	}
	if opt.Limit < 1 {
		opt.Limit = 1
	}
	if opt.Limit > maxPayProofsLimit {
		opt.Limit = maxPayProofsLimit
	}
	return opt, nil
}

func WithSince(t time.Time) GetPayProofsOptionsFunc {
	return func(opt *GetPayProofsOptions) error {
		opt.Since = &t
		return nil
	}
}

// WithLimit is clamped to [1, 1000]
func WithLimit(limit int) GetPayProofsOptionsFunc {
	return func(opt *GetPayProofsOptions) error {
		opt.Limit = limit
		return nil
	}
}

// Client talks to the royalty ledger service. Every method either returns
// the decoded answer or an error; a *royalty.TransportError stands for an
// absent answer (network failure, non 2xx status or undecodable body), which
// is distinct from an empty list.
//
// SetEndpoint and SetApiKey must not be called while requests are in flight.
type Client interface {
	GetCollections(ctx bCtx.Ctx) ([]royalty.Collection, error)
	GetCollectionMints(ctx bCtx.Ctx, collectionId int64) ([]royalty.Mint, error)
	// CheckMints may answer for fewer mints than requested, in any order
	CheckMints(ctx bCtx.Ctx, mints []royalty.Mint) ([]royalty.CheckMintResult, error)
	// GetPayProofs is newest first
	GetPayProofs(ctx bCtx.Ctx, opts ...GetPayProofsOptionsFunc) ([]royalty.PayProof, error)
	PayTransaction(ctx bCtx.Ctx, info royalty.PaymentInformation) (*royalty.GeneratedTransaction, error)
	// SubmitPayTransaction blocks until the service saw the transaction confirm or fail
	SubmitPayTransaction(ctx bCtx.Ctx, signed royalty.SignedTransaction) (*royalty.SubmitResult, error)
	OverrideRoyalties(ctx bCtx.Ctx, info royalty.PaymentOverrideInformation) (*royalty.SubmitResult, error)

	Endpoint() string
	SetEndpoint(endpoint string)
	SetApiKey(apiKey string)
}

type ClientCfg struct {
	HttpClient http.Client
	Endpoint   string
	ApiKey     string
	// bounds every call except submit and override, DefaultTimeout when zero
	Timeout time.Duration
	// bounds submit and override, zero means no bound
	SubmitTimeout time.Duration
}

// NewClientFromEnv fills an empty endpoint and API key from the environment
func NewClientFromEnv(cfg *ClientCfg) Client {
	c := *cfg
	if c.Endpoint == "" {
		c.Endpoint = env.RoyaltiesEndpoint()
	}
	if c.ApiKey == "" {
		c.ApiKey = env.RoyaltiesApiKey()
	}
	return NewClient(&c)
}
