package royalties

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/scalp-empire/royalties/base/ctx"
	"github.com/scalp-empire/royalties/base/log"
	"github.com/scalp-empire/royalties/domain/royalty"
)

func NewClient(cfg *ClientCfg) Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &client{
		client:        cfg.HttpClient,
		endpoint:      strings.TrimRight(endpoint, "/"),
		apiKey:        cfg.ApiKey,
		timeout:       timeout,
		submitTimeout: cfg.SubmitTimeout,
	}
}

type client struct {
	client        http.Client
	endpoint      string
	apiKey        string
	timeout       time.Duration
	submitTimeout time.Duration
}

func (c *client) Endpoint() string {
	return c.endpoint
}

func (c *client) SetEndpoint(endpoint string) {
	c.endpoint = strings.TrimRight(endpoint, "/")
}

func (c *client) SetApiKey(apiKey string) {
	c.apiKey = apiKey
}

func (c *client) GetCollections(ctx bCtx.Ctx) ([]royalty.Collection, error) {
	res := []royalty.Collection{}
	if err := c.do(ctx, http.MethodGet, "/collections", nil, &res, c.timeout); err != nil {
		return nil, err
	}
	if res == nil {
		res = []royalty.Collection{}
	}
	return res, nil
}

func (c *client) GetCollectionMints(ctx bCtx.Ctx, collectionId int64) ([]royalty.Mint, error) {
	path := "/mints/" + url.PathEscape(strconv.FormatInt(collectionId, 10))
	res := []royalty.Mint{}
	if err := c.do(ctx, http.MethodGet, path, nil, &res, c.timeout); err != nil {
		return nil, err
	}
	if res == nil {
		res = []royalty.Mint{}
	}
	return res, nil
}

func (c *client) CheckMints(ctx bCtx.Ctx, mints []royalty.Mint) ([]royalty.CheckMintResult, error) {
	if mints == nil {
		mints = []royalty.Mint{}
	}
	res := []royalty.CheckMintResult{}
	if err := c.do(ctx, http.MethodPost, "/check", mints, &res, c.timeout); err != nil {
		return nil, err
	}
	if res == nil {
		res = []royalty.CheckMintResult{}
	}
	return res, nil
}

func (c *client) GetPayProofs(ctx bCtx.Ctx, opts ...GetPayProofsOptionsFunc) ([]royalty.PayProof, error) {
	opt, err := ParseGetPayProofsOptions(opts...)
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	if opt.Since != nil {
		params.Add("since", strconv.FormatInt(opt.Since.Unix(), 10))
	}
	params.Add("limit", strconv.Itoa(opt.Limit))

	res := []royalty.PayProof{}
	if err := c.do(ctx, http.MethodGet, "/pay-proofs?"+params.Encode(), nil, &res, c.timeout); err != nil {
		return nil, err
	}
	if res == nil {
		res = []royalty.PayProof{}
	}
	return res, nil
}

func (c *client) PayTransaction(ctx bCtx.Ctx, info royalty.PaymentInformation) (*royalty.GeneratedTransaction, error) {
	if err := info.Amount.Validate(); err != nil {
		return nil, err
	}
	res := &royalty.GeneratedTransaction{}
	if err := c.do(ctx, http.MethodPost, "/pay-transaction", info, res, c.timeout); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *client) SubmitPayTransaction(ctx bCtx.Ctx, signed royalty.SignedTransaction) (*royalty.SubmitResult, error) {
	res := &royalty.SubmitResult{}
	body := royalty.SubmitRequest{SignedTransaction: signed}
	if err := c.do(ctx, http.MethodPost, "/pay-submit", body, res, c.submitTimeout); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *client) OverrideRoyalties(ctx bCtx.Ctx, info royalty.PaymentOverrideInformation) (*royalty.SubmitResult, error) {
	if info.SecretKey == "" {
		return nil, royalty.ErrSecretKeyMissing
	}
	if err := info.Amount.Validate(); err != nil {
		return nil, err
	}
	res := &royalty.SubmitResult{}
	if err := c.do(ctx, http.MethodPost, "/pay-override", info, res, c.submitTimeout); err != nil {
		return nil, err
	}
	return res, nil
}

// do sends one request and decodes a 2xx body into out. Every failure comes
// back as *royalty.TransportError.
func (c *client) do(ctx bCtx.Ctx, method, path string, in, out interface{}, timeout time.Duration) error {
	ctx, cancel := bCtx.WithTimeout(ctx, timeout)
	defer cancel()

	u := c.endpoint + path
	fail := func(status int, err error) error {
		ctx.WithFields(log.Fields{
			"method":     method,
			"url":        u,
			"statusCode": status,
			"err":        err,
		}).Debug("royalty request failed")
		return &royalty.TransportError{Op: method, Url: u, StatusCode: status, Err: err}
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fail(0, err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fail(0, err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fail(0, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(resp.StatusCode, xerrors.Errorf("http status %d", resp.StatusCode))
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(0, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fail(0, err)
	}
	ctx.WithFields(log.Fields{"method": method, "url": u}).Debug("royalty request done")
	return nil
}
