// Package royaltiestest runs an in-memory royalty ledger over HTTP for tests.
package royaltiestest

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/labstack/echo/v4"

	pricefomatter "github.com/scalp-empire/royalties/base/price_fomatter"
	"github.com/scalp-empire/royalties/base/ptr"
	"github.com/scalp-empire/royalties/base/validator"
	"github.com/scalp-empire/royalties/domain/royalty"
	"github.com/scalp-empire/royalties/service/wallet"
)

const DefaultFee = 5000

// Call is one request the server received
type Call struct {
	Method string
	Path   string
	Query  string
	ApiKey string
	Body   []byte
}

type pending struct {
	mint   royalty.Mint
	sale   string
	payer  solana.PublicKey
	amount uint64
}

// Server mimics the royalty service. Zero value hooks keep the ledger rules:
// unknown mints are dropped from /check, a stale sale yields ErrorSaleMismatch,
// a settled royalty yields ErrorRoyaltiesPaid and a submit is confirmed only
// when every required signature verifies.
type Server struct {
	*httptest.Server

	ApiKey    string
	SecretKey string

	// GenerateHook replaces the generated answer when it returns non nil
	GenerateHook func(royalty.PaymentInformation) *royalty.GeneratedTransaction
	// SubmitHook replaces the submit answer when it returns non nil
	SubmitHook func(royalty.SubmitRequest) *royalty.SubmitResult
	// OverrideHook replaces the override answer when it returns non nil
	OverrideHook func(royalty.PaymentOverrideInformation) *royalty.SubmitResult

	mu          sync.Mutex
	calls       []Call
	failures    map[string]int
	collections []royalty.Collection
	collMints   map[int64][]royalty.Mint
	mints       map[royalty.Mint]royalty.CheckMintResult
	proofs      []royalty.PayProof
	pending     map[string]pending
	block       chan struct{}
	now         func() time.Time
}

func NewServer() *Server {
	s := &Server{
		failures:  map[string]int{},
		collMints: map[int64][]royalty.Mint{},
		mints:     map[royalty.Mint]royalty.CheckMintResult{},
		pending:   map[string]pending{},
		now:       time.Now,
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.NewCustomValidator(validator.Default())
	e.Use(s.record)

	e.GET("/collections", s.getCollections)
	e.GET("/mints/:collectionId", s.getCollectionMints)
	e.POST("/check", s.check)
	e.GET("/pay-proofs", s.getPayProofs)
	e.POST("/pay-transaction", s.payTransaction)
	e.POST("/pay-submit", s.paySubmit)
	e.POST("/pay-override", s.payOverride)

	s.Server = httptest.NewServer(e)
	return s
}

// AddMint registers a mint the ledger knows about
func (s *Server) AddMint(r royalty.CheckMintResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mints[r.Mint] = r
}

func (s *Server) AddCollection(c royalty.Collection, mints ...royalty.Mint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections = append(s.collections, c)
	s.collMints[c.Id] = mints
}

func (s *Server) AddPayProof(p royalty.PayProof) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.proofs = append(s.proofs, p)
}

// Mint returns the ledger's current view of m
func (s *Server) Mint(m royalty.Mint) (royalty.CheckMintResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.mints[m]
	return r, ok
}

// FailPath answers every request to path with status until cleared with 0
func (s *Server) FailPath(path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == 0 {
		delete(s.failures, path)
		return
	}
	s.failures[path] = status
}

// BlockSubmit holds /pay-submit until the returned func is called
func (s *Server) BlockSubmit() (release func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan struct{})
	s.block = ch
	once := sync.Once{}
	return func() { once.Do(func() { close(ch) }) }
}

func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call{}, s.calls...)
}

// CallsTo counts requests to path
func (s *Server) CallsTo(path string) int {
	n := 0
	for _, c := range s.Calls() {
		if c.Path == path {
			n++
		}
	}
	return n
}

func (s *Server) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		r := c.Request()
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.calls = append(s.calls, Call{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			ApiKey: r.Header.Get("x-api-key"),
			Body:   body,
		})
		status, failing := s.failures[r.URL.Path]
		s.mu.Unlock()

		if failing {
			return c.NoContent(status)
		}
		if s.ApiKey != "" && r.Header.Get("x-api-key") != s.ApiKey {
			return c.NoContent(http.StatusForbidden)
		}
		return next(c)
	}
}

func (s *Server) getCollections(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, append([]royalty.Collection{}, s.collections...))
}

func (s *Server) getCollectionMints(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("collectionId"), 10, 64)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	mints, ok := s.collMints[id]
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, mints)
}

func (s *Server) check(c echo.Context) error {
	req := []royalty.Mint{}
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	res := []royalty.CheckMintResult{}
	for _, m := range req {
		if r, ok := s.mints[m]; ok {
			res = append(res, r)
		}
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Server) getPayProofs(c echo.Context) error {
	limit := 100
	if l, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		limit = l
	}
	var since *int64
	if v, err := strconv.ParseInt(c.QueryParam("since"), 10, 64); err == nil {
		since = &v
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	res := []royalty.PayProof{}
	for _, p := range s.proofs {
		if since != nil && p.TransactionTime < *since {
			continue
		}
		res = append(res, p)
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].TransactionTime > res[j].TransactionTime
	})
	if len(res) > limit {
		res = res[:limit]
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Server) payTransaction(c echo.Context) error {
	info := royalty.PaymentInformation{}
	if err := c.Bind(&info); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	if s.GenerateHook != nil {
		if res := s.GenerateHook(info); res != nil {
			return c.JSON(http.StatusOK, res)
		}
	}
	invalid := &royalty.GeneratedTransaction{Status: royalty.GenerateStatusErrorInvalidParameters}
	if err := c.Validate(&info); err != nil {
		return c.JSON(http.StatusOK, invalid)
	}
	if err := info.Amount.Validate(); err != nil {
		return c.JSON(http.StatusOK, invalid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.mints[info.Mint]
	if !ok || m.Sale == nil {
		return c.JSON(http.StatusOK, invalid)
	}
	if m.Sale.Transaction != info.SaleTransaction {
		return c.JSON(http.StatusOK, &royalty.GeneratedTransaction{Status: royalty.GenerateStatusErrorSaleMismatch})
	}
	if m.Status.Settled() {
		return c.JSON(http.StatusOK, &royalty.GeneratedTransaction{Status: royalty.GenerateStatusErrorRoyaltiesPaid})
	}
	creator, amount, ok := due(m, info.Amount)
	if !ok {
		return c.JSON(http.StatusOK, &royalty.GeneratedTransaction{Status: royalty.GenerateStatusErrorCalculatingRoyalties})
	}
	payer := solana.MustPublicKeyFromBase58(info.Payer)
	tx, err := solana.NewTransactionBuilder().
		AddInstruction(system.NewTransferInstruction(amount, payer, creator).Build()).
		SetRecentBlockHash(solana.Hash{}).
		SetFeePayer(payer).
		Build()
	if err != nil {
		return c.JSON(http.StatusOK, &royalty.GeneratedTransaction{Status: royalty.GenerateStatusErrorTransaction})
	}
	encoded, err := wallet.EncodeTransaction(tx)
	if err != nil {
		return c.JSON(http.StatusOK, &royalty.GeneratedTransaction{Status: royalty.GenerateStatusErrorTransaction})
	}
	msg, _ := tx.Message.MarshalBinary()
	s.pending[hex.EncodeToString(msg)] = pending{mint: m.Mint, sale: m.Sale.Transaction, payer: payer, amount: amount}

	return c.JSON(http.StatusOK, &royalty.GeneratedTransaction{
		Status:      royalty.GenerateStatusSucceeded,
		Transaction: ptr.String(string(encoded)),
		Payer:       ptr.String(payer.String()),
		Amount:      ptr.Uint64(amount),
		Fee:         ptr.Uint64(DefaultFee),
	})
}

// due picks the first verified creator as recipient
func due(m royalty.CheckMintResult, amount royalty.Amount) (solana.PublicKey, uint64, bool) {
	if m.Metadata == nil || len(m.Metadata.Creators) == 0 {
		return solana.PublicKey{}, 0, false
	}
	creator, err := solana.PublicKeyFromBase58(m.Metadata.Creators[0].Address)
	if err != nil {
		return solana.PublicKey{}, 0, false
	}
	full := pricefomatter.RoyaltyDue(m.Sale.Price, m.Sale.Royalties)
	switch amount.Mode() {
	case royalty.RoyaltyModeSimpleHalf:
		return creator, full / 2, true
	case royalty.RoyaltyModeCustom:
		return creator, pricefomatter.RoyaltyDue(m.Sale.Price, *amount.RoyaltyCustom), true
	case royalty.RoyaltyModeFixed:
		return creator, *amount.RoyaltyAmount, true
	}
	return creator, full, true
}

func (s *Server) paySubmit(c echo.Context) error {
	req := royalty.SubmitRequest{}
	if err := c.Bind(&req); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	s.mu.Lock()
	block := s.block
	s.mu.Unlock()
	if block != nil {
		select {
		case <-block:
		case <-c.Request().Context().Done():
			return c.Request().Context().Err()
		}
	}

	if s.SubmitHook != nil {
		if res := s.SubmitHook(req); res != nil {
			return c.JSON(http.StatusOK, res)
		}
	}
	invalid := &royalty.SubmitResult{Status: royalty.SubmitStatusInvalidTransaction}
	tx, err := wallet.DecodeTransaction(string(req.SignedTransaction))
	if err != nil {
		return c.JSON(http.StatusOK, invalid)
	}
	if err := tx.VerifySignatures(); err != nil {
		return c.JSON(http.StatusOK, invalid)
	}
	msg, _ := tx.Message.MarshalBinary()

	s.mu.Lock()
	defer s.mu.Unlock()
	key := hex.EncodeToString(msg)
	p, ok := s.pending[key]
	if !ok {
		return c.JSON(http.StatusOK, invalid)
	}
	delete(s.pending, key)
	m := s.mints[p.mint]
	if m.Sale == nil || m.Sale.Transaction != p.sale {
		return c.JSON(http.StatusOK, &royalty.SubmitResult{Status: royalty.SubmitStatusInvalidSale})
	}
	sig := tx.Signatures[0].String()
	status := royalty.RoyaltyStatusPaidFull
	if p.amount < pricefomatter.RoyaltyDue(m.Sale.Price, m.Sale.Royalties) {
		status = royalty.RoyaltyStatusPaidPartial
	}
	s.settle(m, sig, p.payer.String(), p.amount, status)
	return c.JSON(http.StatusOK, &royalty.SubmitResult{Status: royalty.SubmitStatusConfirmed, Signature: sig})
}

func (s *Server) payOverride(c echo.Context) error {
	info := royalty.PaymentOverrideInformation{}
	if err := c.Bind(&info); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	if s.SecretKey != "" && info.SecretKey != s.SecretKey {
		return c.NoContent(http.StatusUnauthorized)
	}
	if s.OverrideHook != nil {
		if res := s.OverrideHook(info); res != nil {
			return c.JSON(http.StatusOK, res)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.mints[info.Mint]
	if !ok || m.Sale == nil || m.Sale.Transaction != info.SaleTransaction {
		return c.JSON(http.StatusOK, &royalty.SubmitResult{Status: royalty.SubmitStatusInvalidSale})
	}
	if m.Status.Settled() {
		return c.JSON(http.StatusOK, &royalty.SubmitResult{Status: royalty.SubmitStatusFailed})
	}
	sig := "override-" + m.Mint.String()
	s.settle(m, sig, "", 0, royalty.RoyaltyStatusPaidFull)
	return c.JSON(http.StatusOK, &royalty.SubmitResult{Status: royalty.SubmitStatusConfirmed, Signature: sig})
}

// settle must run with mu held
func (s *Server) settle(m royalty.CheckMintResult, sig, payer string, paid uint64, status royalty.RoyaltyStatus) {
	now := s.now().Unix()
	sale := *m.Sale
	sale.Proof = ptr.String(sig)
	sale.ProofTime = ptr.Int64(now)
	m.Sale = &sale
	m.Status = status
	s.mints[m.Mint] = m
	s.proofs = append(s.proofs, royalty.PayProof{
		Transaction:     sig,
		TransactionTime: now,
		Mint:            m.Mint,
		SaleTransaction: sale.Transaction,
		Payer:           payer,
		Paid:            paid,
	})
}
