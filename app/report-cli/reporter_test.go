package main

import (
	"bytes"
	"net/http"
	"testing"
	"text/tabwriter"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/text/language"

	bCtx "github.com/scalp-empire/royalties/base/ctx"
	pricefomatter "github.com/scalp-empire/royalties/base/price_fomatter"
	"github.com/scalp-empire/royalties/base/ptr"
	"github.com/scalp-empire/royalties/domain/royalty"
	"github.com/scalp-empire/royalties/service/royalties"
	"github.com/scalp-empire/royalties/service/royalties/royaltiestest"
)

type reporterSuite struct {
	suite.Suite

	ctx    bCtx.Ctx
	ledger *royaltiestest.Server
	buf    *bytes.Buffer
	r      *reporter
}

func (s *reporterSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.ledger = royaltiestest.NewServer()
	s.buf = &bytes.Buffer{}
	s.r = &reporter{
		client: royalties.NewClient(&royalties.ClientCfg{
			Endpoint: s.ledger.URL,
			Timeout:  5 * time.Second,
		}),
		formatter: pricefomatter.NewPriceFormatter(&pricefomatter.PriceFormatterCfg{Locale: language.English, Decimals: 2}),
		out:       tabwriter.NewWriter(s.buf, 0, 4, 2, ' ', 0),
	}
}

func (s *reporterSuite) TearDownTest() {
	s.ledger.Close()
}

func (s *reporterSuite) output() string {
	s.Require().NoError(s.r.out.Flush())
	return s.buf.String()
}

func (s *reporterSuite) TestCollections() {
	s.ledger.AddCollection(royalty.Collection{
		Id:         3,
		Name:       "Scalp Empire",
		Items:      2,
		MintPrice:  1_500_000_000,
		FloorPrice: ptr.Uint64(2_000_000_000),
	}, "M1", "M2")

	s.Require().NoError(s.r.collections(s.ctx))
	out := s.output()
	s.Contains(out, "Scalp Empire")
	s.Contains(out, "1.50 ◎")
	s.Contains(out, "2.00 ◎")
}

func (s *reporterSuite) TestMints() {
	s.ledger.AddCollection(royalty.Collection{Id: 3, Name: "Scalp Empire"}, "M1", "M2")

	s.Require().NoError(s.r.mints(s.ctx, 3))
	out := s.output()
	s.Contains(out, "2 mint(s) in collection 3")
	s.Contains(out, "M2")
}

func (s *reporterSuite) TestProofs() {
	s.ledger.AddPayProof(royalty.PayProof{
		Transaction:     "proof-sig",
		TransactionTime: 1672531200,
		Mint:            "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU",
		SaleTransaction: "sale-sig",
		Payer:           "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM",
		Paid:            49_500_000,
	})

	s.Require().NoError(s.r.proofs(s.ctx, royalties.WithSince(time.Unix(1672531200, 0))))
	out := s.output()
	s.Contains(out, "2023-01-01T00:00:00Z")
	s.Contains(out, "0.05 ◎")
	s.Contains(out, "proof-sig")
	s.Contains(s.ledger.Calls()[0].Query, "since=1672531200")
}

func (s *reporterSuite) TestServiceDown() {
	s.ledger.FailPath("/collections", http.StatusInternalServerError)
	s.ErrorIs(s.r.collections(s.ctx), royalty.ErrTransportFailure)
}

func (s *reporterSuite) TestParseSince() {
	t, err := parseSince("1672531200")
	s.Require().NoError(err)
	s.Equal(int64(1672531200), t.Unix())

	t, err = parseSince("2023-01-01T00:00:00Z")
	s.Require().NoError(err)
	s.Equal(int64(1672531200), t.Unix())

	_, err = parseSince("yesterday")
	s.Error(err)
}

func TestReporterSuite(t *testing.T) {
	suite.Run(t, new(reporterSuite))
}
