package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	bCtx "github.com/scalp-empire/royalties/base/ctx"
	"github.com/scalp-empire/royalties/domain/royalty"
)

func withName(mint, name string) royalty.CheckMintResult {
	return royalty.CheckMintResult{
		Mint:     royalty.Mint(mint),
		Metadata: &royalty.MintMetadata{Name: name},
		Status:   royalty.RoyaltyStatusNotPaid,
	}
}

func withoutName(mint string) royalty.CheckMintResult {
	return royalty.CheckMintResult{Mint: royalty.Mint(mint), Status: royalty.RoyaltyStatusUnknown}
}

func mintsOf(results []royalty.CheckMintResult) []royalty.Mint {
	res := []royalty.Mint{}
	for _, r := range results {
		res = append(res, r.Mint)
	}
	return res
}

func TestReconcileOrdering(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	r := NewReconciler(&ReconcilerCfg{})

	results := []royalty.CheckMintResult{
		withoutName("N1"),
		withName("M1", "Zeta"),
		withoutName("N2"),
		withName("M2", "Alpha"),
		withName("M3", "beta"),
		withoutName("N3"),
	}
	requested := mintsOf(results)

	res := r.Reconcile(ctx, requested, results)
	req.Equal(royalty.ReconcileOutcomeMatched, res.Outcome)
	req.False(res.Mismatch())
	req.Equal([]royalty.Mint{"M2", "M3", "M1", "N1", "N2", "N3"}, mintsOf(res.Results))
	req.Empty(res.Missing)
	// input untouched
	req.Equal(royalty.Mint("N1"), results[0].Mint)
}

func TestReconcileLocale(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	results := []royalty.CheckMintResult{
		withName("M1", "Zeta"),
		withName("M2", "Örn"),
	}
	requested := mintsOf(results)

	en := NewReconciler(&ReconcilerCfg{Locale: language.English}).Reconcile(ctx, requested, results)
	req.Equal([]royalty.Mint{"M2", "M1"}, mintsOf(en.Results))

	sv := NewReconciler(&ReconcilerCfg{Locale: language.Swedish}).Reconcile(ctx, requested, results)
	req.Equal([]royalty.Mint{"M1", "M2"}, mintsOf(sv.Results))
}

func TestReconcileMismatch(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	r := NewReconciler(&ReconcilerCfg{})

	cases := []struct {
		name      string
		requested []royalty.Mint
		results   []royalty.CheckMintResult
		outcome   royalty.ReconcileOutcome
		missing   []royalty.Mint
	}{
		{
			name:      "all found",
			requested: []royalty.Mint{"M1", "M2"},
			results:   []royalty.CheckMintResult{withName("M2", "b"), withName("M1", "a")},
			outcome:   royalty.ReconcileOutcomeMatched,
			missing:   []royalty.Mint{},
		},
		{
			name:      "some found",
			requested: []royalty.Mint{"M1", "M2", "M3"},
			results:   []royalty.CheckMintResult{withName("M3", "c"), withoutName("M1")},
			outcome:   royalty.ReconcileOutcomePartial,
			missing:   []royalty.Mint{"M2"},
		},
		{
			name:      "none found",
			requested: []royalty.Mint{"M1"},
			results:   []royalty.CheckMintResult{},
			outcome:   royalty.ReconcileOutcomeNoMatches,
			missing:   []royalty.Mint{"M1"},
		},
		{
			name:      "nil results",
			requested: []royalty.Mint{"M1", "M2"},
			results:   nil,
			outcome:   royalty.ReconcileOutcomeNoMatches,
			missing:   []royalty.Mint{"M1", "M2"},
		},
	}

	for _, c := range cases {
		res := r.Reconcile(ctx, c.requested, c.results)
		req.Equal(c.outcome, res.Outcome, c.name)
		req.Equal(c.outcome == royalty.ReconcileOutcomePartial, res.Mismatch(), c.name)
		req.Equal(len(c.requested), res.Requested, c.name)
		req.Equal(len(c.results), res.Found, c.name)
		req.Equal(c.missing, res.Missing, c.name)
		req.NotNil(res.Results, c.name)
	}
}

func TestReconcilePayable(t *testing.T) {
	req := require.New(t)
	sold := withName("M1", "a")
	sold.Sale = &royalty.MintSale{Transaction: "sale", Price: 100}
	paid := withName("M2", "b")
	paid.Sale = &royalty.MintSale{Transaction: "sale", Price: 100}
	paid.Status = royalty.RoyaltyStatusPaidFull

	res := NewReconciler(&ReconcilerCfg{}).Reconcile(bCtx.Background(), []royalty.Mint{"M1", "M2", "M3"}, []royalty.CheckMintResult{paid, sold, withoutName("M3")})
	req.Equal([]royalty.Mint{"M1"}, mintsOf(res.Payable()))
}
