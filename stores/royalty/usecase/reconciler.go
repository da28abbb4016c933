package usecase

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	bCtx "github.com/scalp-empire/royalties/base/ctx"
	"github.com/scalp-empire/royalties/base/log"
	"github.com/scalp-empire/royalties/domain/royalty"
)

type ReconcilerCfg struct {
	// collation used to order results by name, language.English when undefined
	Locale language.Tag
}

type reconcilerImpl struct {
	locale language.Tag
}

func NewReconciler(cfg *ReconcilerCfg) royalty.Reconciler {
	locale := cfg.Locale
	if locale == language.Und {
		locale = language.English
	}
	return &reconcilerImpl{locale: locale}
}

// Reconcile orders results with metadata by name, then appends the ones
// without metadata in the order the service sent them.
func (im *reconcilerImpl) Reconcile(ctx bCtx.Ctx, requested []royalty.Mint, results []royalty.CheckMintResult) royalty.Reconciliation {
	named := []royalty.CheckMintResult{}
	unnamed := []royalty.CheckMintResult{}
	found := map[royalty.Mint]bool{}
	for _, r := range results {
		found[r.Mint] = true
		if r.Metadata != nil {
			named = append(named, r)
		} else {
			unnamed = append(unnamed, r)
		}
	}

	// a Collator keeps a buffer, one per call
	col := collate.New(im.locale)
	sort.SliceStable(named, func(i, j int) bool {
		return col.CompareString(named[i].Metadata.Name, named[j].Metadata.Name) < 0
	})

	missing := []royalty.Mint{}
	seen := map[royalty.Mint]bool{}
	for _, m := range requested {
		if seen[m] {
			continue
		}
		seen[m] = true
		if !found[m] {
			missing = append(missing, m)
		}
	}

	res := royalty.Reconciliation{
		Requested: len(requested),
		Found:     len(results),
		Results:   append(named, unnamed...),
		Missing:   missing,
	}
	switch {
	case res.Found == 0:
		res.Outcome = royalty.ReconcileOutcomeNoMatches
	case res.Found != res.Requested:
		res.Outcome = royalty.ReconcileOutcomePartial
		ctx.WithFields(log.Fields{
			"requested": res.Requested,
			"found":     res.Found,
		}).Warnf("The number of requested mints (%d) differs from the number of found mints (%d)", res.Requested, res.Found)
	default:
		res.Outcome = royalty.ReconcileOutcomeMatched
	}
	return res
}
