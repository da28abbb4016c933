package usecase

import (
	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	bCtx "github.com/scalp-empire/royalties/base/ctx"
	"github.com/scalp-empire/royalties/base/goroutine"
	"github.com/scalp-empire/royalties/base/log"
	"github.com/scalp-empire/royalties/base/metrics"
	"github.com/scalp-empire/royalties/domain/royalty"
	"github.com/scalp-empire/royalties/service/royalties"
)

type OverrideUseCaseCfg struct {
	Client     royalties.Client
	Reconciler royalty.Reconciler
	SecretKey  string
	// concurrent overrides in a batch, 1 when zero
	Workers int
	Metrics metrics.Service
}

type overrideImpl struct {
	client     royalties.Client
	reconciler royalty.Reconciler
	secretKey  string
	workers    int
	metrics    metrics.Service
}

func NewOverrideUseCase(cfg *OverrideUseCaseCfg) royalty.OverrideUseCase {
	im := &overrideImpl{
		client:     cfg.Client,
		reconciler: cfg.Reconciler,
		secretKey:  cfg.SecretKey,
		workers:    cfg.Workers,
		metrics:    cfg.Metrics,
	}
	if im.workers < 1 {
		im.workers = 1
	}
	if im.metrics == nil {
		im.metrics = metrics.Nop{}
	}
	return im
}

func (im *overrideImpl) Override(ctx bCtx.Ctx, target royalty.CheckMintResult) (*royalty.SubmitResult, error) {
	if im.secretKey == "" {
		return nil, royalty.ErrSecretKeyMissing
	}
	if target.Sale == nil {
		return nil, xerrors.Errorf("%s: %w", target.Mint, royalty.ErrNoSale)
	}

	res, err := im.client.OverrideRoyalties(ctx, royalty.PaymentOverrideInformation{
		Mint:            target.Mint,
		SaleTransaction: target.Sale.Transaction,
		SecretKey:       im.secretKey,
		Amount:          royalty.FullRoyalty(),
	})
	if err != nil {
		im.metrics.BumpSum("override.failed", 1, "status", "TransportFailure")
		ctx.WithFields(log.Fields{
			"mint": target.Mint,
			"err":  err,
		}).Error("client.OverrideRoyalties failed")
		return nil, err
	}
	if !res.Confirmed() {
		im.metrics.BumpSum("override.failed", 1, "status", res.Status.String())
		return res, xerrors.Errorf("%s for %s: %w", res.Status, target.Mint, royalty.ErrOverrideFailed)
	}
	im.metrics.BumpSum("override.confirmed", 1)
	return res, nil
}

type indexedOverride struct {
	idx int
	res royalty.OverrideResult
}

func (im *overrideImpl) OverrideMints(ctx bCtx.Ctx, mints []royalty.Mint) (*royalty.OverrideReport, error) {
	if im.secretKey == "" {
		return nil, royalty.ErrSecretKeyMissing
	}
	if len(mints) == 0 {
		return nil, xerrors.Errorf("at least one mint is required: %w", royalty.ErrInvalidParameters)
	}

	results, err := im.client.CheckMints(ctx, mints)
	if err != nil {
		ctx.WithField("err", err).Error("client.CheckMints failed")
		return nil, err
	}
	report := &royalty.OverrideReport{
		Reconciliation: im.reconciler.Reconcile(ctx, mints, results),
		Results:        []royalty.OverrideResult{},
		Skipped:        []royalty.Mint{},
	}
	if report.Reconciliation.Outcome == royalty.ReconcileOutcomeNoMatches {
		return report, royalty.ErrNoMatches
	}

	targets := []royalty.CheckMintResult{}
	for _, r := range report.Reconciliation.Results {
		if r.Sale == nil {
			report.Skipped = append(report.Skipped, r.Mint)
			continue
		}
		targets = append(targets, r)
	}
	if len(targets) == 0 {
		return report, nil
	}

	b := goroutines.NewBatch(im.workers, goroutines.WithBatchSize(len(targets)))
	defer b.Close()
	for i := 0; i < len(targets); i++ {
		idx := i
		b.Queue(func() (interface{}, error) {
			return indexedOverride{idx: idx, res: im.overrideOne(ctx, targets[idx])}, nil
		})
	}
	b.QueueComplete()

	ordered := make([]royalty.OverrideResult, len(targets))
	for ret := range b.Results() {
		if ret.Error() != nil {
			ctx.WithField("err", ret.Error()).Error("override batch error result")
			continue
		}
		v := ret.Value().(indexedOverride)
		ordered[v.idx] = v.res
	}
	report.Results = ordered
	return report, nil
}

// overrideOne keeps a panic inside one item from ending the batch
func (im *overrideImpl) overrideOne(ctx bCtx.Ctx, target royalty.CheckMintResult) royalty.OverrideResult {
	c := bCtx.WithValue(ctx, "mint", target.Mint.String())
	res := royalty.OverrideResult{Mint: target.Mint}
	p := <-goroutine.RecoverableGo(func() {
		res.Result, res.Err = im.Override(c, target)
	}, goroutine.WithLogger(c.Logger))
	if p != nil {
		res.Result = nil
		res.Err = xerrors.Errorf("override panicked: %v", p.Panic)
	}

	if res.Err != nil {
		c.WithField("err", res.Err).Warn("override failed")
	} else {
		c.WithField("signature", res.Result.Signature).Info("override confirmed")
	}
	return res
}
