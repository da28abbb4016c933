package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/xerrors"

	bCtx "github.com/scalp-empire/royalties/base/ctx"
	"github.com/scalp-empire/royalties/base/goroutine"
	"github.com/scalp-empire/royalties/base/log"
	"github.com/scalp-empire/royalties/base/metrics"
	"github.com/scalp-empire/royalties/base/validator"
	"github.com/scalp-empire/royalties/domain/royalty"
	"github.com/scalp-empire/royalties/service/royalties"
	"github.com/scalp-empire/royalties/service/wallet"
)

type PaymentWorkflowCfg struct {
	Client  royalties.Client
	Signer  royalty.Signer
	Metrics metrics.Service
	// RecheckSale queries the mint again before generating, paying the
	// freshest sale instead of the one the caller saw
	RecheckSale bool
	// OnStateChange is called synchronously for every transition. A panic in
	// it is logged and does not affect the attempt.
	OnStateChange func(ctx bCtx.Ctx, change royalty.StateChange)
	// OnConfirmed is where the holder inventory gets refreshed. A panic in it
	// is logged and the receipt is still returned.
	OnConfirmed func(ctx bCtx.Ctx, receipt royalty.Receipt)
	Now         func() time.Time
}

type paymentImpl struct {
	client        royalties.Client
	signer        royalty.Signer
	metrics       metrics.Service
	recheckSale   bool
	onStateChange func(ctx bCtx.Ctx, change royalty.StateChange)
	onConfirmed   func(ctx bCtx.Ctx, receipt royalty.Receipt)
	now           func() time.Time

	mu          sync.Mutex
	state       royalty.PaymentState
	lastFailure royalty.FailureReason
}

func NewPaymentWorkflow(cfg *PaymentWorkflowCfg) royalty.PaymentWorkflow {
	im := &paymentImpl{
		client:        cfg.Client,
		signer:        cfg.Signer,
		metrics:       cfg.Metrics,
		recheckSale:   cfg.RecheckSale,
		onStateChange: cfg.OnStateChange,
		onConfirmed:   cfg.OnConfirmed,
		now:           cfg.Now,
		state:         royalty.PaymentStateIdle,
	}
	if im.metrics == nil {
		im.metrics = metrics.Nop{}
	}
	if im.now == nil {
		im.now = time.Now
	}
	return im
}

func (im *paymentImpl) State() royalty.PaymentState {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.state
}

func (im *paymentImpl) LastFailure() royalty.FailureReason {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.lastFailure
}

// attempt is the progress of one Pay call
type attempt struct {
	id     string
	mint   royalty.Mint
	state  royalty.PaymentState
	amount royalty.Amount
	sale   royalty.MintSale
}

func (im *paymentImpl) Pay(ctx bCtx.Ctx, target royalty.CheckMintResult, amount royalty.Amount) (out *royalty.Receipt, err error) {
	id, err := uuid.NewRandom()
	if err != nil {
		ctx.WithField("err", err).Error("failed to uuid.NewRandom")
		return nil, err
	}
	a := &attempt{
		id:     id.String(),
		mint:   target.Mint,
		state:  royalty.PaymentStateIdle,
		amount: amount,
	}
	if target.Sale != nil {
		a.sale = *target.Sale
	}

	first := royalty.PaymentStateGeneratingTransaction
	if im.recheckSale {
		first = royalty.PaymentStateCheckingSale
	}

	// the guard and the first transition happen under one lock so two
	// concurrent calls can never both start
	im.mu.Lock()
	if !im.state.Accepting() {
		im.mu.Unlock()
		return nil, royalty.ErrBusy
	}
	if err := im.validate(a, target); err != nil {
		im.mu.Unlock()
		return nil, err
	}
	from := im.state
	im.state = first
	im.lastFailure = royalty.FailureReasonNone
	im.mu.Unlock()

	// a panicking signer or client must not leave the instance busy
	var confirmed *royalty.Receipt
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		ctx.WithFields(log.Fields{
			"panic": p,
			"stack": string(goroutine.Stack(2)),
		}).Error("payment panicked")
		if confirmed != nil {
			out, err = confirmed, nil
			return
		}
		out, err = im.fail(ctx, a, royalty.FailureReasonInternal, xerrors.Errorf("panic: %v", p))
	}()

	ctx = bCtx.WithValues(ctx, map[string]interface{}{
		"attemptId": a.id,
		"mint":      a.mint.String(),
	})
	defer im.metrics.BumpTime("payment.time").End()

	a.state = first
	im.notify(ctx, a, from, first, royalty.FailureReasonNone)

	if im.recheckSale {
		if reason, err := im.checkSale(ctx, a); reason != royalty.FailureReasonNone {
			return im.fail(ctx, a, reason, err)
		}
		im.transition(ctx, a, royalty.PaymentStateGeneratingTransaction)
	}

	generated, reason, err := im.generate(ctx, a)
	if reason != royalty.FailureReasonNone {
		return im.fail(ctx, a, reason, err)
	}

	im.transition(ctx, a, royalty.PaymentStateAwaitingSignature)
	signed, reason, err := im.sign(ctx, generated)
	if reason != royalty.FailureReasonNone {
		return im.fail(ctx, a, reason, err)
	}

	im.transition(ctx, a, royalty.PaymentStateSubmitting)
	res, err := im.client.SubmitPayTransaction(ctx, signed)
	if err != nil {
		return im.fail(ctx, a, royalty.FailureReasonTransportFailure, err)
	}
	if !res.Confirmed() {
		return im.fail(ctx, a, royalty.FailureReasonForSubmit(res.Status), xerrors.Errorf("submit status %s", res.Status))
	}

	receipt := royalty.Receipt{
		AttemptId:       a.id,
		Mint:            a.mint,
		SaleTransaction: a.sale.Transaction,
		Payer:           im.signer.Address().String(),
		Amount:          a.amount,
		Paid:            generated.Amount,
		Fee:             generated.Fee,
		Signature:       res.Signature,
		ConfirmedAt:     im.now(),
	}
	confirmed = &receipt
	im.transition(ctx, a, royalty.PaymentStateConfirmed)
	im.metrics.BumpSum("payment.confirmed", 1)
	ctx.WithField("signature", res.Signature).Info("payment confirmed")

	if im.onConfirmed != nil {
		im.callback(ctx, "OnConfirmed", func() { im.onConfirmed(ctx, receipt) })
	}
	return &receipt, nil
}

// validate runs before any network call
func (im *paymentImpl) validate(a *attempt, target royalty.CheckMintResult) error {
	if err := a.amount.Validate(); err != nil {
		return err
	}
	if target.Sale == nil {
		if !im.recheckSale {
			return xerrors.Errorf("%s: %w", a.mint, royalty.ErrNoSale)
		}
		// the recheck fills in the sale
		if !validator.IsValidAddress(a.mint.String()) {
			return xerrors.Errorf("mint %q: %w", a.mint, royalty.ErrInvalidParameters)
		}
		return nil
	}
	info := royalty.PaymentInformation{
		Mint:            a.mint,
		SaleTransaction: a.sale.Transaction,
		Payer:           im.signer.Address().String(),
		Amount:          a.amount,
	}
	return info.Validate()
}

func (im *paymentImpl) checkSale(ctx bCtx.Ctx, a *attempt) (royalty.FailureReason, error) {
	results, err := im.client.CheckMints(ctx, []royalty.Mint{a.mint})
	if err != nil {
		return royalty.FailureReasonTransportFailure, err
	}
	for _, r := range results {
		if r.Mint != a.mint {
			continue
		}
		if r.Sale == nil {
			return royalty.FailureReasonNoSale, royalty.ErrNoSale
		}
		if r.Status.Settled() {
			return royalty.FailureReasonAlreadyPaid, royalty.ErrAlreadyPaid
		}
		a.sale = *r.Sale
		return royalty.FailureReasonNone, nil
	}
	return royalty.FailureReasonMintNotFound, royalty.ErrMintNotFound
}

func (im *paymentImpl) generate(ctx bCtx.Ctx, a *attempt) (*royalty.GeneratedTransaction, royalty.FailureReason, error) {
	generated, err := im.client.PayTransaction(ctx, royalty.PaymentInformation{
		Mint:            a.mint,
		SaleTransaction: a.sale.Transaction,
		Payer:           im.signer.Address().String(),
		Amount:          a.amount,
	})
	if err != nil {
		return nil, royalty.FailureReasonTransportFailure, err
	}
	if generated.Status != royalty.GenerateStatusSucceeded {
		return nil, royalty.FailureReasonForGenerate(generated.Status), xerrors.Errorf("generate status %s", generated.Status)
	}
	if generated.Transaction == nil || *generated.Transaction == "" {
		return nil, royalty.FailureReasonMissingTransaction, wallet.ErrEmptyTransaction
	}
	return generated, royalty.FailureReasonNone, nil
}

// sign waits on the signer for as long as ctx allows
func (im *paymentImpl) sign(ctx bCtx.Ctx, generated *royalty.GeneratedTransaction) (royalty.SignedTransaction, royalty.FailureReason, error) {
	tx, err := wallet.DecodeTransaction(*generated.Transaction)
	if err != nil {
		return "", royalty.FailureReasonTransactionDecode, err
	}
	if err := im.signer.SignTransaction(ctx, tx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", royalty.FailureReasonCanceled, xerrors.Errorf("%v: %w", err, ctxErr)
		}
		return "", royalty.FailureReasonSignatureRejected, xerrors.Errorf("%v: %w", err, royalty.ErrSignatureRejected)
	}
	if !wallet.IsSignedBy(tx, im.signer.Address()) {
		return "", royalty.FailureReasonSignatureRejected, xerrors.Errorf("no signature from %s: %w", im.signer.Address(), royalty.ErrSignatureRejected)
	}
	signed, err := wallet.EncodeTransaction(tx)
	if err != nil {
		return "", royalty.FailureReasonTransactionDecode, err
	}
	return signed, royalty.FailureReasonNone, nil
}

func (im *paymentImpl) transition(ctx bCtx.Ctx, a *attempt, to royalty.PaymentState) {
	from := a.state
	im.mu.Lock()
	im.state = to
	im.mu.Unlock()
	a.state = to
	im.notify(ctx, a, from, to, royalty.FailureReasonNone)
}

func (im *paymentImpl) fail(ctx bCtx.Ctx, a *attempt, reason royalty.FailureReason, cause error) (*royalty.Receipt, error) {
	from := a.state
	im.mu.Lock()
	im.state = royalty.PaymentStateFailed
	im.lastFailure = reason
	im.mu.Unlock()
	a.state = royalty.PaymentStateFailed
	im.notify(ctx, a, from, royalty.PaymentStateFailed, reason)

	im.metrics.BumpSum("payment.failed", 1, "reason", reason.String())
	ctx.WithFields(log.Fields{
		"reason": reason.String(),
		"err":    cause,
	}).Warn("payment failed")

	return nil, &royalty.PaymentError{
		AttemptId: a.id,
		Mint:      a.mint,
		State:     from,
		Reason:    reason,
		Cause:     cause,
	}
}

func (im *paymentImpl) notify(ctx bCtx.Ctx, a *attempt, from, to royalty.PaymentState, reason royalty.FailureReason) {
	ctx.WithFields(log.Fields{
		"from": from.String(),
		"to":   to.String(),
	}).Info("payment state changed")
	if im.onStateChange != nil {
		change := royalty.StateChange{
			AttemptId: a.id,
			Mint:      a.mint,
			From:      from,
			To:        to,
			Reason:    reason,
		}
		im.callback(ctx, "OnStateChange", func() { im.onStateChange(ctx, change) })
	}
}

func (im *paymentImpl) callback(ctx bCtx.Ctx, name string, f func()) {
	defer func() {
		if p := recover(); p != nil {
			ctx.WithFields(log.Fields{
				"callback": name,
				"panic":    p,
			}).Error("payment callback panicked")
		}
	}()
	f()
}
