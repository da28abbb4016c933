package royalty

import (
	"github.com/gagliardetto/solana-go"

	bCtx "github.com/scalp-empire/royalties/base/ctx"
)

type Reconciler interface {
	Reconcile(ctx bCtx.Ctx, requested []Mint, results []CheckMintResult) Reconciliation
}

// PaymentWorkflow runs one payment at a time
type PaymentWorkflow interface {
	// Pay drives target from generation to confirmation. It returns ErrBusy
	// without side effects while another payment is in flight.
	Pay(ctx bCtx.Ctx, target CheckMintResult, amount Amount) (*Receipt, error)
	State() PaymentState
	// LastFailure is FailureReasonNone unless the last attempt failed
	LastFailure() FailureReason
}

type HolderUseCase interface {
	// Scan lists the owner's mints and checks them against the service
	Scan(ctx bCtx.Ctx, owner solana.PublicKey) (*Reconciliation, error)
	// Check looks up explicit mints
	Check(ctx bCtx.Ctx, mints []Mint) (*Reconciliation, error)
}

// OverrideResult is one entry of an override batch
type OverrideResult struct {
	Mint   Mint
	Result *SubmitResult
	Err    error
}

func (r OverrideResult) Succeeded() bool {
	return r.Err == nil && r.Result != nil && r.Result.Confirmed()
}

type OverrideReport struct {
	Reconciliation Reconciliation
	Results        []OverrideResult
	// results without a sale are not sent
	Skipped []Mint
}

func (r OverrideReport) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.Succeeded() {
			n++
		}
	}
	return n
}

type OverrideUseCase interface {
	// Override force settles target's last sale with a full royalty
	Override(ctx bCtx.Ctx, target CheckMintResult) (*SubmitResult, error)
	// OverrideMints checks mints and overrides every one with a sale. A failing
	// mint never stops the others.
	OverrideMints(ctx bCtx.Ctx, mints []Mint) (*OverrideReport, error)
}
