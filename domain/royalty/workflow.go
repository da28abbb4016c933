package royalty

import (
	"strconv"
	"time"
)

type PaymentState int

const (
	PaymentStateIdle PaymentState = iota
	PaymentStateCheckingSale
	PaymentStateGeneratingTransaction
	PaymentStateAwaitingSignature
	PaymentStateSubmitting
	PaymentStateConfirmed
	PaymentStateFailed
)

var paymentStateNames = [...]string{
	PaymentStateIdle:                  "Idle",
	PaymentStateCheckingSale:          "CheckingSale",
	PaymentStateGeneratingTransaction: "GeneratingTransaction",
	PaymentStateAwaitingSignature:     "AwaitingSignature",
	PaymentStateSubmitting:            "Submitting",
	PaymentStateConfirmed:             "Confirmed",
	PaymentStateFailed:                "Failed",
}

func (s PaymentState) String() string {
	if s >= 0 && int(s) < len(paymentStateNames) {
		return paymentStateNames[s]
	}
	return "PaymentState(" + strconv.Itoa(int(s)) + ")"
}

func (s PaymentState) Terminal() bool {
	return s == PaymentStateConfirmed || s == PaymentStateFailed
}

// Accepting is true when a new payment may start
func (s PaymentState) Accepting() bool {
	return s == PaymentStateIdle || s.Terminal()
}

type FailureReason int

const (
	FailureReasonNone FailureReason = iota
	FailureReasonTransportFailure
	FailureReasonInvalidParameters
	FailureReasonSaleMismatch
	FailureReasonTransactionBuild
	FailureReasonAlreadyPaid
	FailureReasonCalculatingRoyalties
	FailureReasonMissingTransaction
	FailureReasonTransactionDecode
	FailureReasonSignatureRejected
	FailureReasonSubmitFailed
	FailureReasonExpired
	FailureReasonInsufficientFunds
	FailureReasonInvalidSale
	FailureReasonInvalidTransaction
	FailureReasonNoSale
	FailureReasonMintNotFound
	FailureReasonUnrecognizedStatus
	FailureReasonCanceled
	FailureReasonInternal
)

var failureReasonNames = [...]string{
	FailureReasonNone:                 "None",
	FailureReasonTransportFailure:     "TransportFailure",
	FailureReasonInvalidParameters:    "ErrorInvalidParameters",
	FailureReasonSaleMismatch:         "ErrorSaleMismatch",
	FailureReasonTransactionBuild:     "ErrorTransaction",
	FailureReasonAlreadyPaid:          "ErrorRoyaltiesPaid",
	FailureReasonCalculatingRoyalties: "ErrorCalculatingRoyalties",
	FailureReasonMissingTransaction:   "MissingTransaction",
	FailureReasonTransactionDecode:    "TransactionDecode",
	FailureReasonSignatureRejected:    "SignatureRejected",
	FailureReasonSubmitFailed:         "Failed",
	FailureReasonExpired:              "Expired",
	FailureReasonInsufficientFunds:    "InsufficientFunds",
	FailureReasonInvalidSale:          "InvalidSale",
	FailureReasonInvalidTransaction:   "InvalidTransaction",
	FailureReasonNoSale:               "NoSale",
	FailureReasonMintNotFound:         "MintNotFound",
	FailureReasonUnrecognizedStatus:   "UnrecognizedStatus",
	FailureReasonCanceled:             "Canceled",
	FailureReasonInternal:             "Internal",
}

func (r FailureReason) String() string {
	if r >= 0 && int(r) < len(failureReasonNames) {
		return failureReasonNames[r]
	}
	return "FailureReason(" + strconv.Itoa(int(r)) + ")"
}

// Message is a user facing sentence per reason
func (r FailureReason) Message() string {
	switch r {
	case FailureReasonNone:
		return ""
	case FailureReasonTransportFailure:
		return "the royalty service could not be reached"
	case FailureReasonInvalidParameters:
		return "the payment request was rejected as invalid"
	case FailureReasonSaleMismatch:
		return "the sale changed since it was checked, refresh and try again"
	case FailureReasonTransactionBuild:
		return "the royalty service could not build the transaction"
	case FailureReasonAlreadyPaid:
		return "royalties for this sale are already paid"
	case FailureReasonCalculatingRoyalties:
		return "the royalty amount could not be calculated"
	case FailureReasonMissingTransaction:
		return "the royalty service returned no transaction"
	case FailureReasonTransactionDecode:
		return "the transaction returned by the royalty service is malformed"
	case FailureReasonSignatureRejected:
		return "the transaction was not signed"
	case FailureReasonSubmitFailed:
		return "the payment transaction failed"
	case FailureReasonExpired:
		return "the payment transaction expired before confirmation"
	case FailureReasonInsufficientFunds:
		return "the payer has insufficient funds"
	case FailureReasonInvalidSale:
		return "the sale is no longer valid"
	case FailureReasonInvalidTransaction:
		return "the signed transaction was rejected"
	case FailureReasonNoSale:
		return "the mint has no recorded sale"
	case FailureReasonMintNotFound:
		return "the mint is unknown to the royalty service"
	case FailureReasonUnrecognizedStatus:
		return "the royalty service answered with an unknown status"
	case FailureReasonCanceled:
		return "the payment was abandoned before it completed"
	case FailureReasonInternal:
		return "the payment stopped on an internal error"
	}
	return r.String()
}

// FailureReasonForGenerate maps every non success generate status
func FailureReasonForGenerate(s GenerateStatus) FailureReason {
	switch s {
	case GenerateStatusSucceeded:
		return FailureReasonNone
	case GenerateStatusErrorInvalidParameters:
		return FailureReasonInvalidParameters
	case GenerateStatusErrorSaleMismatch:
		return FailureReasonSaleMismatch
	case GenerateStatusErrorTransaction:
		return FailureReasonTransactionBuild
	case GenerateStatusErrorRoyaltiesPaid:
		return FailureReasonAlreadyPaid
	case GenerateStatusErrorCalculatingRoyalties:
		return FailureReasonCalculatingRoyalties
	case GenerateStatusUnrecognized:
		return FailureReasonUnrecognizedStatus
	}
	return FailureReasonUnrecognizedStatus
}

// FailureReasonForSubmit maps every non confirmed submit status
func FailureReasonForSubmit(s SubmitStatus) FailureReason {
	switch s {
	case SubmitStatusConfirmed:
		return FailureReasonNone
	case SubmitStatusFailed:
		return FailureReasonSubmitFailed
	case SubmitStatusExpired:
		return FailureReasonExpired
	case SubmitStatusInsufficientFunds:
		return FailureReasonInsufficientFunds
	case SubmitStatusInvalidSale:
		return FailureReasonInvalidSale
	case SubmitStatusInvalidTransaction:
		return FailureReasonInvalidTransaction
	case SubmitStatusUnrecognized:
		return FailureReasonUnrecognizedStatus
	}
	return FailureReasonUnrecognizedStatus
}

// StateChange is reported for every transition of a payment attempt
type StateChange struct {
	AttemptId string
	Mint      Mint
	From      PaymentState
	To        PaymentState
	Reason    FailureReason
}

// Receipt describes a confirmed payment
type Receipt struct {
	AttemptId       string
	Mint            Mint
	SaleTransaction string
	Payer           string
	Amount          Amount
	// lamports, as quoted by the service
	Paid        *uint64
	Fee         *uint64
	Signature   string
	ConfirmedAt time.Time
}

type ReconcileOutcome int

const (
	ReconcileOutcomeMatched ReconcileOutcome = iota
	ReconcileOutcomePartial
	ReconcileOutcomeNoMatches
)

func (o ReconcileOutcome) String() string {
	switch o {
	case ReconcileOutcomeMatched:
		return "Matched"
	case ReconcileOutcomePartial:
		return "Partial"
	case ReconcileOutcomeNoMatches:
		return "NoMatches"
	}
	return "ReconcileOutcome(" + strconv.Itoa(int(o)) + ")"
}

// Reconciliation is the ordered view over a checkMints answer
type Reconciliation struct {
	Outcome   ReconcileOutcome
	Requested int
	Found     int
	Results   []CheckMintResult
	// requested mints with no result
	Missing []Mint
}

// Mismatch is true when the service answered for some but not all mints
func (r Reconciliation) Mismatch() bool {
	return r.Outcome == ReconcileOutcomePartial
}

// Payable filters Results down to entries that still owe royalties
func (r Reconciliation) Payable() []CheckMintResult {
	res := []CheckMintResult{}
	for _, c := range r.Results {
		if c.Payable() {
			res = append(res, c)
		}
	}
	return res
}
