package royalty

import (
	"errors"
	"fmt"
)

var (
	// ErrTransportFailure wraps network errors and non 2xx answers
	ErrTransportFailure = errors.New("royalty service unavailable")
	// ErrBusy is returned when a payment is already in flight
	ErrBusy              = errors.New("payment in progress")
	ErrInvalidAmount     = errors.New("exactly one royalty amount must be set")
	ErrInvalidParameters = errors.New("invalid parameters")
	ErrNoSale            = errors.New("mint has no recorded sale")
	ErrNoMatches         = errors.New("no mints found")
	ErrMintNotFound      = errors.New("mint not found")
	ErrSecretKeyMissing  = errors.New("secret key not configured")
	ErrSignatureRejected = errors.New("signature rejected")
	ErrAlreadyPaid       = errors.New("royalties already paid")
	ErrPaymentFailed     = errors.New("payment failed")
	ErrOverrideFailed    = errors.New("override failed")
)

// TransportError is the absent result of a Royalty Client call
type TransportError struct {
	Op         string
	Url        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status %d", e.Op, e.Url, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Url, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransportFailure
}

// PaymentError is the terminal failure of a payment attempt
type PaymentError struct {
	AttemptId string
	Mint      Mint
	// state the attempt failed from
	State  PaymentState
	Reason FailureReason
	Cause  error
}

func (e *PaymentError) Error() string {
	msg := fmt.Sprintf("payment %s for %s failed in %s: %s", e.AttemptId, e.Mint, e.State, e.Reason)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *PaymentError) Unwrap() error {
	return e.Cause
}

func (e *PaymentError) Is(target error) bool {
	if target == ErrPaymentFailed {
		return true
	}
	switch e.Reason {
	case FailureReasonTransportFailure:
		return target == ErrTransportFailure
	case FailureReasonSignatureRejected:
		return target == ErrSignatureRejected
	case FailureReasonInvalidParameters:
		return target == ErrInvalidParameters
	case FailureReasonAlreadyPaid:
		return target == ErrAlreadyPaid
	case FailureReasonNoSale:
		return target == ErrNoSale
	case FailureReasonMintNotFound:
		return target == ErrMintNotFound
	}
	return false
}
