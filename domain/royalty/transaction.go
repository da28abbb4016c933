package royalty

import (
	"encoding/json"
)

// GenerateStatus is the outcome of a pay-transaction request. The zero value
// is GenerateStatusUnrecognized, used for literals this client does not know.
type GenerateStatus int

const (
	GenerateStatusUnrecognized GenerateStatus = iota
	GenerateStatusSucceeded
	GenerateStatusErrorInvalidParameters
	GenerateStatusErrorSaleMismatch
	GenerateStatusErrorTransaction
	GenerateStatusErrorRoyaltiesPaid
	GenerateStatusErrorCalculatingRoyalties
)

// the service spells success "Succes"
var generateStatusLiterals = map[GenerateStatus]string{
	GenerateStatusUnrecognized:              "Unrecognized",
	GenerateStatusSucceeded:                 "Succes",
	GenerateStatusErrorInvalidParameters:    "ErrorInvalidParameters",
	GenerateStatusErrorSaleMismatch:         "ErrorSaleMismatch",
	GenerateStatusErrorTransaction:          "ErrorTransaction",
	GenerateStatusErrorRoyaltiesPaid:        "ErrorRoyaltiesPaid",
	GenerateStatusErrorCalculatingRoyalties: "ErrorCalculatingRoyalties",
}

var generateStatusByLiteral = map[string]GenerateStatus{
	"Succes":                    GenerateStatusSucceeded,
	"Success":                   GenerateStatusSucceeded,
	"Succeeded":                 GenerateStatusSucceeded,
	"ErrorInvalidParameters":    GenerateStatusErrorInvalidParameters,
	"ErrorSaleMismatch":         GenerateStatusErrorSaleMismatch,
	"ErrorTransaction":          GenerateStatusErrorTransaction,
	"ErrorTransactionBuild":     GenerateStatusErrorTransaction,
	"ErrorRoyaltiesPaid":        GenerateStatusErrorRoyaltiesPaid,
	"ErrorAlreadyPaid":          GenerateStatusErrorRoyaltiesPaid,
	"ErrorCalculatingRoyalties": GenerateStatusErrorCalculatingRoyalties,
}

func (s GenerateStatus) String() string {
	if l, ok := generateStatusLiterals[s]; ok {
		return l
	}
	return generateStatusLiterals[GenerateStatusUnrecognized]
}

func (s GenerateStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *GenerateStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = generateStatusByLiteral[raw]
	return nil
}

// SubmitStatus is the outcome of a submit or override request. The zero
// value is SubmitStatusUnrecognized.
type SubmitStatus int

const (
	SubmitStatusUnrecognized SubmitStatus = iota
	SubmitStatusConfirmed
	SubmitStatusFailed
	SubmitStatusExpired
	SubmitStatusInsufficientFunds
	SubmitStatusInvalidSale
	SubmitStatusInvalidTransaction
)

var submitStatusLiterals = map[SubmitStatus]string{
	SubmitStatusUnrecognized:       "Unrecognized",
	SubmitStatusConfirmed:          "Confirmed",
	SubmitStatusFailed:             "Failed",
	SubmitStatusExpired:            "Expired",
	SubmitStatusInsufficientFunds:  "InsufficientFunds",
	SubmitStatusInvalidSale:        "InvalidSale",
	SubmitStatusInvalidTransaction: "InvalidTransaction",
}

func (s SubmitStatus) String() string {
	if l, ok := submitStatusLiterals[s]; ok {
		return l
	}
	return submitStatusLiterals[SubmitStatusUnrecognized]
}

func (s SubmitStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *SubmitStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = SubmitStatusUnrecognized
	for st, l := range submitStatusLiterals {
		if st != SubmitStatusUnrecognized && l == raw {
			*s = st
		}
	}
	return nil
}

// GeneratedTransaction only carries a usable Transaction when Status is
// GenerateStatusSucceeded.
type GeneratedTransaction struct {
	Status GenerateStatus `json:"status"`
	// hex encoded unsigned transaction
	Transaction *string `json:"transaction,omitempty"`
	Payer       *string `json:"payer,omitempty"`
	// lamports
	Amount *uint64 `json:"amount,omitempty"`
	Fee    *uint64 `json:"fee,omitempty"`
}

// SignedTransaction is a hex encoded serialized transaction
type SignedTransaction string

type SubmitRequest struct {
	SignedTransaction SignedTransaction `json:"signedTransaction"`
}

type SubmitResult struct {
	Status    SubmitStatus `json:"status"`
	Signature string       `json:"signature"`
}

func (r SubmitResult) Confirmed() bool {
	return r.Status == SubmitStatusConfirmed
}
