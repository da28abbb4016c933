package royalty

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/xerrors"

	"github.com/scalp-empire/royalties/base/ptr"
	"github.com/scalp-empire/royalties/base/validator"
)

const maxBasisPoints = 10_000

type RoyaltySimple string

const (
	RoyaltySimpleFull RoyaltySimple = "Full"
	RoyaltySimpleHalf RoyaltySimple = "Half"
)

type RoyaltyMode int

const (
	RoyaltyModeSimpleFull RoyaltyMode = iota
	RoyaltyModeSimpleHalf
	RoyaltyModeCustom
	RoyaltyModeFixed
)

func (m RoyaltyMode) String() string {
	switch m {
	case RoyaltyModeSimpleFull:
		return "SimpleFull"
	case RoyaltyModeSimpleHalf:
		return "SimpleHalf"
	case RoyaltyModeCustom:
		return "Custom"
	case RoyaltyModeFixed:
		return "Fixed"
	}
	return "RoyaltyMode(" + strconv.Itoa(int(m)) + ")"
}

// Amount says how much to pay. Exactly one field must be set.
type Amount struct {
	Royalty       *RoyaltySimple `json:"royalty,omitempty"`
	RoyaltyCustom *uint16        `json:"royaltyCustom,omitempty"`
	RoyaltyAmount *uint64        `json:"royaltyAmount,omitempty"`
}

func FullRoyalty() Amount {
	s := RoyaltySimpleFull
	return Amount{Royalty: &s}
}

func HalfRoyalty() Amount {
	s := RoyaltySimpleHalf
	return Amount{Royalty: &s}
}

// CustomBasisPoints pays bp/10000 of the sale price
func CustomBasisPoints(bp uint16) Amount {
	return Amount{RoyaltyCustom: ptr.Uint16(bp)}
}

// FixedLamports pays a fixed amount regardless of the sale price
func FixedLamports(lamports uint64) Amount {
	return Amount{RoyaltyAmount: ptr.Uint64(lamports)}
}

// ParseAmount accepts full, half, bp:<n> and lamports:<n>
func ParseAmount(s string) (Amount, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "full":
		return FullRoyalty(), nil
	case s == "half":
		return HalfRoyalty(), nil
	case strings.HasPrefix(s, "bp:"):
		n, err := strconv.ParseUint(strings.TrimPrefix(s, "bp:"), 10, 16)
		if err != nil || n > maxBasisPoints {
			return Amount{}, xerrors.Errorf("%w: basis points %q", ErrInvalidAmount, s)
		}
		return CustomBasisPoints(uint16(n)), nil
	case strings.HasPrefix(s, "lamports:"):
		n, err := strconv.ParseUint(strings.TrimPrefix(s, "lamports:"), 10, 64)
		if err != nil {
			return Amount{}, xerrors.Errorf("%w: lamports %q", ErrInvalidAmount, s)
		}
		return FixedLamports(n), nil
	}
	return Amount{}, xerrors.Errorf("%w: %q", ErrInvalidAmount, s)
}

func (a Amount) fieldsSet() int {
	n := 0
	if a.Royalty != nil {
		n++
	}
	if a.RoyaltyCustom != nil {
		n++
	}
	if a.RoyaltyAmount != nil {
		n++
	}
	return n
}

func (a Amount) Validate() error {
	if n := a.fieldsSet(); n != 1 {
		return xerrors.Errorf("%w: %d amount fields set", ErrInvalidAmount, n)
	}
	if a.Royalty != nil && *a.Royalty != RoyaltySimpleFull && *a.Royalty != RoyaltySimpleHalf {
		return xerrors.Errorf("%w: royalty %q", ErrInvalidAmount, *a.Royalty)
	}
	if a.RoyaltyCustom != nil && *a.RoyaltyCustom > maxBasisPoints {
		return xerrors.Errorf("%w: %d basis points", ErrInvalidAmount, *a.RoyaltyCustom)
	}
	return nil
}

// Mode is only meaningful on a valid Amount
func (a Amount) Mode() RoyaltyMode {
	switch {
	case a.RoyaltyCustom != nil:
		return RoyaltyModeCustom
	case a.RoyaltyAmount != nil:
		return RoyaltyModeFixed
	case a.Royalty != nil && *a.Royalty == RoyaltySimpleHalf:
		return RoyaltyModeSimpleHalf
	}
	return RoyaltyModeSimpleFull
}

func (a Amount) String() string {
	switch {
	case a.fieldsSet() != 1:
		return "invalid"
	case a.RoyaltyCustom != nil:
		return "bp:" + strconv.Itoa(int(*a.RoyaltyCustom))
	case a.RoyaltyAmount != nil:
		return "lamports:" + strconv.FormatUint(*a.RoyaltyAmount, 10)
	}
	return strings.ToLower(string(*a.Royalty))
}

// PaymentInformation asks the service for an unsigned payment transaction
type PaymentInformation struct {
	Mint            Mint   `json:"mint" validate:"required,solana_address"`
	SaleTransaction string `json:"saleTransaction" validate:"required"`
	Payer           string `json:"payer" validate:"required,solana_address"`
	Amount
}

func (p PaymentInformation) String() string {
	return fmt.Sprintf("mint %s sale %s payer %s amount %s", p.Mint, p.SaleTransaction, p.Payer, p.Amount)
}

func (p PaymentInformation) Validate() error {
	if err := validator.Default().Struct(p); err != nil {
		return xerrors.Errorf("%w: %v", ErrInvalidParameters, err)
	}
	return p.Amount.Validate()
}

// PaymentOverrideInformation settles a royalty without a holder signature
type PaymentOverrideInformation struct {
	Mint            Mint   `json:"mint" validate:"required,solana_address"`
	SaleTransaction string `json:"saleTransaction" validate:"required"`
	SecretKey       string `json:"secretKey"`
	Amount
}

// String leaves the secret key out
func (p PaymentOverrideInformation) String() string {
	return fmt.Sprintf("mint %s sale %s amount %s", p.Mint, p.SaleTransaction, p.Amount)
}

func (p PaymentOverrideInformation) Validate() error {
	if p.SecretKey == "" {
		return ErrSecretKeyMissing
	}
	if err := validator.Default().Struct(p); err != nil {
		return xerrors.Errorf("%w: %v", ErrInvalidParameters, err)
	}
	return p.Amount.Validate()
}
