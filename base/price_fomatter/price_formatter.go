package pricefomatter

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

const (
	// LamportsPerSol is the number of lamports in one SOL
	LamportsPerSol = 1_000_000_000

	solSymbol    = "◎"
	missingSol   = "--.-- " + solSymbol
	bpPerWhole   = 10_000
	bpPerPercent = 100
)

type PriceFormatter interface {
	// Price renders lamports as SOL, "--.-- ◎" when nil
	Price(lamports *uint64) string
	// Number renders v with exactly decimals fraction digits
	Number(v decimal.Decimal, decimals int) string
	// BasisPoints renders 330 as "3.3%"
	BasisPoints(bp uint16) string
}

type PriceFormatterCfg struct {
	Locale   language.Tag
	Decimals int
}

// LamportsToSol converts a lamport amount to SOL without rounding
func LamportsToSol(lamports uint64) decimal.Decimal {
	return decimal.NewFromInt(int64(lamports)).Div(decimal.NewFromInt(LamportsPerSol))
}

// RoyaltyDue is price * bp / 10000, truncated to whole lamports
func RoyaltyDue(price uint64, bp uint16) uint64 {
	d := decimal.NewFromInt(int64(price)).
		Mul(decimal.NewFromInt(int64(bp))).
		Div(decimal.NewFromInt(bpPerWhole)).
		Truncate(0)
	return uint64(d.IntPart())
}

// ShortAddress keeps the first and last four characters
func ShortAddress(address string) string {
	if len(address) <= 8 {
		return address
	}
	return address[:4] + "..." + address[len(address)-4:]
}
