package pricefomatter

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type impl struct {
	printer  *message.Printer
	decimals int
}

func NewPriceFormatter(cfg *PriceFormatterCfg) PriceFormatter {
	tag := cfg.Locale
	if tag == language.Und {
		tag = language.English
	}
	decimals := cfg.Decimals
	if decimals <= 0 {
		decimals = 2
	}
	return &impl{
		printer:  message.NewPrinter(tag),
		decimals: decimals,
	}
}

func (f *impl) Price(lamports *uint64) string {
	if lamports == nil {
		return missingSol
	}
	return f.Number(LamportsToSol(*lamports), f.decimals) + " " + solSymbol
}

func (f *impl) Number(v decimal.Decimal, decimals int) string {
	rounded := v.Round(int32(decimals)).InexactFloat64()
	return f.printer.Sprint(number.Decimal(rounded,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}

func (f *impl) BasisPoints(bp uint16) string {
	pct := decimal.NewFromInt(int64(bp)).Div(decimal.NewFromInt(bpPerPercent))
	return f.printer.Sprint(number.Decimal(pct.InexactFloat64(), number.MaxFractionDigits(2))) + "%"
}
