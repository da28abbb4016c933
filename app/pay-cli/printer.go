package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	pricefomatter "github.com/scalp-empire/royalties/base/price_fomatter"
	"github.com/scalp-empire/royalties/domain/royalty"
)

type printer struct {
	formatter pricefomatter.PriceFormatter
}

func (p *printer) results(results []royalty.CheckMintResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintln(w, "NAME\tMINT\tSTATUS\tLAST SALE\tROYALTY\tDUE")
	for _, r := range results {
		sale, rate, due := "--", "--", p.formatter.Price(nil)
		if r.Sale != nil {
			sale = p.formatter.Price(&r.Sale.Price)
			rate = p.formatter.BasisPoints(r.Sale.Royalties)
			owed := pricefomatter.RoyaltyDue(r.Sale.Price, r.Sale.Royalties)
			due = p.formatter.Price(&owed)
		}
		if !r.Payable() {
			due = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.DisplayName(), pricefomatter.ShortAddress(r.Mint.String()), r.Status, sale, rate, due)
	}
}
