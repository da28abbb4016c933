package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	bCtx "github.com/scalp-empire/royalties/base/ctx"
	pricefomatter "github.com/scalp-empire/royalties/base/price_fomatter"
	"github.com/scalp-empire/royalties/service/royalties"
)

type reporter struct {
	client    royalties.Client
	formatter pricefomatter.PriceFormatter
	out       *tabwriter.Writer
}

func (r *reporter) collections(ctx bCtx.Ctx) error {
	cols, err := r.client.GetCollections(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, "ID\tNAME\tITEMS\tMINT PRICE\tFLOOR\tOWNERS")
	for _, c := range cols {
		owners := "--"
		if c.Owners != nil {
			owners = fmt.Sprint(*c.Owners)
		}
		fmt.Fprintf(r.out, "%d\t%s\t%d\t%s\t%s\t%s\n",
			c.Id, c.Name, c.Items, r.formatter.Price(&c.MintPrice), r.formatter.Price(c.FloorPrice), owners)
	}
	return nil
}

func (r *reporter) mints(ctx bCtx.Ctx, collectionId int64) error {
	mints, err := r.client.GetCollectionMints(ctx, collectionId)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "%d mint(s) in collection %d\n", len(mints), collectionId)
	for _, m := range mints {
		fmt.Fprintln(r.out, m)
	}
	return nil
}

func (r *reporter) proofs(ctx bCtx.Ctx, opts ...royalties.GetPayProofsOptionsFunc) error {
	proofs, err := r.client.GetPayProofs(ctx, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, "TIME\tMINT\tPAYER\tPAID\tTRANSACTION")
	for _, p := range proofs {
		payer := "override"
		if p.Payer != "" {
			payer = pricefomatter.ShortAddress(p.Payer)
		}
		paid := p.Paid
		fmt.Fprintf(r.out, "%s\t%s\t%s\t%s\t%s\n",
			time.Unix(p.TransactionTime, 0).UTC().Format(time.RFC3339),
			pricefomatter.ShortAddress(p.Mint.String()),
			payer,
			r.formatter.Price(&paid),
			p.Transaction)
	}
	return nil
}
