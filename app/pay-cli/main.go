package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/scalp-empire/royalties/base/config"
	bCtx "github.com/scalp-empire/royalties/base/ctx"
	"github.com/scalp-empire/royalties/base/log"
	"github.com/scalp-empire/royalties/base/metrics"
	pricefomatter "github.com/scalp-empire/royalties/base/price_fomatter"
	"github.com/scalp-empire/royalties/domain/royalty"
	"github.com/scalp-empire/royalties/service/royalties"
	"github.com/scalp-empire/royalties/service/wallet"
	"github.com/scalp-empire/royalties/stores/royalty/usecase"
)

const appName = "pay-cli"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := config.NewFlagSet(appName)
	fs.StringP(config.KeyKeypair, "k", "", "solana-keygen keypair file of the payer")
	fs.String(config.KeyRpcUrl, "", "Solana RPC used to list the payer's mints (SOLANA_RPC_ENDPOINT)")
	fs.StringSliceP("mints", "m", []string{}, "mints to pay, the payer's wallet is scanned when empty")
	fs.String("amount", "full", "full, half, bp:<basis points> or lamports:<amount>")
	fs.Bool("recheck", false, "query the sale again right before paying")
	fs.Bool("dry-run", false, "list what is owed without paying")
	fs.String(config.KeyLocale, "en", "locale for names and prices")
	if err := config.Load(appName, fs, args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer log.Sync()
	defer metrics.Close()

	ctx := bCtx.Background()
	amount, err := royalty.ParseAmount(viper.GetString("amount"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	keypair := expandHome(viper.GetString(config.KeyKeypair))
	if keypair == "" {
		fmt.Fprintln(os.Stderr, "a payer keypair is required, use --keypair")
		return 2
	}
	signer, err := wallet.NewSignerFromKeygenFile(keypair)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	client := royalties.NewClient(&royalties.ClientCfg{
		Endpoint:      viper.GetString(config.KeyEndpoint),
		ApiKey:        viper.GetString(config.KeyApiKey),
		Timeout:       viper.GetDuration(config.KeyTimeout),
		SubmitTimeout: viper.GetDuration(config.KeySubmitTimeout),
	})
	locale := config.Locale()
	holder := usecase.NewHolderUseCase(&usecase.HolderUseCaseCfg{
		Client:     client,
		Inventory:  wallet.NewRpcInventoryReader(viper.GetString(config.KeyRpcUrl)),
		Reconciler: usecase.NewReconciler(&usecase.ReconcilerCfg{Locale: locale}),
	})
	formatter := pricefomatter.NewPriceFormatter(&pricefomatter.PriceFormatterCfg{Locale: locale, Decimals: 2})
	p := &printer{formatter: formatter}

	mints := royalty.ToMints(append(viper.GetStringSlice("mints"), fs.Args()...))
	lookup := func(ctx bCtx.Ctx) (*royalty.Reconciliation, error) {
		if len(mints) > 0 {
			return holder.Check(ctx, mints)
		}
		return holder.Scan(ctx, signer.Address())
	}

	fmt.Printf("Payer %s\n", signer.Address())
	rec, err := lookup(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("lookup failed")
		fmt.Fprintln(os.Stderr, "Checking mints failed")
		return 1
	}
	if rec.Outcome == royalty.ReconcileOutcomeNoMatches {
		fmt.Fprintln(os.Stderr, "No mints found")
		return 1
	}
	if rec.Mismatch() {
		fmt.Fprintf(os.Stderr, "The number of requested mints (%d) differs from the number of found mints (%d)\n", rec.Requested, rec.Found)
	}
	p.results(rec.Results)

	payable := rec.Payable()
	if len(payable) == 0 {
		fmt.Println("Nothing to pay")
		return 0
	}
	if viper.GetBool("dry-run") {
		return 0
	}

	wf := usecase.NewPaymentWorkflow(&usecase.PaymentWorkflowCfg{
		Client:      client,
		Signer:      signer,
		Metrics:     metrics.New("royalty"),
		RecheckSale: viper.GetBool("recheck"),
		OnStateChange: func(ctx bCtx.Ctx, change royalty.StateChange) {
			if step := stepMessage(change.To); step != "" {
				fmt.Printf("  %s\n", step)
			}
		},
		OnConfirmed: func(ctx bCtx.Ctx, receipt royalty.Receipt) {
			refreshed, err := lookup(ctx)
			if err != nil {
				ctx.WithField("err", err).Warn("inventory refresh failed")
				return
			}
			fmt.Printf("  %d mint(s) still owe royalties\n", len(refreshed.Payable()))
		},
	})

	failed := 0
	for _, target := range payable {
		fmt.Printf("Paying %s royalties for %s\n", amount, target.DisplayName())
		receipt, err := wf.Pay(ctx, target, amount)
		if err != nil {
			failed++
			var pe *royalty.PaymentError
			if errors.As(err, &pe) {
				fmt.Fprintf(os.Stderr, "  Payment failed: %s\n", pe.Reason.Message())
			} else {
				fmt.Fprintf(os.Stderr, "  Payment failed: %v\n", err)
			}
			continue
		}
		fmt.Printf("  Paid %s, transaction %s\n", formatter.Price(receipt.Paid), receipt.Signature)
	}
	if failed > 0 {
		return 1
	}
	return 0
}

func stepMessage(s royalty.PaymentState) string {
	switch s {
	case royalty.PaymentStateCheckingSale:
		return "Checking the sale"
	case royalty.PaymentStateGeneratingTransaction:
		return "Generating royalty payment transaction"
	case royalty.PaymentStateAwaitingSignature:
		return "Signing royalty payment transaction"
	case royalty.PaymentStateSubmitting:
		return "Waiting for network confirmation"
	}
	return ""
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return home + path[1:]
}
