package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/scalp-empire/royalties/base/config"
	bCtx "github.com/scalp-empire/royalties/base/ctx"
	"github.com/scalp-empire/royalties/base/log"
	"github.com/scalp-empire/royalties/base/metrics"
	"github.com/scalp-empire/royalties/domain/royalty"
	"github.com/scalp-empire/royalties/service/royalties"
	"github.com/scalp-empire/royalties/stores/royalty/usecase"
)

const appName = "override-cli"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := config.NewFlagSet(appName)
	fs.StringP(config.KeySecretKey, "s", "", "royalty service secret key (SE_SECRET_KEY)")
	fs.StringSliceP("mints", "m", []string{}, "mints to override royalties payments")
	fs.Int(config.KeyWorkers, 1, "mints overridden at the same time")
	fs.String(config.KeyLocale, "en", "collation used to order mints")
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
	mints := royalty.ToMints(append(viper.GetStringSlice("mints"), fs.Args()...))
	if len(mints) == 0 {
		fmt.Println("Must specify at least one mint")
		return 1
	}
	if viper.GetString(config.KeyApiKey) == "" {
		fmt.Fprintln(os.Stderr, "an API key is required, use --api-key or SE_API_KEY")
		return 2
	}

	client := royalties.NewClient(&royalties.ClientCfg{
		Endpoint:      viper.GetString(config.KeyEndpoint),
		ApiKey:        viper.GetString(config.KeyApiKey),
		Timeout:       viper.GetDuration(config.KeyTimeout),
		SubmitTimeout: viper.GetDuration(config.KeySubmitTimeout),
	})
	uc := usecase.NewOverrideUseCase(&usecase.OverrideUseCaseCfg{
		Client:     client,
		Reconciler: usecase.NewReconciler(&usecase.ReconcilerCfg{Locale: config.Locale()}),
		SecretKey:  viper.GetString(config.KeySecretKey),
		Workers:    viper.GetInt(config.KeyWorkers),
		Metrics:    metrics.New("royalty"),
	})

	report, err := uc.OverrideMints(ctx, mints)
	switch {
	case errors.Is(err, royalty.ErrSecretKeyMissing):
		fmt.Fprintln(os.Stderr, "a secret key is required, use --secret-key or SE_SECRET_KEY")
		return 2
	case errors.Is(err, royalty.ErrNoMatches):
		fmt.Fprintln(os.Stderr, "No mints found")
		return 1
	case err != nil:
		ctx.WithField("err", err).Error("OverrideMints failed")
		fmt.Fprintln(os.Stderr, "Checking mints failed")
		return 1
	}

	rec := report.Reconciliation
	if rec.Mismatch() {
		fmt.Fprintf(os.Stderr, "The number of requested mints (%d) differs from the number of found mints (%d)\n", rec.Requested, rec.Found)
	}
	for _, m := range report.Skipped {
		fmt.Printf("Skipping %s, no recorded sale\n", m)
	}

	failed := 0
	for _, r := range report.Results {
		if r.Succeeded() {
			fmt.Printf("Override successful for %s\n", r.Mint)
			continue
		}
		failed++
		fmt.Fprintf(os.Stderr, "Could not override royalties for %s\n", r.Mint)
		if r.Result != nil {
			fmt.Fprintf(os.Stderr, "  status: %s\n", r.Result.Status)
		}
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "  error: %v\n", r.Err)
		}
	}
	if failed > 0 {
		return 1
	}
	return 0
}
