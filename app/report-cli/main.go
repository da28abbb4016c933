package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/scalp-empire/royalties/base/config"
	bCtx "github.com/scalp-empire/royalties/base/ctx"
	"github.com/scalp-empire/royalties/base/log"
	pricefomatter "github.com/scalp-empire/royalties/base/price_fomatter"
	"github.com/scalp-empire/royalties/service/royalties"
)

const (
	appName = "report-cli"
	usage   = "usage: report-cli [flags] collections | mints <collectionId> | proofs"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := config.NewFlagSet(appName)
	fs.String("since", "", "pay proofs at or after this time, RFC3339 or unix seconds")
	fs.Int("limit", 100, "pay proofs to list, at most 1000")
	fs.String(config.KeyLocale, "en", "locale for prices")
	if err := config.Load(appName, fs, args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer log.Sync()

	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, usage)
		return 2
	}

	ctx := bCtx.Background()
	r := &reporter{
		client: royalties.NewClient(&royalties.ClientCfg{
			Endpoint: viper.GetString(config.KeyEndpoint),
			ApiKey:   viper.GetString(config.KeyApiKey),
			Timeout:  viper.GetDuration(config.KeyTimeout),
		}),
		formatter: pricefomatter.NewPriceFormatter(&pricefomatter.PriceFormatterCfg{Locale: config.Locale(), Decimals: 2}),
		out:       tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0),
	}
	defer r.out.Flush()

	var err error
	switch fs.Arg(0) {
	case "collections":
		err = r.collections(ctx)
	case "mints":
		if fs.NArg() < 2 {
			fmt.Fprintln(os.Stderr, usage)
			return 2
		}
		id, perr := strconv.ParseInt(fs.Arg(1), 10, 64)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "invalid collection id %q\n", fs.Arg(1))
			return 2
		}
		err = r.mints(ctx, id)
	case "proofs":
		opts := []royalties.GetPayProofsOptionsFunc{royalties.WithLimit(viper.GetInt("limit"))}
		if s := viper.GetString("since"); s != "" {
			since, perr := parseSince(s)
			if perr != nil {
				fmt.Fprintln(os.Stderr, perr)
				return 2
			}
			opts = append(opts, royalties.WithSince(since))
		}
		err = r.proofs(ctx, opts...)
	default:
		fmt.Fprintln(os.Stderr, usage)
		return 2
	}
	if err != nil {
		ctx.WithField("err", err).Error("report failed")
		fmt.Fprintln(os.Stderr, "The royalty service could not be reached")
		return 1
	}
	return 0
}

func parseSince(s string) (time.Time, error) {
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, xerrors.Errorf("invalid --since %q: %w", s, err)
	}
	return t, nil
}
