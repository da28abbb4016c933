// Package config loads binary settings into viper. Precedence, highest first:
// changed flags, the yaml config file, environment variables, flag defaults.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"golang.org/x/xerrors"

	"github.com/scalp-empire/royalties/base/env"
	"github.com/scalp-empire/royalties/base/log"
)

const (
	KeyConfig        = "config"
	KeyDebug         = "debug"
	KeyLogLevel      = "log.level"
	KeyAppName       = "app_name"
	KeyDatadogHost   = "datadog_host"
	KeyEndpoint      = "endpoint"
	KeyApiKey        = "api-key"
	KeySecretKey     = "secret-key"
	KeyRpcUrl        = "rpc-url"
	KeyKeypair       = "keypair"
	KeyLocale        = "locale"
	KeyWorkers       = "workers"
	KeyTimeout       = "timeout"
	KeySubmitTimeout = "submit-timeout"
)

// NewFlagSet declares the flags every binary shares
func NewFlagSet(app string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(app, pflag.ContinueOnError)
	fs.String(KeyConfig, "infra/configs/"+app+"/config.yaml", "yaml config file, skipped when missing")
	fs.Bool(KeyDebug, false, "development logging")
	fs.String(KeyLogLevel, "info", "log level")
	fs.String(KeyDatadogHost, "", "dogstatsd host, metrics only go to the debug log when empty")
	fs.StringP(KeyEndpoint, "e", "", "royalty service endpoint (SR_API)")
	fs.StringP(KeyApiKey, "a", "", "royalty service API key (SR_APIKEY, SE_API_KEY)")
	fs.Duration(KeyTimeout, 30*time.Second, "bound on ordinary requests")
	fs.Duration(KeySubmitTimeout, 0, "bound on submit and override requests, 0 waits for the service")
	return fs
}

// Load parses args into fs and reads everything into viper
func Load(app string, fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}

	viper.SetDefault(KeyAppName, app)
	setEnvDefault(KeyEndpoint, env.RoyaltiesEndpoint())
	setEnvDefault(KeyApiKey, env.RoyaltiesApiKey())
	setEnvDefault(KeySecretKey, env.OperatorSecretKey())
	setEnvDefault(KeyRpcUrl, env.SolanaRpcEndpoint())

	if err := viper.BindPFlags(fs); err != nil {
		return xerrors.Errorf("failed to BindPFlags: %w", err)
	}

	configFile := viper.GetString(KeyConfig)
	if _, err := os.Stat(configFile); err == nil {
		viper.SetConfigType("yaml")
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return xerrors.Errorf("failed to read %s: %w", configFile, err)
		}
	} else if fs.Changed(KeyConfig) {
		return xerrors.Errorf("config file %s: %w", configFile, err)
	}

	return log.Configure(log.Config{
		Level:       viper.GetString(KeyLogLevel),
		Development: viper.GetBool(KeyDebug),
	})
}

// setEnvDefault keeps flag defaults in place when the variable is unset
func setEnvDefault(key, value string) {
	if value != "" {
		viper.SetDefault(key, value)
	}
}

// Locale parses the locale key, language.English when unset or invalid
func Locale() language.Tag {
	tag, err := language.Parse(strings.TrimSpace(viper.GetString(KeyLocale)))
	if err != nil {
		return language.English
	}
	return tag
}
