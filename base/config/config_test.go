package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
)

type configSuite struct {
	suite.Suite

	dir string
}

func (s *configSuite) SetupTest() {
	viper.Reset()
	s.dir = s.T().TempDir()
	for _, k := range []string{"SR_API", "NEXT_PUBLIC_SR_API", "REACT_APP_SR_API", "SR_APIKEY", "NEXT_PUBLIC_SR_APIKEY", "REACT_APP_SR_APIKEY", "SE_API_KEY", "SE_SECRET_KEY", "SOLANA_RPC_ENDPOINT"} {
		s.T().Setenv(k, "")
	}
}

func (s *configSuite) TearDownTest() {
	viper.Reset()
}

func (s *configSuite) writeConfig(content string) string {
	path := filepath.Join(s.dir, "config.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *configSuite) TestFlagBeatsFileBeatsEnv() {
	s.T().Setenv("SR_API", "https://env.example/v1")
	s.T().Setenv("SE_API_KEY", "env-key")
	s.T().Setenv("SE_SECRET_KEY", "env-secret")
	path := s.writeConfig("endpoint: https://file.example/v1\napi-key: file-key\nlog:\n  level: warn\n")

	fs := NewFlagSet("override-cli")
	s.Require().NoError(Load("override-cli", fs, []string{"--config", path, "--api-key", "flag-key"}))

	s.Equal("flag-key", viper.GetString(KeyApiKey))
	s.Equal("https://file.example/v1", viper.GetString(KeyEndpoint))
	s.Equal("env-secret", viper.GetString(KeySecretKey))
	s.Equal("warn", viper.GetString(KeyLogLevel))
	s.Equal("override-cli", viper.GetString(KeyAppName))
}

func (s *configSuite) TestMissingDefaultFileIsSkipped() {
	fs := NewFlagSet("report-cli")
	s.Require().NoError(Load("report-cli", fs, []string{"-e", "https://flag.example/v1"}))
	s.Equal("https://flag.example/v1", viper.GetString(KeyEndpoint))
	s.Equal("", viper.GetString(KeyApiKey))
	s.Equal(int64(30), int64(viper.GetDuration(KeyTimeout).Seconds()))
	s.Zero(viper.GetDuration(KeySubmitTimeout))
}

func (s *configSuite) TestMissingExplicitFileFails() {
	fs := NewFlagSet("pay-cli")
	err := Load("pay-cli", fs, []string{"--config", filepath.Join(s.dir, "absent.yaml")})
	s.Error(err)
}

func (s *configSuite) TestBadLogLevel() {
	fs := NewFlagSet("pay-cli")
	err := Load("pay-cli", fs, []string{"--log.level", "loud"})
	s.Error(err)
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(configSuite))
}
