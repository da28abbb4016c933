package env

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoyaltiesEndpointPrecedence(t *testing.T) {
	req := require.New(t)
	t.Setenv("SR_API", "")
	t.Setenv("NEXT_PUBLIC_SR_API", "")
	t.Setenv("REACT_APP_SR_API", "https://react.example/v1")
	req.Equal("https://react.example/v1", RoyaltiesEndpoint())

	t.Setenv("NEXT_PUBLIC_SR_API", "https://next.example/v1")
	req.Equal("https://next.example/v1", RoyaltiesEndpoint())

	t.Setenv("SR_API", "https://plain.example/v1")
	req.Equal("https://plain.example/v1", RoyaltiesEndpoint())
}

func TestRoyaltiesApiKeyFallsBackToCliVariable(t *testing.T) {
	req := require.New(t)
	t.Setenv("SR_APIKEY", "")
	t.Setenv("NEXT_PUBLIC_SR_APIKEY", "")
	t.Setenv("REACT_APP_SR_APIKEY", "")
	t.Setenv("SE_API_KEY", "cli-key")
	req.Equal("cli-key", RoyaltiesApiKey())
}
