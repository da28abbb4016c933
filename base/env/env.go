package env

import (
	"os"
)

// first returns the first non-empty variable among names
func first(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}

// RoyaltiesEndpoint example: https://royalties.scalp-empire.com/v1
func RoyaltiesEndpoint() string {
	return first("SR_API", "NEXT_PUBLIC_SR_API", "REACT_APP_SR_API")
}

// RoyaltiesApiKey is the key sent in the x-api-key header
func RoyaltiesApiKey() string {
	return first("SR_APIKEY", "NEXT_PUBLIC_SR_APIKEY", "REACT_APP_SR_APIKEY", "SE_API_KEY")
}

// OperatorSecretKey unlocks the override endpoint
func OperatorSecretKey() string {
	return os.Getenv("SE_SECRET_KEY")
}

// SolanaRpcEndpoint example: https://api.mainnet-beta.solana.com
func SolanaRpcEndpoint() string {
	return os.Getenv("SOLANA_RPC_ENDPOINT")
}

// AppName example: override-cli
func AppName() string {
	return os.Getenv("APP_NAME")
}
