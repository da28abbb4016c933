package royaltiestest

import (
	"github.com/gagliardetto/solana-go"

	"github.com/scalp-empire/royalties/domain/royalty"
)

// SoldMint builds an unpaid mint with metadata and a last sale
func SoldMint(name string, price uint64, bp uint16) royalty.CheckMintResult {
	saleSig, _ := solana.NewWallet().PrivateKey.Sign([]byte(name))
	return royalty.CheckMintResult{
		Mint: royalty.Mint(solana.NewWallet().PublicKey().String()),
		Metadata: &royalty.MintMetadata{
			Name:  name,
			Image: "https://arweave.net/" + name,
			Creators: []royalty.MintCreator{
				{Address: solana.NewWallet().PublicKey().String(), Verified: 1, Share: 100},
			},
			Royalties: bp,
		},
		Sale: &royalty.MintSale{
			Transaction: saleSig.String(),
			Timestamp:   1672531200,
			Price:       price,
			Royalties:   bp,
		},
		Status: royalty.RoyaltyStatusNotPaid,
	}
}

// UnsoldMint has metadata but no sale
func UnsoldMint(name string) royalty.CheckMintResult {
	r := SoldMint(name, 0, 0)
	r.Sale = nil
	r.Status = royalty.RoyaltyStatusUnknown
	return r
}
