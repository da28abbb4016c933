package royalty

import (
	"github.com/gagliardetto/solana-go"

	bCtx "github.com/scalp-empire/royalties/base/ctx"
)

// Signer holds the key that controls a mint. SignTransaction may block for as
// long as the key holder needs; a returned error means the signature was refused.
type Signer interface {
	Address() solana.PublicKey
	SignTransaction(ctx bCtx.Ctx, tx *solana.Transaction) error
}

// InventoryReader lists the mints a wallet currently holds
type InventoryReader interface {
	ListOwnedMints(ctx bCtx.Ctx, owner solana.PublicKey) ([]Mint, error)
}
