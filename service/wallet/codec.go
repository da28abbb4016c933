package wallet

import (
	"encoding/hex"
	"strings"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"golang.org/x/xerrors"

	"github.com/scalp-empire/royalties/domain/royalty"
)

var ErrEmptyTransaction = xerrors.New("empty transaction")

// DecodeTransaction parses a hex encoded wire transaction
func DecodeTransaction(hexTx string) (*solana.Transaction, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(hexTx), "0x"))
	if err != nil {
		return nil, xerrors.Errorf("hex.DecodeString failed: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyTransaction
	}
	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(raw))
	if err != nil {
		return nil, xerrors.Errorf("solana.TransactionFromDecoder failed: %w", err)
	}
	return tx, nil
}

// EncodeTransaction serializes tx to hex. Missing signatures are written as
// zero signatures, the wire form of a partially signed transaction.
func EncodeTransaction(tx *solana.Transaction) (royalty.SignedTransaction, error) {
	required := int(tx.Message.Header.NumRequiredSignatures)
	if len(tx.Signatures) < required {
		sigs := make([]solana.Signature, required)
		copy(sigs, tx.Signatures)
		tx.Signatures = sigs
	}
	raw, err := tx.MarshalBinary()
	if err != nil {
		return "", xerrors.Errorf("tx.MarshalBinary failed: %w", err)
	}
	return royalty.SignedTransaction(hex.EncodeToString(raw)), nil
}

// IsSignedBy reports whether pub has a non zero signature slot in tx
func IsSignedBy(tx *solana.Transaction, pub solana.PublicKey) bool {
	idx, err := tx.GetAccountIndex(pub)
	if err != nil || int(idx) >= len(tx.Signatures) {
		return false
	}
	return tx.Signatures[idx] != (solana.Signature{})
}
