package wallet

import (
	"github.com/gagliardetto/solana-go"
	"golang.org/x/xerrors"

	bCtx "github.com/scalp-empire/royalties/base/ctx"
	"github.com/scalp-empire/royalties/domain/royalty"
)

// SignTransactionFunc signs tx in place. Browser wallets, hardware keys or
// remote signers plug in through it.
type SignTransactionFunc func(ctx bCtx.Ctx, tx *solana.Transaction) error

type signer struct {
	publicKey       solana.PublicKey
	signTransaction SignTransactionFunc
}

func NewSigner(publicKey solana.PublicKey, signFunc SignTransactionFunc) (royalty.Signer, error) {
	if publicKey == (solana.PublicKey{}) {
		return nil, xerrors.New("public key is required")
	}
	if signFunc == nil {
		return nil, xerrors.New("sign callback is required")
	}
	return &signer{
		publicKey:       publicKey,
		signTransaction: signFunc,
	}, nil
}

func NewKeypairSigner(privateKey solana.PrivateKey) (royalty.Signer, error) {
	return NewSigner(privateKey.PublicKey(), func(ctx bCtx.Ctx, tx *solana.Transaction) error {
		return signTransactionWithPrivateKey(privateKey, tx)
	})
}

// NewSignerFromPrivateKey takes a base58 encoded 64 byte secret key
func NewSignerFromPrivateKey(privateKeyBase58 string) (royalty.Signer, error) {
	privateKey, err := solana.PrivateKeyFromBase58(privateKeyBase58)
	if err != nil {
		return nil, xerrors.Errorf("invalid private key: %w", err)
	}
	return NewKeypairSigner(privateKey)
}

// NewSignerFromKeygenFile reads a solana-keygen JSON keypair
func NewSignerFromKeygenFile(path string) (royalty.Signer, error) {
	privateKey, err := solana.PrivateKeyFromSolanaKeygenFile(path)
	if err != nil {
		return nil, xerrors.Errorf("invalid keypair file %s: %w", path, err)
	}
	return NewKeypairSigner(privateKey)
}

func (s *signer) Address() solana.PublicKey {
	return s.publicKey
}

func (s *signer) SignTransaction(ctx bCtx.Ctx, tx *solana.Transaction) error {
	return s.signTransaction(ctx, tx)
}

func signTransactionWithPrivateKey(privateKey solana.PrivateKey, tx *solana.Transaction) error {
	messageBytes, err := tx.Message.MarshalBinary()
	if err != nil {
		return xerrors.Errorf("failed to marshal message: %w", err)
	}
	signature, err := privateKey.Sign(messageBytes)
	if err != nil {
		return xerrors.Errorf("failed to sign: %w", err)
	}
	accountIndex, err := tx.GetAccountIndex(privateKey.PublicKey())
	if err != nil {
		return xerrors.Errorf("signer is not part of the transaction: %w", err)
	}
	if int(accountIndex) >= int(tx.Message.Header.NumRequiredSignatures) {
		return xerrors.Errorf("signer %s is not a required signer", privateKey.PublicKey())
	}
	if len(tx.Signatures) <= int(accountIndex) {
		sigs := make([]solana.Signature, tx.Message.Header.NumRequiredSignatures)
		copy(sigs, tx.Signatures)
		tx.Signatures = sigs
	}
	tx.Signatures[accountIndex] = signature
	return nil
}
