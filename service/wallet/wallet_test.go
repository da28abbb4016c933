package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/scalp-empire/royalties/base/ctx"
)

type WalletTestSuite struct {
	suite.Suite

	ctx     bCtx.Ctx
	holder  *solana.Wallet
	creator solana.PublicKey
}

func (s *WalletTestSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.holder = solana.NewWallet()
	s.creator = solana.NewWallet().PublicKey()
}

func (s *WalletTestSuite) unsignedTransfer(payer solana.PublicKey) string {
	tx, err := solana.NewTransactionBuilder().
		AddInstruction(system.NewTransferInstruction(49_500_000, payer, s.creator).Build()).
		SetRecentBlockHash(solana.Hash{}).
		SetFeePayer(payer).
		Build()
	s.Require().NoError(err)
	encoded, err := EncodeTransaction(tx)
	s.Require().NoError(err)
	return string(encoded)
}

func (s *WalletTestSuite) TestKeypairSignerRoundTrip() {
	unsigned := s.unsignedTransfer(s.holder.PublicKey())

	tx, err := DecodeTransaction(unsigned)
	s.Require().NoError(err)
	s.False(IsSignedBy(tx, s.holder.PublicKey()))

	signer, err := NewKeypairSigner(s.holder.PrivateKey)
	s.Require().NoError(err)
	s.Equal(s.holder.PublicKey(), signer.Address())
	s.Require().NoError(signer.SignTransaction(s.ctx, tx))
	s.True(IsSignedBy(tx, s.holder.PublicKey()))

	signed, err := EncodeTransaction(tx)
	s.Require().NoError(err)
	s.NotEqual(unsigned, string(signed))

	back, err := DecodeTransaction(string(signed))
	s.Require().NoError(err)
	s.NoError(back.VerifySignatures())
}

func (s *WalletTestSuite) TestSignerFromBase58() {
	signer, err := NewSignerFromPrivateKey(s.holder.PrivateKey.String())
	s.Require().NoError(err)
	s.Equal(s.holder.PublicKey(), signer.Address())

	_, err = NewSignerFromPrivateKey("not-a-key")
	s.Error(err)
}

func (s *WalletTestSuite) TestForeignSignerIsRefused() {
	tx, err := DecodeTransaction(s.unsignedTransfer(s.holder.PublicKey()))
	s.Require().NoError(err)

	stranger, err := NewKeypairSigner(solana.NewWallet().PrivateKey)
	s.Require().NoError(err)
	s.Error(stranger.SignTransaction(s.ctx, tx))
}

func (s *WalletTestSuite) TestCallbackSigner() {
	rejected := errors.New("user rejected the request")
	signer, err := NewSigner(s.holder.PublicKey(), func(ctx bCtx.Ctx, tx *solana.Transaction) error {
		return rejected
	})
	s.Require().NoError(err)
	s.ErrorIs(signer.SignTransaction(s.ctx, &solana.Transaction{}), rejected)

	_, err = NewSigner(solana.PublicKey{}, func(bCtx.Ctx, *solana.Transaction) error { return nil })
	s.Error(err)
	_, err = NewSigner(s.holder.PublicKey(), nil)
	s.Error(err)
}

func (s *WalletTestSuite) TestDecodeErrors() {
	_, err := DecodeTransaction("zz")
	s.Error(err)
	_, err = DecodeTransaction("")
	s.ErrorIs(err, ErrEmptyTransaction)
	_, err = DecodeTransaction("0102")
	s.Error(err)
}

type fakeTokenAccounts struct {
	accounts []*rpc.TokenAccount
	err      error
	failures int
	calls    int
	owner    solana.PublicKey
	conf     *rpc.GetTokenAccountsConfig
}

func (f *fakeTokenAccounts) GetTokenAccountsByOwner(ctx context.Context, owner solana.PublicKey, conf *rpc.GetTokenAccountsConfig, opts *rpc.GetTokenAccountsOpts) (*rpc.GetTokenAccountsResult, error) {
	f.calls++
	f.owner = owner
	f.conf = conf
	if f.err != nil && (f.failures == 0 || f.calls <= f.failures) {
		return nil, f.err
	}
	return &rpc.GetTokenAccountsResult{Value: f.accounts}, nil
}

func (s *WalletTestSuite) tokenAccount(mint string, amount string, decimals int) *rpc.TokenAccount {
	raw := fmt.Sprintf(`{"program":"spl-token","parsed":{"type":"account","info":{"mint":%q,"tokenAmount":{"amount":%q,"decimals":%d}}},"space":165}`, mint, amount, decimals)
	data := &rpc.DataBytesOrJSON{}
	s.Require().NoError(json.Unmarshal([]byte(raw), data))
	return &rpc.TokenAccount{
		Pubkey:  solana.NewWallet().PublicKey(),
		Account: rpc.Account{Data: data},
	}
}

func (s *WalletTestSuite) TestListOwnedMints() {
	nft1 := solana.NewWallet().PublicKey().String()
	nft2 := solana.NewWallet().PublicKey().String()
	fungible := solana.NewWallet().PublicKey().String()
	getter := &fakeTokenAccounts{accounts: []*rpc.TokenAccount{
		s.tokenAccount(nft1, "1", 0),
		s.tokenAccount(fungible, "1000000", 6),
		s.tokenAccount(nft2, "1", 0),
		s.tokenAccount(nft1, "1", 0),
		s.tokenAccount(solana.NewWallet().PublicKey().String(), "0", 0),
		nil,
		{Pubkey: solana.NewWallet().PublicKey()},
	}}
	mints, err := NewInventoryReader(getter).ListOwnedMints(s.ctx, s.holder.PublicKey())
	s.Require().NoError(err)
	s.Len(mints, 2)
	s.Equal(nft1, mints[0].String())
	s.Equal(nft2, mints[1].String())
	s.Equal(s.holder.PublicKey(), getter.owner)
	s.Equal(solana.TokenProgramID, *getter.conf.ProgramId)
}

func (s *WalletTestSuite) TestListOwnedMintsRpcError() {
	getter := &fakeTokenAccounts{err: errors.New("429 too many requests")}
	_, err := NewInventoryReader(getter, WithRetry(2, time.Millisecond)).ListOwnedMints(s.ctx, s.holder.PublicKey())
	s.Error(err)
	s.Equal(2, getter.calls)
}

func (s *WalletTestSuite) TestListOwnedMintsRetriesRpc() {
	nft := solana.NewWallet().PublicKey().String()
	getter := &fakeTokenAccounts{
		err:      errors.New("429 too many requests"),
		failures: 2,
		accounts: []*rpc.TokenAccount{s.tokenAccount(nft, "1", 0)},
	}
	mints, err := NewInventoryReader(getter, WithRetry(3, time.Millisecond)).ListOwnedMints(s.ctx, s.holder.PublicKey())
	s.Require().NoError(err)
	s.Equal(3, getter.calls)
	s.Require().Len(mints, 1)
	s.Equal(nft, mints[0].String())
}

func TestWalletTestSuite(t *testing.T) {
	suite.Run(t, new(WalletTestSuite))
}
