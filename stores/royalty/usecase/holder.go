package usecase

import (
	"github.com/gagliardetto/solana-go"

	bCtx "github.com/scalp-empire/royalties/base/ctx"
	"github.com/scalp-empire/royalties/domain/royalty"
	"github.com/scalp-empire/royalties/service/royalties"
)

type HolderUseCaseCfg struct {
	Client     royalties.Client
	Inventory  royalty.InventoryReader
	Reconciler royalty.Reconciler
}

type holderImpl struct {
	client     royalties.Client
	inventory  royalty.InventoryReader
	reconciler royalty.Reconciler
}

func NewHolderUseCase(cfg *HolderUseCaseCfg) royalty.HolderUseCase {
	return &holderImpl{
		client:     cfg.Client,
		inventory:  cfg.Inventory,
		reconciler: cfg.Reconciler,
	}
}

func (im *holderImpl) Scan(ctx bCtx.Ctx, owner solana.PublicKey) (*royalty.Reconciliation, error) {
	mints, err := im.inventory.ListOwnedMints(ctx, owner)
	if err != nil {
		ctx.WithField("err", err).Error("inventory.ListOwnedMints failed")
		return nil, err
	}
	if len(mints) == 0 {
		res := im.reconciler.Reconcile(ctx, mints, nil)
		return &res, nil
	}
	return im.Check(ctx, mints)
}

func (im *holderImpl) Check(ctx bCtx.Ctx, mints []royalty.Mint) (*royalty.Reconciliation, error) {
	results, err := im.client.CheckMints(ctx, mints)
	if err != nil {
		ctx.WithField("err", err).Error("client.CheckMints failed")
		return nil, err
	}
	res := im.reconciler.Reconcile(ctx, mints, results)
	return &res, nil
}
