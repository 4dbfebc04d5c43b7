package grpcserver

import (
	"context"

	"github.com/nft-now/sovereignty/internal/model"
)

type ctxKey string

const walletKey ctxKey = "sov.wallet"

// WithWallet stores the authenticated wallet address in context.
func WithWallet(ctx context.Context, a model.Address) context.Context {
	return context.WithValue(ctx, walletKey, a)
}

// WalletFromCtx fetches the authenticated wallet address from context.
func WalletFromCtx(ctx context.Context) (model.Address, bool) {
	v := ctx.Value(walletKey)
	if v == nil {
		return model.Address{}, false
	}
	a, ok := v.(model.Address)
	return a, ok
}
