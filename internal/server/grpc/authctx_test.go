package grpcserver

import (
	"context"
	"testing"

	"github.com/nft-now/sovereignty/internal/model"
)

func TestWalletCtx_RoundTrip(t *testing.T) {
	t.Parallel()
	a := model.Address{1, 2, 3}
	ctx := WithWallet(context.Background(), a)

	got, ok := WalletFromCtx(ctx)
	if !ok || got != a {
		t.Fatalf("WalletFromCtx: got=%v ok=%v", got, ok)
	}
}

func TestWalletCtx_Empty(t *testing.T) {
	t.Parallel()
	if _, ok := WalletFromCtx(context.Background()); ok {
		t.Fatalf("empty context must not carry a wallet")
	}
}
