package registry

import (
	"errors"
	"math"
	"testing"

	"github.com/nft-now/sovereignty/internal/errs"
	"github.com/nft-now/sovereignty/internal/model"
)

func openConfig() *model.TokenConfig {
	return &model.TokenConfig{
		ID:            0,
		Mintable:      true,
		HasAllowlist:  false,
		PublicCost:    10,
		AllowlistCost: 5,
		MaxAmount:     100,
		MaxPerUser:    3,
	}
}

func TestMintCheck_GateOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		snap model.MintSnapshot
		want error
	}{
		{
			name: "paused wins over everything",
			snap: model.MintSnapshot{Paused: true, Config: nil},
			want: errs.ErrPaused,
		},
		{
			name: "missing config",
			snap: model.MintSnapshot{Config: nil},
			want: errs.ErrNonExistentID,
		},
		{
			name: "not mintable",
			snap: model.MintSnapshot{Config: &model.TokenConfig{Mintable: false}},
			want: errs.ErrNonMintable,
		},
		{
			name: "supply ceiling",
			snap: model.MintSnapshot{Config: openConfig(), Supply: 100},
			want: errs.ErrLowSupply,
		},
		{
			name: "per-wallet balance ceiling",
			snap: model.MintSnapshot{Config: openConfig(), Balance: 3},
			want: errs.ErrMaxPerWallet,
		},
		{
			name: "cumulative counter ceiling",
			snap: model.MintSnapshot{Config: openConfig(), Counter: 3},
			want: errs.ErrExceedsBalance,
		},
		{
			name: "all gates pass",
			snap: model.MintSnapshot{Config: openConfig()},
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := MintCheck(tc.snap, 1)
			if !errors.Is(err, tc.want) {
				t.Fatalf("MintCheck: want %v, got %v", tc.want, err)
			}
		})
	}
}

func TestMintCheck_ExactCeilingAllowed(t *testing.T) {
	t.Parallel()
	// Supply+amount == MaxAmount is still fine; one past is not.
	snap := model.MintSnapshot{Config: openConfig(), Supply: 99}
	if err := MintCheck(snap, 1); err != nil {
		t.Fatalf("exact supply ceiling should pass: %v", err)
	}
	if err := MintCheck(snap, 2); !errors.Is(err, errs.ErrLowSupply) {
		t.Fatalf("want ErrLowSupply, got %v", err)
	}
}

func TestMintCheck_CounterBindsAfterTransfer(t *testing.T) {
	t.Parallel()
	// A wallet that minted its cap and transferred everything away has a zero
	// balance but a full counter; the counter gate still rejects.
	snap := model.MintSnapshot{Config: openConfig(), Balance: 0, Counter: 3}
	if err := MintCheck(snap, 1); !errors.Is(err, errs.ErrExceedsBalance) {
		t.Fatalf("want ErrExceedsBalance, got %v", err)
	}
}

func TestPublicCheck_WrapsGateFailures(t *testing.T) {
	t.Parallel()
	snap := model.MintSnapshot{Paused: true}
	err := PublicCheck(snap, 1, 100)
	if !errors.Is(err, errs.ErrCannotMint) {
		t.Fatalf("want ErrCannotMint wrapper, got %v", err)
	}
	if !errors.Is(err, errs.ErrPaused) {
		t.Fatalf("wrapper must keep the specific gate: %v", err)
	}
}

func TestPublicCheck_AllowlistExclusivity(t *testing.T) {
	t.Parallel()
	cfg := openConfig()
	cfg.HasAllowlist = true
	err := PublicCheck(model.MintSnapshot{Config: cfg}, 1, 100)
	if !errors.Is(err, errs.ErrAllowlistOnly) {
		t.Fatalf("public path on allowlisted token: want ErrAllowlistOnly, got %v", err)
	}
}

func TestPublicCheck_Payment(t *testing.T) {
	t.Parallel()
	snap := model.MintSnapshot{Config: openConfig()}

	if err := PublicCheck(snap, 2, 19); !errors.Is(err, errs.ErrNotEnoughPayment) {
		t.Fatalf("underpayment: want ErrNotEnoughPayment, got %v", err)
	}
	if err := PublicCheck(snap, 2, 20); err != nil {
		t.Fatalf("exact payment should pass: %v", err)
	}
	// Overpayment is accepted, not refunded.
	if err := PublicCheck(snap, 2, 1000); err != nil {
		t.Fatalf("overpayment should pass: %v", err)
	}
}

func TestPublicCheck_PaymentProductOverflow(t *testing.T) {
	t.Parallel()
	// cost*amount == 2^64 wraps to zero in int64; a wrapped product must not
	// let a zero payment through.
	cfg := openConfig()
	cfg.PublicCost = 1 << 33
	cfg.MaxAmount = 1 << 40
	cfg.MaxPerUser = 1 << 40
	snap := model.MintSnapshot{Config: cfg}

	if err := PublicCheck(snap, 1<<31, 0); !errors.Is(err, errs.ErrNotEnoughPayment) {
		t.Fatalf("overflowing total must fail payment gate, got %v", err)
	}
	if err := PublicCheck(snap, 1<<31, math.MaxInt64); !errors.Is(err, errs.ErrNotEnoughPayment) {
		t.Fatalf("unrepresentable total must fail even at max payment, got %v", err)
	}
	// A representable total at the same price still works.
	if err := PublicCheck(snap, 2, 1<<34); err != nil {
		t.Fatalf("in-range total should pass: %v", err)
	}
}

func TestAllowlistCheck_PaymentProductOverflow(t *testing.T) {
	t.Parallel()
	cfg := openConfig()
	cfg.HasAllowlist = true
	cfg.AllowlistCost = 1 << 33
	cfg.MaxAmount = 1 << 40
	cfg.MaxPerUser = 1 << 40

	err := AllowlistCheck(model.MintSnapshot{Config: cfg}, 1<<31, 0)
	if !errors.Is(err, errs.ErrNotEnoughPayment) {
		t.Fatalf("overflowing total must fail payment gate, got %v", err)
	}
}

func TestMintCheck_CeilingGatesNearIntMax(t *testing.T) {
	t.Parallel()
	// Sum-form ceiling checks would wrap here; the gates must stay exact.
	cfg := openConfig()
	cfg.MaxAmount = math.MaxInt64
	cfg.MaxPerUser = math.MaxInt64
	snap := model.MintSnapshot{Config: cfg, Supply: math.MaxInt64 - 1}

	if err := MintCheck(snap, 1); err != nil {
		t.Fatalf("exact ceiling at int64 max should pass: %v", err)
	}
	if err := MintCheck(snap, 2); !errors.Is(err, errs.ErrLowSupply) {
		t.Fatalf("want ErrLowSupply past int64 max, got %v", err)
	}

	snap = model.MintSnapshot{Config: cfg, Counter: math.MaxInt64}
	if err := MintCheck(snap, 1); !errors.Is(err, errs.ErrExceedsBalance) {
		t.Fatalf("want ErrExceedsBalance at saturated counter, got %v", err)
	}
}

func TestPublicCheck_FreeMint(t *testing.T) {
	t.Parallel()
	cfg := openConfig()
	cfg.PublicCost = 0
	if err := PublicCheck(model.MintSnapshot{Config: cfg}, 3, 0); err != nil {
		t.Fatalf("zero-cost mint with zero payment should pass: %v", err)
	}
}

func TestAllowlistCheck_InverseGateAndPrice(t *testing.T) {
	t.Parallel()
	cfg := openConfig()

	// Allowlist path on a public token is rejected.
	err := AllowlistCheck(model.MintSnapshot{Config: cfg}, 1, 100)
	if !errors.Is(err, errs.ErrAllowlistOnly) {
		t.Fatalf("allowlist path on public token: want ErrAllowlistOnly, got %v", err)
	}

	cfg.HasAllowlist = true
	snap := model.MintSnapshot{Config: cfg}

	// The allowlist price applies, not the public one.
	if err := AllowlistCheck(snap, 2, 10); err != nil {
		t.Fatalf("allowlist price 5*2=10 should pass: %v", err)
	}
	if err := AllowlistCheck(snap, 2, 9); !errors.Is(err, errs.ErrNotEnoughPayment) {
		t.Fatalf("want ErrNotEnoughPayment, got %v", err)
	}

	// Shared gates still wrap.
	err = AllowlistCheck(model.MintSnapshot{Paused: true, Config: cfg}, 1, 10)
	if !errors.Is(err, errs.ErrCannotMint) || !errors.Is(err, errs.ErrPaused) {
		t.Fatalf("want wrapped ErrPaused, got %v", err)
	}
}

func TestDropCheck(t *testing.T) {
	t.Parallel()
	cfg := openConfig()
	cfg.Mintable = false // airdrop ignores the mintable flag
	cfg.MaxPerUser = 0   // and the per-wallet caps

	if err := DropCheck(model.DropSnapshot{Paused: true, Config: cfg}, 1); !errors.Is(err, errs.ErrPaused) {
		t.Fatalf("want ErrPaused, got %v", err)
	}
	if err := DropCheck(model.DropSnapshot{}, 1); !errors.Is(err, errs.ErrNonExistentID) {
		t.Fatalf("want ErrNonExistentID, got %v", err)
	}
	if err := DropCheck(model.DropSnapshot{Config: cfg, Supply: 98}, 3); !errors.Is(err, errs.ErrLowSupply) {
		t.Fatalf("want ErrLowSupply, got %v", err)
	}
	if err := DropCheck(model.DropSnapshot{Config: cfg, Supply: 97}, 3); err != nil {
		t.Fatalf("drop within ceiling should pass: %v", err)
	}
}
