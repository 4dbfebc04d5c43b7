package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/nft-now/sovereignty/internal/model"
	"github.com/nft-now/sovereignty/internal/sigver"
)

// ---- local wallet keystore ----

func walletPath() string { return filepath.Join(cfgDir(), "wallet.key") }

// generateWallet creates a fresh secp256k1 key and stores it hex-encoded.
func generateWallet() (model.Address, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return model.Address{}, err
	}
	_ = os.MkdirAll(cfgDir(), 0o700)
	if err := os.WriteFile(walletPath(), []byte(hex.EncodeToString(priv.Serialize())), 0o600); err != nil {
		return model.Address{}, err
	}
	return sigver.PubkeyToAddress(priv.PubKey()), nil
}

// loadWallet reads the stored key and derives its address.
func loadWallet() (*secp256k1.PrivateKey, model.Address, error) {
	b, err := os.ReadFile(walletPath())
	if err != nil {
		return nil, model.Address{}, errors.New("no wallet (run: sov keygen)")
	}
	raw, err := hex.DecodeString(strings.TrimSpace(string(b)))
	if err != nil || len(raw) != 32 {
		return nil, model.Address{}, fmt.Errorf("corrupt wallet file: %w", err)
	}
	priv := secp256k1.PrivKeyFromBytes(raw)
	return priv, sigver.PubkeyToAddress(priv.PubKey()), nil
}

// signDigest produces a compact recoverable signature over the digest.
func signDigest(priv *secp256k1.PrivateKey, digest [32]byte) []byte {
	return ecdsa.SignCompact(priv, digest[:], false)
}
