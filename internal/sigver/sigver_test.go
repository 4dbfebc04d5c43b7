package sigver

import (
	"bytes"
	"errors"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/nft-now/sovereignty/internal/model"
)

var testDomain = Domain{Name: "Sovereignty", Version: "1"}

func newKey(t *testing.T) (*secp256k1.PrivateKey, model.Address) {
	t.Helper()
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return priv, PubkeyToAddress(priv.PubKey())
}

func sign(priv *secp256k1.PrivateKey, digest [32]byte) []byte {
	return ecdsa.SignCompact(priv, digest[:], false)
}

func TestDigests_Deterministic(t *testing.T) {
	t.Parallel()
	wallet := model.Address{1, 2, 3}

	a := testDomain.MintDigest(7, 42, wallet)
	b := testDomain.MintDigest(7, 42, wallet)
	if a != b {
		t.Fatalf("same inputs must hash equal")
	}
	if a == testDomain.MintDigest(7, 43, wallet) {
		t.Fatalf("nonce must change the digest")
	}
	if a == testDomain.MintDigest(8, 42, wallet) {
		t.Fatalf("token id must change the digest")
	}
	if a == testDomain.MintDigest(7, 42, model.Address{9}) {
		t.Fatalf("wallet must change the digest")
	}
}

func TestDigests_DomainSeparation(t *testing.T) {
	t.Parallel()
	wallet := model.Address{1}
	other := Domain{Name: "Sovereignty", Version: "2"}
	if testDomain.MintDigest(1, 1, wallet) == other.MintDigest(1, 1, wallet) {
		t.Fatalf("digests must differ across domains")
	}

	// A login signature must never be valid as a mint key even when the
	// encoded words collide in length.
	l := testDomain.LoginDigest([]byte{0, 0, 0, 1}, wallet)
	m := testDomain.MintDigest(0, 1, wallet)
	if l == m {
		t.Fatalf("login and mint digests must not collide")
	}
}

func TestRecover_RoundTrip(t *testing.T) {
	t.Parallel()
	priv, addr := newKey(t)
	digest := testDomain.MintDigest(3, 99, addr)

	got, err := Secp256k1{}.Recover(digest, sign(priv, digest))
	if err != nil {
		t.Fatalf("recover: %v", err)
	}
	if got != addr {
		t.Fatalf("recovered %s, want %s", got, addr)
	}
}

func TestRecover_TrailingV(t *testing.T) {
	t.Parallel()
	priv, addr := newKey(t)
	digest := testDomain.LoginDigest([]byte("challenge"), addr)

	compact := sign(priv, digest)
	// Rotate into the wallet convention: [R|S|v] with v in {0,1}.
	trailing := make([]byte, SignatureLen)
	copy(trailing, compact[1:])
	trailing[64] = compact[0] - 27
	if trailing[0] >= 27 && trailing[0] <= 34 {
		// R happens to start in the header range, which the format
		// heuristic cannot tell apart from a header-first signature.
		t.Skip("ambiguous leading byte")
	}

	got, err := Secp256k1{}.Recover(digest, trailing)
	if err != nil {
		t.Fatalf("recover trailing-v: %v", err)
	}
	if got != addr {
		t.Fatalf("recovered %s, want %s", got, addr)
	}
}

func TestRecover_WrongKey(t *testing.T) {
	t.Parallel()
	priv, _ := newKey(t)
	_, other := newKey(t)
	digest := testDomain.MintDigest(1, 1, other)

	got, err := Secp256k1{}.Recover(digest, sign(priv, digest))
	if err != nil {
		t.Fatalf("recover: %v", err)
	}
	if got == other {
		t.Fatalf("wrong key must not recover to the target address")
	}
}

func TestRecover_BadInput(t *testing.T) {
	t.Parallel()
	digest := testDomain.MintDigest(1, 1, model.Address{})

	if _, err := (Secp256k1{}).Recover(digest, []byte{1, 2, 3}); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("short signature: want ErrBadSignature, got %v", err)
	}
	if _, err := (Secp256k1{}).Recover(digest, bytes.Repeat([]byte{0xff}, SignatureLen)); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("garbage signature: want ErrBadSignature, got %v", err)
	}
}

func TestVerifier_MintAndLoginSigners(t *testing.T) {
	t.Parallel()
	v := NewVerifier(testDomain)
	priv, addr := newKey(t)
	wallet := model.Address{5}

	sig := sign(priv, testDomain.MintDigest(2, 7, wallet))
	signer, err := v.RecoverMintSigner(2, 7, wallet, sig)
	if err != nil {
		t.Fatalf("RecoverMintSigner: %v", err)
	}
	if signer != addr {
		t.Fatalf("mint signer %s, want %s", signer, addr)
	}

	// The same signature over different parameters recovers somebody else.
	other, err := v.RecoverMintSigner(2, 8, wallet, sig)
	if err == nil && other == addr {
		t.Fatalf("tampered parameters must not verify")
	}

	nonce := []byte("login nonce")
	lsig := sign(priv, testDomain.LoginDigest(nonce, addr))
	lsigner, err := v.RecoverLoginSigner(nonce, addr, lsig)
	if err != nil {
		t.Fatalf("RecoverLoginSigner: %v", err)
	}
	if lsigner != addr {
		t.Fatalf("login signer %s, want %s", lsigner, addr)
	}
}

func TestPubkeyToAddress_Stable(t *testing.T) {
	t.Parallel()
	priv, _ := newKey(t)
	a := PubkeyToAddress(priv.PubKey())
	b := PubkeyToAddress(priv.PubKey())
	if a != b || a.IsZero() {
		t.Fatalf("address derivation unstable or zero: %s vs %s", a, b)
	}
}
