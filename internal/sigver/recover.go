package sigver

import (
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/nft-now/sovereignty/internal/model"
)

// SignatureLen is the compact signature length: recovery byte plus R and S.
const SignatureLen = 65

// ErrBadSignature indicates a malformed or unrecoverable signature.
var ErrBadSignature = errors.New("bad signature")

// Recoverer recovers the signing address from a digest and a compact
// signature. Implemented by Secp256k1; tests substitute fakes.
type Recoverer interface {
	Recover(digest [32]byte, sig []byte) (model.Address, error)
}

// Secp256k1 recovers signers via compact ECDSA recovery.
type Secp256k1 struct{}

// Recover returns the address whose key produced sig over digest. Both
// header-first compact signatures and trailing-v (wallet convention)
// signatures are accepted.
func (Secp256k1) Recover(digest [32]byte, sig []byte) (model.Address, error) {
	compact, err := normalizeCompact(sig)
	if err != nil {
		return model.Address{}, err
	}
	pub, _, err := ecdsa.RecoverCompact(compact, digest[:])
	if err != nil {
		return model.Address{}, fmt.Errorf("%w: %w", ErrBadSignature, err)
	}
	return PubkeyToAddress(pub), nil
}

// normalizeCompact converts a trailing-v signature [R|S|v] into the
// header-first compact form RecoverCompact expects. Header-first input
// (leading byte 27..34) passes through.
func normalizeCompact(sig []byte) ([]byte, error) {
	if len(sig) != SignatureLen {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrBadSignature, SignatureLen, len(sig))
	}
	if sig[0] >= 27 && sig[0] <= 34 {
		return sig, nil
	}
	v := sig[64]
	if v < 27 {
		v += 27
	}
	out := make([]byte, SignatureLen)
	out[0] = v
	copy(out[1:], sig[:64])
	return out, nil
}

// PubkeyToAddress derives the 20-byte address: the trailing bytes of the
// keccak hash of the uncompressed public key without its 0x04 prefix.
func PubkeyToAddress(pub *secp256k1.PublicKey) model.Address {
	h := Keccak256(pub.SerializeUncompressed()[1:])
	var a model.Address
	copy(a[:], h[32-model.AddressLen:])
	return a
}

// Verifier binds a signing domain to a recoverer. It answers "who signed
// this mint key"; comparing the result to the token's validator is the
// caller's job.
type Verifier struct {
	Domain Domain
	Rec    Recoverer
}

// NewVerifier constructs a Verifier with the production recoverer.
func NewVerifier(domain Domain) *Verifier {
	return &Verifier{Domain: domain, Rec: Secp256k1{}}
}

// RecoverMintSigner recovers the signer of an allowlist mint key.
func (v *Verifier) RecoverMintSigner(tokenID, nonce int64, wallet model.Address, sig []byte) (model.Address, error) {
	return v.Rec.Recover(v.Domain.MintDigest(tokenID, nonce, wallet), sig)
}

// RecoverLoginSigner recovers the signer of a login challenge.
func (v *Verifier) RecoverLoginSigner(challenge []byte, wallet model.Address, sig []byte) (model.Address, error) {
	return v.Rec.Recover(v.Domain.LoginDigest(challenge, wallet), sig)
}
