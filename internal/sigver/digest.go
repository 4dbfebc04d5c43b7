// Package sigver builds domain-separated typed-data digests and recovers
// signer addresses from compact secp256k1 signatures. Digest construction is
// kept separate from recovery so mint logic can be tested against a fake
// recoverer.
package sigver

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/nft-now/sovereignty/internal/model"
)

// Typed-data schemas. The mint key is what a token's validator signs off-line
// for each allowlisted wallet; the login key is signed live by a wallet to
// authenticate against the gRPC surface.
const (
	domainType  = "EIP712Domain(string name,string version)"
	mintKeyType = "MintKey(uint256 tokenId,uint256 nonce,address wallet)"
	loginType   = "Login(bytes32 challenge,address wallet)"
)

// Domain is the deployment's fixed signing domain. Name and version are part
// of every digest, so signatures cannot be replayed across deployments.
type Domain struct {
	Name    string
	Version string
}

// Keccak256 hashes the concatenation of the given byte slices.
func Keccak256(data ...[]byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	var out [32]byte
	h.Sum(out[:0])
	return out
}

// uint256 encodes v as a 32-byte big-endian word.
func uint256(v int64) []byte {
	var w [32]byte
	binary.BigEndian.PutUint64(w[24:], uint64(v))
	return w[:]
}

// wordAddr left-pads an address to a 32-byte word.
func wordAddr(a model.Address) []byte {
	var w [32]byte
	copy(w[32-model.AddressLen:], a.Bytes())
	return w[:]
}

// Separator returns the domain separator hash.
func (d Domain) Separator() [32]byte {
	typeHash := Keccak256([]byte(domainType))
	nameHash := Keccak256([]byte(d.Name))
	verHash := Keccak256([]byte(d.Version))
	return Keccak256(typeHash[:], nameHash[:], verHash[:])
}

// digest finalizes a struct hash under this domain ("\x19\x01" prefix).
func (d Domain) digest(structHash [32]byte) [32]byte {
	sep := d.Separator()
	return Keccak256([]byte{0x19, 0x01}, sep[:], structHash[:])
}

// MintDigest builds the digest a validator signs to allowlist a wallet for a
// token. The nonce is caller-supplied and not tracked here; replay handling
// is the caller's concern.
func (d Domain) MintDigest(tokenID, nonce int64, wallet model.Address) [32]byte {
	typeHash := Keccak256([]byte(mintKeyType))
	structHash := Keccak256(typeHash[:], uint256(tokenID), uint256(nonce), wordAddr(wallet))
	return d.digest(structHash)
}

// LoginDigest builds the digest a wallet signs over a server-issued challenge
// nonce to authenticate.
func (d Domain) LoginDigest(challenge []byte, wallet model.Address) [32]byte {
	typeHash := Keccak256([]byte(loginType))
	challengeHash := Keccak256(challenge)
	structHash := Keccak256(typeHash[:], challengeHash[:], wordAddr(wallet))
	return d.digest(structHash)
}
