// Package model defines domain entities used by services and repositories.
package model

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

// AddressLen is the byte length of a wallet address.
const AddressLen = 20

// Address is a 20-byte secp256k1-derived wallet address.
type Address [AddressLen]byte

// ZeroAddress is the empty address, used for "no recipient" style parameters.
var ZeroAddress Address

// IsZero reports whether the address is all zero bytes.
func (a Address) IsZero() bool { return a == ZeroAddress }

// Bytes returns the address as a byte slice (for DB args).
func (a Address) Bytes() []byte { return a[:] }

// String renders the address as 0x-prefixed lowercase hex.
func (a Address) String() string { return "0x" + hex.EncodeToString(a[:]) }

// AddressFromBytes converts raw bytes into an Address.
func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressLen {
		return a, fmt.Errorf("address: want %d bytes, got %d", AddressLen, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// ParseAddress parses a 0x-prefixed or bare hex address string.
func ParseAddress(s string) (Address, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	b, err := hex.DecodeString(strings.ToLower(s))
	if err != nil {
		return Address{}, fmt.Errorf("address: %w", err)
	}
	return AddressFromBytes(b)
}

// TokenConfig is the per-token mint configuration. One row per token id,
// created exactly once alongside the article; a missing config means the id
// does not exist.
type TokenConfig struct {
	ID            int64
	Mintable      bool    // off at creation; admin flips it before any mint
	HasAllowlist  bool    // true: only allowlist mint; false: only public mint
	PublicCost    int64   // price per unit on the public path
	AllowlistCost int64   // price per unit on the allowlist path (admin-mutable)
	MaxAmount     int64   // hard supply ceiling across all paths
	MaxPerUser    int64   // per-wallet ceiling (live balance and minted counter)
	MetadataURL   string  // admin or token author may edit
	Author        Address // immutable, set at creation
	Validator     Address // expected signer for allowlist signatures
	CreatedAt     time.Time
}

// Article is one published-article record, one-to-one with a token id.
// The log is append-only; id equals the article count before the append.
type Article struct {
	ID        int64
	Publisher string // caller address at creation time
	Category  string
	Title     string
	Author    string // display name, distinct from TokenConfig.Author
	CreatedAt time.Time
}

// CreateArticleInput carries the author-supplied bundle for article creation.
type CreateArticleInput struct {
	Category         string
	Title            string
	AuthorName       string
	PublicCost       int64
	AllowlistCost    int64
	MaxAmount        int64
	MaxPerUser       int64
	MetadataURL      string
	Validator        Address
	ReserveAmount    int64
	ReserveRecipient Address
}

// RoleGrant is one append-only audit record of an author grant. The live
// capability check never reads this log.
type RoleGrant struct {
	ID        int64
	Account   Address
	CreatedAt time.Time
}

// MintSnapshot is the state read under lock inside a mint transaction and
// handed to the eligibility gates.
type MintSnapshot struct {
	Paused  bool
	Config  *TokenConfig // nil when the id is unconfigured
	Supply  int64        // live total supply from the ledger
	Balance int64        // requester's live balance
	Counter int64        // requester's cumulative minted counter
}

// DropSnapshot is the reduced snapshot for the bulk airdrop path, which
// deliberately skips the per-wallet gates.
type DropSnapshot struct {
	Paused bool
	Config *TokenConfig
	Supply int64
}

// Event kinds recorded in the append-only registry event log.
const (
	EventArticleCreated   = "article_created"
	EventArticleMinted    = "article_minted"
	EventArticleAirdrop   = "article_airdropped"
	EventTreasuryWithdraw = "treasury_withdrawn"
)

// Event is one audit record: a created article, a mint, a whole airdrop
// batch, or a treasury withdrawal.
type Event struct {
	ID         uuid.UUID
	Kind       string
	TokenID    int64
	Actor      Address
	Amount     int64
	Recipients int32 // airdrop batch size; zero otherwise
	CreatedAt  time.Time
}

// Challenge is a single-use login nonce bound to an expiry.
type Challenge struct {
	ID        uuid.UUID
	Nonce     []byte
	ExpiresAt time.Time
}

// Tokens collects issued access tokens for the gRPC surface.
type Tokens struct {
	AccessToken string
	ExpiresAt   time.Time
}
