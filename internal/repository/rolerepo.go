package repository

import (
	"context"

	"github.com/nft-now/sovereignty/internal/model"
)

// RoleRepository stores the live capability bitmaps and the append-only
// grant history. Authorization reads the bitmaps only, never the history.
type RoleRepository interface {
	// IsAdmin reports whether the account holds the Admin capability.
	IsAdmin(ctx context.Context, account model.Address) (bool, error)

	// IsAuthor reports whether the account holds the Author capability.
	IsAuthor(ctx context.Context, account model.Address) (bool, error)

	// GrantAuthor sets the Author bit and appends a RoleGrant history record.
	GrantAuthor(ctx context.Context, target model.Address) error

	// RevokeAuthor clears the Author bit; history records are kept.
	RevokeAuthor(ctx context.Context, target model.Address) error

	// GrantAdmin sets the Admin bit.
	GrantAdmin(ctx context.Context, target model.Address) error

	// RenounceAdmin clears the account's own Admin bit unconditionally.
	// There is no floor check; the last Admin can renounce.
	RenounceAdmin(ctx context.Context, account model.Address) error

	// ListRoleGrants returns the grant history in insertion order.
	ListRoleGrants(ctx context.Context) ([]model.RoleGrant, error)
}
