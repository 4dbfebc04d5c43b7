// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/nft-now/sovereignty/internal/model"
)

// RegistryRepository stores the article log and per-token configurations.
type RegistryRepository interface {
	// CreateArticle atomically appends the article (id = count before append),
	// creates its token configuration, marks the publisher as a known author,
	// applies the optional reserve pre-mint, and records the creation event.
	// Returns ErrAlreadyExists if a configuration already holds the id.
	CreateArticle(ctx context.Context, a model.Article, cfg model.TokenConfig, reserveTo model.Address, reserveAmount int64) (model.Article, error)

	// GetArticle loads one article; ErrIndexOutOfRange past the log's end.
	GetArticle(ctx context.Context, id int64) (*model.Article, error)

	// ListArticles returns the whole log in creation order.
	ListArticles(ctx context.Context) ([]model.Article, error)

	// GetTokenConfig loads a token configuration; nil (no error) when the id
	// is unconfigured.
	GetTokenConfig(ctx context.Context, id int64) (*model.TokenConfig, error)

	// SetMintable flips the mintable flag; ErrNotFound on unconfigured id.
	SetMintable(ctx context.Context, id int64, v bool) error

	// SetAllowlist flips the allowlist flag; ErrNotFound on unconfigured id.
	SetAllowlist(ctx context.Context, id int64, v bool) error

	// SetAllowlistCost updates the allowlist price; ErrNotFound on unconfigured id.
	SetAllowlistCost(ctx context.Context, id int64, cost int64) error

	// SetMetadataURL updates the metadata URL; ErrNotFound on unconfigured id.
	SetMetadataURL(ctx context.Context, id int64, url string) error
}
