// Package service contains application services for articles, minting,
// administration, and wallet authentication.
package service

import (
	"context"
	"errors"

	"github.com/nft-now/sovereignty/internal/errs"
	"github.com/nft-now/sovereignty/internal/model"
	"github.com/nft-now/sovereignty/internal/repository"
)

// ArticleService defines the article registry operations.
type ArticleService interface {
	// Create appends an article and its token configuration; caller must
	// hold Author.
	Create(ctx context.Context, caller model.Address, in model.CreateArticleInput) (model.Article, error)
	// GetAll returns the article log in creation order.
	GetAll(ctx context.Context) ([]model.Article, error)
	// GetByID returns one article; ErrIndexOutOfRange past the log's end.
	GetByID(ctx context.Context, id int64) (model.Article, error)
	// EditMetadataURL mutates the token's metadata URL; caller must be an
	// Admin or the token's recorded author.
	EditMetadataURL(ctx context.Context, caller model.Address, tokenID int64, url string) error
	// TokenURI returns the token's metadata URL.
	TokenURI(ctx context.Context, tokenID int64) (string, error)
}

type ArticleServiceImpl struct {
	repo  repository.RegistryRepository
	roles repository.RoleRepository
}

// NewArticleService constructs ArticleService with required dependencies.
func NewArticleService(repo repository.RegistryRepository, roles repository.RoleRepository) *ArticleServiceImpl {
	return &ArticleServiceImpl{repo: repo, roles: roles}
}

// Create validates the bundle, checks the Author capability, and delegates
// the atomic append (article + config + optional reserve pre-mint).
func (s *ArticleServiceImpl) Create(ctx context.Context, caller model.Address, in model.CreateArticleInput) (model.Article, error) {
	if in.Title == "" {
		return model.Article{}, errors.New("validation: empty title")
	}
	if in.PublicCost < 0 || in.AllowlistCost < 0 {
		return model.Article{}, errors.New("validation: negative cost")
	}
	if in.MaxAmount < 0 || in.MaxPerUser < 0 || in.ReserveAmount < 0 {
		return model.Article{}, errors.New("validation: negative cap")
	}
	if in.ReserveAmount > 0 && in.ReserveRecipient.IsZero() {
		return model.Article{}, errors.New("validation: reserve without recipient")
	}

	ok, err := s.roles.IsAuthor(ctx, caller)
	if err != nil {
		return model.Article{}, err
	}
	if !ok {
		return model.Article{}, errs.ErrUnauthorized
	}

	a := model.Article{
		Publisher: caller.String(),
		Category:  in.Category,
		Title:     in.Title,
		Author:    in.AuthorName,
	}
	// New tokens start non-mintable and without an allowlist; an admin flips
	// the flags before any mint path can succeed.
	cfg := model.TokenConfig{
		Mintable:      false,
		HasAllowlist:  false,
		PublicCost:    in.PublicCost,
		AllowlistCost: in.AllowlistCost,
		MaxAmount:     in.MaxAmount,
		MaxPerUser:    in.MaxPerUser,
		MetadataURL:   in.MetadataURL,
		Author:        caller,
		Validator:     in.Validator,
	}
	return s.repo.CreateArticle(ctx, a, cfg, in.ReserveRecipient, in.ReserveAmount)
}

// GetAll returns the whole article log.
func (s *ArticleServiceImpl) GetAll(ctx context.Context) ([]model.Article, error) {
	return s.repo.ListArticles(ctx)
}

// GetByID returns one article by id.
func (s *ArticleServiceImpl) GetByID(ctx context.Context, id int64) (model.Article, error) {
	if id < 0 {
		return model.Article{}, errs.ErrIndexOutOfRange
	}
	a, err := s.repo.GetArticle(ctx, id)
	if err != nil {
		return model.Article{}, err
	}
	return *a, nil
}

// EditMetadataURL applies the combined admin-or-author access check, then
// mutates the URL.
func (s *ArticleServiceImpl) EditMetadataURL(ctx context.Context, caller model.Address, tokenID int64, url string) error {
	cfg, err := s.repo.GetTokenConfig(ctx, tokenID)
	if err != nil {
		return err
	}
	if cfg == nil {
		return errs.ErrNonExistentID
	}
	admin, err := s.roles.IsAdmin(ctx, caller)
	if err != nil {
		return err
	}
	if !admin && caller != cfg.Author {
		return errs.ErrUnauthorized
	}
	return s.repo.SetMetadataURL(ctx, tokenID, url)
}

// TokenURI returns the metadata URL for a configured token.
func (s *ArticleServiceImpl) TokenURI(ctx context.Context, tokenID int64) (string, error) {
	cfg, err := s.repo.GetTokenConfig(ctx, tokenID)
	if err != nil {
		return "", err
	}
	if cfg == nil {
		return "", errs.ErrNonExistentID
	}
	return cfg.MetadataURL, nil
}
