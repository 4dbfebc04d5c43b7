package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nft-now/sovereignty/internal/errs"
	"github.com/nft-now/sovereignty/internal/model"
	"github.com/nft-now/sovereignty/internal/repository"
)

type fakeRegistryRepo struct {
	createInArticle model.Article
	createInCfg     model.TokenConfig
	createInResTo   model.Address
	createInResAmt  int64
	createOut       model.Article
	createErr       error

	getOut  *model.Article
	getErr  error
	listOut []model.Article
	listErr error

	cfgOut *model.TokenConfig
	cfgErr error

	setURLInID  int64
	setURLInURL string
	flagErr     error
}

var _ repository.RegistryRepository = (*fakeRegistryRepo)(nil)

func (f *fakeRegistryRepo) CreateArticle(_ context.Context, a model.Article, cfg model.TokenConfig, reserveTo model.Address, reserveAmount int64) (model.Article, error) {
	f.createInArticle, f.createInCfg = a, cfg
	f.createInResTo, f.createInResAmt = reserveTo, reserveAmount
	return f.createOut, f.createErr
}
func (f *fakeRegistryRepo) GetArticle(_ context.Context, id int64) (*model.Article, error) {
	return f.getOut, f.getErr
}
func (f *fakeRegistryRepo) ListArticles(_ context.Context) ([]model.Article, error) {
	return append([]model.Article(nil), f.listOut...), f.listErr
}
func (f *fakeRegistryRepo) GetTokenConfig(_ context.Context, id int64) (*model.TokenConfig, error) {
	return f.cfgOut, f.cfgErr
}
func (f *fakeRegistryRepo) SetMintable(_ context.Context, id int64, v bool) error   { return f.flagErr }
func (f *fakeRegistryRepo) SetAllowlist(_ context.Context, id int64, v bool) error  { return f.flagErr }
func (f *fakeRegistryRepo) SetAllowlistCost(_ context.Context, id, c int64) error   { return f.flagErr }
func (f *fakeRegistryRepo) SetMetadataURL(_ context.Context, id int64, url string) error {
	f.setURLInID, f.setURLInURL = id, url
	return f.flagErr
}

type fakeRoleRepo struct {
	admins  map[model.Address]bool
	authors map[model.Address]bool
	roleErr error

	grantAuthorIn  model.Address
	revokeAuthorIn model.Address
	grantAdminIn   model.Address
	renounceIn     model.Address
	mutErr         error

	grantsOut []model.RoleGrant
}

var _ repository.RoleRepository = (*fakeRoleRepo)(nil)

func (f *fakeRoleRepo) IsAdmin(_ context.Context, a model.Address) (bool, error) {
	return f.admins[a], f.roleErr
}
func (f *fakeRoleRepo) IsAuthor(_ context.Context, a model.Address) (bool, error) {
	return f.authors[a], f.roleErr
}
func (f *fakeRoleRepo) GrantAuthor(_ context.Context, t model.Address) error {
	f.grantAuthorIn = t
	return f.mutErr
}
func (f *fakeRoleRepo) RevokeAuthor(_ context.Context, t model.Address) error {
	f.revokeAuthorIn = t
	return f.mutErr
}
func (f *fakeRoleRepo) GrantAdmin(_ context.Context, t model.Address) error {
	f.grantAdminIn = t
	return f.mutErr
}
func (f *fakeRoleRepo) RenounceAdmin(_ context.Context, a model.Address) error {
	f.renounceIn = a
	return f.mutErr
}
func (f *fakeRoleRepo) ListRoleGrants(_ context.Context) ([]model.RoleGrant, error) {
	return append([]model.RoleGrant(nil), f.grantsOut...), f.mutErr
}

func validInput() model.CreateArticleInput {
	return model.CreateArticleInput{
		Category:    "essay",
		Title:       "On Sovereignty",
		AuthorName:  "A. Writer",
		PublicCost:  10,
		MaxAmount:   100,
		MaxPerUser:  3,
		MetadataURL: "ipfs://meta/0",
		Validator:   model.Address{9},
	}
}

func TestArticleService_Create_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	author := model.Address{1}
	roles := &fakeRoleRepo{authors: map[model.Address]bool{author: true}}
	repo := &fakeRegistryRepo{}
	s := NewArticleService(repo, roles)

	in := validInput()
	in.Title = ""
	if _, err := s.Create(ctx, author, in); err == nil {
		t.Fatalf("want validation error on empty title")
	}

	in = validInput()
	in.PublicCost = -1
	if _, err := s.Create(ctx, author, in); err == nil {
		t.Fatalf("want validation error on negative cost")
	}

	in = validInput()
	in.ReserveAmount = 5
	if _, err := s.Create(ctx, author, in); err == nil {
		t.Fatalf("want validation error on reserve without recipient")
	}

	if repo.createInArticle.Title != "" {
		t.Fatalf("repo must not be called on invalid input")
	}
}

func TestArticleService_Create_RequiresAuthor(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	caller := model.Address{1}
	roles := &fakeRoleRepo{authors: map[model.Address]bool{}}
	s := NewArticleService(&fakeRegistryRepo{}, roles)

	_, err := s.Create(ctx, caller, validInput())
	if !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
}

func TestArticleService_Create_BuildsConfig(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	caller := model.Address{1}
	roles := &fakeRoleRepo{authors: map[model.Address]bool{caller: true}}
	repo := &fakeRegistryRepo{createOut: model.Article{ID: 0, Title: "On Sovereignty"}}
	s := NewArticleService(repo, roles)

	in := validInput()
	in.ReserveAmount = 2
	in.ReserveRecipient = model.Address{7}

	out, err := s.Create(ctx, caller, in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if out.Title != "On Sovereignty" {
		t.Fatalf("unexpected result: %+v", out)
	}

	cfg := repo.createInCfg
	if cfg.Mintable || cfg.HasAllowlist {
		t.Fatalf("new config must start non-mintable without allowlist: %+v", cfg)
	}
	if cfg.Author != caller {
		t.Fatalf("config author must be the caller, got %s", cfg.Author)
	}
	if cfg.Validator != in.Validator || cfg.PublicCost != 10 || cfg.MaxAmount != 100 {
		t.Fatalf("config fields not forwarded: %+v", cfg)
	}
	if repo.createInArticle.Publisher != caller.String() {
		t.Fatalf("publisher must record the caller address")
	}
	if repo.createInResTo != in.ReserveRecipient || repo.createInResAmt != 2 {
		t.Fatalf("reserve args not forwarded")
	}
}

func TestArticleService_GetByID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := &fakeRegistryRepo{getOut: &model.Article{ID: 4, Title: "t"}}
	s := NewArticleService(repo, &fakeRoleRepo{})

	if _, err := s.GetByID(ctx, -1); !errors.Is(err, errs.ErrIndexOutOfRange) {
		t.Fatalf("negative id: want ErrIndexOutOfRange, got %v", err)
	}

	a, err := s.GetByID(ctx, 4)
	if err != nil || a.ID != 4 {
		t.Fatalf("GetByID: a=%+v err=%v", a, err)
	}

	repo.getOut, repo.getErr = nil, errs.ErrIndexOutOfRange
	if _, err := s.GetByID(ctx, 99); !errors.Is(err, errs.ErrIndexOutOfRange) {
		t.Fatalf("past end: want ErrIndexOutOfRange, got %v", err)
	}
}

func TestArticleService_EditMetadataURL_Access(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	author := model.Address{1}
	admin := model.Address{2}
	stranger := model.Address{3}
	repo := &fakeRegistryRepo{cfgOut: &model.TokenConfig{ID: 0, Author: author}}
	roles := &fakeRoleRepo{admins: map[model.Address]bool{admin: true}}
	s := NewArticleService(repo, roles)

	if err := s.EditMetadataURL(ctx, author, 0, "ipfs://new"); err != nil {
		t.Fatalf("author edit: %v", err)
	}
	if repo.setURLInURL != "ipfs://new" {
		t.Fatalf("url not forwarded: %q", repo.setURLInURL)
	}
	if err := s.EditMetadataURL(ctx, admin, 0, "ipfs://new2"); err != nil {
		t.Fatalf("admin edit: %v", err)
	}
	if err := s.EditMetadataURL(ctx, stranger, 0, "x"); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("stranger edit: want ErrUnauthorized, got %v", err)
	}

	repo.cfgOut = nil
	if err := s.EditMetadataURL(ctx, admin, 5, "x"); !errors.Is(err, errs.ErrNonExistentID) {
		t.Fatalf("missing config: want ErrNonExistentID, got %v", err)
	}
}

func TestArticleService_TokenURI(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := &fakeRegistryRepo{cfgOut: &model.TokenConfig{MetadataURL: "ipfs://meta"}}
	s := NewArticleService(repo, &fakeRoleRepo{})

	u, err := s.TokenURI(ctx, 0)
	if err != nil || u != "ipfs://meta" {
		t.Fatalf("TokenURI: u=%q err=%v", u, err)
	}

	repo.cfgOut = nil
	if _, err := s.TokenURI(ctx, 1); !errors.Is(err, errs.ErrNonExistentID) {
		t.Fatalf("want ErrNonExistentID, got %v", err)
	}
}
