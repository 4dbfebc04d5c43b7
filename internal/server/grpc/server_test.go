package grpcserver

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	pb "github.com/nft-now/sovereignty/gen/go/sovereignty/v1"
	"github.com/nft-now/sovereignty/internal/errs"
	"github.com/nft-now/sovereignty/internal/model"
)

type fakeAuthSvc struct {
	challenge model.Challenge
	tokens    model.Tokens
	loginErr  error

	loginInWallet model.Address
	loginInChID   uuid.UUID
}

func (f *fakeAuthSvc) Challenge(context.Context) (model.Challenge, error) {
	return f.challenge, nil
}
func (f *fakeAuthSvc) LoginWithIP(_ context.Context, wallet model.Address, chID uuid.UUID, _ []byte, _ string) (model.Tokens, error) {
	f.loginInWallet, f.loginInChID = wallet, chID
	return f.tokens, f.loginErr
}

type fakeArticleSvc struct {
	created  model.Article
	caller   model.Address
	in       model.CreateArticleInput
	crErr    error
	articles []model.Article
	uri      string
	uriErr   error
	editErr  error
}

func (f *fakeArticleSvc) Create(_ context.Context, caller model.Address, in model.CreateArticleInput) (model.Article, error) {
	f.caller, f.in = caller, in
	return f.created, f.crErr
}
func (f *fakeArticleSvc) GetAll(context.Context) ([]model.Article, error) {
	return f.articles, nil
}
func (f *fakeArticleSvc) GetByID(_ context.Context, id int64) (model.Article, error) {
	for _, a := range f.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return model.Article{}, errs.ErrIndexOutOfRange
}
func (f *fakeArticleSvc) EditMetadataURL(_ context.Context, _ model.Address, _ int64, _ string) error {
	return f.editErr
}
func (f *fakeArticleSvc) TokenURI(_ context.Context, _ int64) (string, error) {
	return f.uri, f.uriErr
}

type fakeMintSvc struct {
	mintErr error
	dropErr error

	mintInCaller model.Address
	mintInAmount int64
	balance      int64
	supply       int64
	counter      int64
	claimed      bool
}

func (f *fakeMintSvc) Mint(_ context.Context, caller model.Address, _ int64, amount, _ int64) error {
	f.mintInCaller, f.mintInAmount = caller, amount
	return f.mintErr
}
func (f *fakeMintSvc) AllowlistMint(_ context.Context, caller model.Address, _ int64, amount, _, _ int64, _ model.Address, _ []byte) error {
	f.mintInCaller, f.mintInAmount = caller, amount
	return f.mintErr
}
func (f *fakeMintSvc) BulkDrop(_ context.Context, _ model.Address, _ int64, _ []model.Address) error {
	return f.dropErr
}
func (f *fakeMintSvc) BalanceOf(_ context.Context, _ model.Address, _ int64) (int64, error) {
	return f.balance, nil
}
func (f *fakeMintSvc) TotalSupply(_ context.Context, _ int64) (int64, error) {
	return f.supply, nil
}
func (f *fakeMintSvc) MintedCount(_ context.Context, _ model.Address, _ int64) (int64, error) {
	return f.counter, nil
}
func (f *fakeMintSvc) HasClaimed(_ context.Context, _ model.Address, _ int64) (bool, error) {
	return f.claimed, nil
}

type fakeAdminSvc struct {
	paused     bool
	pauseErr   error
	withdrawN  int64
	flagErr    error
	roleErr    error
	isAdminRet bool
	grants     []model.RoleGrant
}

func (f *fakeAdminSvc) Pause(_ context.Context, _ model.Address, _ bool) error { return f.pauseErr }
func (f *fakeAdminSvc) IsPaused(context.Context) (bool, error)                 { return f.paused, nil }
func (f *fakeAdminSvc) Withdraw(_ context.Context, _ model.Address) (int64, error) {
	return f.withdrawN, f.pauseErr
}
func (f *fakeAdminSvc) SetMintable(_ context.Context, _ model.Address, _ int64, _ bool) error {
	return f.flagErr
}
func (f *fakeAdminSvc) SetAllowlist(_ context.Context, _ model.Address, _ int64, _ bool) error {
	return f.flagErr
}
func (f *fakeAdminSvc) SetAllowlistCost(_ context.Context, _ model.Address, _, _ int64) error {
	return f.flagErr
}
func (f *fakeAdminSvc) AddAuthor(_ context.Context, _, _ model.Address) error    { return f.roleErr }
func (f *fakeAdminSvc) RemoveAuthor(_ context.Context, _, _ model.Address) error { return f.roleErr }
func (f *fakeAdminSvc) AddAdmin(_ context.Context, _, _ model.Address) error     { return f.roleErr }
func (f *fakeAdminSvc) RenounceAdmin(_ context.Context, _ model.Address) error   { return f.roleErr }
func (f *fakeAdminSvc) IsAdmin(_ context.Context, _ model.Address) (bool, error) {
	return f.isAdminRet, nil
}
func (f *fakeAdminSvc) IsAuthor(_ context.Context, _ model.Address) (bool, error) {
	return false, nil
}
func (f *fakeAdminSvc) RoleGrants(context.Context) ([]model.RoleGrant, error) {
	return f.grants, nil
}

const bufSize = 1 << 20

func startBufGRPC(t *testing.T, srv *Server) (*grpc.ClientConn, func()) {
	t.Helper()
	lis := bufconn.Listen(bufSize)
	gs := grpc.NewServer(grpc.ChainUnaryInterceptor(AuthUnary(srv.signKey)))
	pb.RegisterSovereigntyRegistryServer(gs, srv)
	go func() { _ = gs.Serve(lis) }()
	dialer := func(context.Context, string) (net.Conn, error) { return lis.Dial() }
	//nolint:staticcheck // DialContext is supported through 1.x; migrate when grpc.NewClient is stable
	cc, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	stop := func() { _ = cc.Close(); gs.Stop(); _ = lis.Close() }
	return cc, stop
}

/************ helpers ************/
func jwtFor(t *testing.T, wallet model.Address, key []byte, ttl time.Duration) string {
	t.Helper()
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   wallet.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now.Add(-5 * time.Second)),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign jwt: %v", err)
	}
	return s
}

func authCtx(tok string) context.Context {
	return metadata.NewOutgoingContext(context.Background(),
		metadata.Pairs("authorization", "Bearer "+tok))
}

func TestServer_E2E_AuthAndMintFlow(t *testing.T) {
	t.Parallel()

	signKey := []byte("test-secret")
	wallet := model.Address{1}
	chID := uuid.Must(uuid.NewV4())
	auth := &fakeAuthSvc{
		challenge: model.Challenge{ID: chID, Nonce: []byte("nonce"), ExpiresAt: time.Now().Add(time.Minute)},
		tokens:    model.Tokens{AccessToken: "issued", ExpiresAt: time.Now().Add(time.Minute)},
	}
	arts := &fakeArticleSvc{created: model.Article{ID: 0, Title: "t"}}
	mints := &fakeMintSvc{balance: 2, supply: 9}
	admin := &fakeAdminSvc{withdrawN: 50, isAdminRet: true}
	srv := New(auth, arts, mints, admin, signKey)

	cc, stop := startBufGRPC(t, srv)
	defer stop()
	cl := pb.NewSovereigntyRegistryClient(cc)
	ctx := context.Background()

	// Challenge and login, unauthenticated.
	ch, err := cl.Challenge(ctx, &pb.ChallengeRequest{})
	if err != nil || ch.GetChallengeId() != chID.String() {
		t.Fatalf("challenge: %v resp=%+v", err, ch)
	}
	lr := &pb.LoginRequest{}
	lr.SetWallet(wallet.String())
	lr.SetChallengeId(chID.String())
	lr.SetSignature(make([]byte, 65))
	r2, err := cl.Login(ctx, lr)
	if err != nil || r2.GetAccessToken() != "issued" {
		t.Fatalf("login: %v resp=%+v", err, r2)
	}
	if auth.loginInWallet != wallet || auth.loginInChID != chID {
		t.Fatalf("login args not forwarded: %+v", auth)
	}

	// Authed create.
	token := jwtFor(t, wallet, signKey, time.Minute)
	car := &pb.CreateArticleRequest{}
	car.SetTitle("t")
	car.SetValidator(model.Address{9}.String())
	r3, err := cl.CreateArticle(authCtx(token), car)
	if err != nil || r3.GetArticle().GetTitle() != "t" {
		t.Fatalf("create article: %v resp=%+v", err, r3)
	}
	if arts.caller != wallet {
		t.Fatalf("caller must come from the bearer token, got %s", arts.caller)
	}

	// Authed mint.
	mr := &pb.MintRequest{}
	mr.SetTokenId(0)
	mr.SetAmount(2)
	mr.SetPayment(20)
	if _, err := cl.Mint(authCtx(token), mr); err != nil {
		t.Fatalf("mint: %v", err)
	}
	if mints.mintInCaller != wallet || mints.mintInAmount != 2 {
		t.Fatalf("mint args: %+v", mints)
	}

	// Open reads need no token.
	br := &pb.BalanceOfRequest{}
	br.SetOwner(wallet.String())
	br.SetTokenId(0)
	rb, err := cl.BalanceOf(ctx, br)
	if err != nil || rb.GetAmount() != 2 {
		t.Fatalf("balance: %v resp=%+v", err, rb)
	}
	sr := &pb.TotalSupplyRequest{}
	sr.SetTokenId(0)
	rs, err := cl.TotalSupply(ctx, sr)
	if err != nil || rs.GetAmount() != 9 {
		t.Fatalf("supply: %v resp=%+v", err, rs)
	}
}

func TestServer_MintReads(t *testing.T) {
	t.Parallel()
	mints := &fakeMintSvc{counter: 3, claimed: true}
	srv := New(&fakeAuthSvc{}, &fakeArticleSvc{}, mints, &fakeAdminSvc{}, []byte("k"))
	cc, stop := startBufGRPC(t, srv)
	defer stop()
	cl := pb.NewSovereigntyRegistryClient(cc)
	ctx := context.Background()
	wallet := model.Address{7}

	mc := &pb.MintedCountRequest{}
	mc.SetWallet(wallet.String())
	mc.SetTokenId(0)
	rm, err := cl.MintedCount(ctx, mc)
	if err != nil || rm.GetAmount() != 3 {
		t.Fatalf("minted count: %v resp=%+v", err, rm)
	}

	hc := &pb.HasClaimedRequest{}
	hc.SetWallet(wallet.String())
	hc.SetTokenId(0)
	rc, err := cl.HasClaimed(ctx, hc)
	if err != nil || !rc.GetClaimed() {
		t.Fatalf("has claimed: %v resp=%+v", err, rc)
	}

	bad := &pb.MintedCountRequest{}
	bad.SetWallet("not-an-address")
	if _, err := cl.MintedCount(ctx, bad); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("bad wallet: want InvalidArgument, got %v", err)
	}
}

func TestServer_MutatingCallsRequireAuth(t *testing.T) {
	t.Parallel()
	srv := New(&fakeAuthSvc{}, &fakeArticleSvc{}, &fakeMintSvc{}, &fakeAdminSvc{}, []byte("k"))
	cc, stop := startBufGRPC(t, srv)
	defer stop()
	cl := pb.NewSovereigntyRegistryClient(cc)
	ctx := context.Background()

	mr := &pb.MintRequest{}
	mr.SetAmount(1)
	_, err := cl.Mint(ctx, mr)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("mint without token: want Unauthenticated, got %v", err)
	}

	pr := &pb.PauseRequest{}
	pr.SetValue(true)
	_, err = cl.Pause(ctx, pr)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("pause without token: want Unauthenticated, got %v", err)
	}

	// Expired token.
	expired := jwtFor(t, model.Address{1}, []byte("k"), -time.Hour)
	_, err = cl.Mint(authCtx(expired), mr)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expired token: want Unauthenticated, got %v", err)
	}

	// Token signed with the wrong key.
	forged := jwtFor(t, model.Address{1}, []byte("other"), time.Minute)
	_, err = cl.Mint(authCtx(forged), mr)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("forged token: want Unauthenticated, got %v", err)
	}
}

func TestServer_MintErrorMapping(t *testing.T) {
	t.Parallel()
	signKey := []byte("k")
	mints := &fakeMintSvc{}
	srv := New(&fakeAuthSvc{}, &fakeArticleSvc{}, mints, &fakeAdminSvc{}, signKey)
	cc, stop := startBufGRPC(t, srv)
	defer stop()
	cl := pb.NewSovereigntyRegistryClient(cc)
	token := jwtFor(t, model.Address{1}, signKey, time.Minute)

	cases := []struct {
		err  error
		want codes.Code
	}{
		{errs.CannotMint(errs.ErrPaused), codes.FailedPrecondition},
		{errs.CannotMint(errs.ErrLowSupply), codes.FailedPrecondition},
		{errs.ErrAllowlistOnly, codes.FailedPrecondition},
		{errs.ErrNotEnoughPayment, codes.FailedPrecondition},
		{errs.CannotMint(errs.ErrNonExistentID), codes.NotFound},
		{errs.ErrNotVerified, codes.PermissionDenied},
		{errs.ErrUnauthorized, codes.PermissionDenied},
	}
	for _, tc := range cases {
		mints.mintErr = tc.err
		mr := &pb.MintRequest{}
		mr.SetAmount(1)
		_, err := cl.Mint(authCtx(token), mr)
		if status.Code(err) != tc.want {
			t.Fatalf("mint error %v: want %v, got %v", tc.err, tc.want, err)
		}
	}
}

func TestServer_AdminSurface(t *testing.T) {
	t.Parallel()
	signKey := []byte("k")
	admin := &fakeAdminSvc{withdrawN: 75, grants: []model.RoleGrant{{ID: 1, Account: model.Address{2}}}}
	srv := New(&fakeAuthSvc{}, &fakeArticleSvc{}, &fakeMintSvc{}, admin, signKey)
	cc, stop := startBufGRPC(t, srv)
	defer stop()
	cl := pb.NewSovereigntyRegistryClient(cc)
	token := jwtFor(t, model.Address{1}, signKey, time.Minute)

	wr, err := cl.Withdraw(authCtx(token), &pb.WithdrawRequest{})
	if err != nil || wr.GetAmount() != 75 {
		t.Fatalf("withdraw: %v resp=%+v", err, wr)
	}

	// Insufficient privileges map to PermissionDenied.
	admin.roleErr = errs.ErrUnauthorized
	ar := &pb.AddAuthorRequest{}
	ar.SetAccount(model.Address{3}.String())
	_, err = cl.AddAuthor(authCtx(token), ar)
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("add author: want PermissionDenied, got %v", err)
	}

	// Unknown token flag target maps to NotFound.
	admin.flagErr = errs.ErrNotFound
	sm := &pb.SetMintableRequest{}
	sm.SetTokenId(9)
	sm.SetValue(true)
	_, err = cl.SetMintable(authCtx(token), sm)
	if status.Code(err) != codes.NotFound {
		t.Fatalf("set mintable: want NotFound, got %v", err)
	}

	gr, err := cl.GetRoleGrants(context.Background(), &pb.GetRoleGrantsRequest{})
	if err != nil || len(gr.GetGrants()) != 1 {
		t.Fatalf("grants: %v resp=%+v", err, gr)
	}
}

func TestServer_ArticleReads(t *testing.T) {
	t.Parallel()
	arts := &fakeArticleSvc{
		articles: []model.Article{{ID: 0, Title: "a"}, {ID: 1, Title: "b"}},
		uri:      "ipfs://meta/1",
	}
	srv := New(&fakeAuthSvc{}, arts, &fakeMintSvc{}, &fakeAdminSvc{}, []byte("k"))
	cc, stop := startBufGRPC(t, srv)
	defer stop()
	cl := pb.NewSovereigntyRegistryClient(cc)
	ctx := context.Background()

	all, err := cl.GetAllArticles(ctx, &pb.GetAllArticlesRequest{})
	if err != nil || len(all.GetArticles()) != 2 {
		t.Fatalf("list: %v resp=%+v", err, all)
	}

	gr := &pb.GetArticleByIdRequest{}
	gr.SetId(1)
	one, err := cl.GetArticleById(ctx, gr)
	if err != nil || one.GetArticle().GetTitle() != "b" {
		t.Fatalf("get: %v resp=%+v", err, one)
	}

	gr.SetId(9)
	_, err = cl.GetArticleById(ctx, gr)
	if status.Code(err) != codes.NotFound {
		t.Fatalf("past end: want NotFound, got %v", err)
	}

	ur := &pb.UriRequest{}
	ur.SetTokenId(1)
	u, err := cl.Uri(ctx, ur)
	if err != nil || u.GetUrl() != "ipfs://meta/1" {
		t.Fatalf("uri: %v resp=%+v", err, u)
	}
}

func TestServer_Login_RateLimited(t *testing.T) {
	t.Parallel()
	auth := &fakeAuthSvc{loginErr: errs.ErrRateLimited}
	srv := New(auth, &fakeArticleSvc{}, &fakeMintSvc{}, &fakeAdminSvc{}, []byte("k"))
	cc, stop := startBufGRPC(t, srv)
	defer stop()
	cl := pb.NewSovereigntyRegistryClient(cc)

	lr := &pb.LoginRequest{}
	lr.SetWallet(model.Address{1}.String())
	lr.SetChallengeId(uuid.Must(uuid.NewV4()).String())
	lr.SetSignature([]byte("sig"))
	_, err := cl.Login(context.Background(), lr)
	if status.Code(err) != codes.ResourceExhausted {
		t.Fatalf("want ResourceExhausted, got %v", err)
	}
}
