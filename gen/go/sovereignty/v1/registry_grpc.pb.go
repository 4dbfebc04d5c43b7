// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: sovereignty/v1/registry.proto

package sovereigntyv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	SovereigntyRegistry_Challenge_FullMethodName        = "/sovereignty.v1.SovereigntyRegistry/Challenge"
	SovereigntyRegistry_Login_FullMethodName            = "/sovereignty.v1.SovereigntyRegistry/Login"
	SovereigntyRegistry_CreateArticle_FullMethodName    = "/sovereignty.v1.SovereigntyRegistry/CreateArticle"
	SovereigntyRegistry_GetAllArticles_FullMethodName   = "/sovereignty.v1.SovereigntyRegistry/GetAllArticles"
	SovereigntyRegistry_GetArticleById_FullMethodName   = "/sovereignty.v1.SovereigntyRegistry/GetArticleById"
	SovereigntyRegistry_EditMetadataUrl_FullMethodName  = "/sovereignty.v1.SovereigntyRegistry/EditMetadataUrl"
	SovereigntyRegistry_Uri_FullMethodName              = "/sovereignty.v1.SovereigntyRegistry/Uri"
	SovereigntyRegistry_Mint_FullMethodName             = "/sovereignty.v1.SovereigntyRegistry/Mint"
	SovereigntyRegistry_AllowlistMint_FullMethodName    = "/sovereignty.v1.SovereigntyRegistry/AllowlistMint"
	SovereigntyRegistry_BulkDrop_FullMethodName         = "/sovereignty.v1.SovereigntyRegistry/BulkDrop"
	SovereigntyRegistry_BalanceOf_FullMethodName        = "/sovereignty.v1.SovereigntyRegistry/BalanceOf"
	SovereigntyRegistry_TotalSupply_FullMethodName      = "/sovereignty.v1.SovereigntyRegistry/TotalSupply"
	SovereigntyRegistry_MintedCount_FullMethodName      = "/sovereignty.v1.SovereigntyRegistry/MintedCount"
	SovereigntyRegistry_HasClaimed_FullMethodName       = "/sovereignty.v1.SovereigntyRegistry/HasClaimed"
	SovereigntyRegistry_SetMintable_FullMethodName      = "/sovereignty.v1.SovereigntyRegistry/SetMintable"
	SovereigntyRegistry_SetAllowlist_FullMethodName     = "/sovereignty.v1.SovereigntyRegistry/SetAllowlist"
	SovereigntyRegistry_SetAllowlistCost_FullMethodName = "/sovereignty.v1.SovereigntyRegistry/SetAllowlistCost"
	SovereigntyRegistry_Pause_FullMethodName            = "/sovereignty.v1.SovereigntyRegistry/Pause"
	SovereigntyRegistry_IsPaused_FullMethodName         = "/sovereignty.v1.SovereigntyRegistry/IsPaused"
	SovereigntyRegistry_Withdraw_FullMethodName         = "/sovereignty.v1.SovereigntyRegistry/Withdraw"
	SovereigntyRegistry_AddAuthor_FullMethodName        = "/sovereignty.v1.SovereigntyRegistry/AddAuthor"
	SovereigntyRegistry_RemoveAuthor_FullMethodName     = "/sovereignty.v1.SovereigntyRegistry/RemoveAuthor"
	SovereigntyRegistry_AddAdmin_FullMethodName         = "/sovereignty.v1.SovereigntyRegistry/AddAdmin"
	SovereigntyRegistry_RenounceAdmin_FullMethodName    = "/sovereignty.v1.SovereigntyRegistry/RenounceAdmin"
	SovereigntyRegistry_IsAdmin_FullMethodName          = "/sovereignty.v1.SovereigntyRegistry/IsAdmin"
	SovereigntyRegistry_IsAuthor_FullMethodName         = "/sovereignty.v1.SovereigntyRegistry/IsAuthor"
	SovereigntyRegistry_GetRoleGrants_FullMethodName    = "/sovereignty.v1.SovereigntyRegistry/GetRoleGrants"
)

// SovereigntyRegistryClient is the client API for SovereigntyRegistry service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// SovereigntyRegistry is the article token registry API. Mutating calls
// require a bearer token obtained via Challenge/Login; the token's subject
// is the caller's wallet address.
type SovereigntyRegistryClient interface {
	// Auth
	Challenge(ctx context.Context, in *ChallengeRequest, opts ...grpc.CallOption) (*ChallengeResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	// Articles
	CreateArticle(ctx context.Context, in *CreateArticleRequest, opts ...grpc.CallOption) (*CreateArticleResponse, error)
	GetAllArticles(ctx context.Context, in *GetAllArticlesRequest, opts ...grpc.CallOption) (*GetAllArticlesResponse, error)
	GetArticleById(ctx context.Context, in *GetArticleByIdRequest, opts ...grpc.CallOption) (*GetArticleByIdResponse, error)
	EditMetadataUrl(ctx context.Context, in *EditMetadataUrlRequest, opts ...grpc.CallOption) (*EditMetadataUrlResponse, error)
	Uri(ctx context.Context, in *UriRequest, opts ...grpc.CallOption) (*UriResponse, error)
	// Minting
	Mint(ctx context.Context, in *MintRequest, opts ...grpc.CallOption) (*MintResponse, error)
	AllowlistMint(ctx context.Context, in *AllowlistMintRequest, opts ...grpc.CallOption) (*AllowlistMintResponse, error)
	BulkDrop(ctx context.Context, in *BulkDropRequest, opts ...grpc.CallOption) (*BulkDropResponse, error)
	BalanceOf(ctx context.Context, in *BalanceOfRequest, opts ...grpc.CallOption) (*BalanceOfResponse, error)
	TotalSupply(ctx context.Context, in *TotalSupplyRequest, opts ...grpc.CallOption) (*TotalSupplyResponse, error)
	MintedCount(ctx context.Context, in *MintedCountRequest, opts ...grpc.CallOption) (*MintedCountResponse, error)
	HasClaimed(ctx context.Context, in *HasClaimedRequest, opts ...grpc.CallOption) (*HasClaimedResponse, error)
	// Administration
	SetMintable(ctx context.Context, in *SetMintableRequest, opts ...grpc.CallOption) (*SetMintableResponse, error)
	SetAllowlist(ctx context.Context, in *SetAllowlistRequest, opts ...grpc.CallOption) (*SetAllowlistResponse, error)
	SetAllowlistCost(ctx context.Context, in *SetAllowlistCostRequest, opts ...grpc.CallOption) (*SetAllowlistCostResponse, error)
	Pause(ctx context.Context, in *PauseRequest, opts ...grpc.CallOption) (*PauseResponse, error)
	IsPaused(ctx context.Context, in *IsPausedRequest, opts ...grpc.CallOption) (*IsPausedResponse, error)
	Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (*WithdrawResponse, error)
	// Roles
	AddAuthor(ctx context.Context, in *AddAuthorRequest, opts ...grpc.CallOption) (*AddAuthorResponse, error)
	RemoveAuthor(ctx context.Context, in *RemoveAuthorRequest, opts ...grpc.CallOption) (*RemoveAuthorResponse, error)
	AddAdmin(ctx context.Context, in *AddAdminRequest, opts ...grpc.CallOption) (*AddAdminResponse, error)
	RenounceAdmin(ctx context.Context, in *RenounceAdminRequest, opts ...grpc.CallOption) (*RenounceAdminResponse, error)
	IsAdmin(ctx context.Context, in *IsAdminRequest, opts ...grpc.CallOption) (*IsAdminResponse, error)
	IsAuthor(ctx context.Context, in *IsAuthorRequest, opts ...grpc.CallOption) (*IsAuthorResponse, error)
	GetRoleGrants(ctx context.Context, in *GetRoleGrantsRequest, opts ...grpc.CallOption) (*GetRoleGrantsResponse, error)
}

type sovereigntyRegistryClient struct {
	cc grpc.ClientConnInterface
}

func NewSovereigntyRegistryClient(cc grpc.ClientConnInterface) SovereigntyRegistryClient {
	return &sovereigntyRegistryClient{cc}
}

func (c *sovereigntyRegistryClient) Challenge(ctx context.Context, in *ChallengeRequest, opts ...grpc.CallOption) (*ChallengeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ChallengeResponse)
	err := c.cc.Invoke(ctx, SovereigntyRegistry_Challenge_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sovereigntyRegistryClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LoginResponse)
	err := c.cc.Invoke(ctx, SovereigntyRegistry_Login_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sovereigntyRegistryClient) CreateArticle(ctx context.Context, in *CreateArticleRequest, opts ...grpc.CallOption) (*CreateArticleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateArticleResponse)
	err := c.cc.Invoke(ctx, SovereigntyRegistry_CreateArticle_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sovereigntyRegistryClient) GetAllArticles(ctx context.Context, in *GetAllArticlesRequest, opts ...grpc.CallOption) (*GetAllArticlesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetAllArticlesResponse)
	err := c.cc.Invoke(ctx, SovereigntyRegistry_GetAllArticles_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sovereigntyRegistryClient) GetArticleById(ctx context.Context, in *GetArticleByIdRequest, opts ...grpc.CallOption) (*GetArticleByIdResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetArticleByIdResponse)
	err := c.cc.Invoke(ctx, SovereigntyRegistry_GetArticleById_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sovereigntyRegistryClient) EditMetadataUrl(ctx context.Context, in *EditMetadataUrlRequest, opts ...grpc.CallOption) (*EditMetadataUrlResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EditMetadataUrlResponse)
	err := c.cc.Invoke(ctx, SovereigntyRegistry_EditMetadataUrl_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sovereigntyRegistryClient) Uri(ctx context.Context, in *UriRequest, opts ...grpc.CallOption) (*UriResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UriResponse)
	err := c.cc.Invoke(ctx, SovereigntyRegistry_Uri_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sovereigntyRegistryClient) Mint(ctx context.Context, in *MintRequest, opts ...grpc.CallOption) (*MintResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MintResponse)
	err := c.cc.Invoke(ctx, SovereigntyRegistry_Mint_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sovereigntyRegistryClient) AllowlistMint(ctx context.Context, in *AllowlistMintRequest, opts ...grpc.CallOption) (*AllowlistMintResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AllowlistMintResponse)
	err := c.cc.Invoke(ctx, SovereigntyRegistry_AllowlistMint_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sovereigntyRegistryClient) BulkDrop(ctx context.Context, in *BulkDropRequest, opts ...grpc.CallOption) (*BulkDropResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BulkDropResponse)
	err := c.cc.Invoke(ctx, SovereigntyRegistry_BulkDrop_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sovereigntyRegistryClient) BalanceOf(ctx context.Context, in *BalanceOfRequest, opts ...grpc.CallOption) (*BalanceOfResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BalanceOfResponse)
	err := c.cc.Invoke(ctx, SovereigntyRegistry_BalanceOf_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sovereigntyRegistryClient) TotalSupply(ctx context.Context, in *TotalSupplyRequest, opts ...grpc.CallOption) (*TotalSupplyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TotalSupplyResponse)
	err := c.cc.Invoke(ctx, SovereigntyRegistry_TotalSupply_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sovereigntyRegistryClient) MintedCount(ctx context.Context, in *MintedCountRequest, opts ...grpc.CallOption) (*MintedCountResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MintedCountResponse)
	err := c.cc.Invoke(ctx, SovereigntyRegistry_MintedCount_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sovereigntyRegistryClient) HasClaimed(ctx context.Context, in *HasClaimedRequest, opts ...grpc.CallOption) (*HasClaimedResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(HasClaimedResponse)
	err := c.cc.Invoke(ctx, SovereigntyRegistry_HasClaimed_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sovereigntyRegistryClient) SetMintable(ctx context.Context, in *SetMintableRequest, opts ...grpc.CallOption) (*SetMintableResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetMintableResponse)
	err := c.cc.Invoke(ctx, SovereigntyRegistry_SetMintable_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sovereigntyRegistryClient) SetAllowlist(ctx context.Context, in *SetAllowlistRequest, opts ...grpc.CallOption) (*SetAllowlistResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetAllowlistResponse)
	err := c.cc.Invoke(ctx, SovereigntyRegistry_SetAllowlist_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sovereigntyRegistryClient) SetAllowlistCost(ctx context.Context, in *SetAllowlistCostRequest, opts ...grpc.CallOption) (*SetAllowlistCostResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetAllowlistCostResponse)
	err := c.cc.Invoke(ctx, SovereigntyRegistry_SetAllowlistCost_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sovereigntyRegistryClient) Pause(ctx context.Context, in *PauseRequest, opts ...grpc.CallOption) (*PauseResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PauseResponse)
	err := c.cc.Invoke(ctx, SovereigntyRegistry_Pause_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sovereigntyRegistryClient) IsPaused(ctx context.Context, in *IsPausedRequest, opts ...grpc.CallOption) (*IsPausedResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IsPausedResponse)
	err := c.cc.Invoke(ctx, SovereigntyRegistry_IsPaused_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sovereigntyRegistryClient) Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (*WithdrawResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(WithdrawResponse)
	err := c.cc.Invoke(ctx, SovereigntyRegistry_Withdraw_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sovereigntyRegistryClient) AddAuthor(ctx context.Context, in *AddAuthorRequest, opts ...grpc.CallOption) (*AddAuthorResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AddAuthorResponse)
	err := c.cc.Invoke(ctx, SovereigntyRegistry_AddAuthor_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sovereigntyRegistryClient) RemoveAuthor(ctx context.Context, in *RemoveAuthorRequest, opts ...grpc.CallOption) (*RemoveAuthorResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RemoveAuthorResponse)
	err := c.cc.Invoke(ctx, SovereigntyRegistry_RemoveAuthor_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sovereigntyRegistryClient) AddAdmin(ctx context.Context, in *AddAdminRequest, opts ...grpc.CallOption) (*AddAdminResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AddAdminResponse)
	err := c.cc.Invoke(ctx, SovereigntyRegistry_AddAdmin_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sovereigntyRegistryClient) RenounceAdmin(ctx context.Context, in *RenounceAdminRequest, opts ...grpc.CallOption) (*RenounceAdminResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RenounceAdminResponse)
	err := c.cc.Invoke(ctx, SovereigntyRegistry_RenounceAdmin_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sovereigntyRegistryClient) IsAdmin(ctx context.Context, in *IsAdminRequest, opts ...grpc.CallOption) (*IsAdminResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IsAdminResponse)
	err := c.cc.Invoke(ctx, SovereigntyRegistry_IsAdmin_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sovereigntyRegistryClient) IsAuthor(ctx context.Context, in *IsAuthorRequest, opts ...grpc.CallOption) (*IsAuthorResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IsAuthorResponse)
	err := c.cc.Invoke(ctx, SovereigntyRegistry_IsAuthor_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sovereigntyRegistryClient) GetRoleGrants(ctx context.Context, in *GetRoleGrantsRequest, opts ...grpc.CallOption) (*GetRoleGrantsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetRoleGrantsResponse)
	err := c.cc.Invoke(ctx, SovereigntyRegistry_GetRoleGrants_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SovereigntyRegistryServer is the server API for SovereigntyRegistry service.
// All implementations must embed UnimplementedSovereigntyRegistryServer
// for forward compatibility.
//
// SovereigntyRegistry is the article token registry API. Mutating calls
// require a bearer token obtained via Challenge/Login; the token's subject
// is the caller's wallet address.
type SovereigntyRegistryServer interface {
	// Auth
	Challenge(context.Context, *ChallengeRequest) (*ChallengeResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	// Articles
	CreateArticle(context.Context, *CreateArticleRequest) (*CreateArticleResponse, error)
	GetAllArticles(context.Context, *GetAllArticlesRequest) (*GetAllArticlesResponse, error)
	GetArticleById(context.Context, *GetArticleByIdRequest) (*GetArticleByIdResponse, error)
	EditMetadataUrl(context.Context, *EditMetadataUrlRequest) (*EditMetadataUrlResponse, error)
	Uri(context.Context, *UriRequest) (*UriResponse, error)
	// Minting
	Mint(context.Context, *MintRequest) (*MintResponse, error)
	AllowlistMint(context.Context, *AllowlistMintRequest) (*AllowlistMintResponse, error)
	BulkDrop(context.Context, *BulkDropRequest) (*BulkDropResponse, error)
	BalanceOf(context.Context, *BalanceOfRequest) (*BalanceOfResponse, error)
	TotalSupply(context.Context, *TotalSupplyRequest) (*TotalSupplyResponse, error)
	MintedCount(context.Context, *MintedCountRequest) (*MintedCountResponse, error)
	HasClaimed(context.Context, *HasClaimedRequest) (*HasClaimedResponse, error)
	// Administration
	SetMintable(context.Context, *SetMintableRequest) (*SetMintableResponse, error)
	SetAllowlist(context.Context, *SetAllowlistRequest) (*SetAllowlistResponse, error)
	SetAllowlistCost(context.Context, *SetAllowlistCostRequest) (*SetAllowlistCostResponse, error)
	Pause(context.Context, *PauseRequest) (*PauseResponse, error)
	IsPaused(context.Context, *IsPausedRequest) (*IsPausedResponse, error)
	Withdraw(context.Context, *WithdrawRequest) (*WithdrawResponse, error)
	// Roles
	AddAuthor(context.Context, *AddAuthorRequest) (*AddAuthorResponse, error)
	RemoveAuthor(context.Context, *RemoveAuthorRequest) (*RemoveAuthorResponse, error)
	AddAdmin(context.Context, *AddAdminRequest) (*AddAdminResponse, error)
	RenounceAdmin(context.Context, *RenounceAdminRequest) (*RenounceAdminResponse, error)
	IsAdmin(context.Context, *IsAdminRequest) (*IsAdminResponse, error)
	IsAuthor(context.Context, *IsAuthorRequest) (*IsAuthorResponse, error)
	GetRoleGrants(context.Context, *GetRoleGrantsRequest) (*GetRoleGrantsResponse, error)
	mustEmbedUnimplementedSovereigntyRegistryServer()
}

// UnimplementedSovereigntyRegistryServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSovereigntyRegistryServer struct{}

func (UnimplementedSovereigntyRegistryServer) Challenge(context.Context, *ChallengeRequest) (*ChallengeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Challenge not implemented")
}
func (UnimplementedSovereigntyRegistryServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedSovereigntyRegistryServer) CreateArticle(context.Context, *CreateArticleRequest) (*CreateArticleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateArticle not implemented")
}
func (UnimplementedSovereigntyRegistryServer) GetAllArticles(context.Context, *GetAllArticlesRequest) (*GetAllArticlesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAllArticles not implemented")
}
func (UnimplementedSovereigntyRegistryServer) GetArticleById(context.Context, *GetArticleByIdRequest) (*GetArticleByIdResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetArticleById not implemented")
}
func (UnimplementedSovereigntyRegistryServer) EditMetadataUrl(context.Context, *EditMetadataUrlRequest) (*EditMetadataUrlResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EditMetadataUrl not implemented")
}
func (UnimplementedSovereigntyRegistryServer) Uri(context.Context, *UriRequest) (*UriResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Uri not implemented")
}
func (UnimplementedSovereigntyRegistryServer) Mint(context.Context, *MintRequest) (*MintResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Mint not implemented")
}
func (UnimplementedSovereigntyRegistryServer) AllowlistMint(context.Context, *AllowlistMintRequest) (*AllowlistMintResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AllowlistMint not implemented")
}
func (UnimplementedSovereigntyRegistryServer) BulkDrop(context.Context, *BulkDropRequest) (*BulkDropResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BulkDrop not implemented")
}
func (UnimplementedSovereigntyRegistryServer) BalanceOf(context.Context, *BalanceOfRequest) (*BalanceOfResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BalanceOf not implemented")
}
func (UnimplementedSovereigntyRegistryServer) TotalSupply(context.Context, *TotalSupplyRequest) (*TotalSupplyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TotalSupply not implemented")
}
func (UnimplementedSovereigntyRegistryServer) MintedCount(context.Context, *MintedCountRequest) (*MintedCountResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MintedCount not implemented")
}
func (UnimplementedSovereigntyRegistryServer) HasClaimed(context.Context, *HasClaimedRequest) (*HasClaimedResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method HasClaimed not implemented")
}
func (UnimplementedSovereigntyRegistryServer) SetMintable(context.Context, *SetMintableRequest) (*SetMintableResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetMintable not implemented")
}
func (UnimplementedSovereigntyRegistryServer) SetAllowlist(context.Context, *SetAllowlistRequest) (*SetAllowlistResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetAllowlist not implemented")
}
func (UnimplementedSovereigntyRegistryServer) SetAllowlistCost(context.Context, *SetAllowlistCostRequest) (*SetAllowlistCostResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetAllowlistCost not implemented")
}
func (UnimplementedSovereigntyRegistryServer) Pause(context.Context, *PauseRequest) (*PauseResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Pause not implemented")
}
func (UnimplementedSovereigntyRegistryServer) IsPaused(context.Context, *IsPausedRequest) (*IsPausedResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IsPaused not implemented")
}
func (UnimplementedSovereigntyRegistryServer) Withdraw(context.Context, *WithdrawRequest) (*WithdrawResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Withdraw not implemented")
}
func (UnimplementedSovereigntyRegistryServer) AddAuthor(context.Context, *AddAuthorRequest) (*AddAuthorResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddAuthor not implemented")
}
func (UnimplementedSovereigntyRegistryServer) RemoveAuthor(context.Context, *RemoveAuthorRequest) (*RemoveAuthorResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveAuthor not implemented")
}
func (UnimplementedSovereigntyRegistryServer) AddAdmin(context.Context, *AddAdminRequest) (*AddAdminResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddAdmin not implemented")
}
func (UnimplementedSovereigntyRegistryServer) RenounceAdmin(context.Context, *RenounceAdminRequest) (*RenounceAdminResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RenounceAdmin not implemented")
}
func (UnimplementedSovereigntyRegistryServer) IsAdmin(context.Context, *IsAdminRequest) (*IsAdminResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IsAdmin not implemented")
}
func (UnimplementedSovereigntyRegistryServer) IsAuthor(context.Context, *IsAuthorRequest) (*IsAuthorResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IsAuthor not implemented")
}
func (UnimplementedSovereigntyRegistryServer) GetRoleGrants(context.Context, *GetRoleGrantsRequest) (*GetRoleGrantsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRoleGrants not implemented")
}
func (UnimplementedSovereigntyRegistryServer) mustEmbedUnimplementedSovereigntyRegistryServer() {}
func (UnimplementedSovereigntyRegistryServer) testEmbeddedByValue()                             {}

// UnsafeSovereigntyRegistryServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SovereigntyRegistryServer will
// result in compilation errors.
type UnsafeSovereigntyRegistryServer interface {
	mustEmbedUnimplementedSovereigntyRegistryServer()
}

func RegisterSovereigntyRegistryServer(s grpc.ServiceRegistrar, srv SovereigntyRegistryServer) {
	// If the following call pancis, it indicates UnimplementedSovereigntyRegistryServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SovereigntyRegistry_ServiceDesc, srv)
}

func _SovereigntyRegistry_Challenge_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ChallengeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SovereigntyRegistryServer).Challenge(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SovereigntyRegistry_Challenge_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SovereigntyRegistryServer).Challenge(ctx, req.(*ChallengeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SovereigntyRegistry_Login_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LoginRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SovereigntyRegistryServer).Login(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SovereigntyRegistry_Login_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SovereigntyRegistryServer).Login(ctx, req.(*LoginRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SovereigntyRegistry_CreateArticle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateArticleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SovereigntyRegistryServer).CreateArticle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SovereigntyRegistry_CreateArticle_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SovereigntyRegistryServer).CreateArticle(ctx, req.(*CreateArticleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SovereigntyRegistry_GetAllArticles_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAllArticlesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SovereigntyRegistryServer).GetAllArticles(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SovereigntyRegistry_GetAllArticles_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SovereigntyRegistryServer).GetAllArticles(ctx, req.(*GetAllArticlesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SovereigntyRegistry_GetArticleById_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetArticleByIdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SovereigntyRegistryServer).GetArticleById(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SovereigntyRegistry_GetArticleById_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SovereigntyRegistryServer).GetArticleById(ctx, req.(*GetArticleByIdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SovereigntyRegistry_EditMetadataUrl_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EditMetadataUrlRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SovereigntyRegistryServer).EditMetadataUrl(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SovereigntyRegistry_EditMetadataUrl_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SovereigntyRegistryServer).EditMetadataUrl(ctx, req.(*EditMetadataUrlRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SovereigntyRegistry_Uri_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UriRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SovereigntyRegistryServer).Uri(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SovereigntyRegistry_Uri_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SovereigntyRegistryServer).Uri(ctx, req.(*UriRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SovereigntyRegistry_Mint_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MintRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SovereigntyRegistryServer).Mint(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SovereigntyRegistry_Mint_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SovereigntyRegistryServer).Mint(ctx, req.(*MintRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SovereigntyRegistry_AllowlistMint_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AllowlistMintRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SovereigntyRegistryServer).AllowlistMint(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SovereigntyRegistry_AllowlistMint_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SovereigntyRegistryServer).AllowlistMint(ctx, req.(*AllowlistMintRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SovereigntyRegistry_BulkDrop_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BulkDropRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SovereigntyRegistryServer).BulkDrop(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SovereigntyRegistry_BulkDrop_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SovereigntyRegistryServer).BulkDrop(ctx, req.(*BulkDropRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SovereigntyRegistry_BalanceOf_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BalanceOfRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SovereigntyRegistryServer).BalanceOf(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SovereigntyRegistry_BalanceOf_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SovereigntyRegistryServer).BalanceOf(ctx, req.(*BalanceOfRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SovereigntyRegistry_TotalSupply_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TotalSupplyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SovereigntyRegistryServer).TotalSupply(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SovereigntyRegistry_TotalSupply_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SovereigntyRegistryServer).TotalSupply(ctx, req.(*TotalSupplyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SovereigntyRegistry_MintedCount_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MintedCountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SovereigntyRegistryServer).MintedCount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SovereigntyRegistry_MintedCount_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SovereigntyRegistryServer).MintedCount(ctx, req.(*MintedCountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SovereigntyRegistry_HasClaimed_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(HasClaimedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SovereigntyRegistryServer).HasClaimed(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SovereigntyRegistry_HasClaimed_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SovereigntyRegistryServer).HasClaimed(ctx, req.(*HasClaimedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SovereigntyRegistry_SetMintable_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetMintableRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SovereigntyRegistryServer).SetMintable(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SovereigntyRegistry_SetMintable_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SovereigntyRegistryServer).SetMintable(ctx, req.(*SetMintableRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SovereigntyRegistry_SetAllowlist_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetAllowlistRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SovereigntyRegistryServer).SetAllowlist(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SovereigntyRegistry_SetAllowlist_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SovereigntyRegistryServer).SetAllowlist(ctx, req.(*SetAllowlistRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SovereigntyRegistry_SetAllowlistCost_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetAllowlistCostRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SovereigntyRegistryServer).SetAllowlistCost(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SovereigntyRegistry_SetAllowlistCost_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SovereigntyRegistryServer).SetAllowlistCost(ctx, req.(*SetAllowlistCostRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SovereigntyRegistry_Pause_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PauseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SovereigntyRegistryServer).Pause(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SovereigntyRegistry_Pause_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SovereigntyRegistryServer).Pause(ctx, req.(*PauseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SovereigntyRegistry_IsPaused_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IsPausedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SovereigntyRegistryServer).IsPaused(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SovereigntyRegistry_IsPaused_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SovereigntyRegistryServer).IsPaused(ctx, req.(*IsPausedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SovereigntyRegistry_Withdraw_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(WithdrawRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SovereigntyRegistryServer).Withdraw(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SovereigntyRegistry_Withdraw_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SovereigntyRegistryServer).Withdraw(ctx, req.(*WithdrawRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SovereigntyRegistry_AddAuthor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddAuthorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SovereigntyRegistryServer).AddAuthor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SovereigntyRegistry_AddAuthor_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SovereigntyRegistryServer).AddAuthor(ctx, req.(*AddAuthorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SovereigntyRegistry_RemoveAuthor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemoveAuthorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SovereigntyRegistryServer).RemoveAuthor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SovereigntyRegistry_RemoveAuthor_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SovereigntyRegistryServer).RemoveAuthor(ctx, req.(*RemoveAuthorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SovereigntyRegistry_AddAdmin_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddAdminRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SovereigntyRegistryServer).AddAdmin(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SovereigntyRegistry_AddAdmin_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SovereigntyRegistryServer).AddAdmin(ctx, req.(*AddAdminRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SovereigntyRegistry_RenounceAdmin_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RenounceAdminRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SovereigntyRegistryServer).RenounceAdmin(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SovereigntyRegistry_RenounceAdmin_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SovereigntyRegistryServer).RenounceAdmin(ctx, req.(*RenounceAdminRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SovereigntyRegistry_IsAdmin_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IsAdminRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SovereigntyRegistryServer).IsAdmin(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SovereigntyRegistry_IsAdmin_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SovereigntyRegistryServer).IsAdmin(ctx, req.(*IsAdminRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SovereigntyRegistry_IsAuthor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IsAuthorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SovereigntyRegistryServer).IsAuthor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SovereigntyRegistry_IsAuthor_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SovereigntyRegistryServer).IsAuthor(ctx, req.(*IsAuthorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SovereigntyRegistry_GetRoleGrants_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRoleGrantsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SovereigntyRegistryServer).GetRoleGrants(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SovereigntyRegistry_GetRoleGrants_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SovereigntyRegistryServer).GetRoleGrants(ctx, req.(*GetRoleGrantsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SovereigntyRegistry_ServiceDesc is the grpc.ServiceDesc for SovereigntyRegistry service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SovereigntyRegistry_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "sovereignty.v1.SovereigntyRegistry",
	HandlerType: (*SovereigntyRegistryServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Challenge",
			Handler:    _SovereigntyRegistry_Challenge_Handler,
		},
		{
			MethodName: "Login",
			Handler:    _SovereigntyRegistry_Login_Handler,
		},
		{
			MethodName: "CreateArticle",
			Handler:    _SovereigntyRegistry_CreateArticle_Handler,
		},
		{
			MethodName: "GetAllArticles",
			Handler:    _SovereigntyRegistry_GetAllArticles_Handler,
		},
		{
			MethodName: "GetArticleById",
			Handler:    _SovereigntyRegistry_GetArticleById_Handler,
		},
		{
			MethodName: "EditMetadataUrl",
			Handler:    _SovereigntyRegistry_EditMetadataUrl_Handler,
		},
		{
			MethodName: "Uri",
			Handler:    _SovereigntyRegistry_Uri_Handler,
		},
		{
			MethodName: "Mint",
			Handler:    _SovereigntyRegistry_Mint_Handler,
		},
		{
			MethodName: "AllowlistMint",
			Handler:    _SovereigntyRegistry_AllowlistMint_Handler,
		},
		{
			MethodName: "BulkDrop",
			Handler:    _SovereigntyRegistry_BulkDrop_Handler,
		},
		{
			MethodName: "BalanceOf",
			Handler:    _SovereigntyRegistry_BalanceOf_Handler,
		},
		{
			MethodName: "TotalSupply",
			Handler:    _SovereigntyRegistry_TotalSupply_Handler,
		},
		{
			MethodName: "MintedCount",
			Handler:    _SovereigntyRegistry_MintedCount_Handler,
		},
		{
			MethodName: "HasClaimed",
			Handler:    _SovereigntyRegistry_HasClaimed_Handler,
		},
		{
			MethodName: "SetMintable",
			Handler:    _SovereigntyRegistry_SetMintable_Handler,
		},
		{
			MethodName: "SetAllowlist",
			Handler:    _SovereigntyRegistry_SetAllowlist_Handler,
		},
		{
			MethodName: "SetAllowlistCost",
			Handler:    _SovereigntyRegistry_SetAllowlistCost_Handler,
		},
		{
			MethodName: "Pause",
			Handler:    _SovereigntyRegistry_Pause_Handler,
		},
		{
			MethodName: "IsPaused",
			Handler:    _SovereigntyRegistry_IsPaused_Handler,
		},
		{
			MethodName: "Withdraw",
			Handler:    _SovereigntyRegistry_Withdraw_Handler,
		},
		{
			MethodName: "AddAuthor",
			Handler:    _SovereigntyRegistry_AddAuthor_Handler,
		},
		{
			MethodName: "RemoveAuthor",
			Handler:    _SovereigntyRegistry_RemoveAuthor_Handler,
		},
		{
			MethodName: "AddAdmin",
			Handler:    _SovereigntyRegistry_AddAdmin_Handler,
		},
		{
			MethodName: "RenounceAdmin",
			Handler:    _SovereigntyRegistry_RenounceAdmin_Handler,
		},
		{
			MethodName: "IsAdmin",
			Handler:    _SovereigntyRegistry_IsAdmin_Handler,
		},
		{
			MethodName: "IsAuthor",
			Handler:    _SovereigntyRegistry_IsAuthor_Handler,
		},
		{
			MethodName: "GetRoleGrants",
			Handler:    _SovereigntyRegistry_GetRoleGrants_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sovereignty/v1/registry.proto",
}
