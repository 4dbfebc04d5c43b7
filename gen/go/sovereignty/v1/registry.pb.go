// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.5
// 	protoc        (unknown)
// source: sovereignty/v1/registry.proto

package sovereigntyv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	_ "google.golang.org/protobuf/types/gofeaturespb"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ChallengeRequest struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChallengeRequest) Reset() {
	*x = ChallengeRequest{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChallengeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChallengeRequest) ProtoMessage() {}

func (x *ChallengeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type ChallengeRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

}

func (b0 ChallengeRequest_builder) Build() *ChallengeRequest {
	m0 := &ChallengeRequest{}
	b, x := &b0, m0
	_, _ = b, x
	return m0
}

type ChallengeResponse struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_ChallengeId *string                `protobuf:"bytes,1,opt,name=challenge_id,json=challengeId"`
	xxx_hidden_Nonce       []byte                 `protobuf:"bytes,2,opt,name=nonce"`
	xxx_hidden_ExpiresAt   *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=expires_at,json=expiresAt"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *ChallengeResponse) Reset() {
	*x = ChallengeResponse{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChallengeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChallengeResponse) ProtoMessage() {}

func (x *ChallengeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *ChallengeResponse) GetChallengeId() string {
	if x != nil {
		if x.xxx_hidden_ChallengeId != nil {
			return *x.xxx_hidden_ChallengeId
		}
		return ""
	}
	return ""
}

func (x *ChallengeResponse) GetNonce() []byte {
	if x != nil {
		return x.xxx_hidden_Nonce
	}
	return nil
}

func (x *ChallengeResponse) GetExpiresAt() *timestamppb.Timestamp {
	if x != nil {
		return x.xxx_hidden_ExpiresAt
	}
	return nil
}

func (x *ChallengeResponse) SetChallengeId(v string) {
	x.xxx_hidden_ChallengeId = &v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 3)
}

func (x *ChallengeResponse) SetNonce(v []byte) {
	if v == nil {
		v = []byte{}
	}
	x.xxx_hidden_Nonce = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 1, 3)
}

func (x *ChallengeResponse) SetExpiresAt(v *timestamppb.Timestamp) {
	x.xxx_hidden_ExpiresAt = v
}

func (x *ChallengeResponse) HasChallengeId() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *ChallengeResponse) HasNonce() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 1)
}

func (x *ChallengeResponse) HasExpiresAt() bool {
	if x == nil {
		return false
	}
	return x.xxx_hidden_ExpiresAt != nil
}

func (x *ChallengeResponse) ClearChallengeId() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_ChallengeId = nil
}

func (x *ChallengeResponse) ClearNonce() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 1)
	x.xxx_hidden_Nonce = nil
}

func (x *ChallengeResponse) ClearExpiresAt() {
	x.xxx_hidden_ExpiresAt = nil
}

type ChallengeResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	ChallengeId *string
	Nonce       []byte
	ExpiresAt   *timestamppb.Timestamp
}

func (b0 ChallengeResponse_builder) Build() *ChallengeResponse {
	m0 := &ChallengeResponse{}
	b, x := &b0, m0
	_, _ = b, x
	if b.ChallengeId != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 3)
		x.xxx_hidden_ChallengeId = b.ChallengeId
	}
	if b.Nonce != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 1, 3)
		x.xxx_hidden_Nonce = b.Nonce
	}
	x.xxx_hidden_ExpiresAt = b.ExpiresAt
	return m0
}

type LoginRequest struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Wallet      *string                `protobuf:"bytes,1,opt,name=wallet"`
	xxx_hidden_ChallengeId *string                `protobuf:"bytes,2,opt,name=challenge_id,json=challengeId"`
	xxx_hidden_Signature   []byte                 `protobuf:"bytes,3,opt,name=signature"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *LoginRequest) Reset() {
	*x = LoginRequest{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoginRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoginRequest) ProtoMessage() {}

func (x *LoginRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *LoginRequest) GetWallet() string {
	if x != nil {
		if x.xxx_hidden_Wallet != nil {
			return *x.xxx_hidden_Wallet
		}
		return ""
	}
	return ""
}

func (x *LoginRequest) GetChallengeId() string {
	if x != nil {
		if x.xxx_hidden_ChallengeId != nil {
			return *x.xxx_hidden_ChallengeId
		}
		return ""
	}
	return ""
}

func (x *LoginRequest) GetSignature() []byte {
	if x != nil {
		return x.xxx_hidden_Signature
	}
	return nil
}

func (x *LoginRequest) SetWallet(v string) {
	x.xxx_hidden_Wallet = &v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 3)
}

func (x *LoginRequest) SetChallengeId(v string) {
	x.xxx_hidden_ChallengeId = &v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 1, 3)
}

func (x *LoginRequest) SetSignature(v []byte) {
	if v == nil {
		v = []byte{}
	}
	x.xxx_hidden_Signature = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 2, 3)
}

func (x *LoginRequest) HasWallet() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *LoginRequest) HasChallengeId() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 1)
}

func (x *LoginRequest) HasSignature() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 2)
}

func (x *LoginRequest) ClearWallet() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_Wallet = nil
}

func (x *LoginRequest) ClearChallengeId() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 1)
	x.xxx_hidden_ChallengeId = nil
}

func (x *LoginRequest) ClearSignature() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 2)
	x.xxx_hidden_Signature = nil
}

type LoginRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Wallet      *string
	ChallengeId *string
	Signature   []byte
}

func (b0 LoginRequest_builder) Build() *LoginRequest {
	m0 := &LoginRequest{}
	b, x := &b0, m0
	_, _ = b, x
	if b.Wallet != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 3)
		x.xxx_hidden_Wallet = b.Wallet
	}
	if b.ChallengeId != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 1, 3)
		x.xxx_hidden_ChallengeId = b.ChallengeId
	}
	if b.Signature != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 2, 3)
		x.xxx_hidden_Signature = b.Signature
	}
	return m0
}

type LoginResponse struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_AccessToken *string                `protobuf:"bytes,1,opt,name=access_token,json=accessToken"`
	xxx_hidden_ExpiresAt   *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=expires_at,json=expiresAt"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *LoginResponse) Reset() {
	*x = LoginResponse{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoginResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoginResponse) ProtoMessage() {}

func (x *LoginResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *LoginResponse) GetAccessToken() string {
	if x != nil {
		if x.xxx_hidden_AccessToken != nil {
			return *x.xxx_hidden_AccessToken
		}
		return ""
	}
	return ""
}

func (x *LoginResponse) GetExpiresAt() *timestamppb.Timestamp {
	if x != nil {
		return x.xxx_hidden_ExpiresAt
	}
	return nil
}

func (x *LoginResponse) SetAccessToken(v string) {
	x.xxx_hidden_AccessToken = &v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 2)
}

func (x *LoginResponse) SetExpiresAt(v *timestamppb.Timestamp) {
	x.xxx_hidden_ExpiresAt = v
}

func (x *LoginResponse) HasAccessToken() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *LoginResponse) HasExpiresAt() bool {
	if x == nil {
		return false
	}
	return x.xxx_hidden_ExpiresAt != nil
}

func (x *LoginResponse) ClearAccessToken() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_AccessToken = nil
}

func (x *LoginResponse) ClearExpiresAt() {
	x.xxx_hidden_ExpiresAt = nil
}

type LoginResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	AccessToken *string
	ExpiresAt   *timestamppb.Timestamp
}

func (b0 LoginResponse_builder) Build() *LoginResponse {
	m0 := &LoginResponse{}
	b, x := &b0, m0
	_, _ = b, x
	if b.AccessToken != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 2)
		x.xxx_hidden_AccessToken = b.AccessToken
	}
	x.xxx_hidden_ExpiresAt = b.ExpiresAt
	return m0
}

type Article struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Id          int64                  `protobuf:"varint,1,opt,name=id"`
	xxx_hidden_Publisher   *string                `protobuf:"bytes,2,opt,name=publisher"`
	xxx_hidden_Category    *string                `protobuf:"bytes,3,opt,name=category"`
	xxx_hidden_Title       *string                `protobuf:"bytes,4,opt,name=title"`
	xxx_hidden_Author      *string                `protobuf:"bytes,5,opt,name=author"`
	xxx_hidden_CreatedAt   *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=created_at,json=createdAt"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *Article) Reset() {
	*x = Article{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Article) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Article) ProtoMessage() {}

func (x *Article) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *Article) GetId() int64 {
	if x != nil {
		return x.xxx_hidden_Id
	}
	return 0
}

func (x *Article) GetPublisher() string {
	if x != nil {
		if x.xxx_hidden_Publisher != nil {
			return *x.xxx_hidden_Publisher
		}
		return ""
	}
	return ""
}

func (x *Article) GetCategory() string {
	if x != nil {
		if x.xxx_hidden_Category != nil {
			return *x.xxx_hidden_Category
		}
		return ""
	}
	return ""
}

func (x *Article) GetTitle() string {
	if x != nil {
		if x.xxx_hidden_Title != nil {
			return *x.xxx_hidden_Title
		}
		return ""
	}
	return ""
}

func (x *Article) GetAuthor() string {
	if x != nil {
		if x.xxx_hidden_Author != nil {
			return *x.xxx_hidden_Author
		}
		return ""
	}
	return ""
}

func (x *Article) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.xxx_hidden_CreatedAt
	}
	return nil
}

func (x *Article) SetId(v int64) {
	x.xxx_hidden_Id = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 6)
}

func (x *Article) SetPublisher(v string) {
	x.xxx_hidden_Publisher = &v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 1, 6)
}

func (x *Article) SetCategory(v string) {
	x.xxx_hidden_Category = &v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 2, 6)
}

func (x *Article) SetTitle(v string) {
	x.xxx_hidden_Title = &v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 3, 6)
}

func (x *Article) SetAuthor(v string) {
	x.xxx_hidden_Author = &v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 4, 6)
}

func (x *Article) SetCreatedAt(v *timestamppb.Timestamp) {
	x.xxx_hidden_CreatedAt = v
}

func (x *Article) HasId() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *Article) HasPublisher() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 1)
}

func (x *Article) HasCategory() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 2)
}

func (x *Article) HasTitle() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 3)
}

func (x *Article) HasAuthor() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 4)
}

func (x *Article) HasCreatedAt() bool {
	if x == nil {
		return false
	}
	return x.xxx_hidden_CreatedAt != nil
}

func (x *Article) ClearId() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_Id = 0
}

func (x *Article) ClearPublisher() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 1)
	x.xxx_hidden_Publisher = nil
}

func (x *Article) ClearCategory() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 2)
	x.xxx_hidden_Category = nil
}

func (x *Article) ClearTitle() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 3)
	x.xxx_hidden_Title = nil
}

func (x *Article) ClearAuthor() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 4)
	x.xxx_hidden_Author = nil
}

func (x *Article) ClearCreatedAt() {
	x.xxx_hidden_CreatedAt = nil
}

type Article_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Id        *int64
	Publisher *string
	Category  *string
	Title     *string
	Author    *string
	CreatedAt *timestamppb.Timestamp
}

func (b0 Article_builder) Build() *Article {
	m0 := &Article{}
	b, x := &b0, m0
	_, _ = b, x
	if b.Id != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 6)
		x.xxx_hidden_Id = *b.Id
	}
	if b.Publisher != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 1, 6)
		x.xxx_hidden_Publisher = b.Publisher
	}
	if b.Category != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 2, 6)
		x.xxx_hidden_Category = b.Category
	}
	if b.Title != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 3, 6)
		x.xxx_hidden_Title = b.Title
	}
	if b.Author != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 4, 6)
		x.xxx_hidden_Author = b.Author
	}
	x.xxx_hidden_CreatedAt = b.CreatedAt
	return m0
}

type CreateArticleRequest struct {
	state                       protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Category         *string                `protobuf:"bytes,1,opt,name=category"`
	xxx_hidden_Title            *string                `protobuf:"bytes,2,opt,name=title"`
	xxx_hidden_AuthorName       *string                `protobuf:"bytes,3,opt,name=author_name,json=authorName"`
	xxx_hidden_PublicCost       int64                  `protobuf:"varint,4,opt,name=public_cost,json=publicCost"`
	xxx_hidden_AllowlistCost    int64                  `protobuf:"varint,5,opt,name=allowlist_cost,json=allowlistCost"`
	xxx_hidden_MaxAmount        int64                  `protobuf:"varint,6,opt,name=max_amount,json=maxAmount"`
	xxx_hidden_MaxPerUser       int64                  `protobuf:"varint,7,opt,name=max_per_user,json=maxPerUser"`
	xxx_hidden_MetadataUrl      *string                `protobuf:"bytes,8,opt,name=metadata_url,json=metadataUrl"`
	xxx_hidden_Validator        *string                `protobuf:"bytes,9,opt,name=validator"`
	xxx_hidden_ReserveAmount    int64                  `protobuf:"varint,10,opt,name=reserve_amount,json=reserveAmount"`
	xxx_hidden_ReserveRecipient *string                `protobuf:"bytes,11,opt,name=reserve_recipient,json=reserveRecipient"`
	XXX_raceDetectHookData      protoimpl.RaceDetectHookData
	XXX_presence                [1]uint32
	unknownFields               protoimpl.UnknownFields
	sizeCache                   protoimpl.SizeCache
}

func (x *CreateArticleRequest) Reset() {
	*x = CreateArticleRequest{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateArticleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateArticleRequest) ProtoMessage() {}

func (x *CreateArticleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *CreateArticleRequest) GetCategory() string {
	if x != nil {
		if x.xxx_hidden_Category != nil {
			return *x.xxx_hidden_Category
		}
		return ""
	}
	return ""
}

func (x *CreateArticleRequest) GetTitle() string {
	if x != nil {
		if x.xxx_hidden_Title != nil {
			return *x.xxx_hidden_Title
		}
		return ""
	}
	return ""
}

func (x *CreateArticleRequest) GetAuthorName() string {
	if x != nil {
		if x.xxx_hidden_AuthorName != nil {
			return *x.xxx_hidden_AuthorName
		}
		return ""
	}
	return ""
}

func (x *CreateArticleRequest) GetPublicCost() int64 {
	if x != nil {
		return x.xxx_hidden_PublicCost
	}
	return 0
}

func (x *CreateArticleRequest) GetAllowlistCost() int64 {
	if x != nil {
		return x.xxx_hidden_AllowlistCost
	}
	return 0
}

func (x *CreateArticleRequest) GetMaxAmount() int64 {
	if x != nil {
		return x.xxx_hidden_MaxAmount
	}
	return 0
}

func (x *CreateArticleRequest) GetMaxPerUser() int64 {
	if x != nil {
		return x.xxx_hidden_MaxPerUser
	}
	return 0
}

func (x *CreateArticleRequest) GetMetadataUrl() string {
	if x != nil {
		if x.xxx_hidden_MetadataUrl != nil {
			return *x.xxx_hidden_MetadataUrl
		}
		return ""
	}
	return ""
}

func (x *CreateArticleRequest) GetValidator() string {
	if x != nil {
		if x.xxx_hidden_Validator != nil {
			return *x.xxx_hidden_Validator
		}
		return ""
	}
	return ""
}

func (x *CreateArticleRequest) GetReserveAmount() int64 {
	if x != nil {
		return x.xxx_hidden_ReserveAmount
	}
	return 0
}

func (x *CreateArticleRequest) GetReserveRecipient() string {
	if x != nil {
		if x.xxx_hidden_ReserveRecipient != nil {
			return *x.xxx_hidden_ReserveRecipient
		}
		return ""
	}
	return ""
}

func (x *CreateArticleRequest) SetCategory(v string) {
	x.xxx_hidden_Category = &v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 11)
}

func (x *CreateArticleRequest) SetTitle(v string) {
	x.xxx_hidden_Title = &v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 1, 11)
}

func (x *CreateArticleRequest) SetAuthorName(v string) {
	x.xxx_hidden_AuthorName = &v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 2, 11)
}

func (x *CreateArticleRequest) SetPublicCost(v int64) {
	x.xxx_hidden_PublicCost = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 3, 11)
}

func (x *CreateArticleRequest) SetAllowlistCost(v int64) {
	x.xxx_hidden_AllowlistCost = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 4, 11)
}

func (x *CreateArticleRequest) SetMaxAmount(v int64) {
	x.xxx_hidden_MaxAmount = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 5, 11)
}

func (x *CreateArticleRequest) SetMaxPerUser(v int64) {
	x.xxx_hidden_MaxPerUser = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 6, 11)
}

func (x *CreateArticleRequest) SetMetadataUrl(v string) {
	x.xxx_hidden_MetadataUrl = &v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 7, 11)
}

func (x *CreateArticleRequest) SetValidator(v string) {
	x.xxx_hidden_Validator = &v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 8, 11)
}

func (x *CreateArticleRequest) SetReserveAmount(v int64) {
	x.xxx_hidden_ReserveAmount = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 9, 11)
}

func (x *CreateArticleRequest) SetReserveRecipient(v string) {
	x.xxx_hidden_ReserveRecipient = &v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 10, 11)
}

func (x *CreateArticleRequest) HasCategory() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *CreateArticleRequest) HasTitle() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 1)
}

func (x *CreateArticleRequest) HasAuthorName() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 2)
}

func (x *CreateArticleRequest) HasPublicCost() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 3)
}

func (x *CreateArticleRequest) HasAllowlistCost() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 4)
}

func (x *CreateArticleRequest) HasMaxAmount() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 5)
}

func (x *CreateArticleRequest) HasMaxPerUser() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 6)
}

func (x *CreateArticleRequest) HasMetadataUrl() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 7)
}

func (x *CreateArticleRequest) HasValidator() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 8)
}

func (x *CreateArticleRequest) HasReserveAmount() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 9)
}

func (x *CreateArticleRequest) HasReserveRecipient() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 10)
}

func (x *CreateArticleRequest) ClearCategory() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_Category = nil
}

func (x *CreateArticleRequest) ClearTitle() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 1)
	x.xxx_hidden_Title = nil
}

func (x *CreateArticleRequest) ClearAuthorName() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 2)
	x.xxx_hidden_AuthorName = nil
}

func (x *CreateArticleRequest) ClearPublicCost() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 3)
	x.xxx_hidden_PublicCost = 0
}

func (x *CreateArticleRequest) ClearAllowlistCost() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 4)
	x.xxx_hidden_AllowlistCost = 0
}

func (x *CreateArticleRequest) ClearMaxAmount() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 5)
	x.xxx_hidden_MaxAmount = 0
}

func (x *CreateArticleRequest) ClearMaxPerUser() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 6)
	x.xxx_hidden_MaxPerUser = 0
}

func (x *CreateArticleRequest) ClearMetadataUrl() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 7)
	x.xxx_hidden_MetadataUrl = nil
}

func (x *CreateArticleRequest) ClearValidator() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 8)
	x.xxx_hidden_Validator = nil
}

func (x *CreateArticleRequest) ClearReserveAmount() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 9)
	x.xxx_hidden_ReserveAmount = 0
}

func (x *CreateArticleRequest) ClearReserveRecipient() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 10)
	x.xxx_hidden_ReserveRecipient = nil
}

type CreateArticleRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Category         *string
	Title            *string
	AuthorName       *string
	PublicCost       *int64
	AllowlistCost    *int64
	MaxAmount        *int64
	MaxPerUser       *int64
	MetadataUrl      *string
	Validator        *string
	ReserveAmount    *int64
	ReserveRecipient *string
}

func (b0 CreateArticleRequest_builder) Build() *CreateArticleRequest {
	m0 := &CreateArticleRequest{}
	b, x := &b0, m0
	_, _ = b, x
	if b.Category != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 11)
		x.xxx_hidden_Category = b.Category
	}
	if b.Title != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 1, 11)
		x.xxx_hidden_Title = b.Title
	}
	if b.AuthorName != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 2, 11)
		x.xxx_hidden_AuthorName = b.AuthorName
	}
	if b.PublicCost != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 3, 11)
		x.xxx_hidden_PublicCost = *b.PublicCost
	}
	if b.AllowlistCost != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 4, 11)
		x.xxx_hidden_AllowlistCost = *b.AllowlistCost
	}
	if b.MaxAmount != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 5, 11)
		x.xxx_hidden_MaxAmount = *b.MaxAmount
	}
	if b.MaxPerUser != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 6, 11)
		x.xxx_hidden_MaxPerUser = *b.MaxPerUser
	}
	if b.MetadataUrl != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 7, 11)
		x.xxx_hidden_MetadataUrl = b.MetadataUrl
	}
	if b.Validator != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 8, 11)
		x.xxx_hidden_Validator = b.Validator
	}
	if b.ReserveAmount != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 9, 11)
		x.xxx_hidden_ReserveAmount = *b.ReserveAmount
	}
	if b.ReserveRecipient != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 10, 11)
		x.xxx_hidden_ReserveRecipient = b.ReserveRecipient
	}
	return m0
}

type CreateArticleResponse struct {
	state              protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Article *Article               `protobuf:"bytes,1,opt,name=article"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *CreateArticleResponse) Reset() {
	*x = CreateArticleResponse{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateArticleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateArticleResponse) ProtoMessage() {}

func (x *CreateArticleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *CreateArticleResponse) GetArticle() *Article {
	if x != nil {
		return x.xxx_hidden_Article
	}
	return nil
}

func (x *CreateArticleResponse) SetArticle(v *Article) {
	x.xxx_hidden_Article = v
}

func (x *CreateArticleResponse) HasArticle() bool {
	if x == nil {
		return false
	}
	return x.xxx_hidden_Article != nil
}

func (x *CreateArticleResponse) ClearArticle() {
	x.xxx_hidden_Article = nil
}

type CreateArticleResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Article *Article
}

func (b0 CreateArticleResponse_builder) Build() *CreateArticleResponse {
	m0 := &CreateArticleResponse{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Article = b.Article
	return m0
}

type GetAllArticlesRequest struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAllArticlesRequest) Reset() {
	*x = GetAllArticlesRequest{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAllArticlesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAllArticlesRequest) ProtoMessage() {}

func (x *GetAllArticlesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type GetAllArticlesRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

}

func (b0 GetAllArticlesRequest_builder) Build() *GetAllArticlesRequest {
	m0 := &GetAllArticlesRequest{}
	b, x := &b0, m0
	_, _ = b, x
	return m0
}

type GetAllArticlesResponse struct {
	state               protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Articles *[]*Article            `protobuf:"bytes,1,rep,name=articles"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *GetAllArticlesResponse) Reset() {
	*x = GetAllArticlesResponse{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAllArticlesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAllArticlesResponse) ProtoMessage() {}

func (x *GetAllArticlesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *GetAllArticlesResponse) GetArticles() []*Article {
	if x != nil {
		if x.xxx_hidden_Articles != nil {
			return *x.xxx_hidden_Articles
		}
	}
	return nil
}

func (x *GetAllArticlesResponse) SetArticles(v []*Article) {
	x.xxx_hidden_Articles = &v
}

type GetAllArticlesResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Articles []*Article
}

func (b0 GetAllArticlesResponse_builder) Build() *GetAllArticlesResponse {
	m0 := &GetAllArticlesResponse{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Articles = &b.Articles
	return m0
}

type GetArticleByIdRequest struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Id          int64                  `protobuf:"varint,1,opt,name=id"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *GetArticleByIdRequest) Reset() {
	*x = GetArticleByIdRequest{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetArticleByIdRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetArticleByIdRequest) ProtoMessage() {}

func (x *GetArticleByIdRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *GetArticleByIdRequest) GetId() int64 {
	if x != nil {
		return x.xxx_hidden_Id
	}
	return 0
}

func (x *GetArticleByIdRequest) SetId(v int64) {
	x.xxx_hidden_Id = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 1)
}

func (x *GetArticleByIdRequest) HasId() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *GetArticleByIdRequest) ClearId() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_Id = 0
}

type GetArticleByIdRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Id *int64
}

func (b0 GetArticleByIdRequest_builder) Build() *GetArticleByIdRequest {
	m0 := &GetArticleByIdRequest{}
	b, x := &b0, m0
	_, _ = b, x
	if b.Id != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 1)
		x.xxx_hidden_Id = *b.Id
	}
	return m0
}

type GetArticleByIdResponse struct {
	state              protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Article *Article               `protobuf:"bytes,1,opt,name=article"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *GetArticleByIdResponse) Reset() {
	*x = GetArticleByIdResponse{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetArticleByIdResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetArticleByIdResponse) ProtoMessage() {}

func (x *GetArticleByIdResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *GetArticleByIdResponse) GetArticle() *Article {
	if x != nil {
		return x.xxx_hidden_Article
	}
	return nil
}

func (x *GetArticleByIdResponse) SetArticle(v *Article) {
	x.xxx_hidden_Article = v
}

func (x *GetArticleByIdResponse) HasArticle() bool {
	if x == nil {
		return false
	}
	return x.xxx_hidden_Article != nil
}

func (x *GetArticleByIdResponse) ClearArticle() {
	x.xxx_hidden_Article = nil
}

type GetArticleByIdResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Article *Article
}

func (b0 GetArticleByIdResponse_builder) Build() *GetArticleByIdResponse {
	m0 := &GetArticleByIdResponse{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Article = b.Article
	return m0
}

type EditMetadataUrlRequest struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_TokenId     int64                  `protobuf:"varint,1,opt,name=token_id,json=tokenId"`
	xxx_hidden_Url         *string                `protobuf:"bytes,2,opt,name=url"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *EditMetadataUrlRequest) Reset() {
	*x = EditMetadataUrlRequest{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EditMetadataUrlRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EditMetadataUrlRequest) ProtoMessage() {}

func (x *EditMetadataUrlRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *EditMetadataUrlRequest) GetTokenId() int64 {
	if x != nil {
		return x.xxx_hidden_TokenId
	}
	return 0
}

func (x *EditMetadataUrlRequest) GetUrl() string {
	if x != nil {
		if x.xxx_hidden_Url != nil {
			return *x.xxx_hidden_Url
		}
		return ""
	}
	return ""
}

func (x *EditMetadataUrlRequest) SetTokenId(v int64) {
	x.xxx_hidden_TokenId = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 2)
}

func (x *EditMetadataUrlRequest) SetUrl(v string) {
	x.xxx_hidden_Url = &v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 1, 2)
}

func (x *EditMetadataUrlRequest) HasTokenId() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *EditMetadataUrlRequest) HasUrl() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 1)
}

func (x *EditMetadataUrlRequest) ClearTokenId() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_TokenId = 0
}

func (x *EditMetadataUrlRequest) ClearUrl() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 1)
	x.xxx_hidden_Url = nil
}

type EditMetadataUrlRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	TokenId *int64
	Url     *string
}

func (b0 EditMetadataUrlRequest_builder) Build() *EditMetadataUrlRequest {
	m0 := &EditMetadataUrlRequest{}
	b, x := &b0, m0
	_, _ = b, x
	if b.TokenId != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 2)
		x.xxx_hidden_TokenId = *b.TokenId
	}
	if b.Url != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 1, 2)
		x.xxx_hidden_Url = b.Url
	}
	return m0
}

type EditMetadataUrlResponse struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EditMetadataUrlResponse) Reset() {
	*x = EditMetadataUrlResponse{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EditMetadataUrlResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EditMetadataUrlResponse) ProtoMessage() {}

func (x *EditMetadataUrlResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type EditMetadataUrlResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

}

func (b0 EditMetadataUrlResponse_builder) Build() *EditMetadataUrlResponse {
	m0 := &EditMetadataUrlResponse{}
	b, x := &b0, m0
	_, _ = b, x
	return m0
}

type UriRequest struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_TokenId     int64                  `protobuf:"varint,1,opt,name=token_id,json=tokenId"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *UriRequest) Reset() {
	*x = UriRequest{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UriRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UriRequest) ProtoMessage() {}

func (x *UriRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *UriRequest) GetTokenId() int64 {
	if x != nil {
		return x.xxx_hidden_TokenId
	}
	return 0
}

func (x *UriRequest) SetTokenId(v int64) {
	x.xxx_hidden_TokenId = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 1)
}

func (x *UriRequest) HasTokenId() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *UriRequest) ClearTokenId() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_TokenId = 0
}

type UriRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	TokenId *int64
}

func (b0 UriRequest_builder) Build() *UriRequest {
	m0 := &UriRequest{}
	b, x := &b0, m0
	_, _ = b, x
	if b.TokenId != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 1)
		x.xxx_hidden_TokenId = *b.TokenId
	}
	return m0
}

type UriResponse struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Url         *string                `protobuf:"bytes,1,opt,name=url"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *UriResponse) Reset() {
	*x = UriResponse{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UriResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UriResponse) ProtoMessage() {}

func (x *UriResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *UriResponse) GetUrl() string {
	if x != nil {
		if x.xxx_hidden_Url != nil {
			return *x.xxx_hidden_Url
		}
		return ""
	}
	return ""
}

func (x *UriResponse) SetUrl(v string) {
	x.xxx_hidden_Url = &v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 1)
}

func (x *UriResponse) HasUrl() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *UriResponse) ClearUrl() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_Url = nil
}

type UriResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Url *string
}

func (b0 UriResponse_builder) Build() *UriResponse {
	m0 := &UriResponse{}
	b, x := &b0, m0
	_, _ = b, x
	if b.Url != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 1)
		x.xxx_hidden_Url = b.Url
	}
	return m0
}

type MintRequest struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_TokenId     int64                  `protobuf:"varint,1,opt,name=token_id,json=tokenId"`
	xxx_hidden_Amount      int64                  `protobuf:"varint,2,opt,name=amount"`
	xxx_hidden_Payment     int64                  `protobuf:"varint,3,opt,name=payment"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *MintRequest) Reset() {
	*x = MintRequest{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MintRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MintRequest) ProtoMessage() {}

func (x *MintRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *MintRequest) GetTokenId() int64 {
	if x != nil {
		return x.xxx_hidden_TokenId
	}
	return 0
}

func (x *MintRequest) GetAmount() int64 {
	if x != nil {
		return x.xxx_hidden_Amount
	}
	return 0
}

func (x *MintRequest) GetPayment() int64 {
	if x != nil {
		return x.xxx_hidden_Payment
	}
	return 0
}

func (x *MintRequest) SetTokenId(v int64) {
	x.xxx_hidden_TokenId = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 3)
}

func (x *MintRequest) SetAmount(v int64) {
	x.xxx_hidden_Amount = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 1, 3)
}

func (x *MintRequest) SetPayment(v int64) {
	x.xxx_hidden_Payment = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 2, 3)
}

func (x *MintRequest) HasTokenId() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *MintRequest) HasAmount() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 1)
}

func (x *MintRequest) HasPayment() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 2)
}

func (x *MintRequest) ClearTokenId() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_TokenId = 0
}

func (x *MintRequest) ClearAmount() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 1)
	x.xxx_hidden_Amount = 0
}

func (x *MintRequest) ClearPayment() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 2)
	x.xxx_hidden_Payment = 0
}

type MintRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	TokenId *int64
	Amount  *int64
	Payment *int64
}

func (b0 MintRequest_builder) Build() *MintRequest {
	m0 := &MintRequest{}
	b, x := &b0, m0
	_, _ = b, x
	if b.TokenId != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 3)
		x.xxx_hidden_TokenId = *b.TokenId
	}
	if b.Amount != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 1, 3)
		x.xxx_hidden_Amount = *b.Amount
	}
	if b.Payment != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 2, 3)
		x.xxx_hidden_Payment = *b.Payment
	}
	return m0
}

type MintResponse struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MintResponse) Reset() {
	*x = MintResponse{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MintResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MintResponse) ProtoMessage() {}

func (x *MintResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type MintResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

}

func (b0 MintResponse_builder) Build() *MintResponse {
	m0 := &MintResponse{}
	b, x := &b0, m0
	_, _ = b, x
	return m0
}

type AllowlistMintRequest struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_TokenId     int64                  `protobuf:"varint,1,opt,name=token_id,json=tokenId"`
	xxx_hidden_Amount      int64                  `protobuf:"varint,2,opt,name=amount"`
	xxx_hidden_Payment     int64                  `protobuf:"varint,3,opt,name=payment"`
	xxx_hidden_Nonce       int64                  `protobuf:"varint,4,opt,name=nonce"`
	xxx_hidden_Wallet      *string                `protobuf:"bytes,5,opt,name=wallet"`
	xxx_hidden_Signature   []byte                 `protobuf:"bytes,6,opt,name=signature"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *AllowlistMintRequest) Reset() {
	*x = AllowlistMintRequest{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AllowlistMintRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AllowlistMintRequest) ProtoMessage() {}

func (x *AllowlistMintRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *AllowlistMintRequest) GetTokenId() int64 {
	if x != nil {
		return x.xxx_hidden_TokenId
	}
	return 0
}

func (x *AllowlistMintRequest) GetAmount() int64 {
	if x != nil {
		return x.xxx_hidden_Amount
	}
	return 0
}

func (x *AllowlistMintRequest) GetPayment() int64 {
	if x != nil {
		return x.xxx_hidden_Payment
	}
	return 0
}

func (x *AllowlistMintRequest) GetNonce() int64 {
	if x != nil {
		return x.xxx_hidden_Nonce
	}
	return 0
}

func (x *AllowlistMintRequest) GetWallet() string {
	if x != nil {
		if x.xxx_hidden_Wallet != nil {
			return *x.xxx_hidden_Wallet
		}
		return ""
	}
	return ""
}

func (x *AllowlistMintRequest) GetSignature() []byte {
	if x != nil {
		return x.xxx_hidden_Signature
	}
	return nil
}

func (x *AllowlistMintRequest) SetTokenId(v int64) {
	x.xxx_hidden_TokenId = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 6)
}

func (x *AllowlistMintRequest) SetAmount(v int64) {
	x.xxx_hidden_Amount = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 1, 6)
}

func (x *AllowlistMintRequest) SetPayment(v int64) {
	x.xxx_hidden_Payment = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 2, 6)
}

func (x *AllowlistMintRequest) SetNonce(v int64) {
	x.xxx_hidden_Nonce = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 3, 6)
}

func (x *AllowlistMintRequest) SetWallet(v string) {
	x.xxx_hidden_Wallet = &v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 4, 6)
}

func (x *AllowlistMintRequest) SetSignature(v []byte) {
	if v == nil {
		v = []byte{}
	}
	x.xxx_hidden_Signature = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 5, 6)
}

func (x *AllowlistMintRequest) HasTokenId() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *AllowlistMintRequest) HasAmount() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 1)
}

func (x *AllowlistMintRequest) HasPayment() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 2)
}

func (x *AllowlistMintRequest) HasNonce() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 3)
}

func (x *AllowlistMintRequest) HasWallet() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 4)
}

func (x *AllowlistMintRequest) HasSignature() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 5)
}

func (x *AllowlistMintRequest) ClearTokenId() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_TokenId = 0
}

func (x *AllowlistMintRequest) ClearAmount() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 1)
	x.xxx_hidden_Amount = 0
}

func (x *AllowlistMintRequest) ClearPayment() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 2)
	x.xxx_hidden_Payment = 0
}

func (x *AllowlistMintRequest) ClearNonce() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 3)
	x.xxx_hidden_Nonce = 0
}

func (x *AllowlistMintRequest) ClearWallet() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 4)
	x.xxx_hidden_Wallet = nil
}

func (x *AllowlistMintRequest) ClearSignature() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 5)
	x.xxx_hidden_Signature = nil
}

type AllowlistMintRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	TokenId   *int64
	Amount    *int64
	Payment   *int64
	Nonce     *int64
	Wallet    *string
	Signature []byte
}

func (b0 AllowlistMintRequest_builder) Build() *AllowlistMintRequest {
	m0 := &AllowlistMintRequest{}
	b, x := &b0, m0
	_, _ = b, x
	if b.TokenId != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 6)
		x.xxx_hidden_TokenId = *b.TokenId
	}
	if b.Amount != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 1, 6)
		x.xxx_hidden_Amount = *b.Amount
	}
	if b.Payment != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 2, 6)
		x.xxx_hidden_Payment = *b.Payment
	}
	if b.Nonce != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 3, 6)
		x.xxx_hidden_Nonce = *b.Nonce
	}
	if b.Wallet != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 4, 6)
		x.xxx_hidden_Wallet = b.Wallet
	}
	if b.Signature != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 5, 6)
		x.xxx_hidden_Signature = b.Signature
	}
	return m0
}

type AllowlistMintResponse struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AllowlistMintResponse) Reset() {
	*x = AllowlistMintResponse{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AllowlistMintResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AllowlistMintResponse) ProtoMessage() {}

func (x *AllowlistMintResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type AllowlistMintResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

}

func (b0 AllowlistMintResponse_builder) Build() *AllowlistMintResponse {
	m0 := &AllowlistMintResponse{}
	b, x := &b0, m0
	_, _ = b, x
	return m0
}

type BulkDropRequest struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_TokenId     int64                  `protobuf:"varint,1,opt,name=token_id,json=tokenId"`
	xxx_hidden_Recipients  []string               `protobuf:"bytes,2,rep,name=recipients"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *BulkDropRequest) Reset() {
	*x = BulkDropRequest{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BulkDropRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BulkDropRequest) ProtoMessage() {}

func (x *BulkDropRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *BulkDropRequest) GetTokenId() int64 {
	if x != nil {
		return x.xxx_hidden_TokenId
	}
	return 0
}

func (x *BulkDropRequest) GetRecipients() []string {
	if x != nil {
		return x.xxx_hidden_Recipients
	}
	return nil
}

func (x *BulkDropRequest) SetTokenId(v int64) {
	x.xxx_hidden_TokenId = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 2)
}

func (x *BulkDropRequest) SetRecipients(v []string) {
	x.xxx_hidden_Recipients = v
}

func (x *BulkDropRequest) HasTokenId() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *BulkDropRequest) ClearTokenId() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_TokenId = 0
}

type BulkDropRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	TokenId    *int64
	Recipients []string
}

func (b0 BulkDropRequest_builder) Build() *BulkDropRequest {
	m0 := &BulkDropRequest{}
	b, x := &b0, m0
	_, _ = b, x
	if b.TokenId != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 2)
		x.xxx_hidden_TokenId = *b.TokenId
	}
	x.xxx_hidden_Recipients = b.Recipients
	return m0
}

type BulkDropResponse struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BulkDropResponse) Reset() {
	*x = BulkDropResponse{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BulkDropResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BulkDropResponse) ProtoMessage() {}

func (x *BulkDropResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type BulkDropResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

}

func (b0 BulkDropResponse_builder) Build() *BulkDropResponse {
	m0 := &BulkDropResponse{}
	b, x := &b0, m0
	_, _ = b, x
	return m0
}

type BalanceOfRequest struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Owner       *string                `protobuf:"bytes,1,opt,name=owner"`
	xxx_hidden_TokenId     int64                  `protobuf:"varint,2,opt,name=token_id,json=tokenId"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *BalanceOfRequest) Reset() {
	*x = BalanceOfRequest{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BalanceOfRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BalanceOfRequest) ProtoMessage() {}

func (x *BalanceOfRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *BalanceOfRequest) GetOwner() string {
	if x != nil {
		if x.xxx_hidden_Owner != nil {
			return *x.xxx_hidden_Owner
		}
		return ""
	}
	return ""
}

func (x *BalanceOfRequest) GetTokenId() int64 {
	if x != nil {
		return x.xxx_hidden_TokenId
	}
	return 0
}

func (x *BalanceOfRequest) SetOwner(v string) {
	x.xxx_hidden_Owner = &v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 2)
}

func (x *BalanceOfRequest) SetTokenId(v int64) {
	x.xxx_hidden_TokenId = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 1, 2)
}

func (x *BalanceOfRequest) HasOwner() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *BalanceOfRequest) HasTokenId() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 1)
}

func (x *BalanceOfRequest) ClearOwner() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_Owner = nil
}

func (x *BalanceOfRequest) ClearTokenId() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 1)
	x.xxx_hidden_TokenId = 0
}

type BalanceOfRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Owner   *string
	TokenId *int64
}

func (b0 BalanceOfRequest_builder) Build() *BalanceOfRequest {
	m0 := &BalanceOfRequest{}
	b, x := &b0, m0
	_, _ = b, x
	if b.Owner != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 2)
		x.xxx_hidden_Owner = b.Owner
	}
	if b.TokenId != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 1, 2)
		x.xxx_hidden_TokenId = *b.TokenId
	}
	return m0
}

type BalanceOfResponse struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Amount      int64                  `protobuf:"varint,1,opt,name=amount"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *BalanceOfResponse) Reset() {
	*x = BalanceOfResponse{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BalanceOfResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BalanceOfResponse) ProtoMessage() {}

func (x *BalanceOfResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *BalanceOfResponse) GetAmount() int64 {
	if x != nil {
		return x.xxx_hidden_Amount
	}
	return 0
}

func (x *BalanceOfResponse) SetAmount(v int64) {
	x.xxx_hidden_Amount = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 1)
}

func (x *BalanceOfResponse) HasAmount() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *BalanceOfResponse) ClearAmount() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_Amount = 0
}

type BalanceOfResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Amount *int64
}

func (b0 BalanceOfResponse_builder) Build() *BalanceOfResponse {
	m0 := &BalanceOfResponse{}
	b, x := &b0, m0
	_, _ = b, x
	if b.Amount != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 1)
		x.xxx_hidden_Amount = *b.Amount
	}
	return m0
}

type TotalSupplyRequest struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_TokenId     int64                  `protobuf:"varint,1,opt,name=token_id,json=tokenId"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *TotalSupplyRequest) Reset() {
	*x = TotalSupplyRequest{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TotalSupplyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TotalSupplyRequest) ProtoMessage() {}

func (x *TotalSupplyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *TotalSupplyRequest) GetTokenId() int64 {
	if x != nil {
		return x.xxx_hidden_TokenId
	}
	return 0
}

func (x *TotalSupplyRequest) SetTokenId(v int64) {
	x.xxx_hidden_TokenId = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 1)
}

func (x *TotalSupplyRequest) HasTokenId() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *TotalSupplyRequest) ClearTokenId() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_TokenId = 0
}

type TotalSupplyRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	TokenId *int64
}

func (b0 TotalSupplyRequest_builder) Build() *TotalSupplyRequest {
	m0 := &TotalSupplyRequest{}
	b, x := &b0, m0
	_, _ = b, x
	if b.TokenId != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 1)
		x.xxx_hidden_TokenId = *b.TokenId
	}
	return m0
}

type TotalSupplyResponse struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Amount      int64                  `protobuf:"varint,1,opt,name=amount"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *TotalSupplyResponse) Reset() {
	*x = TotalSupplyResponse{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TotalSupplyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TotalSupplyResponse) ProtoMessage() {}

func (x *TotalSupplyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *TotalSupplyResponse) GetAmount() int64 {
	if x != nil {
		return x.xxx_hidden_Amount
	}
	return 0
}

func (x *TotalSupplyResponse) SetAmount(v int64) {
	x.xxx_hidden_Amount = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 1)
}

func (x *TotalSupplyResponse) HasAmount() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *TotalSupplyResponse) ClearAmount() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_Amount = 0
}

type TotalSupplyResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Amount *int64
}

func (b0 TotalSupplyResponse_builder) Build() *TotalSupplyResponse {
	m0 := &TotalSupplyResponse{}
	b, x := &b0, m0
	_, _ = b, x
	if b.Amount != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 1)
		x.xxx_hidden_Amount = *b.Amount
	}
	return m0
}

type MintedCountRequest struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Wallet      *string                `protobuf:"bytes,1,opt,name=wallet"`
	xxx_hidden_TokenId     int64                  `protobuf:"varint,2,opt,name=token_id,json=tokenId"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *MintedCountRequest) Reset() {
	*x = MintedCountRequest{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MintedCountRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MintedCountRequest) ProtoMessage() {}

func (x *MintedCountRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *MintedCountRequest) GetWallet() string {
	if x != nil {
		if x.xxx_hidden_Wallet != nil {
			return *x.xxx_hidden_Wallet
		}
		return ""
	}
	return ""
}

func (x *MintedCountRequest) GetTokenId() int64 {
	if x != nil {
		return x.xxx_hidden_TokenId
	}
	return 0
}

func (x *MintedCountRequest) SetWallet(v string) {
	x.xxx_hidden_Wallet = &v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 2)
}

func (x *MintedCountRequest) SetTokenId(v int64) {
	x.xxx_hidden_TokenId = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 1, 2)
}

func (x *MintedCountRequest) HasWallet() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *MintedCountRequest) HasTokenId() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 1)
}

func (x *MintedCountRequest) ClearWallet() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_Wallet = nil
}

func (x *MintedCountRequest) ClearTokenId() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 1)
	x.xxx_hidden_TokenId = 0
}

type MintedCountRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Wallet  *string
	TokenId *int64
}

func (b0 MintedCountRequest_builder) Build() *MintedCountRequest {
	m0 := &MintedCountRequest{}
	b, x := &b0, m0
	_, _ = b, x
	if b.Wallet != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 2)
		x.xxx_hidden_Wallet = b.Wallet
	}
	if b.TokenId != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 1, 2)
		x.xxx_hidden_TokenId = *b.TokenId
	}
	return m0
}

type MintedCountResponse struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Amount      int64                  `protobuf:"varint,1,opt,name=amount"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *MintedCountResponse) Reset() {
	*x = MintedCountResponse{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MintedCountResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MintedCountResponse) ProtoMessage() {}

func (x *MintedCountResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *MintedCountResponse) GetAmount() int64 {
	if x != nil {
		return x.xxx_hidden_Amount
	}
	return 0
}

func (x *MintedCountResponse) SetAmount(v int64) {
	x.xxx_hidden_Amount = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 1)
}

func (x *MintedCountResponse) HasAmount() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *MintedCountResponse) ClearAmount() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_Amount = 0
}

type MintedCountResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Amount *int64
}

func (b0 MintedCountResponse_builder) Build() *MintedCountResponse {
	m0 := &MintedCountResponse{}
	b, x := &b0, m0
	_, _ = b, x
	if b.Amount != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 1)
		x.xxx_hidden_Amount = *b.Amount
	}
	return m0
}

type HasClaimedRequest struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Wallet      *string                `protobuf:"bytes,1,opt,name=wallet"`
	xxx_hidden_TokenId     int64                  `protobuf:"varint,2,opt,name=token_id,json=tokenId"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *HasClaimedRequest) Reset() {
	*x = HasClaimedRequest{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HasClaimedRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HasClaimedRequest) ProtoMessage() {}

func (x *HasClaimedRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *HasClaimedRequest) GetWallet() string {
	if x != nil {
		if x.xxx_hidden_Wallet != nil {
			return *x.xxx_hidden_Wallet
		}
		return ""
	}
	return ""
}

func (x *HasClaimedRequest) GetTokenId() int64 {
	if x != nil {
		return x.xxx_hidden_TokenId
	}
	return 0
}

func (x *HasClaimedRequest) SetWallet(v string) {
	x.xxx_hidden_Wallet = &v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 2)
}

func (x *HasClaimedRequest) SetTokenId(v int64) {
	x.xxx_hidden_TokenId = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 1, 2)
}

func (x *HasClaimedRequest) HasWallet() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *HasClaimedRequest) HasTokenId() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 1)
}

func (x *HasClaimedRequest) ClearWallet() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_Wallet = nil
}

func (x *HasClaimedRequest) ClearTokenId() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 1)
	x.xxx_hidden_TokenId = 0
}

type HasClaimedRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Wallet  *string
	TokenId *int64
}

func (b0 HasClaimedRequest_builder) Build() *HasClaimedRequest {
	m0 := &HasClaimedRequest{}
	b, x := &b0, m0
	_, _ = b, x
	if b.Wallet != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 2)
		x.xxx_hidden_Wallet = b.Wallet
	}
	if b.TokenId != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 1, 2)
		x.xxx_hidden_TokenId = *b.TokenId
	}
	return m0
}

type HasClaimedResponse struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Claimed     bool                   `protobuf:"varint,1,opt,name=claimed"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *HasClaimedResponse) Reset() {
	*x = HasClaimedResponse{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HasClaimedResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HasClaimedResponse) ProtoMessage() {}

func (x *HasClaimedResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *HasClaimedResponse) GetClaimed() bool {
	if x != nil {
		return x.xxx_hidden_Claimed
	}
	return false
}

func (x *HasClaimedResponse) SetClaimed(v bool) {
	x.xxx_hidden_Claimed = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 1)
}

func (x *HasClaimedResponse) HasClaimed() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *HasClaimedResponse) ClearClaimed() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_Claimed = false
}

type HasClaimedResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Claimed *bool
}

func (b0 HasClaimedResponse_builder) Build() *HasClaimedResponse {
	m0 := &HasClaimedResponse{}
	b, x := &b0, m0
	_, _ = b, x
	if b.Claimed != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 1)
		x.xxx_hidden_Claimed = *b.Claimed
	}
	return m0
}

type SetMintableRequest struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_TokenId     int64                  `protobuf:"varint,1,opt,name=token_id,json=tokenId"`
	xxx_hidden_Value       bool                   `protobuf:"varint,2,opt,name=value"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *SetMintableRequest) Reset() {
	*x = SetMintableRequest{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetMintableRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetMintableRequest) ProtoMessage() {}

func (x *SetMintableRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *SetMintableRequest) GetTokenId() int64 {
	if x != nil {
		return x.xxx_hidden_TokenId
	}
	return 0
}

func (x *SetMintableRequest) GetValue() bool {
	if x != nil {
		return x.xxx_hidden_Value
	}
	return false
}

func (x *SetMintableRequest) SetTokenId(v int64) {
	x.xxx_hidden_TokenId = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 2)
}

func (x *SetMintableRequest) SetValue(v bool) {
	x.xxx_hidden_Value = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 1, 2)
}

func (x *SetMintableRequest) HasTokenId() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *SetMintableRequest) HasValue() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 1)
}

func (x *SetMintableRequest) ClearTokenId() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_TokenId = 0
}

func (x *SetMintableRequest) ClearValue() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 1)
	x.xxx_hidden_Value = false
}

type SetMintableRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	TokenId *int64
	Value   *bool
}

func (b0 SetMintableRequest_builder) Build() *SetMintableRequest {
	m0 := &SetMintableRequest{}
	b, x := &b0, m0
	_, _ = b, x
	if b.TokenId != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 2)
		x.xxx_hidden_TokenId = *b.TokenId
	}
	if b.Value != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 1, 2)
		x.xxx_hidden_Value = *b.Value
	}
	return m0
}

type SetMintableResponse struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetMintableResponse) Reset() {
	*x = SetMintableResponse{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetMintableResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetMintableResponse) ProtoMessage() {}

func (x *SetMintableResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type SetMintableResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

}

func (b0 SetMintableResponse_builder) Build() *SetMintableResponse {
	m0 := &SetMintableResponse{}
	b, x := &b0, m0
	_, _ = b, x
	return m0
}

type SetAllowlistRequest struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_TokenId     int64                  `protobuf:"varint,1,opt,name=token_id,json=tokenId"`
	xxx_hidden_Value       bool                   `protobuf:"varint,2,opt,name=value"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *SetAllowlistRequest) Reset() {
	*x = SetAllowlistRequest{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetAllowlistRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetAllowlistRequest) ProtoMessage() {}

func (x *SetAllowlistRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *SetAllowlistRequest) GetTokenId() int64 {
	if x != nil {
		return x.xxx_hidden_TokenId
	}
	return 0
}

func (x *SetAllowlistRequest) GetValue() bool {
	if x != nil {
		return x.xxx_hidden_Value
	}
	return false
}

func (x *SetAllowlistRequest) SetTokenId(v int64) {
	x.xxx_hidden_TokenId = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 2)
}

func (x *SetAllowlistRequest) SetValue(v bool) {
	x.xxx_hidden_Value = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 1, 2)
}

func (x *SetAllowlistRequest) HasTokenId() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *SetAllowlistRequest) HasValue() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 1)
}

func (x *SetAllowlistRequest) ClearTokenId() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_TokenId = 0
}

func (x *SetAllowlistRequest) ClearValue() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 1)
	x.xxx_hidden_Value = false
}

type SetAllowlistRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	TokenId *int64
	Value   *bool
}

func (b0 SetAllowlistRequest_builder) Build() *SetAllowlistRequest {
	m0 := &SetAllowlistRequest{}
	b, x := &b0, m0
	_, _ = b, x
	if b.TokenId != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 2)
		x.xxx_hidden_TokenId = *b.TokenId
	}
	if b.Value != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 1, 2)
		x.xxx_hidden_Value = *b.Value
	}
	return m0
}

type SetAllowlistResponse struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetAllowlistResponse) Reset() {
	*x = SetAllowlistResponse{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetAllowlistResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetAllowlistResponse) ProtoMessage() {}

func (x *SetAllowlistResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type SetAllowlistResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

}

func (b0 SetAllowlistResponse_builder) Build() *SetAllowlistResponse {
	m0 := &SetAllowlistResponse{}
	b, x := &b0, m0
	_, _ = b, x
	return m0
}

type SetAllowlistCostRequest struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_TokenId     int64                  `protobuf:"varint,1,opt,name=token_id,json=tokenId"`
	xxx_hidden_Cost        int64                  `protobuf:"varint,2,opt,name=cost"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *SetAllowlistCostRequest) Reset() {
	*x = SetAllowlistCostRequest{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetAllowlistCostRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetAllowlistCostRequest) ProtoMessage() {}

func (x *SetAllowlistCostRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *SetAllowlistCostRequest) GetTokenId() int64 {
	if x != nil {
		return x.xxx_hidden_TokenId
	}
	return 0
}

func (x *SetAllowlistCostRequest) GetCost() int64 {
	if x != nil {
		return x.xxx_hidden_Cost
	}
	return 0
}

func (x *SetAllowlistCostRequest) SetTokenId(v int64) {
	x.xxx_hidden_TokenId = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 2)
}

func (x *SetAllowlistCostRequest) SetCost(v int64) {
	x.xxx_hidden_Cost = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 1, 2)
}

func (x *SetAllowlistCostRequest) HasTokenId() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *SetAllowlistCostRequest) HasCost() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 1)
}

func (x *SetAllowlistCostRequest) ClearTokenId() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_TokenId = 0
}

func (x *SetAllowlistCostRequest) ClearCost() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 1)
	x.xxx_hidden_Cost = 0
}

type SetAllowlistCostRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	TokenId *int64
	Cost    *int64
}

func (b0 SetAllowlistCostRequest_builder) Build() *SetAllowlistCostRequest {
	m0 := &SetAllowlistCostRequest{}
	b, x := &b0, m0
	_, _ = b, x
	if b.TokenId != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 2)
		x.xxx_hidden_TokenId = *b.TokenId
	}
	if b.Cost != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 1, 2)
		x.xxx_hidden_Cost = *b.Cost
	}
	return m0
}

type SetAllowlistCostResponse struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetAllowlistCostResponse) Reset() {
	*x = SetAllowlistCostResponse{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetAllowlistCostResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetAllowlistCostResponse) ProtoMessage() {}

func (x *SetAllowlistCostResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type SetAllowlistCostResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

}

func (b0 SetAllowlistCostResponse_builder) Build() *SetAllowlistCostResponse {
	m0 := &SetAllowlistCostResponse{}
	b, x := &b0, m0
	_, _ = b, x
	return m0
}

type PauseRequest struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Value       bool                   `protobuf:"varint,1,opt,name=value"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *PauseRequest) Reset() {
	*x = PauseRequest{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PauseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PauseRequest) ProtoMessage() {}

func (x *PauseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *PauseRequest) GetValue() bool {
	if x != nil {
		return x.xxx_hidden_Value
	}
	return false
}

func (x *PauseRequest) SetValue(v bool) {
	x.xxx_hidden_Value = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 1)
}

func (x *PauseRequest) HasValue() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *PauseRequest) ClearValue() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_Value = false
}

type PauseRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Value *bool
}

func (b0 PauseRequest_builder) Build() *PauseRequest {
	m0 := &PauseRequest{}
	b, x := &b0, m0
	_, _ = b, x
	if b.Value != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 1)
		x.xxx_hidden_Value = *b.Value
	}
	return m0
}

type PauseResponse struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PauseResponse) Reset() {
	*x = PauseResponse{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PauseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PauseResponse) ProtoMessage() {}

func (x *PauseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type PauseResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

}

func (b0 PauseResponse_builder) Build() *PauseResponse {
	m0 := &PauseResponse{}
	b, x := &b0, m0
	_, _ = b, x
	return m0
}

type IsPausedRequest struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IsPausedRequest) Reset() {
	*x = IsPausedRequest{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IsPausedRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IsPausedRequest) ProtoMessage() {}

func (x *IsPausedRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type IsPausedRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

}

func (b0 IsPausedRequest_builder) Build() *IsPausedRequest {
	m0 := &IsPausedRequest{}
	b, x := &b0, m0
	_, _ = b, x
	return m0
}

type IsPausedResponse struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Paused      bool                   `protobuf:"varint,1,opt,name=paused"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *IsPausedResponse) Reset() {
	*x = IsPausedResponse{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IsPausedResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IsPausedResponse) ProtoMessage() {}

func (x *IsPausedResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *IsPausedResponse) GetPaused() bool {
	if x != nil {
		return x.xxx_hidden_Paused
	}
	return false
}

func (x *IsPausedResponse) SetPaused(v bool) {
	x.xxx_hidden_Paused = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 1)
}

func (x *IsPausedResponse) HasPaused() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *IsPausedResponse) ClearPaused() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_Paused = false
}

type IsPausedResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Paused *bool
}

func (b0 IsPausedResponse_builder) Build() *IsPausedResponse {
	m0 := &IsPausedResponse{}
	b, x := &b0, m0
	_, _ = b, x
	if b.Paused != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 1)
		x.xxx_hidden_Paused = *b.Paused
	}
	return m0
}

type WithdrawRequest struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WithdrawRequest) Reset() {
	*x = WithdrawRequest{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WithdrawRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WithdrawRequest) ProtoMessage() {}

func (x *WithdrawRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type WithdrawRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

}

func (b0 WithdrawRequest_builder) Build() *WithdrawRequest {
	m0 := &WithdrawRequest{}
	b, x := &b0, m0
	_, _ = b, x
	return m0
}

type WithdrawResponse struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Amount      int64                  `protobuf:"varint,1,opt,name=amount"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *WithdrawResponse) Reset() {
	*x = WithdrawResponse{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WithdrawResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WithdrawResponse) ProtoMessage() {}

func (x *WithdrawResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *WithdrawResponse) GetAmount() int64 {
	if x != nil {
		return x.xxx_hidden_Amount
	}
	return 0
}

func (x *WithdrawResponse) SetAmount(v int64) {
	x.xxx_hidden_Amount = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 1)
}

func (x *WithdrawResponse) HasAmount() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *WithdrawResponse) ClearAmount() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_Amount = 0
}

type WithdrawResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Amount *int64
}

func (b0 WithdrawResponse_builder) Build() *WithdrawResponse {
	m0 := &WithdrawResponse{}
	b, x := &b0, m0
	_, _ = b, x
	if b.Amount != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 1)
		x.xxx_hidden_Amount = *b.Amount
	}
	return m0
}

type AddAuthorRequest struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Account     *string                `protobuf:"bytes,1,opt,name=account"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *AddAuthorRequest) Reset() {
	*x = AddAuthorRequest{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddAuthorRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddAuthorRequest) ProtoMessage() {}

func (x *AddAuthorRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *AddAuthorRequest) GetAccount() string {
	if x != nil {
		if x.xxx_hidden_Account != nil {
			return *x.xxx_hidden_Account
		}
		return ""
	}
	return ""
}

func (x *AddAuthorRequest) SetAccount(v string) {
	x.xxx_hidden_Account = &v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 1)
}

func (x *AddAuthorRequest) HasAccount() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *AddAuthorRequest) ClearAccount() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_Account = nil
}

type AddAuthorRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Account *string
}

func (b0 AddAuthorRequest_builder) Build() *AddAuthorRequest {
	m0 := &AddAuthorRequest{}
	b, x := &b0, m0
	_, _ = b, x
	if b.Account != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 1)
		x.xxx_hidden_Account = b.Account
	}
	return m0
}

type AddAuthorResponse struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddAuthorResponse) Reset() {
	*x = AddAuthorResponse{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[42]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddAuthorResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddAuthorResponse) ProtoMessage() {}

func (x *AddAuthorResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[42]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type AddAuthorResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

}

func (b0 AddAuthorResponse_builder) Build() *AddAuthorResponse {
	m0 := &AddAuthorResponse{}
	b, x := &b0, m0
	_, _ = b, x
	return m0
}

type RemoveAuthorRequest struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Account     *string                `protobuf:"bytes,1,opt,name=account"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *RemoveAuthorRequest) Reset() {
	*x = RemoveAuthorRequest{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[43]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveAuthorRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveAuthorRequest) ProtoMessage() {}

func (x *RemoveAuthorRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[43]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *RemoveAuthorRequest) GetAccount() string {
	if x != nil {
		if x.xxx_hidden_Account != nil {
			return *x.xxx_hidden_Account
		}
		return ""
	}
	return ""
}

func (x *RemoveAuthorRequest) SetAccount(v string) {
	x.xxx_hidden_Account = &v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 1)
}

func (x *RemoveAuthorRequest) HasAccount() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *RemoveAuthorRequest) ClearAccount() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_Account = nil
}

type RemoveAuthorRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Account *string
}

func (b0 RemoveAuthorRequest_builder) Build() *RemoveAuthorRequest {
	m0 := &RemoveAuthorRequest{}
	b, x := &b0, m0
	_, _ = b, x
	if b.Account != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 1)
		x.xxx_hidden_Account = b.Account
	}
	return m0
}

type RemoveAuthorResponse struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveAuthorResponse) Reset() {
	*x = RemoveAuthorResponse{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[44]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveAuthorResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveAuthorResponse) ProtoMessage() {}

func (x *RemoveAuthorResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[44]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type RemoveAuthorResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

}

func (b0 RemoveAuthorResponse_builder) Build() *RemoveAuthorResponse {
	m0 := &RemoveAuthorResponse{}
	b, x := &b0, m0
	_, _ = b, x
	return m0
}

type AddAdminRequest struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Account     *string                `protobuf:"bytes,1,opt,name=account"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *AddAdminRequest) Reset() {
	*x = AddAdminRequest{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[45]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddAdminRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddAdminRequest) ProtoMessage() {}

func (x *AddAdminRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[45]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *AddAdminRequest) GetAccount() string {
	if x != nil {
		if x.xxx_hidden_Account != nil {
			return *x.xxx_hidden_Account
		}
		return ""
	}
	return ""
}

func (x *AddAdminRequest) SetAccount(v string) {
	x.xxx_hidden_Account = &v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 1)
}

func (x *AddAdminRequest) HasAccount() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *AddAdminRequest) ClearAccount() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_Account = nil
}

type AddAdminRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Account *string
}

func (b0 AddAdminRequest_builder) Build() *AddAdminRequest {
	m0 := &AddAdminRequest{}
	b, x := &b0, m0
	_, _ = b, x
	if b.Account != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 1)
		x.xxx_hidden_Account = b.Account
	}
	return m0
}

type AddAdminResponse struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddAdminResponse) Reset() {
	*x = AddAdminResponse{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[46]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddAdminResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddAdminResponse) ProtoMessage() {}

func (x *AddAdminResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[46]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type AddAdminResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

}

func (b0 AddAdminResponse_builder) Build() *AddAdminResponse {
	m0 := &AddAdminResponse{}
	b, x := &b0, m0
	_, _ = b, x
	return m0
}

type RenounceAdminRequest struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RenounceAdminRequest) Reset() {
	*x = RenounceAdminRequest{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[47]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RenounceAdminRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RenounceAdminRequest) ProtoMessage() {}

func (x *RenounceAdminRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[47]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type RenounceAdminRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

}

func (b0 RenounceAdminRequest_builder) Build() *RenounceAdminRequest {
	m0 := &RenounceAdminRequest{}
	b, x := &b0, m0
	_, _ = b, x
	return m0
}

type RenounceAdminResponse struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RenounceAdminResponse) Reset() {
	*x = RenounceAdminResponse{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[48]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RenounceAdminResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RenounceAdminResponse) ProtoMessage() {}

func (x *RenounceAdminResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[48]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type RenounceAdminResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

}

func (b0 RenounceAdminResponse_builder) Build() *RenounceAdminResponse {
	m0 := &RenounceAdminResponse{}
	b, x := &b0, m0
	_, _ = b, x
	return m0
}

type IsAdminRequest struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Account     *string                `protobuf:"bytes,1,opt,name=account"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *IsAdminRequest) Reset() {
	*x = IsAdminRequest{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[49]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IsAdminRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IsAdminRequest) ProtoMessage() {}

func (x *IsAdminRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[49]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *IsAdminRequest) GetAccount() string {
	if x != nil {
		if x.xxx_hidden_Account != nil {
			return *x.xxx_hidden_Account
		}
		return ""
	}
	return ""
}

func (x *IsAdminRequest) SetAccount(v string) {
	x.xxx_hidden_Account = &v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 1)
}

func (x *IsAdminRequest) HasAccount() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *IsAdminRequest) ClearAccount() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_Account = nil
}

type IsAdminRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Account *string
}

func (b0 IsAdminRequest_builder) Build() *IsAdminRequest {
	m0 := &IsAdminRequest{}
	b, x := &b0, m0
	_, _ = b, x
	if b.Account != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 1)
		x.xxx_hidden_Account = b.Account
	}
	return m0
}

type IsAdminResponse struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_IsAdmin     bool                   `protobuf:"varint,1,opt,name=is_admin,json=isAdmin"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *IsAdminResponse) Reset() {
	*x = IsAdminResponse{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[50]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IsAdminResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IsAdminResponse) ProtoMessage() {}

func (x *IsAdminResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[50]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *IsAdminResponse) GetIsAdmin() bool {
	if x != nil {
		return x.xxx_hidden_IsAdmin
	}
	return false
}

func (x *IsAdminResponse) SetIsAdmin(v bool) {
	x.xxx_hidden_IsAdmin = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 1)
}

func (x *IsAdminResponse) HasIsAdmin() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *IsAdminResponse) ClearIsAdmin() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_IsAdmin = false
}

type IsAdminResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	IsAdmin *bool
}

func (b0 IsAdminResponse_builder) Build() *IsAdminResponse {
	m0 := &IsAdminResponse{}
	b, x := &b0, m0
	_, _ = b, x
	if b.IsAdmin != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 1)
		x.xxx_hidden_IsAdmin = *b.IsAdmin
	}
	return m0
}

type IsAuthorRequest struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Account     *string                `protobuf:"bytes,1,opt,name=account"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *IsAuthorRequest) Reset() {
	*x = IsAuthorRequest{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[51]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IsAuthorRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IsAuthorRequest) ProtoMessage() {}

func (x *IsAuthorRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[51]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *IsAuthorRequest) GetAccount() string {
	if x != nil {
		if x.xxx_hidden_Account != nil {
			return *x.xxx_hidden_Account
		}
		return ""
	}
	return ""
}

func (x *IsAuthorRequest) SetAccount(v string) {
	x.xxx_hidden_Account = &v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 1)
}

func (x *IsAuthorRequest) HasAccount() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *IsAuthorRequest) ClearAccount() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_Account = nil
}

type IsAuthorRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Account *string
}

func (b0 IsAuthorRequest_builder) Build() *IsAuthorRequest {
	m0 := &IsAuthorRequest{}
	b, x := &b0, m0
	_, _ = b, x
	if b.Account != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 1)
		x.xxx_hidden_Account = b.Account
	}
	return m0
}

type IsAuthorResponse struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_IsAuthor    bool                   `protobuf:"varint,1,opt,name=is_author,json=isAuthor"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *IsAuthorResponse) Reset() {
	*x = IsAuthorResponse{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[52]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IsAuthorResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IsAuthorResponse) ProtoMessage() {}

func (x *IsAuthorResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[52]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *IsAuthorResponse) GetIsAuthor() bool {
	if x != nil {
		return x.xxx_hidden_IsAuthor
	}
	return false
}

func (x *IsAuthorResponse) SetIsAuthor(v bool) {
	x.xxx_hidden_IsAuthor = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 1)
}

func (x *IsAuthorResponse) HasIsAuthor() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *IsAuthorResponse) ClearIsAuthor() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_IsAuthor = false
}

type IsAuthorResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	IsAuthor *bool
}

func (b0 IsAuthorResponse_builder) Build() *IsAuthorResponse {
	m0 := &IsAuthorResponse{}
	b, x := &b0, m0
	_, _ = b, x
	if b.IsAuthor != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 1)
		x.xxx_hidden_IsAuthor = *b.IsAuthor
	}
	return m0
}

type RoleGrant struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Id          int64                  `protobuf:"varint,1,opt,name=id"`
	xxx_hidden_Account     *string                `protobuf:"bytes,2,opt,name=account"`
	xxx_hidden_CreatedAt   *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=created_at,json=createdAt"`
	XXX_raceDetectHookData protoimpl.RaceDetectHookData
	XXX_presence           [1]uint32
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *RoleGrant) Reset() {
	*x = RoleGrant{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[53]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RoleGrant) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RoleGrant) ProtoMessage() {}

func (x *RoleGrant) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[53]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *RoleGrant) GetId() int64 {
	if x != nil {
		return x.xxx_hidden_Id
	}
	return 0
}

func (x *RoleGrant) GetAccount() string {
	if x != nil {
		if x.xxx_hidden_Account != nil {
			return *x.xxx_hidden_Account
		}
		return ""
	}
	return ""
}

func (x *RoleGrant) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.xxx_hidden_CreatedAt
	}
	return nil
}

func (x *RoleGrant) SetId(v int64) {
	x.xxx_hidden_Id = v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 0, 3)
}

func (x *RoleGrant) SetAccount(v string) {
	x.xxx_hidden_Account = &v
	protoimpl.X.SetPresent(&(x.XXX_presence[0]), 1, 3)
}

func (x *RoleGrant) SetCreatedAt(v *timestamppb.Timestamp) {
	x.xxx_hidden_CreatedAt = v
}

func (x *RoleGrant) HasId() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 0)
}

func (x *RoleGrant) HasAccount() bool {
	if x == nil {
		return false
	}
	return protoimpl.X.Present(&(x.XXX_presence[0]), 1)
}

func (x *RoleGrant) HasCreatedAt() bool {
	if x == nil {
		return false
	}
	return x.xxx_hidden_CreatedAt != nil
}

func (x *RoleGrant) ClearId() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 0)
	x.xxx_hidden_Id = 0
}

func (x *RoleGrant) ClearAccount() {
	protoimpl.X.ClearPresent(&(x.XXX_presence[0]), 1)
	x.xxx_hidden_Account = nil
}

func (x *RoleGrant) ClearCreatedAt() {
	x.xxx_hidden_CreatedAt = nil
}

type RoleGrant_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Id        *int64
	Account   *string
	CreatedAt *timestamppb.Timestamp
}

func (b0 RoleGrant_builder) Build() *RoleGrant {
	m0 := &RoleGrant{}
	b, x := &b0, m0
	_, _ = b, x
	if b.Id != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 0, 3)
		x.xxx_hidden_Id = *b.Id
	}
	if b.Account != nil {
		protoimpl.X.SetPresentNonAtomic(&(x.XXX_presence[0]), 1, 3)
		x.xxx_hidden_Account = b.Account
	}
	x.xxx_hidden_CreatedAt = b.CreatedAt
	return m0
}

type GetRoleGrantsRequest struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRoleGrantsRequest) Reset() {
	*x = GetRoleGrantsRequest{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[54]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRoleGrantsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRoleGrantsRequest) ProtoMessage() {}

func (x *GetRoleGrantsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[54]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type GetRoleGrantsRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

}

func (b0 GetRoleGrantsRequest_builder) Build() *GetRoleGrantsRequest {
	m0 := &GetRoleGrantsRequest{}
	b, x := &b0, m0
	_, _ = b, x
	return m0
}

type GetRoleGrantsResponse struct {
	state             protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Grants *[]*RoleGrant          `protobuf:"bytes,1,rep,name=grants"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *GetRoleGrantsResponse) Reset() {
	*x = GetRoleGrantsResponse{}
	mi := &file_sovereignty_v1_registry_proto_msgTypes[55]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRoleGrantsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRoleGrantsResponse) ProtoMessage() {}

func (x *GetRoleGrantsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sovereignty_v1_registry_proto_msgTypes[55]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *GetRoleGrantsResponse) GetGrants() []*RoleGrant {
	if x != nil {
		if x.xxx_hidden_Grants != nil {
			return *x.xxx_hidden_Grants
		}
	}
	return nil
}

func (x *GetRoleGrantsResponse) SetGrants(v []*RoleGrant) {
	x.xxx_hidden_Grants = &v
}

type GetRoleGrantsResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Grants []*RoleGrant
}

func (b0 GetRoleGrantsResponse_builder) Build() *GetRoleGrantsResponse {
	m0 := &GetRoleGrantsResponse{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Grants = &b.Grants
	return m0
}

var File_sovereignty_v1_registry_proto protoreflect.FileDescriptor

var file_sovereignty_v1_registry_proto_rawDesc = string([]byte{
	0x0a, 0x1d, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2f, 0x76, 0x31,
	0x2f, 0x72, 0x65, 0x67, 0x69, 0x73, 0x74, 0x72, 0x79, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12,
	0x0e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x1a,
	0x1f, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66,
	0x2f, 0x74, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x1a, 0x21, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75,
	0x66, 0x2f, 0x67, 0x6f, 0x5f, 0x66, 0x65, 0x61, 0x74, 0x75, 0x72, 0x65, 0x73, 0x2e, 0x70, 0x72,
	0x6f, 0x74, 0x6f, 0x22, 0x12, 0x0a, 0x10, 0x43, 0x68, 0x61, 0x6c, 0x6c, 0x65, 0x6e, 0x67, 0x65,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x22, 0x87, 0x01, 0x0a, 0x11, 0x43, 0x68, 0x61, 0x6c,
	0x6c, 0x65, 0x6e, 0x67, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x21, 0x0a,
	0x0c, 0x63, 0x68, 0x61, 0x6c, 0x6c, 0x65, 0x6e, 0x67, 0x65, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x0b, 0x63, 0x68, 0x61, 0x6c, 0x6c, 0x65, 0x6e, 0x67, 0x65, 0x49, 0x64,
	0x12, 0x14, 0x0a, 0x05, 0x6e, 0x6f, 0x6e, 0x63, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0c, 0x52,
	0x05, 0x6e, 0x6f, 0x6e, 0x63, 0x65, 0x12, 0x39, 0x0a, 0x0a, 0x65, 0x78, 0x70, 0x69, 0x72, 0x65,
	0x73, 0x5f, 0x61, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f,
	0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d,
	0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x09, 0x65, 0x78, 0x70, 0x69, 0x72, 0x65, 0x73, 0x41,
	0x74, 0x22, 0x67, 0x0a, 0x0c, 0x4c, 0x6f, 0x67, 0x69, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x12, 0x16, 0x0a, 0x06, 0x77, 0x61, 0x6c, 0x6c, 0x65, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x06, 0x77, 0x61, 0x6c, 0x6c, 0x65, 0x74, 0x12, 0x21, 0x0a, 0x0c, 0x63, 0x68, 0x61,
	0x6c, 0x6c, 0x65, 0x6e, 0x67, 0x65, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x0b, 0x63, 0x68, 0x61, 0x6c, 0x6c, 0x65, 0x6e, 0x67, 0x65, 0x49, 0x64, 0x12, 0x1c, 0x0a, 0x09,
	0x73, 0x69, 0x67, 0x6e, 0x61, 0x74, 0x75, 0x72, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0c, 0x52,
	0x09, 0x73, 0x69, 0x67, 0x6e, 0x61, 0x74, 0x75, 0x72, 0x65, 0x22, 0x6d, 0x0a, 0x0d, 0x4c, 0x6f,
	0x67, 0x69, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x21, 0x0a, 0x0c, 0x61,
	0x63, 0x63, 0x65, 0x73, 0x73, 0x5f, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x0b, 0x61, 0x63, 0x63, 0x65, 0x73, 0x73, 0x54, 0x6f, 0x6b, 0x65, 0x6e, 0x12, 0x39,
	0x0a, 0x0a, 0x65, 0x78, 0x70, 0x69, 0x72, 0x65, 0x73, 0x5f, 0x61, 0x74, 0x18, 0x02, 0x20, 0x01,
	0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74,
	0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x09,
	0x65, 0x78, 0x70, 0x69, 0x72, 0x65, 0x73, 0x41, 0x74, 0x22, 0xbc, 0x01, 0x0a, 0x07, 0x41, 0x72,
	0x74, 0x69, 0x63, 0x6c, 0x65, 0x12, 0x0e, 0x0a, 0x02, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x03, 0x52, 0x02, 0x69, 0x64, 0x12, 0x1c, 0x0a, 0x09, 0x70, 0x75, 0x62, 0x6c, 0x69, 0x73, 0x68,
	0x65, 0x72, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x70, 0x75, 0x62, 0x6c, 0x69, 0x73,
	0x68, 0x65, 0x72, 0x12, 0x1a, 0x0a, 0x08, 0x63, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x79, 0x18,
	0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x63, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x79, 0x12,
	0x14, 0x0a, 0x05, 0x74, 0x69, 0x74, 0x6c, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05,
	0x74, 0x69, 0x74, 0x6c, 0x65, 0x12, 0x16, 0x0a, 0x06, 0x61, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x18,
	0x05, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x61, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x12, 0x39, 0x0a,
	0x0a, 0x63, 0x72, 0x65, 0x61, 0x74, 0x65, 0x64, 0x5f, 0x61, 0x74, 0x18, 0x06, 0x20, 0x01, 0x28,
	0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x09, 0x63,
	0x72, 0x65, 0x61, 0x74, 0x65, 0x64, 0x41, 0x74, 0x22, 0x87, 0x03, 0x0a, 0x14, 0x43, 0x72, 0x65,
	0x61, 0x74, 0x65, 0x41, 0x72, 0x74, 0x69, 0x63, 0x6c, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x12, 0x1a, 0x0a, 0x08, 0x63, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x79, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x08, 0x63, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x79, 0x12, 0x14, 0x0a,
	0x05, 0x74, 0x69, 0x74, 0x6c, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x74, 0x69,
	0x74, 0x6c, 0x65, 0x12, 0x1f, 0x0a, 0x0b, 0x61, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x5f, 0x6e, 0x61,
	0x6d, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0a, 0x61, 0x75, 0x74, 0x68, 0x6f, 0x72,
	0x4e, 0x61, 0x6d, 0x65, 0x12, 0x1f, 0x0a, 0x0b, 0x70, 0x75, 0x62, 0x6c, 0x69, 0x63, 0x5f, 0x63,
	0x6f, 0x73, 0x74, 0x18, 0x04, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0a, 0x70, 0x75, 0x62, 0x6c, 0x69,
	0x63, 0x43, 0x6f, 0x73, 0x74, 0x12, 0x25, 0x0a, 0x0e, 0x61, 0x6c, 0x6c, 0x6f, 0x77, 0x6c, 0x69,
	0x73, 0x74, 0x5f, 0x63, 0x6f, 0x73, 0x74, 0x18, 0x05, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0d, 0x61,
	0x6c, 0x6c, 0x6f, 0x77, 0x6c, 0x69, 0x73, 0x74, 0x43, 0x6f, 0x73, 0x74, 0x12, 0x1d, 0x0a, 0x0a,
	0x6d, 0x61, 0x78, 0x5f, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x06, 0x20, 0x01, 0x28, 0x03,
	0x52, 0x09, 0x6d, 0x61, 0x78, 0x41, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x20, 0x0a, 0x0c, 0x6d,
	0x61, 0x78, 0x5f, 0x70, 0x65, 0x72, 0x5f, 0x75, 0x73, 0x65, 0x72, 0x18, 0x07, 0x20, 0x01, 0x28,
	0x03, 0x52, 0x0a, 0x6d, 0x61, 0x78, 0x50, 0x65, 0x72, 0x55, 0x73, 0x65, 0x72, 0x12, 0x21, 0x0a,
	0x0c, 0x6d, 0x65, 0x74, 0x61, 0x64, 0x61, 0x74, 0x61, 0x5f, 0x75, 0x72, 0x6c, 0x18, 0x08, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x0b, 0x6d, 0x65, 0x74, 0x61, 0x64, 0x61, 0x74, 0x61, 0x55, 0x72, 0x6c,
	0x12, 0x1c, 0x0a, 0x09, 0x76, 0x61, 0x6c, 0x69, 0x64, 0x61, 0x74, 0x6f, 0x72, 0x18, 0x09, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x09, 0x76, 0x61, 0x6c, 0x69, 0x64, 0x61, 0x74, 0x6f, 0x72, 0x12, 0x25,
	0x0a, 0x0e, 0x72, 0x65, 0x73, 0x65, 0x72, 0x76, 0x65, 0x5f, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74,
	0x18, 0x0a, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0d, 0x72, 0x65, 0x73, 0x65, 0x72, 0x76, 0x65, 0x41,
	0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x2b, 0x0a, 0x11, 0x72, 0x65, 0x73, 0x65, 0x72, 0x76, 0x65,
	0x5f, 0x72, 0x65, 0x63, 0x69, 0x70, 0x69, 0x65, 0x6e, 0x74, 0x18, 0x0b, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x10, 0x72, 0x65, 0x73, 0x65, 0x72, 0x76, 0x65, 0x52, 0x65, 0x63, 0x69, 0x70, 0x69, 0x65,
	0x6e, 0x74, 0x22, 0x4a, 0x0a, 0x15, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x41, 0x72, 0x74, 0x69,
	0x63, 0x6c, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x31, 0x0a, 0x07, 0x61,
	0x72, 0x74, 0x69, 0x63, 0x6c, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x17, 0x2e, 0x73,
	0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x72,
	0x74, 0x69, 0x63, 0x6c, 0x65, 0x52, 0x07, 0x61, 0x72, 0x74, 0x69, 0x63, 0x6c, 0x65, 0x22, 0x17,
	0x0a, 0x15, 0x47, 0x65, 0x74, 0x41, 0x6c, 0x6c, 0x41, 0x72, 0x74, 0x69, 0x63, 0x6c, 0x65, 0x73,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x22, 0x4d, 0x0a, 0x16, 0x47, 0x65, 0x74, 0x41, 0x6c,
	0x6c, 0x41, 0x72, 0x74, 0x69, 0x63, 0x6c, 0x65, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x33, 0x0a, 0x08, 0x61, 0x72, 0x74, 0x69, 0x63, 0x6c, 0x65, 0x73, 0x18, 0x01, 0x20,
	0x03, 0x28, 0x0b, 0x32, 0x17, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74,
	0x79, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x72, 0x74, 0x69, 0x63, 0x6c, 0x65, 0x52, 0x08, 0x61, 0x72,
	0x74, 0x69, 0x63, 0x6c, 0x65, 0x73, 0x22, 0x27, 0x0a, 0x15, 0x47, 0x65, 0x74, 0x41, 0x72, 0x74,
	0x69, 0x63, 0x6c, 0x65, 0x42, 0x79, 0x49, 0x64, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12,
	0x0e, 0x0a, 0x02, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x02, 0x69, 0x64, 0x22,
	0x4b, 0x0a, 0x16, 0x47, 0x65, 0x74, 0x41, 0x72, 0x74, 0x69, 0x63, 0x6c, 0x65, 0x42, 0x79, 0x49,
	0x64, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x31, 0x0a, 0x07, 0x61, 0x72, 0x74,
	0x69, 0x63, 0x6c, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x17, 0x2e, 0x73, 0x6f, 0x76,
	0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x72, 0x74, 0x69,
	0x63, 0x6c, 0x65, 0x52, 0x07, 0x61, 0x72, 0x74, 0x69, 0x63, 0x6c, 0x65, 0x22, 0x45, 0x0a, 0x16,
	0x45, 0x64, 0x69, 0x74, 0x4d, 0x65, 0x74, 0x61, 0x64, 0x61, 0x74, 0x61, 0x55, 0x72, 0x6c, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x19, 0x0a, 0x08, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x5f,
	0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x07, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x49,
	0x64, 0x12, 0x10, 0x0a, 0x03, 0x75, 0x72, 0x6c, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x03,
	0x75, 0x72, 0x6c, 0x22, 0x19, 0x0a, 0x17, 0x45, 0x64, 0x69, 0x74, 0x4d, 0x65, 0x74, 0x61, 0x64,
	0x61, 0x74, 0x61, 0x55, 0x72, 0x6c, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x27,
	0x0a, 0x0a, 0x55, 0x72, 0x69, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x19, 0x0a, 0x08,
	0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x07,
	0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x49, 0x64, 0x22, 0x1f, 0x0a, 0x0b, 0x55, 0x72, 0x69, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x10, 0x0a, 0x03, 0x75, 0x72, 0x6c, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x03, 0x75, 0x72, 0x6c, 0x22, 0x5a, 0x0a, 0x0b, 0x4d, 0x69, 0x6e, 0x74,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x19, 0x0a, 0x08, 0x74, 0x6f, 0x6b, 0x65, 0x6e,
	0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x07, 0x74, 0x6f, 0x6b, 0x65, 0x6e,
	0x49, 0x64, 0x12, 0x16, 0x0a, 0x06, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x02, 0x20, 0x01,
	0x28, 0x03, 0x52, 0x06, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x18, 0x0a, 0x07, 0x70, 0x61,
	0x79, 0x6d, 0x65, 0x6e, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x03, 0x52, 0x07, 0x70, 0x61, 0x79,
	0x6d, 0x65, 0x6e, 0x74, 0x22, 0x0e, 0x0a, 0x0c, 0x4d, 0x69, 0x6e, 0x74, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x22, 0xaf, 0x01, 0x0a, 0x14, 0x41, 0x6c, 0x6c, 0x6f, 0x77, 0x6c, 0x69,
	0x73, 0x74, 0x4d, 0x69, 0x6e, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x19, 0x0a,
	0x08, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52,
	0x07, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x49, 0x64, 0x12, 0x16, 0x0a, 0x06, 0x61, 0x6d, 0x6f, 0x75,
	0x6e, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x06, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74,
	0x12, 0x18, 0x0a, 0x07, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28,
	0x03, 0x52, 0x07, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x12, 0x14, 0x0a, 0x05, 0x6e, 0x6f,
	0x6e, 0x63, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x03, 0x52, 0x05, 0x6e, 0x6f, 0x6e, 0x63, 0x65,
	0x12, 0x16, 0x0a, 0x06, 0x77, 0x61, 0x6c, 0x6c, 0x65, 0x74, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x06, 0x77, 0x61, 0x6c, 0x6c, 0x65, 0x74, 0x12, 0x1c, 0x0a, 0x09, 0x73, 0x69, 0x67, 0x6e,
	0x61, 0x74, 0x75, 0x72, 0x65, 0x18, 0x06, 0x20, 0x01, 0x28, 0x0c, 0x52, 0x09, 0x73, 0x69, 0x67,
	0x6e, 0x61, 0x74, 0x75, 0x72, 0x65, 0x22, 0x17, 0x0a, 0x15, 0x41, 0x6c, 0x6c, 0x6f, 0x77, 0x6c,
	0x69, 0x73, 0x74, 0x4d, 0x69, 0x6e, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22,
	0x4c, 0x0a, 0x0f, 0x42, 0x75, 0x6c, 0x6b, 0x44, 0x72, 0x6f, 0x70, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x12, 0x19, 0x0a, 0x08, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x03, 0x52, 0x07, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x49, 0x64, 0x12, 0x1e, 0x0a,
	0x0a, 0x72, 0x65, 0x63, 0x69, 0x70, 0x69, 0x65, 0x6e, 0x74, 0x73, 0x18, 0x02, 0x20, 0x03, 0x28,
	0x09, 0x52, 0x0a, 0x72, 0x65, 0x63, 0x69, 0x70, 0x69, 0x65, 0x6e, 0x74, 0x73, 0x22, 0x12, 0x0a,
	0x10, 0x42, 0x75, 0x6c, 0x6b, 0x44, 0x72, 0x6f, 0x70, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x22, 0x43, 0x0a, 0x10, 0x42, 0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65, 0x4f, 0x66, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x14, 0x0a, 0x05, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x12, 0x19, 0x0a, 0x08, 0x74,
	0x6f, 0x6b, 0x65, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x07, 0x74,
	0x6f, 0x6b, 0x65, 0x6e, 0x49, 0x64, 0x22, 0x2b, 0x0a, 0x11, 0x42, 0x61, 0x6c, 0x61, 0x6e, 0x63,
	0x65, 0x4f, 0x66, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x16, 0x0a, 0x06, 0x61,
	0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x06, 0x61, 0x6d, 0x6f,
	0x75, 0x6e, 0x74, 0x22, 0x2f, 0x0a, 0x12, 0x54, 0x6f, 0x74, 0x61, 0x6c, 0x53, 0x75, 0x70, 0x70,
	0x6c, 0x79, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x19, 0x0a, 0x08, 0x74, 0x6f, 0x6b,
	0x65, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x07, 0x74, 0x6f, 0x6b,
	0x65, 0x6e, 0x49, 0x64, 0x22, 0x2d, 0x0a, 0x13, 0x54, 0x6f, 0x74, 0x61, 0x6c, 0x53, 0x75, 0x70,
	0x70, 0x6c, 0x79, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x16, 0x0a, 0x06, 0x61,
	0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x06, 0x61, 0x6d, 0x6f,
	0x75, 0x6e, 0x74, 0x22, 0x47, 0x0a, 0x12, 0x4d, 0x69, 0x6e, 0x74, 0x65, 0x64, 0x43, 0x6f, 0x75,
	0x6e, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x16, 0x0a, 0x06, 0x77, 0x61, 0x6c,
	0x6c, 0x65, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x77, 0x61, 0x6c, 0x6c, 0x65,
	0x74, 0x12, 0x19, 0x0a, 0x08, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x03, 0x52, 0x07, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x49, 0x64, 0x22, 0x2d, 0x0a, 0x13,
	0x4d, 0x69, 0x6e, 0x74, 0x65, 0x64, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x12, 0x16, 0x0a, 0x06, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x03, 0x52, 0x06, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x22, 0x46, 0x0a, 0x11, 0x48,
	0x61, 0x73, 0x43, 0x6c, 0x61, 0x69, 0x6d, 0x65, 0x64, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x12, 0x16, 0x0a, 0x06, 0x77, 0x61, 0x6c, 0x6c, 0x65, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x06, 0x77, 0x61, 0x6c, 0x6c, 0x65, 0x74, 0x12, 0x19, 0x0a, 0x08, 0x74, 0x6f, 0x6b, 0x65,
	0x6e, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x07, 0x74, 0x6f, 0x6b, 0x65,
	0x6e, 0x49, 0x64, 0x22, 0x2e, 0x0a, 0x12, 0x48, 0x61, 0x73, 0x43, 0x6c, 0x61, 0x69, 0x6d, 0x65,
	0x64, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x63, 0x6c, 0x61,
	0x69, 0x6d, 0x65, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x07, 0x63, 0x6c, 0x61, 0x69,
	0x6d, 0x65, 0x64, 0x22, 0x45, 0x0a, 0x12, 0x53, 0x65, 0x74, 0x4d, 0x69, 0x6e, 0x74, 0x61, 0x62,
	0x6c, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x19, 0x0a, 0x08, 0x74, 0x6f, 0x6b,
	0x65, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x07, 0x74, 0x6f, 0x6b,
	0x65, 0x6e, 0x49, 0x64, 0x12, 0x14, 0x0a, 0x05, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x08, 0x52, 0x05, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x22, 0x15, 0x0a, 0x13, 0x53, 0x65,
	0x74, 0x4d, 0x69, 0x6e, 0x74, 0x61, 0x62, 0x6c, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x22, 0x46, 0x0a, 0x13, 0x53, 0x65, 0x74, 0x41, 0x6c, 0x6c, 0x6f, 0x77, 0x6c, 0x69, 0x73,
	0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x19, 0x0a, 0x08, 0x74, 0x6f, 0x6b, 0x65,
	0x6e, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x07, 0x74, 0x6f, 0x6b, 0x65,
	0x6e, 0x49, 0x64, 0x12, 0x14, 0x0a, 0x05, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x18, 0x02, 0x20, 0x01,
	0x28, 0x08, 0x52, 0x05, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x22, 0x16, 0x0a, 0x14, 0x53, 0x65, 0x74,
	0x41, 0x6c, 0x6c, 0x6f, 0x77, 0x6c, 0x69, 0x73, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x22, 0x48, 0x0a, 0x17, 0x53, 0x65, 0x74, 0x41, 0x6c, 0x6c, 0x6f, 0x77, 0x6c, 0x69, 0x73,
	0x74, 0x43, 0x6f, 0x73, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x19, 0x0a, 0x08,
	0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x07,
	0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x49, 0x64, 0x12, 0x12, 0x0a, 0x04, 0x63, 0x6f, 0x73, 0x74, 0x18,
	0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x04, 0x63, 0x6f, 0x73, 0x74, 0x22, 0x1a, 0x0a, 0x18, 0x53,
	0x65, 0x74, 0x41, 0x6c, 0x6c, 0x6f, 0x77, 0x6c, 0x69, 0x73, 0x74, 0x43, 0x6f, 0x73, 0x74, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x24, 0x0a, 0x0c, 0x50, 0x61, 0x75, 0x73, 0x65,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x14, 0x0a, 0x05, 0x76, 0x61, 0x6c, 0x75, 0x65,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x05, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x22, 0x0f, 0x0a,
	0x0d, 0x50, 0x61, 0x75, 0x73, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x11,
	0x0a, 0x0f, 0x49, 0x73, 0x50, 0x61, 0x75, 0x73, 0x65, 0x64, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x22, 0x2a, 0x0a, 0x10, 0x49, 0x73, 0x50, 0x61, 0x75, 0x73, 0x65, 0x64, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x16, 0x0a, 0x06, 0x70, 0x61, 0x75, 0x73, 0x65, 0x64, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x06, 0x70, 0x61, 0x75, 0x73, 0x65, 0x64, 0x22, 0x11, 0x0a,
	0x0f, 0x57, 0x69, 0x74, 0x68, 0x64, 0x72, 0x61, 0x77, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x22, 0x2a, 0x0a, 0x10, 0x57, 0x69, 0x74, 0x68, 0x64, 0x72, 0x61, 0x77, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x12, 0x16, 0x0a, 0x06, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x03, 0x52, 0x06, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x22, 0x2c, 0x0a, 0x10,
	0x41, 0x64, 0x64, 0x41, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x12, 0x18, 0x0a, 0x07, 0x61, 0x63, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x07, 0x61, 0x63, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x22, 0x13, 0x0a, 0x11, 0x41, 0x64,
	0x64, 0x41, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22,
	0x2f, 0x0a, 0x13, 0x52, 0x65, 0x6d, 0x6f, 0x76, 0x65, 0x41, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x18, 0x0a, 0x07, 0x61, 0x63, 0x63, 0x6f, 0x75, 0x6e,
	0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x61, 0x63, 0x63, 0x6f, 0x75, 0x6e, 0x74,
	0x22, 0x16, 0x0a, 0x14, 0x52, 0x65, 0x6d, 0x6f, 0x76, 0x65, 0x41, 0x75, 0x74, 0x68, 0x6f, 0x72,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x2b, 0x0a, 0x0f, 0x41, 0x64, 0x64, 0x41,
	0x64, 0x6d, 0x69, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x18, 0x0a, 0x07, 0x61,
	0x63, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x61, 0x63,
	0x63, 0x6f, 0x75, 0x6e, 0x74, 0x22, 0x12, 0x0a, 0x10, 0x41, 0x64, 0x64, 0x41, 0x64, 0x6d, 0x69,
	0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x16, 0x0a, 0x14, 0x52, 0x65, 0x6e,
	0x6f, 0x75, 0x6e, 0x63, 0x65, 0x41, 0x64, 0x6d, 0x69, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x22, 0x17, 0x0a, 0x15, 0x52, 0x65, 0x6e, 0x6f, 0x75, 0x6e, 0x63, 0x65, 0x41, 0x64, 0x6d,
	0x69, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x2a, 0x0a, 0x0e, 0x49, 0x73,
	0x41, 0x64, 0x6d, 0x69, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x18, 0x0a, 0x07,
	0x61, 0x63, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x61,
	0x63, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x22, 0x2c, 0x0a, 0x0f, 0x49, 0x73, 0x41, 0x64, 0x6d, 0x69,
	0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x19, 0x0a, 0x08, 0x69, 0x73, 0x5f,
	0x61, 0x64, 0x6d, 0x69, 0x6e, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x07, 0x69, 0x73, 0x41,
	0x64, 0x6d, 0x69, 0x6e, 0x22, 0x2b, 0x0a, 0x0f, 0x49, 0x73, 0x41, 0x75, 0x74, 0x68, 0x6f, 0x72,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x18, 0x0a, 0x07, 0x61, 0x63, 0x63, 0x6f, 0x75,
	0x6e, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x61, 0x63, 0x63, 0x6f, 0x75, 0x6e,
	0x74, 0x22, 0x2f, 0x0a, 0x10, 0x49, 0x73, 0x41, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1b, 0x0a, 0x09, 0x69, 0x73, 0x5f, 0x61, 0x75, 0x74, 0x68,
	0x6f, 0x72, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x08, 0x69, 0x73, 0x41, 0x75, 0x74, 0x68,
	0x6f, 0x72, 0x22, 0x70, 0x0a, 0x09, 0x52, 0x6f, 0x6c, 0x65, 0x47, 0x72, 0x61, 0x6e, 0x74, 0x12,
	0x0e, 0x0a, 0x02, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x02, 0x69, 0x64, 0x12,
	0x18, 0x0a, 0x07, 0x61, 0x63, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x07, 0x61, 0x63, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x39, 0x0a, 0x0a, 0x63, 0x72, 0x65,
	0x61, 0x74, 0x65, 0x64, 0x5f, 0x61, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e,
	0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e,
	0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x09, 0x63, 0x72, 0x65, 0x61, 0x74,
	0x65, 0x64, 0x41, 0x74, 0x22, 0x16, 0x0a, 0x14, 0x47, 0x65, 0x74, 0x52, 0x6f, 0x6c, 0x65, 0x47,
	0x72, 0x61, 0x6e, 0x74, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x22, 0x4a, 0x0a, 0x15,
	0x47, 0x65, 0x74, 0x52, 0x6f, 0x6c, 0x65, 0x47, 0x72, 0x61, 0x6e, 0x74, 0x73, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x31, 0x0a, 0x06, 0x67, 0x72, 0x61, 0x6e, 0x74, 0x73, 0x18,
	0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x19, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67,
	0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x6f, 0x6c, 0x65, 0x47, 0x72, 0x61, 0x6e, 0x74,
	0x52, 0x06, 0x67, 0x72, 0x61, 0x6e, 0x74, 0x73, 0x32, 0x89, 0x12, 0x0a, 0x13, 0x53, 0x6f, 0x76,
	0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x52, 0x65, 0x67, 0x69, 0x73, 0x74, 0x72, 0x79,
	0x12, 0x50, 0x0a, 0x09, 0x43, 0x68, 0x61, 0x6c, 0x6c, 0x65, 0x6e, 0x67, 0x65, 0x12, 0x20, 0x2e,
	0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x43,
	0x68, 0x61, 0x6c, 0x6c, 0x65, 0x6e, 0x67, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a,
	0x21, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31,
	0x2e, 0x43, 0x68, 0x61, 0x6c, 0x6c, 0x65, 0x6e, 0x67, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x12, 0x44, 0x0a, 0x05, 0x4c, 0x6f, 0x67, 0x69, 0x6e, 0x12, 0x1c, 0x2e, 0x73, 0x6f,
	0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x6f, 0x67,
	0x69, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1d, 0x2e, 0x73, 0x6f, 0x76, 0x65,
	0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x6f, 0x67, 0x69, 0x6e,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x5c, 0x0a, 0x0d, 0x43, 0x72, 0x65, 0x61,
	0x74, 0x65, 0x41, 0x72, 0x74, 0x69, 0x63, 0x6c, 0x65, 0x12, 0x24, 0x2e, 0x73, 0x6f, 0x76, 0x65,
	0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x72, 0x65, 0x61, 0x74,
	0x65, 0x41, 0x72, 0x74, 0x69, 0x63, 0x6c, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a,
	0x25, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31,
	0x2e, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x41, 0x72, 0x74, 0x69, 0x63, 0x6c, 0x65, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x5f, 0x0a, 0x0e, 0x47, 0x65, 0x74, 0x41, 0x6c, 0x6c,
	0x41, 0x72, 0x74, 0x69, 0x63, 0x6c, 0x65, 0x73, 0x12, 0x25, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72,
	0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x41, 0x6c, 0x6c,
	0x41, 0x72, 0x74, 0x69, 0x63, 0x6c, 0x65, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a,
	0x26, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31,
	0x2e, 0x47, 0x65, 0x74, 0x41, 0x6c, 0x6c, 0x41, 0x72, 0x74, 0x69, 0x63, 0x6c, 0x65, 0x73, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x5f, 0x0a, 0x0e, 0x47, 0x65, 0x74, 0x41, 0x72,
	0x74, 0x69, 0x63, 0x6c, 0x65, 0x42, 0x79, 0x49, 0x64, 0x12, 0x25, 0x2e, 0x73, 0x6f, 0x76, 0x65,
	0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x41, 0x72,
	0x74, 0x69, 0x63, 0x6c, 0x65, 0x42, 0x79, 0x49, 0x64, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x1a, 0x26, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76,
	0x31, 0x2e, 0x47, 0x65, 0x74, 0x41, 0x72, 0x74, 0x69, 0x63, 0x6c, 0x65, 0x42, 0x79, 0x49, 0x64,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x62, 0x0a, 0x0f, 0x45, 0x64, 0x69, 0x74,
	0x4d, 0x65, 0x74, 0x61, 0x64, 0x61, 0x74, 0x61, 0x55, 0x72, 0x6c, 0x12, 0x26, 0x2e, 0x73, 0x6f,
	0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x45, 0x64, 0x69,
	0x74, 0x4d, 0x65, 0x74, 0x61, 0x64, 0x61, 0x74, 0x61, 0x55, 0x72, 0x6c, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x1a, 0x27, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74,
	0x79, 0x2e, 0x76, 0x31, 0x2e, 0x45, 0x64, 0x69, 0x74, 0x4d, 0x65, 0x74, 0x61, 0x64, 0x61, 0x74,
	0x61, 0x55, 0x72, 0x6c, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x3e, 0x0a, 0x03,
	0x55, 0x72, 0x69, 0x12, 0x1a, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74,
	0x79, 0x2e, 0x76, 0x31, 0x2e, 0x55, 0x72, 0x69, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a,
	0x1b, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31,
	0x2e, 0x55, 0x72, 0x69, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x41, 0x0a, 0x04,
	0x4d, 0x69, 0x6e, 0x74, 0x12, 0x1b, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e,
	0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x4d, 0x69, 0x6e, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x1a, 0x1c, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e,
	0x76, 0x31, 0x2e, 0x4d, 0x69, 0x6e, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12,
	0x5c, 0x0a, 0x0d, 0x41, 0x6c, 0x6c, 0x6f, 0x77, 0x6c, 0x69, 0x73, 0x74, 0x4d, 0x69, 0x6e, 0x74,
	0x12, 0x24, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76,
	0x31, 0x2e, 0x41, 0x6c, 0x6c, 0x6f, 0x77, 0x6c, 0x69, 0x73, 0x74, 0x4d, 0x69, 0x6e, 0x74, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x25, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69,
	0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x6c, 0x6c, 0x6f, 0x77, 0x6c, 0x69, 0x73,
	0x74, 0x4d, 0x69, 0x6e, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x4d, 0x0a,
	0x08, 0x42, 0x75, 0x6c, 0x6b, 0x44, 0x72, 0x6f, 0x70, 0x12, 0x1f, 0x2e, 0x73, 0x6f, 0x76, 0x65,
	0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x42, 0x75, 0x6c, 0x6b, 0x44,
	0x72, 0x6f, 0x70, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x20, 0x2e, 0x73, 0x6f, 0x76,
	0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x42, 0x75, 0x6c, 0x6b,
	0x44, 0x72, 0x6f, 0x70, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x50, 0x0a, 0x09,
	0x42, 0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65, 0x4f, 0x66, 0x12, 0x20, 0x2e, 0x73, 0x6f, 0x76, 0x65,
	0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x42, 0x61, 0x6c, 0x61, 0x6e,
	0x63, 0x65, 0x4f, 0x66, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x21, 0x2e, 0x73, 0x6f,
	0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x42, 0x61, 0x6c,
	0x61, 0x6e, 0x63, 0x65, 0x4f, 0x66, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x56,
	0x0a, 0x0b, 0x54, 0x6f, 0x74, 0x61, 0x6c, 0x53, 0x75, 0x70, 0x70, 0x6c, 0x79, 0x12, 0x22, 0x2e,
	0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x54,
	0x6f, 0x74, 0x61, 0x6c, 0x53, 0x75, 0x70, 0x70, 0x6c, 0x79, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x1a, 0x23, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e,
	0x76, 0x31, 0x2e, 0x54, 0x6f, 0x74, 0x61, 0x6c, 0x53, 0x75, 0x70, 0x70, 0x6c, 0x79, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x56, 0x0a, 0x0b, 0x4d, 0x69, 0x6e, 0x74, 0x65, 0x64,
	0x43, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x22, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67,
	0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x4d, 0x69, 0x6e, 0x74, 0x65, 0x64, 0x43, 0x6f, 0x75,
	0x6e, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x23, 0x2e, 0x73, 0x6f, 0x76, 0x65,
	0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x4d, 0x69, 0x6e, 0x74, 0x65,
	0x64, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x53,
	0x0a, 0x0a, 0x48, 0x61, 0x73, 0x43, 0x6c, 0x61, 0x69, 0x6d, 0x65, 0x64, 0x12, 0x21, 0x2e, 0x73,
	0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x48, 0x61,
	0x73, 0x43, 0x6c, 0x61, 0x69, 0x6d, 0x65, 0x64, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a,
	0x22, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31,
	0x2e, 0x48, 0x61, 0x73, 0x43, 0x6c, 0x61, 0x69, 0x6d, 0x65, 0x64, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x12, 0x56, 0x0a, 0x0b, 0x53, 0x65, 0x74, 0x4d, 0x69, 0x6e, 0x74, 0x61, 0x62,
	0x6c, 0x65, 0x12, 0x22, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79,
	0x2e, 0x76, 0x31, 0x2e, 0x53, 0x65, 0x74, 0x4d, 0x69, 0x6e, 0x74, 0x61, 0x62, 0x6c, 0x65, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x23, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69,
	0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x65, 0x74, 0x4d, 0x69, 0x6e, 0x74, 0x61,
	0x62, 0x6c, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x59, 0x0a, 0x0c, 0x53,
	0x65, 0x74, 0x41, 0x6c, 0x6c, 0x6f, 0x77, 0x6c, 0x69, 0x73, 0x74, 0x12, 0x23, 0x2e, 0x73, 0x6f,
	0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x65, 0x74,
	0x41, 0x6c, 0x6c, 0x6f, 0x77, 0x6c, 0x69, 0x73, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x1a, 0x24, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76,
	0x31, 0x2e, 0x53, 0x65, 0x74, 0x41, 0x6c, 0x6c, 0x6f, 0x77, 0x6c, 0x69, 0x73, 0x74, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x65, 0x0a, 0x10, 0x53, 0x65, 0x74, 0x41, 0x6c, 0x6c,
	0x6f, 0x77, 0x6c, 0x69, 0x73, 0x74, 0x43, 0x6f, 0x73, 0x74, 0x12, 0x27, 0x2e, 0x73, 0x6f, 0x76,
	0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x65, 0x74, 0x41,
	0x6c, 0x6c, 0x6f, 0x77, 0x6c, 0x69, 0x73, 0x74, 0x43, 0x6f, 0x73, 0x74, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x1a, 0x28, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74,
	0x79, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x65, 0x74, 0x41, 0x6c, 0x6c, 0x6f, 0x77, 0x6c, 0x69, 0x73,
	0x74, 0x43, 0x6f, 0x73, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x44, 0x0a,
	0x05, 0x50, 0x61, 0x75, 0x73, 0x65, 0x12, 0x1c, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69,
	0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x61, 0x75, 0x73, 0x65, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x1a, 0x1d, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e,
	0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x61, 0x75, 0x73, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x12, 0x4d, 0x0a, 0x08, 0x49, 0x73, 0x50, 0x61, 0x75, 0x73, 0x65, 0x64, 0x12,
	0x1f, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31,
	0x2e, 0x49, 0x73, 0x50, 0x61, 0x75, 0x73, 0x65, 0x64, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x1a, 0x20, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76,
	0x31, 0x2e, 0x49, 0x73, 0x50, 0x61, 0x75, 0x73, 0x65, 0x64, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x12, 0x4d, 0x0a, 0x08, 0x57, 0x69, 0x74, 0x68, 0x64, 0x72, 0x61, 0x77, 0x12, 0x1f,
	0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e,
	0x57, 0x69, 0x74, 0x68, 0x64, 0x72, 0x61, 0x77, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a,
	0x20, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31,
	0x2e, 0x57, 0x69, 0x74, 0x68, 0x64, 0x72, 0x61, 0x77, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x50, 0x0a, 0x09, 0x41, 0x64, 0x64, 0x41, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x12, 0x20,
	0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e,
	0x41, 0x64, 0x64, 0x41, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x1a, 0x21, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76,
	0x31, 0x2e, 0x41, 0x64, 0x64, 0x41, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x12, 0x59, 0x0a, 0x0c, 0x52, 0x65, 0x6d, 0x6f, 0x76, 0x65, 0x41, 0x75, 0x74,
	0x68, 0x6f, 0x72, 0x12, 0x23, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74,
	0x79, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x6d, 0x6f, 0x76, 0x65, 0x41, 0x75, 0x74, 0x68, 0x6f,
	0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x24, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72,
	0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x6d, 0x6f, 0x76, 0x65,
	0x41, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x4d,
	0x0a, 0x08, 0x41, 0x64, 0x64, 0x41, 0x64, 0x6d, 0x69, 0x6e, 0x12, 0x1f, 0x2e, 0x73, 0x6f, 0x76,
	0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x64, 0x64, 0x41,
	0x64, 0x6d, 0x69, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x20, 0x2e, 0x73, 0x6f,
	0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x64, 0x64,
	0x41, 0x64, 0x6d, 0x69, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x5c, 0x0a,
	0x0d, 0x52, 0x65, 0x6e, 0x6f, 0x75, 0x6e, 0x63, 0x65, 0x41, 0x64, 0x6d, 0x69, 0x6e, 0x12, 0x24,
	0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e,
	0x52, 0x65, 0x6e, 0x6f, 0x75, 0x6e, 0x63, 0x65, 0x41, 0x64, 0x6d, 0x69, 0x6e, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x1a, 0x25, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e,
	0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x6e, 0x6f, 0x75, 0x6e, 0x63, 0x65, 0x41, 0x64,
	0x6d, 0x69, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x4a, 0x0a, 0x07, 0x49,
	0x73, 0x41, 0x64, 0x6d, 0x69, 0x6e, 0x12, 0x1e, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69,
	0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x49, 0x73, 0x41, 0x64, 0x6d, 0x69, 0x6e, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1f, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69,
	0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x49, 0x73, 0x41, 0x64, 0x6d, 0x69, 0x6e, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x4d, 0x0a, 0x08, 0x49, 0x73, 0x41, 0x75, 0x74,
	0x68, 0x6f, 0x72, 0x12, 0x1f, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74,
	0x79, 0x2e, 0x76, 0x31, 0x2e, 0x49, 0x73, 0x41, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x1a, 0x20, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e,
	0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x49, 0x73, 0x41, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x5c, 0x0a, 0x0d, 0x47, 0x65, 0x74, 0x52, 0x6f, 0x6c,
	0x65, 0x47, 0x72, 0x61, 0x6e, 0x74, 0x73, 0x12, 0x24, 0x2e, 0x73, 0x6f, 0x76, 0x65, 0x72, 0x65,
	0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x52, 0x6f, 0x6c, 0x65,
	0x47, 0x72, 0x61, 0x6e, 0x74, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x25, 0x2e,
	0x73, 0x6f, 0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x47,
	0x65, 0x74, 0x52, 0x6f, 0x6c, 0x65, 0x47, 0x72, 0x61, 0x6e, 0x74, 0x73, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x42, 0x4c, 0x5a, 0x42, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62, 0x2e, 0x63,
	0x6f, 0x6d, 0x2f, 0x6e, 0x66, 0x74, 0x2d, 0x6e, 0x6f, 0x77, 0x2f, 0x73, 0x6f, 0x76, 0x65, 0x72,
	0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x67, 0x6f, 0x2f, 0x73, 0x6f,
	0x76, 0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x2f, 0x76, 0x31, 0x3b, 0x73, 0x6f, 0x76,
	0x65, 0x72, 0x65, 0x69, 0x67, 0x6e, 0x74, 0x79, 0x76, 0x31, 0x92, 0x03, 0x05, 0xd2, 0x3e, 0x02,
	0x10, 0x03, 0x62, 0x08, 0x65, 0x64, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x70, 0xe8, 0x07,
})

var file_sovereignty_v1_registry_proto_msgTypes = make([]protoimpl.MessageInfo, 56)
var file_sovereignty_v1_registry_proto_goTypes = []any{
	(*ChallengeRequest)(nil),         // 0: sovereignty.v1.ChallengeRequest
	(*ChallengeResponse)(nil),        // 1: sovereignty.v1.ChallengeResponse
	(*LoginRequest)(nil),             // 2: sovereignty.v1.LoginRequest
	(*LoginResponse)(nil),            // 3: sovereignty.v1.LoginResponse
	(*Article)(nil),                  // 4: sovereignty.v1.Article
	(*CreateArticleRequest)(nil),     // 5: sovereignty.v1.CreateArticleRequest
	(*CreateArticleResponse)(nil),    // 6: sovereignty.v1.CreateArticleResponse
	(*GetAllArticlesRequest)(nil),    // 7: sovereignty.v1.GetAllArticlesRequest
	(*GetAllArticlesResponse)(nil),   // 8: sovereignty.v1.GetAllArticlesResponse
	(*GetArticleByIdRequest)(nil),    // 9: sovereignty.v1.GetArticleByIdRequest
	(*GetArticleByIdResponse)(nil),   // 10: sovereignty.v1.GetArticleByIdResponse
	(*EditMetadataUrlRequest)(nil),   // 11: sovereignty.v1.EditMetadataUrlRequest
	(*EditMetadataUrlResponse)(nil),  // 12: sovereignty.v1.EditMetadataUrlResponse
	(*UriRequest)(nil),               // 13: sovereignty.v1.UriRequest
	(*UriResponse)(nil),              // 14: sovereignty.v1.UriResponse
	(*MintRequest)(nil),              // 15: sovereignty.v1.MintRequest
	(*MintResponse)(nil),             // 16: sovereignty.v1.MintResponse
	(*AllowlistMintRequest)(nil),     // 17: sovereignty.v1.AllowlistMintRequest
	(*AllowlistMintResponse)(nil),    // 18: sovereignty.v1.AllowlistMintResponse
	(*BulkDropRequest)(nil),          // 19: sovereignty.v1.BulkDropRequest
	(*BulkDropResponse)(nil),         // 20: sovereignty.v1.BulkDropResponse
	(*BalanceOfRequest)(nil),         // 21: sovereignty.v1.BalanceOfRequest
	(*BalanceOfResponse)(nil),        // 22: sovereignty.v1.BalanceOfResponse
	(*TotalSupplyRequest)(nil),       // 23: sovereignty.v1.TotalSupplyRequest
	(*TotalSupplyResponse)(nil),      // 24: sovereignty.v1.TotalSupplyResponse
	(*MintedCountRequest)(nil),       // 25: sovereignty.v1.MintedCountRequest
	(*MintedCountResponse)(nil),      // 26: sovereignty.v1.MintedCountResponse
	(*HasClaimedRequest)(nil),        // 27: sovereignty.v1.HasClaimedRequest
	(*HasClaimedResponse)(nil),       // 28: sovereignty.v1.HasClaimedResponse
	(*SetMintableRequest)(nil),       // 29: sovereignty.v1.SetMintableRequest
	(*SetMintableResponse)(nil),      // 30: sovereignty.v1.SetMintableResponse
	(*SetAllowlistRequest)(nil),      // 31: sovereignty.v1.SetAllowlistRequest
	(*SetAllowlistResponse)(nil),     // 32: sovereignty.v1.SetAllowlistResponse
	(*SetAllowlistCostRequest)(nil),  // 33: sovereignty.v1.SetAllowlistCostRequest
	(*SetAllowlistCostResponse)(nil), // 34: sovereignty.v1.SetAllowlistCostResponse
	(*PauseRequest)(nil),             // 35: sovereignty.v1.PauseRequest
	(*PauseResponse)(nil),            // 36: sovereignty.v1.PauseResponse
	(*IsPausedRequest)(nil),          // 37: sovereignty.v1.IsPausedRequest
	(*IsPausedResponse)(nil),         // 38: sovereignty.v1.IsPausedResponse
	(*WithdrawRequest)(nil),          // 39: sovereignty.v1.WithdrawRequest
	(*WithdrawResponse)(nil),         // 40: sovereignty.v1.WithdrawResponse
	(*AddAuthorRequest)(nil),         // 41: sovereignty.v1.AddAuthorRequest
	(*AddAuthorResponse)(nil),        // 42: sovereignty.v1.AddAuthorResponse
	(*RemoveAuthorRequest)(nil),      // 43: sovereignty.v1.RemoveAuthorRequest
	(*RemoveAuthorResponse)(nil),     // 44: sovereignty.v1.RemoveAuthorResponse
	(*AddAdminRequest)(nil),          // 45: sovereignty.v1.AddAdminRequest
	(*AddAdminResponse)(nil),         // 46: sovereignty.v1.AddAdminResponse
	(*RenounceAdminRequest)(nil),     // 47: sovereignty.v1.RenounceAdminRequest
	(*RenounceAdminResponse)(nil),    // 48: sovereignty.v1.RenounceAdminResponse
	(*IsAdminRequest)(nil),           // 49: sovereignty.v1.IsAdminRequest
	(*IsAdminResponse)(nil),          // 50: sovereignty.v1.IsAdminResponse
	(*IsAuthorRequest)(nil),          // 51: sovereignty.v1.IsAuthorRequest
	(*IsAuthorResponse)(nil),         // 52: sovereignty.v1.IsAuthorResponse
	(*RoleGrant)(nil),                // 53: sovereignty.v1.RoleGrant
	(*GetRoleGrantsRequest)(nil),     // 54: sovereignty.v1.GetRoleGrantsRequest
	(*GetRoleGrantsResponse)(nil),    // 55: sovereignty.v1.GetRoleGrantsResponse
	(*timestamppb.Timestamp)(nil),    // 56: google.protobuf.Timestamp
}
var file_sovereignty_v1_registry_proto_depIdxs = []int32{
	56, // 0: sovereignty.v1.ChallengeResponse.expires_at:type_name -> google.protobuf.Timestamp
	56, // 1: sovereignty.v1.LoginResponse.expires_at:type_name -> google.protobuf.Timestamp
	56, // 2: sovereignty.v1.Article.created_at:type_name -> google.protobuf.Timestamp
	4,  // 3: sovereignty.v1.CreateArticleResponse.article:type_name -> sovereignty.v1.Article
	4,  // 4: sovereignty.v1.GetAllArticlesResponse.articles:type_name -> sovereignty.v1.Article
	4,  // 5: sovereignty.v1.GetArticleByIdResponse.article:type_name -> sovereignty.v1.Article
	56, // 6: sovereignty.v1.RoleGrant.created_at:type_name -> google.protobuf.Timestamp
	53, // 7: sovereignty.v1.GetRoleGrantsResponse.grants:type_name -> sovereignty.v1.RoleGrant
	0,  // 8: sovereignty.v1.SovereigntyRegistry.Challenge:input_type -> sovereignty.v1.ChallengeRequest
	2,  // 9: sovereignty.v1.SovereigntyRegistry.Login:input_type -> sovereignty.v1.LoginRequest
	5,  // 10: sovereignty.v1.SovereigntyRegistry.CreateArticle:input_type -> sovereignty.v1.CreateArticleRequest
	7,  // 11: sovereignty.v1.SovereigntyRegistry.GetAllArticles:input_type -> sovereignty.v1.GetAllArticlesRequest
	9,  // 12: sovereignty.v1.SovereigntyRegistry.GetArticleById:input_type -> sovereignty.v1.GetArticleByIdRequest
	11, // 13: sovereignty.v1.SovereigntyRegistry.EditMetadataUrl:input_type -> sovereignty.v1.EditMetadataUrlRequest
	13, // 14: sovereignty.v1.SovereigntyRegistry.Uri:input_type -> sovereignty.v1.UriRequest
	15, // 15: sovereignty.v1.SovereigntyRegistry.Mint:input_type -> sovereignty.v1.MintRequest
	17, // 16: sovereignty.v1.SovereigntyRegistry.AllowlistMint:input_type -> sovereignty.v1.AllowlistMintRequest
	19, // 17: sovereignty.v1.SovereigntyRegistry.BulkDrop:input_type -> sovereignty.v1.BulkDropRequest
	21, // 18: sovereignty.v1.SovereigntyRegistry.BalanceOf:input_type -> sovereignty.v1.BalanceOfRequest
	23, // 19: sovereignty.v1.SovereigntyRegistry.TotalSupply:input_type -> sovereignty.v1.TotalSupplyRequest
	25, // 20: sovereignty.v1.SovereigntyRegistry.MintedCount:input_type -> sovereignty.v1.MintedCountRequest
	27, // 21: sovereignty.v1.SovereigntyRegistry.HasClaimed:input_type -> sovereignty.v1.HasClaimedRequest
	29, // 22: sovereignty.v1.SovereigntyRegistry.SetMintable:input_type -> sovereignty.v1.SetMintableRequest
	31, // 23: sovereignty.v1.SovereigntyRegistry.SetAllowlist:input_type -> sovereignty.v1.SetAllowlistRequest
	33, // 24: sovereignty.v1.SovereigntyRegistry.SetAllowlistCost:input_type -> sovereignty.v1.SetAllowlistCostRequest
	35, // 25: sovereignty.v1.SovereigntyRegistry.Pause:input_type -> sovereignty.v1.PauseRequest
	37, // 26: sovereignty.v1.SovereigntyRegistry.IsPaused:input_type -> sovereignty.v1.IsPausedRequest
	39, // 27: sovereignty.v1.SovereigntyRegistry.Withdraw:input_type -> sovereignty.v1.WithdrawRequest
	41, // 28: sovereignty.v1.SovereigntyRegistry.AddAuthor:input_type -> sovereignty.v1.AddAuthorRequest
	43, // 29: sovereignty.v1.SovereigntyRegistry.RemoveAuthor:input_type -> sovereignty.v1.RemoveAuthorRequest
	45, // 30: sovereignty.v1.SovereigntyRegistry.AddAdmin:input_type -> sovereignty.v1.AddAdminRequest
	47, // 31: sovereignty.v1.SovereigntyRegistry.RenounceAdmin:input_type -> sovereignty.v1.RenounceAdminRequest
	49, // 32: sovereignty.v1.SovereigntyRegistry.IsAdmin:input_type -> sovereignty.v1.IsAdminRequest
	51, // 33: sovereignty.v1.SovereigntyRegistry.IsAuthor:input_type -> sovereignty.v1.IsAuthorRequest
	54, // 34: sovereignty.v1.SovereigntyRegistry.GetRoleGrants:input_type -> sovereignty.v1.GetRoleGrantsRequest
	1,  // 35: sovereignty.v1.SovereigntyRegistry.Challenge:output_type -> sovereignty.v1.ChallengeResponse
	3,  // 36: sovereignty.v1.SovereigntyRegistry.Login:output_type -> sovereignty.v1.LoginResponse
	6,  // 37: sovereignty.v1.SovereigntyRegistry.CreateArticle:output_type -> sovereignty.v1.CreateArticleResponse
	8,  // 38: sovereignty.v1.SovereigntyRegistry.GetAllArticles:output_type -> sovereignty.v1.GetAllArticlesResponse
	10, // 39: sovereignty.v1.SovereigntyRegistry.GetArticleById:output_type -> sovereignty.v1.GetArticleByIdResponse
	12, // 40: sovereignty.v1.SovereigntyRegistry.EditMetadataUrl:output_type -> sovereignty.v1.EditMetadataUrlResponse
	14, // 41: sovereignty.v1.SovereigntyRegistry.Uri:output_type -> sovereignty.v1.UriResponse
	16, // 42: sovereignty.v1.SovereigntyRegistry.Mint:output_type -> sovereignty.v1.MintResponse
	18, // 43: sovereignty.v1.SovereigntyRegistry.AllowlistMint:output_type -> sovereignty.v1.AllowlistMintResponse
	20, // 44: sovereignty.v1.SovereigntyRegistry.BulkDrop:output_type -> sovereignty.v1.BulkDropResponse
	22, // 45: sovereignty.v1.SovereigntyRegistry.BalanceOf:output_type -> sovereignty.v1.BalanceOfResponse
	24, // 46: sovereignty.v1.SovereigntyRegistry.TotalSupply:output_type -> sovereignty.v1.TotalSupplyResponse
	26, // 47: sovereignty.v1.SovereigntyRegistry.MintedCount:output_type -> sovereignty.v1.MintedCountResponse
	28, // 48: sovereignty.v1.SovereigntyRegistry.HasClaimed:output_type -> sovereignty.v1.HasClaimedResponse
	30, // 49: sovereignty.v1.SovereigntyRegistry.SetMintable:output_type -> sovereignty.v1.SetMintableResponse
	32, // 50: sovereignty.v1.SovereigntyRegistry.SetAllowlist:output_type -> sovereignty.v1.SetAllowlistResponse
	34, // 51: sovereignty.v1.SovereigntyRegistry.SetAllowlistCost:output_type -> sovereignty.v1.SetAllowlistCostResponse
	36, // 52: sovereignty.v1.SovereigntyRegistry.Pause:output_type -> sovereignty.v1.PauseResponse
	38, // 53: sovereignty.v1.SovereigntyRegistry.IsPaused:output_type -> sovereignty.v1.IsPausedResponse
	40, // 54: sovereignty.v1.SovereigntyRegistry.Withdraw:output_type -> sovereignty.v1.WithdrawResponse
	42, // 55: sovereignty.v1.SovereigntyRegistry.AddAuthor:output_type -> sovereignty.v1.AddAuthorResponse
	44, // 56: sovereignty.v1.SovereigntyRegistry.RemoveAuthor:output_type -> sovereignty.v1.RemoveAuthorResponse
	46, // 57: sovereignty.v1.SovereigntyRegistry.AddAdmin:output_type -> sovereignty.v1.AddAdminResponse
	48, // 58: sovereignty.v1.SovereigntyRegistry.RenounceAdmin:output_type -> sovereignty.v1.RenounceAdminResponse
	50, // 59: sovereignty.v1.SovereigntyRegistry.IsAdmin:output_type -> sovereignty.v1.IsAdminResponse
	52, // 60: sovereignty.v1.SovereigntyRegistry.IsAuthor:output_type -> sovereignty.v1.IsAuthorResponse
	55, // 61: sovereignty.v1.SovereigntyRegistry.GetRoleGrants:output_type -> sovereignty.v1.GetRoleGrantsResponse
	35, // [35:62] is the sub-list for method output_type
	8,  // [8:35] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_sovereignty_v1_registry_proto_init() }
func file_sovereignty_v1_registry_proto_init() {
	if File_sovereignty_v1_registry_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_sovereignty_v1_registry_proto_rawDesc), len(file_sovereignty_v1_registry_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   56,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_sovereignty_v1_registry_proto_goTypes,
		DependencyIndexes: file_sovereignty_v1_registry_proto_depIdxs,
		MessageInfos:      file_sovereignty_v1_registry_proto_msgTypes,
	}.Build()
	File_sovereignty_v1_registry_proto = out.File
	file_sovereignty_v1_registry_proto_goTypes = nil
	file_sovereignty_v1_registry_proto_depIdxs = nil
}
