// Package convert maps between domain entities and protobuf messages.
package convert

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/nft-now/sovereignty/gen/go/sovereignty/v1"
	"github.com/nft-now/sovereignty/internal/model"
)

func ts(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

// ToProtoArticle converts a domain article to its protobuf message.
func ToProtoArticle(a model.Article) *pb.Article {
	out := &pb.Article{}
	out.SetId(a.ID)
	out.SetPublisher(a.Publisher)
	out.SetCategory(a.Category)
	out.SetTitle(a.Title)
	out.SetAuthor(a.Author)
	out.SetCreatedAt(ts(a.CreatedAt))
	return out
}

// ToProtoArticles converts a slice of articles.
func ToProtoArticles(as []model.Article) []*pb.Article {
	out := make([]*pb.Article, 0, len(as))
	for _, a := range as {
		out = append(out, ToProtoArticle(a))
	}
	return out
}

// ToProtoRoleGrant converts a grant history record.
func ToProtoRoleGrant(g model.RoleGrant) *pb.RoleGrant {
	out := &pb.RoleGrant{}
	out.SetId(g.ID)
	out.SetAccount(g.Account.String())
	out.SetCreatedAt(ts(g.CreatedAt))
	return out
}

// ToProtoRoleGrants converts the grant history.
func ToProtoRoleGrants(gs []model.RoleGrant) []*pb.RoleGrant {
	out := make([]*pb.RoleGrant, 0, len(gs))
	for _, g := range gs {
		out = append(out, ToProtoRoleGrant(g))
	}
	return out
}

// FromProtoCreateArticle converts a creation request into the domain input
// bundle, parsing the address fields.
func FromProtoCreateArticle(req *pb.CreateArticleRequest) (model.CreateArticleInput, error) {
	if req == nil {
		return model.CreateArticleInput{}, fmt.Errorf("nil CreateArticleRequest")
	}
	validator, err := model.ParseAddress(req.GetValidator())
	if err != nil {
		return model.CreateArticleInput{}, fmt.Errorf("validator: %w", err)
	}
	in := model.CreateArticleInput{
		Category:      req.GetCategory(),
		Title:         req.GetTitle(),
		AuthorName:    req.GetAuthorName(),
		PublicCost:    req.GetPublicCost(),
		AllowlistCost: req.GetAllowlistCost(),
		MaxAmount:     req.GetMaxAmount(),
		MaxPerUser:    req.GetMaxPerUser(),
		MetadataURL:   req.GetMetadataUrl(),
		Validator:     validator,
		ReserveAmount: req.GetReserveAmount(),
	}
	if req.GetReserveRecipient() != "" {
		if in.ReserveRecipient, err = model.ParseAddress(req.GetReserveRecipient()); err != nil {
			return model.CreateArticleInput{}, fmt.Errorf("reserve recipient: %w", err)
		}
	}
	return in, nil
}

// FromProtoRecipients parses an airdrop recipient list.
func FromProtoRecipients(in []string) ([]model.Address, error) {
	out := make([]model.Address, 0, len(in))
	for i, s := range in {
		a, err := model.ParseAddress(s)
		if err != nil {
			return nil, fmt.Errorf("recipient[%d]: %w", i, err)
		}
		out = append(out, a)
	}
	return out, nil
}
