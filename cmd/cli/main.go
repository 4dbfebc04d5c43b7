// Command sov is a CLI client for the Sovereignty article registry.
package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/nft-now/sovereignty/gen/go/sovereignty/v1"
	"github.com/nft-now/sovereignty/internal/model"
	"github.com/nft-now/sovereignty/internal/sigver"
)

// ---- config/token store ----

type tokenFile struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func cfgDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "sovereignty")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "sovereignty")
}

func tokenPath() string { return filepath.Join(cfgDir(), "token.json") }

func saveToken(tok string, exp time.Time) error {
	_ = os.MkdirAll(cfgDir(), 0o700)
	f, err := os.Create(tokenPath())
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(tokenFile{AccessToken: tok, ExpiresAt: exp})
}

func loadToken() (string, error) {
	b, err := os.ReadFile(tokenPath())
	if err != nil {
		return "", err
	}
	var tf tokenFile
	if err := json.Unmarshal(b, &tf); err != nil {
		return "", err
	}
	if tf.AccessToken == "" || time.Now().After(tf.ExpiresAt) {
		return "", errors.New("no valid token (login required)")
	}
	return tf.AccessToken, nil
}

// ---- grpc dial ----

type bearerCreds struct{ token string }

func (b bearerCreds) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{"authorization": "Bearer " + b.token}, nil
}
func (b bearerCreds) RequireTransportSecurity() bool { return true }

func loadTLS(caPath string, insecureSkip bool) (credentials.TransportCredentials, error) {
	cfg := &tls.Config{}
	if insecureSkip {
		cfg.InsecureSkipVerify = true
		return credentials.NewTLS(cfg), nil
	}
	if caPath != "" {
		pem, err := os.ReadFile(caPath)
		if err != nil {
			return nil, err
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, errors.New("bad CA pem")
		}
		cfg.RootCAs = pool
	}
	return credentials.NewTLS(cfg), nil
}

func dial(ctx context.Context, addr, caPath string, insecureSkip bool, bearer string) (*grpc.ClientConn, pb.SovereigntyRegistryClient, error) {
	creds, err := loadTLS(caPath, insecureSkip)
	if err != nil {
		return nil, nil, err
	}
	opts := []grpc.DialOption{grpc.WithTransportCredentials(creds)}
	if bearer != "" {
		opts = append(opts, grpc.WithPerRPCCredentials(bearerCreds{token: bearer}))
	}
	cc, err := grpc.DialContext(ctx, addr, opts...)
	if err != nil {
		return nil, nil, err
	}
	return cc, pb.NewSovereigntyRegistryClient(cc), nil
}

func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func tsString(t *timestamppb.Timestamp) string {
	if t == nil {
		return ""
	}
	return t.AsTime().Format(time.RFC3339)
}

func fail(err error) {
	if st, ok := status.FromError(err); ok {
		fmt.Fprintf(os.Stderr, "error: %s: %s\n", st.Code(), st.Message())
	} else {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(1)
}

func withTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 15*time.Second)
}

func usage() {
	fmt.Fprintf(os.Stderr, `sov - Sovereignty article registry client

Usage:
  sov [flags] <command> [args]

Wallet:
  keygen                                 generate a wallet key, print the address
  address                                print the wallet address
  login                                  sign a challenge and store an access token
  sign-mintkey <tokenId> <nonce> <wallet> sign an allowlist mint key (validator)

Articles:
  articles                               list all articles
  article <id>                           show one article
  create-article (see -h)                publish an article + token config
  edit-url <tokenId> <url>               edit token metadata url
  uri <tokenId>                          print token metadata url

Minting:
  mint <tokenId> <amount> <payment>      public mint
  allowlist-mint <tokenId> <amount> <payment> <nonce> <wallet> <sigB64>
  bulk-drop <tokenId> <addr,addr,...>    admin airdrop, 1 unit each
  balance <owner> <tokenId>
  supply <tokenId>
  minted-count <wallet> <tokenId>
  claimed <wallet> <tokenId>

Admin:
  set-mintable <tokenId> <true|false>
  set-allowlist <tokenId> <true|false>
  set-allowlist-cost <tokenId> <cost>
  pause <true|false>
  is-paused
  withdraw
  add-author <addr> | remove-author <addr>
  add-admin <addr>  | renounce-admin
  is-admin <addr>   | is-author <addr>
  grants

Flags:
  -addr       server address (default localhost:8443)
  -ca         CA certificate for TLS
  -insecure   skip TLS verification (dev)
`)
	os.Exit(2)
}

func main() {
	addr := flag.String("addr", "localhost:8443", "server address")
	caPath := flag.String("ca", "", "CA certificate (PEM)")
	insecureSkip := flag.Bool("insecure", false, "skip TLS verification (dev)")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
	}
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "keygen":
		a, err := generateWallet()
		if err != nil {
			fail(err)
		}
		fmt.Println(a.String())

	case "address":
		_, a, err := loadWallet()
		if err != nil {
			fail(err)
		}
		fmt.Println(a.String())

	case "login":
		cmdLogin(*addr, *caPath, *insecureSkip)

	case "sign-mintkey":
		cmdSignMintKey(rest)

	case "articles":
		ctx, cancel := withTimeout()
		defer cancel()
		cc, cl, err := dial(ctx, *addr, *caPath, *insecureSkip, "")
		if err != nil {
			fail(err)
		}
		defer cc.Close()
		resp, err := cl.GetAllArticles(ctx, &pb.GetAllArticlesRequest{})
		if err != nil {
			fail(err)
		}
		for _, a := range resp.GetArticles() {
			fmt.Printf("%d\t%s\t%q\tby %s\t%s\n", a.GetId(), a.GetCategory(), a.GetTitle(), a.GetAuthor(), tsString(a.GetCreatedAt()))
		}

	case "article":
		if len(rest) != 1 {
			usage()
		}
		id := mustInt(rest[0])
		ctx, cancel := withTimeout()
		defer cancel()
		cc, cl, err := dial(ctx, *addr, *caPath, *insecureSkip, "")
		if err != nil {
			fail(err)
		}
		defer cc.Close()
		resp, err := cl.GetArticleById(ctx, pb.GetArticleByIdRequest_builder{Id: proto.Int64(id)}.Build())
		if err != nil {
			fail(err)
		}
		printJSON(map[string]any{
			"id":        resp.GetArticle().GetId(),
			"publisher": resp.GetArticle().GetPublisher(),
			"category":  resp.GetArticle().GetCategory(),
			"title":     resp.GetArticle().GetTitle(),
			"author":    resp.GetArticle().GetAuthor(),
			"createdAt": tsString(resp.GetArticle().GetCreatedAt()),
		})

	case "create-article":
		cmdCreateArticle(rest, *addr, *caPath, *insecureSkip)

	case "edit-url":
		if len(rest) != 2 {
			usage()
		}
		authed(*addr, *caPath, *insecureSkip, func(ctx context.Context, cl pb.SovereigntyRegistryClient) error {
			_, err := cl.EditMetadataUrl(ctx, pb.EditMetadataUrlRequest_builder{TokenId: proto.Int64(mustInt(rest[0])), Url: proto.String(rest[1])}.Build())
			return err
		})

	case "uri":
		if len(rest) != 1 {
			usage()
		}
		ctx, cancel := withTimeout()
		defer cancel()
		cc, cl, err := dial(ctx, *addr, *caPath, *insecureSkip, "")
		if err != nil {
			fail(err)
		}
		defer cc.Close()
		resp, err := cl.Uri(ctx, pb.UriRequest_builder{TokenId: proto.Int64(mustInt(rest[0]))}.Build())
		if err != nil {
			fail(err)
		}
		fmt.Println(resp.GetUrl())

	case "mint":
		if len(rest) != 3 {
			usage()
		}
		authed(*addr, *caPath, *insecureSkip, func(ctx context.Context, cl pb.SovereigntyRegistryClient) error {
			_, err := cl.Mint(ctx, pb.MintRequest_builder{
				TokenId: proto.Int64(mustInt(rest[0])), Amount: proto.Int64(mustInt(rest[1])), Payment: proto.Int64(mustInt(rest[2])),
			}.Build())
			return err
		})

	case "allowlist-mint":
		if len(rest) != 6 {
			usage()
		}
		sig, err := base64.StdEncoding.DecodeString(rest[5])
		if err != nil {
			fail(fmt.Errorf("bad signature: %w", err))
		}
		authed(*addr, *caPath, *insecureSkip, func(ctx context.Context, cl pb.SovereigntyRegistryClient) error {
			_, err := cl.AllowlistMint(ctx, pb.AllowlistMintRequest_builder{
				TokenId: proto.Int64(mustInt(rest[0])), Amount: proto.Int64(mustInt(rest[1])), Payment: proto.Int64(mustInt(rest[2])),
				Nonce: proto.Int64(mustInt(rest[3])), Wallet: proto.String(rest[4]), Signature: sig,
			}.Build())
			return err
		})

	case "bulk-drop":
		if len(rest) != 2 {
			usage()
		}
		authed(*addr, *caPath, *insecureSkip, func(ctx context.Context, cl pb.SovereigntyRegistryClient) error {
			_, err := cl.BulkDrop(ctx, pb.BulkDropRequest_builder{
				TokenId: proto.Int64(mustInt(rest[0])), Recipients: strings.Split(rest[1], ","),
			}.Build())
			return err
		})

	case "balance":
		if len(rest) != 2 {
			usage()
		}
		ctx, cancel := withTimeout()
		defer cancel()
		cc, cl, err := dial(ctx, *addr, *caPath, *insecureSkip, "")
		if err != nil {
			fail(err)
		}
		defer cc.Close()
		resp, err := cl.BalanceOf(ctx, pb.BalanceOfRequest_builder{Owner: proto.String(rest[0]), TokenId: proto.Int64(mustInt(rest[1]))}.Build())
		if err != nil {
			fail(err)
		}
		fmt.Println(resp.GetAmount())

	case "supply":
		if len(rest) != 1 {
			usage()
		}
		ctx, cancel := withTimeout()
		defer cancel()
		cc, cl, err := dial(ctx, *addr, *caPath, *insecureSkip, "")
		if err != nil {
			fail(err)
		}
		defer cc.Close()
		resp, err := cl.TotalSupply(ctx, pb.TotalSupplyRequest_builder{TokenId: proto.Int64(mustInt(rest[0]))}.Build())
		if err != nil {
			fail(err)
		}
		fmt.Println(resp.GetAmount())

	case "minted-count":
		if len(rest) != 2 {
			usage()
		}
		ctx, cancel := withTimeout()
		defer cancel()
		cc, cl, err := dial(ctx, *addr, *caPath, *insecureSkip, "")
		if err != nil {
			fail(err)
		}
		defer cc.Close()
		resp, err := cl.MintedCount(ctx, pb.MintedCountRequest_builder{Wallet: proto.String(rest[0]), TokenId: proto.Int64(mustInt(rest[1]))}.Build())
		if err != nil {
			fail(err)
		}
		fmt.Println(resp.GetAmount())

	case "claimed":
		if len(rest) != 2 {
			usage()
		}
		ctx, cancel := withTimeout()
		defer cancel()
		cc, cl, err := dial(ctx, *addr, *caPath, *insecureSkip, "")
		if err != nil {
			fail(err)
		}
		defer cc.Close()
		resp, err := cl.HasClaimed(ctx, pb.HasClaimedRequest_builder{Wallet: proto.String(rest[0]), TokenId: proto.Int64(mustInt(rest[1]))}.Build())
		if err != nil {
			fail(err)
		}
		fmt.Println(resp.GetClaimed())

	case "set-mintable":
		if len(rest) != 2 {
			usage()
		}
		authed(*addr, *caPath, *insecureSkip, func(ctx context.Context, cl pb.SovereigntyRegistryClient) error {
			_, err := cl.SetMintable(ctx, pb.SetMintableRequest_builder{TokenId: proto.Int64(mustInt(rest[0])), Value: proto.Bool(mustBool(rest[1]))}.Build())
			return err
		})

	case "set-allowlist":
		if len(rest) != 2 {
			usage()
		}
		authed(*addr, *caPath, *insecureSkip, func(ctx context.Context, cl pb.SovereigntyRegistryClient) error {
			_, err := cl.SetAllowlist(ctx, pb.SetAllowlistRequest_builder{TokenId: proto.Int64(mustInt(rest[0])), Value: proto.Bool(mustBool(rest[1]))}.Build())
			return err
		})

	case "set-allowlist-cost":
		if len(rest) != 2 {
			usage()
		}
		authed(*addr, *caPath, *insecureSkip, func(ctx context.Context, cl pb.SovereigntyRegistryClient) error {
			_, err := cl.SetAllowlistCost(ctx, pb.SetAllowlistCostRequest_builder{TokenId: proto.Int64(mustInt(rest[0])), Cost: proto.Int64(mustInt(rest[1]))}.Build())
			return err
		})

	case "pause":
		if len(rest) != 1 {
			usage()
		}
		authed(*addr, *caPath, *insecureSkip, func(ctx context.Context, cl pb.SovereigntyRegistryClient) error {
			_, err := cl.Pause(ctx, pb.PauseRequest_builder{Value: proto.Bool(mustBool(rest[0]))}.Build())
			return err
		})

	case "is-paused":
		ctx, cancel := withTimeout()
		defer cancel()
		cc, cl, err := dial(ctx, *addr, *caPath, *insecureSkip, "")
		if err != nil {
			fail(err)
		}
		defer cc.Close()
		resp, err := cl.IsPaused(ctx, &pb.IsPausedRequest{})
		if err != nil {
			fail(err)
		}
		fmt.Println(resp.GetPaused())

	case "withdraw":
		authed(*addr, *caPath, *insecureSkip, func(ctx context.Context, cl pb.SovereigntyRegistryClient) error {
			resp, err := cl.Withdraw(ctx, &pb.WithdrawRequest{})
			if err != nil {
				return err
			}
			fmt.Println(resp.GetAmount())
			return nil
		})

	case "add-author", "remove-author", "add-admin":
		if len(rest) != 1 {
			usage()
		}
		authed(*addr, *caPath, *insecureSkip, func(ctx context.Context, cl pb.SovereigntyRegistryClient) error {
			var err error
			switch cmd {
			case "add-author":
				_, err = cl.AddAuthor(ctx, pb.AddAuthorRequest_builder{Account: proto.String(rest[0])}.Build())
			case "remove-author":
				_, err = cl.RemoveAuthor(ctx, pb.RemoveAuthorRequest_builder{Account: proto.String(rest[0])}.Build())
			case "add-admin":
				_, err = cl.AddAdmin(ctx, pb.AddAdminRequest_builder{Account: proto.String(rest[0])}.Build())
			}
			return err
		})

	case "renounce-admin":
		authed(*addr, *caPath, *insecureSkip, func(ctx context.Context, cl pb.SovereigntyRegistryClient) error {
			_, err := cl.RenounceAdmin(ctx, &pb.RenounceAdminRequest{})
			return err
		})

	case "is-admin", "is-author":
		if len(rest) != 1 {
			usage()
		}
		ctx, cancel := withTimeout()
		defer cancel()
		cc, cl, err := dial(ctx, *addr, *caPath, *insecureSkip, "")
		if err != nil {
			fail(err)
		}
		defer cc.Close()
		if cmd == "is-admin" {
			resp, err := cl.IsAdmin(ctx, pb.IsAdminRequest_builder{Account: proto.String(rest[0])}.Build())
			if err != nil {
				fail(err)
			}
			fmt.Println(resp.GetIsAdmin())
		} else {
			resp, err := cl.IsAuthor(ctx, pb.IsAuthorRequest_builder{Account: proto.String(rest[0])}.Build())
			if err != nil {
				fail(err)
			}
			fmt.Println(resp.GetIsAuthor())
		}

	case "grants":
		ctx, cancel := withTimeout()
		defer cancel()
		cc, cl, err := dial(ctx, *addr, *caPath, *insecureSkip, "")
		if err != nil {
			fail(err)
		}
		defer cc.Close()
		resp, err := cl.GetRoleGrants(ctx, &pb.GetRoleGrantsRequest{})
		if err != nil {
			fail(err)
		}
		for _, g := range resp.GetGrants() {
			fmt.Printf("%d\t%s\t%s\n", g.GetId(), g.GetAccount(), tsString(g.GetCreatedAt()))
		}

	default:
		usage()
	}
}

// authed runs fn with a bearer-authenticated client.
func authed(addr, caPath string, insecureSkip bool, fn func(context.Context, pb.SovereigntyRegistryClient) error) {
	tok, err := loadToken()
	if err != nil {
		fail(err)
	}
	ctx, cancel := withTimeout()
	defer cancel()
	cc, cl, err := dial(ctx, addr, caPath, insecureSkip, tok)
	if err != nil {
		fail(err)
	}
	defer cc.Close()
	if err := fn(ctx, cl); err != nil {
		fail(err)
	}
	fmt.Println("ok")
}

// cmdLogin requests a challenge, signs it with the local wallet and stores
// the resulting access token.
func cmdLogin(addr, caPath string, insecureSkip bool) {
	priv, wallet, err := loadWallet()
	if err != nil {
		fail(err)
	}
	ctx, cancel := withTimeout()
	defer cancel()
	cc, cl, err := dial(ctx, addr, caPath, insecureSkip, "")
	if err != nil {
		fail(err)
	}
	defer cc.Close()

	ch, err := cl.Challenge(ctx, &pb.ChallengeRequest{})
	if err != nil {
		fail(err)
	}
	domain := sigver.Domain{Name: "Sovereignty", Version: "1"}
	sig := signDigest(priv, domain.LoginDigest(ch.GetNonce(), wallet))

	resp, err := cl.Login(ctx, pb.LoginRequest_builder{
		Wallet:      proto.String(wallet.String()),
		ChallengeId: proto.String(ch.GetChallengeId()),
		Signature:   sig,
	}.Build())
	if err != nil {
		fail(err)
	}
	if err := saveToken(resp.GetAccessToken(), resp.GetExpiresAt().AsTime()); err != nil {
		fail(err)
	}
	fmt.Printf("logged in as %s (token expires %s)\n", wallet, tsString(resp.GetExpiresAt()))
}

// cmdSignMintKey signs an allowlist mint key with the local wallet. Meant
// for token validators producing off-line allowlist grants.
func cmdSignMintKey(rest []string) {
	if len(rest) != 3 {
		usage()
	}
	priv, _, err := loadWallet()
	if err != nil {
		fail(err)
	}
	wallet, err := model.ParseAddress(rest[2])
	if err != nil {
		fail(err)
	}
	domain := sigver.Domain{Name: "Sovereignty", Version: "1"}
	sig := signDigest(priv, domain.MintDigest(mustInt(rest[0]), mustInt(rest[1]), wallet))
	fmt.Println(base64.StdEncoding.EncodeToString(sig))
}

// cmdCreateArticle publishes an article with its token configuration.
func cmdCreateArticle(rest []string, addr, caPath string, insecureSkip bool) {
	fs := flag.NewFlagSet("create-article", flag.ExitOnError)
	category := fs.String("category", "", "article category")
	title := fs.String("title", "", "article title (required)")
	authorName := fs.String("author", "", "author display name")
	publicCost := fs.Int64("public-cost", 0, "public mint price per unit")
	allowlistCost := fs.Int64("allowlist-cost", 0, "allowlist mint price per unit")
	maxAmount := fs.Int64("max-amount", 0, "hard supply ceiling")
	maxPerUser := fs.Int64("max-per-user", 0, "per-wallet ceiling")
	metadataURL := fs.String("url", "", "metadata url")
	validator := fs.String("validator", "", "allowlist validator address (required)")
	reserveAmount := fs.Int64("reserve", 0, "reserve pre-mint amount")
	reserveRecipient := fs.String("reserve-to", "", "reserve recipient address")
	_ = fs.Parse(rest)

	authed(addr, caPath, insecureSkip, func(ctx context.Context, cl pb.SovereigntyRegistryClient) error {
		resp, err := cl.CreateArticle(ctx, pb.CreateArticleRequest_builder{
			Category:         category,
			Title:            title,
			AuthorName:       authorName,
			PublicCost:       publicCost,
			AllowlistCost:    allowlistCost,
			MaxAmount:        maxAmount,
			MaxPerUser:       maxPerUser,
			MetadataUrl:      metadataURL,
			Validator:        validator,
			ReserveAmount:    reserveAmount,
			ReserveRecipient: reserveRecipient,
		}.Build())
		if err != nil {
			return err
		}
		fmt.Printf("article %d created\n", resp.GetArticle().GetId())
		return nil
	})
}

func mustInt(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		fail(fmt.Errorf("bad number %q", s))
	}
	return v
}

func mustBool(s string) bool {
	v, err := strconv.ParseBool(s)
	if err != nil {
		fail(fmt.Errorf("bad bool %q", s))
	}
	return v
}
