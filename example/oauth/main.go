package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/joho/godotenv"
	"github.com/mnehpets/onecall/client"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	issuer := os.Getenv("OIDC_ISSUER")
	clientID := os.Getenv("OAUTH_CLIENT_ID")
	clientSecret := os.Getenv("OAUTH_CLIENT_SECRET")
	rpcURL := os.Getenv("RPC_URL")
	if issuer == "" || clientID == "" || clientSecret == "" || rpcURL == "" {
		log.Fatal("OIDC_ISSUER, OAUTH_CLIENT_ID, OAUTH_CLIENT_SECRET and RPC_URL must be set")
	}

	ctx := context.Background()

	// 1. Discover the issuer's token endpoint.
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		log.Fatalf("discover issuer: %v", err)
	}

	// 2. Machine-to-machine credentials; the source refreshes expired
	// tokens on its own.
	cc := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     provider.Endpoint().TokenURL,
		Scopes:       []string{"rpc"},
	}

	// 3. Each call fetches a fresh-enough token and stays under 5 req/s.
	c := client.New(rpcURL,
		client.WithTokenSource(cc.TokenSource(ctx)),
		client.WithRateLimit(rate.Limit(5), 5),
	)

	status, err := client.Call[json.RawMessage](ctx, c, "status", nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(status))
}
