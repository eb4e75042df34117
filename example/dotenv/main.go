// Issues a single call against an endpoint configured through the
// environment, or a local .env file:
//
//	RPC_URL=https://node.example.net:8332/ RPC_TOKEN=hunter2 go run . getblockcount
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/mnehpets/onecall/client"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	url := os.Getenv("RPC_URL")
	if url == "" {
		log.Fatal("RPC_URL must be set")
	}

	method := "status"
	if len(os.Args) > 1 {
		method = os.Args[1]
	}
	var params any
	if len(os.Args) > 2 {
		if err := json.Unmarshal([]byte(os.Args[2]), &params); err != nil {
			log.Fatalf("params must be JSON: %v", err)
		}
	}

	c := client.New(url, client.WithBearerToken(os.Getenv("RPC_TOKEN")))

	result, err := client.Call[json.RawMessage](context.Background(), c, method, params)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(result))
}
