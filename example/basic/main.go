package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"

	"github.com/mnehpets/onecall/client"
	"github.com/mnehpets/onecall/jsonrpc"
)

// rpcHandler is a minimal JSON-RPC server, just enough to give the client
// something to talk to.
func rpcHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Method  string          `json:"method"`
		Params  json.RawMessage `json:"params"`
		ID      uint64          `json:"id"`
		JSONRPC string          `json:"jsonrpc"`
	}
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		enc.Encode(jsonrpc.Response{
			Error:   jsonrpc.NewError(jsonrpc.CodeParseError, "parse error"),
			JSONRPC: jsonrpc.Version,
		})
		return
	}

	resp := jsonrpc.Response{ID: &req.ID, JSONRPC: jsonrpc.Version}
	switch req.Method {
	case "math.Sum":
		var nums []int
		if err := json.Unmarshal(req.Params, &nums); err != nil {
			resp.Error = jsonrpc.NewError(jsonrpc.CodeInvalidParams, "invalid params")
			break
		}
		total := 0
		for _, n := range nums {
			total += n
		}
		resp.Result, _ = json.Marshal(total)
	case "echo":
		resp.Result = req.Params
	default:
		resp.Error = jsonrpc.NewError(jsonrpc.CodeMethodNotFound, "Method not found")
	}
	enc.Encode(resp)
}

func main() {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		log.Fatal(err)
	}
	go http.Serve(ln, http.HandlerFunc(rpcHandler))

	c := client.New("http://" + ln.Addr().String() + "/rpc")
	ctx := context.Background()

	sum, err := client.Call[int](ctx, c, "math.Sum", []int{1, 2, 3, 4})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("math.Sum:", sum)

	echoed, err := client.Call[map[string]string](ctx, c, "echo", map[string]string{"hello": "world"})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("echo:", echoed)

	// An unknown method comes back as a server error with its code and
	// message intact.
	if _, err := client.Call[int](ctx, c, "math.Mod", []int{7, 3}); err != nil {
		fmt.Println("math.Mod:", err)
	}

	fmt.Println("requests issued:", c.LastNonce())
}
