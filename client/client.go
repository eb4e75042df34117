// Package client implements a JSON-RPC 2.0 client over HTTP.
//
// A Client executes calls against a single endpoint, correlating each
// response to its request by a monotonically increasing id. Requests are
// delivered by POST with a JSON content type and, when credentials are
// configured, a bearer Authorization header. A send that fails because a
// pooled connection had gone stale is resent exactly once; every other
// failure surfaces immediately as one of the error kinds in this package.
//
// A Client is safe for concurrent use; the id counter is its only shared
// mutable state and the HTTP transport underneath manages its own
// connection pool.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/mnehpets/onecall/jsonrpc"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// Client executes JSON-RPC 2.0 calls against one HTTP endpoint. The
// endpoint and credentials are fixed at construction. Create with New.
type Client struct {
	endpoint string
	tokens   oauth2.TokenSource
	httpc    *http.Client
	limiter  *rate.Limiter
	log      *slog.Logger

	builder RequestBuilder
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used to reach the endpoint. Timeout,
// proxy, TLS and connection-pool policy all belong to it. Default:
// http.DefaultClient.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithBearerToken authenticates every request with a fixed bearer token.
// The empty string leaves the client unauthenticated.
func WithBearerToken(token string) Option {
	return func(c *Client) {
		if token == "" {
			c.tokens = nil
			return
		}
		c.tokens = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	}
}

// WithTokenSource authenticates every request with a token drawn from src,
// typically a refreshing source such as clientcredentials.Config.TokenSource.
// The token is fetched once per call, before the first send attempt, so a
// stale-connection resend carries the exact same Authorization header.
func WithTokenSource(src oauth2.TokenSource) Option {
	return func(c *Client) { c.tokens = src }
}

// WithRateLimit throttles outgoing calls with a token bucket. The wait runs
// once per call and honors the call's context; a stale-connection resend
// belongs to the same call and is not charged again.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(limit, burst) }
}

// WithLogger sets the logger for transport diagnostics, currently the
// stale-connection resend event. Default: discard everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a Client for the JSON-RPC endpoint at url.
func New(url string, opts ...Option) *Client {
	c := &Client{
		endpoint: url,
		httpc:    http.DefaultClient,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Build returns a fresh request envelope for method with the next id.
// Most callers want Call; Build and Send are for callers that need the
// envelopes themselves.
func (c *Client) Build(method string, params any) *jsonrpc.Request {
	return c.builder.Build(method, params)
}

// LastNonce returns the most recently issued request id, or 0 before the
// first call. Diagnostic only.
func (c *Client) LastNonce() uint64 {
	return c.builder.Last()
}

// Call executes one JSON-RPC call and decodes the result into result, which
// must be a pointer, or nil to discard the result. A server-reported
// failure is returned as a *jsonrpc.JSONRPCError with its payload intact;
// delivery and decoding failures are returned as *TransportError and
// *SerializationError, and mismatched envelopes as ErrVersionMismatch or
// ErrNonceMismatch.
func (c *Client) Call(ctx context.Context, method string, params, result any) error {
	resp, err := c.Send(ctx, c.Build(method, params))
	if err != nil {
		return err
	}
	if resp.Error != nil {
		return resp.Error
	}
	if result == nil {
		return nil
	}
	if err := resp.DecodeResult(result); err != nil {
		return &SerializationError{Err: err}
	}
	return nil
}

// Call executes one JSON-RPC call on c and returns the result decoded as T:
//
//	count, err := client.Call[int64](ctx, c, "getblockcount", nil)
func Call[T any](ctx context.Context, c *Client, method string, params any) (T, error) {
	var result T
	err := c.Call(ctx, method, params, &result)
	return result, err
}

// Send serializes req, POSTs it to the endpoint and returns the response
// envelope after validating it: an incompatible version marker fails with
// ErrVersionMismatch, then an id differing from the request's fails with
// ErrNonceMismatch. The envelope's error payload, if any, is left for the
// caller to inspect.
//
// If the send fails because a pooled connection had gone stale (broken
// pipe, connection reset or aborted), the identical bytes and headers are
// resent exactly once; no new id is drawn. Any other failure, and any
// failure of the resend, is returned as a *TransportError.
func (c *Client) Send(ctx context.Context, req *jsonrpc.Request) (*jsonrpc.Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &SerializationError{Err: err}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Err: err}
		}
	}

	// One token per logical call: the resend must reuse identical headers.
	var token *oauth2.Token
	if c.tokens != nil {
		token, err = c.tokens.Token()
		if err != nil {
			return nil, &TransportError{Err: fmt.Errorf("fetch bearer token: %w", err)}
		}
	}

	resp, err := c.post(ctx, body, token)
	if err != nil {
		if !isTransient(err) || ctx.Err() != nil {
			return nil, &TransportError{Err: err}
		}
		// The transport has already dropped the broken connection, so the
		// resend is carried by a fresh one.
		c.log.DebugContext(ctx, "resending after stale connection",
			"method", req.Method, "id", req.ID, "cause", err)
		resp, err = c.post(ctx, body, token)
		if err != nil {
			return nil, &TransportError{Err: err}
		}
	}
	defer resp.Body.Close()

	// The HTTP status is deliberately not consulted: servers deliver
	// JSON-RPC errors under 200 and non-200 alike, so the body is the sole
	// source of truth.
	var env jsonrpc.Response
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &SerializationError{Err: err}
	}

	// The decoder stops at the end of the JSON value; consume whatever
	// trails it so the connection goes back to the pool clean.
	io.Copy(io.Discard, resp.Body)

	if env.JSONRPC != "" && env.JSONRPC != jsonrpc.Version {
		return nil, fmt.Errorf("%w: got %q", ErrVersionMismatch, env.JSONRPC)
	}
	if env.ID == nil {
		return nil, fmt.Errorf("%w: got null, want %d", ErrNonceMismatch, req.ID)
	}
	if *env.ID != req.ID {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrNonceMismatch, *env.ID, req.ID)
	}
	return &env, nil
}

func (c *Client) post(ctx context.Context, body []byte, token *oauth2.Token) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != nil {
		token.SetAuthHeader(req)
	}
	return c.httpc.Do(req)
}
