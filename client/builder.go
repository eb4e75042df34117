package client

import (
	"sync/atomic"

	"github.com/mnehpets/onecall/jsonrpc"
)

// RequestBuilder issues request envelopes with strictly increasing ids.
// Under any number of concurrent callers the ids drawn from one builder are
// consecutive integers starting at 1, with no gaps and no duplicates; the
// increment and the read are a single atomic operation. The zero value is
// ready to use.
type RequestBuilder struct {
	nonce atomic.Uint64
}

// Build returns a fresh request for method, with params attached verbatim
// and the next id from the counter.
func (b *RequestBuilder) Build(method string, params any) *jsonrpc.Request {
	return &jsonrpc.Request{
		Method:  method,
		Params:  params,
		ID:      b.nonce.Add(1),
		JSONRPC: jsonrpc.Version,
	}
}

// Last returns the most recently issued id, or 0 if none has been issued.
// It never advances the counter.
func (b *RequestBuilder) Last() uint64 {
	return b.nonce.Load()
}
