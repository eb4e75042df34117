// Package jsonrpc provides the JSON-RPC 2.0 envelope types exchanged over the wire.
//
// This package implements the object model of the JSON-RPC 2.0 specification
// (https://www.jsonrpc.org/specification) as transported over HTTP
// (https://www.simple-is-better.org/json-rpc/transport_http.html). It carries
// no transport logic of its own; the client package drives these types, and a
// test or demo server can marshal them just as well.
//
// # Requests
//
// A Request pairs a method name with an opaque params payload and a numeric
// id. Params is attached verbatim, whatever JSON-encodable value the caller
// supplies:
//
//	req := jsonrpc.Request{
//	    Method:  "math.Add",
//	    Params:  map[string]int{"a": 1, "b": 2},
//	    ID:      1,
//	    JSONRPC: jsonrpc.Version,
//	}
//
// Marshaling produces the wire object:
//
//	{"method":"math.Add","params":{"a":1,"b":2},"id":1,"jsonrpc":"2.0"}
//
// # Responses
//
// A Response carries either a result or an error object, correlated to its
// request by id. The result stays raw until decoded:
//
//	var resp jsonrpc.Response
//	if err := json.Unmarshal(body, &resp); err != nil {
//	    // ...
//	}
//	var sum int
//	if err := resp.DecodeResult(&sum); err != nil {
//	    // ...
//	}
//
// DecodeResult returns the response's *JSONRPCError when the server reported
// a failure, so decoding and error inspection are a single step.
//
// # Error Handling
//
// JSONRPCError implements error and preserves the server's data payload
// verbatim. Standard error codes are defined as constants:
//   - CodeParseError (-32700)
//   - CodeInvalidRequest (-32600)
//   - CodeMethodNotFound (-32601)
//   - CodeInvalidParams (-32602)
//   - CodeInternalError (-32603)
package jsonrpc
