package jsonrpc

import "encoding/json"

// Version is the protocol version marker carried by every request and
// expected, when present, on every response.
const Version = "2.0"

const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// JSONRPCError is the error object a server attaches to a failed response.
// Data is kept as raw JSON so the payload reaches the caller verbatim.
type JSONRPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *JSONRPCError) Error() string {
	return e.Message
}

func NewError(code int, message string) *JSONRPCError {
	return &JSONRPCError{Code: code, Message: message}
}

// Request is a JSON-RPC 2.0 request object. Params is an opaque payload,
// attached verbatim; nil params serialize as JSON null. ID correlates the
// matching response. Fields are declared in wire order.
type Request struct {
	Method  string `json:"method"`
	Params  any    `json:"params"`
	ID      uint64 `json:"id"`
	JSONRPC string `json:"jsonrpc"`
}

// Response is a JSON-RPC 2.0 response object. Exactly one of Result and
// Error is expected on a terminal response, though only Error's presence
// decides the outcome. A nil ID means the server sent null or omitted the
// id; the version marker is optional on responses.
type Response struct {
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *JSONRPCError   `json:"error,omitempty"`
	ID      *uint64         `json:"id"`
	JSONRPC string          `json:"jsonrpc,omitempty"`
}

// DecodeResult unmarshals the result payload into v. If the response
// carries an error object, that error is returned and v is left untouched.
// An absent result decodes as JSON null. A nil v skips decoding, for
// callers that only care about the outcome.
func (r *Response) DecodeResult(v any) error {
	if r.Error != nil {
		return r.Error
	}
	if v == nil {
		return nil
	}
	raw := r.Result
	if raw == nil {
		raw = json.RawMessage("null")
	}
	return json.Unmarshal(raw, v)
}
